package assets

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/furamon/svbattler/config"
)

const testFormation = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Enemies">
  <object id="1" name="Back" x="40" y="20" width="64" height="64">
   <properties>
    <property name="battler" value="slime"/>
    <property name="layout" value="fixed"/>
   </properties>
  </object>
  <object id="2" x="40" y="90" width="64" height="64">
   <properties>
    <property name="battler" value="dragon"/>
    <property name="collapse" value="sink"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Actors">
  <object id="3" name="Lead" x="120" y="60" width="64" height="64">
   <properties>
    <property name="battler" value="hero"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadFormation(t *testing.T) {
	fsys := fstest.MapFS{"formations/test.tmx": {Data: []byte(testFormation)}}

	f, err := LoadFormation(fsys, "formations/test.tmx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Width != 160 || f.Height != 128 {
		t.Errorf("expected 160x128, got %dx%d", f.Width, f.Height)
	}
	if len(f.Actors) != 1 || len(f.Enemies) != 2 {
		t.Fatalf("expected 1 actor and 2 enemies, got %d/%d", len(f.Actors), len(f.Enemies))
	}

	lead := f.Actors[0]
	if lead.Kind != "hero" || lead.Side != config.SideActor || lead.X != 120 || lead.Y != 60 {
		t.Errorf("unexpected actor placement %+v", lead)
	}

	back, front := f.Enemies[0], f.Enemies[1]
	if back.Name != "Back" || back.Layout != config.LayoutFixed {
		t.Errorf("unexpected back enemy %+v", back)
	}
	if front.Name != "Dragon" {
		t.Errorf("expected an unnamed object to take the kind name, got %q", front.Name)
	}
	if front.Collapse != "sink" || front.Side != config.SideEnemy {
		t.Errorf("unexpected front enemy %+v", front)
	}

	if all := f.All(); len(all) != 3 || all[0].Kind != "hero" {
		t.Errorf("expected actors first, got %+v", all)
	}
}

func TestLoadFormationMissing(t *testing.T) {
	_, err := LoadFormation(fstest.MapFS{}, "formations/none.tmx")
	if !errors.Is(err, ErrFormationNotFound) {
		t.Errorf("expected ErrFormationNotFound, got %v", err)
	}
}

func TestLoadDefaultFormation(t *testing.T) {
	f, err := LoadDefaultFormation()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.Actors) == 0 || len(f.Enemies) == 0 {
		t.Fatalf("expected both sides populated, got %d/%d", len(f.Actors), len(f.Enemies))
	}
	for _, p := range f.All() {
		if _, ok := config.Battlers[p.Kind]; !ok {
			t.Errorf("placement %q uses unknown kind %q", p.Name, p.Kind)
		}
	}
}

package factory

import (
	"testing"
	"testing/fstest"

	"github.com/furamon/svbattler/assets"
	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 816, 624, 16, 16)
	CreateSheets(e, assets.NewSheetLoader(fstest.MapFS{}))
	return e
}

func TestCreateBattler(t *testing.T) {
	e := newTestECS()
	b := CreateBattler(e, assets.Placement{Kind: "slime", Side: config.SideEnemy, X: 40, Y: 90})

	if !b.HasComponent(tags.Enemy) || b.HasComponent(tags.Actor) {
		t.Error("expected the enemy tag")
	}
	data := components.Battler.Get(b)
	if data.Name != "Slime" || data.Layout != config.LayoutVariable || data.Collapse != config.CollapseSink {
		t.Errorf("unexpected battler %+v", data)
	}
	if hp := components.Health.Get(b); hp.Current != 60 || hp.Max != 60 {
		t.Errorf("expected 60 hp, got %+v", hp)
	}

	obj := components.Object.Get(b)
	if obj.X != 40 || obj.Y != 90 || obj.W != 64 || !obj.HasTags(tags.ResolvEnemy) {
		t.Errorf("unexpected object at (%v,%v) %vx%v", obj.X, obj.Y, obj.W, obj.H)
	}
	if obj.Data.(*donburi.Entry).Entity() != b.Entity() {
		t.Error("expected the object to point back at the battler")
	}
	if SubstituteOf(b) != nil {
		t.Error("expected no substitute yet")
	}
}

func TestCreateBattlerOverrides(t *testing.T) {
	e := newTestECS()
	b := CreateBattler(e, assets.Placement{
		Name:     "Boss",
		Kind:     "slime",
		Side:     config.SideEnemy,
		Layout:   config.LayoutFixed,
		Collapse: "fade",
	})

	data := components.Battler.Get(b)
	if data.Name != "Boss" || data.Layout != config.LayoutFixed || data.Collapse != config.CollapseFade {
		t.Errorf("expected the placement to override the kind, got %+v", data)
	}
}

func TestCreateSubstitute(t *testing.T) {
	tests := []struct {
		kind     string
		children int
	}{
		{kind: "hero", children: 4},
		{kind: "slime", children: 3},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			e := newTestECS()
			b := CreateBattler(e, assets.Placement{Kind: tt.kind})
			sub := CreateSubstitute(e, b)

			if got := len(components.Substitute.Get(sub).Children); got != tt.children {
				t.Errorf("expected %d children, got %d", tt.children, got)
			}
			if owner := OwnerOf(sub); owner == nil || owner.Entity() != b.Entity() {
				t.Error("expected the substitute to point at its owner")
			}
			if s := SubstituteOf(b); s == nil || s.Entity() != sub.Entity() {
				t.Error("expected the battler to point at its substitute")
			}
			if !components.Sprite.Get(b).Hidden() {
				t.Error("expected the default representation to be hidden")
			}
			if sheet := components.Animation.Get(sub).Sheet; sheet == nil || sheet.Ready() {
				t.Error("expected a placeholder sheet for a missing file")
			}

			again := CreateSubstitute(e, b)
			if again.Entity() != sub.Entity() {
				t.Error("expected CreateSubstitute to be idempotent")
			}
		})
	}
}

func TestCreateSubstituteWithoutLoader(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	b := CreateBattler(e, assets.Placement{Kind: "hero"})
	sub := CreateSubstitute(e, b)

	if components.Animation.Get(sub).Sheet != nil {
		t.Error("expected no sheet without a loader")
	}
}

func TestDestroySubstitute(t *testing.T) {
	e := newTestECS()
	b := CreateBattler(e, assets.Placement{Kind: "hero"})
	sub := CreateSubstitute(e, b)
	children := components.Substitute.Get(sub).Children

	DestroySubstitute(e, b)

	if SubstituteOf(b) != nil || sub.Valid() {
		t.Error("expected the substitute to be gone")
	}
	for _, c := range children {
		if e.World.Valid(c) {
			t.Error("expected the overlays to be gone")
		}
	}
	if s := components.Sprite.Get(b); !s.Visible || s.Width != 64 {
		t.Errorf("expected the default representation back, got %+v", s)
	}

	// a second teardown is harmless
	DestroySubstitute(e, b)
}

func TestRemoveBattler(t *testing.T) {
	e := newTestECS()
	b := CreateBattler(e, assets.Placement{Kind: "hero"})
	sub := CreateSubstitute(e, b)
	before := len(SpaceOf(e.World).Objects())

	RemoveBattler(e, b)

	if b.Valid() || sub.Valid() {
		t.Error("expected the battler and its substitute to be removed")
	}
	if after := len(SpaceOf(e.World).Objects()); after != before-1 {
		t.Errorf("expected the battler object to leave the space, %d -> %d", before, after)
	}
}

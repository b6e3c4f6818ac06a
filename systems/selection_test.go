package systems

import (
	"image"
	"testing"

	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/yohamta/donburi"
)

func TestCycleSelection(t *testing.T) {
	e := newTestECS(t)
	slime, _ := spawn(e, place("slime", cfg.SideEnemy, 100, 100))
	hero, _ := spawn(e, place("hero", cfg.SideActor, 600, 260))
	mage, _ := spawn(e, place("mage", cfg.SideActor, 600, 200))

	if Selected(e) != nil {
		t.Fatal("expected nothing selected")
	}

	steps := []struct {
		step int
		want *donburi.Entry
	}{
		{step: 1, want: mage},
		{step: 1, want: hero},
		{step: 1, want: slime},
		{step: 1, want: mage},
		{step: -1, want: slime},
		{step: -1, want: hero},
	}
	for i, s := range steps {
		CycleSelection(e, s.step)
		got := Selected(e)
		if got == nil || got.Entity() != s.want.Entity() {
			t.Fatalf("step %d: expected %s", i, components.Battler.Get(s.want).Name)
		}
	}
}

func TestSelectedAfterRemoval(t *testing.T) {
	e := newTestECS(t)
	hero, _ := spawn(e, place("hero", cfg.SideActor, 600, 260))
	Select(e, hero)

	factory.RemoveBattler(e, hero)
	if Selected(e) != nil {
		t.Error("expected a removed battler not to stay selected")
	}

	Select(e, nil)
	if GetOrCreateSelection(e).Entity != donburi.Null {
		t.Error("expected the selection to clear")
	}
}

func TestHit(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", cfg.SideActor, 600, 260))
	tick(e)

	Hit(hero, 25)

	if hp := components.Health.Get(hero).Current; hp != 95 {
		t.Errorf("expected 95 hp, got %d", hp)
	}
	if motionOf(sub) != cfg.Damage {
		t.Errorf("expected damage, got %s", motionOf(sub))
	}
	flash := components.Flash.Get(sub)
	if flash.Duration != cfg.Animation.DamageFlashTicks {
		t.Errorf("expected a damage flash, got %+v", flash)
	}
	if !components.MotionRequest.Get(hero).Revert.Active {
		t.Error("expected the damage pose to revert")
	}

	ticks(e, cfg.Animation.DamageFlashTicks)
	if flash.Duration != 0 {
		t.Errorf("expected the flash to run out, got %d", flash.Duration)
	}
}

func TestHitDefeats(t *testing.T) {
	e := newTestECS(t)
	slime, sub := spawn(e, place("slime", cfg.SideEnemy, 100, 100))
	tick(e)

	Hit(slime, 10)
	Hit(slime, 500)

	if hp := components.Health.Get(slime).Current; hp != 0 {
		t.Errorf("expected 0 hp, got %d", hp)
	}
	if components.MotionRequest.Get(slime).Revert.Active {
		t.Error("expected a defeat to cancel the revert")
	}

	tick(e)
	if !animationOf(sub).DefeatPose {
		t.Error("expected the defeat pose")
	}

	components.Flash.Get(sub).Duration = 0
	Hit(slime, 10)
	if components.Flash.Get(sub).Duration != 0 {
		t.Error("expected hits on a defeated battler to be ignored")
	}
}

func TestEvade(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", cfg.SideActor, 600, 260))
	tick(e)

	Evade(hero)
	if motionOf(sub) != cfg.Evade {
		t.Errorf("expected evade, got %s", motionOf(sub))
	}

	fallen, fallenSub := spawn(e, place("hero", cfg.SideActor, 500, 260))
	components.Health.Get(fallen).Current = 0
	tick(e)
	Evade(fallen)
	tick(e)
	if motionOf(fallenSub) == cfg.Evade {
		t.Error("expected a defeated battler not to evade")
	}
	anim := animationOf(fallenSub)
	if !anim.DefeatPose {
		t.Error("expected the defeat pose")
	}
	if want := image.Rect(0, 256, 64, 320); anim.Rect != want {
		t.Errorf("expected the first damage frame %v, got %v", want, anim.Rect)
	}
}

func TestShortcuts(t *testing.T) {
	e := newTestECS(t)
	hero, _ := spawn(e, place("hero", cfg.SideActor, 600, 260))
	tick(e)

	press(e, cfg.ActionNextBattler)
	UpdateShortcuts(e)
	if Selected(e) == nil {
		t.Fatal("expected a selection")
	}

	press(e, cfg.ActionHit)
	UpdateShortcuts(e)
	if hp := components.Health.Get(hero).Current; hp != 120-cfg.UI.DamageAmount {
		t.Errorf("expected the hit to land, got %d hp", hp)
	}

	// holding the key does not repeat
	press(e, cfg.ActionHit)
	UpdateShortcuts(e)
	if hp := components.Health.Get(hero).Current; hp != 120-cfg.UI.DamageAmount {
		t.Errorf("expected one hit per press, got %d hp", hp)
	}

	press(e, cfg.ActionRevive)
	UpdateShortcuts(e)
	if hp := components.Health.Get(hero).Current; hp != 120 {
		t.Errorf("expected full health, got %d", hp)
	}

	debug := GetOrCreateSettings(e).Debug
	press(e, cfg.ActionToggleDebug)
	UpdateShortcuts(e)
	if GetOrCreateSettings(e).Debug == debug {
		t.Error("expected debug to toggle")
	}
}

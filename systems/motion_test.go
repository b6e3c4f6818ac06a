package systems

import (
	"testing"

	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
)

func TestMotionStartsInStance(t *testing.T) {
	e := newTestECS(t)
	_, sub := spawn(e, place("hero", config.SideActor, 600, 260))

	if motionOf(sub) != config.MotionNone {
		t.Fatalf("expected no motion before the first tick, got %s", motionOf(sub))
	}
	tick(e)
	if motionOf(sub) != config.Wait {
		t.Errorf("expected wait, got %s", motionOf(sub))
	}
}

func TestRequestMotionLastWriteWins(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	RequestMotion(hero, "thrust")
	RequestMotion(hero, "skill")
	tick(e)

	if motionOf(sub) != config.Skill {
		t.Errorf("expected skill, got %s", motionOf(sub))
	}
	if _, pending := components.MotionRequest.Get(hero).TakePending(); pending {
		t.Error("expected the request to be consumed")
	}
}

func TestRequestSameMotionDoesNotRestart(t *testing.T) {
	tests := []struct {
		name    string
		request string
	}{
		{name: "same name", request: "wait"},
		{name: "alias", request: "idle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
			ticks(e, 12)

			st := animationOf(sub).State
			if st.Pattern() != 1 {
				t.Fatalf("expected pattern 1 after one frame period, got %d", st.Pattern())
			}

			RequestMotion(hero, tt.request)
			tick(e)
			if st.Pattern() != 1 {
				t.Errorf("expected the running motion to continue, got pattern %d", st.Pattern())
			}
		})
	}
}

func TestRequestUnknownMotionFallsBackToWalk(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	RequestMotion(hero, "moonwalk")
	tick(e)
	if motionOf(sub) != config.Walk {
		t.Errorf("expected walk, got %s", motionOf(sub))
	}
}

func TestStatusMotionWinsOverRequests(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	components.Battler.Get(hero).AddStatus(components.Status{ID: "sleep", ForcedMotion: "sleep"})
	tick(e)
	if motionOf(sub) != config.Sleep {
		t.Fatalf("expected sleep, got %s", motionOf(sub))
	}

	RequestMotion(hero, "thrust")
	tick(e)
	if motionOf(sub) != config.Sleep {
		t.Errorf("expected the request to be ignored while asleep, got %s", motionOf(sub))
	}

	components.Battler.Get(hero).RemoveStatus("sleep")
	tick(e)
	if motionOf(sub) != config.Wait {
		t.Errorf("expected wait after waking, got %s", motionOf(sub))
	}
}

func TestForceMotionWithoutSubstitute(t *testing.T) {
	e := newTestECS(t)
	hero := factory.CreateBattler(e, place("hero", config.SideActor, 600, 260))

	ForceMotion(hero, "evade")
	if got := components.MotionRequest.Get(hero).Forced; got != "evade" {
		t.Fatalf("expected the forced motion to be kept, got %q", got)
	}

	sub := factory.CreateSubstitute(e, hero)
	tick(e)
	if motionOf(sub) != config.Evade {
		t.Errorf("expected evade once the substitute exists, got %s", motionOf(sub))
	}
}

func TestForceMotionRestartsImmediately(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	ForceMotion(hero, "thrust")
	if motionOf(sub) != config.Thrust {
		t.Fatalf("expected thrust without waiting for a tick, got %s", motionOf(sub))
	}
	ticks(e, 12)

	ForceMotion(hero, "thrust")
	if p := animationOf(sub).State.Pattern(); p != 0 {
		t.Errorf("expected a forced motion to rewind, got pattern %d", p)
	}
}

func TestForceMotionDropsPendingRequest(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	RequestMotion(hero, "skill")
	Hit(hero, 10)
	tick(e)

	if motionOf(sub) != config.Damage {
		t.Errorf("expected damage, got %s", motionOf(sub))
	}
	if !components.MotionRequest.Get(hero).Revert.Active {
		t.Error("expected the revert to survive the dropped request")
	}
}

func TestForceMotionForReverts(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	ForceMotionFor(hero, "damage", 3)
	if motionOf(sub) != config.Damage {
		t.Fatalf("expected damage, got %s", motionOf(sub))
	}

	ticks(e, 2)
	if motionOf(sub) != config.Damage {
		t.Errorf("expected damage to hold, got %s", motionOf(sub))
	}
	tick(e)
	if motionOf(sub) != config.Wait {
		t.Errorf("expected wait after the hold, got %s", motionOf(sub))
	}
}

func TestForceMotionForRestoresLoopingMotion(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)
	RequestMotion(hero, "victory")
	tick(e)

	ForceMotionFor(hero, "evade", 2)
	ticks(e, 2)
	if motionOf(sub) != config.Victory {
		t.Errorf("expected victory to come back, got %s", motionOf(sub))
	}
}

func TestRequestDuringRevertCancelsIt(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	ForceMotionFor(hero, "damage", 3)
	RequestMotion(hero, "spell")
	tick(e)

	if motionOf(sub) != config.Spell {
		t.Fatalf("expected spell, got %s", motionOf(sub))
	}
	if components.MotionRequest.Get(hero).Revert.Active {
		t.Error("expected the revert to be cancelled")
	}
}

func TestDestroySubstituteCancelsRevert(t *testing.T) {
	e := newTestECS(t)
	hero, _ := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	ForceMotionFor(hero, "damage", 10)
	factory.DestroySubstitute(e, hero)

	if components.MotionRequest.Get(hero).Revert.Active {
		t.Error("expected the revert to be cancelled")
	}
	sprite := components.Sprite.Get(hero)
	if !sprite.Visible || sprite.Width != 64 || sprite.Height != 64 {
		t.Errorf("expected the default representation back, got %+v", sprite)
	}

	// later ticks must not touch the battler without a substitute
	ticks(e, 12)
	if factory.SubstituteOf(hero) != nil {
		t.Error("expected no substitute")
	}
}

func TestOneShotMotionReturnsToStance(t *testing.T) {
	e := newTestECS(t)
	hero, sub := spawn(e, place("hero", config.SideActor, 600, 260))
	tick(e)

	RequestMotion(hero, "skill")
	tick(e)
	// three poses shown for 12 ticks each, then one more period on the last
	ticks(e, 36)
	if motionOf(sub) != config.Wait {
		t.Errorf("expected wait after skill finished, got %s", motionOf(sub))
	}
}

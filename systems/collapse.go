package systems

import (
	"math/rand"

	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartCollapse begins the disappearance of a battler. It reports false when
// the battler has no substitute or its collapse already started.
func StartCollapse(battler *donburi.Entry) bool {
	sub := factory.SubstituteOf(battler)
	if sub == nil {
		return false
	}
	return startCollapse(sub)
}

func startCollapse(sub *donburi.Entry) bool {
	c := components.Collapse.Get(sub)
	if c.Started() {
		return false
	}
	if c.Variant == config.CollapseNone {
		c.Finished = true
		c.Opacity = 0
		return true
	}

	duration := config.Collapse.Duration
	if c.Variant == config.CollapseSink {
		duration = config.Collapse.SinkDuration
	}
	duration = max(1, duration)

	c.Active = true
	c.Duration = duration
	c.Remaining = duration
	c.Opacity = 1
	c.Sink = 0
	c.Fade = gween.New(1, 0, float32(duration), ease.Linear)
	c.Frame = components.Animation.Get(sub).Rect
	return true
}

// UpdateCollapses counts down running collapses and starts the ones of
// battlers that have held their defeat pose long enough.
func UpdateCollapses(ecs *ecs.ECS) {
	safeEach(ecs.World, components.Collapse, func(sub *donburi.Entry) {
		c := components.Collapse.Get(sub)
		if c.Finished {
			return
		}

		if !c.Active {
			owner := factory.OwnerOf(sub)
			if owner == nil || c.Variant == config.CollapseNone {
				return
			}
			if !components.Health.Get(owner).Dead() {
				c.Waiting = 0
				return
			}
			c.Waiting++
			if delay := config.Collapse.AutoStartDelay; delay > 0 && c.Waiting >= delay {
				startCollapse(sub)
			}
			return
		}

		c.Remaining--
		if c.Fade != nil {
			c.Opacity, _ = c.Fade.Update(1)
		}
		if c.Variant == config.CollapseSink {
			c.Sink = float64(c.Duration-c.Remaining) / float64(c.Duration)
		}
		c.ShakeX = shakeOffset(c.Strength, c.Remaining)

		if c.Remaining <= 0 {
			c.Remaining = 0
			c.Active = false
			c.Finished = true
			c.Opacity = 0
			c.ShakeX = 0
		}
	})
}

// shakeOffset is a random offset in [0, strength] whose sign follows the
// parity of the remaining ticks.
func shakeOffset(strength float64, remaining int) float64 {
	if strength <= 0 {
		return 0
	}
	off := rand.Float64() * strength
	if remaining%2 != 0 {
		off = -off
	}
	return off
}

// Revive restores a battler to full health. A battler whose body already
// collapsed gets a fresh substitute.
func Revive(ecs *ecs.ECS, battler *donburi.Entry) {
	h := components.Health.Get(battler)
	h.Current = h.Max

	sub := factory.SubstituteOf(battler)
	if sub == nil {
		return
	}
	c := components.Collapse.Get(sub)
	c.Waiting = 0
	if !c.Started() {
		return
	}
	factory.DestroySubstitute(ecs, battler)
	factory.CreateSubstitute(ecs, battler)
}

package systems

import (
	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/yohamta/donburi"
)

// ResolveStance returns the motion a battler rests in when no event asks for
// anything else. A status that forces a motion wins over everything.
func ResolveStance(battler *donburi.Entry) config.MotionDefinition {
	b := components.Battler.Get(battler)
	if name, ok := b.ForcedMotion(); ok {
		return config.MotionByName(name)
	}

	hp := components.Health.Get(battler)
	switch {
	case hp.Dead():
		return config.Dead.Definition()
	case b.Guarding:
		return config.Guard.Definition()
	case b.Chanting:
		return config.Chant.Definition()
	case hp.Ratio() <= config.Animation.DyingRatio:
		return config.Dying.Definition()
	default:
		return config.Wait.Definition()
	}
}

// isStance reports whether a motion is one a battler rests in, as opposed to
// one played for an event.
func isStance(id config.MotionID) bool {
	switch id {
	case config.Wait, config.Chant, config.Guard, config.Dying,
		config.Abnormal, config.Sleep, config.Dead:
		return true
	}
	return false
}

package systems

import (
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects decrements flash timers.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// StartDamageFlash tints a battler's substitute red for a few ticks.
func StartDamageFlash(battler *donburi.Entry) {
	sub := factory.SubstituteOf(battler)
	if sub == nil {
		return
	}
	components.Flash.SetValue(sub, components.FlashData{
		Duration: cfg.Animation.DamageFlashTicks,
		R:        1,
		G:        0.5,
		B:        0.5,
	})
}

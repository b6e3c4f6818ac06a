package systems

import (
	"sort"

	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSelection returns the singleton Selection component.
func GetOrCreateSelection(ecs *ecs.ECS) *components.SelectionData {
	if _, ok := components.Selection.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Selection))
		components.Selection.SetValue(ent, components.SelectionData{Entity: donburi.Null})
	}
	ent, _ := components.Selection.First(ecs.World)
	return components.Selection.Get(ent)
}

// Select makes battler the target of the showcase controls. nil clears the
// selection.
func Select(ecs *ecs.ECS, battler *donburi.Entry) {
	sel := GetOrCreateSelection(ecs)
	if battler == nil {
		sel.Entity = donburi.Null
		return
	}
	sel.Entity = battler.Entity()
}

// Selected returns the selected battler, or nil.
func Selected(ecs *ecs.ECS) *donburi.Entry {
	sel := GetOrCreateSelection(ecs)
	if sel.Entity == donburi.Null || !ecs.World.Valid(sel.Entity) {
		return nil
	}
	return ecs.World.Entry(sel.Entity)
}

// CycleSelection moves the selection by step through the battlers, actors
// first, each side front to back.
func CycleSelection(ecs *ecs.ECS, step int) {
	var battlers []*donburi.Entry
	tags.Battler.Each(ecs.World, func(e *donburi.Entry) {
		battlers = append(battlers, e)
	})
	if len(battlers) == 0 {
		return
	}
	sort.SliceStable(battlers, func(i, j int) bool {
		a, b := components.Battler.Get(battlers[i]), components.Battler.Get(battlers[j])
		if a.Side != b.Side {
			return a.Side < b.Side
		}
		return components.Object.Get(battlers[i]).Y < components.Object.Get(battlers[j]).Y
	})

	current := -1
	if sel := Selected(ecs); sel != nil {
		for i, e := range battlers {
			if e.Entity() == sel.Entity() {
				current = i
				break
			}
		}
	}
	next := 0
	if current >= 0 {
		next = ((current+step)%len(battlers) + len(battlers)) % len(battlers)
	}
	Select(ecs, battlers[next])
}

// Hit takes amount of health from a battler and shows the damage motion. A
// battler brought down to zero is left to its stance or defeat pose.
func Hit(battler *donburi.Entry, amount int) {
	h := components.Health.Get(battler)
	if h.Dead() {
		return
	}
	h.Current = max(0, h.Current-amount)
	StartDamageFlash(battler)
	if h.Dead() {
		CancelRevert(battler)
		return
	}
	ForceMotionFor(battler, cfg.Damage.Definition().Name, cfg.Animation.DamageHoldTicks)
}

// Evade shows the evade motion of a living battler.
func Evade(battler *donburi.Entry) {
	if components.Health.Get(battler).Dead() {
		return
	}
	ForceMotionFor(battler, cfg.Evade.Definition().Name, cfg.Animation.EvadeHoldTicks)
}

// UpdateShortcuts applies the keyboard and gamepad shortcuts of the showcase.
func UpdateShortcuts(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionNextBattler).JustPressed {
		CycleSelection(ecs, 1)
	}
	if GetAction(input, cfg.ActionPrevBattler).JustPressed {
		CycleSelection(ecs, -1)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
		SaveCurrentSettings(ecs)
	}

	battler := Selected(ecs)
	if battler == nil {
		return
	}
	switch {
	case GetAction(input, cfg.ActionHit).JustPressed:
		Hit(battler, cfg.UI.DamageAmount)
	case GetAction(input, cfg.ActionEvade).JustPressed:
		Evade(battler)
	case GetAction(input, cfg.ActionRevive).JustPressed:
		Revive(ecs, battler)
	case GetAction(input, cfg.ActionCollapse).JustPressed:
		if components.Health.Get(battler).Dead() {
			StartCollapse(battler)
		}
	}
}

package systems

import (
	"image"

	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every substitute's animation by one tick and
// stores the frame to draw.
func UpdateAnimations(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)

	safeEach(ecs.World, components.Animation, func(sub *donburi.Entry) {
		anim := components.Animation.Get(sub)
		anim.DefeatPose = false
		if anim.Sheet == nil || !anim.Sheet.Ready() {
			anim.Rect = image.Rectangle{}
			return
		}

		collapse := components.Collapse.Get(sub)
		if collapse.Started() {
			anim.Rect = collapse.Frame
			return
		}

		if owner := factory.OwnerOf(sub); owner != nil && awaitingCollapse(owner, collapse) {
			anim.DefeatPose = true
			anim.Rect = anim.Sheet.Layout.FrameRect(config.Damage.Definition().Slot, 0)
			return
		}

		anim.State.SpeedScale = settings.SpeedScale
		anim.State.Advance()
		anim.Rect, _ = anim.State.Rect(anim.Sheet.Layout)
	})
}

// awaitingCollapse reports whether a defeated battler should hold its defeat
// pose. The pose lasts until revive or until the collapse starts.
func awaitingCollapse(owner *donburi.Entry, collapse *components.CollapseData) bool {
	if collapse.Started() {
		return false
	}
	return components.Health.Get(owner).Dead()
}

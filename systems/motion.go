package systems

import (
	"github.com/furamon/svbattler/assets/animations"
	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RequestMotion asks for a motion on the battler's next tick. A later request
// in the same tick replaces an earlier one.
func RequestMotion(battler *donburi.Entry, name string) {
	components.MotionRequest.Get(battler).Request(name)
}

// ForceMotion switches the battler's motion right away, even when the motion
// is already playing, and drops any pending request. Without a substitute the
// motion is kept and applied on the first tick after one exists.
func ForceMotion(battler *donburi.Entry, name string) {
	mr := components.MotionRequest.Get(battler)
	mr.Pending = ""
	sub := factory.SubstituteOf(battler)
	if sub == nil {
		mr.Forced = name
		return
	}
	startMotion(sub, config.MotionByName(name))
}

// ForceMotionFor forces a motion and switches back after ticks. A looping
// motion that was playing is restored; otherwise the battler returns to its
// stance.
func ForceMotionFor(battler *donburi.Entry, name string, ticks int) {
	prior := ""
	if sub := factory.SubstituteOf(battler); sub != nil {
		st := components.Animation.Get(sub).State
		if st.Playing() && st.Cyclic() {
			prior = st.Motion.Name
		}
	}

	ForceMotion(battler, name)

	mr := components.MotionRequest.Get(battler)
	mr.CancelRevert()
	if ticks > 0 {
		mr.Revert = components.RevertData{Active: true, Ticks: ticks, Motion: prior}
	}
}

// CancelRevert stops a pending switch back started by ForceMotionFor.
func CancelRevert(battler *donburi.Entry) {
	components.MotionRequest.Get(battler).CancelRevert()
}

// UpdateMotionRequests applies at most one motion change per battler and
// tick: an expiring revert or a forced motion first, then a pending request,
// then the stance.
func UpdateMotionRequests(ecs *ecs.ECS) {
	safeEach(ecs.World, components.MotionRequest, func(e *donburi.Entry) {
		sub := factory.SubstituteOf(e)
		if sub == nil {
			return
		}
		mr := components.MotionRequest.Get(e)

		if mr.Revert.Active {
			mr.Revert.Ticks--
			if mr.Revert.Ticks <= 0 {
				name := mr.Revert.Motion
				mr.CancelRevert()
				def := ResolveStance(e)
				if name != "" {
					def = config.MotionByName(name)
				}
				startMotion(sub, def)
				return
			}
		}

		if name, ok := mr.TakeForced(); ok {
			mr.Pending = ""
			startMotion(sub, config.MotionByName(name))
			return
		}

		if name, ok := mr.TakePending(); ok {
			if _, forced := components.Battler.Get(e).ForcedMotion(); forced {
				return
			}
			def := config.MotionByName(name)
			st := components.Animation.Get(sub).State
			if st.Playing() && st.Motion.ID == def.ID {
				return
			}
			mr.CancelRevert()
			startMotion(sub, def)
			return
		}

		if !mr.Revert.Active {
			refreshStance(e, sub)
		}
	})
}

// refreshStance returns the battler to its stance once an event motion is
// over or the stance itself changed.
func refreshStance(battler, sub *donburi.Entry) {
	stance := ResolveStance(battler)
	st := components.Animation.Get(sub).State

	switch {
	case !st.Playing():
	case st.Motion.ID == stance.ID:
		return
	case st.Finished():
	case isStance(st.Motion.ID):
	default:
		return
	}
	startMotion(sub, stance)
}

// startMotion restarts the substitute's animation on def.
func startMotion(sub *donburi.Entry, def config.MotionDefinition) {
	anim := components.Animation.Get(sub)
	info := frameInfo(sub.World, anim, def.Slot)
	fixed := anim.Sheet == nil || anim.Sheet.Fixed()
	anim.State.Start(def, info, fixed)
}

func frameInfo(w donburi.World, anim *components.AnimationData, slot int) animations.FrameInfo {
	if anim.Sheet == nil {
		return animations.FrameInfo{FrameCount: 1}
	}
	if loader := factory.SheetLoaderOf(w); loader != nil {
		return *loader.Decoder().FrameInfo(anim.Sheet.Sheet, slot)
	}
	return *animations.NewDecoder().FrameInfo(anim.Sheet.Sheet, slot)
}

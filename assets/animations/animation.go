package animations

import (
	"image"
	"math"

	"github.com/furamon/svbattler/config"
)

// Animation is the playback state of one battler: which motion is showing,
// which pose of it, and how far along the current pose is.
type Animation struct {
	Motion     config.MotionDefinition
	Info       FrameInfo
	Fixed      bool    // no sheet metadata, step through config.Animation.FixedCycle
	SpeedScale float64 // display speed multiplier, 0 = 1
	Looped     bool    // a cyclic motion wrapped at least once

	playing   bool
	pattern   int
	tick      int
	direction int
	cycle     int
	finished  bool
}

func NewAnimation() *Animation {
	return &Animation{direction: 1}
}

// Start switches to a motion and rewinds to its first pose.
func (a *Animation) Start(def config.MotionDefinition, info FrameInfo, fixed bool) {
	if info.FrameCount < 1 {
		info.FrameCount = 1
	}
	a.Motion = def
	a.Info = info
	a.Fixed = fixed
	a.playing = true
	a.Restart()
}

// Restart rewinds the current motion.
func (a *Animation) Restart() {
	a.pattern = 0
	a.tick = 0
	a.direction = 1
	a.cycle = 0
	a.finished = false
	a.Looped = false
}

// Stop returns to the idle state.
func (a *Animation) Stop() {
	a.playing = false
	a.Motion = config.MotionDefinition{ID: config.MotionNone}
	a.Restart()
}

func (a *Animation) Playing() bool {
	return a.playing
}

func (a *Animation) Pattern() int {
	return a.pattern
}

func (a *Animation) TickCount() int {
	return a.tick
}

func (a *Animation) Direction() int {
	return a.direction
}

// Finished reports whether a one-shot motion has shown its last pose for a
// full frame period.
func (a *Animation) Finished() bool {
	return a.finished
}

// Cyclic reports whether the motion repeats instead of holding its last pose.
func (a *Animation) Cyclic() bool {
	switch a.Info.Playback {
	case PlaybackLoop, PlaybackPingPong:
		return true
	case PlaybackFreeze:
		return false
	default:
		return a.Motion.Loop
	}
}

// Speed is the number of ticks each pose is shown.
func (a *Animation) Speed() int {
	speed := config.Animation.DefaultSpeed
	switch {
	case a.Info.HasSpeed():
		speed = a.Info.Speed
	case a.Motion.Speed > 0:
		speed = a.Motion.Speed
	}
	if speed <= 0 {
		speed = 12
	}
	if a.SpeedScale > 0 && a.SpeedScale != 1 {
		speed = int(math.Round(float64(speed) * a.SpeedScale))
	}
	return max(1, speed)
}

// Advance is called once per tick.
func (a *Animation) Advance() {
	if !a.playing {
		return
	}
	a.tick++
	if a.tick < a.Speed() {
		return
	}
	a.tick = 0

	n := a.Info.FrameCount
	if a.Fixed {
		a.stepFixed(n)
		return
	}

	switch a.Info.Playback {
	case PlaybackPingPong:
		a.stepPingPong(n)
	case PlaybackLoop:
		a.stepCyclic(n)
	case PlaybackFreeze:
		a.stepOnce(n)
	default:
		if a.Motion.Loop {
			a.stepCyclic(n)
		} else {
			a.stepOnce(n)
		}
	}
}

func (a *Animation) stepCyclic(n int) {
	a.pattern = (a.pattern + 1) % n
	if a.pattern == 0 {
		a.Looped = true
	}
}

func (a *Animation) stepOnce(n int) {
	if a.pattern >= n-1 {
		a.pattern = n - 1
		a.finished = true
		return
	}
	a.pattern++
}

func (a *Animation) stepPingPong(n int) {
	if n <= 1 {
		a.pattern = 0
		return
	}
	switch {
	case a.pattern <= 0:
		a.pattern = 1
		a.direction = 1
	case a.pattern >= n-1:
		a.pattern = n - 2
		a.direction = -1
		a.Looped = true
	default:
		a.pattern += a.direction
	}
}

// stepFixed walks the pose cycle (0,1,2,1 by default) for looping motions
// and plays the poses once for the rest.
func (a *Animation) stepFixed(n int) {
	if !a.Motion.Loop {
		a.stepOnce(n)
		return
	}
	poses := config.Animation.FixedCycle
	if len(poses) == 0 {
		a.stepCyclic(n)
		return
	}
	a.cycle = (a.cycle + 1) % len(poses)
	if a.cycle == 0 {
		a.Looped = true
	}
	a.pattern = min(poses[a.cycle], n-1)
}

// Rect is the source rectangle of the current pose.
func (a *Animation) Rect(l Layout) (image.Rectangle, bool) {
	if !a.playing || !l.Valid() {
		return image.Rectangle{}, false
	}
	return l.FrameRect(a.Motion.Slot, a.pattern), true
}

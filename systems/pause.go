package systems

import (
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause and lets single ticks through while paused.
// This system should run AFTER UpdateInput but BEFORE the animation systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	pause.Step = false
	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if pause.IsPaused && GetAction(input, cfg.ActionStep).JustPressed {
		pause.Step = true
	}
}

// DrawPause dims the battle field while paused.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float32(cfg.C.FieldWidth)
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Pause.OverlayColor, false)

	if !fonts.Loaded(fonts.Regular) {
		return
	}
	title := "PAUSED"
	// Approximate width calculation for the regular font
	x := int(width)/2 - len(title)*4
	text.Draw(screen, title, fonts.Regular.Get(), x, int(height)/2, cfg.Pause.TextColor)

	hint := "P: Resume   .: Step one tick"
	text.Draw(screen, hint, fonts.Small.Get(), int(width)/2-len(hint)*3, int(height)-12, cfg.Pause.HintColor)
}

// WithPauseCheck wraps a system to skip execution when paused, unless a
// single step was requested.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused && !pause.Step {
			return
		}
		system(e)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ecs.World.Create(components.Pause)
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

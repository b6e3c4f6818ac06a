package systems

import (
	"fmt"
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/fonts"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines frame cells, visible bounds and hit proxies and labels
// every substitute with its motion and pose.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	for _, sub := range substitutesByDepth(ecs.World) {
		s := components.Substitute.Get(sub)
		anim := components.Animation.Get(sub)

		if !anim.Rect.Empty() {
			w, h := float64(anim.Rect.Dx()), float64(anim.Rect.Dy())
			outline(screen, s.X-w/2, s.Y-h, w, h, cfg.Yellow)
		}
		if o, ok := overlayOf(sub, components.OverlayMain); ok && o.Visible {
			outline(screen, o.X, o.Y, o.W, o.H, cfg.Green)
		}
		drawLabel(screen, sub, s)
	}

	components.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) || !components.Overlay.Get(e).Attached {
			return
		}
		obj := components.Object.Get(e)
		outline(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Cyan)
	})

	drawCacheStats(ecs, screen)
}

func drawCacheStats(ecs *ecs.ECS, screen *ebiten.Image) {
	loader := factory.SheetLoaderOf(ecs.World)
	if loader == nil || !fonts.Loaded(fonts.Small) {
		return
	}
	sheets, bytes := loader.Stats()
	label := fmt.Sprintf("Sprite Sheets: %d (%s)  Decoded Slots: %d", sheets, humanize.Bytes(uint64(bytes)), loader.Decoder().Len())
	text.Draw(screen, label, fonts.Small.Get(), 8, 16, cfg.White)
}

func drawLabel(screen *ebiten.Image, sub *donburi.Entry, s *components.SubstituteData) {
	if !fonts.Loaded(fonts.Small) {
		return
	}
	st := components.Animation.Get(sub).State
	label := "-"
	if st.Playing() {
		label = fmt.Sprintf("%s %d/%d", st.Motion.Name, st.Pattern(), st.Info.FrameCount)
	}
	if c := components.Collapse.Get(sub); c.Active {
		label += fmt.Sprintf(" collapse %d", c.Remaining)
	}
	text.Draw(screen, label, fonts.Small.Get(), int(s.X-s.Width/2), int(s.Y)+int(cfg.Substitute.GaugeGap+cfg.Substitute.GaugeHeight)+12, cfg.White)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}

package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/furamon/svbattler/assets"
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/furamon/svbattler/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

// DrawBattlers renders battlers back to front: default sprites of battlers
// without a substitute, then every visible substitute with its shadow.
func DrawBattlers(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Battler.Each(ecs.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		if !sprite.Visible || sprite.Width <= 0 || sprite.Height <= 0 {
			return
		}
		o := components.Object.Get(e)
		if sprite.Image != nil {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(o.X, o.Y)
			screen.DrawImage(sprite.Image, drawOp)
			return
		}
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(sprite.Width), float32(sprite.Height), sprite.Color, false)
	})

	for _, sub := range substitutesByDepth(ecs.World) {
		drawShadow(sub, screen)
		drawSubstitute(sub, screen)
	}
}

// substitutesByDepth returns the visible substitutes, furthest back first.
func substitutesByDepth(w donburi.World) []*donburi.Entry {
	var subs []*donburi.Entry
	tags.Substitute.Each(w, func(e *donburi.Entry) {
		if components.Substitute.Get(e).Visible {
			subs = append(subs, e)
		}
	})
	sort.SliceStable(subs, func(i, j int) bool {
		return components.Substitute.Get(subs[i]).Y < components.Substitute.Get(subs[j]).Y
	})
	return subs
}

func drawShadow(sub *donburi.Entry, screen *ebiten.Image) {
	o, ok := overlayOf(sub, components.OverlayShadow)
	if !ok || !o.Visible {
		return
	}
	// One row per pixel of height approximates the ellipse.
	rows := int(math.Ceil(o.H))
	half := o.H / 2
	for i := 0; i < rows; i++ {
		dy := (float64(i) + 0.5 - half) / half
		w := o.W * math.Sqrt(max(0, 1-dy*dy))
		x := o.X + (o.W-w)/2
		vector.FillRect(screen, float32(x), float32(o.Y)+float32(i), float32(w), 1, cfg.Substitute.ShadowColor, false)
	}
}

func drawSubstitute(sub *donburi.Entry, screen *ebiten.Image) {
	s := components.Substitute.Get(sub)
	anim := components.Animation.Get(sub)
	collapse := components.Collapse.Get(sub)
	if anim.Sheet == nil || anim.Rect.Empty() {
		return
	}

	rect := anim.Rect
	cellW, cellH := float64(rect.Dx()), float64(rect.Dy())

	// Sinking crops the bottom of the frame and lowers what is left.
	cropped := 0
	if collapse.Variant == cfg.CollapseSink && collapse.Sink > 0 {
		cropped = min(rect.Dy(), int(math.Round(cellH*collapse.Sink)))
		rect = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y-cropped)
	}
	img := anim.Sheet.Frame(rect)
	if img == nil {
		return
	}

	var geo ebiten.GeoM
	geo.Translate(-cellW/2, -cellH+float64(cropped))
	if s.Mirrored {
		geo.Scale(-1, 1)
	}
	geo.Translate(s.X+collapse.ShakeX, s.Y)

	if collapse.Active && assets.BlendShader != nil {
		drawBlended(screen, img, geo, collapse.Opacity)
		return
	}

	drawOp.GeoM = geo
	drawOp.ColorScale.Reset()
	if collapse.Active {
		drawOp.ColorScale.ScaleAlpha(collapse.Opacity)
	} else if flash := components.Flash.Get(sub); flash.Active() {
		drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
	}
	screen.DrawImage(img, drawOp)
}

// drawBlended draws a collapsing frame through the blend shader.
func drawBlended(screen, img *ebiten.Image, geo ebiten.GeoM, opacity float32) {
	bc := cfg.Collapse.BlendColor
	b := img.Bounds()

	shaderOp.GeoM = geo
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"BlendColor": []float32{float32(bc.R) / 255, float32(bc.G) / 255, float32(bc.B) / 255, float32(bc.A) / 255},
		"Opacity":    opacity,
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.BlendShader, shaderOp)
	shaderOp.Images[0] = nil
}

// DrawOverlays renders weapons, status markers and health gauges on top of
// every battler.
func DrawOverlays(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)

	for _, sub := range substitutesByDepth(ecs.World) {
		if o, ok := overlayOf(sub, components.OverlayWeapon); ok && o.Visible {
			drawWeapon(o, components.Substitute.Get(sub).Mirrored, screen)
		}
		if o, ok := overlayOf(sub, components.OverlayStatus); ok && o.Visible {
			drawStatus(o, screen)
		}
	}

	if sel := Selected(ecs); sel != nil {
		drawSelectionMarker(sel, screen)
	}

	if !settings.ShowGauges {
		return
	}
	tags.Battler.Each(ecs.World, func(e *donburi.Entry) {
		x, y, ok := gaugeAnchor(e)
		if !ok {
			return
		}
		drawGauge(screen, x, y, components.HealthGauge.Get(e).Shown)
	})
}

// drawSelectionMarker draws a small chevron under the selected battler's feet.
func drawSelectionMarker(e *donburi.Entry, screen *ebiten.Image) {
	x, y, ok := gaugeAnchor(e)
	if !ok {
		return
	}
	y += cfg.Substitute.GaugeHeight + 4
	for i := 0; i < 4; i++ {
		w := float32(2 + i*2)
		vector.FillRect(screen, float32(x)-w/2, float32(y)+float32(i), w, 1, cfg.Yellow, false)
	}
}

func drawWeapon(o *components.OverlayData, mirrored bool, screen *ebiten.Image) {
	// A blade held out in front of the body.
	thickness := float32(max(2, o.H/8))
	y := float32(o.Y + o.H/2)
	vector.FillRect(screen, float32(o.X), y, float32(o.W), thickness, cfg.White, false)
	hilt := float32(o.X + o.W)
	if mirrored {
		hilt = float32(o.X) - thickness
	}
	vector.FillRect(screen, hilt, y-thickness, thickness, thickness*3, cfg.Yellow, false)
}

func drawStatus(o *components.OverlayData, screen *ebiten.Image) {
	size := cfg.Substitute.StatusIconSize
	for x := o.X; x+size <= o.X+o.W+0.5; x += size {
		vector.FillRect(screen, float32(x+1), float32(o.Y+1), float32(size-2), float32(size-2), cfg.Magenta, false)
	}
}

// gaugeAnchor returns the top-center of a battler's gauge. Gauges sit under
// the visible bounds of the substitute, or under the default sprite.
func gaugeAnchor(e *donburi.Entry) (x, y float64, ok bool) {
	if sub := factory.SubstituteOf(e); sub != nil {
		s := components.Substitute.Get(sub)
		if !s.Visible {
			return 0, 0, false
		}
		return s.X, s.Y + cfg.Substitute.GaugeGap, true
	}
	sprite := components.Sprite.Get(e)
	if !sprite.Visible {
		return 0, 0, false
	}
	o := components.Object.Get(e)
	return o.X + o.W/2, o.Y + o.H + cfg.Substitute.GaugeGap, true
}

func drawGauge(screen *ebiten.Image, x, y float64, ratio float32) {
	w, h := cfg.Substitute.GaugeWidth, cfg.Substitute.GaugeHeight
	left := float32(x - w/2)
	vector.FillRect(screen, left-1, float32(y)-1, float32(w)+2, float32(h)+2, cfg.Black, false)

	var fill color.RGBA
	switch {
	case float64(ratio) <= cfg.Animation.DyingRatio:
		fill = cfg.LightRed
	case ratio < 0.5:
		fill = cfg.Yellow
	default:
		fill = cfg.BrightGreen
	}
	vector.FillRect(screen, left, float32(y), float32(w)*max(0, min(1, ratio)), float32(h), fill, false)
}

// overlayOf returns the substitute's child of the given kind.
func overlayOf(sub *donburi.Entry, kind components.OverlayKind) (*components.OverlayData, bool) {
	for _, child := range components.Substitute.Get(sub).Children {
		if !sub.World.Valid(child) {
			continue
		}
		o := components.Overlay.Get(sub.World.Entry(child))
		if o.Kind == kind {
			return o, true
		}
	}
	return nil, false
}

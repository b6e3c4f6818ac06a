package systems

import (
	"image"

	"github.com/furamon/svbattler/assets"
	"github.com/furamon/svbattler/assets/animations"
	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// Geometry is where a battler's substitute stands this tick.
type Geometry struct {
	Anchor   math2.Vec2 // bottom-center of the frame cell
	Width    float64    // visible bounds
	Height   float64
	Mirrored bool
	Visible  bool
}

// UpdateSubstitutes keeps every substitute on its owner: position, mirroring,
// size and visibility, plus the placement of its overlays. Substitutes whose
// owner is gone are removed.
func UpdateSubstitutes(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)

	var orphans []*donburi.Entry
	safeEach(ecs.World, components.Substitute, func(sub *donburi.Entry) {
		owner := factory.OwnerOf(sub)
		if owner == nil {
			orphans = append(orphans, sub)
			return
		}
		syncSubstitute(sub, owner, settings)
		syncOverlays(sub, owner)
	})
	for _, sub := range orphans {
		factory.RemoveSubstitute(ecs, sub)
	}

	safeEach(ecs.World, components.HealthGauge, func(e *donburi.Entry) {
		easeGauge(components.HealthGauge.Get(e), components.Health.Get(e))
	})
}

func syncSubstitute(sub, owner *donburi.Entry, settings *components.SettingsData) {
	s := components.Substitute.Get(sub)
	b := components.Battler.Get(owner)
	anim := components.Animation.Get(sub)
	collapse := components.Collapse.Get(sub)

	// The default representation stays hidden for the substitute's lifetime.
	components.Sprite.Get(owner).Hide()

	obj := components.Object.Get(owner)
	s.X = obj.X + obj.W/2
	s.Y = obj.Y + obj.H

	s.Mirrored = b.KindConfig().Mirrored || (b.Side == config.SideEnemy && settings.MirrorEnemies)

	ready := anim.Sheet != nil && anim.Sheet.Ready()
	if ready {
		vb := anim.Sheet.VisibleBounds()
		s.Width, s.Height = float64(vb.Width), float64(vb.Height)
	} else {
		s.Width, s.Height = 0, 0
	}
	s.Visible = ready && b.Appeared && !collapse.Finished
}

func syncOverlays(sub, owner *donburi.Entry) {
	s := components.Substitute.Get(sub)
	box, hasBox := visibleBox(sub)
	b := components.Battler.Get(owner)

	for _, child := range s.Children {
		if !sub.World.Valid(child) {
			continue
		}
		o := components.Overlay.Get(sub.World.Entry(child))
		switch o.Kind {
		case components.OverlayMain:
			o.X, o.Y = box.Min.X, box.Min.Y
			o.W, o.H = box.Dx(), box.Dy()
			o.Visible = s.Visible && hasBox

		case components.OverlayShadow:
			o.W, o.H = config.Substitute.ShadowWidth, config.Substitute.ShadowHeight
			o.X, o.Y = s.X-o.W/2, s.Y-o.H/2
			o.Visible = s.Visible

		case components.OverlayWeapon:
			dx := config.Substitute.WeaponOffsetX
			if s.Mirrored {
				dx = -dx
			}
			o.W, o.H = box.Dx()/2, box.Dy()/2
			o.X = s.X + dx - o.W/2
			o.Y = box.Min.Y + config.Substitute.WeaponOffsetY + box.Dy()/4
			o.Visible = s.Visible && hasBox && weaponMotion(components.Animation.Get(sub).State)

		case components.OverlayStatus:
			size := config.Substitute.StatusIconSize
			o.W, o.H = size*float64(len(b.Statuses)), size
			o.X = s.X - o.W/2
			o.Y = box.Min.Y - config.Substitute.StatusIconGap - size
			o.Visible = s.Visible && hasBox && len(b.Statuses) > 0
		}
	}
}

// screenBox is a float rectangle in screen space.
type screenBox struct {
	Min, Max math2.Vec2
}

func (b screenBox) Dx() float64 { return b.Max.X - b.Min.X }
func (b screenBox) Dy() float64 { return b.Max.Y - b.Min.Y }

// visibleBox places the sheet's visible bounds around the substitute's
// anchor, flipped when mirrored.
func visibleBox(sub *donburi.Entry) (screenBox, bool) {
	s := components.Substitute.Get(sub)
	anim := components.Animation.Get(sub)
	if anim.Sheet == nil || !anim.Sheet.Ready() {
		return screenBox{}, false
	}
	vb := anim.Sheet.VisibleBounds()
	left := s.X - float64(vb.CellWidth)/2
	top := s.Y - float64(vb.CellHeight)
	x := left + float64(vb.Rect.Min.X)
	if s.Mirrored {
		x = left + float64(vb.CellWidth-vb.Rect.Max.X)
	}
	y := top + float64(vb.Rect.Min.Y)
	return screenBox{
		Min: math2.Vec2{X: x, Y: y},
		Max: math2.Vec2{X: x + float64(vb.Width), Y: y + float64(vb.Height)},
	}, true
}

func weaponMotion(st *animations.Animation) bool {
	if !st.Playing() {
		return false
	}
	switch st.Motion.ID {
	case config.Thrust, config.Swing, config.Missile:
		return true
	}
	return false
}

// easeGauge moves the drawn gauge towards the health ratio.
func easeGauge(g *components.HealthGaugeData, h *components.HealthData) {
	target := float32(h.Ratio())
	if target != g.Target {
		g.Target = target
		g.Tween = gween.New(g.Shown, target, config.Substitute.GaugeEaseTicks, ease.OutQuad)
	}
	if g.Tween == nil {
		g.Shown = g.Target
		return
	}
	var done bool
	g.Shown, done = g.Tween.Update(1)
	if done {
		g.Shown = g.Target
		g.Tween = nil
	}
}

// CurrentFrame returns the sheet and source rectangle drawn for a battler this
// tick. ok is false while there is nothing to draw.
func CurrentFrame(battler *donburi.Entry) (sheet *assets.SheetAsset, rect image.Rectangle, ok bool) {
	sub := factory.SubstituteOf(battler)
	if sub == nil {
		return nil, image.Rectangle{}, false
	}
	anim := components.Animation.Get(sub)
	if anim.Sheet == nil || anim.Rect.Empty() || !components.Substitute.Get(sub).Visible {
		return anim.Sheet, anim.Rect, false
	}
	return anim.Sheet, anim.Rect, true
}

// SubstituteGeometry returns the synced position and size of a battler's
// substitute.
func SubstituteGeometry(battler *donburi.Entry) (Geometry, bool) {
	sub := factory.SubstituteOf(battler)
	if sub == nil {
		return Geometry{}, false
	}
	s := components.Substitute.Get(sub)
	return Geometry{
		Anchor:   math2.Vec2{X: s.X, Y: s.Y},
		Width:    s.Width,
		Height:   s.Height,
		Mirrored: s.Mirrored,
		Visible:  s.Visible,
	}, true
}

// VisibleBounds returns the visible bounds of a battler's sheet. ok is false
// until the sheet is ready.
func VisibleBounds(battler *donburi.Entry) (animations.VisibleBounds, bool) {
	sub := factory.SubstituteOf(battler)
	if sub == nil {
		return animations.VisibleBounds{}, false
	}
	anim := components.Animation.Get(sub)
	if anim.Sheet == nil || !anim.Sheet.Ready() {
		return animations.VisibleBounds{}, false
	}
	return anim.Sheet.VisibleBounds(), true
}

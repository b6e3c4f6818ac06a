package systems

import (
	"github.com/furamon/svbattler/components"
	"github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/systems/factory"
	"github.com/furamon/svbattler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitProxies moves the hit proxy of every main overlay onto the
// overlay's box. Proxies of hidden overlays leave the space.
func UpdateHitProxies(ecs *ecs.ECS) {
	space := factory.SpaceOf(ecs.World)
	if space == nil {
		return
	}
	pad := config.Substitute.HitProxyPadding

	safeEach(ecs.World, components.Overlay, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		o := components.Overlay.Get(e)
		obj := components.Object.Get(e).Object

		if !o.Visible || o.W <= 0 || o.H <= 0 {
			if o.Attached {
				space.Remove(obj)
				o.Attached = false
			}
			return
		}

		obj.X, obj.Y = o.X-pad, o.Y-pad
		obj.W, obj.H = o.W+pad*2, o.H+pad*2
		if !o.Attached {
			space.Add(obj)
			o.Attached = true
		}
		obj.Update()
	})
}

// HitTest returns the battler whose substitute is drawn at x, y. When
// substitutes overlap the one in front (largest anchor Y) wins.
func HitTest(ecs *ecs.ECS, x, y float64) (*donburi.Entry, bool) {
	space := factory.SpaceOf(ecs.World)
	if space == nil {
		return nil, false
	}

	probe := resolv.NewObject(x, y, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvHitProxy)
	if check == nil {
		return nil, false
	}

	var best *donburi.Entry
	bestY := 0.0
	for _, obj := range check.Objects {
		if x < obj.X || x >= obj.X+obj.W || y < obj.Y || y >= obj.Y+obj.H {
			continue
		}
		e, ok := obj.Data.(*donburi.Entry)
		if !ok || !e.Valid() {
			continue
		}
		o := components.Overlay.Get(e)
		if !ecs.World.Valid(o.Substitute) {
			continue
		}
		sub := ecs.World.Entry(o.Substitute)
		owner := factory.OwnerOf(sub)
		if owner == nil {
			continue
		}
		if sy := components.Substitute.Get(sub).Y; best == nil || sy > bestY {
			best, bestY = owner, sy
		}
	}
	return best, best != nil
}

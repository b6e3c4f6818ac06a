package factory

import (
	"log"

	"github.com/furamon/svbattler/archetypes"
	"github.com/furamon/svbattler/assets"
	"github.com/furamon/svbattler/assets/animations"
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SubstituteOf returns the battler's substitute entry, or nil.
func SubstituteOf(battler *donburi.Entry) *donburi.Entry {
	if battler == nil || !battler.Valid() || !battler.HasComponent(components.SubstituteLink) {
		return nil
	}
	link := components.SubstituteLink.Get(battler)
	if link.Entity == donburi.Null || !battler.World.Valid(link.Entity) {
		return nil
	}
	return battler.World.Entry(link.Entity)
}

// OwnerOf returns the battler a substitute stands in for, or nil.
func OwnerOf(sub *donburi.Entry) *donburi.Entry {
	s := components.Substitute.Get(sub)
	if s.Owner == donburi.Null || !sub.World.Valid(s.Owner) {
		return nil
	}
	return sub.World.Entry(s.Owner)
}

// CreateSubstitute builds the visual stand-in of a battler from its kind's
// sheet and hides the battler's default representation. A sheet that cannot
// be loaded leaves the substitute invisible.
func CreateSubstitute(ecs *ecs.ECS, battler *donburi.Entry) *donburi.Entry {
	if sub := SubstituteOf(battler); sub != nil {
		return sub
	}

	b := components.Battler.Get(battler)
	kind := b.KindConfig()

	var sheet *assets.SheetAsset
	if loader := SheetLoaderOf(ecs.World); loader != nil {
		var err error
		sheet, err = loader.Load(kind.SheetName, b.Layout)
		if err != nil {
			log.Printf("Warning: No sheet for battler %s: %v", b.Name, err)
		}
	} else {
		log.Printf("Warning: No sheet loader registered, battler %s stays invisible", b.Name)
	}

	sub := archetypes.Substitute.Spawn(ecs)

	strength := kind.ShakeStrength
	if strength == 0 {
		strength = cfg.Collapse.ShakeStrength
	}
	components.Animation.SetValue(sub, components.AnimationData{
		Sheet: sheet,
		State: animations.NewAnimation(),
	})
	components.Collapse.SetValue(sub, components.CollapseData{
		Variant:  b.Collapse,
		Strength: strength,
		Opacity:  1,
	})

	children := []donburi.Entity{
		createOverlay(ecs, sub, components.OverlayMain),
		createOverlay(ecs, sub, components.OverlayShadow),
	}
	if kind.HasWeapon {
		children = append(children, createOverlay(ecs, sub, components.OverlayWeapon))
	}
	children = append(children, createOverlay(ecs, sub, components.OverlayStatus))

	components.Substitute.SetValue(sub, components.SubstituteData{
		Owner:    battler.Entity(),
		Children: children,
	})
	components.SubstituteLink.SetValue(battler, components.SubstituteLinkData{Entity: sub.Entity()})
	components.Sprite.Get(battler).Hide()

	return sub
}

func createOverlay(ecs *ecs.ECS, sub *donburi.Entry, kind components.OverlayKind) donburi.Entity {
	if kind != components.OverlayMain {
		e := archetypes.Overlay.Spawn(ecs)
		components.Overlay.SetValue(e, components.OverlayData{Kind: kind, Substitute: sub.Entity()})
		return e.Entity()
	}

	// The main image carries the hit proxy. It joins the space once visible.
	e := archetypes.Overlay.Spawn(ecs, components.Object)
	components.Overlay.SetValue(e, components.OverlayData{Kind: kind, Substitute: sub.Entity()})
	obj := resolv.NewObject(0, 0, 1, 1, tags.ResolvHitProxy)
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	return e.Entity()
}

// DestroySubstitute removes a battler's substitute, cancels a pending motion
// revert and restores the default representation.
func DestroySubstitute(ecs *ecs.ECS, battler *donburi.Entry) {
	if battler.HasComponent(components.MotionRequest) {
		components.MotionRequest.Get(battler).CancelRevert()
	}

	sub := SubstituteOf(battler)
	if sub == nil {
		return
	}
	RemoveSubstitute(ecs, sub)

	components.SubstituteLink.SetValue(battler, components.SubstituteLinkData{Entity: donburi.Null})
	components.Sprite.Get(battler).Show()
}

// RemoveSubstitute removes a substitute entity with its children and their
// hit proxies. It does not touch the owner.
func RemoveSubstitute(ecs *ecs.ECS, sub *donburi.Entry) {
	space := SpaceOf(ecs.World)
	for _, child := range components.Substitute.Get(sub).Children {
		if !ecs.World.Valid(child) {
			continue
		}
		ce := ecs.World.Entry(child)
		if ce.HasComponent(components.Object) {
			overlay := components.Overlay.Get(ce)
			if overlay.Attached && space != nil {
				space.Remove(components.Object.Get(ce).Object)
			}
			overlay.Attached = false
		}
		ecs.World.Remove(child)
	}
	ecs.World.Remove(sub.Entity())
}

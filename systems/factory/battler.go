package factory

import (
	"github.com/furamon/svbattler/archetypes"
	"github.com/furamon/svbattler/assets"
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBattler spawns a battler at its formation placement. The battler
// starts with its default representation; CreateSubstitute replaces it.
func CreateBattler(ecs *ecs.ECS, p assets.Placement) *donburi.Entry {
	kind := cfg.BattlerKind(p.Kind)

	sideTag, resolvTag, tint := tags.Actor, tags.ResolvActor, cfg.Cyan
	if p.Side == cfg.SideEnemy {
		sideTag, resolvTag, tint = tags.Enemy, tags.ResolvEnemy, cfg.LightRed
	}
	battler := archetypes.Battler.Spawn(ecs, sideTag, components.SubstituteLink)

	obj := resolv.NewObject(p.X, p.Y, kind.Width, kind.Height)
	obj.AddTags(tags.ResolvBattler, resolvTag)
	obj.Data = battler
	components.Object.SetValue(battler, components.ObjectData{Object: obj})
	if space := SpaceOf(ecs.World); space != nil {
		space.Add(obj)
	}

	layout := kind.Layout
	if p.Layout != cfg.LayoutAuto {
		layout = p.Layout
	}
	collapse := kind.Collapse
	if p.Collapse != "" {
		collapse = cfg.ParseCollapseVariant(p.Collapse)
	}

	name := p.Name
	if name == "" {
		name = kind.Name
	}
	components.Battler.SetValue(battler, components.BattlerData{
		Name:     name,
		Kind:     p.Kind,
		Side:     p.Side,
		Appeared: true,
		Layout:   layout,
		Collapse: collapse,
	})
	components.Health.SetValue(battler, components.HealthData{
		Current: kind.Health,
		Max:     kind.Health,
	})
	components.HealthGauge.SetValue(battler, components.HealthGaugeData{
		Shown:  1,
		Target: 1,
	})
	components.Sprite.SetValue(battler, components.SpriteData{
		Color:   tint,
		Width:   kind.Width,
		Height:  kind.Height,
		Visible: true,
	})
	components.SubstituteLink.SetValue(battler, components.SubstituteLinkData{Entity: donburi.Null})

	return battler
}

// RemoveBattler tears down the battler's substitute and removes it from the
// field.
func RemoveBattler(ecs *ecs.ECS, battler *donburi.Entry) {
	if !battler.Valid() {
		return
	}
	DestroySubstitute(ecs, battler)
	if space := SpaceOf(ecs.World); space != nil {
		if obj := components.Object.Get(battler); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	ecs.World.Remove(battler.Entity())
}

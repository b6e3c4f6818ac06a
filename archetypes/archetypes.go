package archetypes

import (
	"github.com/furamon/svbattler/components"
	cfg "github.com/furamon/svbattler/config"
	"github.com/furamon/svbattler/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Sheets = newArchetype(
		components.Sheets,
	)
	Battler = newArchetype(
		tags.Battler,
		components.Battler,
		components.Object,
		components.Health,
		components.HealthGauge,
		components.Sprite,
		components.MotionRequest,
	)
	Substitute = newArchetype(
		tags.Substitute,
		components.Substitute,
		components.Animation,
		components.Collapse,
		components.Flash,
	)
	Overlay = newArchetype(
		tags.Overlay,
		components.Overlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

package factory

import (
	"github.com/furamon/svbattler/archetypes"
	"github.com/furamon/svbattler/assets"
	"github.com/furamon/svbattler/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// SpaceOf returns the battle field's space, or nil before it exists.
func SpaceOf(w donburi.World) *resolv.Space {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// CreateSheets registers the sheet loader used by substitutes.
func CreateSheets(ecs *ecs.ECS, loader *assets.SheetLoader) *donburi.Entry {
	e := archetypes.Sheets.Spawn(ecs)
	components.Sheets.SetValue(e, components.SheetsData{Loader: loader})
	return e
}

// SheetLoaderOf returns the registered sheet loader, or nil.
func SheetLoaderOf(w donburi.World) *assets.SheetLoader {
	e, ok := components.Sheets.First(w)
	if !ok {
		return nil
	}
	return components.Sheets.Get(e).Loader
}

package components

import "github.com/yohamta/donburi"

// SelectionData is the battler the showcase controls act on.
type SelectionData struct {
	Entity donburi.Entity
}

var Selection = donburi.NewComponentType[SelectionData]()

package components

import "github.com/yohamta/donburi"

// PauseData freezes the battle. Step lets exactly one tick through.
type PauseData struct {
	IsPaused bool
	Step     bool
}

var Pause = donburi.NewComponentType[PauseData]()

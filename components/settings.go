package components

import (
	"github.com/furamon/svbattler/assets"
	"github.com/yohamta/donburi"
)

// SettingsData holds the display options of the battle view.
type SettingsData struct {
	Debug         bool
	MirrorEnemies bool
	SpeedScale    float64
	ShowGauges    bool
}

var Settings = donburi.NewComponentType[SettingsData]()

// SheetsData gives systems access to the loaded sheets.
type SheetsData struct {
	Loader *assets.SheetLoader
}

var Sheets = donburi.NewComponentType[SheetsData]()

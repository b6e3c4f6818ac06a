package config

import "image/color"

// DisplaySettingsConfig lists the choices offered for the persisted display
// settings.
type DisplaySettingsConfig struct {
	// Frame duration multipliers, the first one is the default
	SpeedScales []float64
	AppName     string
}

// PauseConfig contains pause overlay values
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
}

// DisplaySettings is the global display settings configuration
var DisplaySettings DisplaySettingsConfig

var Pause PauseConfig

func init() {
	DisplaySettings = DisplaySettingsConfig{
		SpeedScales: []float64{1, 2, 4, 0.5},
		AppName:     "svbattler",
	}

	Pause = PauseConfig{
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 96},
		TextColor:    White,
		HintColor:    color.RGBA{R: 180, G: 180, B: 200, A: 255},
	}
}

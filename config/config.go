package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer used by the battle scene.
const Default ecs.LayerID = 0

// Config holds the logical screen size.
type Config struct {
	Width  int
	Height int

	// FieldWidth is the part of the screen left of the motion panel.
	FieldWidth int
}

// AnimationConfig contains playback timing values
type AnimationConfig struct {
	// Ticks per frame when neither the sheet nor the motion sets one
	DefaultSpeed int

	// Pose sequence for sheets without embedded metadata
	FixedCycle []int

	// Ticks a forced damage/evade pose is held before reverting
	DamageHoldTicks int
	EvadeHoldTicks  int

	// Health ratio at or below which the stance becomes "dying"
	DyingRatio float64

	// Red flash when taking damage (ticks)
	DamageFlashTicks int
}

// SheetConfig describes the sheet grid conventions.
type SheetConfig struct {
	FixedColumns    int // columns of a fixed-layout sheet
	MotionsPerBlock int // rows; motions sharing a column block
	SampleOffsetX   int // terminator sampling offset from a frame's top-left
	SampleOffsetY   int
	Directory       string // default directory searched for sheets
	Extension       string
}

// SubstituteConfig contains values for the visual stand-in of a battler.
type SubstituteConfig struct {
	ShadowWidth     float64
	ShadowHeight    float64
	ShadowColor     color.RGBA
	WeaponOffsetX   float64
	WeaponOffsetY   float64
	StatusIconSize  float64
	StatusIconGap   float64 // gap above the visible bounds
	GaugeWidth      float64
	GaugeHeight     float64
	GaugeGap        float64 // gap below the visible bounds
	GaugeEaseTicks  float32 // ticks for the gauge to catch up to health
	MirrorEnemies   bool
	HitProxyPadding float64
}

// CollapseVariant selects how a defeated battler disappears.
type CollapseVariant int

const (
	CollapseNone CollapseVariant = iota
	CollapseFade
	CollapseSink
)

func (v CollapseVariant) String() string {
	switch v {
	case CollapseFade:
		return "fade"
	case CollapseSink:
		return "sink"
	default:
		return "none"
	}
}

// ParseCollapseVariant maps a config/TMX string onto a variant.
func ParseCollapseVariant(s string) CollapseVariant {
	switch s {
	case "fade":
		return CollapseFade
	case "sink":
		return CollapseSink
	case "none":
		return CollapseNone
	default:
		return Collapse.Variant
	}
}

// CollapseConfig contains defeat effect values
type CollapseConfig struct {
	Variant       CollapseVariant
	Duration      int     // ticks
	SinkDuration  int     // ticks, sink variant
	ShakeStrength float64 // max shake offset in pixels, 0 = no shake
	BlendColor    color.RGBA

	// Ticks a defeated battler holds its defeat pose before collapsing on
	// its own. 0 waits for an explicit StartCollapse.
	AutoStartDelay int
}

// UIConfig contains showcase panel values
type UIConfig struct {
	PanelWidth     int
	ButtonWidth    int
	ButtonHeight   int
	FontSize       float64
	SmallFontSize  float64
	PanelColor     color.RGBA
	ButtonIdle     color.RGBA
	ButtonHover    color.RGBA
	ButtonPressed  color.RGBA
	ButtonDisabled color.RGBA
	TextColor      color.RGBA
	DamageAmount   int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBounds bool // draw frame rects and visible bounds
	LogDecoder bool // trace every decoded motion
}

// Global configuration instances
var C *Config
var Animation AnimationConfig
var Sheet SheetConfig
var Substitute SubstituteConfig
var Collapse CollapseConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Cyan        = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Shadow      = color.RGBA{R: 0, G: 0, B: 0, A: 96}
	Background  = color.RGBA{R: 24, G: 28, B: 44, A: 255}
)

func init() {
	C = &Config{
		Width:      996,
		Height:     624,
		FieldWidth: 816,
	}

	Animation = AnimationConfig{
		DefaultSpeed:    12,
		FixedCycle:      []int{0, 1, 2, 1},
		DamageHoldTicks: 24,
		EvadeHoldTicks:  24,
		DyingRatio:      0.25,

		DamageFlashTicks: 8,
	}

	Sheet = SheetConfig{
		FixedColumns:    9,
		MotionsPerBlock: 6,
		SampleOffsetX:   1,
		SampleOffsetY:   1,
		Directory:       "sv_actors",
		Extension:       ".png",
	}

	Substitute = SubstituteConfig{
		ShadowWidth:     48,
		ShadowHeight:    12,
		ShadowColor:     Shadow,
		WeaponOffsetX:   -16,
		WeaponOffsetY:   0,
		StatusIconSize:  16,
		StatusIconGap:   4,
		GaugeWidth:      48,
		GaugeHeight:     4,
		GaugeGap:        4,
		GaugeEaseTicks:  20,
		MirrorEnemies:   true,
		HitProxyPadding: 2,
	}

	Collapse = CollapseConfig{
		Variant:       CollapseFade,
		Duration:      32,
		SinkDuration:  48,
		ShakeStrength: 0,
		BlendColor:    color.RGBA{R: 255, G: 128, B: 128, A: 128},

		AutoStartDelay: 24,
	}

	UI = UIConfig{
		PanelWidth:     180,
		ButtonWidth:    80,
		ButtonHeight:   20,
		FontSize:       12,
		SmallFontSize:  10,
		PanelColor:     color.RGBA{R: 20, G: 20, B: 30, A: 220},
		ButtonIdle:     color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:    color.RGBA{R: 80, G: 80, B: 100, A: 255},
		ButtonPressed:  color.RGBA{R: 40, G: 40, B: 60, A: 255},
		ButtonDisabled: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		TextColor:      White,
		DamageAmount:   25,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowBounds: false,
		LogDecoder: false,
	}
}

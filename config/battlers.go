package config

// LayoutMode selects how a sheet's grid is interpreted.
type LayoutMode int

const (
	LayoutAuto LayoutMode = iota
	LayoutFixed
	LayoutVariable
)

func (m LayoutMode) String() string {
	switch m {
	case LayoutFixed:
		return "fixed"
	case LayoutVariable:
		return "variable"
	default:
		return "auto"
	}
}

// ParseLayoutMode maps a config/TMX string onto a layout mode.
func ParseLayoutMode(s string) LayoutMode {
	switch s {
	case "fixed":
		return LayoutFixed
	case "variable":
		return LayoutVariable
	default:
		return LayoutAuto
	}
}

// Side is the party a battler fights for.
type Side int

const (
	SideActor Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SideEnemy {
		return "enemy"
	}
	return "actor"
}

// BattlerKindConfig contains configuration for a kind of battler
type BattlerKindConfig struct {
	Name      string
	SheetName string // resolved to <Sheet.Directory>/<SheetName><Sheet.Extension>
	Layout    LayoutMode
	Health    int

	// Visual
	Mirrored      bool            // draw flipped horizontally
	Collapse      CollapseVariant // CollapseNone keeps the body on the field
	ShakeStrength float64
	HasWeapon     bool

	// Canonical (default representation) size in pixels
	Width  float64
	Height float64
}

// Battlers maps a kind key (as used by formations) to its configuration.
var Battlers = map[string]BattlerKindConfig{
	"hero": {
		Name:      "Hero",
		SheetName: "Actor1_1",
		Layout:    LayoutAuto,
		Health:    120,
		Collapse:  CollapseNone,
		HasWeapon: true,
		Width:     64,
		Height:    64,
	},
	"mage": {
		Name:      "Mage",
		SheetName: "Actor1_8",
		Layout:    LayoutAuto,
		Health:    80,
		Collapse:  CollapseNone,
		Width:     64,
		Height:    64,
	},
	"slime": {
		Name:      "Slime",
		SheetName: "Slime",
		Layout:    LayoutVariable,
		Health:    60,
		Mirrored:  true,
		Collapse:  CollapseSink,
		Width:     64,
		Height:    64,
	},
	"dragon": {
		Name:          "Dragon",
		SheetName:     "Dragon",
		Layout:        LayoutVariable,
		Health:        400,
		Mirrored:      true,
		Collapse:      CollapseFade,
		ShakeStrength: 6,
		Width:         128,
		Height:        128,
	},
}

// BattlerKind returns the configuration for a kind, falling back to a
// minimal kind named after the key.
func BattlerKind(key string) BattlerKindConfig {
	if k, ok := Battlers[key]; ok {
		return k
	}
	return BattlerKindConfig{
		Name:      key,
		SheetName: key,
		Layout:    LayoutAuto,
		Health:    100,
		Collapse:  Collapse.Variant,
		Width:     64,
		Height:    64,
	}
}

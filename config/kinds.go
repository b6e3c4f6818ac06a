package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// kindFile is one battler kind as written in a kinds file. Omitted fields
// keep the value of the built-in kind with the same key.
type kindFile struct {
	Name     string   `yaml:"name"`
	Sheet    string   `yaml:"sheet"`
	Layout   string   `yaml:"layout"`
	Health   int      `yaml:"health"`
	Mirrored *bool    `yaml:"mirrored"`
	Collapse string   `yaml:"collapse"`
	Shake    *float64 `yaml:"shake"`
	Weapon   *bool    `yaml:"weapon"`
	Width    float64  `yaml:"width"`
	Height   float64  `yaml:"height"`
}

type kindsFile struct {
	Battlers map[string]kindFile `yaml:"battlers"`
}

// LoadBattlerKinds reads battler kinds from a YAML file and merges them into
// Battlers. It returns the number of kinds read.
//
//	battlers:
//	  bat:
//	    sheet: Bat
//	    layout: variable
//	    health: 40
//	    collapse: fade
func LoadBattlerKinds(fsys fs.FS, path string) (int, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return 0, fmt.Errorf("read battler kinds %s: %w", path, err)
	}

	var file kindsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse battler kinds %s: %w", path, err)
	}

	for key, k := range file.Battlers {
		Battlers[key] = k.merge(BattlerKind(key))
	}
	return len(file.Battlers), nil
}

func (k kindFile) merge(base BattlerKindConfig) BattlerKindConfig {
	if k.Name != "" {
		base.Name = k.Name
	}
	if k.Sheet != "" {
		base.SheetName = k.Sheet
	}
	if k.Layout != "" {
		base.Layout = ParseLayoutMode(k.Layout)
	}
	if k.Health > 0 {
		base.Health = k.Health
	}
	if k.Mirrored != nil {
		base.Mirrored = *k.Mirrored
	}
	if k.Collapse != "" {
		base.Collapse = ParseCollapseVariant(k.Collapse)
	}
	if k.Shake != nil {
		base.ShakeStrength = *k.Shake
	}
	if k.Weapon != nil {
		base.HasWeapon = *k.Weapon
	}
	if k.Width > 0 {
		base.Width = k.Width
	}
	if k.Height > 0 {
		base.Height = k.Height
	}
	return base
}

package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/furamon/svbattler/config"
	"github.com/lafriks/go-tiled"
)

//go:embed formations/*.tmx
var formationFS embed.FS

// DefaultFormation is the embedded formation used when none is given.
const DefaultFormation = "formations/default.tmx"

// ErrFormationNotFound is returned when a formation map does not exist.
var ErrFormationNotFound = errors.New("formation not found")

// Placement is one battler's home position in a formation.
type Placement struct {
	Name     string
	Kind     string // key into config.Battlers
	Side     config.Side
	X, Y     float64
	Layout   config.LayoutMode // overrides the kind's layout when not auto
	Collapse string            // overrides the kind's collapse variant when set
}

// Formation holds where every battler of a fight stands.
type Formation struct {
	Name    string
	Width   int
	Height  int
	Actors  []Placement
	Enemies []Placement
}

// All returns actors followed by enemies.
func (f *Formation) All() []Placement {
	all := make([]Placement, 0, len(f.Actors)+len(f.Enemies))
	all = append(all, f.Actors...)
	return append(all, f.Enemies...)
}

// LoadDefaultFormation loads the embedded default formation.
func LoadDefaultFormation() (*Formation, error) {
	return LoadFormation(formationFS, DefaultFormation)
}

// LoadFormation reads a Tiled map whose "Actors" and "Enemies" object groups
// hold one object per battler. The kind comes from the object's "battler"
// property.
func LoadFormation(fsys fs.FS, p string) (*Formation, error) {
	if _, err := fs.Stat(fsys, p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFormationNotFound, p)
		}
		return nil, fmt.Errorf("stat formation %s: %w", p, err)
	}

	m, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load formation %s: %w", p, err)
	}

	f := &Formation{
		Name:   p,
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		var side config.Side
		switch og.Name {
		case "Actors":
			side = config.SideActor
		case "Enemies":
			side = config.SideEnemy
		default:
			continue
		}

		for _, o := range og.Objects {
			kind := o.Properties.GetString("battler")
			if kind == "" {
				kind = o.Class
			}
			if kind == "" {
				kind = o.Type //nolint:staticcheck // older TMX files use type=
			}
			if kind == "" {
				return nil, fmt.Errorf("formation %s: object %d has no battler kind", p, o.ID)
			}
			pl := Placement{
				Name:     o.Name,
				Kind:     kind,
				Side:     side,
				X:        o.X,
				Y:        o.Y,
				Layout:   config.ParseLayoutMode(o.Properties.GetString("layout")),
				Collapse: o.Properties.GetString("collapse"),
			}
			if pl.Name == "" {
				pl.Name = config.BattlerKind(kind).Name
			}
			if side == config.SideActor {
				f.Actors = append(f.Actors, pl)
			} else {
				f.Enemies = append(f.Enemies, pl)
			}
		}
	}

	// Sort by Y so battlers further back are created (and drawn) first
	byDepth := func(ps []Placement) {
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Y < ps[j].Y })
	}
	byDepth(f.Actors)
	byDepth(f.Enemies)

	return f, nil
}

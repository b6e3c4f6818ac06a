package components

import (
	"github.com/yohamta/donburi"
)

// SubstituteData is the visual stand-in of a battler. Position and size are
// kept in sync with the owner every tick.
type SubstituteData struct {
	Owner    donburi.Entity
	Mirrored bool
	Visible  bool

	// X, Y is the anchor: bottom-center of the frame cell.
	X, Y float64

	// Width, Height are the visible bounds of the sheet.
	Width, Height float64

	Children []donburi.Entity
}

// SubstituteLinkData points a battler at its substitute.
type SubstituteLinkData struct {
	Entity donburi.Entity
}

// OverlayKind identifies a child of a substitute.
type OverlayKind int

const (
	OverlayMain OverlayKind = iota
	OverlayShadow
	OverlayWeapon
	OverlayStatus
)

func (k OverlayKind) String() string {
	switch k {
	case OverlayShadow:
		return "shadow"
	case OverlayWeapon:
		return "weapon"
	case OverlayStatus:
		return "status"
	default:
		return "main"
	}
}

// OverlayData is a child drawn with a substitute.
type OverlayData struct {
	Kind       OverlayKind
	Substitute donburi.Entity
	X, Y       float64 // top-left
	W, H       float64
	Visible    bool
	Attached   bool // hit proxy is in the space
}

var Substitute = donburi.NewComponentType[SubstituteData]()
var SubstituteLink = donburi.NewComponentType[SubstituteLinkData]()
var Overlay = donburi.NewComponentType[OverlayData]()

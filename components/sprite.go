package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a battler's default representation, drawn while it has no
// substitute.
type SpriteData struct {
	Image   *ebiten.Image // nil draws a filled rectangle
	Color   color.RGBA
	Width   float64
	Height  float64
	Visible bool

	// size kept while hidden
	savedWidth  float64
	savedHeight float64
	hidden      bool
}

// Hide collapses the sprite to zero size and makes it invisible.
func (s *SpriteData) Hide() {
	if !s.hidden {
		s.savedWidth, s.savedHeight = s.Width, s.Height
		s.hidden = true
	}
	s.Width, s.Height = 0, 0
	s.Visible = false
}

// Show restores the sprite hidden by Hide.
func (s *SpriteData) Show() {
	if !s.hidden {
		return
	}
	s.Width, s.Height = s.savedWidth, s.savedHeight
	s.Visible = true
	s.hidden = false
}

func (s *SpriteData) Hidden() bool {
	return s.hidden
}

var Sprite = donburi.NewComponentType[SpriteData]()

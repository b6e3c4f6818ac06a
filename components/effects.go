package components

import "github.com/yohamta/donburi"

// FlashData tracks sprite flash effect (damage flash)
type FlashData struct {
	Duration int     // ticks remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

// Active reports whether the flash tints the current tick.
func (f *FlashData) Active() bool {
	// Alternate every two ticks so the flash reads as a flicker.
	return f.Duration > 0 && f.Duration%4 < 2
}

var Flash = donburi.NewComponentType[FlashData]()

package components

import (
	"image"

	"github.com/furamon/svbattler/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// CollapseData drives the disappearance of a defeated battler.
type CollapseData struct {
	Variant  config.CollapseVariant
	Strength float64 // shake, pixels

	Active    bool
	Finished  bool
	Duration  int
	Remaining int
	Waiting   int // ticks spent in the defeat pose

	Opacity float32
	ShakeX  float64
	Sink    float64 // fraction of the frame height cropped from the bottom

	// Frame is the sheet rect captured when the collapse started.
	Frame image.Rectangle
	Fade  *gween.Tween
}

// Started reports whether the collapse is running or done.
func (c *CollapseData) Started() bool {
	return c.Active || c.Finished
}

var Collapse = donburi.NewComponentType[CollapseData]()

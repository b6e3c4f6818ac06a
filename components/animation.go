package components

import (
	"image"

	"github.com/furamon/svbattler/assets"
	"github.com/furamon/svbattler/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData is the playback state of a substitute's sheet.
type AnimationData struct {
	Sheet *assets.SheetAsset
	State *animations.Animation

	// Rect is the frame drawn this tick, empty when nothing can be drawn.
	Rect image.Rectangle

	// DefeatPose is set while a defeated battler waits for its collapse.
	DefeatPose bool
}

var Animation = donburi.NewComponentType[AnimationData]()

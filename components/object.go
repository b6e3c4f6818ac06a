package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a collision object. On a battler it is the canonical
// position and size; on a substitute's main overlay it is the hit proxy.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds every object of the battle field.
var Space = donburi.NewComponentType[resolv.Space]()

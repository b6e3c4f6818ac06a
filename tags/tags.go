package tags

import "github.com/yohamta/donburi"

var (
	Battler    = donburi.NewTag().SetName("Battler")
	Actor      = donburi.NewTag().SetName("Actor")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Substitute = donburi.NewTag().SetName("Substitute")
	Overlay    = donburi.NewTag().SetName("Overlay")
)

// Resolv tags for hit testing
const (
	ResolvBattler  = "battler"
	ResolvHitProxy = "hitproxy"
	ResolvProbe    = "probe"
	ResolvActor    = "actor"
	ResolvEnemy    = "enemy"
)

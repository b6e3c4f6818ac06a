package components

import (
	"github.com/furamon/svbattler/config"
	"github.com/yohamta/donburi"
)

// Status is an active state effect on a battler. A status with a
// ForcedMotion pins the battler's stance to that motion.
type Status struct {
	ID           string
	ForcedMotion string
}

// BattlerData is what the battle engine knows about a combatant.
type BattlerData struct {
	Name     string
	Kind     string // key into config.Battlers
	Side     config.Side
	Appeared bool
	Guarding bool
	Chanting bool
	Statuses []Status

	// Per-battler overrides taken from the formation
	Layout   config.LayoutMode
	Collapse config.CollapseVariant
}

// KindConfig returns the configuration of the battler's kind.
func (b *BattlerData) KindConfig() config.BattlerKindConfig {
	return config.BattlerKind(b.Kind)
}

// ForcedMotion returns the motion of the first status that forces one.
func (b *BattlerData) ForcedMotion() (string, bool) {
	for _, s := range b.Statuses {
		if s.ForcedMotion != "" {
			return s.ForcedMotion, true
		}
	}
	return "", false
}

// AddStatus adds a status unless one with the same id is already active.
func (b *BattlerData) AddStatus(s Status) {
	for _, have := range b.Statuses {
		if have.ID == s.ID {
			return
		}
	}
	b.Statuses = append(b.Statuses, s)
}

// RemoveStatus drops the status with the given id.
func (b *BattlerData) RemoveStatus(id string) {
	kept := b.Statuses[:0]
	for _, s := range b.Statuses {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	b.Statuses = kept
}

var Battler = donburi.NewComponentType[BattlerData]()

package config

// MotionID identifies a battler motion. The value is also the motion's slot in
// the sheet grid: slot%MotionsPerBlock is the row, slot/MotionsPerBlock the
// column block.
type MotionID int

const (
	MotionNone MotionID = -1

	Walk MotionID = iota - 1
	Wait
	Chant
	Guard
	Damage
	Evade
	Thrust
	Swing
	Missile
	Skill
	Spell
	Item
	Escape
	Victory
	Dying
	Abnormal
	Sleep
	Dead
)

// MotionDefinition describes how a motion is laid out and played back.
type MotionDefinition struct {
	ID    MotionID
	Name  string
	Slot  int
	Loop  bool
	Speed int // ticks per frame, 0 = use the global default
}

// Motions is the catalog, indexed by slot.
var Motions = []MotionDefinition{
	{ID: Walk, Name: "walk", Slot: 0, Loop: true},
	{ID: Wait, Name: "wait", Slot: 1, Loop: true},
	{ID: Chant, Name: "chant", Slot: 2, Loop: true},
	{ID: Guard, Name: "guard", Slot: 3, Loop: true},
	{ID: Damage, Name: "damage", Slot: 4},
	{ID: Evade, Name: "evade", Slot: 5},
	{ID: Thrust, Name: "thrust", Slot: 6},
	{ID: Swing, Name: "swing", Slot: 7},
	{ID: Missile, Name: "missile", Slot: 8},
	{ID: Skill, Name: "skill", Slot: 9},
	{ID: Spell, Name: "spell", Slot: 10},
	{ID: Item, Name: "item", Slot: 11},
	{ID: Escape, Name: "escape", Slot: 12, Loop: true},
	{ID: Victory, Name: "victory", Slot: 13, Loop: true},
	{ID: Dying, Name: "dying", Slot: 14, Loop: true, Speed: 16},
	{ID: Abnormal, Name: "abnormal", Slot: 15, Loop: true},
	{ID: Sleep, Name: "sleep", Slot: 16, Loop: true, Speed: 20},
	{ID: Dead, Name: "dead", Slot: 17, Loop: true},
}

// motionAliases maps battle-event names onto catalog motions.
var motionAliases = map[string]MotionID{
	"attack": Thrust,
	"hit":    Damage,
	"defeat": Dead,
	"idle":   Wait,
}

var motionsByName map[string]MotionID

func init() {
	motionsByName = make(map[string]MotionID, len(Motions)+len(motionAliases))
	for _, m := range Motions {
		motionsByName[m.Name] = m.ID
	}
	for alias, id := range motionAliases {
		motionsByName[alias] = id
	}
}

// LookupMotion resolves a motion name. ok is false for unknown names.
func LookupMotion(name string) (MotionDefinition, bool) {
	id, ok := motionsByName[name]
	if !ok {
		return Motions[Walk], false
	}
	return Motions[id], true
}

// MotionByName resolves a motion name, falling back to walk for unknown names.
func MotionByName(name string) MotionDefinition {
	def, _ := LookupMotion(name)
	return def
}

// Definition returns the catalog entry of a motion id.
func (m MotionID) Definition() MotionDefinition {
	if m < 0 || int(m) >= len(Motions) {
		return Motions[Walk]
	}
	return Motions[m]
}

func (m MotionID) String() string {
	if m < 0 || int(m) >= len(Motions) {
		return "none"
	}
	return Motions[m].Name
}

// MotionBlocks returns how many column blocks the catalog occupies.
func MotionBlocks() int {
	per := Sheet.MotionsPerBlock
	if per <= 0 {
		per = 6
	}
	return (len(Motions) + per - 1) / per
}

package components

import "github.com/yohamta/donburi"

// RevertData restores a motion after a forced one has been shown for a
// number of ticks.
type RevertData struct {
	Active bool
	Ticks  int
	Motion string
}

// MotionRequestData holds the motion changes asked for by battle events.
// Pending is advisory and consumed once per tick; Forced is an immediate
// override that arrived before the battler had a substitute.
type MotionRequestData struct {
	Pending string
	Forced  string
	Revert  RevertData
}

// Request replaces any pending request.
func (m *MotionRequestData) Request(name string) {
	m.Pending = name
}

// TakePending returns and clears the pending request.
func (m *MotionRequestData) TakePending() (string, bool) {
	name := m.Pending
	m.Pending = ""
	return name, name != ""
}

// TakeForced returns and clears the recorded forced motion.
func (m *MotionRequestData) TakeForced() (string, bool) {
	name := m.Forced
	m.Forced = ""
	return name, name != ""
}

// CancelRevert stops a running revert countdown.
func (m *MotionRequestData) CancelRevert() {
	m.Revert = RevertData{}
}

var MotionRequest = donburi.NewComponentType[MotionRequestData]()

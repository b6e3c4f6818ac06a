package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int
}

// Dead reports whether the battler has no health left.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

// Ratio returns Current/Max in [0,1].
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	r := float64(h.Current) / float64(h.Max)
	return max(0, min(1, r))
}

// HealthGaugeData eases the drawn gauge towards the battler's health.
type HealthGaugeData struct {
	Shown  float32 // ratio currently drawn
	Target float32 // ratio the tween is heading to
	Tween  *gween.Tween
}

var Health = donburi.NewComponentType[HealthData]()
var HealthGauge = donburi.NewComponentType[HealthGaugeData]()

package components

import "testing"

func TestSpriteHideShow(t *testing.T) {
	s := SpriteData{Width: 64, Height: 48, Visible: true}

	s.Hide()
	s.Hide()
	if s.Visible || s.Width != 0 || s.Height != 0 || !s.Hidden() {
		t.Fatalf("expected a hidden zero-size sprite, got %+v", s)
	}

	s.Show()
	if !s.Visible || s.Width != 64 || s.Height != 48 || s.Hidden() {
		t.Errorf("expected the original size back, got %+v", s)
	}

	// Show on a sprite that was never hidden keeps it as is
	s.Width = 10
	s.Show()
	if s.Width != 10 {
		t.Errorf("expected no change, got width %v", s.Width)
	}
}

func TestHealthRatio(t *testing.T) {
	tests := []struct {
		name string
		h    HealthData
		want float64
		dead bool
	}{
		{name: "full", h: HealthData{Current: 80, Max: 80}, want: 1},
		{name: "quarter", h: HealthData{Current: 20, Max: 80}, want: 0.25},
		{name: "zero", h: HealthData{Current: 0, Max: 80}, want: 0, dead: true},
		{name: "overkill", h: HealthData{Current: -5, Max: 80}, want: 0, dead: true},
		{name: "no max", h: HealthData{Current: 5}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.h.Ratio(); got != tt.want {
				t.Errorf("expected ratio %v, got %v", tt.want, got)
			}
			if tt.h.Dead() != tt.dead {
				t.Errorf("expected dead=%v", tt.dead)
			}
		})
	}
}

func TestMotionRequest(t *testing.T) {
	var m MotionRequestData

	if _, ok := m.TakePending(); ok {
		t.Error("expected nothing pending")
	}
	m.Request("thrust")
	m.Request("swing")
	if name, ok := m.TakePending(); !ok || name != "swing" {
		t.Errorf("expected the last request, got %q", name)
	}
	if _, ok := m.TakePending(); ok {
		t.Error("expected the request to be consumed")
	}

	m.Forced = "evade"
	if name, ok := m.TakeForced(); !ok || name != "evade" {
		t.Errorf("expected the forced motion, got %q", name)
	}

	m.Revert = RevertData{Active: true, Ticks: 5, Motion: "wait"}
	m.CancelRevert()
	if m.Revert.Active || m.Revert.Motion != "" {
		t.Errorf("expected the revert to be cleared, got %+v", m.Revert)
	}
}

func TestBattlerStatuses(t *testing.T) {
	var b BattlerData
	if _, ok := b.ForcedMotion(); ok {
		t.Error("expected no forced motion")
	}

	b.AddStatus(Status{ID: "poison"})
	b.AddStatus(Status{ID: "sleep", ForcedMotion: "sleep"})
	b.AddStatus(Status{ID: "stone", ForcedMotion: "abnormal"})
	b.AddStatus(Status{ID: "sleep", ForcedMotion: "dead"})

	if len(b.Statuses) != 3 {
		t.Errorf("expected duplicates to be ignored, got %d statuses", len(b.Statuses))
	}
	if name, _ := b.ForcedMotion(); name != "sleep" {
		t.Errorf("expected the first forcing status to win, got %q", name)
	}

	b.RemoveStatus("sleep")
	if name, _ := b.ForcedMotion(); name != "abnormal" {
		t.Errorf("expected abnormal after waking, got %q", name)
	}
}

func TestFlashActive(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{3, false},
		{4, true},
		{5, true},
		{8, true},
	}

	for _, tt := range tests {
		f := FlashData{Duration: tt.duration}
		if f.Active() != tt.want {
			t.Errorf("duration %d: expected active=%v", tt.duration, tt.want)
		}
	}
}

func TestCollapseStarted(t *testing.T) {
	var c CollapseData
	if c.Started() {
		t.Error("expected a fresh collapse not to be started")
	}
	c.Active = true
	if !c.Started() {
		t.Error("expected a running collapse to be started")
	}
	c.Active, c.Finished = false, true
	if !c.Started() {
		t.Error("expected a finished collapse to be started")
	}
}

package textedit

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestBeginShowsCaret(t *testing.T) {
	s := NewSession(0)

	s.Begin(3, t0)

	if !s.Active() {
		t.Error("session should be active after Begin")
	}
	if !s.CaretVisible() {
		t.Error("caret should be visible immediately after Begin")
	}
	idx, ok := s.Target()
	if !ok || idx != 3 {
		t.Errorf("Target() = (%d, %v), want (3, true)", idx, ok)
	}
}

func TestBeginNewTarget(t *testing.T) {
	s := NewSession(0)
	s.BeginNew(t0)

	if _, ok := s.Target(); ok {
		t.Error("Target() should report false while editing the in-progress annotation")
	}
	if !s.Active() {
		t.Error("session should be active")
	}
}

func TestEndHidesCaret(t *testing.T) {
	s := NewSession(0)
	s.BeginNew(t0)
	s.End()

	if s.Active() {
		t.Error("session should be inactive after End")
	}
	if s.CaretVisible() {
		t.Error("caret should be hidden after End")
	}
}

func TestPollBlinkToggles(t *testing.T) {
	s := NewSession(100 * time.Millisecond)
	s.BeginNew(t0)

	if s.PollBlink(t0.Add(50 * time.Millisecond)) {
		t.Error("poll before the interval should not toggle")
	}
	if !s.CaretVisible() {
		t.Error("caret should still be visible")
	}

	if !s.PollBlink(t0.Add(100 * time.Millisecond)) {
		t.Error("poll at the interval should toggle")
	}
	if s.CaretVisible() {
		t.Error("caret should be hidden after the first toggle")
	}

	// Timer restarts from the toggle, not from Begin.
	if s.PollBlink(t0.Add(150 * time.Millisecond)) {
		t.Error("poll half an interval after a toggle should not toggle again")
	}
	if !s.PollBlink(t0.Add(200 * time.Millisecond)) {
		t.Error("poll one interval after a toggle should toggle")
	}
	if !s.CaretVisible() {
		t.Error("caret should be visible again after the second toggle")
	}
}

func TestPollBlinkInactive(t *testing.T) {
	s := NewSession(100 * time.Millisecond)

	if s.PollBlink(t0.Add(time.Hour)) {
		t.Error("inactive session should never toggle")
	}
}

func TestPollBlinkZeroValueSession(t *testing.T) {
	var s Session
	s.Begin(0, time.Time{})

	// The zero lastToggle initializes the timer without toggling.
	if s.PollBlink(t0) {
		t.Error("first poll should initialize, not toggle")
	}
	if !s.PollBlink(t0.Add(DefaultBlinkInterval)) {
		t.Error("zero-value session should fall back to the default interval")
	}
}

func TestNewSessionIntervalFallback(t *testing.T) {
	s := NewSession(-1)
	s.BeginNew(t0)

	if s.PollBlink(t0.Add(DefaultBlinkInterval - time.Millisecond)) {
		t.Error("toggle before the default interval")
	}
	if !s.PollBlink(t0.Add(DefaultBlinkInterval)) {
		t.Error("no toggle at the default interval")
	}
}

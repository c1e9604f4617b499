// Package textedit tracks which text annotation is receiving keyboard input
// and owns the caret-blink timer.
//
// Blink timing is centralized behind a single PollBlink method. Every event
// path (idle ticks, focus changes, keystrokes) polls the same session, so
// there is exactly one timer and one visibility flag; independent timers
// cannot drift out of sync or double-toggle.
package textedit

import "time"

// TargetNew means the session edits the most recently created, not yet
// committed, text annotation rather than an existing one.
const TargetNew = -1

// Session is the state of one text-edit interaction. The zero value is an
// inactive session with the default blink interval; use NewSession to set a
// custom interval.
type Session struct {
	active bool
	target int

	caretVisible bool
	lastToggle   time.Time
	interval     time.Duration
}

// DefaultBlinkInterval is the caret-blink half-period.
const DefaultBlinkInterval = 500 * time.Millisecond

// NewSession creates an inactive session with the given blink interval.
// Non-positive intervals fall back to DefaultBlinkInterval.
func NewSession(interval time.Duration) *Session {
	if interval <= 0 {
		interval = DefaultBlinkInterval
	}
	return &Session{target: TargetNew, interval: interval}
}

// Begin starts an edit session on an existing annotation index.
// The caret is shown immediately and the blink timer restarts.
func (s *Session) Begin(target int, now time.Time) {
	s.active = true
	s.target = target
	s.caretVisible = true
	s.lastToggle = now
}

// BeginNew starts an edit session targeting the in-progress annotation.
func (s *Session) BeginNew(now time.Time) {
	s.Begin(TargetNew, now)
}

// End deactivates the session and hides the caret.
func (s *Session) End() {
	s.active = false
	s.target = TargetNew
	s.caretVisible = false
}

// Active reports whether a text annotation is currently being edited.
func (s *Session) Active() bool {
	return s.active
}

// Target returns the index of the annotation under edit. The second return
// is false when the session targets the in-progress (most recently created)
// annotation instead of a committed one.
func (s *Session) Target() (int, bool) {
	if !s.active || s.target == TargetNew {
		return 0, false
	}
	return s.target, true
}

// CaretVisible reports the current caret visibility. Only meaningful while
// the session is active.
func (s *Session) CaretVisible() bool {
	return s.active && s.caretVisible
}

// PollBlink advances the blink timer. If the session is active and at least
// one interval has elapsed since the last toggle, visibility flips and the
// timer resets. Reports whether visibility changed, in which case the
// caller should request a redraw.
func (s *Session) PollBlink(now time.Time) bool {
	if !s.active {
		return false
	}
	interval := s.interval
	if interval <= 0 {
		interval = DefaultBlinkInterval
	}
	if s.lastToggle.IsZero() {
		s.lastToggle = now
		return false
	}
	if now.Sub(s.lastToggle) < interval {
		return false
	}
	s.caretVisible = !s.caretVisible
	s.lastToggle = now
	return true
}

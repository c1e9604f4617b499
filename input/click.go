package input

import (
	"time"

	"github.com/gogpu/ink/geom"
)

// Double-click defaults: two right-clicks within the window and within the
// distance threshold count as one double-click.
const (
	DefaultDoubleClickWindow   = 500 * time.Millisecond
	DefaultDoubleClickDistance = 5.0 // device pixels
)

// clickTracker detects double-clicks by comparing each click against the
// previous one. Distance is compared squared to avoid a square root.
type clickTracker struct {
	window    time.Duration
	maxDistSq float64

	seen     bool
	lastTime time.Time
	lastPos  geom.Point
}

func newClickTracker(window time.Duration, maxDistance float64) clickTracker {
	if window <= 0 {
		window = DefaultDoubleClickWindow
	}
	if maxDistance <= 0 {
		maxDistance = DefaultDoubleClickDistance
	}
	return clickTracker{window: window, maxDistSq: maxDistance * maxDistance}
}

// record registers a click and reports whether it completes a double-click.
// A click with no prior history is never a double-click. Negative elapsed
// time (clock skew) starts a new sequence.
func (t *clickTracker) record(pos geom.Point, now time.Time) bool {
	double := false
	if t.seen {
		elapsed := now.Sub(t.lastTime)
		if elapsed >= 0 && elapsed <= t.window &&
			pos.DistanceSquared(t.lastPos) <= t.maxDistSq {
			double = true
		}
	}
	t.seen = true
	t.lastTime = now
	t.lastPos = pos
	return double
}

func (t *clickTracker) reset() {
	t.seen = false
	t.lastTime = time.Time{}
	t.lastPos = geom.Point{}
}

// Package input interprets raw pointer and keyboard events into mutations
// of the annotation document and the text-edit session.
//
// The Interpreter is an event-driven state machine with four states: Idle,
// Drawing, ShapeDrag, and TextEdit. It owns the in-progress geometry (the
// stroke or rectangle under the pointer, the not-yet-committed text
// annotation), the held-key set used for the shape-modifier and undo-chord
// checks, and the double-click tracker.
//
// All handlers are synchronous and run on the host's event-loop goroutine.
// Handlers never render; any state change requests a redraw through a
// callback, and the host performs a separate idempotent render pass over
// the latest committed state.
package input

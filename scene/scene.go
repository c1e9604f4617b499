// Package scene holds the annotation document: the ordered collections of
// strokes, rectangles, and text annotations, together with the append-only
// action log consumed tail-first by undo.
//
// The document maintains one invariant at every observable point:
//
//	len(actions) == len(strokes) + len(shapes) + len(texts)
//
// Every commit appends to a per-kind collection and to the action log
// atomically; undo pops the log tail and the tail of the matching
// collection. No other code path touches the collections, so the invariant
// cannot drift. In-progress geometry (the stroke or rectangle under the
// pointer, the text annotation still receiving keystrokes) lives outside
// the document until its commit point.
package scene

import "github.com/gogpu/ink/geom"

// Document owns the committed annotation state of one whiteboard.
// It is not safe for concurrent use; the event-loop goroutine is the single
// writer by construction.
type Document struct {
	strokes []Stroke
	shapes  []Rectangle
	texts   []TextAnnotation
	actions []Action

	// version is incremented on each mutation for cache invalidation.
	version uint64
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// CommitStroke appends a finished stroke and its undo record atomically.
// Empty strokes are dropped: a press-release with no movement leaves no
// trace in the document or the log. Reports whether a commit happened.
func (d *Document) CommitStroke(s Stroke) bool {
	if len(s) == 0 {
		return false
	}
	d.strokes = append(d.strokes, s)
	d.actions = append(d.actions, strokeAction(s))
	d.version++
	return true
}

// CommitShape appends a finished rectangle and its undo record atomically.
func (d *Document) CommitShape(r Rectangle) {
	d.shapes = append(d.shapes, r)
	d.actions = append(d.actions, shapeAction(r))
	d.version++
}

// CommitText appends a committed text annotation and its undo record
// atomically. Pending is cleared on the stored copy; empty content is still
// a valid commit and occupies an undo slot.
func (d *Document) CommitText(t TextAnnotation) {
	t.Pending = false
	d.texts = append(d.texts, t)
	d.actions = append(d.actions, textAction(t))
	d.version++
}

// Undo removes the most recent action and the tail of the matching
// collection. Undo on an empty log is a no-op, never an error.
// Reports whether anything was undone.
func (d *Document) Undo() bool {
	if len(d.actions) == 0 {
		return false
	}
	last := d.actions[len(d.actions)-1]
	d.actions = d.actions[:len(d.actions)-1]

	switch last.Kind {
	case ActionStroke:
		d.strokes = d.strokes[:len(d.strokes)-1]
	case ActionShape:
		d.shapes = d.shapes[:len(d.shapes)-1]
	case ActionText:
		d.texts = d.texts[:len(d.texts)-1]
	}
	d.version++
	return true
}

// Strokes returns the committed strokes in insertion order.
// The returned slice is owned by the document; callers must not mutate it.
func (d *Document) Strokes() []Stroke {
	return d.strokes
}

// Shapes returns the committed rectangles in insertion order.
func (d *Document) Shapes() []Rectangle {
	return d.shapes
}

// Texts returns the committed text annotations in insertion order.
func (d *Document) Texts() []TextAnnotation {
	return d.texts
}

// Text returns a pointer to the i-th text annotation for in-place edits
// during a re-edit session, or nil if the index is out of range.
func (d *Document) Text(i int) *TextAnnotation {
	if i < 0 || i >= len(d.texts) {
		return nil
	}
	return &d.texts[i]
}

// Touch records a content mutation made through Text, bumping the version
// so render caches refresh.
func (d *Document) Touch() {
	d.version++
}

// ActionCount returns the length of the action log. Hosts use it to enable
// or disable an undo control.
func (d *Document) ActionCount() int {
	return len(d.actions)
}

// Version returns the mutation counter. It changes on every commit, undo,
// and touched edit.
func (d *Document) Version() uint64 {
	return d.version
}

// IsEmpty reports whether the document holds no committed annotations.
func (d *Document) IsEmpty() bool {
	return len(d.actions) == 0 &&
		len(d.strokes) == 0 && len(d.shapes) == 0 && len(d.texts) == 0
}

// HitText returns the index of the first text annotation, in collection
// order, whose cached bounding box contains the point. The second return
// is false when no box contains the point.
func (d *Document) HitText(p geom.Point) (int, bool) {
	for i := range d.texts {
		if d.texts[i].Bounds.Contains(p) {
			return i, true
		}
	}
	return 0, false
}

package input

import (
	"time"
	"unicode"

	"github.com/gogpu/ink/geom"
	"github.com/gogpu/ink/scene"
	"github.com/gogpu/ink/textedit"
)

// DefaultShapeModifier is the held key that switches a left drag from
// freehand drawing to rectangle dragging.
const DefaultShapeModifier = 's'

// Options configures an Interpreter. The zero value selects defaults
// everywhere.
type Options struct {
	// ShapeModifier is the character key that, when held during a left
	// press, starts a rectangle drag instead of a stroke.
	ShapeModifier rune

	// DoubleClickWindow and DoubleClickDistance tune right-click
	// double-click detection.
	DoubleClickWindow   time.Duration
	DoubleClickDistance float64

	// Color and FontSize seed the current drawing attributes.
	Color    geom.RGBA
	FontSize float64

	// Clock supplies monotonic time for click and blink windows.
	// Defaults to time.Now.
	Clock func() time.Time

	// Redraw is invoked after any state change that affects rendering.
	Redraw func()

	// Measure refreshes a text annotation's cached bounding box after a
	// content change. Supplied by the engine, backed by the external text
	// shaping collaborator.
	Measure func(*scene.TextAnnotation)
}

// Interpreter consumes pointer and keyboard events and drives the document
// and the text-edit session. It owns all in-progress geometry; nothing
// reaches the document's collections except through commit.
type Interpreter struct {
	doc     *scene.Document
	session *textedit.Session

	state  State
	held   heldKeys
	clicks clickTracker

	viewportW float64
	viewportH float64
	cursor    geom.Point

	stroke    scene.Stroke
	shapeOn   bool // a rectangle drag recorded its first corner
	shapeFull bool // the drag also produced a second corner
	shapeA    geom.Point
	shapeB    geom.Point
	pending   *scene.TextAnnotation

	color         geom.RGBA
	fontSize      float64
	shapeModifier rune

	now     func() time.Time
	redraw  func()
	measure func(*scene.TextAnnotation)
}

// New creates an interpreter bound to a document and an edit session.
func New(doc *scene.Document, session *textedit.Session, opts Options) *Interpreter {
	if opts.ShapeModifier == 0 {
		opts.ShapeModifier = DefaultShapeModifier
	}
	if opts.FontSize <= 0 {
		opts.FontSize = 16
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	zero := geom.RGBA{}
	if opts.Color == zero {
		opts.Color = geom.Black
	}
	return &Interpreter{
		doc:           doc,
		session:       session,
		held:          newHeldKeys(),
		clicks:        newClickTracker(opts.DoubleClickWindow, opts.DoubleClickDistance),
		viewportW:     1,
		viewportH:     1,
		color:         opts.Color,
		fontSize:      opts.FontSize,
		shapeModifier: opts.ShapeModifier,
		now:           opts.Clock,
		redraw:        opts.Redraw,
		measure:       opts.Measure,
	}
}

// State returns the interpreter's current mode.
func (in *Interpreter) State() State { return in.state }

// SetViewport records the drawable size in device pixels, used to normalize
// stroke and shape geometry into [-1,1] clip space.
func (in *Interpreter) SetViewport(width, height float64) {
	if width > 0 {
		in.viewportW = width
	}
	if height > 0 {
		in.viewportH = height
	}
}

// SetColor changes the color applied to new strokes, shapes, and texts.
func (in *Interpreter) SetColor(c geom.RGBA) { in.color = c }

// Color returns the current drawing color.
func (in *Interpreter) Color() geom.RGBA { return in.color }

// SetFontSize changes the font size applied to new text annotations.
func (in *Interpreter) SetFontSize(size float64) {
	if size > 0 {
		in.fontSize = size
	}
}

// FontSize returns the current font size.
func (in *Interpreter) FontSize() float64 { return in.fontSize }

// InProgressStroke returns the stroke being dragged, if any.
func (in *Interpreter) InProgressStroke() scene.Stroke { return in.stroke }

// InProgressShape returns the rectangle being dragged and whether one
// exists. The preview exists only once the drag has produced two corners.
func (in *Interpreter) InProgressShape() (scene.Rectangle, bool) {
	if !in.shapeOn || !in.shapeFull {
		return scene.Rectangle{}, false
	}
	return scene.Rectangle{First: in.shapeA, Last: in.shapeB, Color: in.color}, true
}

// PendingText returns the not-yet-committed text annotation under edit,
// or nil. Re-edited committed annotations live in the document instead.
func (in *Interpreter) PendingText() *scene.TextAnnotation { return in.pending }

// Pointer handles a button press or release.
func (in *Interpreter) Pointer(ev PointerEvent) {
	in.cursor = ev.Position

	switch ev.Button {
	case ButtonLeft:
		if ev.Pressed {
			in.leftDown(ev.Position)
		} else {
			in.leftUp()
		}
	case ButtonRight:
		if ev.Pressed {
			in.rightDown(ev.Position)
		}
	}
	in.pollBlink()
}

// PointerMove handles pointer motion at a device-pixel position.
func (in *Interpreter) PointerMove(pos geom.Point) {
	in.cursor = pos

	switch in.state {
	case StateDrawing:
		in.stroke = append(in.stroke, geom.Vtx(in.normalize(pos), in.color))
		in.requestRedraw()
	case StateShapeDrag:
		in.shapeB = in.normalize(pos)
		in.shapeFull = true
		in.requestRedraw()
	}
	in.pollBlink()
}

// Key handles a key press or release.
func (in *Interpreter) Key(ev KeyEvent) {
	if !ev.Pressed {
		in.keyReleased(ev)
		in.pollBlink()
		return
	}
	in.held.press(ev)

	// The undo chord is a held-keys test, not a single keydown, and it
	// works in every state. Checked before insertion so Ctrl+Z never
	// types a 'z' into a pending annotation.
	if in.held.holdsCode(CodeControl) && in.held.holdsChar('z') {
		if in.doc.Undo() {
			in.requestRedraw()
		}
		in.pollBlink()
		return
	}

	if in.state == StateTextEdit {
		in.editKey(ev)
	}
	in.pollBlink()
}

// Focus handles window focus changes. Losing focus clears the held-key set
// so modifiers released outside the window cannot stick, and resets click
// history so a click before the loss cannot pair with one after it.
func (in *Interpreter) Focus(focused bool) {
	if !focused {
		in.held.clear()
		in.clicks.reset()
	}
	in.pollBlink()
}

// Tick is the generic idle callback; it only polls the caret blink timer.
func (in *Interpreter) Tick() {
	in.pollBlink()
}

func (in *Interpreter) leftDown(pos geom.Point) {
	switch in.state {
	case StateTextEdit:
		// Clicking away is a mode exit; the pending text commits first.
		in.commitText()
		in.requestRedraw()
	case StateDrawing, StateShapeDrag:
		return
	}

	if in.held.holdsChar(in.shapeModifier) {
		in.state = StateShapeDrag
		in.shapeOn = true
		in.shapeFull = false
		in.shapeA = in.normalize(pos)
		return
	}
	in.state = StateDrawing
	in.stroke = nil
}

func (in *Interpreter) leftUp() {
	switch in.state {
	case StateDrawing:
		if in.doc.CommitStroke(in.stroke) {
			in.requestRedraw()
		}
		in.stroke = nil
		in.state = StateIdle
	case StateShapeDrag:
		in.commitShape()
	}
}

// commitShape ends a rectangle drag, from pointer release or modifier
// release alike. Drags that never produced a second corner commit nothing.
func (in *Interpreter) commitShape() {
	if in.shapeOn && in.shapeFull {
		in.doc.CommitShape(scene.Rectangle{First: in.shapeA, Last: in.shapeB, Color: in.color})
		in.requestRedraw()
	}
	in.shapeOn = false
	in.shapeFull = false
	in.state = StateIdle
}

func (in *Interpreter) rightDown(pos geom.Point) {
	now := in.now()
	double := in.clicks.record(pos, now)

	if double {
		if idx, ok := in.doc.HitText(pos); ok {
			// Re-edit an existing annotation; any current edit commits.
			if in.state == StateTextEdit {
				in.commitText()
			}
			if t := in.doc.Text(idx); t != nil {
				t.Pending = true
				in.doc.Touch()
			}
			in.session.Begin(idx, now)
			in.state = StateTextEdit
			in.requestRedraw()
			return
		}
	}

	if in.state == StateTextEdit {
		in.commitText()
		if double {
			// A double-click that missed every annotation starts a new
			// entry at the click point.
			in.startText(pos, now)
		} else {
			in.state = StateIdle
		}
		in.requestRedraw()
		return
	}

	in.startText(pos, now)
	in.requestRedraw()
}

func (in *Interpreter) startText(pos geom.Point, now time.Time) {
	t := scene.NewTextAnnotation(pos, in.color, in.fontSize)
	in.pending = &t
	in.refreshBounds(&t, false)
	in.session.BeginNew(now)
	in.state = StateTextEdit
}

// commitText ends the edit session. A new annotation is appended to the
// document with its undo record; a re-edited annotation only clears its
// pending flag, since its original commit already holds the undo slot.
func (in *Interpreter) commitText() {
	if idx, ok := in.session.Target(); ok {
		if t := in.doc.Text(idx); t != nil {
			t.Pending = false
			in.doc.Touch()
		}
	} else if in.pending != nil {
		in.pending.Pending = false
		in.doc.CommitText(*in.pending)
		in.pending = nil
	}
	in.session.End()
	in.state = StateIdle
}

func (in *Interpreter) editKey(ev KeyEvent) {
	t, existing := in.target()
	if t == nil {
		return
	}

	switch ev.Code {
	case CodeEnter, CodeEscape:
		in.commitText()
		in.requestRedraw()
	case CodeBackspace, CodeDelete:
		if t.DeleteLast() {
			in.refreshBounds(t, existing)
			in.requestRedraw()
		}
	case CodeChar:
		if ev.Text == "" {
			return
		}
		t.Append(ev.Text)
		in.refreshBounds(t, existing)
		in.requestRedraw()
	}
}

func (in *Interpreter) keyReleased(ev KeyEvent) {
	in.held.release(ev)

	// Releasing the shape modifier mid-drag ends the rectangle exactly
	// like a pointer release.
	if in.state == StateShapeDrag && ev.Code == CodeChar &&
		unicode.ToLower(ev.Rune) == unicode.ToLower(in.shapeModifier) {
		in.commitShape()
		in.requestRedraw()
	}
}

// target resolves the annotation under edit: a committed one referenced by
// index, or the in-progress pending annotation. existing reports which.
func (in *Interpreter) target() (t *scene.TextAnnotation, existing bool) {
	if idx, ok := in.session.Target(); ok {
		return in.doc.Text(idx), true
	}
	return in.pending, false
}

func (in *Interpreter) refreshBounds(t *scene.TextAnnotation, existing bool) {
	if in.measure != nil {
		in.measure(t)
	}
	if existing {
		in.doc.Touch()
	}
}

// normalize converts device pixels to the symmetric [-1,1] clip space used
// by stroke and shape geometry. Y flips because device space grows
// downward. Text positions are not normalized; the text engine expects
// pixels.
func (in *Interpreter) normalize(p geom.Point) geom.Point {
	return geom.Point{
		X: p.X/in.viewportW*2 - 1,
		Y: -(p.Y/in.viewportH*2 - 1),
	}
}

func (in *Interpreter) pollBlink() {
	if in.session.PollBlink(in.now()) {
		in.requestRedraw()
	}
}

func (in *Interpreter) requestRedraw() {
	if in.redraw != nil {
		in.redraw()
	}
}

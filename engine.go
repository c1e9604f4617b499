package ink

import (
	"time"

	"github.com/gogpu/ink/geom"
	"github.com/gogpu/ink/input"
	"github.com/gogpu/ink/render"
	"github.com/gogpu/ink/scene"
	"github.com/gogpu/ink/textedit"
	"github.com/gogpu/ink/textmeasure"
)

// Engine is the explicitly owned document object of one whiteboard. It
// wires the annotation document, the text-edit session, and the input
// interpreter together, and builds render batches on demand.
//
// Engine is not safe for concurrent use. The host's event-loop goroutine
// is its single owner; nothing blocks or suspends.
type Engine struct {
	doc     *scene.Document
	session *textedit.Session
	interp  *input.Interpreter

	measurer  textmeasure.Measurer
	caret     rune
	viewportW float64
	viewportH float64
}

// New creates an engine with the given options.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Bounds refresh runs per keystroke; memoizing the measurer keeps
	// repeated shaping of the same content out of the hot path.
	measurer := o.measurer
	if measurer != nil {
		measurer = textmeasure.NewCachedMeasurer(measurer, textmeasure.DefaultCacheCapacity)
	}

	e := &Engine{
		doc:       scene.NewDocument(),
		session:   textedit.NewSession(o.blinkInterval),
		measurer:  measurer,
		caret:     o.caret,
		viewportW: o.viewportW,
		viewportH: o.viewportH,
	}
	e.interp = input.New(e.doc, e.session, input.Options{
		ShapeModifier:       o.shapeModifier,
		DoubleClickWindow:   o.doubleClickWindow,
		DoubleClickDistance: o.doubleClickDistance,
		Color:               o.color,
		FontSize:            o.fontSize,
		Clock:               o.clock,
		Redraw:              o.redraw,
		Measure:             e.measureText,
	})
	e.interp.SetViewport(o.viewportW, o.viewportH)

	logger().Info("ink: engine created",
		"viewport_w", o.viewportW, "viewport_h", o.viewportH)
	return e
}

// measureText refreshes an annotation's cached bounding box from the
// external measurer. The box anchors at the annotation position.
func (e *Engine) measureText(t *scene.TextAnnotation) {
	if e.measurer == nil || t == nil {
		return
	}
	size := e.measurer.Measure(t.Content, t.FontSize)
	t.Bounds = geom.Rect{
		X:      t.Position.X,
		Y:      t.Position.Y,
		Width:  size.Width,
		Height: size.Height,
	}
	logger().Debug("ink: text bounds refreshed",
		"len", len(t.Content), "w", size.Width, "h", size.Height)
}

// Pointer feeds a pointer button event into the engine.
func (e *Engine) Pointer(ev input.PointerEvent) {
	e.interp.Pointer(ev)
}

// PointerMove feeds pointer motion, in device pixels.
func (e *Engine) PointerMove(pos geom.Point) {
	e.interp.PointerMove(pos)
}

// Key feeds a keyboard event.
func (e *Engine) Key(ev input.KeyEvent) {
	e.interp.Key(ev)
}

// Focus feeds a window focus change. Focus loss clears held keys and, like
// every other event path, polls the caret blink.
func (e *Engine) Focus(focused bool) {
	e.interp.Focus(focused)
}

// Tick is the host's generic idle callback; it drives the caret blink when
// no other event arrives.
func (e *Engine) Tick() {
	e.interp.Tick()
}

// SetViewport updates the drawable size in device pixels.
func (e *Engine) SetViewport(width, height float64) {
	if width > 0 {
		e.viewportW = width
	}
	if height > 0 {
		e.viewportH = height
	}
	e.interp.SetViewport(width, height)
}

// SetColor changes the color applied to new annotations.
func (e *Engine) SetColor(c geom.RGBA) { e.interp.SetColor(c) }

// SetFontSize changes the font size applied to new text annotations.
func (e *Engine) SetFontSize(size float64) { e.interp.SetFontSize(size) }

// Undo reverses the most recent committed annotation. A no-op on an empty
// log. This is the same operation the Ctrl+Z chord performs; hosts call it
// from toolbar controls. Reports whether anything was undone.
func (e *Engine) Undo() bool {
	ok := e.doc.Undo()
	if ok {
		logger().Debug("ink: undo", "remaining", e.doc.ActionCount())
	}
	return ok
}

// ActionCount returns the undo log length, for enabling host undo controls.
func (e *Engine) ActionCount() int {
	return e.doc.ActionCount()
}

// Document exposes the underlying annotation document for read access.
func (e *Engine) Document() *scene.Document {
	return e.doc
}

// State returns the input interpreter's current mode.
func (e *Engine) State() input.State {
	return e.interp.State()
}

// Frame builds the render batch for the current state: committed
// annotations, live previews, and the caret. It is an idempotent read;
// calling it never changes state.
func (e *Engine) Frame() render.Batch {
	in := render.Input{
		Doc:            e.doc,
		LiveStroke:     e.interp.InProgressStroke(),
		PendingText:    e.interp.PendingText(),
		CaretVisible:   e.session.CaretVisible(),
		Caret:          e.caret,
		ViewportWidth:  e.viewportW,
		ViewportHeight: e.viewportH,
		BaseDirection: func(s string) bool {
			return textmeasure.BaseDirection(s) == textmeasure.DirectionRTL
		},
	}
	if shape, ok := e.interp.InProgressShape(); ok {
		in.LiveShape = &shape
	}
	return render.Build(in)
}

// PollBlink advances the caret blink timer against the given time and
// reports whether visibility flipped. Exposed for hosts that schedule
// their own timers instead of calling Tick.
func (e *Engine) PollBlink(now time.Time) bool {
	return e.session.PollBlink(now)
}

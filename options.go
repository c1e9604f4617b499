package ink

import (
	"time"

	"github.com/gogpu/ink/geom"
	"github.com/gogpu/ink/textmeasure"
)

// Option configures an Engine during creation.
//
// Example:
//
//	eng := ink.New(
//	    ink.WithViewport(800, 600),
//	    ink.WithColor(geom.Blue),
//	    ink.WithRedraw(window.RequestRedraw),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	viewportW float64
	viewportH float64

	color    geom.RGBA
	fontSize float64

	blinkInterval       time.Duration
	doubleClickWindow   time.Duration
	doubleClickDistance float64

	caret         rune
	shapeModifier rune

	clock    func() time.Time
	redraw   func()
	measurer textmeasure.Measurer
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		viewportW: 1,
		viewportH: 1,
		color:     geom.Black,
		fontSize:  16,
	}
}

// WithViewport sets the initial drawable size in device pixels.
// The host should call Engine.SetViewport on resize.
func WithViewport(width, height float64) Option {
	return func(o *engineOptions) {
		o.viewportW = width
		o.viewportH = height
	}
}

// WithColor sets the initial drawing color for strokes, shapes and text.
func WithColor(c geom.RGBA) Option {
	return func(o *engineOptions) {
		o.color = c
	}
}

// WithFontSize sets the initial font size for text annotations, in pixels.
func WithFontSize(size float64) Option {
	return func(o *engineOptions) {
		o.fontSize = size
	}
}

// WithBlinkInterval sets the caret blink half-period. Default 500ms.
func WithBlinkInterval(d time.Duration) Option {
	return func(o *engineOptions) {
		o.blinkInterval = d
	}
}

// WithDoubleClick tunes the right-click double-click detection window and
// distance threshold (device pixels). Defaults: 500ms, 5px.
func WithDoubleClick(window time.Duration, distance float64) Option {
	return func(o *engineOptions) {
		o.doubleClickWindow = window
		o.doubleClickDistance = distance
	}
}

// WithCaret sets the glyph appended to pending text while the caret is
// visible. Default '|'.
func WithCaret(r rune) Option {
	return func(o *engineOptions) {
		o.caret = r
	}
}

// WithShapeModifier sets the character key that switches a left drag from
// freehand drawing to rectangle dragging. Default 's'.
func WithShapeModifier(r rune) Option {
	return func(o *engineOptions) {
		o.shapeModifier = r
	}
}

// WithClock injects the time source used for double-click and caret-blink
// windows. Defaults to time.Now. Tests use this to avoid sleeping.
func WithClock(clock func() time.Time) Option {
	return func(o *engineOptions) {
		o.clock = clock
	}
}

// WithRedraw sets the callback invoked whenever engine state changes in a
// way that affects rendering. Hosts typically request a window redraw here.
// The callback must be cheap and must not render inline.
func WithRedraw(fn func()) Option {
	return func(o *engineOptions) {
		o.redraw = fn
	}
}

// WithMeasurer injects the text measurer used to refresh annotation
// bounding boxes after every content change. Without one, text annotations
// keep empty bounds and cannot be hit-tested for re-editing.
func WithMeasurer(m textmeasure.Measurer) Option {
	return func(o *engineOptions) {
		o.measurer = m
	}
}

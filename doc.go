// Package ink is an annotation state engine for interactive whiteboards.
//
// # Overview
//
// ink interprets raw pointer and keyboard events into a structured,
// undoable scene of freehand strokes, rectangles, and text annotations,
// and emits render-ready geometry: a line-list vertex buffer in [-1,1]
// clip space plus text-layout requests in device pixels. Rasterization,
// glyph layout, and window-system event pumping belong to the host.
//
// # Quick Start
//
//	eng := ink.New(
//	    ink.WithViewport(800, 600),
//	    ink.WithRedraw(window.RequestRedraw),
//	    ink.WithMeasurer(measurer),
//	)
//
//	// Feed host events:
//	eng.Pointer(input.PointerEvent{Position: pos, Button: input.ButtonLeft, Pressed: true})
//	eng.PointerMove(pos)
//	eng.Key(input.KeyEvent{Code: input.CodeChar, Rune: 'h', Text: "h", Pressed: true})
//	eng.Tick() // idle callback, drives the caret blink
//
//	// On redraw, build a frame:
//	batch := eng.Frame()
//	// upload batch.Vertices, hand batch.Texts to the text engine
//
// # Interaction model
//
// A left drag draws a freehand stroke; holding the shape-modifier key
// (default 's') during the press drags a rectangle instead. A right click
// opens a new text annotation at the pointer; a right double-click on an
// existing annotation re-opens it for editing. Enter, Escape, a right
// click, or clicking away commits the annotation. Ctrl+Z undoes the most
// recent committed annotation of any kind.
//
// # Concurrency
//
// The engine is single-threaded and fully synchronous: the host's event
// loop owns it exclusively. Handlers never render; they request redraws
// through the configured callback, and Frame is an idempotent read.
package ink

// Version is the current version of the library.
const Version = "0.1.0"

// Package render turns the annotation document into renderer input: a
// line-list vertex buffer for strokes and shapes, and a list of text-layout
// requests for the external text shaping engine.
//
// Building a batch is a stateless, idempotent read of the document plus any
// in-progress geometry. It never mutates the committed collections; live
// previews are appended to the output only.
package render

import (
	"github.com/gogpu/ink/geom"
	"github.com/gogpu/ink/scene"
)

// DefaultCaret is the glyph appended to a pending annotation while the
// caret is visible.
const DefaultCaret = '|'

// TextRequest is one text-layout request for the external text engine.
// Position and Bounds are in device pixels.
type TextRequest struct {
	Text     string
	Position geom.Point
	Bounds   geom.Rect
	Color    geom.RGBA
	FontSize float64

	// RTL is the paragraph base direction hint for shaping.
	RTL bool
}

// Batch is one frame's worth of renderer input.
type Batch struct {
	// Vertices is line-list geometry in [-1,1] clip space: every
	// consecutive pair is one independent segment.
	Vertices []geom.Vertex

	// Texts are the layout requests, in annotation order, pending last.
	Texts []TextRequest
}

// Input gathers everything a batch is built from. Doc is required; the
// live fields carry uncommitted geometry so the user sees previews.
type Input struct {
	Doc *scene.Document

	LiveStroke  scene.Stroke
	LiveShape   *scene.Rectangle
	PendingText *scene.TextAnnotation

	// CaretVisible appends the caret glyph to pending annotations.
	CaretVisible bool
	// Caret overrides DefaultCaret when non-zero.
	Caret rune

	// ViewportWidth and ViewportHeight clamp text bounds, in device pixels.
	ViewportWidth  float64
	ViewportHeight float64

	// BaseDirection reports whether a string should be laid out
	// right-to-left. Optional; when nil every request is LTR.
	BaseDirection func(string) bool
}

// Build produces the render batch for the current state.
func Build(in Input) Batch {
	var b Batch
	if in.Doc == nil {
		return b
	}

	for _, s := range in.Doc.Strokes() {
		b.Vertices = appendStrokeSegments(b.Vertices, s)
	}
	b.Vertices = appendStrokeSegments(b.Vertices, in.LiveStroke)

	for _, r := range in.Doc.Shapes() {
		b.Vertices = r.AppendVertices(b.Vertices)
	}
	if in.LiveShape != nil {
		b.Vertices = in.LiveShape.AppendVertices(b.Vertices)
	}

	for i := range in.Doc.Texts() {
		b.Texts = append(b.Texts, buildTextRequest(&in.Doc.Texts()[i], in))
	}
	if in.PendingText != nil {
		b.Texts = append(b.Texts, buildTextRequest(in.PendingText, in))
	}
	return b
}

// appendStrokeSegments expands a stroke into adjacent-point segment pairs
// for the line-list primitive: a stroke of n>=2 vertices contributes
// (n-1)*2 vertices. Shorter strokes emit nothing, so degenerate geometry
// never reaches the GPU.
func appendStrokeSegments(dst []geom.Vertex, s scene.Stroke) []geom.Vertex {
	if len(s) < 2 {
		return dst
	}
	for i := 0; i < len(s)-1; i++ {
		dst = append(dst, s[i], s[i+1])
	}
	return dst
}

func buildTextRequest(t *scene.TextAnnotation, in Input) TextRequest {
	content := t.Content
	if t.Pending && in.CaretVisible {
		caret := in.Caret
		if caret == 0 {
			caret = DefaultCaret
		}
		content += string(caret)
	}

	viewport := geom.Rect{Width: in.ViewportWidth, Height: in.ViewportHeight}
	bounds := t.Bounds
	if bounds.Empty() {
		// Nothing measured yet; let the text engine clip to the viewport.
		bounds = viewport
	} else {
		bounds = bounds.Intersect(viewport)
	}

	req := TextRequest{
		Text:     content,
		Position: t.Position,
		Bounds:   bounds,
		Color:    t.Color,
		FontSize: t.FontSize,
	}
	if in.BaseDirection != nil {
		req.RTL = in.BaseDirection(content)
	}
	return req
}

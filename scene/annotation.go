package scene

import (
	"github.com/rivo/uniseg"

	"github.com/gogpu/ink/geom"
)

// Stroke is one continuous freehand drag: an ordered sequence of colored
// vertices in [-1,1] clip space. Insertion order is draw order. A stroke is
// append-only while being drawn and immutable once committed.
type Stroke []geom.Vertex

// Rectangle is a two-corner shape annotation in [-1,1] clip space.
// First and Last are opposite corners in the order the user dragged them;
// the render pass normalizes them to an axis-aligned box.
type Rectangle struct {
	First geom.Point
	Last  geom.Point
	Color geom.RGBA
}

// AppendVertices appends the rectangle's four edges as four independent
// two-vertex segments — bottom, right, top, left — to dst and returns the
// extended slice. Endpoints are duplicated to satisfy the line-list
// primitive layout, so every rectangle contributes exactly 8 vertices.
func (r Rectangle) AppendVertices(dst []geom.Vertex) []geom.Vertex {
	x1, y1 := r.First.X, r.First.Y
	x2, y2 := r.Last.X, r.Last.Y
	return append(dst,
		geom.Vtx(geom.Pt(x1, y2), r.Color),
		geom.Vtx(geom.Pt(x2, y2), r.Color),
		geom.Vtx(geom.Pt(x2, y2), r.Color),
		geom.Vtx(geom.Pt(x2, y1), r.Color),
		geom.Vtx(geom.Pt(x2, y1), r.Color),
		geom.Vtx(geom.Pt(x1, y1), r.Color),
		geom.Vtx(geom.Pt(x1, y1), r.Color),
		geom.Vtx(geom.Pt(x1, y2), r.Color),
	)
}

// TextAnnotation is a text label anchored at its top-left corner in device
// pixel space. Content is mutable while Pending is true; committing freezes
// it. Bounds is the cached bounding box derived from shaped glyph extents,
// refreshed by the engine after every content change.
type TextAnnotation struct {
	Position geom.Point
	Color    geom.RGBA
	Content  string
	Pending  bool
	Bounds   geom.Rect
	FontSize float64
}

// NewTextAnnotation creates an empty pending text annotation at the given
// position.
func NewTextAnnotation(pos geom.Point, color geom.RGBA, fontSize float64) TextAnnotation {
	return TextAnnotation{
		Position: pos,
		Color:    color,
		Pending:  true,
		FontSize: fontSize,
	}
}

// Append appends literal text to the annotation's content.
func (t *TextAnnotation) Append(s string) {
	t.Content += s
}

// DeleteLast removes the last grapheme cluster from the content and reports
// whether anything was removed. Deleting from empty content is a no-op.
// Grapheme clusters, not bytes or runes, are the unit of deletion so that
// combining sequences and emoji disappear in one keypress.
func (t *TextAnnotation) DeleteLast() bool {
	if t.Content == "" {
		return false
	}
	end := 0
	state := -1
	rest := t.Content
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if rest == "" {
			t.Content = t.Content[:end]
			return true
		}
		end += len(cluster)
	}
	return false
}

// Package geom provides the small value types shared by the ink annotation
// engine: 2D points, colored vertices, axis-aligned rectangles, and
// normalized RGBA colors.
//
// All types are plain values with no identity. Geometry destined for the
// GPU line-list pipeline lives in the symmetric [-1,1] clip space; text
// positions and hit-test rectangles stay in device pixel space.
package geom

// Point represents a 2D position or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// DistanceSquared returns the squared distance between two points.
// Comparisons against a squared threshold avoid the square root.
func (p Point) DistanceSquared(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Vertex is a 2D position paired with a color. It is the element type of
// stroke and shape geometry and matches the GPU vertex layout
// (Float32x2 position, Float32x4 color).
type Vertex struct {
	Position Point
	Color    RGBA
}

// Vtx creates a Vertex from a position and color.
func Vtx(p Point, c RGBA) Vertex {
	return Vertex{Position: p, Color: c}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner,
// in device pixel space.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether the point lies inside the rectangle,
// edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersect returns the overlapping region of two rectangles.
// If they do not overlap, the result is an empty Rect.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.Width, s.X+s.Width)
	y1 := min(r.Y+r.Height, s.Y+s.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

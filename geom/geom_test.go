package geom

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	q := Pt(1, 2)

	if got := p.Add(q); got != Pt(4, 6) {
		t.Errorf("Add = %v, want (4,6)", got)
	}
	if got := p.Sub(q); got != Pt(2, 2) {
		t.Errorf("Sub = %v, want (2,2)", got)
	}
	if got := p.DistanceSquared(q); got != 8 {
		t.Errorf("DistanceSquared = %v, want 8", got)
	}
	if got := p.DistanceSquared(p); got != 0 {
		t.Errorf("DistanceSquared(self) = %v, want 0", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Pt(25, 40), true},
		{"top-left corner", Pt(10, 20), true},
		{"bottom-right corner", Pt(40, 60), true},
		{"on left edge", Pt(10, 30), true},
		{"left of rect", Pt(9.99, 30), false},
		{"below rect", Pt(25, 60.01), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 rect should not be empty")
	}
	if !(Rect{Width: 0, Height: 5}).Empty() {
		t.Error("zero-width rect should be empty")
	}
	if !(Rect{Width: 5, Height: -1}).Empty() {
		t.Error("negative-height rect should be empty")
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "overlap",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 5, Y: 5, Width: 10, Height: 10},
			want: Rect{X: 5, Y: 5, Width: 5, Height: 5},
		},
		{
			name: "contained",
			a:    Rect{X: 0, Y: 0, Width: 100, Height: 100},
			b:    Rect{X: 10, Y: 20, Width: 30, Height: 40},
			want: Rect{X: 10, Y: 20, Width: 30, Height: 40},
		},
		{
			name: "disjoint",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 20, Y: 20, Width: 10, Height: 10},
			want: Rect{},
		},
		{
			name: "touching edges",
			a:    Rect{X: 0, Y: 0, Width: 10, Height: 10},
			b:    Rect{X: 10, Y: 0, Width: 10, Height: 10},
			want: Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRGBABytes(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want [4]uint8
	}{
		{"black opaque", RGBA{A: 1}, [4]uint8{0, 0, 0, 255}},
		{"white", RGBA{R: 1, G: 1, B: 1, A: 1}, [4]uint8{255, 255, 255, 255}},
		{"half red", RGBA{R: 0.5, A: 1}, [4]uint8{127, 0, 0, 255}},
		{"clamped high", RGBA{R: 2, A: 1}, [4]uint8{255, 0, 0, 255}},
		{"clamped low", RGBA{R: -1, A: 1}, [4]uint8{0, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Bytes(); got != tt.want {
				t.Errorf("Bytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

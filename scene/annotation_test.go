package scene

import (
	"testing"

	"github.com/gogpu/ink/geom"
)

func TestRectangleAppendVertices(t *testing.T) {
	r := Rectangle{First: geom.Pt(1, 2), Last: geom.Pt(3, 4), Color: geom.Blue}

	got := r.AppendVertices(nil)
	if len(got) != 8 {
		t.Fatalf("vertex count = %d, want 8", len(got))
	}

	// Four independent segments: bottom, right, top, left.
	wantPos := []geom.Point{
		geom.Pt(1, 4), geom.Pt(3, 4),
		geom.Pt(3, 4), geom.Pt(3, 2),
		geom.Pt(3, 2), geom.Pt(1, 2),
		geom.Pt(1, 2), geom.Pt(1, 4),
	}
	for i, want := range wantPos {
		if got[i].Position != want {
			t.Errorf("vertex[%d].Position = %v, want %v", i, got[i].Position, want)
		}
		if got[i].Color != geom.Blue {
			t.Errorf("vertex[%d].Color = %v, want blue", i, got[i].Color)
		}
	}
}

func TestRectangleAppendVerticesExtends(t *testing.T) {
	prefix := []geom.Vertex{geom.Vtx(geom.Pt(9, 9), geom.Red)}
	r := Rectangle{First: geom.Pt(0, 0), Last: geom.Pt(1, 1)}

	got := r.AppendVertices(prefix)
	if len(got) != 9 {
		t.Fatalf("vertex count = %d, want 9", len(got))
	}
	if got[0].Position != geom.Pt(9, 9) {
		t.Error("existing vertices must be preserved")
	}
}

func TestRectangleDegenerate(t *testing.T) {
	// A click with no drag still yields 8 vertices; all segments are
	// zero-length and draw nothing.
	r := Rectangle{First: geom.Pt(5, 5), Last: geom.Pt(5, 5)}
	got := r.AppendVertices(nil)
	if len(got) != 8 {
		t.Fatalf("vertex count = %d, want 8", len(got))
	}
	for i, v := range got {
		if v.Position != geom.Pt(5, 5) {
			t.Errorf("vertex[%d] = %v, want (5,5)", i, v.Position)
		}
	}
}

func TestNewTextAnnotation(t *testing.T) {
	txt := NewTextAnnotation(geom.Pt(10, 20), geom.Red, 24)

	if !txt.Pending {
		t.Error("new annotation should be pending")
	}
	if txt.Content != "" {
		t.Errorf("content = %q, want empty", txt.Content)
	}
	if txt.Position != geom.Pt(10, 20) || txt.FontSize != 24 {
		t.Errorf("position/size = %v/%v", txt.Position, txt.FontSize)
	}
}

func TestTextAnnotationAppend(t *testing.T) {
	txt := NewTextAnnotation(geom.Pt(0, 0), geom.Black, 16)
	txt.Append("سلا")
	txt.Append("م")
	if txt.Content != "سلام" {
		t.Errorf("content = %q, want %q", txt.Content, "سلام")
	}
}

func TestTextAnnotationDeleteLast(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		removed bool
	}{
		{"ascii", "abc", "ab", true},
		{"single rune", "x", "", true},
		{"empty", "", "", false},
		{"persian", "سلام", "سلا", true},
		{"combining mark", "é", "", true},
		{"emoji zwj sequence", "ok\U0001F469‍\U0001F680", "ok", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := NewTextAnnotation(geom.Pt(0, 0), geom.Black, 16)
			txt.Content = tt.content

			if got := txt.DeleteLast(); got != tt.removed {
				t.Errorf("DeleteLast() = %v, want %v", got, tt.removed)
			}
			if txt.Content != tt.want {
				t.Errorf("content = %q, want %q", txt.Content, tt.want)
			}
		})
	}
}

func TestTextAnnotationDeleteLastRepeated(t *testing.T) {
	txt := NewTextAnnotation(geom.Pt(0, 0), geom.Black, 16)
	txt.Content = "ab"

	for i := 0; i < 2; i++ {
		if !txt.DeleteLast() {
			t.Fatalf("DeleteLast %d returned false", i+1)
		}
	}
	if txt.DeleteLast() {
		t.Error("DeleteLast on empty content should report false")
	}
	if txt.Content != "" {
		t.Errorf("content = %q, want empty", txt.Content)
	}
}

// Package textmeasure computes bounding-box extents for text annotations.
//
// The annotation engine treats text shaping as an external collaborator: it
// only needs the extent of a shaped string to maintain the cached hit-test
// bounds on each annotation. Two measurers are provided: GoTextMeasurer
// shapes through go-text/typesetting (HarfBuzz-level shaping, required for
// correct Arabic/Persian extents), and BuiltinMeasurer sums sfnt glyph
// advances, enough for Latin, Cyrillic, Greek, and CJK.
package textmeasure

import "golang.org/x/text/unicode/bidi"

// Size is the extent of a shaped string in device pixels.
type Size struct {
	Width  float64
	Height float64
}

// Measurer computes the extent of a string at a font size in pixels.
// Implementations must treat the input as a single line.
type Measurer interface {
	Measure(text string, size float64) Size
}

// Direction is a paragraph base direction.
type Direction uint8

const (
	// DirectionLTR lays text out left to right.
	DirectionLTR Direction = iota
	// DirectionRTL lays text out right to left.
	DirectionRTL
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// BaseDirection resolves the paragraph base direction of a string from its
// first strong directional run, per the Unicode bidi algorithm. Strings
// with no strong characters resolve to left-to-right.
func BaseDirection(text string) Direction {
	if text == "" {
		return DirectionLTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(text); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

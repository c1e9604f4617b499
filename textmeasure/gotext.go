package textmeasure

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextMeasurer measures text through go-text/typesetting's HarfBuzz
// shaper. Shaping-aware measurement matters for scripts where extents
// depend on ligatures and contextual forms, Arabic and Persian included.
//
// GoTextMeasurer is safe for concurrent use. The parsed font.Font is
// read-only and shared; font.Face instances are created per call (Face is
// not safe for concurrent use, and font.NewFace is cheap), and
// HarfbuzzShaper instances are pooled since they carry mutable buffers.
type GoTextMeasurer struct {
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances; they are not safe for
	// concurrent use but are efficient to reuse sequentially.
	shaperPool sync.Pool
}

// NewGoTextMeasurer parses TTF/OTF font data and returns a measurer backed
// by it.
func NewGoTextMeasurer(data []byte) (*GoTextMeasurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("textmeasure: failed to parse font: %w", err)
	}
	return &GoTextMeasurer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Measure implements Measurer. The width is the total shaped advance; the
// height is the shaped line's ascent plus descent.
func (m *GoTextMeasurer) Measure(text string, size float64) Size {
	if text == "" || size <= 0 {
		return Size{}
	}

	runes := []rune(text)

	dir := di.DirectionLTR
	if BaseDirection(text) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      font.NewFace(m.font),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	m.shaperPool.Put(hb)

	// LineBounds.Descent is negative (below baseline).
	height := fixedToFloat(output.LineBounds.Ascent - output.LineBounds.Descent)
	return Size{
		Width:  fixedToFloat(output.Advance),
		Height: height,
	}
}

// detectScript inspects the runes and returns the script of the first
// non-space character. A simple heuristic; annotations are short
// single-script strings in practice.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

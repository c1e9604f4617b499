package textmeasure

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// BuiltinMeasurer measures text by summing per-rune glyph advances from the
// font's metrics tables. It performs no shaping, so it under-measures
// scripts with contextual forms; use GoTextMeasurer for those.
//
// BuiltinMeasurer is not safe for concurrent use: it reuses one sfnt.Buffer
// across calls. The annotation engine is single-threaded by design, so no
// locking is needed.
type BuiltinMeasurer struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

// NewBuiltinMeasurer parses TTF/OTF font data and returns a measurer
// backed by it.
func NewBuiltinMeasurer(data []byte) (*BuiltinMeasurer, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("textmeasure: failed to parse font: %w", err)
	}
	return &BuiltinMeasurer{font: f}, nil
}

// Measure implements Measurer.
func (m *BuiltinMeasurer) Measure(text string, size float64) Size {
	if text == "" || size <= 0 {
		return Size{}
	}
	ppem := fixed.Int26_6(size * 64)

	var width fixed.Int26_6
	for _, r := range text {
		gid, err := m.font.GlyphIndex(&m.buf, r)
		if err != nil {
			continue
		}
		advance, err := m.font.GlyphAdvance(&m.buf, gid, ppem, font.HintingFull)
		if err != nil {
			continue
		}
		width += advance
	}

	metrics, err := m.font.Metrics(&m.buf, ppem, font.HintingFull)
	if err != nil {
		return Size{Width: fixedToFloat(width), Height: size}
	}
	return Size{
		Width:  fixedToFloat(width),
		Height: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
}

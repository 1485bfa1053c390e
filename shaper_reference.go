package typf

import "fmt"

// ReferenceShaper is the mandated lower-bound shaper from spec §4.2: one
// code point maps to one glyph, the pen advances by
// advance_width(glyph) * size / units_per_em + letter_spacing, and the
// cluster is the UTF-8 byte offset of the code point. It performs no
// ligature substitution, kerning, or bidi reordering.
//
// ReferenceShaper is stateless and safe for concurrent use.
type ReferenceShaper struct{}

// NewReferenceShaper creates a ReferenceShaper.
func NewReferenceShaper() *ReferenceShaper {
	return &ReferenceShaper{}
}

func (s *ReferenceShaper) Name() string { return "reference" }

// SupportsScript always reports true: the reference shaper has no script
// awareness and will attempt to shape any text (one glyph per rune).
func (s *ReferenceShaper) SupportsScript(script string) bool { return true }

// ClearCache is a no-op; ReferenceShaper holds no cache.
func (s *ReferenceShaper) ClearCache() {}

func (s *ReferenceShaper) Shape(text string, font Font, params ShapingParams) (ShapingResult, error) {
	result := ShapingResult{
		Direction:     params.Direction,
		AdvanceHeight: params.Size,
	}
	if text == "" {
		return result, nil
	}
	if font == nil {
		return result, &ShapingError{Kind: ShapingInvalidText, Backend: s.Name()}
	}
	if err := ValidateTextInput(text); err != nil {
		return result, &ShapingError{Kind: ShapingInvalidText, Backend: s.Name(), Err: err}
	}
	for tag, enabled := range params.Features {
		if enabled {
			return result, &ShapingError{Kind: ShapingFeatureNotSupported, Backend: s.Name(),
				Err: fmt.Errorf("reference shaper applies no OpenType features, cannot enable %q", tag)}
		}
	}

	upm := font.UnitsPerEm()
	if upm <= 0 {
		upm = 1000
	}
	scale := params.Size / float64(upm)

	glyphs := make([]PositionedGlyph, 0, len(text))
	var x float64

	for byteOffset, r := range text {
		gid, ok := font.GlyphIndex(r)
		if !ok {
			gid = 0
		}
		advance := font.Advance(gid)*scale + params.LetterSpacing

		glyphs = append(glyphs, PositionedGlyph{
			GID:      gid,
			Cluster:  byteOffset,
			X:        x,
			Y:        0,
			XAdvance: advance,
		})
		x += advance
	}

	result.Glyphs = glyphs
	result.AdvanceWidth = x
	return result, nil
}

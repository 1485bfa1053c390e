package fontfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/fontlaborg/typf"
)

// Font wraps a parsed OpenType/TrueType font as a typf.Font, using
// golang.org/x/image/font/opentype + sfnt, adapted to typf's narrower
// Font/OutlineSource contract (no ppem parameter on Advance — typf scales
// by units-per-em itself; Outline takes the pixel size directly since it
// returns an already-scaled Path).
type Font struct {
	data *opentype.Font
	raw  []byte
	buf  sfnt.Buffer
}

var (
	_ typf.Font          = (*Font)(nil)
	_ typf.OutlineSource = (*Font)(nil)
)

// Parse reads an OpenType/TrueType font file (TTF, OTF, or a TrueType
// Collection member) into a Font. The data slice is retained, not copied.
func Parse(data []byte) (*Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontfile: failed to parse font: %w", err)
	}
	return &Font{data: f, raw: data}, nil
}

// ParseFile loads a font from disk, per spec §6's input-validation-at-
// boundary contract: path is rejected outright if it contains ".."/"~"
// (typf.SanitizePath), and rejected if it resolves outside baseDir when
// baseDir is non-empty. baseDir == "" means no base-directory restriction.
// The resolved file is also size-checked against typf.MaxFontFileSize
// before being parsed.
func ParseFile(path string, baseDir string) (*Font, error) {
	resolved, err := typf.SanitizePath(path, baseDir)
	if err != nil {
		return nil, &typf.FontLoadError{Kind: typf.FontLoadPathRejected, Path: path, Err: err}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &typf.FontLoadError{Kind: typf.FontLoadFileNotFound, Path: resolved, Err: err}
		}
		return nil, &typf.FontLoadError{Kind: typf.FontLoadInvalidData, Path: resolved, Err: err}
	}

	if err := typf.ValidateFontSize(len(data)); err != nil {
		return nil, &typf.FontLoadError{Kind: typf.FontLoadTooLarge, Path: resolved, Err: err}
	}

	f, err := Parse(data)
	if err != nil {
		return nil, &typf.FontLoadError{Kind: typf.FontLoadInvalidData, Path: resolved, Err: err}
	}
	return f, nil
}

func (f *Font) Bytes() []byte { return f.raw }

func (f *Font) UnitsPerEm() int {
	upm, err := f.data.UnitsPerEm()
	if err != nil {
		return 1000
	}
	return int(upm)
}

func (f *Font) GlyphIndex(r rune) (typf.GlyphID, bool) {
	idx, err := f.data.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return typf.GlyphID(idx), true
}

// Advance returns the glyph's advance width in font units: the sfnt API
// only reports advance scaled to a requested ppem, so this asks for ppem
// equal to units-per-em, which makes the scale factor (ppem/unitsPerEm) 1
// and the returned value equal to the raw font-unit advance.
func (f *Font) Advance(gid typf.GlyphID) float64 {
	ppem := fixed.Int26_6(f.UnitsPerEm() * 64)
	adv, err := f.data.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), ppem, font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat64(adv)
}

func (f *Font) GlyphCount() (int, bool) {
	return f.data.NumGlyphs(), true
}

func (f *Font) Metrics() (typf.FontMetrics, bool) {
	ppem := fixed.Int26_6(f.UnitsPerEm() * 64)
	m, err := f.data.Metrics(&f.buf, ppem, font.HintingNone)
	if err != nil {
		return typf.FontMetrics{}, false
	}
	ascent := fixedToFloat64(m.Ascent)
	descent := fixedToFloat64(m.Descent)
	lineGap := fixedToFloat64(m.Height) - ascent - descent
	return typf.FontMetrics{Ascent: ascent, Descent: -descent, LineGap: lineGap}, true
}

// Outline loads the glyph's contours at the given pixel size and converts
// them from sfnt.Segments (already ppem-scaled, Y-up fixed.Point26_6) into
// a typf.Path.
func (f *Font) Outline(gid typf.GlyphID, size float64) (*typf.GlyphOutline, bool) {
	ppem := fixed.Int26_6(size * 64)
	segments, err := f.data.LoadGlyph(&f.buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil || len(segments) == 0 {
		return nil, false
	}

	path := typf.NewPath()
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			path.MoveTo(fixedToFloat64(seg.Args[0].X), fixedToFloat64(seg.Args[0].Y))
		case sfnt.SegmentOpLineTo:
			path.LineTo(fixedToFloat64(seg.Args[0].X), fixedToFloat64(seg.Args[0].Y))
		case sfnt.SegmentOpQuadTo:
			path.QuadTo(
				fixedToFloat64(seg.Args[0].X), fixedToFloat64(seg.Args[0].Y),
				fixedToFloat64(seg.Args[1].X), fixedToFloat64(seg.Args[1].Y),
			)
		case sfnt.SegmentOpCubeTo:
			path.CubicTo(
				fixedToFloat64(seg.Args[0].X), fixedToFloat64(seg.Args[0].Y),
				fixedToFloat64(seg.Args[1].X), fixedToFloat64(seg.Args[1].Y),
				fixedToFloat64(seg.Args[2].X), fixedToFloat64(seg.Args[2].Y),
			)
		}
	}

	adv, err := f.data.GlyphAdvance(&f.buf, sfnt.GlyphIndex(gid), ppem, font.HintingNone)
	advance := 0.0
	if err == nil {
		advance = fixedToFloat64(adv)
	}

	return &typf.GlyphOutline{Path: *path, Advance: advance}, true
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

package typf

// fakeFont is a minimal in-memory Font for tests that don't need real
// outline data: space maps to glyph id 3, every other rune to glyph id 1,
// all with a fixed advance.
type fakeFont struct {
	unitsPerEm int
	advance    float64
	metrics    FontMetrics
	hasMetrics bool
}

func newFakeFont() *fakeFont {
	return &fakeFont{unitsPerEm: 1000, advance: 600, metrics: FontMetrics{Ascent: 800, Descent: -200, LineGap: 0}, hasMetrics: true}
}

func (f *fakeFont) Bytes() []byte      { return []byte("fake") }
func (f *fakeFont) UnitsPerEm() int    { return f.unitsPerEm }
func (f *fakeFont) Advance(gid GlyphID) float64 { return f.advance }

func (f *fakeFont) GlyphIndex(r rune) (GlyphID, bool) {
	if r == ' ' {
		return 3, true
	}
	return 1, true
}

func (f *fakeFont) GlyphCount() (int, bool) { return 2, true }

func (f *fakeFont) Metrics() (FontMetrics, bool) {
	if !f.hasMetrics {
		return FontMetrics{}, false
	}
	return f.metrics, true
}

// outlineFakeFont adds OutlineSource to fakeFont: every glyph is a unit
// square scaled to size, so renderer tests can assert on actual path/pixel
// content instead of only on bitmap dimensions.
type outlineFakeFont struct {
	*fakeFont
}

func newOutlineFakeFont() *outlineFakeFont {
	return &outlineFakeFont{fakeFont: newFakeFont()}
}

func (f *outlineFakeFont) Outline(gid GlyphID, size float64) (*GlyphOutline, bool) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(size, 0)
	p.LineTo(size, size)
	p.LineTo(0, size)
	p.CloseSubpath()
	return &GlyphOutline{Path: *p, Advance: size}, true
}

package typf

// RenderParams configures a single Render call, per spec §3's render
// parameters.
type RenderParams struct {
	// Foreground is the glyph fill color.
	Foreground Color

	// Background, if non-nil, fills the bitmap before glyphs are drawn.
	// A nil Background means transparent.
	Background *Color

	// Padding is added on every side of the metrics-derived bitmap size,
	// in pixels.
	Padding int

	// Antialias selects gray/RGBA output (true) or 1-bit monochrome
	// output (false).
	Antialias bool

	// GlyphSources controls which color glyph source a color-capable
	// renderer prefers. The zero value is the module default preference.
	GlyphSources GlyphSourcePreference

	// Transform is an optional user transform applied on top of glyph
	// placement (e.g. for rotation or extra scaling).
	Transform *AffineTransform
}

// RenderOutput is the tagged-union result of a Render call: exactly one of
// Bitmap or Vector is set, matching spec §6's "bitmap format on the wire" /
// "vector output on the wire" split.
type RenderOutput struct {
	Bitmap *Bitmap
	Vector *PathSet
}

// Renderer converts a shaping result into a render output, per spec §4.3.
// Implementations must be safe to share and invoke concurrently across
// goroutines; a Renderer holding a cache must serialize access to it itself.
type Renderer interface {
	// Name identifies the backend, used by the registry (C9) and in error
	// context.
	Name() string

	// Render runs the rendering contract: dimensioning follows the
	// baseline/padding reconciler (C12) so that all bitmap renderers given
	// the same font/size/padding/shaping-result agree on
	// (bitmap_width, bitmap_height).
	Render(result ShapingResult, font Font, params RenderParams) (RenderOutput, error)

	// SupportsFormat reports whether this backend can produce the named
	// output format ("bitmap" or "vector").
	SupportsFormat(format string) bool

	// ClearCache drops any internal cache the backend maintains. Safe to
	// call at any time, including concurrently with Render.
	ClearCache()
}

// glyphPlacementTransform returns the transform that positions one glyph's
// outline on the bitmap: Y-flip (font outlines are Y-up, bitmaps are
// Y-down), translated to the glyph's pen position plus the baseline
// reconciler's origin, composed with an optional caller transform.
func glyphPlacementTransform(glyph PositionedGlyph, layout BaselineLayout, user *AffineTransform) AffineTransform {
	flip := AffineTransform{A: 1, B: 0, C: 0, D: -1}
	place := TranslateTransform(layout.OriginX+glyph.X, layout.BaselineY+glyph.Y).Multiply(flip)
	if user == nil {
		return place
	}
	return user.Multiply(place)
}

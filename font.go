package typf

import "image"

// FontMetrics holds font-level metrics at the font's natural units-per-em
// scale (not yet scaled by size).
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font
	// (negative, per spec §6's ascent/descent/line-gap triple).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64
}

// Font is the minimal polymorphic view of a font a shaper or renderer needs,
// per spec §4.1: raw bytes, units-per-em, rune-to-glyph mapping, per-glyph
// advance width, and two optional capabilities (glyph count, metrics).
//
// A Font that lacks a character returns ok=false from GlyphIndex; callers
// substitute glyph 0, the font's conventional missing-glyph ("notdef") slot.
type Font interface {
	// Bytes returns the font's raw backing data.
	Bytes() []byte

	// UnitsPerEm returns the font's design grid resolution.
	UnitsPerEm() int

	// GlyphIndex returns the glyph id mapped to a rune, and whether the
	// font has an entry for it at all.
	GlyphIndex(r rune) (GlyphID, bool)

	// Advance returns a glyph's advance width in font units.
	Advance(gid GlyphID) float64

	// GlyphCount optionally reports the total number of glyphs in the font.
	GlyphCount() (int, bool)

	// Metrics optionally reports font-level ascent/descent/line-gap.
	Metrics() (FontMetrics, bool)
}

// OutlineSource is an optional Font capability: a font that can produce
// scalable vector outlines for its glyphs. Renderers type-assert for this
// before falling back to a tofu box.
type OutlineSource interface {
	// Outline returns the glyph's outline scaled to the given pixel size
	// (ppem), or ok=false if the glyph has no outline (e.g. space, or a
	// color-only glyph).
	Outline(gid GlyphID, size float64) (*GlyphOutline, bool)
}

// GlyphOutline is a font-unit-independent vector outline for one glyph,
// already scaled to a requested pixel size.
type GlyphOutline struct {
	Path    Path
	Advance float64
}

// ColorSource is an optional Font capability: a font carrying one or more
// color glyph tables (COLR/CPAL, sbix, CBDT/EBDT, or an SVG table). Matches
// the enumeration in spec §3's glyph-source preference. Concrete
// implementations live in the colorglyph package.
type ColorSource interface {
	// HasColorTables reports whether the font carries any color table.
	HasColorTables() bool

	// GlyphSources reports which color/outline sources are available for
	// a specific glyph, in no particular order.
	GlyphSources(gid GlyphID) []GlyphSourceKind

	// ColorLayers returns a COLR/CPAL layered color glyph's paint layers,
	// bottom to top: each layer names another glyph in the same font
	// (rendered through the normal OutlineSource path) and the resolved
	// fill color for it. ok is false if gid has no COLR layers.
	ColorLayers(gid GlyphID) (layers []ColorGlyphLayer, ok bool)

	// ColorBitmap returns an embedded bitmap strike (sbix) for gid nearest
	// the requested pixels-per-em, decoded to a stdlib image, plus the
	// pixel offset of its top-left corner relative to the glyph's pen
	// position (baseline-relative, Y-down). ok is false if gid has no
	// decodable bitmap strike.
	ColorBitmap(gid GlyphID, ppem float64) (img image.Image, origin Point, ok bool)
}

// ColorGlyphLayer is one paint layer of a COLR/CPAL layered color glyph.
type ColorGlyphLayer struct {
	// GlyphID is the layer's own glyph, whose outline is painted with
	// Color (or the caller's foreground color, if IsForeground).
	GlyphID GlyphID

	// Color is the layer's resolved palette color. Meaningless when
	// IsForeground is true.
	Color Color

	// IsForeground reports that this layer should use the caller's
	// requested foreground color (CPAL's 0xFFFF sentinel palette entry)
	// rather than Color.
	IsForeground bool
}

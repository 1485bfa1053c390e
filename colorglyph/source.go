package colorglyph

import (
	"image"

	"github.com/fontlaborg/typf"
)

// Tables bundles whichever color glyph tables a font carries. Any field may
// be nil; Tables implements typf.ColorSource directly so a fontfile adapter
// can embed it.
type Tables struct {
	COLR *COLRParser
	SBIX *SBIXParser
	CBDT *CBDTParser
	SVG  *SVGParser
}

var _ typf.ColorSource = (*Tables)(nil)

// HasColorTables reports whether any color table was successfully parsed.
func (t *Tables) HasColorTables() bool {
	if t == nil {
		return false
	}
	return t.COLR != nil || t.SVG != nil ||
		(t.SBIX != nil && t.SBIX.NumStrikes() > 0) || (t.CBDT != nil && t.CBDT.HasTable())
}

// GlyphSources reports which color sources are available for a glyph, per
// spec §4.7/§3's glyph-source enumeration. Order is not significant: the
// root package's GlyphSourcePreference does the ordering.
func (t *Tables) GlyphSources(gid typf.GlyphID) []typf.GlyphSourceKind {
	if t == nil {
		return nil
	}
	var kinds []typf.GlyphSourceKind
	if t.COLR != nil && t.COLR.HasGlyph(uint16(gid)) {
		if t.COLR.version == 1 {
			kinds = append(kinds, typf.SourceColorLayeredV1)
		} else {
			kinds = append(kinds, typf.SourceColorLayeredV0)
		}
	}
	if t.SBIX != nil {
		for strike := 0; strike < t.SBIX.NumStrikes(); strike++ {
			if t.SBIX.HasGlyph(int(gid), strike) {
				kinds = append(kinds, typf.SourceColorBitmapSbix)
				break
			}
		}
	}
	if t.CBDT != nil && t.CBDT.HasTable() {
		kinds = append(kinds, typf.SourceColorBitmapCBDT)
	}
	if t.SVG != nil && t.SVG.HasGlyph(uint16(gid)) {
		kinds = append(kinds, typf.SourceColorSVG)
	}
	return kinds
}

// ColorLayers resolves a COLR/CPAL glyph's paint layers against palette 0.
// typf.ColorSource does not carry a palette-selection parameter (spec §3's
// glyph-source preference has no palette axis), so Tables always resolves
// against the font's first palette.
func (t *Tables) ColorLayers(gid typf.GlyphID) ([]typf.ColorGlyphLayer, bool) {
	if t == nil || t.COLR == nil {
		return nil, false
	}
	glyph, err := t.COLR.GetGlyph(uint16(gid), 0)
	if err != nil || len(glyph.Layers) == 0 {
		return nil, false
	}
	layers := make([]typf.ColorGlyphLayer, len(glyph.Layers))
	for i, l := range glyph.Layers {
		layers[i] = typf.ColorGlyphLayer{
			GlyphID:      typf.GlyphID(l.GlyphID),
			Color:        typf.Color{R: l.Color.R, G: l.Color.G, B: l.Color.B, A: l.Color.A},
			IsForeground: l.IsForeground(),
		}
	}
	return layers, true
}

// ColorBitmap decodes the sbix strike nearest ppem. CBDT/EBDT strikes are
// not decodable yet (CBDTParser has no GetGlyph; see bitmap.go) so they
// never contribute here even when GlyphSources reports them available.
func (t *Tables) ColorBitmap(gid typf.GlyphID, ppem float64) (image.Image, typf.Point, bool) {
	if t == nil || t.SBIX == nil {
		return nil, typf.Point{}, false
	}
	strike := t.SBIX.BestStrikeForPPEM(uint16(ppem))
	if strike < 0 || !t.SBIX.HasGlyph(int(gid), strike) {
		return nil, typf.Point{}, false
	}
	bg, err := t.SBIX.GetGlyph(int(gid), strike)
	if err != nil {
		return nil, typf.Point{}, false
	}
	img, err := bg.Decode()
	if err != nil {
		return nil, typf.Point{}, false
	}
	// sbix origin offsets are pixels from the glyph's pen position to the
	// bitmap's lower-left corner; convert to the top-left, Y-down offset
	// glyphPlacementTransform's coordinate space expects.
	origin := typf.Point{X: float64(bg.OriginX), Y: -float64(bg.OriginY) - float64(bg.Height)}
	return img, origin, true
}

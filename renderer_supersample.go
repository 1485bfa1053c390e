package typf

import (
	"image"
	"image/draw"

	"github.com/fontlaborg/typf/internal/color"
)

// SupersampleRenderer is the second, independently-written renderer backend.
// Unlike OutlineRenderer it always 4x4-supersamples regardless of the
// Antialias flag — the flag only chooses the output format, not whether
// supersampling happens — and it composites straight-alpha RGBA when color
// output is requested, consulting the font's ColorSource/GlyphSourcePreference
// per glyph before falling back to the outline fill.
//
// Existing specifically to prove the cross-renderer dimension invariant
// (spec Testable Property 4 / scenario S3): two renderers built from
// different code paths must still agree on (bitmap_width, bitmap_height)
// because both call the shared baseline/padding reconciler (C12).
//
// Grounded on text/glyph_renderer.go's outline-extraction-and-transform flow,
// with compositing adapted from internal/color's sRGB/linear helpers.
type SupersampleRenderer struct{}

// NewSupersampleRenderer constructs the supersampling renderer.
func NewSupersampleRenderer() *SupersampleRenderer {
	return &SupersampleRenderer{}
}

func (r *SupersampleRenderer) Name() string { return "high-quality" }

func (r *SupersampleRenderer) SupportsFormat(format string) bool {
	return format == "bitmap"
}

func (r *SupersampleRenderer) ClearCache() {}

const supersampleFactor = 4

func (r *SupersampleRenderer) Render(result ShapingResult, font Font, params RenderParams) (RenderOutput, error) {
	metrics := fontMetricsOrDefault(font)
	size := result.AdvanceHeight
	layout := ReconcileBaseline(metrics, font.UnitsPerEm(), size, params.Padding, result.AdvanceWidth)

	width, height := layout.BitmapWidth, layout.BitmapHeight
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	colorSrc, hasColor := font.(ColorSource)
	prefs := params.GlyphSources
	if len(prefs.Prefer()) == 0 {
		prefs = DefaultGlyphSourcePreference()
	}

	// bitmapComposite defers an sbix strike onto the final RGBA32 output;
	// it bypasses the coverage/outline path entirely, so it only makes
	// sense once an RGBA32 bitmap exists (params.Antialias).
	type bitmapComposite struct {
		img  image.Image
		x, y int
	}

	var placed []glyphPath
	var composites []bitmapComposite
	for _, g := range result.Glyphs {
		transform := glyphPlacementTransform(g, layout, params.Transform)

		if hasColor && colorSrc.HasColorTables() {
			kind, ok := prefs.Select(colorSrc.GlyphSources(g.GID))
			if ok {
				switch kind {
				case SourceColorLayeredV0, SourceColorLayeredV1:
					if layers, ok := colorSrc.ColorLayers(g.GID); ok {
						for _, layer := range layers {
							layerOutline := outlineOrTofu(font, layer.GlyphID, size)
							if layerOutline == nil {
								continue
							}
							fill := layer.Color
							if layer.IsForeground {
								fill = params.Foreground
							}
							placed = append(placed, glyphPath{path: layerOutline.Transformed(transform), fill: fill})
						}
						continue
					}
				case SourceColorBitmapSbix:
					if params.Antialias {
						if img, origin, ok := colorSrc.ColorBitmap(g.GID, size); ok {
							px := int(layout.OriginX + g.X + origin.X)
							py := int(layout.BaselineY + g.Y + origin.Y)
							composites = append(composites, bitmapComposite{img: img, x: px, y: py})
							continue
						}
					}
				case SourceColorSVG, SourceColorBitmapCBDT:
					// Neither source has a decode path: SVG glyphs have no
					// rasterizer (colorglyph.SVGParser only extracts the raw
					// table), and CBDT/EBDT strikes have no decoder
					// (colorglyph.CBDTParser never gained one). Both fall
					// through to the plain outline below.
				}
			}
		}

		outline := outlineOrTofu(font, g.GID, size)
		if outline == nil {
			continue
		}
		placed = append(placed, glyphPath{path: outline.Transformed(transform), fill: params.Foreground})
	}

	coverage := rasterizeCoverage(placed, width, height, supersampleFactor)

	if !params.Antialias {
		bmp := NewBitmap(width, height, PixelFormatGray8)
		copy(bmp.Pixels, coverage)
		return RenderOutput{Bitmap: bmp}, nil
	}

	bmp := NewBitmap(width, height, PixelFormatRGBA32)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cov := coverage[y*width+x]
			bmp.SetRGBA(x, y, compositeOver(params.Foreground, params.Background, cov))
		}
	}
	for _, c := range composites {
		draw.Draw(bmp.AsDrawImage(), image.Rect(c.x, c.y, c.x+c.img.Bounds().Dx(), c.y+c.img.Bounds().Dy()),
			c.img, c.img.Bounds().Min, draw.Over)
	}
	return RenderOutput{Bitmap: bmp}, nil
}

// compositeOver straight-alpha composites fg (weighted by coverage) over an
// optional opaque background, per spec §6's RGBA32 straight-alpha contract.
// RGB blending happens in linear light, not sRGB, so the edges of a glyph
// against a contrasting background don't darken the way naive byte-blending
// would; only the alpha channel stays in coverage space.
func compositeOver(fg Color, bg *Color, coverage byte) Color {
	if bg == nil {
		return Color{R: fg.R, G: fg.G, B: fg.B, A: coverage}
	}
	a := float32(coverage) / 255.0
	fgLin := color.SRGBToLinearColor(color.U8ToF32(color.ColorU8{R: fg.R, G: fg.G, B: fg.B, A: 255}))
	bgLin := color.SRGBToLinearColor(color.U8ToF32(color.ColorU8{R: bg.R, G: bg.G, B: bg.B, A: 255}))
	blend := func(f, b float32) float32 { return f*a + b*(1-a) }
	outLin := color.ColorF32{R: blend(fgLin.R, bgLin.R), G: blend(fgLin.G, bgLin.G), B: blend(fgLin.B, bgLin.B), A: 1}
	out := color.F32ToU8(color.LinearToSRGBColor(outLin))
	return Color{R: out.R, G: out.G, B: out.B, A: 255}
}

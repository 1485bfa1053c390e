package typf

// OutlineRenderer is the reference renderer: it draws glyph outlines with a
// non-zero-winding scanline fill and nothing else. Monochrome output is a
// direct binary fill; antialiased output 4x4-supersamples the same fill and
// keeps the averaged coverage as an 8-bit gray value (no color compositing —
// that is SupersampleRenderer's job).
//
// Grounded on text/glyph_renderer.go's outline-extraction-and-transform flow
// and internal/raster's scanline fill.
type OutlineRenderer struct{}

// NewOutlineRenderer constructs the reference outline renderer. It holds no
// state and needs no cache.
func NewOutlineRenderer() *OutlineRenderer {
	return &OutlineRenderer{}
}

func (r *OutlineRenderer) Name() string { return "reference-outline" }

func (r *OutlineRenderer) SupportsFormat(format string) bool {
	return format == "bitmap"
}

func (r *OutlineRenderer) ClearCache() {}

func (r *OutlineRenderer) Render(result ShapingResult, font Font, params RenderParams) (RenderOutput, error) {
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

	var placed []glyphPath
	for _, g := range result.Glyphs {
		outline := outlineOrTofu(font, g.GID, size)
		if outline == nil {
			continue
		}
		transform := glyphPlacementTransform(g, layout, params.Transform)
		placed = append(placed, glyphPath{path: outline.Transformed(transform), fill: params.Foreground})
	}

	if !params.Antialias {
		bmp := NewBitmap(width, height, PixelFormatMono1)
		if params.Background != nil && isLight(*params.Background) {
			fillMono(bmp)
		}
		coverage := rasterizeCoverage(placed, width, height, 1)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if coverage[y*width+x] >= 128 {
					bmp.SetBit(x, y, true)
				}
			}
		}
		return RenderOutput{Bitmap: bmp}, nil
	}

	bmp := NewBitmap(width, height, PixelFormatGray8)
	coverage := rasterizeCoverage(placed, width, height, 4)
	copy(bmp.Pixels, coverage)
	return RenderOutput{Bitmap: bmp}, nil
}

func isLight(c Color) bool {
	return int(c.R)+int(c.G)+int(c.B) > 3*127
}

func fillMono(bmp *Bitmap) {
	for i := range bmp.Pixels {
		bmp.Pixels[i] = 0xFF
	}
}

package typf

import (
	"github.com/fontlaborg/typf/internal/path"
	"github.com/fontlaborg/typf/internal/raster"
)

// glyphPath bundles one glyph's fill color with the Path its outline (or a
// decoded color layer) contributed, after glyph placement transform has
// already been applied.
type glyphPath struct {
	path *Path
	fill Color
}

// rasterizeCoverage scan-converts a set of already-placed paths into an
// 8-bit coverage plane at (width, height), optionally supersampled by an
// integer factor and box-downsampled back down. supersample <= 1 means no
// supersampling.
//
// Uses internal/raster.Rasterizer.FillEdges (non-zero winding scanline fill)
// and internal/path.CollectEdges/EdgeIter (subpath-aware curve flattening).
func rasterizeCoverage(paths []glyphPath, width, height, supersample int) []byte {
	if supersample < 1 {
		supersample = 1
	}
	hiW, hiH := width*supersample, height*supersample
	hi := make([]byte, hiW*hiH)
	target := &coverageTarget{buf: hi, w: hiW, h: hiH}
	r := raster.NewRasterizer(hiW, hiH)

	for _, gp := range paths {
		elems := toInternalPathElements(gp.path.Commands, float64(supersample))
		// CollectEdges (not Flatten) so a glyph with more than one subpath —
		// a hole, like the counter in "O" or "e" — closes each contour to
		// its own start rather than bridging across subpaths, which would
		// corrupt the non-zero winding count used by the fill below.
		edges := path.CollectEdges(elems)
		if len(edges) == 0 {
			continue
		}
		redges := make([]raster.Edge, len(edges))
		for i, e := range edges {
			redges[i] = raster.NewEdge(raster.Point{X: e.P0.X, Y: e.P0.Y}, raster.Point{X: e.P1.X, Y: e.P1.Y})
		}
		r.FillEdges(target, redges, raster.FillRuleNonZero, raster.RGBA{A: 1})
	}

	if supersample == 1 {
		return hi
	}
	return downsample(hi, hiW, hiH, supersample)
}

// coverageTarget is a raster.Pixmap that records binary coverage only.
type coverageTarget struct {
	buf  []byte
	w, h int
}

func (t *coverageTarget) Width() int  { return t.w }
func (t *coverageTarget) Height() int { return t.h }
func (t *coverageTarget) SetPixel(x, y int, c raster.RGBA) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return
	}
	t.buf[y*t.w+x] = 255
}

// FillSpan implements raster.SpanFiller for the batch-fill fast path.
func (t *coverageTarget) FillSpan(x1, x2, y int, c raster.RGBA) {
	if y < 0 || y >= t.h {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > t.w {
		x2 = t.w
	}
	for x := x1; x < x2; x++ {
		t.buf[y*t.w+x] = 255
	}
}

func downsample(hi []byte, hiW, hiH, factor int) []byte {
	w, h := hiW/factor, hiH/factor
	out := make([]byte, w*h)
	area := factor * factor
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sum int
			for dy := 0; dy < factor; dy++ {
				row := (y*factor+dy)*hiW + x*factor
				for dx := 0; dx < factor; dx++ {
					sum += int(hi[row+dx])
				}
			}
			out[y*w+x] = byte(sum / area)
		}
	}
	return out
}

func toInternalPathElements(cmds []PathCommand, scale float64) []path.PathElement {
	out := make([]path.PathElement, 0, len(cmds))
	sp := func(p Point) path.Point { return path.Point{X: p.X * scale, Y: p.Y * scale} }
	for _, c := range cmds {
		switch e := c.(type) {
		case MoveTo:
			out = append(out, path.MoveTo{Point: sp(e.Point)})
		case LineTo:
			out = append(out, path.LineTo{Point: sp(e.Point)})
		case QuadTo:
			out = append(out, path.QuadTo{Control: sp(e.Control), Point: sp(e.Point)})
		case CubicTo:
			out = append(out, path.CubicTo{Control1: sp(e.Control1), Control2: sp(e.Control2), Point: sp(e.Point)})
		case Close:
			out = append(out, path.Close{})
		}
	}
	return out
}

// outlineOrTofu resolves a glyph's fill path: its real outline when the font
// implements OutlineSource and has one, otherwise nil (an empty box — no
// renderer may panic on an unknown glyph id, per spec §4.3).
func outlineOrTofu(font Font, gid GlyphID, size float64) *Path {
	src, ok := font.(OutlineSource)
	if !ok {
		return nil
	}
	outline, ok := src.Outline(gid, size)
	if !ok || outline == nil {
		return nil
	}
	return &outline.Path
}

// fontMetricsOrDefault returns the font's declared metrics, or a
// conventional 0.8/-0.2 ascent/descent split of units-per-em when the font
// does not implement the optional Metrics capability.
func fontMetricsOrDefault(font Font) FontMetrics {
	if m, ok := font.Metrics(); ok {
		return m
	}
	upm := float64(font.UnitsPerEm())
	if upm <= 0 {
		upm = 1000
	}
	return FontMetrics{Ascent: upm * 0.8, Descent: -upm * 0.2}
}

package typf

import "math"

// BaselineLayout is the result of the baseline/padding reconciler (C12):
// the geometry every renderer must agree on for a given font, size, and
// padding, so that independently-coded renderers produce identical bitmap
// dimensions (the cross-renderer reproducibility invariant, spec §4.3/Testable
// Property 4).
type BaselineLayout struct {
	BitmapWidth  int
	BitmapHeight int
	BaselineY    float64
	OriginX      float64
}

// ReconcileBaseline computes (bitmap_width, bitmap_height, baseline_y,
// origin_x) from font metrics, size, padding, and the shaped advance width,
// following spec §4.9's formulas exactly:
//
//	scale = size / units_per_em
//	ascent_px = ceil(ascent * scale), descent_px = ceil(|descent| * scale)
//	bitmap_height = ascent_px + descent_px + 2*padding
//	bitmap_width = ceil(advance_width) + 2*padding
//	baseline_y = padding + ascent_px
//	origin_x = padding
func ReconcileBaseline(metrics FontMetrics, unitsPerEm int, size float64, padding int, advanceWidth float64) BaselineLayout {
	upm := unitsPerEm
	if upm <= 0 {
		upm = 1000
	}
	scale := size / float64(upm)

	ascentPx := math.Ceil(metrics.Ascent * scale)
	descentPx := math.Ceil(math.Abs(metrics.Descent) * scale)

	return BaselineLayout{
		BitmapWidth:  int(math.Ceil(advanceWidth)) + 2*padding,
		BitmapHeight: int(ascentPx+descentPx) + 2*padding,
		BaselineY:    float64(padding) + ascentPx,
		OriginX:      float64(padding),
	}
}

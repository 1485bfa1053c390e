package typf

// VectorRenderer is the scalable-output renderer named in spec §4.6's
// named-selection enumeration: it walks each glyph's OutlineSource outline
// straight into a PathSet with no rasterization, so callers who want a
// resolution-independent export (SVG, or any future vector exporter) don't
// pay for a bitmap they'll immediately discard. Baseline placement still
// runs through the shared reconciler (C12) so a caller comparing a 256x
// vector export against a bitmap renderer's output sees consistent
// coordinates, even though VectorRenderer itself never allocates a bitmap.
//
// The "256x" in its registered name ("vector-256x") is not a sample count:
// vector output has none, and the suffix only identifies the backend, not a
// rasterization parameter.
//
// Grounded on OutlineRenderer's glyph-placement loop, producing Paths
// instead of rasterizing them, and on export/svg.go's PathSet consumer.
type VectorRenderer struct{}

// NewVectorRenderer constructs the vector-path renderer. It holds no state
// and needs no cache.
func NewVectorRenderer() *VectorRenderer {
	return &VectorRenderer{}
}

func (r *VectorRenderer) Name() string { return "vector-256x" }

func (r *VectorRenderer) SupportsFormat(format string) bool {
	return format == "vector"
}

func (r *VectorRenderer) ClearCache() {}

func (r *VectorRenderer) Render(result ShapingResult, font Font, params RenderParams) (RenderOutput, error) {
	metrics := fontMetricsOrDefault(font)
	size := result.AdvanceHeight
	layout := ReconcileBaseline(metrics, font.UnitsPerEm(), size, params.Padding, result.AdvanceWidth)

	colorSrc, hasColor := font.(ColorSource)
	prefs := params.GlyphSources
	if len(prefs.Prefer()) == 0 {
		prefs = DefaultGlyphSourcePreference()
	}

	var paths []Path
	for _, g := range result.Glyphs {
		transform := glyphPlacementTransform(g, layout, params.Transform)

		if hasColor && colorSrc.HasColorTables() {
			if kind, ok := prefs.Select(colorSrc.GlyphSources(g.GID)); ok &&
				(kind == SourceColorLayeredV0 || kind == SourceColorLayeredV1) {
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
						transformed := layerOutline.Transformed(transform)
						transformed.Fill = &fill
						paths = append(paths, *transformed)
					}
					continue
				}
			}
		}

		outline := outlineOrTofu(font, g.GID, size)
		if outline == nil {
			continue
		}
		transformed := outline.Transformed(transform)
		fill := params.Foreground
		transformed.Fill = &fill
		paths = append(paths, *transformed)
	}

	return RenderOutput{Vector: &PathSet{Paths: paths}}, nil
}

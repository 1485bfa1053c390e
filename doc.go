// Package typf provides a pluggable text-shaping and rendering engine core.
//
// # Overview
//
// typf turns a string plus a font into positioned glyphs (shaping), then
// turns positioned glyphs into a bitmap or vector path set (rendering), then
// turns that render output into bytes (export). Each stage is a small
// interface with more than one concrete implementation, selected through a
// priority-ordered registry (see RegisterShaper and RegisterRenderer) so a
// caller can pick a specific backend or let the best available one win.
//
// # Quick Start
//
//	exec, err := typf.NewExecutorBuilder().
//		WithShaper(typf.NewReferenceShaper()).
//		WithRenderer(typf.NewOutlineRenderer()).
//		Build()
//
//	ctx, err := exec.Run("Hello", font,
//		typf.ShapingParams{Size: 24},
//		typf.RenderParams{Foreground: typf.Black})
//	// ctx.Shaped holds the glyphs, ctx.Rendered the bitmap.
//
// # Architecture
//
// The module is organized into:
//   - Root package: value types (Color, Point, Path, Bitmap), the Font
//     handle and its optional capabilities, the Shaper and Renderer traits,
//     the pipeline Context/Executor, and the backend registry.
//   - colorglyph: COLR/CPAL, sbix/CBDT bitmap, and SVG-in-font glyph source
//     extraction, consumed by color-capable renderers through ColorSource.
//   - export: byte-level encoders for the four wire bitmap/vector formats.
//   - cache: a generic sharded LRU cache gated by the process-wide cache
//     enable switch.
//   - fontfile: an optional, non-core Font implementation backed by real
//     sfnt/OpenType font files, for tests and examples.
//
// # Coordinate System
//
// Font units are Y-up (ascent is positive); bitmaps are Y-down (row 0 is
// the top row). Renderers flip the Y axis once when placing glyphs on the
// baseline; see the baseline/padding reconciler in baseline.go.
package typf

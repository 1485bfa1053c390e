// Package colorglyph decodes the color glyph tables a font may carry in
// addition to its plain outlines, so a color-capable Renderer can draw emoji
// and other multi-color glyphs instead of falling back to a monochrome fill.
//
// Three table families are supported:
//
//   - COLR/CPAL: layered color glyphs, where a base glyph expands into an
//     ordered stack of (glyph, palette color) layers. Versions 0 and 1 are
//     both parsed at the v0 layer-list level.
//   - sbix/CBDT+CBLC: embedded pre-rendered bitmap strikes (PNG-backed on
//     sbix; CBDT/CBLC parsing is present but table-presence-only today, see
//     CBDTParser.HasTable).
//   - SVG: per-glyph SVG documents, extracted as raw (gzip-decompressed)
//     bytes by SVGParser; the documents are not rendered.
//
// Tables is the package's implementation of the root package's ColorSource
// capability: it holds a COLRParser, SBIXParser and CBDTParser built from
// the relevant font tables and reports their availability through
// ColorSource.GlyphSources.
package colorglyph

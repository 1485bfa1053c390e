package export

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/fontlaborg/typf"
)

func TestMonoExporterRoundTripsHeader(t *testing.T) {
	bmp := typf.NewBitmap(3, 2, typf.PixelFormatMono1)
	bmp.SetBit(0, 0, true)

	e := NewMonoExporter()
	file, err := e.Export(typf.RenderOutput{Bitmap: bmp})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if file.Extension != "typ1" || file.MIMEType != "image/x-typf-mono" {
		t.Errorf("unexpected metadata: %+v", file)
	}
	if !bytes.Equal(file.Bytes[0:4], MonoMagic[:]) {
		t.Errorf("missing magic prefix, got %v", file.Bytes[0:4])
	}
	w := binary.BigEndian.Uint32(file.Bytes[4:8])
	h := binary.BigEndian.Uint32(file.Bytes[8:12])
	if w != 3 || h != 2 {
		t.Errorf("width/height = %d/%d, want 3/2", w, h)
	}
	if !bytes.Equal(file.Bytes[12:], bmp.Pixels) {
		t.Error("payload does not match bitmap pixels")
	}
}

func TestMonoExporterRejectsWrongFormat(t *testing.T) {
	bmp := typf.NewBitmap(2, 2, typf.PixelFormatGray8)
	_, err := NewMonoExporter().Export(typf.RenderOutput{Bitmap: bmp})
	if err == nil {
		t.Fatal("expected error for mismatched pixel format")
	}
}

func TestMonoExporterRejectsVectorOutput(t *testing.T) {
	_, err := NewMonoExporter().Export(typf.RenderOutput{Vector: &typf.PathSet{}})
	if err == nil {
		t.Fatal("expected error for nil bitmap")
	}
}

func TestGrayExporterRoundTripsHeader(t *testing.T) {
	bmp := typf.NewBitmap(4, 1, typf.PixelFormatGray8)
	bmp.SetAlpha(0, 0, 200)

	file, err := NewGrayExporter().Export(typf.RenderOutput{Bitmap: bmp})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !bytes.Equal(file.Bytes[0:4], GrayMagic[:]) {
		t.Errorf("missing magic prefix")
	}
	if !bytes.Equal(file.Bytes[12:], bmp.Pixels) {
		t.Error("payload does not match bitmap pixels")
	}
}

func TestRGBAExporterRoundTripsHeader(t *testing.T) {
	bmp := typf.NewBitmap(2, 2, typf.PixelFormatRGBA32)
	bmp.SetRGBA(1, 1, typf.Color{R: 10, G: 20, B: 30, A: 40})

	file, err := NewRGBAExporter().Export(typf.RenderOutput{Bitmap: bmp})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !bytes.Equal(file.Bytes[0:4], RGBAMagic[:]) {
		t.Errorf("missing magic prefix")
	}
	if len(file.Bytes) != 12+len(bmp.Pixels) {
		t.Errorf("unexpected payload length: %d", len(file.Bytes))
	}
}

func TestSVGExporterWrapsPaths(t *testing.T) {
	path := typf.NewPath()
	path.MoveTo(0, 0)
	path.LineTo(10, 0)
	path.LineTo(10, 10)
	path.CloseSubpath()

	ps := &typf.PathSet{Paths: []typf.Path{*path}}

	file, err := NewSVGExporter().Export(typf.RenderOutput{Vector: ps})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if file.Extension != "svg" || file.MIMEType != "image/svg+xml" {
		t.Errorf("unexpected metadata: %+v", file)
	}
	s := string(file.Bytes)
	if !bytes.Contains([]byte(s), []byte("<svg")) {
		t.Error("expected an <svg> root element")
	}
	if !bytes.Contains([]byte(s), []byte("M0,0")) {
		t.Errorf("expected a move-to command in path data, got %s", s)
	}
}

func TestSVGExporterRejectsBitmapOutput(t *testing.T) {
	bmp := typf.NewBitmap(2, 2, typf.PixelFormatGray8)
	_, err := NewSVGExporter().Export(typf.RenderOutput{Bitmap: bmp})
	if err == nil {
		t.Fatal("expected error for nil vector output")
	}
}

// outlineFont is a minimal typf.Font + typf.OutlineSource fixture: every
// glyph is a unit square scaled to the requested pixel size.
type outlineFont struct{}

func (outlineFont) Bytes() []byte                          { return []byte("fake") }
func (outlineFont) UnitsPerEm() int                        { return 1000 }
func (outlineFont) Advance(typf.GlyphID) float64           { return 600 }
func (outlineFont) GlyphIndex(r rune) (typf.GlyphID, bool) { return 1, true }
func (outlineFont) GlyphCount() (int, bool)                { return 1, true }
func (outlineFont) Metrics() (typf.FontMetrics, bool) {
	return typf.FontMetrics{Ascent: 800, Descent: -200}, true
}
func (outlineFont) Outline(gid typf.GlyphID, size float64) (*typf.GlyphOutline, bool) {
	p := typf.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(size, 0)
	p.LineTo(size, size)
	p.LineTo(0, size)
	p.CloseSubpath()
	return &typf.GlyphOutline{Path: *p, Advance: size}, true
}

// TestVectorRendererThroughExecutorProducesSVG runs the full
// shape -> VectorRenderer -> SVGExporter pipeline end to end, confirming
// SVGExporter is reachable from a genuinely registered renderer rather than
// only from a hand-built PathSet.
func TestVectorRendererThroughExecutorProducesSVG(t *testing.T) {
	exec, err := typf.NewExecutorBuilder().
		WithShaper(typf.NewReferenceShaper()).
		WithRenderer(typf.NewVectorRenderer()).
		WithExporter(NewSVGExporter()).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	ctx, err := exec.Run("A", outlineFont{}, typf.ShapingParams{Size: 32}, typf.RenderParams{Foreground: typf.Black, Padding: 2})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ctx.Rendered == nil || ctx.Rendered.Vector == nil || len(ctx.Rendered.Vector.Paths) != 1 {
		t.Fatalf("expected one vector path from the render stage, got %+v", ctx.Rendered)
	}
	if ctx.Exported == nil || len(ctx.Exported.Bytes) == 0 {
		t.Fatal("expected non-empty exported SVG bytes")
	}
	if !bytes.Contains(ctx.Exported.Bytes, []byte("<svg")) {
		t.Errorf("expected an <svg> root element, got %s", ctx.Exported.Bytes)
	}
	if !bytes.Contains(ctx.Exported.Bytes, []byte("<path")) {
		t.Errorf("expected at least one <path> element, got %s", ctx.Exported.Bytes)
	}
}

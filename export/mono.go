// Package export implements the core's Exporter backends (C6): lossless,
// magic-prefixed byte containers for each bitmap pixel format, plus an SVG
// document encoder for vector render output.
//
// Container layout (all raster formats): 4-byte magic, big-endian uint32
// width, big-endian uint32 height, then the bitmap's native packed pixel
// bytes verbatim. This is the core's own lossless encoding, not a
// PNG/JPEG replacement — general image codecs are an external collaborator's
// concern per spec §1's scope.
package export

import (
	"encoding/binary"

	"github.com/fontlaborg/typf"
)

// MonoMagic identifies the 1-bit monochrome container format.
var MonoMagic = [4]byte{'T', 'Y', 'F', '1'}

// MonoExporter encodes a monochrome (PixelFormatMono1) bitmap.
type MonoExporter struct{}

func NewMonoExporter() *MonoExporter { return &MonoExporter{} }

func (e *MonoExporter) Name() string { return "mono" }

func (e *MonoExporter) SupportsFormat(format string) bool { return format == "bitmap" }

func (e *MonoExporter) Export(output typf.RenderOutput) (typf.ExportedFile, error) {
	if output.Bitmap == nil {
		return typf.ExportedFile{}, &typf.ExportError{Kind: typf.ExportFormatNotSupported, Backend: e.Name()}
	}
	b := output.Bitmap
	if b.Format != typf.PixelFormatMono1 {
		return typf.ExportedFile{}, &typf.ExportError{Kind: typf.ExportFormatNotSupported, Backend: e.Name()}
	}
	buf := make([]byte, 12+len(b.Pixels))
	copy(buf[0:4], MonoMagic[:])
	binary.BigEndian.PutUint32(buf[4:8], uint32(b.Width))
	binary.BigEndian.PutUint32(buf[8:12], uint32(b.Height))
	copy(buf[12:], b.Pixels)
	return typf.ExportedFile{Bytes: buf, Extension: "typ1", MIMEType: "image/x-typf-mono"}, nil
}

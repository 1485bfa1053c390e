package export

import (
	"encoding/binary"

	"github.com/fontlaborg/typf"
)

// RGBAMagic identifies the 32-bit RGBA container format.
var RGBAMagic = [4]byte{'T', 'Y', 'F', 'R'}

// RGBAExporter encodes a straight-alpha RGBA32 bitmap.
type RGBAExporter struct{}

func NewRGBAExporter() *RGBAExporter { return &RGBAExporter{} }

func (e *RGBAExporter) Name() string { return "rgba" }

func (e *RGBAExporter) SupportsFormat(format string) bool { return format == "bitmap" }

func (e *RGBAExporter) Export(output typf.RenderOutput) (typf.ExportedFile, error) {
	if output.Bitmap == nil {
		return typf.ExportedFile{}, &typf.ExportError{Kind: typf.ExportFormatNotSupported, Backend: e.Name()}
	}
	b := output.Bitmap
	if b.Format != typf.PixelFormatRGBA32 {
		return typf.ExportedFile{}, &typf.ExportError{Kind: typf.ExportFormatNotSupported, Backend: e.Name()}
	}
	buf := make([]byte, 12+len(b.Pixels))
	copy(buf[0:4], RGBAMagic[:])
	binary.BigEndian.PutUint32(buf[4:8], uint32(b.Width))
	binary.BigEndian.PutUint32(buf[8:12], uint32(b.Height))
	copy(buf[12:], b.Pixels)
	return typf.ExportedFile{Bytes: buf, Extension: "typr", MIMEType: "image/x-typf-rgba"}, nil
}

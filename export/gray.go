package export

import (
	"encoding/binary"

	"github.com/fontlaborg/typf"
)

// GrayMagic identifies the 8-bit gray container format.
var GrayMagic = [4]byte{'T', 'Y', 'F', '8'}

// GrayExporter encodes an 8-bit gray (PixelFormatGray8) bitmap.
type GrayExporter struct{}

func NewGrayExporter() *GrayExporter { return &GrayExporter{} }

func (e *GrayExporter) Name() string { return "gray" }

func (e *GrayExporter) SupportsFormat(format string) bool { return format == "bitmap" }

func (e *GrayExporter) Export(output typf.RenderOutput) (typf.ExportedFile, error) {
	if output.Bitmap == nil {
		return typf.ExportedFile{}, &typf.ExportError{Kind: typf.ExportFormatNotSupported, Backend: e.Name()}
	}
	b := output.Bitmap
	if b.Format != typf.PixelFormatGray8 {
		return typf.ExportedFile{}, &typf.ExportError{Kind: typf.ExportFormatNotSupported, Backend: e.Name()}
	}
	buf := make([]byte, 12+len(b.Pixels))
	copy(buf[0:4], GrayMagic[:])
	binary.BigEndian.PutUint32(buf[4:8], uint32(b.Width))
	binary.BigEndian.PutUint32(buf[8:12], uint32(b.Height))
	copy(buf[12:], b.Pixels)
	return typf.ExportedFile{Bytes: buf, Extension: "typ8", MIMEType: "image/x-typf-gray"}, nil
}

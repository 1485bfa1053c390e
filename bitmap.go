package typf

import (
	"image"
	"image/color"
	"image/draw"
)

// PixelFormat identifies the packing of a Bitmap's byte buffer.
type PixelFormat uint8

const (
	// PixelFormatAlpha8 stores one byte per pixel: coverage/alpha only.
	PixelFormatAlpha8 PixelFormat = iota
	// PixelFormatGray8 stores one byte per pixel: luminance only.
	PixelFormatGray8
	// PixelFormatRGBA32 stores four bytes per pixel, straight (non-premultiplied)
	// alpha, in R,G,B,A order.
	PixelFormatRGBA32
	// PixelFormatMono1 stores one bit per pixel, row-packed MSB-first, rows
	// padded to whole bytes.
	PixelFormatMono1
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatAlpha8:
		return "alpha8"
	case PixelFormatGray8:
		return "gray8"
	case PixelFormatRGBA32:
		return "rgba32"
	case PixelFormatMono1:
		return "mono1"
	default:
		return "unknown"
	}
}

// BytesPerPixel returns the number of bytes used per pixel for byte-aligned
// formats. It is meaningless for PixelFormatMono1 (use RowStride instead).
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatAlpha8, PixelFormatGray8:
		return 1
	case PixelFormatRGBA32:
		return 4
	default:
		return 0
	}
}

// Bitmap is a rectangular pixel buffer produced by a Renderer, per spec §3:
// width and height must both be >0, and Pixels' length must equal
// width*height*bytes-per-pixel, or ceil(width*height/8) for 1-bit mono.
type Bitmap struct {
	Width  int
	Height int
	Format PixelFormat
	Pixels []byte
}

// NewBitmap allocates a zeroed Bitmap of the given dimensions and format.
// Panics if width or height is not positive.
func NewBitmap(width, height int, format PixelFormat) *Bitmap {
	if width <= 0 || height <= 0 {
		panic("typf: bitmap dimensions must be positive")
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: make([]byte, bitmapByteLen(width, height, format)),
	}
}

func bitmapByteLen(width, height int, format PixelFormat) int {
	n := width * height
	switch format {
	case PixelFormatRGBA32:
		return n * 4
	case PixelFormatMono1:
		return ((width + 7) / 8) * height
	default:
		return n
	}
}

// RowStride returns the number of bytes per row.
func (b *Bitmap) RowStride() int {
	switch b.Format {
	case PixelFormatRGBA32:
		return b.Width * 4
	case PixelFormatMono1:
		return (b.Width + 7) / 8
	default:
		return b.Width
	}
}

// At returns the color of pixel (x, y), converting from the bitmap's native
// format. Out-of-bounds coordinates return Transparent.
func (b *Bitmap) At(x, y int) Color {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return Transparent
	}
	switch b.Format {
	case PixelFormatAlpha8:
		v := b.Pixels[y*b.RowStride()+x]
		return Color{A: v}
	case PixelFormatGray8:
		v := b.Pixels[y*b.RowStride()+x]
		return Color{R: v, G: v, B: v, A: 255}
	case PixelFormatRGBA32:
		i := y*b.RowStride() + x*4
		return Color{R: b.Pixels[i], G: b.Pixels[i+1], B: b.Pixels[i+2], A: b.Pixels[i+3]}
	case PixelFormatMono1:
		stride := b.RowStride()
		byteIdx := y*stride + x/8
		bit := 7 - uint(x%8)
		if b.Pixels[byteIdx]&(1<<bit) != 0 {
			return Color{R: 255, G: 255, B: 255, A: 255}
		}
		return Color{A: 255}
	default:
		return Transparent
	}
}

// SetAlpha sets a single-channel pixel. Valid only for PixelFormatAlpha8 and
// PixelFormatGray8.
func (b *Bitmap) SetAlpha(x, y int, v byte) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	b.Pixels[y*b.RowStride()+x] = v
}

// SetRGBA sets a pixel in an RGBA32 bitmap.
func (b *Bitmap) SetRGBA(x, y int, c Color) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	i := y*b.RowStride() + x*4
	b.Pixels[i+0] = c.R
	b.Pixels[i+1] = c.G
	b.Pixels[i+2] = c.B
	b.Pixels[i+3] = c.A
}

// SetBit sets or clears a single bit in a Mono1 bitmap.
func (b *Bitmap) SetBit(x, y int, on bool) {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return
	}
	stride := b.RowStride()
	byteIdx := y*stride + x/8
	bit := byte(1) << (7 - uint(x%8))
	if on {
		b.Pixels[byteIdx] |= bit
	} else {
		b.Pixels[byteIdx] &^= bit
	}
}

// ToImage converts the bitmap to a stdlib image.Image for interop with
// golang.org/x/image and image/draw consumers.
func (b *Bitmap) ToImage() image.Image {
	switch b.Format {
	case PixelFormatRGBA32:
		img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				c := b.At(x, y)
				img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
			}
		}
		return img
	case PixelFormatAlpha8:
		img := image.NewAlpha(image.Rect(0, 0, b.Width, b.Height))
		copy(img.Pix, b.Pixels)
		return img
	case PixelFormatGray8:
		img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
		copy(img.Pix, b.Pixels)
		return img
	default:
		img := image.NewGray(image.Rect(0, 0, b.Width, b.Height))
		for y := 0; y < b.Height; y++ {
			for x := 0; x < b.Width; x++ {
				c := b.At(x, y)
				img.SetGray(x, y, color.Gray{Y: c.R})
			}
		}
		return img
	}
}

var _ draw.Image = (*rgbaDrawAdapter)(nil)

// rgbaDrawAdapter lets an RGBA32 Bitmap be used as a draw.Image destination,
// e.g. for compositing color glyph layers.
type rgbaDrawAdapter struct {
	b *Bitmap
}

func (a *rgbaDrawAdapter) ColorModel() color.Model { return color.NRGBAModel }
func (a *rgbaDrawAdapter) Bounds() image.Rectangle { return image.Rect(0, 0, a.b.Width, a.b.Height) }
func (a *rgbaDrawAdapter) At(x, y int) color.Color { return a.b.At(x, y).Std() }
func (a *rgbaDrawAdapter) Set(x, y int, c color.Color) {
	a.b.SetRGBA(x, y, FromStd(c))
}

// AsDrawImage returns a draw.Image view over an RGBA32 bitmap. Panics if the
// bitmap is not in RGBA32 format.
func (b *Bitmap) AsDrawImage() draw.Image {
	if b.Format != PixelFormatRGBA32 {
		panic("typf: AsDrawImage requires PixelFormatRGBA32")
	}
	return &rgbaDrawAdapter{b: b}
}

// Package framebuffer implements the software back buffer the demos draw into.
//
// Pixels are 32 bits wide. Memory order is BB GG RR XX, which is the
// little-endian encoding of the value 0xXXRRGGBB.
package framebuffer

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"
)

const BytesPerPixel = 4

type Buffer struct {
	Pix           []uint8
	Width, Height int
	// Pitch is the number of bytes from the start of one row to the next.
	Pitch         int
	BytesPerPixel int
}

func New(width, height int) *Buffer {
	b := &Buffer{BytesPerPixel: BytesPerPixel}
	b.Resize(width, height)
	return b
}

// Resize drops the old memory and allocates a buffer of the new size.
// Non-positive dimensions give an empty buffer.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b.Width = width
	b.Height = height
	b.BytesPerPixel = BytesPerPixel
	b.Pitch = width * BytesPerPixel
	b.Pix = make([]uint8, b.Pitch*height)
}

func (b *Buffer) PixelAt(x, y int) uint32 {
	off := y*b.Pitch + x*b.BytesPerPixel
	return binary.LittleEndian.Uint32(b.Pix[off : off+4])
}

func (b *Buffer) SetPixel(x, y int, val uint32) {
	off := y*b.Pitch + x*b.BytesPerPixel
	binary.LittleEndian.PutUint32(b.Pix[off:off+4], val)
}

func (b *Buffer) RenderGradient(offsetX, offsetY int) {
	RenderGradient(b.Pix, b.Pitch, b.Width, b.Height, offsetX, offsetY)
}

// RenderGradient fills a width x height region of pix, whose rows are pitch
// bytes apart, with (green << 8) | blue where blue follows x and green follows y.
func RenderGradient(pix []uint8, pitch, width, height, offsetX, offsetY int) {
	for y := 0; y < height; y++ {
		row := pix[y*pitch : y*pitch+width*BytesPerPixel]
		green := uint32(uint8(y + offsetY))
		for x := 0; x < width; x++ {
			blue := uint32(uint8(x + offsetX))
			binary.LittleEndian.PutUint32(row[x*BytesPerPixel:], green<<8|blue)
		}
	}
}

// RGBA converts the buffer into tightly packed RGBA bytes with opaque alpha.
// dst must hold at least Width*Height*4 bytes.
func (b *Buffer) RGBA(dst []uint8) error {
	need := b.Width * b.Height * 4
	if len(dst) < need {
		return fmt.Errorf("framebuffer: destination too small: expected %d, got %d", need, len(dst))
	}
	for y := 0; y < b.Height; y++ {
		src := b.Pix[y*b.Pitch:]
		out := dst[y*b.Width*4:]
		for x := 0; x < b.Width; x++ {
			out[x*4+0] = src[x*4+2] // r
			out[x*4+1] = src[x*4+1] // g
			out[x*4+2] = src[x*4+0] // b
			out[x*4+3] = 0xff       // a
		}
	}
	return nil
}

func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *Buffer) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(b.Bounds())) {
		return color.RGBA{}
	}
	off := y*b.Pitch + x*b.BytesPerPixel
	return color.RGBA{R: b.Pix[off+2], G: b.Pix[off+1], B: b.Pix[off], A: 0xff}
}

// WriteBMP writes the current frame as a BMP image.
func (b *Buffer) WriteBMP(w io.Writer) error {
	if b.Width == 0 || b.Height == 0 {
		return fmt.Errorf("framebuffer: cannot encode an empty buffer")
	}
	return bmp.Encode(w, b)
}

package pixfilter

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// Buffer is a rectangular RGBA8 pixel buffer.
//
// Pixels are stored row-major, four bytes per pixel in R, G, B, A order,
// without premultiplication. Alpha is carried through unchanged unless a
// filter documents otherwise.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

// NewBuffer creates a zeroed (transparent black) buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	if err := checkDims(width, height); err != nil {
		return nil, err
	}
	return newBuffer(width, height), nil
}

// NewBufferFrom creates a buffer holding a copy of pix.
// len(pix) must equal width*height*4.
func NewBufferFrom(width, height int, pix []uint8) (*Buffer, error) {
	if err := checkPix(width, height, pix); err != nil {
		return nil, err
	}
	b := newBuffer(width, height)
	copy(b.pix, pix)
	return b, nil
}

// WrapBuffer creates a buffer backed by pix without copying.
// len(pix) must equal width*height*4. Filters never write to pix, but the
// caller must not modify it while a filter reads it.
func WrapBuffer(width, height int, pix []uint8) (*Buffer, error) {
	if err := checkPix(width, height, pix); err != nil {
		return nil, err
	}
	return &Buffer{width: width, height: height, pix: pix}, nil
}

// newBuffer allocates a buffer for already validated dimensions.
func newBuffer(width, height int) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

func checkDims(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

func checkPix(width, height int, pix []uint8) error {
	if err := checkDims(width, height); err != nil {
		return err
	}
	if want := width * height * 4; len(pix) != want {
		return fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrInvalidDimensions, width, height, want, len(pix))
	}
	return nil
}

// Validate reports whether the buffer's dimensions and pixel slice agree.
// A nil or zero Buffer is invalid.
func (b *Buffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidDimensions)
	}
	return checkPix(b.width, b.height, b.pix)
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Pix returns the raw pixel data (RGBA format).
func (b *Buffer) Pix() []uint8 {
	return b.pix
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.width * b.height
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := newBuffer(b.width, b.height)
	copy(c.pix, b.pix)
	return c
}

// Equal reports whether two buffers have the same dimensions and bytes.
func (b *Buffer) Equal(o *Buffer) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.width == o.width && b.height == o.height && bytes.Equal(b.pix, o.pix)
}

// Pixel returns the color of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (b *Buffer) Pixel(x, y int) color.NRGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}
	}
	i := (y*b.width + x) * 4
	return color.NRGBA{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2], A: b.pix[i+3]}
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i+0] = c.R
	b.pix[i+1] = c.G
	b.pix[i+2] = c.B
	b.pix[i+3] = c.A
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c color.NRGBA) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = c.R
		b.pix[i+1] = c.G
		b.pix[i+2] = c.B
		b.pix[i+3] = c.A
	}
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// luma returns trunc(0.299R + 0.587G + 0.114B) computed exactly in integers.
func luma(r, g, b uint8) int {
	return (299*int(r) + 587*int(g) + 114*int(b)) / 1000
}

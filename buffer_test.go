package pixfilter

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b, err := NewBuffer(3, 2)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Errorf("size = %dx%d, want 3x2", b.Width(), b.Height())
	}
	if len(b.Pix()) != 24 {
		t.Errorf("len(Pix) = %d, want 24", len(b.Pix()))
	}
	if b.Len() != 6 {
		t.Errorf("Len() = %d, want 6", b.Len())
	}
}

func TestNewBufferInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBuffer(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewBuffer(%d, %d) error = %v, want ErrInvalidDimensions", tt.w, tt.h, err)
			}
			if b != nil {
				t.Error("NewBuffer returned a buffer alongside an error")
			}
		})
	}
}

func TestNewBufferFromCopies(t *testing.T) {
	pix := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	b, err := NewBufferFrom(2, 1, pix)
	if err != nil {
		t.Fatalf("NewBufferFrom() error = %v", err)
	}

	pix[0] = 99
	if b.Pix()[0] != 1 {
		t.Error("NewBufferFrom must copy the pixel slice")
	}
}

func TestWrapBufferShares(t *testing.T) {
	pix := []uint8{1, 2, 3, 4}
	b, err := WrapBuffer(1, 1, pix)
	if err != nil {
		t.Fatalf("WrapBuffer() error = %v", err)
	}

	pix[0] = 99
	if b.Pix()[0] != 99 {
		t.Error("WrapBuffer must not copy the pixel slice")
	}
}

func TestBufferLengthMismatch(t *testing.T) {
	for _, n := range []int{0, 15, 17, 32} {
		if _, err := WrapBuffer(2, 2, make([]uint8, n)); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("WrapBuffer(2, 2, len=%d) error = %v, want ErrInvalidDimensions", n, err)
		}
		if _, err := NewBufferFrom(2, 2, make([]uint8, n)); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewBufferFrom(2, 2, len=%d) error = %v, want ErrInvalidDimensions", n, err)
		}
	}
}

func TestBufferValidate(t *testing.T) {
	var nilBuf *Buffer
	if err := nilBuf.Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("nil.Validate() = %v, want ErrInvalidDimensions", err)
	}
	if err := (&Buffer{}).Validate(); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero Buffer Validate() = %v, want ErrInvalidDimensions", err)
	}
	if err := solidBuffer(2, 2, 0, 0, 0, 0).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestBufferPixel(t *testing.T) {
	b := newBuffer(4, 3)
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 40}

	b.SetPixel(2, 1, c)

	if got := b.Pixel(2, 1); got != c {
		t.Errorf("Pixel(2, 1) = %v, want %v", got, c)
	}
	i := (1*4 + 2) * 4
	if b.pix[i] != 10 || b.pix[i+1] != 20 || b.pix[i+2] != 30 || b.pix[i+3] != 40 {
		t.Errorf("raw bytes = %v, want [10 20 30 40]", b.pix[i:i+4])
	}
}

func TestBufferPixelOutOfBounds(t *testing.T) {
	b := solidBuffer(3, 3, 7, 7, 7, 7)
	orig := b.Clone()

	for _, p := range []image.Point{{-1, 0}, {3, 0}, {0, -1}, {0, 3}, {100, 100}} {
		b.SetPixel(p.X, p.Y, color.NRGBA{R: 255, A: 255})
		if got := b.Pixel(p.X, p.Y); got != (color.NRGBA{}) {
			t.Errorf("Pixel(%d, %d) = %v, want transparent", p.X, p.Y, got)
		}
	}

	if !b.Equal(orig) {
		t.Error("out-of-bounds SetPixel modified the buffer")
	}
}

func TestBufferCloneIndependent(t *testing.T) {
	a := randomBuffer(5, 4, 1)
	b := a.Clone()

	if !a.Equal(b) {
		t.Fatal("Clone() not equal to original")
	}
	b.pix[0]++
	if a.Equal(b) {
		t.Error("modifying the clone changed the original")
	}
}

func TestBufferEqual(t *testing.T) {
	a := solidBuffer(2, 2, 1, 2, 3, 4)

	if !a.Equal(solidBuffer(2, 2, 1, 2, 3, 4)) {
		t.Error("equal buffers reported different")
	}
	if a.Equal(solidBuffer(4, 1, 1, 2, 3, 4)) {
		t.Error("buffers with different dimensions reported equal")
	}
	if a.Equal(nil) {
		t.Error("buffer equal to nil")
	}
	var n *Buffer
	if !n.Equal(nil) {
		t.Error("nil buffers should be equal")
	}
}

func TestBufferImplementsImage(t *testing.T) {
	var img image.Image = solidBuffer(3, 2, 200, 100, 50, 255)

	if got := img.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v, want (0,0)-(3,2)", got)
	}
	if img.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() should be NRGBAModel")
	}
	r, g, b, a := img.At(1, 1).RGBA()
	if r != 200*257 || g != 100*257 || b != 50*257 || a != 255*257 {
		t.Errorf("At(1, 1).RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}

func TestLuma(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    int
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{200, 200, 200, 200},
		{128, 128, 128, 128},
		{255, 0, 0, 76},  // 76.245
		{0, 255, 0, 149}, // 149.685
		{0, 0, 255, 29},  // 29.07
		{100, 150, 200, 140},
	}

	for _, tt := range tests {
		if got := luma(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("luma(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

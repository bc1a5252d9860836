package host

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/pixfilter"
)

func TestFromImage_NRGBAOffset(t *testing.T) {
	buf, err := FromImage(imageWithOffset())
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}

	if buf.Width() != 3 || buf.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", buf.Width(), buf.Height())
	}
	if c := buf.Pixel(0, 0); c != (color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Pixel(0,0) = %v", c)
	}
	if c := buf.Pixel(2, 1); c != (color.NRGBA{R: 250, G: 251, B: 252, A: 253}) {
		t.Errorf("Pixel(2,1) = %v", c)
	}
}

func TestFromImage_NoAliasing(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	buf, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}

	img.Pix[0] = 99
	if buf.Pix()[0] != 0 {
		t.Error("FromImage shares memory with its input")
	}
}

func TestFromImage_Premultiplied(t *testing.T) {
	// Premultiplied (100, 50, 0, 128) is straight (199, 99, 0, 128).
	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	rgba.SetRGBA(0, 0, color.RGBA{R: 100, G: 50, B: 0, A: 128})

	buf, err := FromImage(rgba)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}

	c := buf.Pixel(0, 0)
	if c.A != 128 || c.R < 198 || c.R > 200 || c.G < 98 || c.G > 100 || c.B != 0 {
		t.Errorf("Pixel = %v, want about {199 99 0 128}", c)
	}
}

func TestFromImage_Gray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 4))
	gray.SetGray(1, 2, color.Gray{Y: 77})

	buf, err := FromImage(gray)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if c := buf.Pixel(1, 2); c != (color.NRGBA{R: 77, G: 77, B: 77, A: 255}) {
		t.Errorf("Pixel = %v, want gray 77 opaque", c)
	}
}

func TestFromImage_Empty(t *testing.T) {
	_, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 5)))
	if !errors.Is(err, pixfilter.ErrInvalidDimensions) {
		t.Errorf("FromImage(empty) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestToImage(t *testing.T) {
	buf := translucent(t, 5, 3)

	img := ToImage(buf)

	if img.Bounds() != image.Rect(0, 0, 5, 3) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if diff := cmp.Diff(buf.Pix(), img.Pix); diff != "" {
		t.Errorf("ToImage pixels differ (-want +got):\n%s", diff)
	}

	img.Pix[0]++
	if buf.Pix()[0] == img.Pix[0] {
		t.Error("ToImage shares memory with the buffer")
	}
	img.Pix[0]--

	back, err := FromImage(img)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if !back.Equal(buf) {
		t.Error("FromImage(ToImage(b)) does not round-trip")
	}
}

func TestScale(t *testing.T) {
	buf := gradient(t, 40, 20)

	got, err := Scale(buf, 20, 10)
	if err != nil {
		t.Fatalf("Scale() error = %v", err)
	}
	if got.Width() != 20 || got.Height() != 10 {
		t.Errorf("size = %dx%d, want 20x10", got.Width(), got.Height())
	}

	same, err := Scale(buf, 40, 20)
	if err != nil {
		t.Fatalf("Scale(same) error = %v", err)
	}
	if same == buf || !same.Equal(buf) {
		t.Error("Scale to the same size should return an equal copy")
	}

	if _, err := Scale(buf, 0, 10); !errors.Is(err, pixfilter.ErrInvalidDimensions) {
		t.Errorf("Scale(0, 10) error = %v, want ErrInvalidDimensions", err)
	}
}

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"fits", 100, 50, 200, 200, 100, 50},
		{"wide", 400, 100, 200, 200, 200, 50},
		{"tall", 100, 400, 200, 200, 50, 200},
		{"no limit", 400, 100, 0, 0, 400, 100},
		{"extreme", 1000, 1, 10, 10, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := pixfilter.NewBuffer(tt.w, tt.h)
			if err != nil {
				t.Fatal(err)
			}
			w, h := Fit(buf, tt.maxW, tt.maxH)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Fit() = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

package host

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/pixfilter"
)

// gradient builds a deterministic opaque test buffer.
func gradient(t *testing.T, w, h int) *pixfilter.Buffer {
	t.Helper()
	buf, err := pixfilter.NewBuffer(w, h)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	for y := range h {
		for x := range w {
			buf.SetPixel(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x + y) * 255 / max(w+h-2, 1)),
				A: 255,
			})
		}
	}
	return buf
}

// translucent builds a buffer with varying alpha.
func translucent(t *testing.T, w, h int) *pixfilter.Buffer {
	t.Helper()
	buf := gradient(t, w, h)
	pix := buf.Pix()
	for i := 3; i < len(pix); i += 4 {
		pix[i] = uint8(i * 13)
	}
	return buf
}

func mustDecode(t *testing.T, data []byte) *pixfilter.Buffer {
	t.Helper()
	buf, _, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	return buf
}

// imageWithOffset returns an NRGBA whose bounds do not start at the origin.
func imageWithOffset() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	img.SetNRGBA(10, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	img.SetNRGBA(12, 21, color.NRGBA{R: 250, G: 251, B: 252, A: 253})
	return img
}

func encodeTo(t *testing.T, buf *pixfilter.Buffer, f Format, q int) []byte {
	t.Helper()
	var b bytes.Buffer
	if err := Encode(&b, buf, f, q); err != nil {
		t.Fatalf("Encode(%s) error = %v", f, err)
	}
	return b.Bytes()
}

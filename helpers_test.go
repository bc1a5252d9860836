package pixfilter

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across filter tests.

// solidBuffer creates a buffer filled with one color.
func solidBuffer(w, h int, r, g, b, a uint8) *Buffer {
	buf := newBuffer(w, h)
	buf.Fill(color.NRGBA{R: r, G: g, B: b, A: a})
	return buf
}

// pixelBuffer creates a 1×1 buffer.
func pixelBuffer(r, g, b, a uint8) *Buffer {
	return solidBuffer(1, 1, r, g, b, a)
}

// randomBuffer creates a buffer of deterministic pseudo-random bytes,
// alpha included.
func randomBuffer(w, h int, seed uint64) *Buffer {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	buf := newBuffer(w, h)
	for i := range buf.pix {
		buf.pix[i] = uint8(rng.IntN(256))
	}
	return buf
}

// mustApply returns a checker for a filter's results, so it can wrap a
// filter call directly: mustApply(t)(Blur(src, 2)).
func mustApply(t *testing.T) func(*Buffer, error) *Buffer {
	t.Helper()
	return func(out *Buffer, err error) *Buffer {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out == nil {
			t.Fatal("nil buffer without error")
		}
		return out
	}
}

// assertSameSize fails if got does not have want's dimensions.
func assertSameSize(t *testing.T, got, want *Buffer) {
	t.Helper()
	if got.Width() != want.Width() || got.Height() != want.Height() {
		t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), want.Width(), want.Height())
	}
	if len(got.Pix()) != len(want.Pix()) {
		t.Fatalf("len(Pix) = %d, want %d", len(got.Pix()), len(want.Pix()))
	}
}

// assertAlphaPreserved fails if any alpha byte differs between a and b.
func assertAlphaPreserved(t *testing.T, got, src *Buffer) {
	t.Helper()
	for i := 3; i < len(src.pix); i += 4 {
		if got.pix[i] != src.pix[i] {
			t.Fatalf("alpha of pixel %d = %d, want %d", i/4, got.pix[i], src.pix[i])
		}
	}
}

// withWorkers sets the worker count for the duration of a test.
func withWorkers(t *testing.T, n int) {
	t.Helper()
	orig := Workers()
	SetWorkers(n)
	t.Cleanup(func() { SetWorkers(orig) })
}

// pixelAt returns the RGBA bytes of one pixel as an array.
func pixelAt(b *Buffer, x, y int) [4]uint8 {
	c := b.Pixel(x, y)
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// absDiff returns |a - b|.
func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

package pixfilter

import (
	"sync"

	"github.com/gogpu/pixfilter/internal/kernel"
)

// MaxBlurRadius is the largest accepted blur radius. The kernel has
// 2·ceil(radius)+1 taps, so the bound keeps both the kernel and the per-pixel
// work finite.
const MaxBlurRadius = 1024.0

// checkBlurRadius rejects non-finite radii and radii above MaxBlurRadius.
func checkBlurRadius(radius float64) error {
	if err := checkFinite("blur radius", radius); err != nil {
		return err
	}
	if radius > MaxBlurRadius {
		return paramError("blur radius", radius, "exceeds MaxBlurRadius")
	}
	return nil
}

// Blur applies a separable Gaussian blur.
//
// The kernel half-width is ceil(radius) and sigma is radius/3. Rows are
// convolved first, then columns, over all four channels including alpha.
// Samples beyond the buffer edge replicate the nearest edge pixel in both
// passes, so borders do not darken. Results are rounded to nearest.
// radius <= 0 returns src; radius > MaxBlurRadius is an error.
func Blur(src *Buffer, radius float64) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := checkBlurRadius(radius); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return src, nil
	}

	k := kernel.CachedGaussian(radius)
	w, h := src.width, src.height

	temp := getTempBuffer(w * h * 4)
	defer putTempBuffer(temp)

	dst := newBuffer(w, h)

	// The vertical pass reads rows written by other bands, so the
	// horizontal pass must finish everywhere first.
	forRows(src, func(y0, y1 int) {
		blurHorizontal(src.pix, temp, w, y0, y1, k)
	})
	forRows(src, func(y0, y1 int) {
		blurVertical(temp, dst.pix, w, h, y0, y1, k)
	})

	return dst, nil
}

// blurHorizontal convolves rows [y0, y1) of src into temp.
func blurHorizontal(src []uint8, temp []float32, width, y0, y1 int, k []float32) {
	half := len(k) / 2

	for y := y0; y < y1; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for i, weight := range k {
				sx := x + i - half
				// Clamp to source bounds (edge extension)
				if sx < 0 {
					sx = 0
				} else if sx >= width {
					sx = width - 1
				}

				si := (row + sx) * 4
				r += float32(src[si+0]) * weight
				g += float32(src[si+1]) * weight
				b += float32(src[si+2]) * weight
				a += float32(src[si+3]) * weight
			}

			ti := (row + x) * 4
			temp[ti+0] = r
			temp[ti+1] = g
			temp[ti+2] = b
			temp[ti+3] = a
		}
	}
}

// blurVertical convolves columns of temp into rows [y0, y1) of dst.
func blurVertical(temp []float32, dst []uint8, width, height, y0, y1 int, k []float32) {
	half := len(k) / 2

	for y := y0; y < y1; y++ {
		for x := 0; x < width; x++ {
			var r, g, b, a float32

			for i, weight := range k {
				sy := y + i - half
				if sy < 0 {
					sy = 0
				} else if sy >= height {
					sy = height - 1
				}

				ti := (sy*width + x) * 4
				r += temp[ti+0] * weight
				g += temp[ti+1] * weight
				b += temp[ti+2] * weight
				a += temp[ti+3] * weight
			}

			di := (y*width + x) * 4
			dst[di+0] = clampRound(float64(r))
			dst[di+1] = clampRound(float64(g))
			dst[di+2] = clampRound(float64(b))
			dst[di+3] = clampRound(float64(a))
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// maxPooledFloats caps pooled intermediate buffers at 64MB.
const maxPooledFloats = 16 * 1024 * 1024

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

// getTempBuffer returns a float32 slice of exactly n elements. Contents are
// unspecified; the horizontal pass overwrites every element.
func getTempBuffer(n int) []float32 {
	fb := tempBufferPool.Get().(*floatBuffer)
	if cap(fb.data) < n {
		tempBufferPool.Put(fb)
		return make([]float32, n)
	}
	return fb.data[:n]
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= maxPooledFloats {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

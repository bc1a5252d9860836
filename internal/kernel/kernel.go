// Package kernel builds convolution kernels for pixfilter's neighborhood
// filters.
package kernel

import (
	"math"

	"github.com/gogpu/pixfilter/internal/cache"
)

// Radius returns the half-width of the Gaussian kernel for a blur radius:
// ceil(blurRadius), or 0 for non-positive radii.
func Radius(blurRadius float64) int {
	if blurRadius <= 0 {
		return 0
	}
	return int(math.Ceil(blurRadius))
}

// Size returns the length of the Gaussian kernel for a blur radius.
func Size(blurRadius float64) int {
	return Radius(blurRadius)*2 + 1
}

// Gaussian generates a 1D Gaussian kernel for the given blur radius.
// The kernel is normalized so all values sum to 1.0.
//
// The half-width is ceil(blurRadius) and sigma is blurRadius/3, so the
// kernel spans three standard deviations on each side.
//
// For blurRadius <= 0, returns a single-element kernel [1.0] (identity).
func Gaussian(blurRadius float64) []float32 {
	if blurRadius <= 0 {
		return []float32{1.0}
	}

	half := Radius(blurRadius)
	sigma := blurRadius / 3
	twoSigmaSq := 2 * sigma * sigma

	weights := make([]float64, half*2+1)
	sum := 0.0
	for i := range weights {
		x := float64(i - half)
		w := math.Exp(-(x * x) / twoSigmaSq)
		weights[i] = w
		sum += w
	}

	kernel := make([]float32, len(weights))
	for i, w := range weights {
		kernel[i] = float32(w / sum)
	}
	return kernel
}

// defaultCache holds computed Gaussian kernels keyed by the exact radius
// bits. Pipelines usually reuse one or two radii.
var defaultCache = cache.New[uint64, []float32](64)

func cachedGaussian(c *cache.Cache[uint64, []float32], blurRadius float64) []float32 {
	return c.GetOrCreate(math.Float64bits(blurRadius), func() []float32 {
		return Gaussian(blurRadius)
	})
}

// CachedGaussian returns a shared Gaussian kernel for the blur radius.
// The returned slice must be treated as read-only.
func CachedGaussian(blurRadius float64) []float32 {
	return cachedGaussian(defaultCache, blurRadius)
}

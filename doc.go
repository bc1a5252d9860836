// Package pixfilter provides a stateless raster pixel-filter engine.
//
// # Overview
//
// pixfilter transforms RGBA8 pixel buffers with deterministic filters:
// brightness, contrast, saturation, gamma, grayscale, separable Gaussian
// blur, unsharp-mask sharpen, block pixelation and histogram-driven
// auto-exposure. Filters can be called one at a time or composed into a
// [Pipeline] that applies them in a fixed order.
//
// # Quick Start
//
//	import "github.com/gogpu/pixfilter"
//
//	buf, err := pixfilter.WrapBuffer(w, h, pix)
//	if err != nil {
//		return err
//	}
//
//	p := pixfilter.DefaultParams()
//	p.BlurRadius = 2
//	p.Brightness = 10
//
//	out, err := pixfilter.Apply(buf, p)
//
// # Buffers
//
// A [Buffer] holds non-premultiplied RGBA bytes, four per pixel, rows top to
// bottom. Every filter is a pure function: it never writes to its input and
// returns a freshly allocated buffer of the same size. When a parameter is
// at its identity value the filter returns the input buffer itself.
//
// # Pipeline Order
//
// The pipeline runs neighborhood filters before color remaps:
//
//	blur → sharpen → pixelate → grayscale → auto-exposure →
//	brightness → contrast → saturation → gamma
//
// Stages whose parameter is at its identity value are skipped. When every
// stage is skipped the input buffer is returned without allocation.
//
// # Concurrency
//
// All functions are safe for concurrent use. Filters split large buffers
// into row bands processed on a shared worker pool; the output is identical
// to the sequential result. See [SetWorkers].
//
// # Host Integration
//
// Decoding, encoding and display surfaces are outside this package. The
// host subpackage converts between [Buffer] and image.Image and reads and
// writes common image formats.
package pixfilter

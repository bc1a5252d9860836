package pixfilter

import "math"

// Contrast domain. The contrast factor
//
//	factor = 259(f·255 + 255) / (255(259 − f·255)),  f = (v − 100)/100
//
// is zero at v = 0 (flat gray), exactly 1 at v = 100 (identity), grows
// without bound as v approaches 100 + 259/255·100 ≈ 201.57 and changes sign
// beyond it. Below v = 0 it turns negative and would invert the image.
// Inputs are limited to [MinContrast, MaxContrast]; at MaxContrast the factor
// is already ≈ 2982, so every channel other than the 128 pivot saturates to
// 0 or 255.
const (
	MinContrast = 0.0
	MaxContrast = 201.5
)

// Luminance weights (ITU-R BT.601).
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.114
)

// pointFunc maps one row of source pixels to one row of destination pixels.
// dst and src have equal length, a multiple of four.
type pointFunc func(dst, src []uint8)

// mapRows allocates the output buffer and applies fn row by row.
func mapRows(src *Buffer, fn pointFunc) *Buffer {
	dst := newBuffer(src.width, src.height)
	stride := src.width * 4
	forRows(src, func(y0, y1 int) {
		lo, hi := y0*stride, y1*stride
		fn(dst.pix[lo:hi], src.pix[lo:hi])
	})
	return dst
}

// Brightness shifts R, G and B by (v/100)·255. v is a signed percentage;
// results are clamped to [0, 255] and truncated. v == 0 returns src.
func Brightness(src *Buffer, v float64) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := checkFinite("brightness", v); err != nil {
		return nil, err
	}
	if v == 0 {
		return src, nil
	}

	adj := v / 100 * 255
	return mapRows(src, func(dst, src []uint8) {
		for i := 0; i < len(src); i += 4 {
			dst[i+0] = clampTrunc(float64(src[i+0]) + adj)
			dst[i+1] = clampTrunc(float64(src[i+1]) + adj)
			dst[i+2] = clampTrunc(float64(src[i+2]) + adj)
			dst[i+3] = src[i+3]
		}
	}), nil
}

// ContrastFactor returns the multiplier applied around the 128 pivot for a
// contrast percentage, or an error if v is outside
// [MinContrast, MaxContrast]. ContrastFactor(100) is 1.
func ContrastFactor(v float64) (float64, error) {
	if err := checkFinite("contrast", v); err != nil {
		return 0, err
	}
	if v < MinContrast || v > MaxContrast {
		return 0, paramError("contrast", v, "outside [0, 201.5]")
	}
	f := (v - 100) / 100
	return (259 * (f*255 + 255)) / (255 * (259 - f*255)), nil
}

// Contrast scales R, G and B away from (or toward) 128. v is a percentage:
// 0 is flat gray, 100 is identity and values above 100 increase contrast.
// The mapping is continuous across the whole domain. Results are clamped and
// truncated. v == 100 returns src.
func Contrast(src *Buffer, v float64) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	factor, err := ContrastFactor(v)
	if err != nil {
		return nil, err
	}
	if v == 100 {
		return src, nil
	}

	return mapRows(src, func(dst, src []uint8) {
		for i := 0; i < len(src); i += 4 {
			dst[i+0] = clampTrunc(factor*(float64(src[i+0])-128) + 128)
			dst[i+1] = clampTrunc(factor*(float64(src[i+1])-128) + 128)
			dst[i+2] = clampTrunc(factor*(float64(src[i+2])-128) + 128)
			dst[i+3] = src[i+3]
		}
	}), nil
}

// Saturation blends each channel with the pixel's luminance. v is a
// percentage: 0 is grayscale, 100 identity, above 100 oversaturates.
// Results are clamped and truncated. v == 100 returns src.
func Saturation(src *Buffer, v float64) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := checkFinite("saturation", v); err != nil {
		return nil, err
	}
	if v == 100 {
		return src, nil
	}

	s := v / 100
	return mapRows(src, func(dst, src []uint8) {
		for i := 0; i < len(src); i += 4 {
			r, g, b := float64(src[i+0]), float64(src[i+1]), float64(src[i+2])
			gray := lumR*r + lumG*g + lumB*b
			dst[i+0] = clampTrunc(gray + s*(r-gray))
			dst[i+1] = clampTrunc(gray + s*(g-gray))
			dst[i+2] = clampTrunc(gray + s*(b-gray))
			dst[i+3] = src[i+3]
		}
	}), nil
}

// Grayscale writes trunc(0.299R + 0.587G + 0.114B) to R, G and B.
// Grayscale is idempotent.
func Grayscale(src *Buffer) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	return mapRows(src, func(dst, src []uint8) {
		for i := 0; i < len(src); i += 4 {
			y := uint8(luma(src[i+0], src[i+1], src[i+2]))
			dst[i+0] = y
			dst[i+1] = y
			dst[i+2] = y
			dst[i+3] = src[i+3]
		}
	}), nil
}

// GammaTable builds the 256-entry lookup table
// T[i] = round(255·(i/255)^(1/g)) for gamma g > 0.
func GammaTable(g float64) ([256]uint8, error) {
	var t [256]uint8
	if err := checkGamma(g); err != nil {
		return t, err
	}

	inv := 1 / g
	for i := range t {
		t[i] = clampRound(255 * math.Pow(float64(i)/255, inv))
	}
	return t, nil
}

func checkGamma(g float64) error {
	if err := checkFinite("gamma", g); err != nil {
		return err
	}
	if g <= 0 {
		return paramError("gamma", g, "must be positive")
	}
	return nil
}

// Gamma applies gamma correction to R, G and B through a lookup table built
// once per call. g > 1 brightens mid-tones, g < 1 darkens them. g must be
// positive; g == 1 returns src.
func Gamma(src *Buffer, g float64) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	table, err := GammaTable(g)
	if err != nil {
		return nil, err
	}
	if g == 1 {
		return src, nil
	}

	return mapRows(src, func(dst, src []uint8) {
		for i := 0; i < len(src); i += 4 {
			dst[i+0] = table[src[i+0]]
			dst[i+1] = table[src[i+1]]
			dst[i+2] = table[src[i+2]]
			dst[i+3] = src[i+3]
		}
	}), nil
}

// clampTrunc clamps v to [0, 255] and truncates toward zero.
func clampTrunc(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

// clampRound clamps v to [0, 255] and rounds to nearest.
func clampRound(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

package pixfilter

import "fmt"

// Params holds the settings of every pipeline stage.
//
// The zero value is not the identity: Contrast and Saturation are
// percentages where 100 means unchanged, and Gamma must be positive. Start
// from [DefaultParams].
type Params struct {
	// Brightness is a signed percentage of full scale added to R, G and B.
	// 0 is identity.
	Brightness float64

	// Contrast is a percentage in [MinContrast, MaxContrast].
	// 100 is identity, 0 flattens to gray.
	Contrast float64

	// Saturation is a percentage. 0 is grayscale, 100 is identity.
	Saturation float64

	// Gamma is the gamma exponent. Must be positive; 1 is identity.
	Gamma float64

	// BlurRadius is the Gaussian blur radius in pixels, at most
	// MaxBlurRadius. 0 is identity.
	BlurRadius float64

	// SharpenAmount is the unsharp-mask strength k. 0 is identity.
	SharpenAmount float64

	// PixelSize is the pixelation block size. 0 and 1 are identity. Sizes
	// at or above the larger buffer dimension average the whole buffer.
	PixelSize int

	// Monochrome converts to grayscale.
	Monochrome bool

	// AutoExposure shifts brightness so the median luminance becomes 128.
	// It runs after grayscale and before the manual brightness stage.
	AutoExposure bool
}

// DefaultParams returns parameters at which every stage is skipped.
func DefaultParams() Params {
	return Params{
		Contrast:   100,
		Saturation: 100,
		Gamma:      1,
	}
}

// IsIdentity reports whether every stage would be skipped.
func (p Params) IsIdentity() bool {
	return p.BlurRadius <= 0 &&
		p.SharpenAmount <= 0 &&
		p.PixelSize <= 1 &&
		!p.Monochrome &&
		!p.AutoExposure &&
		p.Brightness == 0 &&
		p.Contrast == 100 &&
		p.Saturation == 100 &&
		p.Gamma == 1
}

// Validate checks every parameter against its stage's domain.
// Negative blur radius, sharpen amount or pixel size are rejected here even
// though the individual filters treat them as identity.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"brightness", p.Brightness},
		{"saturation", p.Saturation},
		{"blur radius", p.BlurRadius},
		{"sharpen amount", p.SharpenAmount},
	} {
		if err := checkFinite(f.name, f.v); err != nil {
			return err
		}
	}

	if p.BlurRadius < 0 {
		return paramError("blur radius", p.BlurRadius, "must not be negative")
	}
	if err := checkBlurRadius(p.BlurRadius); err != nil {
		return err
	}
	if p.SharpenAmount < 0 {
		return paramError("sharpen amount", p.SharpenAmount, "must not be negative")
	}
	if p.PixelSize < 0 {
		return fmt.Errorf("%w: pixel size=%d: must not be negative", ErrInvalidParameter, p.PixelSize)
	}
	if _, err := ContrastFactor(p.Contrast); err != nil {
		return err
	}
	return checkGamma(p.Gamma)
}

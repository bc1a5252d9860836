package pixfilter

// neutralLuminance is the median luminance auto-exposure aims for, and the
// median assumed when none can be found.
const neutralLuminance = 128

// Histogram counts pixels per luminance bucket 0..255.
type Histogram [256]int

// LuminanceHistogram counts trunc(0.299R + 0.587G + 0.114B) over every
// pixel of b. Alpha is ignored.
func LuminanceHistogram(b *Buffer) (Histogram, error) {
	var h Histogram
	if err := b.Validate(); err != nil {
		return h, err
	}
	for i := 0; i < len(b.pix); i += 4 {
		h[luma(b.pix[i], b.pix[i+1], b.pix[i+2])]++
	}
	return h, nil
}

// Total returns the number of counted pixels.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Median returns the smallest bucket whose cumulative count reaches half the
// total, rounded down. The target is raised to one pixel so a 1-pixel
// histogram yields that pixel's bucket rather than bucket 0, which a plain
// floor(total/2) target of zero would select. ok is false for an empty
// histogram.
func (h *Histogram) Median() (bucket int, ok bool) {
	target := max(h.Total()/2, 1)
	sum := 0
	for i, c := range h {
		sum += c
		if sum >= target {
			return i, true
		}
	}
	return neutralLuminance, false
}

// ExposureCorrection returns the brightness percentage that moves the
// median luminance of b to 128: ((128 − median)/255)·100.
func ExposureCorrection(b *Buffer) (float64, error) {
	h, err := LuminanceHistogram(b)
	if err != nil {
		return 0, err
	}
	m, ok := h.Median()
	if !ok {
		m = neutralLuminance
	}
	return float64(neutralLuminance-m) / 255 * 100, nil
}

// AutoExposure brightens or darkens b so its median luminance lands at 128.
// The result is identical to Brightness(b, ExposureCorrection(b)).
func AutoExposure(b *Buffer) (*Buffer, error) {
	v, err := ExposureCorrection(b)
	if err != nil {
		return nil, err
	}
	Logger().Debug("pixfilter: auto exposure", "brightness", v)
	return Brightness(b, v)
}

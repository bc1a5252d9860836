package pixfilter

// Sharpen applies a 3×3 unsharp-mask kernel to R, G and B:
//
//	 0  -k   0
//	-k  1+4k -k
//	 0  -k   0
//
// Only interior pixels (1 ≤ x ≤ w-2, 1 ≤ y ≤ h-2) are convolved. Border
// pixels and every alpha value are copied from src. Results are clamped
// and truncated. amount <= 0 returns src.
func Sharpen(src *Buffer, amount float64) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if err := checkFinite("sharpen amount", amount); err != nil {
		return nil, err
	}
	if amount <= 0 {
		return src, nil
	}

	dst := src.Clone()
	if src.width < 3 || src.height < 3 {
		return dst, nil
	}

	forRows(src, func(y0, y1 int) {
		sharpenRows(src.pix, dst.pix, src.width, max(y0, 1), min(y1, src.height-1), amount)
	})
	return dst, nil
}

// sharpenRows convolves interior rows [y0, y1) of src into dst.
//
// The kernel is evaluated as c + k·(4c − n − s − w − e). The bracket is an
// exact integer, so flat regions reproduce their input exactly.
func sharpenRows(src, dst []uint8, width, y0, y1 int, k float64) {
	stride := width * 4
	for y := y0; y < y1; y++ {
		row := y * stride
		for x := 1; x < width-1; x++ {
			i := row + x*4
			for c := range 3 {
				center := int(src[i+c])
				lap := 4*center -
					int(src[i+c-stride]) - int(src[i+c+stride]) -
					int(src[i+c-4]) - int(src[i+c+4])
				dst[i+c] = clampTrunc(float64(center) + k*float64(lap))
			}
		}
	}
}

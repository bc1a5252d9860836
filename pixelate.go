package pixfilter

// Pixelate replaces each size×size block with the rounded mean of its
// pixels, per channel including alpha. Blocks on the right and bottom edges
// may be smaller when the dimensions are not multiples of size; they average
// only their in-bounds pixels. size <= 1 returns src; a size at or above the
// larger dimension makes the whole buffer one block.
func Pixelate(src *Buffer, size int) (*Buffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if size <= 1 {
		return src, nil
	}

	size = min(size, max(src.width, src.height))

	dst := newBuffer(src.width, src.height)
	blockRows := (src.height + size - 1) / size

	// Bands are whole block rows so no block straddles two bands.
	minBlockRows := max(1, 16/size)
	forBands(src, blockRows, minBlockRows, func(b0, b1 int) {
		for by := b0; by < b1; by++ {
			y0 := by * size
			y1 := min(y0+size, src.height)
			for x0 := 0; x0 < src.width; x0 += size {
				x1 := min(x0+size, src.width)
				averageBlock(src, dst, x0, y0, x1, y1)
			}
		}
	})
	return dst, nil
}

// averageBlock writes the rounded mean of src over [x0,x1)×[y0,y1) to every
// pixel of the same block in dst.
func averageBlock(src, dst *Buffer, x0, y0, x1, y1 int) {
	stride := src.width * 4
	var sum [4]int
	for y := y0; y < y1; y++ {
		row := src.pix[y*stride+x0*4 : y*stride+x1*4]
		for i := 0; i < len(row); i += 4 {
			sum[0] += int(row[i+0])
			sum[1] += int(row[i+1])
			sum[2] += int(row[i+2])
			sum[3] += int(row[i+3])
		}
	}

	n := (x1 - x0) * (y1 - y0)
	var avg [4]uint8
	for c := range avg {
		avg[c] = uint8((sum[c] + n/2) / n)
	}

	for y := y0; y < y1; y++ {
		row := dst.pix[y*stride+x0*4 : y*stride+x1*4]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], avg[:])
		}
	}
}

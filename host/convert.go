package host

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixfilter"
)

// FromImage converts any image to a non-premultiplied RGBA8 buffer.
// The result never shares memory with img.
func FromImage(img image.Image) (*pixfilter.Buffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("host: convert %dx%d image: %w", width, height, pixfilter.ErrInvalidDimensions)
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		pix := make([]uint8, width*height*4)
		for y := range height {
			srcStart := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(pix[y*width*4:], nrgba.Pix[srcStart:srcStart+width*4])
		}
		return pixfilter.WrapBuffer(width, height, pix)
	}

	// Everything else, premultiplied RGBA included, goes through draw,
	// which converts to the destination's color model.
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return pixfilter.WrapBuffer(width, height, dst.Pix)
}

// ToImage copies buf into a new *image.NRGBA anchored at the origin.
func ToImage(buf *pixfilter.Buffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, buf.Width(), buf.Height()))
	copy(img.Pix, buf.Pix())
	return img
}

// Scale resizes buf to width×height with Catmull-Rom resampling. It is
// meant for previews and thumbnails before filtering.
func Scale(buf *pixfilter.Buffer, width, height int) (*pixfilter.Buffer, error) {
	if err := buf.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("host: scale to %dx%d: %w", width, height, pixfilter.ErrInvalidDimensions)
	}
	if width == buf.Width() && height == buf.Height() {
		return buf.Clone(), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), ToImage(buf), image.Rect(0, 0, buf.Width(), buf.Height()), draw.Src, nil)
	return pixfilter.WrapBuffer(width, height, dst.Pix)
}

// Fit returns the largest size with buf's aspect ratio that fits in
// maxW×maxH, never upscaling.
func Fit(buf *pixfilter.Buffer, maxW, maxH int) (width, height int) {
	width, height = buf.Width(), buf.Height()
	if maxW <= 0 || maxH <= 0 || (width <= maxW && height <= maxH) {
		return width, height
	}
	if width*maxH > height*maxW {
		return maxW, max(1, height*maxW/width)
	}
	return max(1, width*maxH/height), maxH
}

package host

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Decoders registered with image.Decode.
	_ "golang.org/x/image/webp"

	"github.com/gogpu/pixfilter"
)

// JPEG quality bounds. Quality below 10 produces unusable output.
const (
	MinQuality     = 10
	MaxQuality     = 100
	DefaultQuality = 92
)

// ClampQuality limits a JPEG quality to [MinQuality, MaxQuality].
func ClampQuality(q int) int {
	return min(max(q, MinQuality), MaxQuality)
}

// Decode decodes an image in any supported format and returns it with the
// format name reported by image.Decode.
func Decode(r io.Reader) (*pixfilter.Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("host: decode: %w", err)
	}
	buf, err := FromImage(img)
	if err != nil {
		return nil, "", err
	}
	pixfilter.Logger().Debug("host: decoded image", "format", format,
		"width", buf.Width(), "height", buf.Height())
	return buf, format, nil
}

// DecodeBytes decodes an in-memory image.
func DecodeBytes(data []byte) (*pixfilter.Buffer, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Encode writes buf to w in format f. quality applies to JPEG only and is
// clamped with [ClampQuality].
func Encode(w io.Writer, buf *pixfilter.Buffer, f Format, quality int) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if !f.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, f)
	}

	img := ToImage(buf)
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: ClampQuality(quality)})
	case FormatGIF:
		err = gif.Encode(w, img, &gif.Options{NumColors: 256})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	if err != nil {
		return fmt.Errorf("host: encode %s: %w", f, err)
	}
	return nil
}

// EncodeBytes encodes buf to a byte slice.
func EncodeBytes(buf *pixfilter.Buffer, f Format, quality int) ([]byte, error) {
	var b bytes.Buffer
	if err := Encode(&b, buf, f, quality); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// DataURL encodes buf and returns it as a base64 data URL, e.g.
// "data:image/png;base64,iVBOR...".
func DataURL(buf *pixfilter.Buffer, f Format, quality int) (string, error) {
	data, err := EncodeBytes(buf, f, quality)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len("data:;base64,") + len(f.MIMEType()) + base64.StdEncoding.EncodedLen(len(data)))
	sb.WriteString("data:")
	sb.WriteString(f.MIMEType())
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(data))
	return sb.String(), nil
}

// Load reads and decodes an image file.
func Load(path string) (*pixfilter.Buffer, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("host: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Save encodes buf into a file, choosing the format from the extension.
func Save(path string, buf *pixfilter.Buffer, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return SaveAs(path, buf, format, quality)
}

// SaveAs encodes buf into a file in an explicit format.
func SaveAs(path string, buf *pixfilter.Buffer, f Format, quality int) error {
	if !f.CanEncode() {
		return fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, f)
	}

	file, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("host: create file: %w", err)
	}

	if err := Encode(file, buf, f, quality); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}

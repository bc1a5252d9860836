package host

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Errors.
var (
	// ErrUnsupportedFormat is returned for unknown formats and for formats
	// that can be decoded but not encoded.
	ErrUnsupportedFormat = errors.New("host: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("host: empty data")
)

// Format identifies an encoded image format.
type Format uint8

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = iota

	// FormatJPEG is lossy JPEG. Alpha is dropped.
	FormatJPEG

	// FormatWebP is WebP. Decode only.
	FormatWebP

	// FormatGIF is GIF with a 256-color palette.
	FormatGIF

	// FormatBMP is uncompressed BMP.
	FormatBMP

	// FormatTIFF is Deflate-compressed TIFF.
	FormatTIFF
)

var formatInfo = [...]struct {
	name   string
	mime   string
	ext    string
	encode bool
}{
	FormatPNG:  {"png", "image/png", ".png", true},
	FormatJPEG: {"jpeg", "image/jpeg", ".jpg", true},
	FormatWebP: {"webp", "image/webp", ".webp", false},
	FormatGIF:  {"gif", "image/gif", ".gif", true},
	FormatBMP:  {"bmp", "image/bmp", ".bmp", true},
	FormatTIFF: {"tiff", "image/tiff", ".tiff", true},
}

func (f Format) valid() bool {
	return int(f) < len(formatInfo)
}

// String returns the format name as reported by image.Decode.
func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", f)
	}
	return formatInfo[f].name
}

// MIMEType returns the media type, e.g. "image/png".
func (f Format) MIMEType() string {
	if !f.valid() {
		return "application/octet-stream"
	}
	return formatInfo[f].mime
}

// Extension returns the preferred file extension including the dot.
func (f Format) Extension() string {
	if !f.valid() {
		return ""
	}
	return formatInfo[f].ext
}

// CanEncode reports whether [Encode] supports the format.
func (f Format) CanEncode() bool {
	return f.valid() && formatInfo[f].encode
}

// ParseFormat parses a format name, file extension or MIME type.
// Matching is case-insensitive; "jpg", ".jpg", "jpeg" and "image/jpeg" all
// select FormatJPEG.
func ParseFormat(s string) (Format, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.TrimPrefix(key, "image/")
	key = strings.TrimPrefix(key, ".")

	switch key {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	case "gif":
		return FormatGIF, nil
	case "bmp", "x-ms-bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath selects a format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: no extension in %q", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

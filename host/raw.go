package host

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/gogpu/pixfilter"
)

// Raw dumps are headerless: width*height*4 bytes of RGBA8, row-major. The
// caller carries the dimensions.

// ReadRaw reads a width×height raw RGBA8 dump.
func ReadRaw(r io.Reader, width, height int) (*pixfilter.Buffer, error) {
	buf, err := pixfilter.NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r, buf.Pix()); err != nil {
		return nil, fmt.Errorf("host: read raw %dx%d: %w", width, height, err)
	}
	return buf, nil
}

// WriteRaw writes buf's pixels as a raw RGBA8 dump.
func WriteRaw(w io.Writer, buf *pixfilter.Buffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if _, err := w.Write(buf.Pix()); err != nil {
		return fmt.Errorf("host: write raw: %w", err)
	}
	return nil
}

// ReadRawZstd reads a raw dump wrapped in a zstd frame.
func ReadRawZstd(r io.Reader, width, height int) (*pixfilter.Buffer, error) {
	dec, err := zstd.NewReader(r,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		return nil, fmt.Errorf("host: zstd decode: %w", err)
	}
	defer dec.Close()

	return ReadRaw(dec, width, height)
}

// WriteRawZstd writes a raw dump wrapped in a zstd frame.
func WriteRawZstd(w io.Writer, buf *pixfilter.Buffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}

	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return fmt.Errorf("host: zstd encode: %w", err)
	}
	if _, err := enc.Write(buf.Pix()); err != nil {
		_ = enc.Close()
		return fmt.Errorf("host: zstd encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("host: zstd encode: %w", err)
	}
	return nil
}

// errSizeSyntax reports a dimension string that is not of the form WxH.
var errSizeSyntax = errors.New("want WxH")

// ParseSize parses a "WxH" dimension string such as "640x480". The whole
// string must match.
func ParseSize(s string) (width, height int, err error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("host: parse size %q: %w", s, errSizeSyntax)
	}
	if width, err = strconv.Atoi(ws); err != nil {
		return 0, 0, fmt.Errorf("host: parse size %q: %w", s, err)
	}
	if height, err = strconv.Atoi(hs); err != nil {
		return 0, 0, fmt.Errorf("host: parse size %q: %w", s, err)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("host: parse size %q: %w", s, pixfilter.ErrInvalidDimensions)
	}
	return width, height, nil
}

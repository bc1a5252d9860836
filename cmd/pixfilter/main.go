// Command pixfilter applies the pixfilter pipeline to an image file.
//
// Usage:
//
//	pixfilter -in photo.jpg -out edited.png -brightness 10 -contrast 120 -blur 1.5
//	pixfilter -in frame.rgba.zst -raw 640x480 -out frame.png -auto -mono
//
// Raw input (-raw WxH) is headerless RGBA8, zstd-compressed when the file
// name ends in .zst. Raw output is written the same way when -out ends in
// .rgba or .rgba.zst.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixfilter"
	"github.com/gogpu/pixfilter/host"
)

// options holds the parsed command line.
type options struct {
	params  pixfilter.Params
	in      string
	out     string
	format  string
	quality int
	raw     string
	workers int
	verbose bool
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("pixfilter: %v", err)
	}

	if err := run(opts, os.Stdout); err != nil {
		log.Fatalf("pixfilter: %v", err)
	}
}

func parseFlags(args []string, errOut io.Writer) (*options, error) {
	opts := &options{params: pixfilter.DefaultParams()}
	p := &opts.params

	fs := flag.NewFlagSet("pixfilter", flag.ContinueOnError)
	fs.SetOutput(errOut)

	fs.Float64Var(&p.Brightness, "brightness", p.Brightness, "brightness shift in percent of full scale")
	fs.Float64Var(&p.Contrast, "contrast", p.Contrast, "contrast in percent (0 = gray, 100 = unchanged, max 201.5)")
	fs.Float64Var(&p.Saturation, "saturation", p.Saturation, "saturation in percent (0 = gray, 100 = unchanged)")
	fs.Float64Var(&p.Gamma, "gamma", p.Gamma, "gamma exponent (> 0, 1 = unchanged)")
	fs.Float64Var(&p.BlurRadius, "blur", p.BlurRadius, "Gaussian blur radius in pixels")
	fs.Float64Var(&p.SharpenAmount, "sharpen", p.SharpenAmount, "sharpen strength")
	fs.IntVar(&p.PixelSize, "pixelate", p.PixelSize, "pixelation block size")
	fs.BoolVar(&p.Monochrome, "mono", p.Monochrome, "convert to grayscale")
	fs.BoolVar(&p.AutoExposure, "auto", p.AutoExposure, "auto exposure from the luminance median")

	fs.StringVar(&opts.in, "in", "", "input file (required)")
	fs.StringVar(&opts.out, "out", "out.png", "output file")
	fs.StringVar(&opts.format, "format", "", "output format (default: from -out extension)")
	fs.IntVar(&opts.quality, "quality", host.DefaultQuality, "JPEG quality (10-100)")
	fs.StringVar(&opts.raw, "raw", "", "treat input as raw RGBA8 of size WxH")
	fs.IntVar(&opts.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS, 1 = sequential)")
	fs.BoolVar(&opts.verbose, "v", false, "log pipeline stages")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.in == "" {
		fs.Usage()
		return nil, errors.New("missing -in")
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func run(opts *options, out io.Writer) error {
	if opts.verbose {
		pixfilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
		defer pixfilter.SetLogger(nil)
	}
	pixfilter.SetWorkers(opts.workers)

	pl, err := pixfilter.NewPipeline(opts.params)
	if err != nil {
		return err
	}

	src, format, err := load(opts)
	if err != nil {
		return err
	}

	start := time.Now()
	dst, err := pl.Apply(src)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := save(opts, dst); err != nil {
		return err
	}

	printSummary(out, opts, format, dst, pl, elapsed)
	return nil
}

func load(opts *options) (*pixfilter.Buffer, string, error) {
	if opts.raw == "" {
		return host.Load(opts.in)
	}

	w, h, err := host.ParseSize(opts.raw)
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(filepath.Clean(opts.in))
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	if strings.HasSuffix(opts.in, ".zst") {
		buf, err := host.ReadRawZstd(f, w, h)
		return buf, "raw+zstd", err
	}
	buf, err := host.ReadRaw(f, w, h)
	return buf, "raw", err
}

func save(opts *options, buf *pixfilter.Buffer) error {
	switch {
	case strings.HasSuffix(opts.out, ".rgba.zst"), strings.HasSuffix(opts.out, ".rgba"):
		return saveRaw(opts.out, buf)
	case opts.format != "":
		f, err := host.ParseFormat(opts.format)
		if err != nil {
			return err
		}
		return host.SaveAs(opts.out, buf, f, opts.quality)
	default:
		return host.Save(opts.out, buf, opts.quality)
	}
}

func saveRaw(path string, buf *pixfilter.Buffer) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	write := host.WriteRaw
	if strings.HasSuffix(path, ".zst") {
		write = host.WriteRawZstd
	}
	if err := write(f, buf); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printSummary(w io.Writer, opts *options, format string, buf *pixfilter.Buffer,
	pl *pixfilter.Pipeline, elapsed time.Duration) {
	p := message.NewPrinter(language.English)

	p.Fprintf(w, "%s (%s, %d×%d, %d pixels)\n", opts.in, format, buf.Width(), buf.Height(), buf.Len())
	if pl.IsEmpty() {
		p.Fprintf(w, "  no filters applied\n")
	}
	for _, s := range pl.Stages() {
		switch s.Type {
		case pixfilter.StageGrayscale, pixfilter.StageAutoExposure:
			p.Fprintf(w, "  %s\n", s.Type)
		default:
			p.Fprintf(w, "  %-13s %.2f\n", s.Type, s.Value)
		}
	}
	p.Fprintf(w, "wrote %s in %v with %d workers\n", opts.out, elapsed.Round(time.Microsecond), pixfilter.Workers())
}

package qrcode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"

	"github.com/jonathan/resume-generator/internal/fileutil"
)

// Level is the error-correction level of the symbol
type Level int

const (
	// LevelL recovers about 7% of the symbol
	LevelL Level = iota
	// LevelM recovers about 15%
	LevelM
	// LevelQ recovers about 25%
	LevelQ
	// LevelH recovers about 30%
	LevelH
)

const (
	// DefaultBoxSize is the edge length of one module in pixels
	DefaultBoxSize = 10
	// DefaultBorder is the quiet zone width in modules
	DefaultBorder = 1
)

// String returns the single-letter name of the level
func (l Level) String() string {
	switch l {
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "L"
	}
}

// ParseLevel parses "L", "M", "Q" or "H" (case-insensitive)
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	default:
		return LevelL, fmt.Errorf("unknown error correction level %q", s)
	}
}

func (l Level) recovery() goqrcode.RecoveryLevel {
	switch l {
	case LevelM:
		return goqrcode.Medium
	case LevelQ:
		return goqrcode.High
	case LevelH:
		return goqrcode.Highest
	default:
		return goqrcode.Low
	}
}

// Options controls how the symbol is drawn. The symbol version always
// grows to fit the content.
type Options struct {
	Level      Level
	BoxSize    int
	Border     int
	Foreground color.Color
	Background color.Color
}

// DefaultOptions returns level L, 10px modules, a one-module border,
// black on white.
func DefaultOptions() Options {
	return Options{
		Level:      LevelL,
		BoxSize:    DefaultBoxSize,
		Border:     DefaultBorder,
		Foreground: color.Black,
		Background: color.White,
	}
}

// Generator writes QR code images
type Generator struct {
	opts Options
}

// NewGenerator creates a Generator. Non-positive box sizes and nil colours
// fall back to the defaults; a negative border is treated as zero.
func NewGenerator(opts Options) *Generator {
	defaults := DefaultOptions()
	if opts.BoxSize <= 0 {
		opts.BoxSize = defaults.BoxSize
	}
	if opts.Border < 0 {
		opts.Border = 0
	}
	if opts.Foreground == nil {
		opts.Foreground = defaults.Foreground
	}
	if opts.Background == nil {
		opts.Background = defaults.Background
	}
	return &Generator{opts: opts}
}

// Options returns the effective options
func (g *Generator) Options() Options {
	return g.opts
}

// Image encodes content and returns the rendered symbol
func (g *Generator) Image(content string) (*image.Paletted, error) {
	if content == "" {
		return nil, &EncodeError{Message: "content is empty"}
	}

	q, err := goqrcode.New(content, g.opts.Level.recovery())
	if err != nil {
		return nil, &EncodeError{
			Message: fmt.Sprintf("failed to encode %q", content),
			Cause:   err,
		}
	}
	q.DisableBorder = true
	bitmap := q.Bitmap()

	// Palette index 0 is the background.
	palette := color.Palette{g.opts.Background, g.opts.Foreground}
	modules := len(bitmap) + 2*g.opts.Border

	src := image.NewPaletted(image.Rect(0, 0, modules, modules), palette)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				src.SetColorIndex(x+g.opts.Border, y+g.opts.Border, 1)
			}
		}
	}

	size := modules * g.opts.BoxSize
	dst := image.NewPaletted(image.Rect(0, 0, size, size), palette)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	return dst, nil
}

// Encode returns the symbol for content as PNG bytes
func (g *Generator) Encode(content string) ([]byte, error) {
	img, err := g.Image(content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, &EncodeError{
			Message: "failed to encode PNG",
			Cause:   err,
		}
	}

	return buf.Bytes(), nil
}

// Generate writes the symbol for url to path as a PNG, replacing any
// existing file.
func (g *Generator) Generate(url, path string) error {
	data, err := g.Encode(url)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(path, data, 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}

	return nil
}

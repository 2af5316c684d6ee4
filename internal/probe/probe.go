package probe

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Registered decoders. Only their header parsers are used.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PixelsPerUnit is the map scale the catalog's consumer assumes for
// symbol artwork.
const PixelsPerUnit = 40

// ErrUnknownFormat is returned when no registered decoder recognizes the
// file header.
var ErrUnknownFormat = errors.New("unrecognized image format")

// Size is an image's pixel extent and detected format name.
type Size struct {
	Width  int
	Height int
	Format string
}

// Units returns the extent in map units.
func (s Size) Units() (w, h float64) {
	return float64(s.Width) / PixelsPerUnit, float64(s.Height) / PixelsPerUnit
}

// Dimensions opens path and reads its header.
func Dimensions(path string) (Size, error) {
	f, err := os.Open(path)
	if err != nil {
		return Size{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	size, err := Decode(f)
	if err != nil {
		return Size{}, fmt.Errorf("probe %s: %w", path, err)
	}
	return size, nil
}

// Decode reads an image header from r.
func Decode(r io.Reader) (Size, error) {
	cfg, format, err := image.DecodeConfig(r)
	if errors.Is(err, image.ErrFormat) {
		return Size{}, ErrUnknownFormat
	}
	if err != nil {
		return Size{}, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Size{}, fmt.Errorf("%s header reports %dx%d", format, cfg.Width, cfg.Height)
	}
	return Size{Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

var formats = []string{"bmp", "gif", "jpeg", "png", "tiff", "webp"}

// Formats lists the registered decoder names, sorted.
func Formats() []string {
	return append([]string(nil), formats...)
}

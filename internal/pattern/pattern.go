// Package pattern decodes on-disk Life patterns into live-cell coordinates.
//
// Two formats are understood, selected by file suffix: a coordinate list
// (".txt", one "a b" pair per line) and a subset of run-length encoding
// (".rle"). Coordinate lists read "a b" as (x=a, y=b) unless Options.Order
// is OrderYX, which reproduces the row-first files of older builds.
package pattern

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lifegrid/internal/core"
)

// ErrSourceUnreadable reports a pattern source that could not be read.
var ErrSourceUnreadable = errors.New("pattern source unreadable")

// Format identifies a pattern encoding.
type Format int

const (
	FormatUnknown Format = iota
	FormatCoordinates
	FormatRLE
)

func (f Format) String() string {
	switch f {
	case FormatCoordinates:
		return "coordinates"
	case FormatRLE:
		return "rle"
	default:
		return "unknown"
	}
}

// AxisOrder selects how a coordinate-list pair maps onto grid axes.
type AxisOrder int

const (
	// OrderXY reads "a b" as x=a, y=b.
	OrderXY AxisOrder = iota
	// OrderYX reads "a b" as y=a, x=b.
	OrderYX
)

func (o AxisOrder) String() string {
	if o == OrderYX {
		return "yx"
	}
	return "xy"
}

// ParseAxisOrder accepts "xy" or "yx".
func ParseAxisOrder(s string) (AxisOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "xy":
		return OrderXY, nil
	case "yx":
		return OrderYX, nil
	}
	return OrderXY, fmt.Errorf("unknown axis order %q", s)
}

// Options tune decoding.
type Options struct {
	// Order applies to coordinate lists only.
	Order AxisOrder
	// Offset is where an RLE pattern's top-left corner lands in grid space.
	Offset core.Point
}

// DefaultOptions returns x-then-y coordinates and an RLE offset of (50, 50).
func DefaultOptions() Options {
	return Options{Order: OrderXY, Offset: core.Point{X: 50, Y: 50}}
}

// Pattern is a sparse set of live cells in grid space. Cells may repeat.
type Pattern struct {
	Format Format
	Cells  []core.Point
}

// Len returns the number of decoded cells.
func (p Pattern) Len() int { return len(p.Cells) }

// Decoder parses a pattern body.
type Decoder func(r io.Reader, opts Options) ([]core.Point, error)

type registration struct {
	suffix  string
	decoder Decoder
}

var formats = map[Format]registration{}

// Register adds a decoder for files ending in suffix.
func Register(f Format, suffix string, d Decoder) {
	if f == FormatUnknown || suffix == "" || d == nil {
		return
	}
	formats[f] = registration{suffix: strings.ToLower(suffix), decoder: d}
}

// FormatFor infers the format from a file name.
func FormatFor(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))
	for f, reg := range formats {
		if reg.suffix == ext {
			return f
		}
	}
	return FormatUnknown
}

// Decode parses r as the given format. An unknown format yields an empty pattern.
func Decode(r io.Reader, f Format, opts Options) (Pattern, error) {
	reg, ok := formats[f]
	if !ok {
		return Pattern{Format: FormatUnknown}, nil
	}
	cells, err := reg.decoder(r, opts)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	return Pattern{Format: f, Cells: cells}, nil
}

// Load reads the pattern stored at path. An empty path or an unrecognised
// suffix yields an empty pattern without touching the filesystem; a file that
// cannot be opened or read returns an error wrapping ErrSourceUnreadable.
func Load(path string, opts Options) (Pattern, error) {
	if path == "" {
		return Pattern{}, nil
	}
	f := FormatFor(path)
	if f == FormatUnknown {
		return Pattern{Format: FormatUnknown}, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer file.Close()

	p, err := Decode(file, f, opts)
	if err != nil {
		return Pattern{}, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}

package pattern

import (
	"errors"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"lifegrid/internal/core"
)

func decodeString(t *testing.T, body string, f Format, opts Options) []core.Point {
	t.Helper()
	p, err := Decode(strings.NewReader(body), f, opts)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if p.Format != f {
		t.Fatalf("format = %v, want %v", p.Format, f)
	}
	return p.Cells
}

func TestCoordinatesSkipCommentsBlanksAndMalformedLines(t *testing.T) {
	got := decodeString(t, "# comment\n\n3 4\n5 x\n", FormatCoordinates, DefaultOptions())
	want := []core.Point{{X: 3, Y: 4}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCoordinatesRequireExactlyTwoIntegers(t *testing.T) {
	got := decodeString(t, "1 2 3\n7\n  8\t9  \n-1 4\n", FormatCoordinates, DefaultOptions())
	want := []core.Point{{X: 8, Y: 9}, {X: -1, Y: 4}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCoordinateAxisOrderRoundTrip(t *testing.T) {
	cells := []core.Point{{X: 3, Y: 4}, {X: 10, Y: 0}, {X: 0, Y: 17}}

	for _, order := range []AxisOrder{OrderXY, OrderYX} {
		var b strings.Builder
		for _, c := range cells {
			a, bb := c.X, c.Y
			if order == OrderYX {
				a, bb = c.Y, c.X
			}
			b.WriteString(strconv.Itoa(a) + " " + strconv.Itoa(bb))
			b.WriteByte('\n')
		}
		opts := DefaultOptions()
		opts.Order = order
		got := decodeString(t, b.String(), FormatCoordinates, opts)
		if !slices.Equal(got, cells) {
			t.Fatalf("order %v: got %v, want %v", order, got, cells)
		}
	}

	yx := DefaultOptions()
	yx.Order = OrderYX
	if got := decodeString(t, "3 4\n", FormatCoordinates, yx); got[0] != (core.Point{X: 4, Y: 3}) {
		t.Fatalf("yx order should swap, got %v", got)
	}
}

func TestRLERowsAndRuns(t *testing.T) {
	opts := DefaultOptions()
	opts.Offset = core.Point{}
	got := decodeString(t, "2o$2b2o$2o!", FormatRLE, opts)
	want := []core.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 2, Y: 1}, {X: 3, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2},
	}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRLEMultiDigitRunsAndOffset(t *testing.T) {
	opts := DefaultOptions()
	opts.Offset = core.Point{X: 5, Y: 7}
	got := decodeString(t, "12bo$o", FormatRLE, opts)
	want := []core.Point{{X: 17, Y: 7}, {X: 5, Y: 8}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRLERowBreakIgnoresCount(t *testing.T) {
	opts := DefaultOptions()
	opts.Offset = core.Point{}
	got := decodeString(t, "o2$o3$3bo", FormatRLE, opts)
	want := []core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 3, Y: 2}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestRLEPendingCountDoesNotCrossLines(t *testing.T) {
	opts := DefaultOptions()
	opts.Offset = core.Point{}
	got := decodeString(t, "o3\nbo", FormatRLE, opts)
	want := []core.Point{{X: 0, Y: 0}, {X: 2, Y: 0}}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLoadInfersFormatFromSuffix(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "glider.rle"), DefaultOptions())
	if err != nil {
		t.Fatalf("Load rle: %v", err)
	}
	want := []core.Point{{X: 51, Y: 50}, {X: 52, Y: 51}, {X: 50, Y: 52}, {X: 51, Y: 52}, {X: 52, Y: 52}}
	if p.Format != FormatRLE || !slices.Equal(p.Cells, want) {
		t.Fatalf("glider = %v %v, want rle %v", p.Format, p.Cells, want)
	}

	p, err = Load(filepath.Join("testdata", "block.txt"), DefaultOptions())
	if err != nil {
		t.Fatalf("Load txt: %v", err)
	}
	if p.Format != FormatCoordinates || p.Len() != 4 {
		t.Fatalf("block = %v with %d cells, want coordinates with 4", p.Format, p.Len())
	}
}

func TestLoadUnknownSuffixIsEmpty(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "glider.cells"), DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Format != FormatUnknown || p.Len() != 0 {
		t.Fatalf("expected empty unknown pattern, got %v", p)
	}
	if p, err := Load("", DefaultOptions()); err != nil || p.Len() != 0 {
		t.Fatalf("empty path should give empty pattern, got %v, %v", p, err)
	}
}

func TestLoadMissingFileIsUnreadable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.rle"), DefaultOptions())
	if !errors.Is(err, ErrSourceUnreadable) {
		t.Fatalf("err = %v, want ErrSourceUnreadable", err)
	}
}

func TestFormatForIsCaseInsensitive(t *testing.T) {
	if FormatFor("GLIDER.RLE") != FormatRLE || FormatFor("cells.TXT") != FormatCoordinates {
		t.Fatal("suffix matching should ignore case")
	}
	if FormatFor("noext") != FormatUnknown {
		t.Fatal("missing suffix should be unknown")
	}
}

func TestParseAxisOrder(t *testing.T) {
	if o, err := ParseAxisOrder("YX"); err != nil || o != OrderYX {
		t.Fatalf("ParseAxisOrder(YX) = %v, %v", o, err)
	}
	if _, err := ParseAxisOrder("zz"); err == nil {
		t.Fatal("expected error for unknown order")
	}
}

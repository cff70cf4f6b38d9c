package app

import (
	"flag"
	"testing"

	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
)

func TestCellAtFloorsNegativePixels(t *testing.T) {
	cases := []struct {
		px, py, scale int
		x, y          int
	}{
		{0, 0, 4, 0, 0},
		{3, 7, 4, 0, 1},
		{-1, -4, 4, -1, -1},
		{-5, 8, 4, -2, 2},
		{9, 9, 0, 9, 9},
	}
	for _, c := range cases {
		x, y := CellAt(c.px, c.py, c.scale)
		if x != c.x || y != c.y {
			t.Errorf("CellAt(%d,%d,%d) = (%d,%d), want (%d,%d)", c.px, c.py, c.scale, x, y, c.x, c.y)
		}
	}
}

func TestConfigBindAndConvert(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-width", "64", "-mode", "delta", "-order", "yx", "-fuzz", "0.1", "-offset-x", "0", "-tps", "12"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wc, err := cfg.WorldConfig()
	if err != nil {
		t.Fatalf("WorldConfig: %v", err)
	}
	if wc.Width != 64 || wc.Height != 180 || wc.Mode != life.DeltaRedraw || wc.Load.Order != pattern.OrderYX {
		t.Fatalf("unexpected world config %+v", wc)
	}
	if wc.FuzzProbability != 0.1 || wc.Load.Offset.X != 0 || wc.Load.Offset.Y != 50 || cfg.TPS != 12 {
		t.Fatalf("unexpected world config %+v (tps %d)", wc, cfg.TPS)
	}

	cfg.Mode = "sideways"
	if _, err := cfg.WorldConfig(); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

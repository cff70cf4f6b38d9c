package core

import (
	"errors"
	"testing"
	"time"
)

func TestGridWrapIsNonNegative(t *testing.T) {
	g := NewGrid(5, 3)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, -1, 4, 2},
		{5, 3, 0, 0},
		{-6, -4, 4, 2},
		{12, 7, 2, 1},
		{2, 1, 2, 1},
	}
	for _, c := range cases {
		x, y := g.Wrap(c.x, c.y)
		if x != c.wx || y != c.wy {
			t.Errorf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, x, y, c.wx, c.wy)
		}
	}
}

func TestGridAtIsStrict(t *testing.T) {
	g := NewGrid(4, 4)
	if err := g.Set(1, 2, true); err != nil {
		t.Fatalf("Set in range: %v", err)
	}
	alive, err := g.At(1, 2)
	if err != nil || !alive {
		t.Fatalf("At(1,2) = %v, %v; want true, nil", alive, err)
	}
	for _, p := range []Point{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if _, err := g.At(p.X, p.Y); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("At(%d,%d) err = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
		if err := g.Set(p.X, p.Y, true); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%d,%d) err = %v, want ErrOutOfBounds", p.X, p.Y, err)
		}
	}
	if got := g.Live(); got != 1 {
		t.Fatalf("expected 1 live cell, got %d", got)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Put(1, 1, true)
	c := g.Clone()
	g.Put(0, 0, true)
	if c.Alive(0, 0) {
		t.Fatal("mutating the source must not affect the clone")
	}
	if !c.Alive(1, 1) {
		t.Fatal("clone lost a live cell")
	}
	if g.Equal(c) {
		t.Fatal("grids should differ after mutation")
	}
	c.CopyFrom(g)
	if !g.Equal(c) {
		t.Fatal("CopyFrom should make grids equal")
	}
}

func TestViewReadsDeadOutsideGrid(t *testing.T) {
	g := NewGrid(2, 2)
	g.Put(1, 1, true)
	v := g.View()
	if !v.At(1, 1) || v.At(2, 2) || v.At(-1, 0) {
		t.Fatal("view should read in-range cells and report dead outside")
	}
	visited := 0
	v.Each(func(x, y int, alive bool) { visited++ })
	if visited != 4 {
		t.Fatalf("Each visited %d cells, want 4", visited)
	}
	var empty View
	if empty.Valid() || empty.Live() != 0 || empty.At(0, 0) {
		t.Fatal("zero view should be empty")
	}
}

func TestFixedStepHonoursRateAndPause(t *testing.T) {
	fs := NewFixedStep(5)
	t0 := time.Unix(100, 0)
	if !fs.Advance(t0) {
		t.Fatal("first tick should step immediately")
	}
	if fs.Advance(t0.Add(100 * time.Millisecond)) {
		t.Fatal("should not step before the interval elapses")
	}
	if !fs.Advance(t0.Add(200 * time.Millisecond)) {
		t.Fatal("should step once the interval elapses")
	}

	fs.SetPaused(true)
	if fs.Advance(t0.Add(2 * time.Second)) {
		t.Fatal("paused clock must not step")
	}
	if paused := fs.TogglePause(); paused {
		t.Fatal("toggle should resume")
	}
	if fs.Advance(t0.Add(2*time.Second + 100*time.Millisecond)) {
		t.Fatal("time spent paused must not accumulate")
	}
	if !fs.Advance(t0.Add(2*time.Second + 200*time.Millisecond)) {
		t.Fatal("should step after a full interval following resume")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 32; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

// Package life implements Conway's Game of Life on a toroidal grid.
//
// A World owns the current generation and, in DeltaRedraw mode, a copy of
// the generation before the last step. It is not safe for concurrent use:
// one update loop calls Step and SetCell serially.
package life

import (
	"errors"
	"fmt"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/pattern"
)

// ErrInvalidProbability reports a fuzz probability outside [0, 1].
var ErrInvalidProbability = errors.New("fuzz probability must be within [0, 1]")

// Uniform is a source of uniformly distributed values in [0, 1).
type Uniform interface {
	Float64() float64
}

// StepStats summarises one transition.
type StepStats struct {
	Generation uint64
	Live       int
	Births     int
	Deaths     int
	Elapsed    time.Duration
}

// World stores the simulation state.
type World struct {
	cfg  Config
	seed pattern.Pattern

	cur  *core.Grid
	nxt  *core.Grid
	prev *core.Grid

	// edits records cells painted since the last step. carried holds the
	// edits made before the last step: Step folds them into prev, so the
	// prev/cur diff alone would miss them on the next delta redraw.
	edits   []core.Point
	carried []core.Point

	generation uint64
	last       StepStats
}

// New loads cfg.Pattern, places it on an empty grid and applies the
// configured fuzz. Unreadable sources, out-of-bounds pattern cells and
// invalid probabilities are reported as errors.
func New(cfg Config) (*World, error) {
	p, err := pattern.Load(cfg.Pattern, cfg.Load)
	if err != nil {
		return nil, err
	}
	return NewWithPattern(cfg, p)
}

// NewWithPattern is New with an already decoded pattern.
func NewWithPattern(cfg Config, p pattern.Pattern) (*World, error) {
	if !validProbability(cfg.FuzzProbability) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProbability, cfg.FuzzProbability)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	w := &World{
		cfg:  cfg,
		seed: p,
		cur:  core.NewGrid(cfg.Width, cfg.Height),
	}
	w.cfg.Width, w.cfg.Height = w.cur.W, w.cur.H
	w.nxt = core.NewGrid(w.cur.W, w.cur.H)
	if cfg.Mode == DeltaRedraw {
		w.prev = core.NewGrid(w.cur.W, w.cur.H)
	}
	if err := w.ApplyPattern(p); err != nil {
		return nil, fmt.Errorf("apply pattern %q: %w", cfg.Pattern, err)
	}
	if err := w.Fuzz(cfg.FuzzProbability, core.NewRNG(cfg.Seed)); err != nil {
		return nil, err
	}
	w.syncPrevious()
	w.last = StepStats{Live: w.cur.Live()}
	return w, nil
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config { return w.cfg }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return w.cur.Size() }

// Mode returns the render mode the world tracks changes for.
func (w *World) Mode() RenderMode { return w.cfg.Mode }

// Generation returns the number of steps taken since construction or Reset.
func (w *World) Generation() uint64 { return w.generation }

// LastStats returns the summary of the most recent step.
func (w *World) LastStats() StepStats { return w.last }

// Snapshot returns a read-only view of the current generation. The view is
// only meaningful until the next Step.
func (w *World) Snapshot() core.View { return w.cur.View() }

// Previous returns the generation before the last step. It is only
// available in DeltaRedraw mode.
func (w *World) Previous() (core.View, bool) {
	if w.prev == nil {
		return core.View{}, false
	}
	return w.prev.View(), true
}

// ApplyPattern marks every pattern cell live. If any cell lies outside the
// grid nothing is written and an error wrapping core.ErrOutOfBounds is
// returned.
func (w *World) ApplyPattern(p pattern.Pattern) error {
	for _, c := range p.Cells {
		if !w.cur.In(c.X, c.Y) {
			return fmt.Errorf("cell (%d,%d) outside %dx%d grid: %w", c.X, c.Y, w.cur.W, w.cur.H, core.ErrOutOfBounds)
		}
	}
	for _, c := range p.Cells {
		w.cur.Put(c.X, c.Y, true)
	}
	return nil
}

// Fuzz flips every cell independently with the given probability, drawing
// one value from rng per cell in row-major order.
func (w *World) Fuzz(probability float64, rng Uniform) error {
	if !validProbability(probability) {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, probability)
	}
	if probability == 0 {
		return nil
	}
	for y := 0; y < w.cur.H; y++ {
		for x := 0; x < w.cur.W; x++ {
			if rng.Float64() < probability {
				w.cur.Put(x, y, !w.cur.Alive(x, y))
			}
		}
	}
	return nil
}

// validProbability rejects NaN along with values outside [0, 1].
func validProbability(p float64) bool { return p >= 0 && p <= 1 }

// SetCell writes a single cell. Coordinates outside the grid are ignored and
// reported by a false return.
func (w *World) SetCell(x, y int, alive bool) bool {
	if !w.cur.In(x, y) {
		return false
	}
	if w.cur.Alive(x, y) == alive {
		return true
	}
	w.cur.Put(x, y, alive)
	if w.prev != nil {
		w.edits = append(w.edits, core.Point{X: x, Y: y})
	}
	return true
}

// Step advances the world by exactly one generation.
func (w *World) Step() StepStats {
	start := time.Now()
	if w.prev != nil {
		w.prev.CopyFrom(w.cur)
	}
	w.carried, w.edits = w.edits, w.carried[:0]

	s := advance(w.cur, w.nxt, w.cfg.Workers)
	w.cur, w.nxt = w.nxt, w.cur
	w.generation++

	w.last = StepStats{
		Generation: w.generation,
		Live:       s.live,
		Births:     s.births,
		Deaths:     s.deaths,
		Elapsed:    time.Since(start),
	}
	return w.last
}

// EachChange visits the cells a delta redraw must repaint: those that differ
// from the previous generation plus cells edited since the step before last.
// A cell may be visited more than once. In FullRedraw mode every cell is
// visited.
func (w *World) EachChange(fn func(x, y int, alive bool)) {
	if w.prev == nil {
		w.cur.View().Each(fn)
		return
	}
	for y := 0; y < w.cur.H; y++ {
		for x := 0; x < w.cur.W; x++ {
			alive := w.cur.Alive(x, y)
			if alive != w.prev.Alive(x, y) {
				fn(x, y, alive)
			}
		}
	}
	for _, p := range w.carried {
		fn(p.X, p.Y, w.cur.Alive(p.X, p.Y))
	}
	for _, p := range w.edits {
		fn(p.X, p.Y, w.cur.Alive(p.X, p.Y))
	}
}

// Reset restores the loaded pattern, re-applies fuzz with the given seed and
// zeroes the generation counter.
func (w *World) Reset(seed int64) {
	w.cur.Clear()
	for _, c := range w.seed.Cells {
		w.cur.Put(c.X, c.Y, true)
	}
	// The probability was validated at construction.
	_ = w.Fuzz(w.cfg.FuzzProbability, core.NewRNG(seed))
	w.cfg.Seed = seed
	w.generation = 0
	w.syncPrevious()
	w.last = StepStats{Live: w.cur.Live()}
}

func (w *World) syncPrevious() {
	w.edits = w.edits[:0]
	w.carried = w.carried[:0]
	if w.prev != nil {
		w.prev.CopyFrom(w.cur)
	}
}

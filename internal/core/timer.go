package core

import "time"

// DefaultTPS matches the generation rate of the classic desktop build.
const DefaultTPS = 5

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
// While paused no time accumulates, so resuming never triggers a burst of
// catch-up steps.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = DefaultTPS
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the time between ticks.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Paused reports whether ticking is suspended.
func (f *FixedStep) Paused() bool { return f.paused }

// SetPaused suspends or resumes ticking.
func (f *FixedStep) SetPaused(paused bool) { f.paused = paused }

// TogglePause flips the pause flag and returns the new value.
func (f *FixedStep) TogglePause() bool {
	f.paused = !f.paused
	return f.paused
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Advance(f.now())
}

// Advance is ShouldStep with an explicit clock reading.
func (f *FixedStep) Advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	if f.paused {
		return false
	}
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

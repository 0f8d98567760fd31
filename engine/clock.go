package engine

import "time"

// FixedStep decouples the simulation rate from the frame rate
// Real elapsed time is accumulated and drained in whole steps before each frame.
type FixedStep struct {
	step     time.Duration
	maxSteps int
	clock    TimeProvider

	last time.Time
	acc  time.Duration
	// Dropped counts steps discarded because a frame fell too far behind
	Dropped uint64
}

// NewFixedStep creates a clock draining steps of the given length
// maxSteps bounds the catch-up work per frame; zero means unbounded.
func NewFixedStep(step time.Duration, maxSteps int, clock TimeProvider) *FixedStep {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &FixedStep{
		step:     step,
		maxSteps: maxSteps,
		clock:    clock,
		last:     clock.Now(),
	}
}

// Pump adds the time elapsed since the previous call and runs fn once per whole step
// Returns the number of steps run
func (f *FixedStep) Pump(fn func()) int {
	now := f.clock.Now()
	f.acc += now.Sub(f.last)
	f.last = now

	n := 0
	for f.acc > f.step {
		if f.maxSteps > 0 && n >= f.maxSteps {
			f.Dropped += uint64(f.acc / f.step)
			f.acc %= f.step
			break
		}
		fn()
		f.acc -= f.step
		n++
	}
	return n
}

// Reset discards accumulated time, used after a level load so the new level starts clean
func (f *FixedStep) Reset() {
	f.last = f.clock.Now()
	f.acc = 0
}

// Pending returns accumulated time not yet consumed
func (f *FixedStep) Pending() time.Duration { return f.acc }

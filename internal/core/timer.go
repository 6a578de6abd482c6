package core

import "time"

// FixedStep paces solver steps at a steady rate independent of the frame
// rate. At most Max steps are released per call so a stalled frame cannot
// queue an unbounded burst.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	Max         int

	now func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given steps
// per second.
func NewFixedStep(sps int) *FixedStep {
	fs := &FixedStep{Max: 8, now: time.Now}
	fs.SetRate(sps)
	return fs
}

// SetRate changes the step rate. It is safe to call from the main loop.
func (f *FixedStep) SetRate(sps int) {
	if sps <= 0 {
		sps = 60
	}
	f.step = time.Second / time.Duration(sps)
}

// Rate returns the configured steps per second.
func (f *FixedStep) Rate() int { return int(time.Second / f.step) }

// Due reports how many steps should run now.
func (f *FixedStep) Due() int {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		f.accumulator = f.step
	}
	f.accumulator += now.Sub(f.last)
	f.last = now

	n := int(f.accumulator / f.step)
	if f.Max > 0 && n > f.Max {
		n = f.Max
		f.accumulator = 0
		return n
	}
	f.accumulator -= time.Duration(n) * f.step
	return n
}

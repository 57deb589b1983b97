package core

import (
	"errors"
	"time"
)

// ErrNonPositiveInterval reports an attempt to configure a zero or negative
// tick interval.
var ErrNonPositiveInterval = errors.New("tick interval must be positive")

// DefaultTickInterval is the wall-clock time per logical tick unless
// reconfigured.
const DefaultTickInterval = time.Second

// StepTimer converts elapsed wall-clock time into whole simulation ticks.
// Time below one interval stays in the accumulator and carries over to the
// next Advance call, so N intervals of elapsed time always yield N ticks.
type StepTimer struct {
	interval    time.Duration
	accumulator time.Duration
}

// NewStepTimer constructs a timer firing once per interval.
func NewStepTimer(interval time.Duration) (*StepTimer, error) {
	t := &StepTimer{}
	if err := t.SetInterval(interval); err != nil {
		return nil, err
	}
	return t, nil
}

// SetInterval changes the tick period. The new interval applies to the next
// tick evaluation; already-accumulated time is kept.
func (t *StepTimer) SetInterval(interval time.Duration) error {
	if interval <= 0 {
		return ErrNonPositiveInterval
	}
	t.interval = interval
	return nil
}

// Interval returns the configured tick period.
func (t *StepTimer) Interval() time.Duration { return t.interval }

// Advance adds delta to the accumulator and reports how many whole intervals
// elapsed. The remainder stays accumulated.
func (t *StepTimer) Advance(delta time.Duration) int {
	if delta > 0 {
		t.accumulator += delta
	}
	n := 0
	for t.accumulator >= t.interval {
		t.accumulator -= t.interval
		n++
	}
	return n
}

// Rewind discards accumulated time.
func (t *StepTimer) Rewind() {
	t.accumulator = 0
}

package core

import (
	"log"
	"time"
)

// Mode identifies the scheduler's current control state.
type Mode int

const (
	// ModeGenerating means the simulation is (re)building its initial state.
	ModeGenerating Mode = iota
	// ModeRunning means the tick timer is live.
	ModeRunning
	// ModePaused means ticks only happen through explicit Step calls.
	ModePaused
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeGenerating:
		return "generating"
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Scheduler owns the logical clock for a simulation and applies the control
// commands (pause, unpause, step, reset, set-interval). The simulation only
// ever advances through the scheduler, one whole tick at a time; nothing
// interrupts a tick once it starts.
type Scheduler struct {
	sim   Sim
	timer *StepTimer
	mode  Mode
	seed  int64
	ticks uint64
}

// NewScheduler generates the sim's initial state from seed and leaves the
// scheduler running with the given tick interval.
func NewScheduler(sim Sim, interval time.Duration, seed int64) (*Scheduler, error) {
	timer, err := NewStepTimer(interval)
	if err != nil {
		return nil, err
	}
	s := &Scheduler{sim: sim, timer: timer}
	s.Reset(seed)
	return s, nil
}

// Mode reports the current control state.
func (s *Scheduler) Mode() Mode { return s.mode }

// Ticks reports how many ticks have been applied since the last reset.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Seed reports the seed used for the last reset.
func (s *Scheduler) Seed() int64 { return s.seed }

// Interval returns the configured wall-clock duration per tick.
func (s *Scheduler) Interval() time.Duration { return s.timer.Interval() }

// SetInterval reconfigures the wall-clock duration per tick. The change
// applies to the next tick evaluation, not retroactively.
func (s *Scheduler) SetInterval(d time.Duration) error {
	if err := s.timer.SetInterval(d); err != nil {
		return err
	}
	log.Printf("simulation timestep set to %s", d)
	return nil
}

// Update feeds elapsed wall-clock time to the tick timer and advances the
// simulation by every whole interval crossed. It reports the number of ticks
// applied, which is always zero unless the scheduler is running.
func (s *Scheduler) Update(delta time.Duration) int {
	if s.mode != ModeRunning {
		return 0
	}
	n := s.timer.Advance(delta)
	for i := 0; i < n; i++ {
		s.sim.Step()
		s.ticks++
	}
	return n
}

// Pause suspends the tick timer. No-op unless running.
func (s *Scheduler) Pause() {
	if s.mode != ModeRunning {
		return
	}
	s.mode = ModePaused
	log.Printf("simulation paused")
}

// Unpause resumes ticking. No-op unless paused.
func (s *Scheduler) Unpause() {
	if s.mode != ModePaused {
		return
	}
	s.mode = ModeRunning
	log.Printf("simulation unpaused")
}

// Step applies exactly one tick. A step while running pauses the simulation
// first, so the user sees a single discrete advance rather than the clock
// racing ahead.
func (s *Scheduler) Step() {
	if s.mode == ModeRunning {
		s.mode = ModePaused
		log.Printf("simulation paused")
	}
	s.sim.Step()
	s.ticks++
	log.Printf("stepped simulation by one tick")
}

// Reset tears the simulation state down and regenerates it from seed,
// passing through the generating state and back to running. Resets are only
// honored between ticks; there is no mid-tick cancellation.
func (s *Scheduler) Reset(seed int64) {
	log.Printf("resetting simulation, regenerating state")
	s.mode = ModeGenerating
	s.sim.Reset(seed)
	s.seed = seed
	s.ticks = 0
	s.timer.Rewind()
	s.mode = ModeRunning
	log.Printf("generation complete, simulation running")
}

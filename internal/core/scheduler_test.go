package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingSim struct {
	steps  int
	resets int
}

func (s *countingSim) Name() string   { return "counting" }
func (s *countingSim) Size() Size     { return Size{W: 1, H: 1} }
func (s *countingSim) Reset(int64)    { s.resets++ }
func (s *countingSim) Step()          { s.steps++ }
func (s *countingSim) Cells() []uint8 { return nil }

func TestSchedulerStartsRunningAfterGeneration(t *testing.T) {
	sim := &countingSim{}
	sched, err := NewScheduler(sim, time.Second, 42)
	require.NoError(t, err)

	require.Equal(t, ModeRunning, sched.Mode())
	require.Equal(t, 1, sim.resets)
	require.EqualValues(t, 0, sched.Ticks())
}

func TestSchedulerTickAccounting(t *testing.T) {
	sim := &countingSim{}
	sched, err := NewScheduler(sim, time.Second, 1)
	require.NoError(t, err)

	// 2500ms of wall clock crosses the 1000ms interval exactly twice; the
	// 500ms remainder stays accumulated and must not fire a third tick.
	require.Equal(t, 2, sched.Update(2500*time.Millisecond))
	require.Equal(t, 2, sim.steps)
	require.Equal(t, 1, sched.Update(500*time.Millisecond))
	require.Equal(t, 3, sim.steps)
}

func TestSchedulerPauseStopsTicks(t *testing.T) {
	sim := &countingSim{}
	sched, err := NewScheduler(sim, time.Second, 1)
	require.NoError(t, err)

	sched.Pause()
	require.Equal(t, ModePaused, sched.Mode())
	require.Equal(t, 0, sched.Update(10*time.Second))
	require.Equal(t, 0, sim.steps)

	sched.Unpause()
	require.Equal(t, ModeRunning, sched.Mode())
	require.Equal(t, 1, sched.Update(time.Second))
	require.Equal(t, 1, sim.steps)
}

func TestSchedulerStepWhileRunningPausesAndAdvancesOnce(t *testing.T) {
	sim := &countingSim{}
	sched, err := NewScheduler(sim, time.Second, 1)
	require.NoError(t, err)

	sched.Step()
	require.Equal(t, ModePaused, sched.Mode())
	require.Equal(t, 1, sim.steps)

	sched.Step()
	require.Equal(t, ModePaused, sched.Mode())
	require.Equal(t, 2, sim.steps)
}

func TestSchedulerResetRegenerates(t *testing.T) {
	sim := &countingSim{}
	sched, err := NewScheduler(sim, time.Second, 1)
	require.NoError(t, err)

	sched.Update(5 * time.Second)
	require.EqualValues(t, 5, sched.Ticks())

	sched.Reset(99)
	require.Equal(t, 2, sim.resets)
	require.Equal(t, ModeRunning, sched.Mode())
	require.EqualValues(t, 0, sched.Ticks())
	require.EqualValues(t, 99, sched.Seed())

	// Accumulated time from before the reset must not leak into new ticks.
	require.Equal(t, 0, sched.Update(500*time.Millisecond))
}

func TestSchedulerIntervalValidation(t *testing.T) {
	sim := &countingSim{}
	_, err := NewScheduler(sim, 0, 1)
	require.ErrorIs(t, err, ErrNonPositiveInterval)

	sched, err := NewScheduler(sim, time.Second, 1)
	require.NoError(t, err)
	require.ErrorIs(t, sched.SetInterval(-1), ErrNonPositiveInterval)

	require.NoError(t, sched.SetInterval(250*time.Millisecond))
	require.Equal(t, 250*time.Millisecond, sched.Interval())
	require.Equal(t, 4, sched.Update(time.Second))
}

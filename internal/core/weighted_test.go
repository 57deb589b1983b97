package core

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedTableRejectsUnusableTables(t *testing.T) {
	_, err := NewWeightedTable[string](nil)
	require.ErrorIs(t, err, ErrNoOutcomes)

	_, err = NewWeightedTable([]WeightedEntry[string]{
		{Outcome: "a", Weight: 0},
		{Outcome: "b", Weight: 0},
	})
	require.ErrorIs(t, err, ErrNoOutcomes)

	_, err = NewWeightedTable([]WeightedEntry[string]{
		{Outcome: "a", Weight: -1},
		{Outcome: "b", Weight: 2},
	})
	require.ErrorIs(t, err, ErrNegativeWeight)
}

func TestWeightedTableFairness(t *testing.T) {
	table, err := NewWeightedTable([]WeightedEntry[string]{
		{Outcome: "a", Weight: 3},
		{Outcome: "b", Weight: 1},
	})
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(7, 0))
	const draws = 200_000
	hits := 0
	for i := 0; i < draws; i++ {
		if table.Choose(r) == "a" {
			hits++
		}
	}
	require.InDelta(t, 0.75, float64(hits)/draws, 0.01)
}

func TestWeightedTableZeroWeightIsImpossible(t *testing.T) {
	table, err := NewWeightedTable([]WeightedEntry[string]{
		{Outcome: "a", Weight: 1},
		{Outcome: "b", Weight: 0},
	})
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(11, 0))
	for i := 0; i < 10_000; i++ {
		require.Equal(t, "a", table.Choose(r))
	}
}

func TestWeightedTableSingleOutcome(t *testing.T) {
	table, err := NewWeightedTable([]WeightedEntry[int]{{Outcome: 42, Weight: 0.5}})
	require.NoError(t, err)

	r := rand.New(rand.NewPCG(3, 0))
	for i := 0; i < 100; i++ {
		require.Equal(t, 42, table.Choose(r))
	}
}

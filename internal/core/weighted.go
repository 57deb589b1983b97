package core

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrNoOutcomes reports a weighted table with no selectable outcome,
	// i.e. an empty table or one whose weights sum to zero.
	ErrNoOutcomes = errors.New("weighted table has no selectable outcome")
	// ErrNegativeWeight reports a table entry with a weight below zero.
	ErrNegativeWeight = errors.New("weighted table entry has negative weight")
)

// WeightedEntry pairs an outcome with its unnormalized selection weight.
// A weight of zero means the outcome is impossible.
type WeightedEntry[T any] struct {
	Outcome T
	Weight  float64
}

// WeightedTable selects one of a fixed set of outcomes with probability
// proportional to its weight. Weights are relative likelihoods; the table
// normalizes by their sum at selection time.
type WeightedTable[T any] struct {
	entries []WeightedEntry[T]
	total   float64
}

// NewWeightedTable validates the entries and builds a table. Construction
// fails on negative weights and on tables that could never select anything;
// both are configuration mistakes that must not surface mid-run.
func NewWeightedTable[T any](entries []WeightedEntry[T]) (*WeightedTable[T], error) {
	var total float64
	for i, e := range entries {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: entry %d (%v)", ErrNegativeWeight, i, e.Weight)
		}
		total += e.Weight
	}
	if total <= 0 {
		return nil, ErrNoOutcomes
	}
	t := &WeightedTable[T]{
		entries: append([]WeightedEntry[T](nil), entries...),
		total:   total,
	}
	return t, nil
}

// Choose draws one outcome from the table using the provided source.
func (t *WeightedTable[T]) Choose(r *rand.Rand) T {
	roll := r.Float64() * t.total
	for _, e := range t.entries {
		if e.Weight <= 0 {
			continue
		}
		if roll < e.Weight {
			return e.Outcome
		}
		roll -= e.Weight
	}
	// Floating-point residue can push the roll past the last entry; fall
	// back to the final selectable outcome.
	for i := len(t.entries) - 1; i >= 0; i-- {
		if t.entries[i].Weight > 0 {
			return t.entries[i].Outcome
		}
	}
	var zero T
	return zero
}

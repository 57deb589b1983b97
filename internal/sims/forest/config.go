package forest

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"forest-ca/internal/core"
)

var (
	// ErrBadDimensions reports a non-positive map width or height.
	ErrBadDimensions = errors.New("map dimensions must be positive")
	// ErrBadThreshold reports a water threshold outside [0, 1].
	ErrBadThreshold = errors.New("water threshold must be within [0, 1]")
	// ErrBadMultiplier reports a negative fire multiplier.
	ErrBadMultiplier = errors.New("fire multipliers must be non-negative")
)

// Params holds the tunable probabilities of the forest sim.
type Params struct {
	// WaterThreshold is the noise value below which a generated tile
	// becomes water. For a uniform noise field it approximates the water
	// fraction of the map.
	WaterThreshold float64
	// NoisePeriod is the feature size of the water noise field, in tiles.
	NoisePeriod float64

	// Initial land distribution weights, unnormalized. The defaults favor
	// early successional stages so a fresh map starts young.
	MeadowWeight          float64
	ShrublandWeight       float64
	ShadeIntolerantWeight float64
	ShadeTolerantWeight   float64

	// SpreadMultiplier scales the susceptibility of tiles adjacent to an
	// existing blaze. Generally much larger than one.
	SpreadMultiplier float64
	// BaseSusceptibility scales every spontaneous ignition roll at once.
	BaseSusceptibility float64
}

// landWeightEntries builds the weighted table input for initial land
// assignment. Water is placed by the noise pass and Fire never spawns, so
// neither appears here.
func (p Params) landWeightEntries() []core.WeightedEntry[TileKind] {
	return []core.WeightedEntry[TileKind]{
		{Outcome: Meadow, Weight: p.MeadowWeight},
		{Outcome: Shrubland, Weight: p.ShrublandWeight},
		{Outcome: ShadeIntolerantForest, Weight: p.ShadeIntolerantWeight},
		{Outcome: ShadeTolerantForest, Weight: p.ShadeTolerantWeight},
	}
}

// Config controls the forest simulation dimensions and parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	// TickInterval is the wall-clock duration per logical tick when the
	// simulation is driven by a scheduler.
	TickInterval time.Duration

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        50,
		Height:       50,
		Seed:         1337,
		TickInterval: core.DefaultTickInterval,
		Params: Params{
			WaterThreshold:        0.4,
			NoisePeriod:           5.0,
			MeadowWeight:          1.0,
			ShrublandWeight:       1.0,
			ShadeIntolerantWeight: 0,
			ShadeTolerantWeight:   0,
			SpreadMultiplier:      1e3,
			BaseSusceptibility:    1e-3,
		},
	}
}

// Validate checks the configuration, reporting the first problem found.
// Configuration errors surface here, never mid-simulation.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadDimensions, c.Width, c.Height)
	}
	if c.TickInterval <= 0 {
		return core.ErrNonPositiveInterval
	}
	p := c.Params
	if p.WaterThreshold < 0 || p.WaterThreshold > 1 {
		return fmt.Errorf("%w: %g", ErrBadThreshold, p.WaterThreshold)
	}
	if p.SpreadMultiplier < 0 || p.BaseSusceptibility < 0 {
		return fmt.Errorf("%w: spread=%g base=%g", ErrBadMultiplier, p.SpreadMultiplier, p.BaseSusceptibility)
	}
	if _, err := core.NewWeightedTable(p.landWeightEntries()); err != nil {
		return fmt.Errorf("land weights: %w", err)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). Unparseable values are ignored; the assembled config is still
// subject to Validate.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tick_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.TickInterval = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["water_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.WaterThreshold = parsed
		}
	}
	if v, ok := cfg["noise_period"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.NoisePeriod = parsed
		}
	}
	if v, ok := cfg["meadow_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.MeadowWeight = parsed
		}
	}
	if v, ok := cfg["shrubland_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ShrublandWeight = parsed
		}
	}
	if v, ok := cfg["shade_intolerant_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ShadeIntolerantWeight = parsed
		}
	}
	if v, ok := cfg["shade_tolerant_weight"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ShadeTolerantWeight = parsed
		}
	}
	if v, ok := cfg["spread_multiplier"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SpreadMultiplier = parsed
		}
	}
	if v, ok := cfg["base_susceptibility"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.BaseSusceptibility = parsed
		}
	}
	return c
}

package forest

import "forest-ca/internal/core"

// TileKind enumerates the ecological state of a single map tile.
type TileKind uint8

const (
	Meadow TileKind = iota
	Shrubland
	ShadeIntolerantForest
	ShadeTolerantForest
	Water
	Fire

	numTileKinds
)

// Kinds returns every tile kind in declaration order.
func Kinds() []TileKind {
	return []TileKind{Meadow, Shrubland, ShadeIntolerantForest, ShadeTolerantForest, Water, Fire}
}

// String returns the kind name.
func (k TileKind) String() string {
	switch k {
	case Meadow:
		return "meadow"
	case Shrubland:
		return "shrubland"
	case ShadeIntolerantForest:
		return "shade-intolerant forest"
	case ShadeTolerantForest:
		return "shade-tolerant forest"
	case Water:
		return "water"
	case Fire:
		return "fire"
	default:
		return "unknown"
	}
}

// Position identifies a grid tile by its integer coordinates. A cell's
// position is immutable for its lifetime: relocating a cell means
// despawning it and spawning a new one, never mutating in place, so the
// spatial index can never hold a stale key.
type Position struct {
	X int
	Y int
}

// CardinalNeighbors returns the four positions to the north, south, east
// and west. Tiles never interact diagonally.
func (p Position) CardinalNeighbors() [4]Position {
	return [4]Position{
		{X: p.X, Y: p.Y + 1},
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X - 1, Y: p.Y},
	}
}

// fireSusceptibility holds the relative per-tick chance of each kind
// catching fire, before either multiplier is applied. More mature
// successional stages carry more fuel. Water cannot burn; Fire is already
// burning, so its own ignition roll is moot.
var fireSusceptibility = [numTileKinds]float64{
	Meadow:                0.01,
	Shrubland:             0.2,
	ShadeIntolerantForest: 0.5,
	ShadeTolerantForest:   1.0,
	Water:                 0,
	Fire:                  0,
}

// Susceptibility returns the base fire affinity of the kind. Kinds outside
// the enumeration report zero and so never ignite.
func (k TileKind) Susceptibility() float64 {
	if k >= numTileKinds {
		return 0
	}
	return fireSusceptibility[k]
}

// successionEntries lists the unnormalized undisturbed transition weights
// out of each kind. An outcome absent from a row is unreachable from it.
// The Fire row models burnout: it bounds the expected lifetime of a blaze.
func successionEntries(k TileKind) []core.WeightedEntry[TileKind] {
	switch k {
	case Meadow:
		return []core.WeightedEntry[TileKind]{
			{Outcome: Meadow, Weight: 1.0},
			{Outcome: Shrubland, Weight: 0.5},
		}
	case Shrubland:
		return []core.WeightedEntry[TileKind]{
			{Outcome: Shrubland, Weight: 1.0},
			{Outcome: ShadeIntolerantForest, Weight: 0.5},
		}
	case ShadeIntolerantForest:
		return []core.WeightedEntry[TileKind]{
			{Outcome: ShadeIntolerantForest, Weight: 1.0},
			{Outcome: ShadeTolerantForest, Weight: 0.5},
		}
	case ShadeTolerantForest:
		return []core.WeightedEntry[TileKind]{
			{Outcome: ShadeTolerantForest, Weight: 1.0},
		}
	case Water:
		return []core.WeightedEntry[TileKind]{
			{Outcome: Water, Weight: 1.0},
		}
	case Fire:
		return []core.WeightedEntry[TileKind]{
			{Outcome: Fire, Weight: 0.5},
			{Outcome: Meadow, Weight: 0.5},
			{Outcome: Shrubland, Weight: 0.2},
		}
	default:
		return nil
	}
}

func buildSuccessionTables() ([numTileKinds]*core.WeightedTable[TileKind], error) {
	var tables [numTileKinds]*core.WeightedTable[TileKind]
	for _, k := range Kinds() {
		t, err := core.NewWeightedTable(successionEntries(k))
		if err != nil {
			return tables, err
		}
		tables[k] = t
	}
	return tables, nil
}

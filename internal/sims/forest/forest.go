package forest

import (
	"fmt"

	"forest-ca/internal/core"
	pcore "forest-ca/pkg/core"
)

// World runs the forest-succession and fire-spread automaton: a grid of
// cells stepping through ecological states, with fires that spread to
// cardinal neighbors, burn out, and start spontaneously.
type World struct {
	cfg Config

	index      *TileIndex
	succession [numTileKinds]*core.WeightedTable[TileKind]
	land       *core.WeightedTable[TileKind]
	display    *core.ByteGrid

	rng *pcore.RNG

	// per-tick scratch, reused across steps
	ignited map[Position]struct{}
	writes  []pendingWrite
}

type pendingWrite struct {
	pos  Position
	kind TileKind
}

// New returns a forest World with default parameters at the given size.
func New(width, height int) (*World, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	return NewWithConfig(cfg)
}

// NewWithConfig builds a World from the provided configuration. The world
// is empty until the first Reset.
func NewWithConfig(cfg Config) (*World, error) {
	succession, err := buildSuccessionTables()
	if err != nil {
		return nil, fmt.Errorf("succession tables: %w", err)
	}
	w := &World{
		index:      NewTileIndex(),
		succession: succession,
		ignited:    make(map[Position]struct{}),
		rng:        pcore.NewRNG(cfg.Seed),
	}
	if err := w.applyConfig(cfg); err != nil {
		return nil, err
	}
	return w, nil
}

// applyConfig validates cfg and swaps it in, rebuilding whatever derived
// state depends on it.
func (w *World) applyConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	land, err := core.NewWeightedTable(cfg.Params.landWeightEntries())
	if err != nil {
		return fmt.Errorf("land weights: %w", err)
	}
	w.cfg = cfg
	w.land = land
	if w.display == nil {
		w.display = core.NewByteGrid(cfg.Width, cfg.Height)
	} else if w.display.W != cfg.Width || w.display.H != cfg.Height {
		w.display.Resize(cfg.Width, cfg.Height)
	}
	return nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "forest" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Cells exposes the current display buffer (one texture index per tile).
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Config returns a copy of the active configuration.
func (w *World) Config() Config { return w.cfg }

// KindAt reports the kind of the cell at pos; ok is false off the map.
func (w *World) KindAt(pos Position) (TileKind, bool) {
	c := w.index.Get(pos)
	if c == nil {
		return 0, false
	}
	return c.kind, true
}

// EachCell visits every live cell in row-major order with its current kind.
// Callers must not mutate the world during iteration.
func (w *World) EachCell(fn func(Position, TileKind)) {
	w.eachCell(func(c *Cell) { fn(c.pos, c.kind) })
}

// Census counts live cells per kind.
func (w *World) Census() map[TileKind]int {
	counts := make(map[TileKind]int, int(numTileKinds))
	w.eachCell(func(c *Cell) { counts[c.kind]++ })
	return counts
}

// Reset rebuilds the map from scratch using deterministic randomness. A
// zero seed falls back to the configured seed, mirroring the registry
// convention.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Reseed(effective)
	w.generate()
}

// Regenerate rebuilds the grid from scratch under a new configuration:
// every cell is despawned, the map is repopulated, and the world is ready
// to run again. The existing state is left untouched when cfg is invalid.
func (w *World) Regenerate(cfg Config) error {
	if err := w.applyConfig(cfg); err != nil {
		return err
	}
	w.rng.Reseed(cfg.Seed)
	w.generate()
	return nil
}

// Step advances the world by one tick: fire spread, then undisturbed
// succession, then spontaneous ignition. Each pass sees the state left by
// the previous one; writes inside a pass are buffered and applied at the
// pass boundary, so iteration order within a pass cannot affect outcomes.
func (w *World) Step() {
	if w.index.Len() == 0 {
		return
	}
	w.spreadFires()
	w.undisturbedSuccession()
	w.startFires()
	w.rebuildDisplay()
}

// eachCell visits live cells in row-major order. Map generation only ever
// populates [0,W)x[0,H), so this covers every cell deterministically.
func (w *World) eachCell(fn func(*Cell)) {
	for y := 0; y < w.cfg.Height; y++ {
		for x := 0; x < w.cfg.Width; x++ {
			if c := w.index.Get(Position{X: x, Y: y}); c != nil {
				fn(c)
			}
		}
	}
}

// spreadFires is pass one. Every burning cell rolls against each existing,
// not-yet-burning cardinal neighbor; the neighbor ignites when the roll
// falls under its susceptibility scaled by the spread multiplier. Ignitions
// are buffered so a fire lit this pass cannot ignite its own neighbors
// until the next tick (fire advances one ring per tick). Water never
// ignites: its susceptibility is zero, so the roll always fails.
func (w *World) spreadFires() {
	clear(w.ignited)
	spread := w.cfg.Params.SpreadMultiplier
	w.eachCell(func(c *Cell) {
		if c.kind != Fire {
			return
		}
		for _, npos := range c.pos.CardinalNeighbors() {
			n := w.index.Get(npos)
			if n == nil || n.kind == Fire {
				continue
			}
			if w.rng.Float64() < n.kind.Susceptibility()*spread {
				w.ignited[npos] = struct{}{}
			}
		}
	})
	for pos := range w.ignited {
		w.index.Get(pos).kind = Fire
	}
}

// undisturbedSuccession is pass two. Every cell rolls its kind's weighted
// transition table, except cells that just caught fire in pass one: those
// keep burning through the rest of the tick. Cells that were already
// burning roll the Fire table, which is how fires burn out.
func (w *World) undisturbedSuccession() {
	w.writes = w.writes[:0]
	w.eachCell(func(c *Cell) {
		if _, fresh := w.ignited[c.pos]; fresh {
			return
		}
		next := w.succession[c.kind].Choose(w.rng.Source())
		if next != c.kind {
			w.writes = append(w.writes, pendingWrite{pos: c.pos, kind: next})
		}
	})
	for _, wr := range w.writes {
		w.index.Get(wr.pos).kind = wr.kind
	}
}

// startFires is pass three: spontaneous ignition, independent of
// neighbors. Cells already burning are skipped, so a cell ignited by
// spread is never double-applied.
func (w *World) startFires() {
	w.writes = w.writes[:0]
	base := w.cfg.Params.BaseSusceptibility
	w.eachCell(func(c *Cell) {
		if c.kind == Fire {
			return
		}
		if w.rng.Float64() < c.kind.Susceptibility()*base {
			w.writes = append(w.writes, pendingWrite{pos: c.pos, kind: Fire})
		}
	})
	for _, wr := range w.writes {
		w.index.Get(wr.pos).kind = Fire
	}
}

func init() {
	core.Register("forest", func(cfg map[string]string) core.Sim {
		w, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			panic(err)
		}
		return w
	})
}

package forest

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// generate rebuilds the whole map: despawn everything, spawn placeholder
// tiles, carve water bodies from a coherent-noise field, then roll the
// remaining land kinds from the configured weight table. Regeneration runs
// to completion as one unit; the scheduler treats the world as generating
// until it returns.
func (w *World) generate() {
	w.index.Clear()
	w.spawnTiles()
	w.placeWater()
	w.randomizeLand()
	w.rebuildDisplay()
}

// spawnTiles populates the rectangle [0,W)x[0,H) with meadow placeholders.
func (w *World) spawnTiles() {
	for y := 0; y < w.cfg.Height; y++ {
		for x := 0; x < w.cfg.Width; x++ {
			if _, err := w.index.Spawn(Position{X: x, Y: y}, Meadow); err != nil {
				// Clear precedes spawning, so a collision means the index
				// and cell population have desynchronized.
				panic(err)
			}
		}
	}
}

// placeWater samples a seeded 2D noise field at each tile and turns tiles
// below the threshold into water. Coherent noise makes the water spatially
// clustered rather than per-tile speckle.
func (w *World) placeWater() {
	period := w.cfg.Params.NoisePeriod
	if period <= 0 {
		period = 1
	}
	threshold := w.cfg.Params.WaterThreshold
	noise := opensimplex.NewNormalized(int64(w.rng.Uint32()))
	w.eachCell(func(c *Cell) {
		v := noise.Eval2(float64(c.pos.X)/period, float64(c.pos.Y)/period)
		if v < threshold {
			c.kind = Water
		}
	})
}

// randomizeLand draws an initial kind for every non-water tile from the
// configured distribution. Water tiles come from a different mechanism and
// are left alone.
func (w *World) randomizeLand() {
	w.eachCell(func(c *Cell) {
		if c.kind == Water {
			return
		}
		c.kind = w.land.Choose(w.rng.Source())
	})
}

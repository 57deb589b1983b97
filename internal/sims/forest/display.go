package forest

import (
	"image/color"
	"log"
)

// forestPalette maps texture indices (see textureIndex) to display colors.
var forestPalette = []color.RGBA{
	Meadow:                {R: 164, G: 196, B: 92, A: 255},
	Shrubland:             {R: 118, G: 160, B: 72, A: 255},
	ShadeIntolerantForest: {R: 62, G: 124, B: 58, A: 255},
	ShadeTolerantForest:   {R: 28, G: 84, B: 46, A: 255},
	Water:                 {R: 52, G: 110, B: 190, A: 255},
	Fire:                  {R: 255, G: 122, B: 40, A: 255},
}

// Palette exposes the color palette used for rendering the forest world.
func (w *World) Palette() []color.RGBA {
	return forestPalette
}

// textureIndex maps a kind to its display-buffer value. ok is false for
// kinds outside the enumeration.
func (k TileKind) textureIndex() (uint8, bool) {
	if k >= numTileKinds {
		return 0, false
	}
	return uint8(k), true
}

var unknownKindLogged [1 << 8]bool

// warnUnknownKind logs a missing display mapping once per kind. A lookup
// miss only skips the visual update; it never halts the simulation.
func warnUnknownKind(k TileKind) {
	if unknownKindLogged[k] {
		return
	}
	unknownKindLogged[k] = true
	log.Printf("forest: no texture index for tile kind %d, skipping visual update", uint8(k))
}

// rebuildDisplay refreshes the display buffer from the live cells.
func (w *World) rebuildDisplay() {
	buf := w.display.Cells()
	w.eachCell(func(c *Cell) {
		ti, ok := c.kind.textureIndex()
		if !ok {
			warnUnknownKind(c.kind)
			return
		}
		buf[w.display.Index(c.pos.X, c.pos.Y)] = ti
	})
}

package forest

import (
	"errors"
	"fmt"
)

// ErrPositionOccupied reports a spawn at a position that already holds a
// live cell.
var ErrPositionOccupied = errors.New("position already occupied")

// Cell is a live map tile: one immutable position and a current kind. Cells
// are created by TileIndex.Spawn during map generation and destroyed only
// on regeneration.
type Cell struct {
	pos  Position
	kind TileKind
}

// Position returns the cell's fixed grid position.
func (c *Cell) Position() Position { return c.pos }

// Kind returns the cell's current tile kind.
func (c *Cell) Kind() TileKind { return c.kind }

// TileIndex maps positions to live cells with O(1) average lookup. Spawn
// and Despawn are the only ways to create or destroy a cell, and each pairs
// the existence change with the index update in the same operation, so the
// index and the live cell population can never disagree.
type TileIndex struct {
	cells map[Position]*Cell
}

// NewTileIndex returns an empty index.
func NewTileIndex() *TileIndex {
	return &TileIndex{cells: make(map[Position]*Cell)}
}

// Spawn creates a cell at pos and registers it in one operation.
func (ti *TileIndex) Spawn(pos Position, kind TileKind) (*Cell, error) {
	if _, ok := ti.cells[pos]; ok {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrPositionOccupied, pos.X, pos.Y)
	}
	c := &Cell{pos: pos, kind: kind}
	ti.cells[pos] = c
	return c, nil
}

// Despawn destroys the cell at pos, if any, removing its index entry with it.
func (ti *TileIndex) Despawn(pos Position) {
	delete(ti.cells, pos)
}

// Get returns the cell at pos, or nil when the position holds none. A
// missing neighbor is not an error: it means "off the map, no interaction".
func (ti *TileIndex) Get(pos Position) *Cell {
	return ti.cells[pos]
}

// Len reports the number of live cells.
func (ti *TileIndex) Len() int { return len(ti.cells) }

// Clear despawns every cell. Idempotent on an empty index.
func (ti *TileIndex) Clear() {
	clear(ti.cells)
}

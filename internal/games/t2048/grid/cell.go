package grid

import "fmt"

// Cell is one fixed board position. It holds at most one tile, plus a
// merge tile that is only present between a slide pass and merge finalize.
type Cell struct {
	x, y int

	tile      *Tile
	mergeTile *Tile
}

// X returns the cell's column.
func (c *Cell) X() int { return c.x }

// Y returns the cell's row.
func (c *Cell) Y() int { return c.y }

// Tile returns the resident tile, or nil.
func (c *Cell) Tile() *Tile { return c.tile }

// MergeTile returns the pending merge tile, or nil.
func (c *Cell) MergeTile() *Tile { return c.mergeTile }

// Empty reports whether the cell has no resident tile.
func (c *Cell) Empty() bool { return c.tile == nil }

// SetTile makes t the resident tile and anchors it to this cell.
// Passing nil empties the cell.
func (c *Cell) SetTile(t *Tile) {
	c.tile = t
	if t != nil {
		t.place(c.x, c.y)
	}
}

// SetMergeTile parks t on this cell until MergeTiles runs.
// The resident tile must have the same value.
func (c *Cell) SetMergeTile(t *Tile) {
	if t != nil && (c.tile == nil || c.tile.value != t.value) {
		panic(fmt.Sprintf("grid: merge tile %d does not match cell (%d,%d)", t.value, c.x, c.y))
	}
	c.mergeTile = t
	if t != nil {
		t.place(c.x, c.y)
	}
}

// CanAccept reports whether an incoming tile may slide into this cell:
// either the cell is empty, or it has not merged yet this turn and holds a
// tile of the same value.
func (c *Cell) CanAccept(t *Tile) bool {
	return c.tile == nil || (c.mergeTile == nil && c.tile.value == t.value)
}

// MergeTiles folds a pending merge tile into the resident tile, doubling
// it. Returns false when nothing was pending.
func (c *Cell) MergeTiles() bool {
	if c.tile == nil || c.mergeTile == nil {
		return false
	}
	c.tile.value *= 2
	c.mergeTile = nil
	return true
}

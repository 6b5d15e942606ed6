// Package grid holds the 2048 rules engine: the board of cells, the tiles
// that move across it, and the slide and merge passes that resolve a move.
package grid

import (
	"errors"
	"fmt"
)

// Size is the board side length.
const Size = 4

// ErrNoEmptyCell is returned when a tile is requested on a full board.
var ErrNoEmptyCell = errors.New("grid: no empty cell")

// Grid is a fixed square of cells, one per coordinate.
type Grid struct {
	size  int
	cells []*Cell
}

// Move records one tile transfer made by Slide.
type Move struct {
	Tile         *Tile
	FromX, FromY int
	ToX, ToY     int
	// Merge is set when the tile was parked as the destination's merge tile.
	Merge bool
}

// New allocates a size×size grid of empty cells.
func New(size int) *Grid {
	if size < 2 {
		panic(fmt.Sprintf("grid: size %d too small", size))
	}
	g := &Grid{size: size, cells: make([]*Cell, 0, size*size)}
	for y := range size {
		for x := range size {
			g.cells = append(g.cells, &Cell{x: x, y: y})
		}
	}
	return g
}

// Size returns the side length.
func (g *Grid) Size() int {
	return g.size
}

// Cell returns the cell at (x, y), or nil when out of range.
func (g *Grid) Cell(x, y int) *Cell {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return nil
	}
	return g.cells[y*g.size+x]
}

// Cells returns every cell in row-major order.
func (g *Grid) Cells() []*Cell {
	out := make([]*Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// CellsByColumn returns one group per column, each ordered by increasing y.
func (g *Grid) CellsByColumn() [][]*Cell {
	cols := make([][]*Cell, g.size)
	for x := range g.size {
		cols[x] = make([]*Cell, g.size)
		for y := range g.size {
			cols[x][y] = g.Cell(x, y)
		}
	}
	return cols
}

// CellsByRow returns one group per row, each ordered by increasing x.
func (g *Grid) CellsByRow() [][]*Cell {
	rows := make([][]*Cell, g.size)
	for y := range g.size {
		rows[y] = make([]*Cell, g.size)
		copy(rows[y], g.cells[y*g.size:(y+1)*g.size])
	}
	return rows
}

// Groups returns the cell groups for a move, each ordered so that index 0
// is the edge tiles travel towards.
func (g *Grid) Groups(dir Direction) [][]*Cell {
	var groups [][]*Cell
	switch dir {
	case Up, Down:
		groups = g.CellsByColumn()
	default:
		groups = g.CellsByRow()
	}
	if dir == Down || dir == Right {
		for _, group := range groups {
			for i, j := 0, len(group)-1; i < j; i, j = i+1, j-1 {
				group[i], group[j] = group[j], group[i]
			}
		}
	}
	return groups
}

// EmptyCells returns the cells holding no tile, in row-major order.
func (g *Grid) EmptyCells() []*Cell {
	var out []*Cell
	for _, c := range g.cells {
		if c.tile == nil {
			out = append(out, c)
		}
	}
	return out
}

// RandomEmptyCell picks uniformly among the empty cells.
func (g *Grid) RandomEmptyCell(r Random) (*Cell, error) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return nil, ErrNoEmptyCell
	}
	return empty[r.Intn(len(empty))], nil
}

// CanMove reports whether a move in dir would change the board.
// The board is not modified.
func (g *Grid) CanMove(dir Direction) bool {
	for _, group := range g.Groups(dir) {
		for i := 1; i < len(group); i++ {
			t := group[i].tile
			if t != nil && group[i-1].CanAccept(t) {
				return true
			}
		}
	}
	return false
}

// CanMoveAny reports whether any direction is legal.
func (g *Grid) CanMoveAny() bool {
	for _, d := range Directions {
		if g.CanMove(d) {
			return true
		}
	}
	return false
}

// Slide moves every tile as far as it can towards dir. Tiles landing on an
// equal tile are parked as merge tiles; call MergeTiles to finalize.
func (g *Grid) Slide(dir Direction) []Move {
	var moves []Move
	for _, group := range g.Groups(dir) {
		for i := 1; i < len(group); i++ {
			src := group[i]
			t := src.tile
			if t == nil {
				continue
			}
			var dst *Cell
			for j := i - 1; j >= 0; j-- {
				if !group[j].CanAccept(t) {
					break
				}
				dst = group[j]
			}
			if dst == nil {
				continue
			}
			m := Move{Tile: t, FromX: src.x, FromY: src.y, ToX: dst.x, ToY: dst.y}
			if dst.tile != nil {
				dst.SetMergeTile(t)
				m.Merge = true
			} else {
				dst.SetTile(t)
			}
			src.SetTile(nil)
			moves = append(moves, m)
		}
	}
	return moves
}

// MergeTiles finalizes every pending merge and returns how many happened.
func (g *Grid) MergeTiles() int {
	n := 0
	for _, c := range g.cells {
		if c.MergeTiles() {
			n++
		}
	}
	return n
}

// Spawn places a new tile in a random empty cell. The tile is a 4 with
// probability fourProbability, otherwise a 2.
func (g *Grid) Spawn(r Random, fourProbability float64) (*Tile, error) {
	c, err := g.RandomEmptyCell(r)
	if err != nil {
		return nil, err
	}
	value := 2
	if r.Float64() < fourProbability {
		value = 4
	}
	t := NewTile(value)
	c.SetTile(t)
	return t, nil
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for _, c := range g.cells {
		c.tile = nil
		c.mergeTile = nil
	}
}

// Tiles returns every resident tile in row-major order.
func (g *Grid) Tiles() []*Tile {
	var out []*Tile
	for _, c := range g.cells {
		if c.tile != nil {
			out = append(out, c.tile)
		}
	}
	return out
}

// TileCount returns the number of resident tiles.
func (g *Grid) TileCount() int {
	n := 0
	for _, c := range g.cells {
		if c.tile != nil {
			n++
		}
	}
	return n
}

// MaxTile returns the highest tile value, or 0 on an empty board.
func (g *Grid) MaxTile() int {
	best := 0
	for _, c := range g.cells {
		if c.tile != nil && c.tile.value > best {
			best = c.tile.value
		}
	}
	return best
}

// Sum adds up resident and pending merge tile values.
func (g *Grid) Sum() int {
	sum := 0
	for _, c := range g.cells {
		if c.tile != nil {
			sum += c.tile.value
		}
		if c.mergeTile != nil {
			sum += c.mergeTile.value
		}
	}
	return sum
}

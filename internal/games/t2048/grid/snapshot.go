package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Snapshot is a row-major copy of the board values, Snapshot[y][x].
// Zero marks an empty cell.
type Snapshot [][]int

// Snapshot copies the resident tile values.
func (g *Grid) Snapshot() Snapshot {
	s := make(Snapshot, g.size)
	for y := range g.size {
		s[y] = make([]int, g.size)
		for x := range g.size {
			if t := g.Cell(x, y).tile; t != nil {
				s[y][x] = t.value
			}
		}
	}
	return s
}

// FromSnapshot builds a grid holding the given values. The snapshot must be
// square and every value must be zero or a power of two of at least 2.
func FromSnapshot(s Snapshot) (*Grid, error) {
	n := len(s)
	if n < 2 {
		return nil, fmt.Errorf("grid: snapshot has %d rows", n)
	}
	g := New(n)
	for y, row := range s {
		if len(row) != n {
			return nil, fmt.Errorf("grid: snapshot row %d has %d cells, want %d", y, len(row), n)
		}
		for x, v := range row {
			if v == 0 {
				continue
			}
			if v < 2 || v&(v-1) != 0 {
				return nil, fmt.Errorf("grid: invalid tile value %d at (%d,%d)", v, x, y)
			}
			g.Cell(x, y).SetTile(NewTile(v))
		}
	}
	return g, nil
}

// Equal reports whether two snapshots hold the same values.
func (s Snapshot) Equal(o Snapshot) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// String renders one row per line with '.' for empty cells.
func (s Snapshot) String() string {
	var sb strings.Builder
	for y, row := range s {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteString(strconv.Itoa(v))
			}
		}
	}
	return sb.String()
}

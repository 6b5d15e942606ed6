package grid

// Tile is a numbered game piece. A Tile is owned by exactly one Cell at a
// time, or held by a Cell as its pending merge tile; it is always passed by
// pointer so ownership moves rather than copies.
type Tile struct {
	value int
	x, y  int

	waiters []chan struct{}
}

// NewTile creates an unplaced tile with the given value.
func NewTile(value int) *Tile {
	return &Tile{value: value}
}

// Value returns the tile's number.
func (t *Tile) Value() int {
	return t.value
}

// Position returns the coordinates of the cell that last took the tile.
func (t *Tile) Position() (x, y int) {
	return t.x, t.y
}

func (t *Tile) place(x, y int) {
	t.x, t.y = x, y
}

// WaitForSettle registers a one-shot listener. The returned channel is
// closed on the next call to Settle and never again.
func (t *Tile) WaitForSettle() <-chan struct{} {
	ch := make(chan struct{})
	t.waiters = append(t.waiters, ch)
	return ch
}

// Settle marks the tile's current movement or appearance as finished,
// releasing every registered listener. With no listeners it does nothing.
func (t *Tile) Settle() {
	for _, ch := range t.waiters {
		close(ch)
	}
	t.waiters = nil
}

// Pending reports how many listeners are still waiting on the tile.
func (t *Tile) Pending() int {
	return len(t.waiters)
}

// Package gridtest provides test doubles for the grid package.
package gridtest

import "github.com/vovakirdan/tui-2048/internal/games/t2048/grid"

// Random is a scripted grid.Random. Queued values are returned in order;
// once a queue runs dry it returns 0.
type Random struct {
	ints   []int
	floats []float64
}

var _ grid.Random = (*Random)(nil)

// NewRandom creates an empty scripted source.
func NewRandom() *Random {
	return &Random{}
}

// Intn returns the next queued int, clamped into [0, n).
func (r *Random) Intn(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// Float64 returns the next queued float.
func (r *Random) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// QueueIntn adds values to the Intn queue.
func (r *Random) QueueIntn(values ...int) *Random {
	r.ints = append(r.ints, values...)
	return r
}

// QueueFloat64 adds values to the Float64 queue.
func (r *Random) QueueFloat64(values ...float64) *Random {
	r.floats = append(r.floats, values...)
	return r
}

// Spawn queues one spawn: the index among empty cells and whether it is a 4.
func (r *Random) Spawn(emptyIndex int, four bool) *Random {
	f := 0.99
	if four {
		f = 0.0
	}
	return r.QueueIntn(emptyIndex).QueueFloat64(f)
}

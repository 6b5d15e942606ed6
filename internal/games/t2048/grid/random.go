package grid

import "math/rand"

// Random is the source of randomness used for spawning. It can be
// replaced in tests to script exact spawn positions and values.
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Float64 returns a random float in [0.0, 1.0)
	Float64() float64
}

// NewRandom returns a seeded source. Equal seeds give equal games.
func NewRandom(seed int64) Random {
	return rand.New(rand.NewSource(seed))
}

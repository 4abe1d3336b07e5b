package hex

import "math/rand"

// Rand is the random source the hex engine draws from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source. Equal seeds replay equal rolls and schedules.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// OneIn reports true with probability 1/n.
func OneIn(r Rand, n int) bool {
	if n <= 1 {
		return true
	}
	return r.Intn(n) == 0
}

// Chance reports true with probability p.
func Chance(r Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}

// Spread returns a uniform value in [-half, half).
func Spread(r Rand, half float64) float64 {
	return (r.Float64() - 0.5) * 2 * half
}

func pick[T any](r Rand, pool []T) (T, bool) {
	var zero T
	if len(pool) == 0 {
		return zero, false
	}
	return pool[r.Intn(len(pool))], true
}

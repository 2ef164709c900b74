package maze

import (
	"math/rand"
)

// Every algorithm in this package draws its randomness from one of these,
// supplied by the caller. Nothing in this package reads a global random
// source, so the same seed always produces the same maze and image.
type RandomSource interface {
	// Returns a uniform integer in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Returns a uniform float in [0.0, 1.0).
	Float64() float64
	// Returns true with probability p.
	Chance(p float64) bool
	// Pseudo-randomly permutes n elements using swap.
	Shuffle(n int, swap func(i, j int))
	// Returns a non-negative 63-bit integer.
	Int63() int64
}

// Satisfies the RandomSource interface using math/rand. Not safe for
// concurrent use.
type Rand struct {
	*rand.Rand
}

// Returns a new Rand seeded with the given value.
func NewRand(seed int64) *Rand {
	return &Rand{
		Rand: rand.New(rand.NewSource(seed)),
	}
}

// Returns true with probability p. Probabilities at or outside of the [0, 1]
// range don't consume anything from the stream.
func (r *Rand) Chance(p float64) bool {
	if p >= 1 {
		return true
	}
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}

// Mixes a value drawn from a parent stream into a new seed. These are the
// SplitMix64 constants, so nearby inputs give unrelated outputs.
func mixSeed(parent int64) int64 {
	x := uint64(parent) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Returns a new, independently seeded Rand. The seed is drawn from src, so
// the derived stream is still fully determined by src's seed, but the values
// it produces aren't correlated with the ones src produces afterwards.
func DeriveRand(src RandomSource) *Rand {
	return NewRand(mixSeed(src.Int63()))
}

// Returns a copy of AllDirections in a random order.
func shuffledDirections(rng RandomSource) [4]Direction {
	toReturn := AllDirections
	rng.Shuffle(len(toReturn), func(i, j int) {
		toReturn[i], toReturn[j] = toReturn[j], toReturn[i]
	})
	return toReturn
}

// Returns a uniformly random cell in the grid, which must not be empty.
func randomPosition(rng RandomSource, g *Grid) Position {
	x := rng.Intn(g.Width())
	y := rng.Intn(g.Height())
	return Position{x, y}
}

package vmath

import (
	"math"
	"math/rand/v2"
)

// Source yields uniformly distributed values in [0, 1).
// *rand.Rand from math/rand/v2 and *FastRand both satisfy it.
type Source interface {
	Float64() float64
}

// globalSource defers to the math/rand/v2 top-level generator, safe for concurrent use
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// DefaultSource is used wherever a nil Source is passed
var DefaultSource Source = globalSource{}

func sourceOrDefault(rng Source) Source {
	if rng == nil {
		return DefaultSource
	}
	return rng
}

// --- FastRand ---

// FastRand is an xorshift64 (13, 17, 5) generator for reproducible sequences.
// Not safe for concurrent use.
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns the top 53 bits of Next scaled into [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// --- Choked Sampling ---
// choke sums that many scaled draws; values above 1 pull results toward the
// middle of the range, approaching a bell shape as choke grows. choke < 1 is 1.

// Random returns a float in [min(limitA, limitB), max(limitA, limitB))
func Random(rng Source, limitA, limitB float64, choke int) float64 {
	rng = sourceOrDefault(rng)
	if choke < 1 {
		choke = 1
	}
	low, high := math.Min(limitA, limitB), math.Max(limitA, limitB)
	step := (high - low) / float64(choke)

	total := 0.0
	for i := 0; i < choke; i++ {
		total += rng.Float64() * step
	}
	return low + total
}

// RandomInt returns an integer in [ceil(min), floor(max)] of the two limits.
// When no integer lies between the limits the result is ceil(min).
func RandomInt(rng Source, limitA, limitB float64, choke int) int {
	rng = sourceOrDefault(rng)
	if choke < 1 {
		choke = 1
	}
	low := math.Ceil(math.Min(limitA, limitB))
	high := math.Floor(math.Max(limitA, limitB))
	if high < low {
		return int(low)
	}
	step := (high + 1 - low) / float64(choke)

	total := 0.0
	for i := 0; i < choke; i++ {
		total += rng.Float64() * step
	}
	// Summed rounding can land exactly on high+1
	return int(math.Min(math.Floor(low+total), high))
}

// RandomItem returns an element at a choked random index.
// ok is false for an empty slice.
func RandomItem[T any](rng Source, items []T, choke int) (item T, ok bool) {
	if len(items) == 0 {
		return item, false
	}
	return items[RandomInt(rng, 0, float64(len(items)-1), choke)], true
}

// RandomChoice is an alias of RandomItem
func RandomChoice[T any](rng Source, items []T, choke int) (T, bool) {
	return RandomItem(rng, items, choke)
}

// RandomDirection returns +1 or -1 with equal probability
func RandomDirection(rng Source) int {
	if sourceOrDefault(rng).Float64() > 0.5 {
		return 1
	}
	return -1
}

// RandomBoolean returns true or false with equal probability
func RandomBoolean(rng Source) bool {
	return sourceOrDefault(rng).Float64() > 0.5
}

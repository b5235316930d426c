package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// --- Increment Rounding ---
// increment 0 is not guarded; the IEEE-754 result of value/0 propagates

// Ceil rounds value up to the nearest multiple of increment
func Ceil(value, increment float64) float64 {
	return increment * math.Ceil(value/increment)
}

// Floor rounds value down to the nearest multiple of increment
func Floor(value, increment float64) float64 {
	return increment * math.Floor(value/increment)
}

// Round rounds value to the nearest multiple of increment, halves toward +Inf
func Round(value, increment float64) float64 {
	return increment * roundHalfUp(value/increment)
}

// roundHalfUp differs from math.Round on negative halves: -2.5 -> -2
func roundHalfUp(x float64) float64 {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return f
}

// --- Modulo ---

// Modulo returns value mod limit with the result taking the sign of limit.
// A zero or NaN limit yields 0.
func Modulo(value, limit float64) float64 {
	if limit == 0 || math.IsNaN(limit) {
		return 0
	}
	mod := math.Mod(value, limit)
	if value >= 0 {
		return mod
	} else if mod < 0 {
		return math.Mod(mod+limit, limit)
	}
	// Negative exact multiples leave -0
	return 0
}

// ModuloInt is Modulo over integers. Zero limit yields 0.
func ModuloInt[T constraints.Integer](value, limit T) T {
	if limit == 0 {
		return 0
	}
	mod := value % limit
	if value >= 0 || mod == 0 {
		return mod
	}
	return (mod + limit) % limit
}

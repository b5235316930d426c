package vmath

import "math"

// --- Angles ---
// Direction variants use screen convention: clockwise, 0 rad at 90° (12 o'clock).

func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// ToDegreeDirection converts a mathematical angle to a clockwise heading in [0, 360)
func ToDegreeDirection(radians float64) float64 {
	return Modulo(ToDegrees(-radians)+90, 360)
}

// ToRadianDirection is the inverse of ToDegreeDirection, wrapped into [0, 2π)
func ToRadianDirection(degrees float64) float64 {
	return Modulo(ToRadians(-degrees)+math.Pi/2, 2*math.Pi)
}

// --- Interpolation ---

// RelativePercentage returns where current sits between start and end as a
// fraction, unclamped. Equal start and end yield NaN or ±Inf.
func RelativePercentage(start, end, current float64) float64 {
	return (current - start) / (end - start)
}

// Normalize is RelativePercentage with range-first argument naming
func Normalize(low, high, value float64) float64 {
	return RelativePercentage(low, high, value)
}

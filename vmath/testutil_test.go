package vmath

import "math"

// Test helper functions shared across all test files

func closeEnough(a, b float64) bool {
	const epsilon = 1e-9
	if a == b {
		return true
	}
	return math.Abs(a-b) < epsilon
}

// scriptedSource replays fixed draws, cycling when exhausted
type scriptedSource struct {
	values []float64
	pos    int
}

func (s *scriptedSource) Float64() float64 {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// maxDraw is the largest value a Source may return
const maxDraw = 1 - 1.0/(1<<53)

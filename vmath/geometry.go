package vmath

import (
	"math"

	"github.com/lixenwraith/vmath-kit/core"
)

// CircleIntersection returns the points where two circles meet.
// Empty when the circles are apart or one lies inside the other, one point when
// tangent, two otherwise. Concentric circles are not guarded and yield NaN.
func CircleIntersection(centerA core.Point, radiusA float64, centerB core.Point, radiusB float64) []core.Point {
	dx := centerB.X - centerA.X
	dy := centerB.Y - centerA.Y
	d := math.Hypot(dx, dy)
	if d > radiusA+radiusB || d < math.Abs(radiusA-radiusB) {
		return []core.Point{}
	}

	// Distance from A to the radical line along the center line
	a := (radiusA*radiusA - radiusB*radiusB + d*d) / (2 * d)
	mid := core.Point{
		X: centerA.X + dx*a/d,
		Y: centerA.Y + dy*a/d,
	}

	// Half chord, offset perpendicular to the center line
	h := math.Sqrt(radiusA*radiusA - a*a)
	offset := core.Point{X: -dy * (h / d), Y: dx * (h / d)}

	p1 := mid.Add(offset)
	p2 := mid.Sub(offset)
	if p1 == p2 {
		return []core.Point{p1}
	}
	return []core.Point{p1, p2}
}

package vmath

import "github.com/lixenwraith/vmath-kit/core"

// AreaCenter returns the center point of the area
func AreaCenter(a core.Area) core.Point {
	return core.Point{
		X: a.X + a.Width/2,
		Y: a.Y + a.Height/2,
	}
}

// AreaContains checks if point is within area, right and bottom edges excluded
func AreaContains(a core.Area, p core.Point) bool {
	return p.X >= a.X && p.X < a.X+a.Width && p.Y >= a.Y && p.Y < a.Y+a.Height
}

// AreaClamp returns p moved onto the nearest point inside the closed area
func AreaClamp(a core.Area, p core.Point) core.Point {
	return core.Point{
		X: min(max(p.X, a.X), a.X+a.Width),
		Y: min(max(p.Y, a.Y), a.Y+a.Height),
	}
}

// AreaRandomPoint returns a choked random point within area; choke > 1
// clusters points around the center
func AreaRandomPoint(a core.Area, rng Source, choke int) core.Point {
	return core.Point{
		X: Random(rng, a.X, a.X+a.Width, choke),
		Y: Random(rng, a.Y, a.Y+a.Height, choke),
	}
}

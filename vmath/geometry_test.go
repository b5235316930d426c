package vmath

import (
	"math"
	"testing"

	"github.com/lixenwraith/vmath-kit/core"
)

func distance(a, b core.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

func TestCircleIntersection_TwoPoints(t *testing.T) {
	points := CircleIntersection(core.Point{X: 0, Y: 0}, 5, core.Point{X: 5, Y: 5}, 5)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}

	want := []core.Point{{X: 0, Y: 5}, {X: 5, Y: 0}}
	for _, w := range want {
		found := false
		for _, p := range points {
			if closeEnough(p.X, w.X) && closeEnough(p.Y, w.Y) {
				found = true
			}
		}
		if !found {
			t.Errorf("points %v missing %v", points, w)
		}
	}
}

func TestCircleIntersection_PointsOnBothCircles(t *testing.T) {
	rng := NewFastRand(64)
	for i := 0; i < 200; i++ {
		a := core.Point{X: Random(rng, -50, 50, 1), Y: Random(rng, -50, 50, 1)}
		b := core.Point{X: Random(rng, -50, 50, 1), Y: Random(rng, -50, 50, 1)}
		ra, rb := Random(rng, 1, 60, 1), Random(rng, 1, 60, 1)

		for _, p := range CircleIntersection(a, ra, b, rb) {
			if math.Abs(distance(p, a)-ra) > 1e-6 || math.Abs(distance(p, b)-rb) > 1e-6 {
				t.Fatalf("point %v not on both circles (%v r%v, %v r%v)", p, a, ra, b, rb)
			}
		}
	}
}

func TestCircleIntersection_None(t *testing.T) {
	tests := []struct {
		name    string
		centerA core.Point
		radiusA float64
		centerB core.Point
		radiusB float64
	}{
		{"Apart", core.Point{X: 0, Y: 0}, 10, core.Point{X: 200, Y: 0}, 10},
		{"Contained", core.Point{X: 0, Y: 0}, 50, core.Point{X: 5, Y: 5}, 10},
		{"Contained reversed", core.Point{X: 5, Y: 5}, 10, core.Point{X: 0, Y: 0}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := CircleIntersection(tt.centerA, tt.radiusA, tt.centerB, tt.radiusB)
			if points == nil || len(points) != 0 {
				t.Errorf("got %v, want empty", points)
			}
		})
	}
}

func TestCircleIntersection_Tangent(t *testing.T) {
	outer := CircleIntersection(core.Point{X: 0, Y: 0}, 5, core.Point{X: 10, Y: 0}, 5)
	if len(outer) != 1 || outer[0] != (core.Point{X: 5, Y: 0}) {
		t.Errorf("external tangent = %v, want [{5 0}]", outer)
	}

	inner := CircleIntersection(core.Point{X: 0, Y: 0}, 3, core.Point{X: 0, Y: 8}, 5)
	if len(inner) != 1 || inner[0] != (core.Point{X: 0, Y: 3}) {
		t.Errorf("vertical tangent = %v, want [{0 3}]", inner)
	}
}

func TestCircleIntersection_ConcentricPassesNaN(t *testing.T) {
	points := CircleIntersection(core.Point{X: 1, Y: 1}, 4, core.Point{X: 1, Y: 1}, 4)
	for _, p := range points {
		if !math.IsNaN(p.X) || !math.IsNaN(p.Y) {
			t.Errorf("concentric point = %v, want NaN", p)
		}
	}
	if len(points) == 0 {
		t.Error("concentric equal circles returned no points, want NaN passthrough")
	}
}

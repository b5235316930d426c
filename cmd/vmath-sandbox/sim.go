package main

import (
	"math"

	"github.com/lixenwraith/vmath-kit/core"
	"github.com/lixenwraith/vmath-kit/vmath"
)

// Terminal cells are roughly twice as tall as wide; world Y is scaled so
// circles render round
const aspectRatio = 2.0

const (
	minRadius   = 4.0
	maxRadius   = 18.0
	sampleCount = 400
	maxChoke    = 12
)

type Circle struct {
	Center core.Point
	Radius float64
}

// Sandbox is the simulation state, independent of the screen
type Sandbox struct {
	A, B    Circle
	Target  core.Point
	Bounds  core.Area
	Speed   float64
	Choke   int
	Samples []core.Point
	Points  []core.Point

	rng       vmath.Source
	lastCount int
}

func newSandbox(width, height int, rng vmath.Source, choke int, speed float64) *Sandbox {
	s := &Sandbox{
		Speed:     speed,
		Choke:     max(choke, 1),
		rng:       rng,
		lastCount: -1,
	}
	s.Resize(width, height)
	center := vmath.AreaCenter(s.Bounds)
	s.A = Circle{Center: center, Radius: 10}
	s.B = Circle{Center: center.Add(core.Point{X: 12}), Radius: 8}
	s.Target = s.B.Center
	return s
}

// Resize sets world bounds from a cell grid, reserving the status line
func (s *Sandbox) Resize(width, height int) {
	s.Bounds = core.Area{
		Width:  float64(max(width, 1)),
		Height: float64(max(height-1, 1)) * aspectRatio,
	}
	s.Target = vmath.AreaClamp(s.Bounds, s.Target)
}

// Step eases circle B toward the target and recomputes intersections.
// changed reports whether the intersection count differs from the last step.
func (s *Sandbox) Step() (changed bool) {
	vmath.EaseProp(&s.B.Center.X, s.Target.X, s.Speed)
	vmath.EaseProp(&s.B.Center.Y, s.Target.Y, s.Speed)

	s.Points = vmath.CircleIntersection(s.A.Center, s.A.Radius, s.B.Center, s.B.Radius)
	count := len(s.Points)
	changed = count != s.lastCount
	s.lastCount = count
	return changed
}

// MoveTarget shifts the target by cell deltas
func (s *Sandbox) MoveTarget(dx, dy int) {
	s.Target = vmath.AreaClamp(s.Bounds, s.Target.Add(core.Point{
		X: float64(dx),
		Y: float64(dy) * aspectRatio,
	}))
}

// SetTargetCell places the target at a screen cell
func (s *Sandbox) SetTargetCell(x, y int) {
	s.Target = vmath.AreaClamp(s.Bounds, cellToWorld(x, y))
}

// Randomize picks new radii and moves A, using the current choke
func (s *Sandbox) Randomize() {
	s.A.Radius = vmath.Random(s.rng, minRadius, maxRadius, s.Choke)
	s.B.Radius = vmath.Random(s.rng, minRadius, maxRadius, s.Choke)
	s.A.Center = vmath.AreaRandomPoint(s.Bounds, s.rng, s.Choke)
}

// Scatter fills Samples with choked random cells to visualize center bias
func (s *Sandbox) Scatter() {
	s.Samples = s.Samples[:0]
	cols := s.Bounds.Width - 1
	rows := s.Bounds.Height/aspectRatio - 1
	for i := 0; i < sampleCount; i++ {
		x := vmath.RandomInt(s.rng, 0, cols, s.Choke)
		y := vmath.RandomInt(s.rng, 0, rows, s.Choke)
		s.Samples = append(s.Samples, cellToWorld(x, y))
	}
}

// AdjustChoke changes choke within [1, maxChoke]
func (s *Sandbox) AdjustChoke(delta int) {
	s.Choke = min(max(s.Choke+delta, 1), maxChoke)
}

// Heading is the clockwise screen direction from A to B, 0 at 12 o'clock
func (s *Sandbox) Heading() float64 {
	d := s.B.Center.Sub(s.A.Center)
	// Screen Y grows downward
	return vmath.ToDegreeDirection(math.Atan2(-d.Y, d.X))
}

// Overlap is 0 at inner tangency and 1 at outer tangency; circles intersect
// while it lies in [0, 1]
func (s *Sandbox) Overlap() float64 {
	d := s.B.Center.Sub(s.A.Center)
	dist := math.Hypot(d.X, d.Y)
	return vmath.RelativePercentage(math.Abs(s.A.Radius-s.B.Radius), s.A.Radius+s.B.Radius, dist)
}

func cellToWorld(x, y int) core.Point {
	return core.Point{X: float64(x) + 0.5, Y: (float64(y) + 0.5) * aspectRatio}
}

func worldToCell(p core.Point) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / aspectRatio))
}

package circlepoly

import (
	"iter"
	"math"
	"slices"
)

const (
	// MinRadius is the smallest radius a circle is generated with.
	MinRadius = 1.0
	// MaxRadius is the largest radius a circle is generated with.
	MaxRadius = math.MaxFloat64

	// MinSegments and MaxSegments bound the number of chords
	// approximating a circle.
	MinSegments = 4
	MaxSegments = 64
)

// CircleSpec describes a circle centered on the origin of the XZ plane, to be
// approximated by Segments chords.
//
// The zero value is not usable as is; all functions taking a CircleSpec clamp
// it first, see [CircleSpec.Clamp].
type CircleSpec struct {
	Radius   float64
	Segments int
}

// ClampRadius clamps r to [MinRadius, MaxRadius]. NaN clamps to MinRadius.
func ClampRadius(r float64) float64 {
	if math.IsNaN(r) || r < MinRadius {
		return MinRadius
	}
	return min(r, MaxRadius)
}

// ClampSegments clamps n to [MinSegments, MaxSegments].
func ClampSegments(n int) int {
	return max(MinSegments, min(n, MaxSegments))
}

// Clamp returns a copy of cs with its radius and segment count clamped to
// their valid ranges.
func (cs CircleSpec) Clamp() CircleSpec {
	return CircleSpec{
		Radius:   ClampRadius(cs.Radius),
		Segments: ClampSegments(cs.Segments),
	}
}

// AngleStep returns the angle, in radians, subtended by each chord.
func (cs CircleSpec) AngleStep() float64 {
	return 2.0 * math.Pi / float64(ClampSegments(cs.Segments))
}

// MaxDeviation returns the largest distance between a chord and the arc it
// replaces, that is, the sagitta r·(1 − cos(π/n)).
func (cs CircleSpec) MaxDeviation() float64 {
	c := cs.Clamp()
	return c.Radius * (1 - math.Cos(math.Pi/float64(c.Segments)))
}

// Points returns the points of the polyline approximating the circle.
//
// The sequence has Segments+1 points. Point k lies at the angle
// (k+1)·2π/Segments, measured from the positive x axis towards the positive z
// axis. The first point is thus one step past the x axis, and the last point
// wraps around onto the first, closing the loop.
func (cs CircleSpec) Points() iter.Seq[Point3] {
	c := cs.Clamp()
	return func(yield func(Point3) bool) {
		r := c.Radius
		deltaTh := c.AngleStep()
		for ix := 1; ix <= c.Segments+1; ix++ {
			s, co := math.Sincos(deltaTh * float64(ix))
			if !yield(Pt3(r*co, 0, r*s)) {
				return
			}
		}
	}
}

// Polyline returns the points of [CircleSpec.Points] as a freshly allocated
// slice.
func (cs CircleSpec) Polyline() Polyline {
	p := make(Polyline, 0, ClampSegments(cs.Segments)+1)
	return slices.AppendSeq(p, cs.Points())
}

// Generate returns the closed polyline approximating a circle of the given
// radius with the given number of segments. Both inputs are clamped, never
// rejected: Generate(0.2, 2) is the same as Generate(1, 4).
func Generate(radius float64, segments int) Polyline {
	return CircleSpec{Radius: radius, Segments: segments}.Polyline()
}

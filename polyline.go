package circlepoly

import (
	"iter"
	"math"
)

// Polyline is an ordered sequence of points joined by straight chords.
type Polyline []Point3

// Len returns the number of points. This is the count a render sink is told
// to draw.
func (p Polyline) Len() int { return len(p) }

// Chords returns the line segments joining consecutive points.
func (p Polyline) Chords() iter.Seq[Line3] {
	return func(yield func(Line3) bool) {
		for i := 1; i < len(p); i++ {
			if !yield(Line3{p[i-1], p[i]}) {
				return
			}
		}
	}
}

// Length returns the sum of the chord lengths.
func (p Polyline) Length() float64 {
	var l float64
	for c := range p.Chords() {
		l += c.Length()
	}
	return l
}

// IsInf reports whether a chord has an infinite endpoint or a length too
// large to represent. Polylines near [MaxRadius] overflow this way, and so do
// their [Polyline.Length] and [Polyline.MaxDeviation].
func (p Polyline) IsInf() bool {
	for c := range p.Chords() {
		if c.IsInf() || math.IsInf(c.Length(), 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether a chord has a NaN endpoint.
func (p Polyline) IsNaN() bool {
	for c := range p.Chords() {
		if c.IsNaN() {
			return true
		}
	}
	return false
}

// Closed reports whether the first and last points are within tolerance of
// each other. Polylines with fewer than two points are never closed.
func (p Polyline) Closed(tolerance float64) bool {
	if len(p) < 2 {
		return false
	}
	return p[0].Distance(p[len(p)-1]) <= tolerance
}

// MaxDeviation returns the largest distance between a chord's midpoint and
// the circle of the given center and radius. For a polyline inscribed in that
// circle this is the chord-to-arc deviation.
func (p Polyline) MaxDeviation(center Point3, radius float64) float64 {
	var dev float64
	for c := range p.Chords() {
		dev = max(dev, math.Abs(radius-c.Midpoint().Distance(center)))
	}
	return dev
}

// BoundingBox returns the smallest axis-aligned box containing all points.
// The box of an empty polyline is the zero Box3.
func (p Polyline) BoundingBox() Box3 {
	if len(p) == 0 {
		return Box3{}
	}
	b := Box3{Min: p[0], Max: p[0]}
	for _, pt := range p[1:] {
		b.Min = Point3{min(b.Min.X, pt.X), min(b.Min.Y, pt.Y), min(b.Min.Z, pt.Z)}
		b.Max = Point3{max(b.Max.X, pt.X), max(b.Max.Y, pt.Y), max(b.Max.Z, pt.Z)}
	}
	return b
}

// Box3 is an axis-aligned box.
type Box3 struct {
	Min Point3
	Max Point3
}

func (b Box3) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Contains reports whether pt lies inside the box or on its boundary.
func (b Box3) Contains(pt Point3) bool {
	return pt.X >= b.Min.X && pt.X <= b.Max.X &&
		pt.Y >= b.Min.Y && pt.Y <= b.Max.Y &&
		pt.Z >= b.Min.Z && pt.Z <= b.Max.Z
}

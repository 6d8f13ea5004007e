package circlepoly

// Line3 represents a line segment in 3D space.
type Line3 struct {
	// The line's start point.
	P0 Point3
	// The line's end point.
	P1 Point3
}

// Length returns the length of the line.
func (l Line3) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at t ∈ [0, 1] along the line.
func (l Line3) Eval(t float64) Point3 {
	return l.P0.Lerp(l.P1, t)
}

func (l Line3) Midpoint() Point3 {
	return l.P0.Midpoint(l.P1)
}

func (l Line3) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line3) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}

func (l Line3) Translate(v Vec3) Line3 {
	return Line3{
		P0: l.P0.Translate(v),
		P1: l.P1.Translate(v),
	}
}

package circlepoly

import (
	"fmt"
	"math"
	"slices"
	"testing"
)

var testRadii = []float64{1, 2.5, 5, 100, 12345.678}

func TestGenerateExample(t *testing.T) {
	want := Polyline{
		Pt3(0, 0, 5),
		Pt3(-5, 0, 0),
		Pt3(0, 0, -5),
		Pt3(5, 0, 0),
		Pt3(0, 0, 5),
	}
	diff(t, want, Generate(5, 4), approx)
}

func TestGenerateCount(t *testing.T) {
	for _, r := range testRadii {
		for n := MinSegments; n <= MaxSegments; n++ {
			if got := len(Generate(r, n)); got != n+1 {
				t.Errorf("Generate(%v, %d): got %d points, want %d", r, n, got, n+1)
			}
		}
	}
}

func TestGenerateOnCircle(t *testing.T) {
	for _, r := range testRadii {
		for n := MinSegments; n <= MaxSegments; n++ {
			for i, pt := range Generate(r, n) {
				if pt.Y != 0 {
					t.Fatalf("Generate(%v, %d)[%d] = %v, want y = 0", r, n, i, pt)
				}
				if d := math.Abs(pt.X*pt.X + pt.Z*pt.Z - r*r); d > 1e-9*r*r {
					t.Fatalf("Generate(%v, %d)[%d] = %v is off the circle by %v", r, n, i, pt, d)
				}
			}
		}
	}
}

func TestGenerateClosed(t *testing.T) {
	for _, r := range testRadii {
		for n := MinSegments; n <= MaxSegments; n++ {
			if p := Generate(r, n); !p.Closed(1e-9 * r) {
				t.Errorf("Generate(%v, %d) is not closed: first %v, last %v", r, n, p[0], p[len(p)-1])
			}
		}
	}
}

func TestGenerateFirstAngle(t *testing.T) {
	// The first point sits one step past the x axis, the second to last on it.
	for n := MinSegments; n <= MaxSegments; n++ {
		p := Generate(1, n)
		step := 2 * math.Pi / float64(n)
		diff(t, Point3(VecFromAngle(step)), p[0], approx)
		diff(t, Pt3(1, 0, 0), p[n-1], approx)
	}
}

func TestGenerateFidelity(t *testing.T) {
	for _, r := range testRadii {
		prev := math.Inf(1)
		for n := MinSegments; n <= MaxSegments; n++ {
			dev := Generate(r, n).MaxDeviation(Point3{}, r)
			if dev >= prev {
				t.Errorf("radius %v: deviation %v at %d segments is not below %v", r, dev, n, prev)
			}
			if want := (CircleSpec{r, n}).MaxDeviation(); math.Abs(dev-want) > 1e-9*r {
				t.Errorf("radius %v, %d segments: got deviation %v, want %v", r, n, dev, want)
			}
			prev = dev
		}
	}
}

func TestGenerateClamp(t *testing.T) {
	diff(t, Generate(1, 4), Generate(0.2, 2))
	diff(t, Generate(1, 64), Generate(-3, 1000))
	diff(t, Generate(1, 8), Generate(math.NaN(), 8))

	tests := []struct {
		in, want CircleSpec
	}{
		{CircleSpec{0.2, 2}, CircleSpec{1, 4}},
		{CircleSpec{5, 16}, CircleSpec{5, 16}},
		{CircleSpec{1, 4}, CircleSpec{1, 4}},
		{CircleSpec{64.5, 64}, CircleSpec{64.5, 64}},
		{CircleSpec{0, 65}, CircleSpec{1, 64}},
		{CircleSpec{math.Inf(1), -1}, CircleSpec{math.MaxFloat64, 4}},
		{CircleSpec{math.Inf(-1), 0}, CircleSpec{1, 4}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			diff(t, tt.want, tt.in.Clamp())
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for n := MinSegments; n <= MaxSegments; n++ {
		a := Generate(7.25, n)
		b := Generate(7.25, n)
		if !slices.Equal(a, b) {
			t.Errorf("Generate(7.25, %d) is not deterministic", n)
		}
		if &a[0] == &b[0] {
			t.Error("Generate reused its output slice")
		}
	}
}

func TestPointsIterator(t *testing.T) {
	cs := CircleSpec{Radius: 3, Segments: 12}
	diff(t, Polyline(slices.Collect(cs.Points())), cs.Polyline())

	// Stopping early must not panic.
	var got []Point3
	for pt := range cs.Points() {
		got = append(got, pt)
		if len(got) == 3 {
			break
		}
	}
	diff(t, []Point3(cs.Polyline()[:3]), got)
}

func TestAngleStep(t *testing.T) {
	if got, want := (CircleSpec{Segments: 4}).AngleStep(), math.Pi/2; got != want {
		t.Errorf("got step %v, want %v", got, want)
	}
	if got, want := (CircleSpec{Segments: 1}).AngleStep(), math.Pi/2; got != want {
		t.Errorf("got step %v for a clamped count, want %v", got, want)
	}
}

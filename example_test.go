package circlepoly_test

import (
	"fmt"
	"math"

	"honnef.co/go/circlepoly"
)

func ExampleGenerate() {
	// Drop rounding noise such as 5·cos(π/2) ≈ 3e-16.
	clean := func(f float64) float64 {
		if math.Abs(f) < 1e-9 {
			return 0
		}
		return f
	}
	p := circlepoly.Generate(5, 4)
	fmt.Println(len(p), p.Closed(1e-9))
	for _, pt := range p {
		fmt.Printf("(%g, %g, %g)\n", clean(pt.X), clean(pt.Y), clean(pt.Z))
	}
	// Output:
	// 5 true
	// (0, 0, 5)
	// (-5, 0, 0)
	// (0, 0, -5)
	// (5, 0, 0)
	// (0, 0, 5)
}

func ExampleEditor() {
	var lr circlepoly.LineRenderer
	ed := circlepoly.NewEditor(&lr)
	ed.SetSegments(2)
	fmt.Println(ed.Spec(), lr.PositionCount())
	ed.Undo()
	fmt.Println(ed.Spec(), lr.PositionCount())
	// Output:
	// {5 4} 5
	// {5 16} 17
}

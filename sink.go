package circlepoly

import (
	"math"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sink consumes polylines for display, in the manner of an engine's line
// renderer: it is handed the positions first, then told how many to draw.
type Sink interface {
	SetPositions(pts []Point3)
	SetPositionCount(n int)
}

// Publish hands p to s.
func Publish(s Sink, p Polyline) {
	s.SetPositions(p)
	s.SetPositionCount(p.Len())
}

// LineRenderer is a Sink that keeps the last positions it was given.
type LineRenderer struct {
	positions []Point3
	count     int
}

var _ Sink = (*LineRenderer)(nil)

func (lr *LineRenderer) SetPositions(pts []Point3) {
	lr.positions = append(lr.positions[:0], pts...)
}

func (lr *LineRenderer) SetPositionCount(n int) { lr.count = n }

// Positions returns the first PositionCount positions. The result must not be
// modified.
func (lr *LineRenderer) Positions() []Point3 {
	return lr.positions[:min(lr.count, len(lr.positions))]
}

func (lr *LineRenderer) PositionCount() int { return lr.count }

// Float32Sink adapts a consumer of single-precision vectors to [Sink].
type Float32Sink struct {
	// Positions receives the converted positions.
	Positions func([]mgl32.Vec3)
	// Count receives the position count. It may be nil.
	Count func(int)
}

var _ Sink = Float32Sink{}

func (fs Float32Sink) SetPositions(pts []Point3) {
	fs.Positions(ToVec3s(pts))
}

func (fs Float32Sink) SetPositionCount(n int) {
	if fs.Count != nil {
		fs.Count(n)
	}
}

// ToVec3s converts points to single-precision vectors.
func ToVec3s(pts []Point3) []mgl32.Vec3 {
	out := make([]mgl32.Vec3, len(pts))
	for i, pt := range pts {
		out[i] = mgl32.Vec3{float32(pt.X), float32(pt.Y), float32(pt.Z)}
	}
	return out
}

// Generate32 is like [Generate] but evaluates the circle in single precision,
// the way engines storing float32 positions do.
func Generate32(radius float64, segments int) []mgl32.Vec3 {
	c := CircleSpec{Radius: radius, Segments: segments}.Clamp()
	r := float32(min(c.Radius, math.MaxFloat32))
	deltaTh := float32(c.AngleStep())
	out := make([]mgl32.Vec3, 0, c.Segments+1)
	for ix := 1; ix <= c.Segments+1; ix++ {
		th := deltaTh * float32(ix)
		out = append(out, mgl32.Vec3{r * math32.Cos(th), 0, r * math32.Sin(th)})
	}
	return out
}

// Scene is a set of sinks addressable by name. The zero value is an empty
// scene.
type Scene struct {
	sinks map[string]Sink
}

func NewScene() *Scene {
	return &Scene{sinks: make(map[string]Sink)}
}

// Add registers s under name, replacing any sink of the same name.
func (sc *Scene) Add(name string, s Sink) {
	if sc.sinks == nil {
		sc.sinks = make(map[string]Sink)
	}
	sc.sinks[name] = s
}

func (sc *Scene) Remove(name string) {
	delete(sc.sinks, name)
}

// Find returns the sink registered under name.
func (sc *Scene) Find(name string) (Sink, bool) {
	s, ok := sc.sinks[name]
	return s, ok
}

// Names returns the registered names in sorted order.
func (sc *Scene) Names() []string {
	names := make([]string, 0, len(sc.sinks))
	for name := range sc.sinks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

package circlepoly

// DefaultSinkName is the name an [Editor] looks up in its scene when it has
// no sink bound.
const DefaultSinkName = "RenderObject"

// DefaultSpec is the circle a new [Editor] starts with.
var DefaultSpec = CircleSpec{Radius: 5, Segments: 16}

// Change records a single edit of a circle, for undo and redo.
type Change struct {
	Label string
	Old   CircleSpec
	New   CircleSpec
}

// Editor holds the circle being edited, publishes its polyline to a sink
// after every edit, and keeps an undo history.
//
// An Editor is not safe for concurrent use.
type Editor struct {
	// Sink receives the polyline. If it is nil, the editor looks up
	// SinkName in Scene and binds the result.
	Sink Sink
	// Scene is used to resolve Sink. It may be nil.
	Scene *Scene
	// SinkName is the name looked up in Scene. If empty, DefaultSinkName
	// is used.
	SinkName string

	spec CircleSpec
	undo []Change
	redo []Change
}

// NewEditor returns an editor for [DefaultSpec] bound to s. s may be nil, in
// which case the sink is resolved through the Scene field.
func NewEditor(s Sink) *Editor {
	return &Editor{Sink: s, spec: DefaultSpec}
}

// Spec returns the circle being edited, clamped to valid ranges.
func (ed *Editor) Spec() CircleSpec { return ed.spec.Clamp() }

// Polyline returns the polyline of the circle being edited.
func (ed *Editor) Polyline() Polyline { return ed.spec.Polyline() }

// SetRadius sets the radius, clamped to its valid range. It reports whether
// the circle changed.
func (ed *Editor) SetRadius(r float64) bool {
	next := ed.spec
	next.Radius = r
	return ed.apply("change radius", next)
}

// SetSegments sets the segment count, clamped to its valid range. It reports
// whether the circle changed.
func (ed *Editor) SetSegments(n int) bool {
	next := ed.spec
	next.Segments = n
	return ed.apply("change segments", next)
}

// Set replaces the circle, clamped to valid ranges. It reports whether the
// circle changed.
func (ed *Editor) Set(cs CircleSpec) bool {
	return ed.apply("change circle", cs)
}

func (ed *Editor) apply(label string, next CircleSpec) bool {
	next = next.Clamp()
	prev := ed.spec.Clamp()
	if next == prev {
		return false
	}
	ed.undo = append(ed.undo, Change{Label: label, Old: prev, New: next})
	ed.redo = ed.redo[:0]
	ed.spec = next
	ed.Refresh()
	return true
}

// Undo reverts the most recent change. It reports false if there was nothing
// to undo.
func (ed *Editor) Undo() bool {
	if len(ed.undo) == 0 {
		return false
	}
	c := ed.undo[len(ed.undo)-1]
	ed.undo = ed.undo[:len(ed.undo)-1]
	ed.redo = append(ed.redo, c)
	ed.spec = c.Old
	ed.Refresh()
	return true
}

// Redo reapplies the most recently undone change. It reports false if there
// was nothing to redo.
func (ed *Editor) Redo() bool {
	if len(ed.redo) == 0 {
		return false
	}
	c := ed.redo[len(ed.redo)-1]
	ed.redo = ed.redo[:len(ed.redo)-1]
	ed.undo = append(ed.undo, c)
	ed.spec = c.New
	ed.Refresh()
	return true
}

// History returns the changes that can be undone, oldest first. The result
// must not be modified.
func (ed *Editor) History() []Change { return ed.undo }

// Refresh recomputes the polyline and publishes it. It reports false if no
// sink could be resolved.
func (ed *Editor) Refresh() bool {
	s := ed.resolveSink()
	if s == nil {
		return false
	}
	Publish(s, ed.spec.Polyline())
	return true
}

func (ed *Editor) resolveSink() Sink {
	if ed.Sink != nil {
		return ed.Sink
	}
	if ed.Scene == nil {
		return nil
	}
	name := ed.SinkName
	if name == "" {
		name = DefaultSinkName
	}
	if s, ok := ed.Scene.Find(name); ok {
		ed.Sink = s
	}
	return ed.Sink
}

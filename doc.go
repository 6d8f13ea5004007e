// Package circlepoly approximates circles with closed polylines, for display by
// line renderers in 3D scenes.
//
// # Circles and polylines
//
// A [CircleSpec] describes a circle centered on the origin and lying in the
// horizontal XZ plane, together with the number of straight chords, or
// segments, used to approximate it. [Generate] and [CircleSpec.Polyline] turn
// it into a [Polyline] of Segments+1 points whose first and last points
// coincide. [CircleSpec.Points] produces the same points as an iterator.
//
// Inputs are clamped, never rejected. The radius is at least [MinRadius] and
// the segment count lies in [[MinSegments], [MaxSegments]]. Generation cannot
// fail.
//
// The first point is placed one angular step past the positive x axis, not on
// it. The point on the x axis only appears as the second to last point, and
// the last point wraps around onto the first.
//
// # Accuracy
//
// Each chord deviates from the arc it replaces by at most the sagitta
// r·(1 − cos(π/n)); see [CircleSpec.MaxDeviation] and [Polyline.MaxDeviation].
// Raising the segment count at a fixed radius always lowers the deviation.
//
// # Sinks and editing
//
// A [Sink] is the receiving end of a polyline, modelled on an engine's line
// renderer. [Publish] hands a polyline to a sink. [LineRenderer] is an
// in-memory sink and [Float32Sink] converts to single-precision vectors for
// consumers that store positions as float32.
//
// An [Editor] wraps a circle, republishes its polyline after every change and
// records changes for [Editor.Undo] and [Editor.Redo]. When it has no sink
// bound, it looks one up by name in a [Scene].
package circlepoly

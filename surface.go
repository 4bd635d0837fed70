package turtle

// Snapshot is an opaque pixel-state handle produced by Surface.Snapshot and
// accepted by Surface.Restore. Its concrete type is surface-specific.
type Snapshot any

// Surface is the drawing backend a Turtle renders onto. All coordinates are
// canvas-centered with Y increasing upward; the implementation owns the
// transform to device pixels.
//
// Drawing is immediate-mode: MoveTo/LineTo accumulate a path, Stroke or Fill
// consume it. The Snapshot/Restore pair is the only undo mechanism — the
// turtle uses it to erase and redraw its cursor glyph without disturbing
// previously drawn strokes.
//
// Surfaces are permissive, matching the turtle itself: implementations clamp
// degenerate style values (such as a non-positive line width) rather than
// rejecting them.
type Surface interface {
	// MoveTo starts a new subpath at p.
	MoveTo(p Vec2)
	// LineTo extends the current subpath with a straight line to p.
	LineTo(p Vec2)
	// Stroke draws the accumulated path with the current stroke style and
	// discards it.
	Stroke()
	// Fill closes and fills the accumulated path with the current fill
	// style and discards it.
	Fill()

	SetStrokeColor(c Color)
	SetFillColor(c Color)
	SetLineWidth(w float64)
	SetLineCap(c LineCap)

	// Clear erases the whole surface.
	Clear()

	// Snapshot captures the current pixel state.
	Snapshot() Snapshot
	// Restore rewinds the surface to a previously captured snapshot.
	Restore(snap Snapshot)
}

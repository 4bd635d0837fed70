package turtle

import "math"

// The cursor glyph is an overlay, not part of the drawing: before the glyph
// is painted the surface pixels are snapshotted, and any operation that needs
// to touch the canvas (a stroke, a pose change) first rewinds to that
// snapshot. Strokes therefore never bake the glyph into the drawing.

// eraseGlyph rewinds the surface to the pre-glyph snapshot, if one exists.
func (t *Turtle) eraseGlyph() {
	if t.backup != nil {
		t.surface.Restore(t.backup)
	}
}

// drawGlyph snapshots the glyph-free surface and paints the cursor glyph on
// top, unless the turtle is hidden or the shape is degenerate.
func (t *Turtle) drawGlyph() {
	t.backup = t.surface.Snapshot()
	if t.hidden || len(t.shape) < 3 {
		return
	}
	verts := placeShape(t.shape, t.angle, glyphScale(t.width), t.pos)
	t.surface.SetFillColor(t.color)
	t.surface.MoveTo(verts[0])
	for _, v := range verts[1:] {
		t.surface.LineTo(v)
	}
	t.surface.Fill()
}

// refreshGlyph repaints the glyph after a pose or style change.
func (t *Turtle) refreshGlyph() {
	t.eraseGlyph()
	t.drawGlyph()
}

// glyphScale grows the glyph with the pen width. Widths at or below 1
// (including the never-rejected non-positive ones) draw at natural size.
func glyphScale(width float64) float64 {
	return math.Max(1, width)
}

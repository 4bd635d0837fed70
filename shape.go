package turtle

import "math"

// Built-in cursor glyphs. Vertices are in glyph-local coordinates with the
// turtle at the origin heading up; placeShape rotates, scales, and translates
// them into canvas space.
var (
	// ShapeTriangle is the default cursor: an isosceles triangle pointing
	// along the heading.
	ShapeTriangle = []Vec2{{0, 10}, {-6, -6}, {6, -6}}

	// ShapeArrow is a notched arrowhead.
	ShapeArrow = []Vec2{{0, 10}, {-7, -7}, {0, -3}, {7, -7}}

	// ShapeSquare is an axis-aligned square.
	ShapeSquare = []Vec2{{-6, 6}, {6, 6}, {6, -6}, {-6, -6}}

	// ShapeCircle approximates a circle with a 16-gon.
	ShapeCircle = circleVertices(7, 16)
)

// circleVertices returns n points evenly spaced on a circle of radius r,
// starting at the top and winding clockwise.
func circleVertices(r float64, n int) []Vec2 {
	verts := make([]Vec2, n)
	for i := range verts {
		a := 2 * math.Pi * float64(i) / float64(n)
		verts[i] = Vec2{r * math.Sin(a), r * math.Cos(a)}
	}
	return verts
}

// placeShape maps glyph-local vertices into canvas space: scale, rotate
// clockwise by angle degrees (so the glyph tracks the heading), then
// translate to at.
func placeShape(shape []Vec2, angle, scale float64, at Vec2) []Vec2 {
	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	out := make([]Vec2, len(shape))
	for i, v := range shape {
		x := v.X * scale
		y := v.Y * scale
		// Clockwise rotation in a Y-up frame.
		out[i] = Vec2{
			X: at.X + x*cos + y*sin,
			Y: at.Y - x*sin + y*cos,
		}
	}
	return out
}

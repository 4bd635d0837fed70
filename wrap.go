package turtle

import "math"

// wrapTieEps absorbs floating-point noise when comparing edge distances.
// A diagonal heading reaches both boundaries of a square canvas at the same
// path distance only up to one ulp of sin/cos asymmetry; distances this close
// count as a tie, and ties go to the X boundary.
const wrapTieEps = 1e-9

// segment is a single straight stroke in canvas coordinates.
type segment struct {
	a, b Vec2
}

func (s segment) length() float64 {
	return math.Hypot(s.b.X-s.a.X, s.b.Y-s.a.Y)
}

// wrapLine decomposes a straight move into the on-canvas segments it strokes.
//
// The move starts at start, heads angle degrees (0 = up, clockwise positive)
// for a signed distance dist, on a canvas spanning [-halfW, halfW] by
// [-halfH, halfH]. Without wrapping the result is a single segment to the
// straight-line destination. With wrapping, each time the path reaches a
// boundary a segment is emitted up to the crossing point, the crossed
// coordinate teleports to the opposite edge, and the remaining distance
// continues from there. The returned point is the turtle's true resting
// position, already remapped into canvas space.
//
// The segment lengths always sum to |dist|.
func wrapLine(start Vec2, angle, dist, halfW, halfH float64, wrap bool) ([]segment, Vec2) {
	rad := angle * math.Pi / 180
	dir := Vec2{math.Sin(rad), math.Cos(rad)}
	if dist < 0 {
		dist = -dist
		dir.X, dir.Y = -dir.X, -dir.Y
	}

	segs := make([]segment, 0, 1)
	cur := start
	remaining := dist
	for {
		dx := edgeDistance(cur.X, dir.X, halfW)
		dy := edgeDistance(cur.Y, dir.Y, halfH)
		if !wrap || (remaining <= dx && remaining <= dy) {
			end := Vec2{cur.X + dir.X*remaining, cur.Y + dir.Y*remaining}
			segs = append(segs, segment{cur, end})
			return segs, end
		}
		if dx <= dy+wrapTieEps { // X wins ties
			hit := Vec2{cur.X + dir.X*dx, cur.Y + dir.Y*dx}
			segs = append(segs, segment{cur, hit})
			cur = Vec2{math.Copysign(halfW, -dir.X), hit.Y}
			remaining -= dx
		} else {
			hit := Vec2{cur.X + dir.X*dy, cur.Y + dir.Y*dy}
			segs = append(segs, segment{cur, hit})
			cur = Vec2{hit.X, math.Copysign(halfH, -dir.Y)}
			remaining -= dy
		}
	}
}

// edgeDistance returns the path distance from coordinate p, moving with
// direction component d, to the boundary at +half or -half (whichever lies
// ahead). A zero direction component never reaches either boundary, so the
// distance is +Inf rather than a division by zero. A non-positive half-extent
// is likewise unreachable: a degenerate axis cannot wrap, and teleporting
// across it would consume no distance and never terminate. A position already
// beyond the boundary snaps through it immediately.
func edgeDistance(p, d, half float64) float64 {
	if d == 0 || half <= 0 {
		return math.Inf(1)
	}
	var dist float64
	if d > 0 {
		dist = (half - p) / d
	} else {
		dist = (-half - p) / d
	}
	if dist < 0 {
		return 0
	}
	return dist
}

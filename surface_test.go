package turtle

// stubSurface is an in-memory Surface that records drawing calls, letting
// tests assert on turtle behavior without a GPU.
type stubSurface struct {
	path        []Vec2
	strokeColor Color
	fillColor   Color
	width       float64
	lineCap     LineCap

	strokes   []strokeRec
	fills     int
	clears    int
	snapshots int
	restores  int
}

// strokeRec captures one Stroke call of a MoveTo+LineTo path.
type strokeRec struct {
	from, to Vec2
	color    Color
	width    float64
	lineCap  LineCap
}

func (s *stubSurface) MoveTo(p Vec2) { s.path = []Vec2{p} }
func (s *stubSurface) LineTo(p Vec2) { s.path = append(s.path, p) }

func (s *stubSurface) Stroke() {
	if len(s.path) >= 2 {
		s.strokes = append(s.strokes, strokeRec{
			from:    s.path[0],
			to:      s.path[len(s.path)-1],
			color:   s.strokeColor,
			width:   s.width,
			lineCap: s.lineCap,
		})
	}
	s.path = nil
}

func (s *stubSurface) Fill() {
	s.fills++
	s.path = nil
}

func (s *stubSurface) SetStrokeColor(c Color) { s.strokeColor = c }
func (s *stubSurface) SetFillColor(c Color)   { s.fillColor = c }
func (s *stubSurface) SetLineWidth(w float64) { s.width = w }
func (s *stubSurface) SetLineCap(c LineCap)   { s.lineCap = c }

func (s *stubSurface) Clear() {
	s.clears++
	s.strokes = nil
	s.path = nil
}

func (s *stubSurface) Snapshot() Snapshot {
	s.snapshots++
	return s.snapshots
}

func (s *stubSurface) Restore(Snapshot) { s.restores++ }

// newTestTurtle creates a turtle on a 200x200 canvas (half-extents 100)
// backed by a fresh stub surface.
func newTestTurtle() (*Turtle, *stubSurface) {
	s := &stubSurface{}
	return New(s, 100, 100), s
}

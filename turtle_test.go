package turtle

import (
	"math"
	"testing"
)

func TestOperationsChain(t *testing.T) {
	tt, _ := newTestTurtle()
	if got := tt.Forward(10).Right(90).PenUp().SetWidth(2); got != tt {
		t.Error("operations must return the receiver")
	}
}

func TestForwardMovesAlongHeading(t *testing.T) {
	tt, _ := newTestTurtle()
	tt.Forward(10)
	if pos := tt.Position(); !nearVec(pos, Vec2{0, 10}) {
		t.Errorf("position = %v, want (0,10)", pos)
	}

	tt.SetAngle(90).Forward(10)
	if pos := tt.Position(); !nearVec(pos, Vec2{10, 10}) {
		t.Errorf("position = %v, want (10,10)", pos)
	}
}

func TestBackwardIsNegatedForward(t *testing.T) {
	tt, _ := newTestTurtle()
	tt.SetWrap(false)
	tt.SetAngle(33).Forward(70).Backward(70)
	if pos := tt.Position(); !nearVec(pos, Vec2{0, 0}) {
		t.Errorf("position = %v, want origin", pos)
	}
	if a := tt.Angle(); a != 33 {
		t.Errorf("angle = %f, want 33 (backward must not turn)", a)
	}
}

func TestAngleNeverNormalized(t *testing.T) {
	tt, _ := newTestTurtle()
	tt.Right(270).Right(270)
	if a := tt.Angle(); a != 540 {
		t.Errorf("angle = %f, want 540", a)
	}
	tt.Left(1000)
	if a := tt.Angle(); a != -460 {
		t.Errorf("angle = %f, want -460", a)
	}
}

func TestGotoIsPlainPositionSet(t *testing.T) {
	tt, s := newTestTurtle()
	before := len(s.strokes)
	tt.Goto(500, -700) // far beyond the half-extents
	if pos := tt.Position(); pos != (Vec2{500, -700}) {
		t.Errorf("position = %v, want (500,-700): goto must not wrap or clamp", pos)
	}
	if len(s.strokes) != before {
		t.Error("goto must not draw")
	}
}

func TestPenControlsDrawing(t *testing.T) {
	tt, s := newTestTurtle()
	tt.PenUp().Forward(10)
	if len(s.strokes) != 0 {
		t.Fatalf("strokes with pen up = %d, want 0", len(s.strokes))
	}
	tt.PenDown().Forward(10)
	if len(s.strokes) != 1 {
		t.Fatalf("strokes with pen down = %d, want 1", len(s.strokes))
	}
	if pos := tt.Position(); !nearVec(pos, Vec2{0, 20}) {
		t.Errorf("position = %v, want (0,20): pen-up movement still moves", pos)
	}
}

func TestPenToggle(t *testing.T) {
	tt, _ := newTestTurtle()
	if !tt.IsPenDown() {
		t.Fatal("pen should start down")
	}
	tt.PenToggle()
	if tt.IsPenDown() {
		t.Error("pen still down after toggle")
	}
	tt.PenToggle()
	if !tt.IsPenDown() {
		t.Error("pen still up after second toggle")
	}
}

func TestForwardStrokesWrappedSegments(t *testing.T) {
	tt, s := newTestTurtle()
	tt.Goto(90, 0).SetAngle(90)
	before := len(s.strokes)
	tt.Forward(30)

	segs := s.strokes[before:]
	if len(segs) != 2 {
		t.Fatalf("got %d strokes, want 2 (wrapped move)", len(segs))
	}
	if !nearVec(segs[0].from, Vec2{90, 0}) || !nearVec(segs[0].to, Vec2{100, 0}) {
		t.Errorf("stroke 0 = %v -> %v, want (90,0) -> (100,0)", segs[0].from, segs[0].to)
	}
	if !nearVec(segs[1].from, Vec2{-100, 0}) || !nearVec(segs[1].to, Vec2{-80, 0}) {
		t.Errorf("stroke 1 = %v -> %v, want (-100,0) -> (-80,0)", segs[1].from, segs[1].to)
	}
	if pos := tt.Position(); !nearVec(pos, Vec2{-80, 0}) {
		t.Errorf("position = %v, want (-80,0)", pos)
	}
}

func TestStrokeCarriesStyle(t *testing.T) {
	tt, s := newTestTurtle()
	red := RGB(1, 0, 0)
	tt.SetColor(red).SetWidth(3).SetLineCap(LineCapRound).Forward(10)

	if len(s.strokes) == 0 {
		t.Fatal("no strokes recorded")
	}
	st := s.strokes[len(s.strokes)-1]
	if st.color != red {
		t.Errorf("stroke color = %v, want %v", st.color, red)
	}
	if st.width != 3 {
		t.Errorf("stroke width = %f, want 3", st.width)
	}
	if st.lineCap != LineCapRound {
		t.Errorf("stroke cap = %v, want round", st.lineCap)
	}
}

func TestWidthNeverRejected(t *testing.T) {
	tt, s := newTestTurtle()
	tt.SetWidth(-5).Forward(10)
	if w := tt.Width(); w != -5 {
		t.Errorf("Width = %f, want -5 (clamping is the surface's job)", w)
	}
	if len(s.strokes) == 0 {
		t.Fatal("no strokes recorded")
	}
	if w := s.strokes[0].width; w != -5 {
		t.Errorf("surface saw width %f, want the raw -5", w)
	}
}

func TestSetShapeCopiesVertices(t *testing.T) {
	tt, _ := newTestTurtle()
	shape := []Vec2{{0, 5}, {-3, -3}, {3, -3}}
	tt.SetShape(shape)
	shape[0] = Vec2{99, 99}
	if got := tt.Shape()[0]; got != (Vec2{0, 5}) {
		t.Errorf("shape vertex = %v, want (0,5): SetShape must copy", got)
	}
}

func TestHideSuppressesGlyph(t *testing.T) {
	tt, s := newTestTurtle()
	tt.Hide()
	fills := s.fills
	tt.Forward(10) // glyph redraw after the move must be skipped
	if s.fills != fills {
		t.Errorf("fills = %d, want %d (hidden glyph must not be painted)", s.fills, fills)
	}
	tt.Show()
	if s.fills <= fills {
		t.Error("glyph not repainted after Show")
	}
}

func TestClearErasesSurfaceAndRedrawsGlyph(t *testing.T) {
	tt, s := newTestTurtle()
	tt.Forward(50)
	fills := s.fills
	tt.Clear()
	if s.clears != 1 {
		t.Fatalf("clears = %d, want 1", s.clears)
	}
	if s.fills != fills+1 {
		t.Errorf("fills = %d, want %d (glyph redrawn on the blank canvas)", s.fills, fills+1)
	}
}

func TestGlyphUsesSnapshotRestore(t *testing.T) {
	tt, s := newTestTurtle()
	snaps, restores := s.snapshots, s.restores
	tt.Forward(10)
	// The move erases the glyph via Restore and re-snapshots after drawing.
	if s.restores != restores+1 {
		t.Errorf("restores = %d, want %d", s.restores, restores+1)
	}
	if s.snapshots != snaps+1 {
		t.Errorf("snapshots = %d, want %d", s.snapshots, snaps+1)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	tt, s := newTestTurtle()
	tt.SetColor(RGB(0, 1, 0)).SetWidth(7).SetLineCap(LineCapSquare).
		Right(123).Goto(40, -40).PenUp().Hide().SetWrap(false)

	tt.Reset()

	if pos := tt.Position(); pos != (Vec2{0, 0}) {
		t.Errorf("position = %v, want origin", pos)
	}
	if a := tt.Angle(); a != 0 {
		t.Errorf("angle = %f, want 0", a)
	}
	if !tt.IsPenDown() {
		t.Error("pen should be down after reset")
	}
	if tt.IsHidden() {
		t.Error("turtle should be visible after reset")
	}
	if !tt.WrapEnabled() {
		t.Error("wrapping should be enabled after reset")
	}
	if w := tt.Width(); w != 1 {
		t.Errorf("width = %f, want 1", w)
	}
	if c := tt.Color(); c != ColorBlack {
		t.Errorf("color = %v, want black", c)
	}
	if s.clears == 0 {
		t.Error("reset must clear the canvas")
	}
	if tt.StepByStep() || tt.Speed() != 0 {
		t.Error("reset must return to immediate mode")
	}
}

func TestResetKeepsQueuedSteps(t *testing.T) {
	tt, _ := newTestTurtle()
	tt.SetSpeed(50)
	tt.Forward(10).Forward(10)
	tt.Stop() // back to immediate mode, steps still pending

	tt.Reset() // immediate: resets state, not the queue
	if got := tt.PendingSteps(); got != 2 {
		t.Errorf("pending = %d, want 2 (reset must not drop queued steps)", got)
	}
}

// applyScript issues a fixed mixed sequence of operations.
func applyScript(t *Turtle) {
	t.SetColor(RGB(0.2, 0.4, 0.6))
	t.SetWidth(2.5)
	t.SetLineCap(LineCapSquare)
	t.Forward(150) // wraps
	t.Right(45)
	t.Forward(60)
	t.PenUp()
	t.Backward(30)
	t.PenToggle()
	t.Goto(-20, 35)
	t.Left(100)
	t.SetShape(ShapeArrow)
	t.Hide()
	t.Forward(80)
	t.Show()
}

func TestImmediateAndQueuedModesConverge(t *testing.T) {
	imm, _ := newTestTurtle()
	applyScript(imm)

	paced, _ := newTestTurtle()
	paced.SetSpeed(25)
	applyScript(paced)
	if paced.PendingSteps() == 0 {
		t.Fatal("script was not queued")
	}
	paced.Drain()

	if !nearVec(imm.Position(), paced.Position()) {
		t.Errorf("positions diverge: immediate %v, paced %v", imm.Position(), paced.Position())
	}
	if math.Abs(imm.Angle()-paced.Angle()) > tol {
		t.Errorf("angles diverge: immediate %f, paced %f", imm.Angle(), paced.Angle())
	}
	if imm.IsPenDown() != paced.IsPenDown() {
		t.Error("pen states diverge")
	}
	if imm.IsHidden() != paced.IsHidden() {
		t.Error("visibility diverges")
	}
	if imm.Color() != paced.Color() {
		t.Error("colors diverge")
	}
	if imm.Width() != paced.Width() {
		t.Error("widths diverge")
	}
	if imm.Cap() != paced.Cap() {
		t.Error("line caps diverge")
	}
}

func TestListenerReentryRespectsDispatch(t *testing.T) {
	// An operation invoked from inside a replayed step must run immediately,
	// not re-queue behind the step that issued it.
	tt, _ := newTestTurtle()
	tt.SetSpeed(50)

	reacted := false
	tt.On(func(e EventType) {
		if e == EventForward && !reacted {
			reacted = true
			tt.Right(90) // issued mid-replay
		}
	})
	tt.Forward(10)

	tt.Update(0.05)
	if !reacted {
		t.Fatal("listener never fired")
	}
	if a := tt.Angle(); a != 90 {
		t.Errorf("angle = %f, want 90 (nested call must run in the same tick)", a)
	}
	if got := tt.PendingSteps(); got != 0 {
		t.Errorf("pending = %d, want 0", got)
	}
}

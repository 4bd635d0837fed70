package turtle

// Vec2 is a 2D point or vector in canvas coordinates: origin at the canvas
// center, X increasing right, Y increasing up.
type Vec2 struct {
	X, Y float64
}

// LineCap selects the stroke end-cap style. Values are passed through to the
// Surface unvalidated; a surface may treat unknown values as LineCapButt.
type LineCap uint8

const (
	LineCapButt   LineCap = iota // flat edge at the exact endpoint (default)
	LineCapRound                 // semicircular cap extending past the endpoint
	LineCapSquare                // square cap extending past the endpoint
)

// Turtle is a stateful drawing cursor. It owns all mutable turtle state and
// drives a Surface. Every public operation returns the receiver for chaining:
//
//	t.PenDown().Forward(50).Right(90).Forward(50)
//
// Operations run immediately unless step-by-step mode is active (SetSpeed
// with a positive interval), in which case each call is captured as a Step
// and replayed later, one per scheduler tick, in call order.
//
// A Turtle is single-threaded: the scheduler and direct calls share one
// logical thread, so no locking is involved.
type Turtle struct {
	surface      Surface
	halfW, halfH float64

	pos     Vec2
	angle   float64 // degrees, 0 = up (+Y), increasing clockwise; never normalized
	pen     bool
	hidden  bool
	wrap    bool
	color   Color
	width   float64
	lineCap LineCap
	shape   []Vec2

	speed      float64 // tick interval in milliseconds; <= 0 means immediate mode
	stepByStep bool
	inStep     bool // true while the scheduler replays a dequeued step

	queue StepQueue
	sched scheduler

	listeners []func(EventType)
	backup    Snapshot // surface pixels without the cursor glyph
}

// New creates a turtle at the origin, heading up, pen down, wrapping enabled,
// drawing onto the given surface. halfWidth and halfHeight are the canvas
// half-extents: the drawable area spans [-halfWidth, halfWidth] horizontally
// and [-halfHeight, halfHeight] vertically.
func New(surface Surface, halfWidth, halfHeight float64) *Turtle {
	t := &Turtle{
		surface: surface,
		halfW:   halfWidth,
		halfH:   halfHeight,
		pen:     true,
		wrap:    true,
		color:   ColorBlack,
		width:   1,
		shape:   ShapeTriangle,
	}
	t.sched.turtle = t
	t.drawGlyph()
	return t
}

// --- State accessors ---

// Position returns the turtle's current position.
func (t *Turtle) Position() Vec2 { return t.pos }

// Angle returns the current heading in degrees. The value is unbounded:
// repeated Left/Right calls accumulate and are intentionally never normalized
// to [0, 360).
func (t *Turtle) Angle() float64 { return t.angle }

// IsPenDown reports whether movement draws a stroke.
func (t *Turtle) IsPenDown() bool { return t.pen }

// IsHidden reports whether the cursor glyph is suppressed.
func (t *Turtle) IsHidden() bool { return t.hidden }

// WrapEnabled reports whether movement wraps at the canvas edges.
func (t *Turtle) WrapEnabled() bool { return t.wrap }

// Color returns the current pen color.
func (t *Turtle) Color() Color { return t.color }

// Width returns the current pen width as set, without render-time clamping.
func (t *Turtle) Width() float64 { return t.width }

// Cap returns the current stroke line cap.
func (t *Turtle) Cap() LineCap { return t.lineCap }

// Shape returns the cursor glyph vertices.
func (t *Turtle) Shape() []Vec2 { return t.shape }

// Speed returns the step interval in milliseconds (<= 0 means immediate mode).
func (t *Turtle) Speed() float64 { return t.speed }

// StepByStep reports whether calls are currently being queued rather than
// executed immediately.
func (t *Turtle) StepByStep() bool { return t.stepByStep }

// PendingSteps returns the number of queued, not-yet-replayed steps.
func (t *Turtle) PendingSteps() int { return t.queue.Len() }

// SetWrap toggles edge wrapping. Wrapping is not part of the step set: the
// change applies directly, even while step-by-step mode is active.
func (t *Turtle) SetWrap(enabled bool) *Turtle {
	t.wrap = enabled
	return t
}

// --- Dispatch ---

// runNow reports whether an operation should execute immediately. Calls made
// from inside a step replay always run now; otherwise step-by-step mode
// defers them.
func (t *Turtle) runNow() bool {
	return !t.stepByStep || t.inStep
}

// enqueue appends a step and makes sure the scheduler is armed to drain it.
func (t *Turtle) enqueue(s Step) *Turtle {
	t.queue.Push(s)
	t.sched.arm(t.speed)
	logger().Debug("turtle: step queued", "pending", t.queue.Len())
	return t
}

// --- Motion ---

// Forward moves the turtle dist units along its heading, stroking the path if
// the pen is down. If the path leaves the canvas and wrapping is enabled, it
// re-enters from the opposite edge.
func (t *Turtle) Forward(dist float64) *Turtle {
	if !t.runNow() {
		return t.enqueue(forwardStep{dist})
	}
	t.move(dist)
	t.emit(EventForward)
	return t
}

// Backward moves the turtle dist units against its heading. Equivalent to
// Forward(-dist); the heading itself does not change.
func (t *Turtle) Backward(dist float64) *Turtle {
	if !t.runNow() {
		return t.enqueue(backwardStep{dist})
	}
	t.move(-dist)
	t.emit(EventBackward)
	return t
}

// Left rotates the heading counterclockwise by deg degrees.
func (t *Turtle) Left(deg float64) *Turtle {
	if !t.runNow() {
		return t.enqueue(leftStep{deg})
	}
	t.angle -= deg
	t.refreshGlyph()
	t.emit(EventLeft)
	return t
}

// Right rotates the heading clockwise by deg degrees.
func (t *Turtle) Right(deg float64) *Turtle {
	if !t.runNow() {
		return t.enqueue(rightStep{deg})
	}
	t.angle += deg
	t.refreshGlyph()
	t.emit(EventRight)
	return t
}

// SetAngle sets the heading to deg degrees (0 = up, clockwise positive).
func (t *Turtle) SetAngle(deg float64) *Turtle {
	if !t.runNow() {
		return t.enqueue(setAngleStep{deg})
	}
	t.angle = deg
	t.refreshGlyph()
	t.emit(EventSetAngle)
	return t
}

// Goto places the turtle at (x, y) without drawing and without wrapping.
// There is no notion of an invalid position; coordinates outside the canvas
// are accepted.
func (t *Turtle) Goto(x, y float64) *Turtle {
	if !t.runNow() {
		return t.enqueue(gotoStep{x, y})
	}
	t.pos = Vec2{x, y}
	t.refreshGlyph()
	t.emit(EventGoto)
	return t
}

// --- Visibility and pen ---

// Hide suppresses the cursor glyph. Drawing is unaffected.
func (t *Turtle) Hide() *Turtle {
	if !t.runNow() {
		return t.enqueue(hideStep{})
	}
	t.hidden = true
	t.refreshGlyph()
	t.emit(EventHide)
	return t
}

// Show restores the cursor glyph.
func (t *Turtle) Show() *Turtle {
	if !t.runNow() {
		return t.enqueue(showStep{})
	}
	t.hidden = false
	t.refreshGlyph()
	t.emit(EventShow)
	return t
}

// PenUp lifts the pen: subsequent movement draws nothing.
func (t *Turtle) PenUp() *Turtle {
	if !t.runNow() {
		return t.enqueue(penUpStep{})
	}
	t.pen = false
	t.emit(EventPenUp)
	return t
}

// PenDown lowers the pen: subsequent movement strokes the path.
func (t *Turtle) PenDown() *Turtle {
	if !t.runNow() {
		return t.enqueue(penDownStep{})
	}
	t.pen = true
	t.emit(EventPenDown)
	return t
}

// PenToggle flips the pen state.
func (t *Turtle) PenToggle() *Turtle {
	if !t.runNow() {
		return t.enqueue(penToggleStep{})
	}
	t.pen = !t.pen
	t.emit(EventPenToggle)
	return t
}

// --- Canvas ---

// Clear erases the entire drawing surface. The cursor glyph is redrawn on the
// blank canvas afterward.
func (t *Turtle) Clear() *Turtle {
	if !t.runNow() {
		return t.enqueue(clearStep{})
	}
	t.clear()
	t.emit(EventClear)
	return t
}

func (t *Turtle) clear() {
	t.surface.Clear()
	t.backup = nil
	t.drawGlyph()
}

// Reset restores the turtle to its initial state: visible, wrapping enabled,
// pen down, immediate mode, width 1, default color, heading 0, position at
// the origin, and a cleared canvas. The sequence is atomic and every sub-step
// runs in immediate mode; queued steps from before the reset stay pending and
// replay only if step-by-step mode is re-enabled.
func (t *Turtle) Reset() *Turtle {
	if !t.runNow() {
		return t.enqueue(resetStep{})
	}
	t.reset()
	t.emit(EventReset)
	return t
}

func (t *Turtle) reset() {
	t.hidden = false
	t.wrap = true
	t.pen = true
	t.speed = 0
	t.stepByStep = false
	t.sched.stop()

	// With stepByStep forced off the sub-steps below run immediately even
	// when Reset itself was replayed from the queue.
	t.SetWidth(1)
	t.SetColor(ColorBlack)
	t.SetAngle(0)
	t.Goto(0, 0)
	t.Clear()
}

// --- Style ---

// SetColor sets the pen and glyph color.
func (t *Turtle) SetColor(c Color) *Turtle {
	if !t.runNow() {
		return t.enqueue(setColorStep{c})
	}
	t.color = c
	t.refreshGlyph()
	t.emit(EventSetColor)
	return t
}

// SetColorName sets the pen color from a hex string ("#RGB", "#RRGGBB",
// "#RRGGBBAA") or an SVG 1.1 color name. Malformed input resolves to opaque
// black rather than failing.
func (t *Turtle) SetColorName(spec string) *Turtle {
	return t.SetColor(ParseColor(spec))
}

// SetWidth sets the pen width. Non-positive values are accepted here and
// clamped by the surface at render time, never rejected.
func (t *Turtle) SetWidth(w float64) *Turtle {
	if !t.runNow() {
		return t.enqueue(setWidthStep{w})
	}
	t.width = w
	t.refreshGlyph()
	t.emit(EventSetWidth)
	return t
}

// SetShape replaces the cursor glyph vertices. The slice is copied. Shapes
// with fewer than three vertices draw no glyph.
func (t *Turtle) SetShape(shape []Vec2) *Turtle {
	if !t.runNow() {
		return t.enqueue(setShapeStep{shape})
	}
	t.shape = append([]Vec2(nil), shape...)
	t.refreshGlyph()
	t.emit(EventSetShape)
	return t
}

// SetLineCap sets the stroke end-cap style.
func (t *Turtle) SetLineCap(c LineCap) *Turtle {
	if !t.runNow() {
		return t.enqueue(setLineCapStep{c})
	}
	t.lineCap = c
	t.refreshGlyph()
	t.emit(EventSetLineCap)
	return t
}

// SetSpeed sets the step interval in milliseconds. A positive interval
// activates step-by-step mode: subsequent calls are queued and replayed one
// per interval as the host loop calls Update. Zero or negative restores
// immediate mode, stopping the scheduler but keeping queued steps pending.
func (t *Turtle) SetSpeed(ms float64) *Turtle {
	if !t.runNow() {
		return t.enqueue(setSpeedStep{ms})
	}
	t.setSpeed(ms)
	t.emit(EventSetSpeed)
	return t
}

func (t *Turtle) setSpeed(ms float64) {
	t.speed = ms
	t.stepByStep = ms > 0
	// Always stop first so two timers never drain the same queue.
	t.sched.stop()
	if t.stepByStep {
		t.sched.arm(ms)
	}
}

// --- Movement internals ---

// move strokes the (possibly wrapped) path for a signed distance and places
// the turtle at its true final resting point. The position update is a plain
// set; it does not re-enter the wrapping logic.
func (t *Turtle) move(dist float64) {
	segs, end := wrapLine(t.pos, t.angle, dist, t.halfW, t.halfH, t.wrap)
	t.eraseGlyph()
	if t.pen && dist != 0 {
		t.surface.SetStrokeColor(t.color)
		t.surface.SetLineWidth(t.width)
		t.surface.SetLineCap(t.lineCap)
		for _, s := range segs {
			t.surface.MoveTo(s.a)
			t.surface.LineTo(s.b)
			t.surface.Stroke()
		}
	}
	t.pos = end
	t.drawGlyph()
}

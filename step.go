package turtle

// Step is a single deferred operation, captured when a call arrives while
// step-by-step mode is active. Each variant carries exactly the arguments of
// the operation it replays, and is immutable once queued.
//
// Step is a sealed interface: the only implementations live in this package,
// one per public operation.
type Step interface {
	// apply replays the operation on t. The scheduler sets t.inStep around
	// the call, so the replayed operation runs in immediate mode.
	apply(t *Turtle)
}

type forwardStep struct{ dist float64 }
type backwardStep struct{ dist float64 }
type leftStep struct{ deg float64 }
type rightStep struct{ deg float64 }
type setAngleStep struct{ deg float64 }
type gotoStep struct{ x, y float64 }
type hideStep struct{}
type showStep struct{}
type penUpStep struct{}
type penDownStep struct{}
type penToggleStep struct{}
type resetStep struct{}
type clearStep struct{}
type setColorStep struct{ c Color }
type setWidthStep struct{ w float64 }
type setShapeStep struct{ shape []Vec2 }
type setSpeedStep struct{ ms float64 }
type setLineCapStep struct{ c LineCap }

func (s forwardStep) apply(t *Turtle)    { t.Forward(s.dist) }
func (s backwardStep) apply(t *Turtle)   { t.Backward(s.dist) }
func (s leftStep) apply(t *Turtle)       { t.Left(s.deg) }
func (s rightStep) apply(t *Turtle)      { t.Right(s.deg) }
func (s setAngleStep) apply(t *Turtle)   { t.SetAngle(s.deg) }
func (s gotoStep) apply(t *Turtle)       { t.Goto(s.x, s.y) }
func (hideStep) apply(t *Turtle)         { t.Hide() }
func (showStep) apply(t *Turtle)         { t.Show() }
func (penUpStep) apply(t *Turtle)        { t.PenUp() }
func (penDownStep) apply(t *Turtle)      { t.PenDown() }
func (penToggleStep) apply(t *Turtle)    { t.PenToggle() }
func (resetStep) apply(t *Turtle)        { t.Reset() }
func (clearStep) apply(t *Turtle)        { t.Clear() }
func (s setColorStep) apply(t *Turtle)   { t.SetColor(s.c) }
func (s setWidthStep) apply(t *Turtle)   { t.SetWidth(s.w) }
func (s setShapeStep) apply(t *Turtle)   { t.SetShape(s.shape) }
func (s setSpeedStep) apply(t *Turtle)   { t.SetSpeed(s.ms) }
func (s setLineCapStep) apply(t *Turtle) { t.SetLineCap(s.c) }

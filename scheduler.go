package turtle

// scheduler paces the replay of queued steps: one step per elapsed interval.
//
// There is no background timer or goroutine. Like the rest of the package it
// is frame-driven: the host loop calls Turtle.Update with the elapsed time
// and the scheduler accumulates until a tick is due. It arms itself lazily
// when a step is queued in step-by-step mode and disarms as soon as the queue
// runs dry, so an idle turtle costs nothing per frame.
type scheduler struct {
	turtle   *Turtle
	interval float64 // seconds between ticks
	acc      float64
	armed    bool
}

// tickEps absorbs accumulator rounding so a tick that is due within
// floating-point noise of the interval still fires. Repeated `acc -= interval`
// subtraction leaves residues around 1e-17 per step; without the epsilon a dt
// covering exactly N intervals can fire only N-1 ticks.
const tickEps = 1e-9

// arm starts the tick accumulator if it is not already running. speedMS is
// the tick interval in milliseconds; non-positive intervals never arm.
func (s *scheduler) arm(speedMS float64) {
	if s.armed || speedMS <= 0 {
		return
	}
	s.interval = speedMS / 1000
	s.acc = 0
	s.armed = true
	logger().Debug("turtle: scheduler armed", "interval_ms", speedMS)
}

// stop disarms the scheduler. Queued steps are kept: replay resumes when
// step-by-step mode is re-enabled.
func (s *scheduler) stop() {
	if s.armed {
		logger().Debug("turtle: scheduler stopped")
	}
	s.armed = false
	s.acc = 0
}

// update advances the accumulator by dt seconds and fires every tick that
// became due, each replaying exactly one step.
func (s *scheduler) update(dt float64) {
	if !s.armed {
		return
	}
	s.acc += dt
	for s.armed && s.acc+tickEps >= s.interval {
		s.acc -= s.interval
		s.tick()
	}
}

// tick replays one queued step. An empty queue releases the accumulator so
// no further ticks fire until a new step is pushed.
func (s *scheduler) tick() {
	step, ok := s.turtle.queue.Pop()
	if !ok {
		s.stop()
		return
	}
	s.turtle.replay(step)
}

// Update advances the turtle's step scheduler by dt seconds. Call this once
// per frame from the host loop; it is a no-op while the turtle is idle or in
// immediate mode.
func (t *Turtle) Update(dt float64) {
	t.sched.update(dt)
}

// Stop halts step replay and returns the turtle to immediate mode. Queued
// steps are not discarded: re-enabling step-by-step mode with SetSpeed
// resumes replay where it left off. Unlike SetSpeed, Stop is not part of the
// step set — it always applies directly, even mid-animation.
func (t *Turtle) Stop() *Turtle {
	t.speed = 0
	t.stepByStep = false
	t.sched.stop()
	return t
}

// Drain synchronously replays every queued step in call order and stops the
// scheduler. The final state is identical to having run the same operations
// in immediate mode.
func (t *Turtle) Drain() *Turtle {
	for {
		step, ok := t.queue.Pop()
		if !ok {
			break
		}
		t.replay(step)
	}
	t.sched.stop()
	return t
}

// replay executes one step in immediate mode. inStep short-circuits the
// dispatch rule for the duration of the call, so nested operations issued by
// the step run now instead of re-queuing behind it.
func (t *Turtle) replay(step Step) {
	t.inStep = true
	step.apply(t)
	t.inStep = false
}

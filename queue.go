package turtle

// StepQueue is an unbounded FIFO of pending steps. Insertion order is
// execution order: steps are never reordered, deduplicated, or dropped.
// The queue is owned by a single Turtle and shares its single-threaded model,
// so there is no locking.
type StepQueue struct {
	steps []Step
}

// Push appends a step to the back of the queue.
func (q *StepQueue) Push(s Step) {
	q.steps = append(q.steps, s)
}

// Pop removes and returns the oldest step. The second return value is false
// when the queue is empty.
func (q *StepQueue) Pop() (Step, bool) {
	if len(q.steps) == 0 {
		return nil, false
	}
	s := q.steps[0]
	q.steps[0] = nil
	q.steps = q.steps[1:]
	return s, true
}

// Peek returns the oldest step without removing it.
func (q *StepQueue) Peek() (Step, bool) {
	if len(q.steps) == 0 {
		return nil, false
	}
	return q.steps[0], true
}

// Len returns the number of pending steps.
func (q *StepQueue) Len() int { return len(q.steps) }

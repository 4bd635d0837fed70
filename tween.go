package turtle

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to two turtle pose values over time. Create one via
// Glide or Turn and call Update(dt) each frame alongside Turtle.Update.
// Pose writes route through the normal operations (Goto, SetAngle), so they
// follow the same dispatch rule as direct calls.
//
// There is no global animation manager — users call Update themselves.
type Tween struct {
	tweens [2]*gween.Tween
	count  int
	target *Turtle
	apply  func(t *Turtle, vals [2]float32)
	Done   bool
}

// Update advances the tween by dt seconds and applies the interpolated pose.
func (g *Tween) Update(dt float32) {
	if g.Done {
		return
	}
	var vals [2]float32
	allDone := true
	for i := 0; i < g.count; i++ {
		v, finished := g.tweens[i].Update(dt)
		vals[i] = v
		if !finished {
			allDone = false
		}
	}
	g.apply(g.target, vals)
	g.Done = allDone
}

// Glide creates a Tween that moves the turtle to (x, y) over duration seconds
// using the easing function. Movement goes through Goto, so no line is drawn
// regardless of pen state.
func Glide(t *Turtle, toX, toY float64, duration float32, fn ease.TweenFunc) *Tween {
	pos := t.Position()
	g := &Tween{count: 2, target: t}
	g.tweens[0] = gween.New(float32(pos.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(pos.Y), float32(toY), duration, fn)
	g.apply = func(t *Turtle, v [2]float32) {
		t.Goto(float64(v[0]), float64(v[1]))
	}
	return g
}

// Turn creates a Tween that rotates the heading to toAngle degrees over
// duration seconds using the easing function.
func Turn(t *Turtle, toAngle float64, duration float32, fn ease.TweenFunc) *Tween {
	g := &Tween{count: 1, target: t}
	g.tweens[0] = gween.New(float32(t.Angle()), float32(toAngle), duration, fn)
	g.apply = func(t *Turtle, v [2]float32) {
		t.SetAngle(float64(v[0]))
	}
	return g
}

// Glide — eased turtle motion between waypoints.
//
// The turtle glides between random waypoints with an out-cubic ease, stamping
// a small star at each stop. Demonstrates: Glide/Turn tweens, pen control,
// and mixing tweened pose updates with immediate drawing.
package main

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	turtle "github.com/joker876/simple-turtle"
)

const (
	screenW = 480
	screenH = 480
	margin  = 60
)

type game struct {
	canvas *turtle.Canvas
	t      *turtle.Turtle
	glide  *turtle.Tween
}

func newGame() *game {
	canvas := turtle.NewCanvas(screenW, screenH)
	t := turtle.New(canvas, screenW/2, screenH/2)
	t.SetColorName("darkorange").SetWidth(1.5).PenUp()
	g := &game{canvas: canvas, t: t}
	g.nextWaypoint()
	return g
}

// nextWaypoint stamps a star at the current position and starts a glide
// toward a fresh random target.
func (g *game) nextWaypoint() {
	g.t.PenDown()
	for i := 0; i < 5; i++ {
		g.t.Forward(18).Backward(18).Right(72)
	}
	g.t.PenUp()

	x := float64(rand.IntN(screenW-2*margin) - (screenW/2 - margin))
	y := float64(rand.IntN(screenH-2*margin) - (screenH/2 - margin))
	g.glide = turtle.Glide(g.t, x, y, 1.2, ease.OutCubic)
}

func (g *game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.glide.Update(dt)
	if g.glide.Done {
		g.nextWaypoint()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)
}

func (g *game) Layout(int, int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("turtle: glide")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}

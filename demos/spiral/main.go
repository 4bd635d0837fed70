// Spiral — a wrapped square spiral drawn step by step.
//
// The turtle walks a growing square spiral fast enough to run off the canvas;
// with wrapping enabled each stroke re-enters from the opposite edge, filling
// the screen with a woven pattern. Demonstrates: step-by-step pacing via
// SetSpeed/Update, edge wrapping, color cycling, and Canvas compositing.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	turtle "github.com/joker876/simple-turtle"
)

const (
	screenW = 640
	screenH = 640

	stepMS   = 20  // pacing interval per queued step
	turns    = 160 // spiral arms
	growth   = 7.0 // length added per arm
	turnDeg  = 89.5
	penWidth = 2.0
)

var palette = []string{
	"tomato", "gold", "mediumseagreen", "steelblue", "orchid",
}

type game struct {
	canvas *turtle.Canvas
	t      *turtle.Turtle
}

func newGame() *game {
	canvas := turtle.NewCanvas(screenW, screenH)
	t := turtle.New(canvas, screenW/2, screenH/2)

	t.SetWidth(penWidth).SetLineCap(turtle.LineCapRound)
	t.SetSpeed(stepMS)

	// Everything below is queued and replayed one step per interval.
	for i := 0; i < turns; i++ {
		t.SetColorName(palette[i%len(palette)])
		t.Forward(growth * float64(i)).Right(turnDeg)
	}

	return &game{canvas: canvas, t: t}
}

func (g *game) Update() error {
	g.t.Update(1.0 / float64(ebiten.TPS()))
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
	ebiten.SetWindowTitle("turtle: spiral")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}

// Package turtle is a LOGO-style turtle graphics engine for [Ebitengine].
//
// A [Turtle] is a stateful cursor that walks a 2D canvas, leaving strokes
// behind. Operations chain, and the coordinate system is canvas-centered with
// Y pointing up and heading 0 pointing up, increasing clockwise:
//
//	canvas := turtle.NewCanvas(400, 400)
//	t := turtle.New(canvas, 200, 200)
//	t.SetColorName("mediumpurple").SetWidth(2)
//	for i := 0; i < 4; i++ {
//		t.Forward(80).Right(90)
//	}
//
// # Step-by-step mode
//
// By default every operation takes effect immediately. SetSpeed with a
// positive interval (in milliseconds) switches the turtle to step-by-step
// mode: subsequent calls are queued and replayed one per interval, producing
// an animation. Drive the replay from your game loop:
//
//	t.SetSpeed(50)
//	t.Forward(100).Right(90).Forward(100) // queued, nothing drawn yet
//
//	// in ebiten's Update:
//	t.Update(1.0 / float64(ebiten.TPS()))
//
// Replay preserves call order exactly, and the final state is identical to
// running the same calls immediately. [Turtle.Drain] replays everything
// synchronously. Setting the speed back to zero pauses the replay without
// discarding queued steps.
//
// # Edges and wrapping
//
// The canvas is optionally toroidal. With wrapping enabled (the default), a
// move that crosses a canvas edge continues from the opposite edge; the
// stroke is split into the visible sub-segments. SetWrap(false) lets moves
// run off-canvas instead.
//
// # Surfaces
//
// Drawing goes through the [Surface] interface. [Canvas] is the ebiten-backed
// implementation; [Canvas.Image] exposes the backing image for compositing,
// and [Canvas.SavePNG] exports the drawing. Any immediate-mode backend with
// snapshot/restore can stand in, which is also how the package is tested.
//
// [Ebitengine]: https://ebitengine.org
package turtle

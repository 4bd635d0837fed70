package turtle

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteSubImage is the solid-white texture source for color-only triangles.
// A sub-image of a slightly larger image avoids bleeding at the edges when
// anti-aliasing samples neighboring texels.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Canvas implements Surface on an ebiten.Image. Turtle coordinates (origin at
// the center, Y up) are mapped to device pixels (origin top-left, Y down).
// Paths are tessellated with ebiten's vector package and submitted as a
// single DrawTriangles call per Stroke or Fill.
type Canvas struct {
	img  *ebiten.Image
	w, h int

	path    vector.Path
	hasPath bool

	strokeColor Color
	fillColor   Color
	lineWidth   float32
	lineCap     vector.LineCap
	antialias   bool
}

// NewCanvas creates a canvas backed by a fresh transparent image of the given
// pixel dimensions.
func NewCanvas(width, height int) *Canvas {
	return NewCanvasForImage(ebiten.NewImage(width, height))
}

// NewCanvasForImage wraps an existing image, drawing over its current
// contents.
func NewCanvasForImage(img *ebiten.Image) *Canvas {
	b := img.Bounds()
	return &Canvas{
		img:       img,
		w:         b.Dx(),
		h:         b.Dy(),
		lineWidth: 1,
		antialias: true,
	}
}

// Image returns the backing image, for compositing onto the screen.
func (c *Canvas) Image() *ebiten.Image { return c.img }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// SetAntiAlias toggles anti-aliased tessellation. Enabled by default.
func (c *Canvas) SetAntiAlias(enabled bool) { c.antialias = enabled }

// device maps a canvas-centered Y-up point to device pixels.
func (c *Canvas) device(p Vec2) (float32, float32) {
	return float32(float64(c.w)/2 + p.X), float32(float64(c.h)/2 - p.Y)
}

// MoveTo starts a new subpath at p.
func (c *Canvas) MoveTo(p Vec2) {
	x, y := c.device(p)
	c.path.MoveTo(x, y)
	c.hasPath = true
}

// LineTo extends the current subpath to p.
func (c *Canvas) LineTo(p Vec2) {
	x, y := c.device(p)
	c.path.LineTo(x, y)
}

// SetStrokeColor sets the color used by Stroke.
func (c *Canvas) SetStrokeColor(col Color) { c.strokeColor = col }

// SetFillColor sets the color used by Fill.
func (c *Canvas) SetFillColor(col Color) { c.fillColor = col }

// SetLineWidth sets the stroke width in pixels. The turtle never rejects a
// width, so the clamp lives here: non-positive values fall back to 1.
func (c *Canvas) SetLineWidth(w float64) {
	if w <= 0 {
		w = 1
	}
	c.lineWidth = float32(w)
}

// SetLineCap sets the stroke end-cap style. Unknown values draw butt caps.
func (c *Canvas) SetLineCap(lc LineCap) {
	switch lc {
	case LineCapRound:
		c.lineCap = vector.LineCapRound
	case LineCapSquare:
		c.lineCap = vector.LineCapSquare
	default:
		c.lineCap = vector.LineCapButt
	}
}

// Stroke draws the accumulated path as a line and discards the path.
func (c *Canvas) Stroke() {
	if !c.hasPath {
		return
	}
	opts := &vector.StrokeOptions{
		Width:   c.lineWidth,
		LineCap: c.lineCap,
	}
	vs, is := c.path.AppendVerticesAndIndicesForStroke(nil, nil, opts)
	c.submit(vs, is, c.strokeColor)
	c.clearPath()
}

// Fill closes and fills the accumulated path and discards it.
func (c *Canvas) Fill() {
	if !c.hasPath {
		return
	}
	c.path.Close()
	vs, is := c.path.AppendVerticesAndIndicesForFilling(nil, nil)
	c.submit(vs, is, c.fillColor)
	c.clearPath()
}

// submit colors the vertices and issues one DrawTriangles call against the
// white pixel source.
func (c *Canvas) submit(vs []ebiten.Vertex, is []uint16, col Color) {
	// Premultiplied, as DrawTriangles expects.
	r := float32(col.R * col.A)
	g := float32(col.G * col.A)
	b := float32(col.B * col.A)
	a := float32(col.A)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	c.img.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: c.antialias,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (c *Canvas) clearPath() {
	c.path = vector.Path{}
	c.hasPath = false
}

// Clear erases the canvas to transparent.
func (c *Canvas) Clear() {
	c.img.Clear()
	c.clearPath()
}

// Snapshot captures the canvas pixels.
func (c *Canvas) Snapshot() Snapshot {
	pix := make([]byte, 4*c.w*c.h)
	c.img.ReadPixels(pix)
	return pix
}

// Restore rewrites the canvas from a snapshot previously taken on a canvas of
// the same dimensions. Foreign snapshots are ignored.
func (c *Canvas) Restore(snap Snapshot) {
	pix, ok := snap.([]byte)
	if !ok || len(pix) != 4*c.w*c.h {
		return
	}
	c.img.WritePixels(pix)
}

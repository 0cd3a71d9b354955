// Package htree draws an H-tree fractal as a stream of line and circle
// commands sent to a Painter.
package htree

import (
	"image/color"
	"math"
)

const (
	// MinDepth is the smallest depth the renderer draws.
	MinDepth = 1
	// MaxDepth is the depth ceiling and the base of the stroke thickness curve.
	MaxDepth = 16
)

var invSqrt2 = float32(1 / math.Sqrt2)

// Point is a position on the drawing surface.
type Point struct {
	X, Y float32
}

// Painter receives drawing commands in paint order.
type Painter interface {
	Line(from, to Point, width float32, c color.Color)
	Circle(center Point, radius float32, fill color.Color)
}

// Palette holds the colours of a branch.
type Palette struct {
	Near   color.Color // left or top half-segment
	Far    color.Color // right or bottom half-segment
	Marker color.Color // outer dot
	Pip    color.Color // inner dot
}

// DefaultPalette returns red/green segments with black and yellow markers.
func DefaultPalette() Palette {
	return Palette{
		Near:   color.NRGBA{R: 0xff, A: 0xff},
		Far:    color.NRGBA{G: 0xff, A: 0xff},
		Marker: color.NRGBA{A: 0xff},
		Pip:    color.NRGBA{R: 0xff, G: 0xff, A: 0xff},
	}
}

// Renderer draws an H-tree down to Depth levels.
type Renderer struct {
	Depth   int
	Palette Palette
}

// NewRenderer creates a Renderer with the default palette and a clamped depth.
func NewRenderer(depth int) Renderer {
	return Renderer{Depth: Clamp(depth), Palette: DefaultPalette()}
}

// Draw emits the full fractal centred on center, with root segment length.
func (r Renderer) Draw(p Painter, center Point, length float32) {
	b := branch{p: p, depth: Clamp(r.Depth), palette: r.Palette}
	b.horizontal(center, length, 0)
}

type branch struct {
	p       Painter
	depth   int
	palette Palette
}

func (b *branch) horizontal(c Point, length float32, level int) {
	if level >= b.depth {
		return
	}
	x1 := c.X - length/2
	x2 := c.X + length/2
	w := Thickness(level)
	b.p.Line(Point{x1, c.Y}, c, w, b.palette.Near)
	b.p.Line(c, Point{x2, c.Y}, w, b.palette.Far)
	b.vertical(Point{x1, c.Y}, length*invSqrt2, level+1)
	b.vertical(Point{x2, c.Y}, length*invSqrt2, level+1)
	b.markers(c, w)
}

func (b *branch) vertical(c Point, length float32, level int) {
	if level >= b.depth {
		return
	}
	y1 := c.Y - length/2
	y2 := c.Y + length/2
	w := Thickness(level)
	b.p.Line(Point{c.X, y1}, c, w, b.palette.Near)
	b.p.Line(c, Point{c.X, y2}, w, b.palette.Far)
	b.horizontal(Point{c.X, y1}, length*invSqrt2, level+1)
	b.horizontal(Point{c.X, y2}, length*invSqrt2, level+1)
	b.markers(c, w)
}

func (b *branch) markers(c Point, w float32) {
	b.p.Circle(c, w, b.palette.Marker)
	b.p.Circle(c, w/2, b.palette.Pip)
}

// Thickness returns the stroke width used at level, never below 1.
func Thickness(level int) float32 {
	return max(1, float32(MaxDepth-level)/4)
}

// SegmentLength returns the segment length after level halvings by √2.
func SegmentLength(initial float32, level int) float32 {
	return initial * float32(math.Pow(1/math.Sqrt2, float64(level)))
}

// Frame returns the centre of a width x height surface and the root
// segment length that fits it.
func Frame(width, height float32) (Point, float32) {
	return Point{X: width / 2, Y: height / 2}, min(width, height) * invSqrt2
}

// Clamp constrains depth to [MinDepth, MaxDepth].
func Clamp(depth int) int {
	switch {
	case depth < MinDepth:
		return MinDepth
	case depth > MaxDepth:
		return MaxDepth
	}
	return depth
}

// Stats counts the primitives emitted for a depth.
type Stats struct {
	Branches int
	Lines    int
	Circles  int
}

// Count reports how many primitives Draw emits at depth.
func Count(depth int) Stats {
	n := 1<<Clamp(depth) - 1
	return Stats{Branches: n, Lines: 2 * n, Circles: 2 * n}
}

package renderer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/Akaiko1/htree-viewer/internal/htree"
)

// CanvasPainter collects Fyne canvas objects for each drawing command.
type CanvasPainter struct {
	Objects []fyne.CanvasObject
}

// Line appends a canvas.Line.
func (p *CanvasPainter) Line(from, to htree.Point, width float32, c color.Color) {
	line := canvas.NewLine(c)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(from.X, from.Y)
	line.Position2 = fyne.NewPos(to.X, to.Y)
	p.Objects = append(p.Objects, line)
}

// Circle appends a filled canvas.Circle without a stroke.
func (p *CanvasPainter) Circle(center htree.Point, radius float32, fill color.Color) {
	circle := canvas.NewCircle(fill)
	circle.Position1 = fyne.NewPos(center.X-radius, center.Y-radius)
	circle.Position2 = fyne.NewPos(center.X+radius, center.Y+radius)
	p.Objects = append(p.Objects, circle)
}

// Render replaces the collected objects with a fresh drawing of tree.
func (p *CanvasPainter) Render(tree htree.Renderer, width, height float32) {
	s := htree.Count(tree.Depth)
	p.Objects = make([]fyne.CanvasObject, 0, s.Lines+s.Circles)
	drawFramed(p, tree, width, height)
}

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/htree-viewer/internal/htree"
	"github.com/Akaiko1/htree-viewer/internal/renderer"
)

const minViewSize = 200

// View is a widget that draws an H-tree filling its current size.
type View struct {
	widget.BaseWidget

	tree       htree.Renderer
	background color.Color
}

// NewView creates a View for tree drawn over background.
func NewView(tree htree.Renderer, background color.Color) *View {
	tree.Depth = htree.Clamp(tree.Depth)
	v := &View{tree: tree, background: background}
	v.ExtendBaseWidget(v)
	return v
}

// Tree returns the renderer the view currently draws with.
func (v *View) Tree() htree.Renderer {
	return v.tree
}

// Depth returns the current recursion depth.
func (v *View) Depth() int {
	return v.tree.Depth
}

// SetDepth changes the recursion depth and redraws.
func (v *View) SetDepth(depth int) {
	depth = htree.Clamp(depth)
	if depth == v.tree.Depth {
		return
	}
	v.tree.Depth = depth
	v.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (v *View) CreateRenderer() fyne.WidgetRenderer {
	return &viewRenderer{
		view:       v,
		background: canvas.NewRectangle(v.background),
	}
}

type viewRenderer struct {
	view       *View
	background *canvas.Rectangle
	painter    renderer.CanvasPainter
	objects    []fyne.CanvasObject
	size       fyne.Size
}

func (r *viewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(minViewSize, minViewSize)
}

func (r *viewRenderer) Destroy() {}

// Layout redraws only when the size actually changed.
func (r *viewRenderer) Layout(size fyne.Size) {
	if r.objects != nil && r.size == size {
		return
	}
	r.size = size
	r.redraw()
}

func (r *viewRenderer) Refresh() {
	r.redraw()
	canvas.Refresh(r.view)
}

func (r *viewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *viewRenderer) redraw() {
	r.background.FillColor = r.view.background
	r.background.Resize(r.size)

	r.painter.Render(r.view.tree, r.size.Width, r.size.Height)
	r.objects = append([]fyne.CanvasObject{r.background}, r.painter.Objects...)
}

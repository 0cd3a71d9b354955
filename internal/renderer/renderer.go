// Package renderer provides htree.Painter implementations for the Fyne
// canvas, raster images and SVG documents.
package renderer

import (
	"image/color"

	"github.com/Akaiko1/htree-viewer/internal/htree"
)

// FrameRenderer draws an H-tree scaled to fit a surface.
type FrameRenderer interface {
	Render(tree htree.Renderer, width, height float32)
}

// drawFramed centres the tree on a width x height surface and draws it into p.
func drawFramed(p htree.Painter, tree htree.Renderer, width, height float32) {
	center, length := htree.Frame(width, height)
	tree.Draw(p, center, length)
}

// RenderImage rasterizes tree onto a new width x height image.
func RenderImage(tree htree.Renderer, width, height int, bg color.Color) *RasterPainter {
	p := NewRasterPainter(width, height, bg)
	p.Render(tree, float32(width), float32(height))
	return p
}

// RenderSVG returns tree as a standalone SVG document.
func RenderSVG(tree htree.Renderer, width, height int, bg color.Color) string {
	p := NewSVGPainter(width, height, bg)
	p.Render(tree, float32(width), float32(height))
	return p.String()
}

var (
	_ htree.Painter = (*CanvasPainter)(nil)
	_ htree.Painter = (*RasterPainter)(nil)
	_ htree.Painter = (*SVGPainter)(nil)

	_ FrameRenderer = (*CanvasPainter)(nil)
	_ FrameRenderer = (*RasterPainter)(nil)
	_ FrameRenderer = (*SVGPainter)(nil)
)

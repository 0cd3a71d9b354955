package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/Akaiko1/htree-viewer/internal/htree"
)

const miterLimit = 4

// RasterPainter rasterizes drawing commands onto an RGBA image.
type RasterPainter struct {
	img     *image.RGBA
	stroker *rasterx.Stroker
	filler  *rasterx.Filler
}

// NewRasterPainter creates a width x height image filled with bg.
func NewRasterPainter(width, height int, bg color.Color) *RasterPainter {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	return &RasterPainter{
		img:     img,
		stroker: rasterx.NewStroker(width, height, scanner),
		filler:  rasterx.NewFiller(width, height, scanner),
	}
}

// Line strokes a butt-capped segment.
func (p *RasterPainter) Line(from, to htree.Point, width float32, c color.Color) {
	s := p.stroker
	s.Clear()
	s.SetStroke(toFixed(width), toFixed(miterLimit), rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel)
	s.Start(rasterx.ToFixedP(float64(from.X), float64(from.Y)))
	s.Line(rasterx.ToFixedP(float64(to.X), float64(to.Y)))
	s.Stop(false)
	s.SetColor(c)
	s.Draw()
}

// Circle fills a disc.
func (p *RasterPainter) Circle(center htree.Point, radius float32, fill color.Color) {
	f := p.filler
	f.Clear()
	rasterx.AddCircle(float64(center.X), float64(center.Y), float64(radius), f)
	f.SetColor(fill)
	f.Draw()
}

// Render draws tree scaled to width x height.
func (p *RasterPainter) Render(tree htree.Renderer, width, height float32) {
	drawFramed(p, tree, width, height)
}

// Image returns the rasterized image.
func (p *RasterPainter) Image() *image.RGBA {
	return p.img
}

// EncodePNG writes the image to w as PNG.
func (p *RasterPainter) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

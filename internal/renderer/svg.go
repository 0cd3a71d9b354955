package renderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/Akaiko1/htree-viewer/internal/htree"
)

// SVGPainter writes drawing commands as SVG elements.
type SVGPainter struct {
	width, height int
	background    color.Color
	body          bytes.Buffer
	canvas        *svg.SVG
}

// NewSVGPainter creates an SVG document of width x height with a bg backdrop.
func NewSVGPainter(width, height int, bg color.Color) *SVGPainter {
	p := &SVGPainter{width: width, height: height, background: bg}
	p.canvas = svg.New(&p.body)
	return p
}

// Line writes a butt-capped <line> element.
func (p *SVGPainter) Line(from, to htree.Point, width float32, c color.Color) {
	p.canvas.Line(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y),
		paint("stroke", c), `stroke-width="`+num(width)+`"`)
}

// Circle writes a filled <circle> element.
func (p *SVGPainter) Circle(center htree.Point, radius float32, fill color.Color) {
	p.canvas.Circle(float64(center.X), float64(center.Y), float64(radius), paint("fill", fill))
}

// Render appends a drawing of tree scaled to width x height.
func (p *SVGPainter) Render(tree htree.Renderer, width, height float32) {
	drawFramed(p, tree, width, height)
}

// String returns the complete SVG document. It can be called repeatedly.
func (p *SVGPainter) String() string {
	var b bytes.Buffer
	doc := svg.New(&b)
	doc.Start(float64(p.width), float64(p.height))
	doc.Rect(0, 0, float64(p.width), float64(p.height), paint("fill", p.background))
	b.Write(p.body.Bytes())
	doc.End()
	return b.String()
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

// paint renders c as an SVG paint attribute plus opacity when translucent.
func paint(attr string, c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return attr + `="none"`
	}
	a := color.NRGBAModel.Convert(c).(color.NRGBA).A
	if a == 0xff {
		return fmt.Sprintf(`%s="%s"`, attr, cf.Hex())
	}
	return fmt.Sprintf(`%s="%s" %s-opacity="%s"`, attr, cf.Hex(), attr, strconv.FormatFloat(float64(a)/0xff, 'f', 3, 64))
}

package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Akaiko1/htree-viewer/internal/htree"
)

func TestViewDrawsCurrentDepth(t *testing.T) {
	test.NewTempApp(t)

	v := NewView(htree.NewRenderer(1), color.White)
	v.Resize(fyne.NewSize(200, 200))

	objects := test.WidgetRenderer(v).Objects()
	require.Len(t, objects, 5)

	bg, ok := objects[0].(*canvas.Rectangle)
	require.True(t, ok)
	assert.Equal(t, color.White, bg.FillColor)
	assert.Equal(t, fyne.NewSize(200, 200), bg.Size())

	v.SetDepth(3)
	assert.Equal(t, 3, v.Depth())
	assert.Len(t, test.WidgetRenderer(v).Objects(), 1+28)
}

func TestViewClampsDepth(t *testing.T) {
	test.NewTempApp(t)

	v := NewView(htree.Renderer{Depth: 0, Palette: htree.DefaultPalette()}, color.White)
	assert.Equal(t, htree.MinDepth, v.Depth())

	v.SetDepth(99)
	assert.Equal(t, htree.MaxDepth, v.Depth())
}

func TestViewRecentresOnResize(t *testing.T) {
	test.NewTempApp(t)

	v := NewView(htree.NewRenderer(1), color.White)
	v.Resize(fyne.NewSize(200, 100))

	marker := test.WidgetRenderer(v).Objects()[3].(*canvas.Circle)
	assert.Equal(t, fyne.NewPos(96, 46), marker.Position1)

	v.Resize(fyne.NewSize(400, 300))
	marker = test.WidgetRenderer(v).Objects()[3].(*canvas.Circle)
	assert.Equal(t, fyne.NewPos(196, 146), marker.Position1)
}

func TestViewMinSize(t *testing.T) {
	test.NewTempApp(t)

	v := NewView(htree.NewRenderer(2), color.White)
	assert.Equal(t, fyne.NewSize(minViewSize, minViewSize), v.MinSize())
}

package ui

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/htree-viewer/internal/clipboard"
	"github.com/Akaiko1/htree-viewer/internal/config"
	"github.com/Akaiko1/htree-viewer/internal/htree"
	"github.com/Akaiko1/htree-viewer/internal/renderer"
)

const (
	// UI Constants
	appID      = "io.github.akaiko1.htree-viewer"
	appTitle   = "H-Tree Fractal"
	levelsText = "Levels:"

	// Preferences
	depthPrefKey = "depth"

	// File operations
	defaultFileExt = ".png"
	timeFormat     = "2006-01-02_15-04-05"

	// Messages
	msgExportSuccess = "Fractal exported successfully!"
	msgCopySuccess   = "SVG copied to clipboard!"
)

// HTreeApp is the desktop window showing the fractal and its depth slider.
type HTreeApp struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config

	// Services
	clipboard clipboard.SVGCopier

	// UI components
	view       *View
	slider     *widget.Slider
	levelLabel *widget.Label

	// Drawing state - UI thread only, no synchronization needed
	palette    htree.Palette
	background color.Color
}

// NewHTreeApp creates an HTreeApp with the given configuration.
func NewHTreeApp(cfg *config.Config) (*HTreeApp, error) {
	return newHTreeApp(app.NewWithID(appID), cfg)
}

func newHTreeApp(fyneApp fyne.App, cfg *config.Config) (*HTreeApp, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	tree, background, err := cfg.Renderer()
	if err != nil {
		return nil, fmt.Errorf("failed to build palette: %w", err)
	}
	if cfg.RememberDepth && !cfg.DepthPinned {
		tree.Depth = htree.Clamp(fyneApp.Preferences().IntWithFallback(depthPrefKey, tree.Depth))
	}

	window := fyneApp.NewWindow(appTitle)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	return &HTreeApp{
		app:        fyneApp,
		window:     window,
		config:     cfg,
		clipboard:  clipboard.NewFyneCopier(fyneApp.Clipboard()),
		view:       NewView(tree, background),
		levelLabel: widget.NewLabel(strconv.Itoa(tree.Depth)),
		palette:    tree.Palette,
		background: background,
	}, nil
}

// Run starts the application.
func (a *HTreeApp) Run() {
	a.window.SetContent(a.createMainContent())
	a.window.SetMainMenu(a.createMainMenu())
	a.window.SetMaster()
	a.window.ShowAndRun()
}

// createMainContent lays the depth slider above the fractal view.
func (a *HTreeApp) createMainContent() fyne.CanvasObject {
	a.slider = widget.NewSlider(htree.MinDepth, htree.MaxDepth)
	a.slider.Step = 1
	a.slider.SetValue(float64(a.view.Depth()))
	a.slider.OnChanged = a.handleDepthChanged

	header := container.NewBorder(nil, nil, widget.NewLabel(levelsText), a.levelLabel, a.slider)
	return container.NewBorder(header, nil, nil, nil, a.view)
}

// createMainMenu builds the File menu. Fyne appends Quit on its own.
func (a *HTreeApp) createMainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("Export PNG…", a.handleExportPNG),
			fyne.NewMenuItem("Copy SVG", a.handleCopySVG),
		),
	)
}

// handleDepthChanged applies a slider move to the view.
func (a *HTreeApp) handleDepthChanged(value float64) {
	depth := htree.Clamp(int(math.Round(value)))
	if depth == a.view.Depth() {
		return
	}

	a.view.SetDepth(depth)
	a.levelLabel.SetText(strconv.Itoa(depth))

	if a.config.RememberDepth {
		a.app.Preferences().SetInt(depthPrefKey, depth)
	}
}

// currentTree returns the renderer for what is on screen.
func (a *HTreeApp) currentTree() htree.Renderer {
	return htree.Renderer{Depth: a.view.Depth(), Palette: a.palette}
}

// handleExportPNG asks for a destination and writes the fractal as PNG.
func (a *HTreeApp) handleExportPNG() {
	timestamp := time.Now().Format(timeFormat)
	defaultName := fmt.Sprintf("htree_%d_%s%s", a.view.Depth(), timestamp, defaultFileExt)

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError("Export Error", err)
			return
		}
		if writer == nil {
			return // User cancelled
		}
		defer writer.Close()

		if err := a.exportPNG(writer); err != nil {
			a.showError("Export Error", err)
			return
		}

		log.Printf("Exported depth %d to %s", a.view.Depth(), writer.URI())
		dialog.ShowInformation("Success", msgExportSuccess, a.window)
	}, a.window)

	saveDialog.SetFileName(defaultName)
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{defaultFileExt}))
	saveDialog.Show()
}

// exportPNG rasterizes the current fractal at the configured export size.
func (a *HTreeApp) exportPNG(w io.Writer) error {
	img := renderer.RenderImage(a.currentTree(), a.config.ExportWidth, a.config.ExportHeight, a.background)
	return img.EncodePNG(w)
}

// handleCopySVG copies the current fractal as SVG markup.
func (a *HTreeApp) handleCopySVG() {
	if err := a.copySVG(); err != nil {
		a.showError("Clipboard Error", err)
		return
	}
	dialog.ShowInformation("Success", msgCopySuccess, a.window)
}

func (a *HTreeApp) copySVG() error {
	doc := renderer.RenderSVG(a.currentTree(), a.config.ExportWidth, a.config.ExportHeight, a.background)
	return a.clipboard.CopySVG(doc)
}

// showError shows an error dialog.
func (a *HTreeApp) showError(title string, err error) {
	log.Printf("%s: %v", title, err)
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
}

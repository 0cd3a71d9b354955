// Package clipboard puts rendered fractals on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
)

var (
	// ErrUnavailable is returned when the platform has no clipboard.
	ErrUnavailable = errors.New("clipboard is not available")
	// ErrNotSVG is returned when the content is not an SVG document.
	ErrNotSVG = errors.New("content is not an SVG document")
)

// SVGCopier copies SVG documents to a clipboard.
type SVGCopier interface {
	CopySVG(doc string) error
}

// FyneCopier implements SVGCopier on top of Fyne's clipboard.
type FyneCopier struct {
	clipboard fyne.Clipboard
}

// NewFyneCopier creates a FyneCopier.
func NewFyneCopier(clipboard fyne.Clipboard) *FyneCopier {
	return &FyneCopier{clipboard: clipboard}
}

// CopySVG replaces the clipboard text with doc after checking that doc is
// a complete SVG document. The clipboard is left untouched on error.
func (c *FyneCopier) CopySVG(doc string) error {
	if c.clipboard == nil {
		return ErrUnavailable
	}
	if !isSVG(doc) {
		return fmt.Errorf("%w (%d bytes)", ErrNotSVG, len(doc))
	}
	c.clipboard.SetContent(doc)
	return nil
}

func isSVG(doc string) bool {
	start := strings.Index(doc, "<svg")
	return start >= 0 && strings.LastIndex(doc, "</svg>") > start
}

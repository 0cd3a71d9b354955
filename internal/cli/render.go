package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Akaiko1/htree-viewer/internal/config"
	"github.com/Akaiko1/htree-viewer/internal/htree"
	"github.com/Akaiko1/htree-viewer/internal/renderer"
)

// ErrUnsupportedFormat is returned for output files that are neither PNG nor SVG.
var ErrUnsupportedFormat = errors.New("unsupported output format")

func newRenderCommand(opts *options) *cobra.Command {
	var (
		out           string
		width, height int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the fractal to a PNG or SVG file",
		Long:  `Draws the fractal without opening a window. The output format follows the file extension.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.ExportWidth = width
			}
			if cmd.Flags().Changed("height") {
				cfg.ExportHeight = height
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := renderFile(cfg, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	defaults := config.DefaultConfig()
	cmd.Flags().StringVarP(&out, "out", "o", "htree.png", "output file (.png or .svg)")
	cmd.Flags().IntVar(&width, "width", defaults.ExportWidth, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", defaults.ExportHeight, "image height in pixels")
	return cmd
}

// renderFile writes the configured fractal to path, picking the encoder by extension.
func renderFile(cfg *config.Config, path string) error {
	tree, bg, err := cfg.Renderer()
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img := renderer.RenderImage(tree, cfg.ExportWidth, cfg.ExportHeight, bg)
		if err := writeFile(path, img.EncodePNG); err != nil {
			return err
		}
	case ".svg":
		doc := renderer.RenderSVG(tree, cfg.ExportWidth, cfg.ExportHeight, bg)
		if err := writeFile(path, func(w io.Writer) error {
			_, err := io.WriteString(w, doc)
			return err
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	stats := htree.Count(tree.Depth)
	log.Printf("Rendered depth %d (%d branches, %d lines, %d circles) to %s",
		tree.Depth, stats.Branches, stats.Lines, stats.Circles, path)
	return nil
}

// writeFile creates path and fills it with write. A partially written file
// is removed on failure.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

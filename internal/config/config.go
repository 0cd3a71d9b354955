package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/Akaiko1/htree-viewer/internal/htree"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// MaxExportSize bounds each side of an exported image in pixels.
const MaxExportSize = 8192

// Config defines the fractal depth, window and export sizes, and palette.
type Config struct {
	Depth         int           `yaml:"depth"`
	WindowWidth   int           `yaml:"window_width"`
	WindowHeight  int           `yaml:"window_height"`
	ExportWidth   int           `yaml:"export_width"`
	ExportHeight  int           `yaml:"export_height"`
	RememberDepth bool          `yaml:"remember_depth"`
	Palette       PaletteConfig `yaml:"palette"`

	// DepthPinned marks Depth as chosen on the command line, so a remembered
	// depth must not replace it.
	DepthPinned bool `yaml:"-"`
}

// PaletteConfig holds the drawing colours as hex strings.
type PaletteConfig struct {
	Near       string `yaml:"near"`
	Far        string `yaml:"far"`
	Marker     string `yaml:"marker"`
	Pip        string `yaml:"pip"`
	Background string `yaml:"background"`
}

// DefaultConfig returns a configuration with depth 1, an 800x600 window and
// the red/green/black/yellow palette on white.
func DefaultConfig() *Config {
	return &Config{
		Depth:         htree.MinDepth,
		WindowWidth:   800,
		WindowHeight:  600,
		ExportWidth:   1024,
		ExportHeight:  1024,
		RememberDepth: false,
		Palette: PaletteConfig{
			Near:       "#ff0000",
			Far:        "#00ff00",
			Marker:     "#000000",
			Pip:        "#ffff00",
			Background: "#ffffff",
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks depth bounds, sizes and colours.
func (c *Config) Validate() error {
	if c.Depth < htree.MinDepth || c.Depth > htree.MaxDepth {
		return fmt.Errorf("%w: depth %d outside [%d, %d]", ErrInvalidConfig, c.Depth, htree.MinDepth, htree.MaxDepth)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.ExportWidth <= 0 || c.ExportHeight <= 0 || c.ExportWidth > MaxExportSize || c.ExportHeight > MaxExportSize {
		return fmt.Errorf("%w: export size %dx%d", ErrInvalidConfig, c.ExportWidth, c.ExportHeight)
	}
	if _, _, err := c.Palette.Resolve(); err != nil {
		return err
	}
	return nil
}

// Renderer returns an htree.Renderer for the configured depth and palette.
func (c *Config) Renderer() (htree.Renderer, color.Color, error) {
	pal, bg, err := c.Palette.Resolve()
	if err != nil {
		return htree.Renderer{}, nil, err
	}
	return htree.Renderer{Depth: htree.Clamp(c.Depth), Palette: pal}, bg, nil
}

// Resolve parses the hex colours into a palette and a background colour.
func (p PaletteConfig) Resolve() (htree.Palette, color.Color, error) {
	var pal htree.Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"near", p.Near, &pal.Near},
		{"far", p.Far, &pal.Far},
		{"marker", p.Marker, &pal.Marker},
		{"pip", p.Pip, &pal.Pip},
	}
	for _, f := range fields {
		c, err := parseColor(f.name, f.hex)
		if err != nil {
			return htree.Palette{}, nil, err
		}
		*f.dst = c
	}

	bg, err := parseColor("background", p.Background)
	if err != nil {
		return htree.Palette{}, nil, err
	}
	return pal, bg, nil
}

func parseColor(name, hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: %s colour %q: %v", ErrInvalidConfig, name, hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

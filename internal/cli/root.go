// Package cli wires the htree command line: the GUI by default plus a
// headless render command.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Akaiko1/htree-viewer/internal/config"
	"github.com/Akaiko1/htree-viewer/internal/ui"
)

// options holds flags shared by every command.
type options struct {
	configPath string
	depth      int
}

// NewRootCommand builds the htree command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "htree",
		Short:        "Draw an H-tree fractal",
		Long:         `Opens a window showing an H-tree fractal with a slider for the recursion depth.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			return runGUI(cfg)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().IntVarP(&opts.depth, "depth", "d", config.DefaultConfig().Depth, "recursion depth (1-16)")

	root.AddCommand(newRenderCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies the --depth override.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("depth") {
		cfg.Depth = opts.depth
		cfg.DepthPinned = true
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runGUI(cfg *config.Config) error {
	log.Println("Starting H-Tree viewer...")
	log.Printf("Config: Depth=%d, RememberDepth=%v", cfg.Depth, cfg.RememberDepth)

	app, err := ui.NewHTreeApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	log.Println("App created, starting UI...")

	app.Run()
	return nil
}

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tonesketch/pkg/buildinfo"
	"github.com/matzehuels/tonesketch/pkg/config"
	"github.com/matzehuels/tonesketch/pkg/pccs"
	"github.com/matzehuels/tonesketch/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "tonesketch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Tonesketch draws generative sketches from PCCS palettes",
		Long:         `Tonesketch renders additive triangle overlays and noise watercolor washes, with palettes drawn from the PCCS hue and tone system.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/tonesketch/config.toml)")

	// Register all subcommands
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.paletteCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.configPath != "" {
		c.Logger.Debug("loaded config", "path", c.configPath)
	}
	return cfg, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// applyConfig fills zero-valued options from the config file. Flags win.
func applyConfig(opts *pipeline.Options, cfg config.Config) {
	if opts.Width == 0 {
		opts.Width = cfg.Canvas.Width
	}
	if opts.Height == 0 {
		opts.Height = cfg.Canvas.Height
	}
	if len(opts.Formats) == 0 {
		opts.Formats = cfg.Output.Formats
	}
	if opts.NoiseScale == 0 {
		opts.NoiseScale = cfg.Watercolor.NoiseScale
	}
	if opts.Octaves == 0 {
		opts.Octaves = cfg.Watercolor.Octaves
	}
	if opts.Falloff == 0 {
		opts.Falloff = cfg.Watercolor.Falloff
	}
}

// parseHueFlag parses --hue. An empty value leaves the hue to the sketch.
func parseHueFlag(s string) (pccs.Hue, error) {
	if s == "" {
		return 0, nil
	}
	return pccs.ParseHue(s)
}

// =============================================================================
// Paths
// =============================================================================

// basePath derives the output path without extension.
// If output is empty, the name is "<sketch>-<seed>" inside dir.
// If output has a format extension (.png, .json), it strips that extension.
// Multi-frame runs append the seed so frames don't collide.
func basePath(output, dir, sketchName string, seed uint64, multi bool) string {
	if output == "" {
		return filepath.Join(dir, fmt.Sprintf("%s-%d", sketchName, seed))
	}
	base := output
	if ext := filepath.Ext(output); pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(output, ext)
	}
	if multi {
		base = fmt.Sprintf("%s-%d", base, seed)
	}
	return base
}

// outputPath joins a base path and a format extension.
func outputPath(base, format string) string {
	return base + "." + format
}

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/pipeline"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path (or base path for multiple outputs)
	formats string // comma-separated output formats
	width   int    // canvas width in pixels (0 = sketch default)
	height  int    // canvas height in pixels (0 = sketch default)
	seed    uint64 // random seed (0 = fresh)
	hue     string // PCCS hue number or notation (empty = random)
	count   int    // number of frames, seeded seed, seed+1, ...
	scale   int    // integer PNG upscale factor
}

// renderCommand creates the render command for drawing sketches to files.
//
// Default settings:
//   - overlay: 800x600, watercolor: 500x500
//   - format: png
//   - seed: fresh per run, printed so the frame can be reproduced
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{count: 1, scale: 1}

	cmd := &cobra.Command{
		Use:       "render <sketch>",
		Short:     "Render a sketch to PNG and JSON",
		Long:      `Render draws one or more frames of a sketch (overlay or watercolor) and writes them as PNG images and/or JSON manifests.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: sketch.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateSketch(args[0]); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single frame) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), json (comma-separated)")
	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width (default per sketch)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height (default per sketch)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks a fresh one)")
	cmd.Flags().StringVar(&opts.hue, "hue", "", "PCCS hue, e.g. 8 or Y (default random)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", opts.count, "number of frames to render")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "integer PNG upscale factor")

	return cmd
}

// runRender draws opts.count frames and writes every requested format.
func (c *CLI) runRender(ctx context.Context, name string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	if opts.count < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "count must be at least 1, got %d", opts.count)
	}
	hue, err := parseHueFlag(opts.hue)
	if err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	formats := pipeline.ParseFormats(opts.formats)
	if len(formats) == 0 {
		formats = cfg.Output.Formats
	}
	if len(formats) == 0 {
		formats = []string{pipeline.FormatPNG}
	}
	if err := pipeline.ValidateFormats(formats); err != nil {
		return err
	}

	if ext := strings.TrimPrefix(filepath.Ext(opts.output), "."); ext != "" && !pipeline.ValidFormats[ext] {
		printWarning("output extension %q is not a format; appending %s", ext, strings.Join(formats, ", "))
	}

	seed := opts.seed
	if seed == 0 {
		seed = pipeline.FreshSeed()
	}

	runner := c.newRunner()
	watch := startStopwatch(logger)
	for i := range opts.count {
		if err := ctx.Err(); err != nil {
			return err
		}
		po := pipeline.Options{
			Sketch:  name,
			Width:   opts.width,
			Height:  opts.height,
			Seed:    seed + uint64(i),
			Hue:     hue,
			Formats: formats,
			Scale:   opts.scale,
		}
		applyConfig(&po, cfg)

		result, err := runner.Execute(ctx, po)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}

		base := basePath(opts.output, cfg.Output.Dir, name, result.Seed, opts.count > 1)
		for _, format := range formats {
			path := outputPath(base, format)
			if err := writeArtifact(path, result.Artifacts[format]); err != nil {
				return err
			}
			printFile(path)
		}
		printDetail("seed %d · hue %s · %d colors", result.Seed, result.Frame.Palette.Hue, result.Frame.Palette.Len())
	}
	watch.done("Rendered", "sketch", name, "frames", opts.count)
	return nil
}

// writeArtifact writes data to path, creating parent directories.
func writeArtifact(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

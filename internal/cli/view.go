package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tonesketch/internal/viewer"
	"github.com/matzehuels/tonesketch/pkg/pipeline"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// viewOpts holds the command-line flags for the view command.
type viewOpts struct {
	width  int
	height int
	seed   uint64
	hue    string
	scale  int    // window scale factor
	format string // formats written when saving
}

// viewCommand creates the view command, which opens an interactive window.
func (c *CLI) viewCommand() *cobra.Command {
	opts := viewOpts{scale: 1}

	cmd := &cobra.Command{
		Use:       "view <sketch>",
		Short:     "Open a sketch in a window (click to redraw)",
		Long:      `View opens a window showing a sketch. Left click draws a new frame, s saves the current frame, q or Esc quits.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: sketch.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateSketch(args[0]); err != nil {
				return err
			}
			return c.runView(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "canvas width (default per sketch)")
	cmd.Flags().IntVar(&opts.height, "height", 0, "canvas height (default per sketch)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "seed of the first frame (0 picks a fresh one)")
	cmd.Flags().StringVar(&opts.hue, "hue", "", "PCCS hue, e.g. 8 or Y (default random)")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "window scale factor")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "format(s) written on save: png (default), json")

	return cmd
}

func (c *CLI) runView(ctx context.Context, name string, opts viewOpts) error {
	hue, err := parseHueFlag(opts.hue)
	if err != nil {
		return err
	}
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	po := pipeline.Options{
		Sketch:  name,
		Width:   opts.width,
		Height:  opts.height,
		Seed:    opts.seed,
		Hue:     hue,
		Formats: pipeline.ParseFormats(opts.format),
	}
	applyConfig(&po, cfg)

	session, err := pipeline.NewSession(c.newRunner(), po)
	if err != nil {
		return err
	}
	formats := session.Options().Formats

	save := func(seed uint64, artifacts map[string][]byte) ([]string, error) {
		base := basePath("", cfg.Output.Dir, name, seed, false)
		var paths []string
		for _, format := range formats {
			path := outputPath(base, format)
			if err := writeArtifact(path, artifacts[format]); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	}

	printInfo("Viewing %s · click to redraw, s to save, q to quit", StyleHighlight.Render(name))
	return viewer.Run(ctx, session, viewer.Options{
		Scale:  opts.scale,
		Save:   save,
		Logger: c.Logger,
	})
}

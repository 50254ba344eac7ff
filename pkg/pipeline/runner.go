package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tonesketch/pkg/observability"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// Runner executes the pipeline.
//
// The Runner holds no per-run state. Multiple goroutines can use the same
// Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete draw → encode pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, err := NewSketch(opts)
	if err != nil {
		return nil, err
	}

	frame, drawTime, err := r.Draw(ctx, s, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}
	result := &Result{Frame: frame, Seed: opts.Seed}
	result.Stats.DrawTime = drawTime

	encodeStart := time.Now()
	artifacts, err := Encode(ctx, frame, opts)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.EncodeTime = time.Since(encodeStart)
	for _, data := range artifacts {
		result.Stats.Bytes += len(data)
	}

	r.Logger.Info("encoded outputs",
		"formats", opts.Formats,
		"bytes", result.Stats.Bytes,
		"duration", result.Stats.EncodeTime)

	return result, nil
}

// Draw draws one frame of s using the generator for seed and reports the
// draw to the registered observability hooks.
func (r *Runner) Draw(ctx context.Context, s sketch.Sketch, seed uint64) (*sketch.Frame, time.Duration, error) {
	hooks := observability.Render()
	hooks.OnDrawStart(ctx, s.Name(), seed)

	start := time.Now()
	frame, err := s.Draw(sketch.NewRand(seed))
	elapsed := time.Since(start)
	hooks.OnDrawComplete(ctx, s.Name(), elapsed, err)
	if err != nil {
		return nil, elapsed, err
	}

	r.Logger.Info("drew frame",
		"sketch", s.Name(),
		"seed", seed,
		"hue", frame.Palette.Hue,
		"colors", frame.Palette.Len(),
		"duration", elapsed)
	if frame.Polygons > 0 {
		r.Logger.Debug("composited polygons", "count", frame.Polygons)
	}
	for _, w := range frame.Washes {
		r.Logger.Debug("washed quadrant",
			"bounds", w.Bounds,
			"tone", w.Tone,
			"color", w.Color.Hex(),
			"noise_seed", w.NoiseSeed)
	}
	return frame, elapsed, nil
}

package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/tonesketch/pkg/observability"
	"github.com/matzehuels/tonesketch/pkg/sink"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// Encode renders the frame in every requested format, checking ctx between
// formats.
func Encode(ctx context.Context, f *sketch.Frame, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := encodeFormat(f, format, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		observability.Render().OnEncode(ctx, format, len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}

func encodeFormat(f *sketch.Frame, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatPNG:
		return sink.RenderPNG(f, sink.WithScale(opts.Scale))
	case FormatJSON:
		return sink.RenderJSON(f,
			sink.WithJSONSeed(opts.Seed),
			sink.WithJSONCreated(opts.Now().UTC()),
		)
	default:
		return nil, ValidateFormat(format)
	}
}

// Package pkg provides the core libraries for tonesketch generative sketches.
//
// # Overview
//
// Tonesketch draws two kinds of frame: additive triangle overlays and
// quadrant noise watercolors. Both take their colours from the PCCS hue and
// tone system. The pkg directory is organized into these areas:
//
//  1. [pccs] and [palette] - Colour system and palette selection
//  2. [canvas] and [noise] - Drawing surface and coherent noise
//  3. [sketch] - The Sketch contract, with overlay and watercolor beneath it
//  4. [sink] - PNG and JSON manifest encoders
//  5. [pipeline] - Orchestration (validate → draw → encode)
//
// Supporting packages: [config] (TOML settings), [errors] (coded errors),
// [observability] (render hooks) and [buildinfo] (version stamping).
//
// # Architecture
//
// The typical data flow through tonesketch:
//
//	seed → PCG generator
//	         ↓
//	    [sketch/overlay] or [sketch/watercolor] (geometry or noise)
//	         ↓
//	    [palette] (intensity or quadrant → colour)
//	         ↓
//	    [canvas] (RGBA pixels)
//	         ↓
//	    [sink] PNG / JSON output
//
// # Quick Start
//
// Render a watercolor frame:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/tonesketch/pkg/pipeline"
//	)
//
//	res, err := pipeline.NewRunner(nil).Execute(context.Background(), pipeline.Options{
//	    Sketch: "watercolor",
//	    Seed:   42,
//	})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("wash.png", res.Artifacts["png"], 0o644)
package pkg

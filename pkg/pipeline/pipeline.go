// Package pipeline provides the draw → encode pipeline shared by the
// tonesketch commands.
//
// The CLI render command and the interactive viewer both build sketches
// through this package, so defaults and validation are identical wherever a
// frame is produced.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Sketch:  "watercolor",
//	    Seed:    7,
//	    Formats: []string{"png", "json"},
//	})
//	if err != nil {
//	    return err
//	}
//	png := result.Artifacts["png"]
//
// A zero Seed is replaced by a fresh random seed; the seed actually used is
// reported in [Result.Seed] so the frame can be reproduced.
package pipeline

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/noise"
	"github.com/matzehuels/tonesketch/pkg/pccs"
	"github.com/matzehuels/tonesketch/pkg/sketch"
	"github.com/matzehuels/tonesketch/pkg/sketch/overlay"
	"github.com/matzehuels/tonesketch/pkg/sketch/watercolor"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSketch is drawn when no sketch is named.
	DefaultSketch = sketch.NameOverlay

	// DefaultOverlayWidth and DefaultOverlayHeight size overlay frames.
	DefaultOverlayWidth  = 800
	DefaultOverlayHeight = 600

	// DefaultWatercolorSize is the side of the square watercolor canvas.
	DefaultWatercolorSize = 500
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	Sketch string `json:"sketch"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Seed   uint64 `json:"seed,omitempty"`

	// Hue fixes the palette hue. Zero lets the sketch choose.
	Hue pccs.Hue `json:"hue,omitempty"`

	Formats []string `json:"formats,omitempty"`

	// Scale is the integer PNG upscale factor.
	Scale int `json:"scale,omitempty"`

	// Watercolor noise tuning. Zero values use the noise package defaults.
	NoiseScale float64 `json:"noise_scale,omitempty"`
	Octaves    int     `json:"octaves,omitempty"`
	Falloff    float64 `json:"falloff,omitempty"`

	// Now stamps manifests. Defaults to time.Now (not serialized).
	Now func() time.Time `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the drawn frame.
	Frame *sketch.Frame

	// Seed reproduces the frame.
	Seed uint64

	// Artifacts contains encoded outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	DrawTime   time.Duration
	EncodeTime time.Duration
	Bytes      int
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSketch checks that a sketch name is known.
func ValidateSketch(name string) error {
	if !sketch.Valid(name) {
		return errors.New(errors.ErrCodeInvalidSketch, "invalid sketch: %q (must be one of: %s)",
			name, strings.Join(sketch.Names(), ", "))
	}
	return nil
}

// ParseFormats splits a comma-separated format list, dropping blanks and
// duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// Calling it more than once has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Sketch == "" {
		o.Sketch = DefaultSketch
	}
	if err := ValidateSketch(o.Sketch); err != nil {
		return err
	}
	w, h := DefaultSize(o.Sketch)
	if o.Width == 0 {
		o.Width = w
	}
	if o.Height == 0 {
		o.Height = h
	}
	if err := errors.ValidateSize(o.Width, o.Height); err != nil {
		return err
	}
	if o.Hue != 0 && !o.Hue.Valid() {
		return errors.New(errors.ErrCodeInvalidHue, "hue out of range: %d", int(o.Hue))
	}
	if o.Seed == 0 {
		o.Seed = FreshSeed()
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.Scale < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be at least 1, got %d", o.Scale)
	}
	if o.NoiseScale < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "noise scale must not be negative: %v", o.NoiseScale)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	o.validated = true
	return nil
}

// HasFormat reports whether format was requested.
func (o *Options) HasFormat(format string) bool {
	return slices.Contains(o.Formats, format)
}

// DefaultSize returns the canvas size a sketch uses when none is given.
func DefaultSize(name string) (width, height int) {
	if name == sketch.NameWatercolor {
		return DefaultWatercolorSize, DefaultWatercolorSize
	}
	return DefaultOverlayWidth, DefaultOverlayHeight
}

// FreshSeed returns a random non-zero seed.
func FreshSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

// NoiseSeed derives the first watercolor noise seed from a frame seed.
// Frame seeds one apart get noise ranges watercolor.QuadrantCount apart, so
// seed, seed+1, ... never share a field and each frame of a session is
// reproducible from its frame seed alone.
func NoiseSeed(seed uint64) int64 {
	return int64(seed&math.MaxInt32) * watercolor.QuadrantCount
}

// NewSketch builds the sketch named by opts. Options must already be
// validated.
func NewSketch(opts Options) (sketch.Sketch, error) {
	switch opts.Sketch {
	case sketch.NameOverlay:
		return overlay.New(overlay.Options{
			Width:  opts.Width,
			Height: opts.Height,
			Hue:    opts.Hue,
		})
	case sketch.NameWatercolor:
		return watercolor.New(watercolor.Options{
			Width:  opts.Width,
			Height: opts.Height,
			Hue:    opts.Hue,
			Scale:  opts.NoiseScale,
			Detail: noise.Detail{Octaves: opts.Octaves, Falloff: opts.Falloff},
		}, NoiseSeed(opts.Seed))
	default:
		return nil, fmt.Errorf("new sketch: %w", ValidateSketch(opts.Sketch))
	}
}

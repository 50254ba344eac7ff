// Package watercolor implements the quadrant noise wash sketch.
//
// The canvas is split into four quadrants. Each frame picks one hue, then
// for every quadrant a random tone and a fresh noise seed. Each pixel takes
// the quadrant's colour with its opacity sampled from coherent noise, which
// gives soft, uneven washes that meet along the quadrant seams.
package watercolor

import (
	"image"
	"math/rand/v2"

	"github.com/matzehuels/tonesketch/pkg/canvas"
	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/noise"
	"github.com/matzehuels/tonesketch/pkg/palette"
	"github.com/matzehuels/tonesketch/pkg/pccs"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// DefaultScale maps pixel coordinates into noise space.
const DefaultScale = 0.002

// QuadrantCount is the number of washes, and noise seeds, per frame.
const QuadrantCount = 4

// Options configures the watercolor sketch.
type Options struct {
	Width  int
	Height int

	// Hue fixes the frame hue. Zero picks a random hue per frame.
	Hue pccs.Hue

	// Scale multiplies pixel coordinates before sampling. Zero uses
	// DefaultScale.
	Scale float64

	// Detail sets the noise octaves and falloff.
	Detail noise.Detail
}

// Sketch is the watercolor sketch. Noise seeds are handed out from a counter
// that advances by QuadrantCount per frame, so consecutive draws of one
// Sketch never reuse a field. SetNextSeed moves the counter.
type Sketch struct {
	opts     Options
	nextSeed int64
}

var _ sketch.Sketch = (*Sketch)(nil)

// New creates a watercolor sketch whose first noise seed is firstSeed.
func New(opts Options, firstSeed int64) (*Sketch, error) {
	if err := errors.ValidateSize(opts.Width, opts.Height); err != nil {
		return nil, err
	}
	if opts.Hue != 0 && !opts.Hue.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidHue, "hue out of range: %d", int(opts.Hue))
	}
	if opts.Scale < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "noise scale must not be negative: %v", opts.Scale)
	}
	if opts.Scale == 0 {
		opts.Scale = DefaultScale
	}
	if err := opts.Detail.Validate(); err != nil {
		return nil, err
	}
	return &Sketch{opts: opts, nextSeed: firstSeed}, nil
}

// Name returns "watercolor".
func (s *Sketch) Name() string { return sketch.NameWatercolor }

// NextSeed returns the noise seed the next quadrant will use.
func (s *Sketch) NextSeed() int64 { return s.nextSeed }

// SetNextSeed sets the noise seed of the next frame's first quadrant.
func (s *Sketch) SetNextSeed(seed int64) { s.nextSeed = seed }

// Draw renders one frame.
func (s *Sketch) Draw(rng *rand.Rand) (*sketch.Frame, error) {
	hue := palette.RandomHue(rng)
	if s.opts.Hue.Valid() {
		hue = s.opts.Hue
	}

	tones := pccs.SupportedTones()
	surface := canvas.New(s.opts.Width, s.opts.Height)
	frame := &sketch.Frame{Sketch: sketch.NameWatercolor}

	var chosen []pccs.Tone
	for _, q := range Quadrants(s.opts.Width, s.opts.Height) {
		tone := tones[rng.IntN(len(tones))]
		c, err := pccs.ToRGB(tone, hue)
		if err != nil {
			return nil, err
		}

		seed := s.nextSeed
		s.nextSeed++
		Wash(surface, q, c, noise.New(seed, s.opts.Detail), s.opts.Scale)

		chosen = append(chosen, tone)
		frame.Washes = append(frame.Washes, sketch.Wash{
			Bounds:    q,
			Tone:      tone,
			Color:     c,
			NoiseSeed: seed,
		})
	}

	p, err := palette.Build(hue, chosen)
	if err != nil {
		return nil, err
	}
	frame.Palette = p
	frame.Image = surface.Image()
	return frame, nil
}

// Quadrants splits a width×height canvas into four rectangles ordered
// left column top to bottom, then right column. Column x ranges are
// [0, width/2] and [width/2+1, width-1]; rows split the same way. Every
// pixel lies in exactly one quadrant. Quadrants on a canvas one pixel wide
// or tall may be empty.
func Quadrants(width, height int) []image.Rectangle {
	hx, hy := width/2, height/2
	xs := [2][2]int{{0, min(hx+1, width)}, {min(hx+1, width), width}}
	ys := [2][2]int{{0, min(hy+1, height)}, {min(hy+1, height), height}}

	out := make([]image.Rectangle, 0, 4)
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, image.Rect(x[0], y[0], x[1], y[1]))
		}
	}
	return out
}

// Wash paints every pixel of r in colour c with opacity from f sampled at
// the pixel coordinates times scale.
func Wash(s *canvas.Surface, r image.Rectangle, c pccs.RGB, f *noise.Field, scale float64) {
	for x := r.Min.X; x < r.Max.X; x++ {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			s.Stroke(c.NRGBA(f.Alpha(float64(x)*scale, float64(y)*scale)))
			s.Point(x, y)
		}
	}
}

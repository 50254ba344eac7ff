package overlay

import (
	"math/rand/v2"

	"github.com/matzehuels/tonesketch/pkg/canvas"
	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/palette"
	"github.com/matzehuels/tonesketch/pkg/pccs"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// MinPolygons is the fewest triangles composited per frame.
const MinPolygons = 3

// Options configures the overlay sketch.
type Options struct {
	Width  int
	Height int

	// Hue fixes the palette hue. Zero picks a random hue per frame.
	Hue pccs.Hue
}

// Sketch is the overlay sketch.
type Sketch struct {
	opts Options
}

var _ sketch.Sketch = (*Sketch)(nil)

// New creates an overlay sketch.
func New(opts Options) (*Sketch, error) {
	if err := errors.ValidateSize(opts.Width, opts.Height); err != nil {
		return nil, err
	}
	if opts.Hue != 0 && !opts.Hue.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidHue, "hue out of range: %d", int(opts.Hue))
	}
	return &Sketch{opts: opts}, nil
}

// Name returns "overlay".
func (s *Sketch) Name() string { return sketch.NameOverlay }

// Draw picks a palette, composites PolygonCount triangles and remaps the
// accumulated intensities to palette colours.
func (s *Sketch) Draw(rng *rand.Rand) (*sketch.Frame, error) {
	p, err := palette.Random(rng, s.opts.Hue)
	if err != nil {
		return nil, err
	}

	n := PolygonCount(rng, p.Len())
	index := Composite(rng, s.opts.Width, s.opts.Height, n)

	out := canvas.New(s.opts.Width, s.opts.Height)
	Remap(out.Pix(), index.Pix(), p)

	return &sketch.Frame{
		Sketch:   sketch.NameOverlay,
		Image:    out.Image(),
		Palette:  p,
		Polygons: n,
	}, nil
}

// PolygonCount returns a uniform integer in [MinPolygons, paletteLen].
// Palettes shorter than MinPolygons still get MinPolygons triangles.
func PolygonCount(rng *rand.Rand, paletteLen int) int {
	if paletteLen <= MinPolygons {
		return MinPolygons
	}
	return MinPolygons + rng.IntN(paletteLen-MinPolygons+1)
}

// Composite draws n random shapes, each on its own scratch layer, and adds
// the layers into a fresh index buffer.
func Composite(rng *rand.Rand, width, height, n int) *canvas.Surface {
	base := canvas.New(width, height)
	layer := canvas.New(width, height)
	w, h := float64(width), float64(height)
	for range n {
		NewShape(rng, w, h).Draw(layer)
		base.AddFrom(layer)
	}
	return base
}

// Remap writes palette colours for every pixel of index into dst. Colour
// bytes become the matching channel of p.At(value); alpha bytes are copied
// unchanged. index is not modified.
func Remap(dst, index []byte, p palette.Palette) {
	n := min(len(dst), len(index))
	for i := 0; i < n; i++ {
		ch := i % 4
		if ch == 3 {
			dst[i] = index[i]
			continue
		}
		dst[i] = p.At(int(index[i])).Channel(ch)
	}
}

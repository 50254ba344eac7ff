// Package sketch defines the contract shared by tonesketch's generative
// sketches and the frame they produce.
//
// A sketch draws one frame per call. All randomness comes from the *rand.Rand
// passed to Draw, so a frame is reproducible from the seed that created the
// generator. Implementations live in the overlay and watercolor subpackages.
package sketch

import (
	"image"
	"math/rand/v2"

	"github.com/matzehuels/tonesketch/pkg/palette"
	"github.com/matzehuels/tonesketch/pkg/pccs"
)

// Sketch names.
const (
	NameOverlay    = "overlay"
	NameWatercolor = "watercolor"
)

// Names returns all sketch names.
func Names() []string {
	return []string{NameOverlay, NameWatercolor}
}

// Valid reports whether name is a known sketch.
func Valid(name string) bool {
	return name == NameOverlay || name == NameWatercolor
}

// Sketch draws frames.
type Sketch interface {
	Name() string
	Draw(rng *rand.Rand) (*Frame, error)
}

// Frame is the result of a single draw.
type Frame struct {
	Sketch  string
	Image   *image.RGBA
	Palette palette.Palette

	// Polygons is the number of triangles composited (overlay only).
	Polygons int

	// Washes lists the per-quadrant colours (watercolor only).
	Washes []Wash
}

// Wash is one quadrant of a watercolor frame.
type Wash struct {
	Bounds    image.Rectangle
	Tone      pccs.Tone
	Color     pccs.RGB
	NoiseSeed int64
}

// NewRand returns the PCG generator used for a seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

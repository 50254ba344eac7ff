// Package noise provides seeded coherent noise for texture generation.
//
// A [Field] layers octaves of Perlin noise: each octave doubles the
// frequency and scales the amplitude by the falloff. Samples are normalized
// to [0, 1] so they can be used directly as opacity.
package noise

import (
	"github.com/aquilax/go-perlin"

	"github.com/matzehuels/tonesketch/pkg/errors"
)

// Default detail settings.
const (
	DefaultOctaves = 16
	DefaultFalloff = 0.5
)

// Detail controls how many octaves are summed and how quickly their
// amplitude decays. Zero fields select the defaults.
type Detail struct {
	Octaves int
	Falloff float64
}

// DefaultDetail returns 16 octaves with falloff 0.5.
func DefaultDetail() Detail {
	return Detail{Octaves: DefaultOctaves, Falloff: DefaultFalloff}
}

// Validate rejects negative octaves and a falloff outside [0, 1).
// Zero values pass and are replaced by the defaults in [New].
func (d Detail) Validate() error {
	if d.Octaves < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "noise octaves must not be negative: %d", d.Octaves)
	}
	if d.Falloff < 0 || d.Falloff >= 1 {
		return errors.New(errors.ErrCodeInvalidInput, "noise falloff must be in [0, 1): %v", d.Falloff)
	}
	return nil
}

func (d Detail) normalized() Detail {
	if d.Octaves <= 0 {
		d.Octaves = DefaultOctaves
	}
	if d.Falloff <= 0 || d.Falloff >= 1 {
		d.Falloff = DefaultFalloff
	}
	return d
}

// Field is a seeded two-dimensional noise field.
type Field struct {
	p      *perlin.Perlin
	seed   int64
	detail Detail
}

// New creates a field for the seed. Fields with equal seed and detail
// produce identical samples. Out-of-range detail falls back to the
// defaults; callers taking user input should run [Detail.Validate] first.
func New(seed int64, d Detail) *Field {
	d = d.normalized()
	// go-perlin divides each octave by alpha, so alpha is the inverse falloff.
	alpha := 1 / d.Falloff
	const beta = 2
	return &Field{
		p:      perlin.NewPerlin(alpha, beta, int32(d.Octaves), seed),
		seed:   seed,
		detail: d,
	}
}

// Seed returns the field's seed.
func (f *Field) Seed() int64 {
	return f.seed
}

// Detail returns the octave settings in effect.
func (f *Field) Detail() Detail {
	return f.detail
}

// Sample returns the noise value at (x, y) in [0, 1].
func (f *Field) Sample(x, y float64) float64 {
	v := (f.p.Noise2D(x, y) + 1) / 2
	return min(1, max(0, v))
}

// Alpha returns Sample scaled to an 8-bit opacity.
func (f *Field) Alpha(x, y float64) uint8 {
	return uint8(f.Sample(x, y) * 255)
}

// Package palette builds ordered colour palettes from a PCCS hue and a run of
// tones.
//
// A palette's order is significant: sketches map integer intensities to
// colours with [Palette.At], so reversing the tone ordering reverses which
// regions receive which colours.
package palette

import (
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/pccs"
)

// Palette is a non-empty ordered list of colours sharing one hue.
type Palette struct {
	Hue    pccs.Hue
	Tones  []pccs.Tone
	Colors []pccs.RGB
}

// Build converts each tone of the ordering with the given hue. Tones outside
// pccs.ToRGB's domain are dropped before conversion. Build fails when no
// tone survives.
func Build(hue pccs.Hue, tones []pccs.Tone) (Palette, error) {
	if !hue.Valid() {
		return Palette{}, errors.New(errors.ErrCodeInvalidHue, "hue out of range: %d", int(hue))
	}

	p := Palette{Hue: hue}
	for _, t := range tones {
		if !t.Supported() {
			continue
		}
		c, err := pccs.ToRGB(t, hue)
		if err != nil {
			return Palette{}, err
		}
		p.Tones = append(p.Tones, t)
		p.Colors = append(p.Colors, c)
	}
	if len(p.Colors) == 0 {
		return Palette{}, errors.New(errors.ErrCodeEmptyPalette, "no supported tones in %v", tones)
	}
	return p, nil
}

// Len returns the number of colours.
func (p Palette) Len() int {
	return len(p.Colors)
}

// At returns the colour for intensity v, wrapping modulo Len.
func (p Palette) At(v int) pccs.RGB {
	n := len(p.Colors)
	i := v % n
	if i < 0 {
		i += n
	}
	return p.Colors[i]
}

// Hex returns the colours formatted as "#rrggbb".
func (p Palette) Hex() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex()
	}
	return out
}

// Orderings returns the eight tone orderings sketched from two tone groups:
// each group forwards and reversed, and the two concatenations
// low+reverse(mid) and reverse(low)+mid, each forwards and reversed.
func Orderings(low, mid []pccs.Tone) [][]pccs.Tone {
	lowRev := reversed(low)
	midRev := reversed(mid)
	lowMidRev := slices.Concat(low, midRev)
	lowRevMid := slices.Concat(lowRev, mid)

	return [][]pccs.Tone{
		slices.Clone(low),
		slices.Clone(mid),
		lowRev,
		midRev,
		lowMidRev,
		reversed(lowMidRev),
		lowRevMid,
		reversed(lowRevMid),
	}
}

// DefaultOrderings returns Orderings for the PCCS low and middle saturation
// groups.
func DefaultOrderings() [][]pccs.Tone {
	return Orderings(pccs.LowSaturationTones, pccs.MiddleSaturationTones)
}

// Random picks one of DefaultOrderings and a hue uniformly. A valid fixed
// hue replaces the random hue choice.
func Random(rng *rand.Rand, fixed pccs.Hue) (Palette, error) {
	orderings := DefaultOrderings()
	tones := orderings[rng.IntN(len(orderings))]
	hue := RandomHue(rng)
	if fixed.Valid() {
		hue = fixed
	}
	return Build(hue, tones)
}

// RandomHue picks a hue uniformly from the colour circle.
func RandomHue(rng *rand.Rand) pccs.Hue {
	return pccs.Hue(rng.IntN(pccs.HueCount) + 1)
}

func reversed(ts []pccs.Tone) []pccs.Tone {
	out := slices.Clone(ts)
	slices.Reverse(out)
	return out
}

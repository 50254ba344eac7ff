package pccs

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/tonesketch/pkg/errors"
)

// RGB is an 8-bit sRGB colour.
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Channel returns the red, green or blue component for index 0, 1 or 2.
func (c RGB) Channel(i int) uint8 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	default:
		return c.B
	}
}

// NRGBA returns the colour with the given alpha.
func (c RGB) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

// lch is a tone's position in CIE LCh, both components in [0, 1].
type lch struct {
	l, c float64
}

// toneTable places each supported tone in lightness/chroma space.
// Vivid has no entry: it is outside ToRGB's domain.
var toneTable = map[Tone]lch{
	Bright:       {0.70, 0.55},
	Strong:       {0.55, 0.50},
	Deep:         {0.38, 0.42},
	Light:        {0.78, 0.35},
	Soft:         {0.65, 0.30},
	Dull:         {0.50, 0.25},
	Dark:         {0.30, 0.22},
	Pale:         {0.88, 0.15},
	LightGrayish: {0.72, 0.10},
	Grayish:      {0.50, 0.09},
	DarkGrayish:  {0.25, 0.07},
}

// ToRGB converts a tone and hue to sRGB. It is a pure function: the same
// pair always yields the same colour. Out-of-gamut colours are clamped.
func ToRGB(t Tone, h Hue) (RGB, error) {
	if !h.Valid() {
		return RGB{}, errors.New(errors.ErrCodeInvalidHue, "hue out of range: %d", int(h))
	}
	if !t.Valid() {
		return RGB{}, errors.New(errors.ErrCodeInvalidTone, "unknown tone: %q", string(t))
	}
	pos, ok := toneTable[t]
	if !ok {
		return RGB{}, errors.New(errors.ErrCodeUnsupportedTone, "tone %q cannot be converted to RGB", string(t))
	}
	r, g, b := colorful.Hcl(h.Angle(), pos.c, pos.l).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustRGB is like ToRGB but panics on error. It is intended for tables
// built from constants.
func MustRGB(t Tone, h Hue) RGB {
	c, err := ToRGB(t, h)
	if err != nil {
		panic(err)
	}
	return c
}

package pccs

import (
	"strings"

	"github.com/matzehuels/tonesketch/pkg/errors"
)

// Tone is a PCCS tone abbreviation.
type Tone string

// PCCS tones, from most to least saturated.
const (
	Vivid        Tone = "v"
	Bright       Tone = "b"
	Strong       Tone = "s"
	Deep         Tone = "dp"
	Light        Tone = "lt"
	Soft         Tone = "sf"
	Dull         Tone = "d"
	Dark         Tone = "dk"
	Pale         Tone = "p"
	LightGrayish Tone = "ltg"
	Grayish      Tone = "g"
	DarkGrayish  Tone = "dkg"
)

// Tone groups by saturation level.
var (
	HighSaturationTones   = []Tone{Bright, Strong, Deep}
	MiddleSaturationTones = []Tone{Light, Soft, Dull, Dark}
	LowSaturationTones    = []Tone{Pale, LightGrayish, Grayish, DarkGrayish}
)

var allTones = []Tone{
	Vivid, Bright, Strong, Deep,
	Light, Soft, Dull, Dark,
	Pale, LightGrayish, Grayish, DarkGrayish,
}

// toneNames holds the English names used in listings.
var toneNames = map[Tone]string{
	Vivid:        "vivid",
	Bright:       "bright",
	Strong:       "strong",
	Deep:         "deep",
	Light:        "light",
	Soft:         "soft",
	Dull:         "dull",
	Dark:         "dark",
	Pale:         "pale",
	LightGrayish: "light grayish",
	Grayish:      "grayish",
	DarkGrayish:  "dark grayish",
}

// Tones returns all twelve tones, vivid included.
func Tones() []Tone {
	return append([]Tone(nil), allTones...)
}

// SupportedTones returns every tone accepted by ToRGB.
func SupportedTones() []Tone {
	out := make([]Tone, 0, len(allTones)-1)
	for _, t := range allTones {
		if t.Supported() {
			out = append(out, t)
		}
	}
	return out
}

// Valid reports whether t is a known tone.
func (t Tone) Valid() bool {
	_, ok := toneNames[t]
	return ok
}

// Supported reports whether t is inside ToRGB's domain.
func (t Tone) Supported() bool {
	return t.Valid() && t != Vivid
}

// Name returns the English tone name, e.g. "light grayish".
func (t Tone) Name() string {
	return toneNames[t]
}

func (t Tone) String() string {
	return string(t)
}

// ParseTone accepts an abbreviation ("ltg") or an English name
// ("light grayish", "light-grayish"), case-insensitively.
func ParseTone(s string) (Tone, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return "", errors.New(errors.ErrCodeInvalidTone, "tone cannot be empty")
	}
	if t := Tone(key); t.Valid() {
		return t, nil
	}
	name := strings.ReplaceAll(key, "-", " ")
	for t, n := range toneNames {
		if n == name {
			return t, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidTone, "unknown tone: %q", s)
}

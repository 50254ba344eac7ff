package pccs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/tonesketch/pkg/errors"
)

// Hue is a PCCS hue number in the range 1..24.
type Hue int

// HueCount is the number of steps on the PCCS colour circle.
const HueCount = 24

type hueInfo struct {
	notation string
	angle    float64 // LCh hue angle in degrees
}

// hueTable is indexed by Hue-1. PCCS repeats BG and B at 14/15 and 17/18.
var hueTable = [HueCount]hueInfo{
	{"pR", 10}, {"R", 25}, {"yR", 38}, {"rO", 48},
	{"O", 58}, {"yO", 70}, {"rY", 82}, {"Y", 95},
	{"gY", 105}, {"YG", 115}, {"yG", 128}, {"G", 142},
	{"bG", 160}, {"BG", 180}, {"BG", 196}, {"gB", 215},
	{"B", 235}, {"B", 255}, {"pB", 272}, {"V", 290},
	{"bP", 305}, {"P", 320}, {"rP", 335}, {"RP", 350},
}

// Hues returns all 24 hues in circle order.
func Hues() []Hue {
	hs := make([]Hue, HueCount)
	for i := range hs {
		hs[i] = Hue(i + 1)
	}
	return hs
}

// Valid reports whether h is on the colour circle.
func (h Hue) Valid() bool {
	return h >= 1 && h <= HueCount
}

// Notation returns the PCCS hue symbol without its number, e.g. "yR".
func (h Hue) Notation() string {
	if !h.Valid() {
		return ""
	}
	return hueTable[h-1].notation
}

// String returns the numbered notation, e.g. "3:yR".
func (h Hue) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Hue(%d)", int(h))
	}
	return fmt.Sprintf("%d:%s", int(h), h.Notation())
}

// Angle returns the LCh hue angle in degrees.
func (h Hue) Angle() float64 {
	if !h.Valid() {
		return 0
	}
	return hueTable[h-1].angle
}

// ParseHue accepts "8", "8:Y" or a notation like "yR". Notations shared by
// two hues (BG, B) resolve to the lower number.
func ParseHue(s string) (Hue, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.ErrCodeInvalidHue, "hue cannot be empty")
	}

	num, notation, hasColon := strings.Cut(s, ":")
	if !hasColon {
		if _, err := strconv.Atoi(s); err == nil {
			num, notation = s, ""
		} else {
			num, notation = "", s
		}
	}

	if num != "" {
		n, err := strconv.Atoi(num)
		if err != nil || !Hue(n).Valid() {
			return 0, errors.New(errors.ErrCodeInvalidHue, "hue number must be 1..%d, got %q", HueCount, num)
		}
		h := Hue(n)
		if notation != "" && notation != h.Notation() {
			return 0, errors.New(errors.ErrCodeInvalidHue, "hue %d is %s, not %s", n, h.Notation(), notation)
		}
		return h, nil
	}

	for _, h := range Hues() {
		if h.Notation() == notation {
			return h, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidHue, "unknown hue: %q", s)
}

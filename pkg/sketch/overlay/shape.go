package overlay

import (
	"math/rand/v2"

	"github.com/matzehuels/tonesketch/pkg/canvas"
)

// Side is one edge of the canvas.
type Side int

// Canvas sides in clockwise order.
const (
	Top Side = iota
	Right
	Bottom
	Left
)

// Sides lists every side in clockwise order.
var Sides = [...]Side{Top, Right, Bottom, Left}

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// NextSide returns the side clockwise after s.
func NextSide(s Side) Side {
	return Sides[(int(s)+1)%len(Sides)]
}

// RandomSide picks a side uniformly.
func RandomSide(rng *rand.Rand) Side {
	return Sides[rng.IntN(len(Sides))]
}

// RandomPoint returns a uniformly random point on side s of a w×h canvas.
func RandomPoint(rng *rand.Rand, s Side, w, h float64) canvas.Point {
	switch s {
	case Top:
		return canvas.Point{X: rng.Float64() * w, Y: 0}
	case Right:
		return canvas.Point{X: w, Y: rng.Float64() * h}
	case Bottom:
		return canvas.Point{X: rng.Float64() * w, Y: h}
	default:
		return canvas.Point{X: 0, Y: rng.Float64() * h}
	}
}

// CornerPoint returns the corner shared by two sides. Order does not matter.
// Pairs without a shared corner fall through to the bottom-right corner.
func CornerPoint(s1, s2 Side, w, h float64) canvas.Point {
	has := func(s Side) bool { return s1 == s || s2 == s }

	switch {
	case has(Top) && has(Left):
		return canvas.Point{X: 0, Y: 0}
	case has(Top) && has(Right):
		return canvas.Point{X: w, Y: 0}
	case has(Bottom) && has(Left):
		return canvas.Point{X: 0, Y: h}
	default:
		return canvas.Point{X: w, Y: h}
	}
}

// Shape is a triangle anchored to two adjacent sides and their corner.
type Shape struct {
	From, To   Side
	Start, End canvas.Point
	Corner     canvas.Point
}

// NewShape generates a random shape for a w×h canvas.
func NewShape(rng *rand.Rand, w, h float64) Shape {
	from := RandomSide(rng)
	start := RandomPoint(rng, from, w, h)
	to := NextSide(from)
	end := RandomPoint(rng, to, w, h)
	return Shape{
		From:   from,
		To:     to,
		Start:  start,
		End:    end,
		Corner: CornerPoint(from, to, w, h),
	}
}

// Draw renders the shape on s as a triangle with intensity 1 over black.
func (sh Shape) Draw(s *canvas.Surface) {
	s.Background(0)
	s.Fill(1, 1, 1)
	s.Triangle(sh.Start, sh.End, sh.Corner)
}

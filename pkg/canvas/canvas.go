// Package canvas provides the drawing surface used by sketches.
//
// A [Surface] wraps an RGBA pixel buffer with a fogleman/gg context, so
// sketches can mix vector operations (filled triangles) with direct access
// to the flat byte buffer (four bytes per pixel, R G B A, row-major).
package canvas

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Surface is an offscreen RGBA canvas.
type Surface struct {
	im *image.RGBA
	dc *gg.Context
}

// New creates a transparent surface of the given size.
func New(width, height int) *Surface {
	im := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Surface{im: im, dc: gg.NewContextForRGBA(im)}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.im.Rect.Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.im.Rect.Dy() }

// Background paints every pixel an opaque grey of the given level.
func (s *Surface) Background(level uint8) {
	s.dc.SetRGB255(int(level), int(level), int(level))
	s.dc.Clear()
}

// Clear makes every pixel transparent black.
func (s *Surface) Clear() {
	clear(s.im.Pix)
}

// Fill sets the opaque colour used by Triangle.
func (s *Surface) Fill(r, g, b uint8) {
	s.dc.SetRGB255(int(r), int(g), int(b))
}

// Triangle fills the triangle a, b, c with the current fill colour.
func (s *Surface) Triangle(a, b, c Point) {
	s.dc.NewSubPath()
	s.dc.MoveTo(a.X, a.Y)
	s.dc.LineTo(b.X, b.Y)
	s.dc.LineTo(c.X, c.Y)
	s.dc.ClosePath()
	s.dc.Fill()
}

// Stroke sets the colour used by Point.
func (s *Surface) Stroke(c color.NRGBA) {
	s.dc.SetColor(c)
}

// Point replaces the pixel at (x, y) with the current stroke colour.
// Coordinates outside the surface are ignored.
func (s *Surface) Point(x, y int) {
	s.dc.SetPixel(x, y)
}

// Pix returns the flat pixel buffer. Mutations are visible to the surface.
func (s *Surface) Pix() []byte {
	return s.im.Pix
}

// AddFrom composites src onto s additively: every byte, alpha included, is
// the saturating sum of both surfaces. Both surfaces must have the same size.
func (s *Surface) AddFrom(src *Surface) {
	dst := s.im.Pix
	for i, v := range src.im.Pix[:min(len(dst), len(src.im.Pix))] {
		sum := uint16(dst[i]) + uint16(v)
		dst[i] = uint8(min(sum, 255))
	}
}

// Image returns the underlying image.
func (s *Surface) Image() *image.RGBA {
	return s.im
}

// EncodePNG writes the surface as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}

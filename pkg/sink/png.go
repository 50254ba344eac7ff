package sink

import (
	"bytes"

	"github.com/fogleman/gg"

	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale int
}

// WithScale sets an integer upscale factor (default 1).
func WithScale(s int) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG encodes the frame image as PNG.
func RenderPNG(f *sketch.Frame, opts ...PNGOption) ([]byte, error) {
	if f == nil || f.Image == nil {
		return nil, errors.New(errors.ErrCodeInternal, "frame has no image")
	}
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale must be at least 1, got %d", r.scale)
	}

	var dc *gg.Context
	if r.scale == 1 {
		dc = gg.NewContextForRGBA(f.Image)
	} else {
		b := f.Image.Bounds()
		dc = gg.NewContext(b.Dx()*r.scale, b.Dy()*r.scale)
		dc.Scale(float64(r.scale), float64(r.scale))
		dc.DrawImage(f.Image, 0, 0)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

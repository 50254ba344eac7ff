package watercolor

import (
	"bytes"
	"image"
	"testing"

	"github.com/matzehuels/tonesketch/pkg/canvas"
	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/noise"
	"github.com/matzehuels/tonesketch/pkg/pccs"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

func TestQuadrants500(t *testing.T) {
	got := Quadrants(500, 500)
	want := []image.Rectangle{
		image.Rect(0, 0, 251, 251),
		image.Rect(0, 251, 251, 500),
		image.Rect(251, 0, 500, 251),
		image.Rect(251, 251, 500, 500),
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Quadrants[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQuadrantsCoverOnce(t *testing.T) {
	sizes := [][2]int{{500, 500}, {7, 3}, {1, 1}, {2, 9}, {801, 600}}
	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		counts := make([]int, w*h)
		for _, q := range Quadrants(w, h) {
			for x := q.Min.X; x < q.Max.X; x++ {
				for y := q.Min.Y; y < q.Max.Y; y++ {
					counts[y*w+x]++
				}
			}
		}
		for i, c := range counts {
			if c != 1 {
				t.Fatalf("%dx%d: pixel %d covered %d times", w, h, i, c)
			}
		}
	}
}

func TestWash(t *testing.T) {
	s := canvas.New(6, 6)
	f := noise.New(3, noise.Detail{Octaves: 2, Falloff: 0.5})
	c := pccs.RGB{R: 200, G: 100, B: 50}
	r := image.Rect(0, 0, 3, 3)
	Wash(s, r, c, f, 0.37)

	for x := 0; x < 6; x++ {
		for y := 0; y < 6; y++ {
			px := s.Image().RGBAAt(x, y)
			inside := image.Pt(x, y).In(r)
			if !inside && px.A != 0 {
				t.Fatalf("pixel (%d,%d) outside wash was painted: %v", x, y, px)
			}
			if inside {
				want := f.Alpha(float64(x)*0.37, float64(y)*0.37)
				if px.A != want {
					t.Errorf("pixel (%d,%d) alpha = %d, want %d", x, y, px.A, want)
				}
			}
		}
	}
}

func TestNewValidates(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"zero size", Options{}, errors.ErrCodeInvalidSize},
		{"bad hue", Options{Width: 4, Height: 4, Hue: 99}, errors.ErrCodeInvalidHue},
		{"negative scale", Options{Width: 4, Height: 4, Scale: -1}, errors.ErrCodeInvalidInput},
		{"negative octaves", Options{Width: 4, Height: 4, Detail: noise.Detail{Octaves: -1}}, errors.ErrCodeInvalidInput},
		{"falloff one", Options{Width: 4, Height: 4, Detail: noise.Detail{Falloff: 1}}, errors.ErrCodeInvalidInput},
		{"negative falloff", Options{Width: 4, Height: 4, Detail: noise.Detail{Falloff: -0.5}}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts, 0); !errors.Is(err, tt.code) {
				t.Errorf("New error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	s, err := New(Options{Width: 20, Height: 16, Detail: noise.Detail{Octaves: 4}}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != sketch.NameWatercolor {
		t.Errorf("Name() = %q", s.Name())
	}

	f, err := s.Draw(sketch.NewRand(7))
	if err != nil {
		t.Fatalf("Draw error: %v", err)
	}
	if len(f.Washes) != 4 {
		t.Fatalf("len(Washes) = %d, want 4", len(f.Washes))
	}
	for i, w := range f.Washes {
		if w.NoiseSeed != int64(10+i) {
			t.Errorf("Washes[%d].NoiseSeed = %d, want %d", i, w.NoiseSeed, 10+i)
		}
		if !w.Tone.Supported() {
			t.Errorf("Washes[%d].Tone = %q is unsupported", i, w.Tone)
		}
		want, _ := pccs.ToRGB(w.Tone, f.Palette.Hue)
		if w.Color != want {
			t.Errorf("Washes[%d].Color = %v, want %v", i, w.Color, want)
		}
	}
	if f.Palette.Len() != 4 {
		t.Errorf("Palette.Len() = %d, want 4", f.Palette.Len())
	}
	if s.NextSeed() != 14 {
		t.Errorf("NextSeed() = %d, want 14", s.NextSeed())
	}

	next, _ := s.Draw(sketch.NewRand(7))
	if next.Washes[0].NoiseSeed != 14 {
		t.Errorf("second frame first seed = %d, want 14", next.Washes[0].NoiseSeed)
	}
}

func TestDrawReproducible(t *testing.T) {
	opts := Options{Width: 12, Height: 12, Hue: 5, Detail: noise.Detail{Octaves: 3}}
	a, _ := New(opts, 0)
	b, _ := New(opts, 0)
	fa, err := a.Draw(sketch.NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	fb, _ := b.Draw(sketch.NewRand(1))
	if !bytes.Equal(fa.Image.Pix, fb.Image.Pix) {
		t.Error("same seeds should produce identical frames")
	}
	if fa.Palette.Hue != 5 {
		t.Errorf("Palette.Hue = %v, want 5", fa.Palette.Hue)
	}
}

func TestSetNextSeed(t *testing.T) {
	s, err := New(Options{Width: 4, Height: 4}, 0)
	if err != nil {
		t.Fatal(err)
	}
	s.SetNextSeed(40)
	f, err := s.Draw(sketch.NewRand(1))
	if err != nil {
		t.Fatal(err)
	}
	if f.Washes[0].NoiseSeed != 40 || s.NextSeed() != 40+QuadrantCount {
		t.Errorf("first seed %d, next %d", f.Washes[0].NoiseSeed, s.NextSeed())
	}
}

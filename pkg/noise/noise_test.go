package noise

import (
	"testing"

	"github.com/matzehuels/tonesketch/pkg/errors"
)

func TestSampleRange(t *testing.T) {
	f := New(1, DefaultDetail())
	for x := 0; x < 50; x++ {
		for y := 0; y < 50; y++ {
			v := f.Sample(float64(x)*0.037, float64(y)*0.051)
			if v < 0 || v > 1 {
				t.Fatalf("Sample(%d, %d) = %v, outside [0, 1]", x, y, v)
			}
		}
	}
}

func TestDeterministic(t *testing.T) {
	a := New(99, DefaultDetail())
	b := New(99, DefaultDetail())
	for i := 0; i < 100; i++ {
		x, y := float64(i)*0.13, float64(i)*0.07
		if a.Sample(x, y) != b.Sample(x, y) {
			t.Fatalf("fields with the same seed differ at (%v, %v)", x, y)
		}
	}
}

func TestSeedsDiffer(t *testing.T) {
	a := New(1, DefaultDetail())
	b := New(2, DefaultDetail())
	differ := false
	for i := 0; i < 100 && !differ; i++ {
		x, y := float64(i)*0.13+0.5, float64(i)*0.07+0.25
		differ = a.Sample(x, y) != b.Sample(x, y)
	}
	if !differ {
		t.Error("fields with different seeds should differ somewhere")
	}
}

func TestDetailValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      Detail
		wantErr bool
	}{
		{"zero uses defaults", Detail{}, false},
		{"default", DefaultDetail(), false},
		{"low falloff", Detail{Octaves: 1, Falloff: 0.01}, false},
		{"negative octaves", Detail{Octaves: -3}, true},
		{"falloff one", Detail{Falloff: 1}, true},
		{"falloff above one", Detail{Falloff: 1.5}, true},
		{"negative falloff", Detail{Falloff: -0.1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("Validate() = %v, want INVALID_INPUT", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestDetailNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Detail
		want Detail
	}{
		{"zero", Detail{}, DefaultDetail()},
		{"custom", Detail{Octaves: 4, Falloff: 0.25}, Detail{Octaves: 4, Falloff: 0.25}},
		{"falloff too high", Detail{Octaves: 2, Falloff: 1.5}, Detail{Octaves: 2, Falloff: DefaultFalloff}},
		{"negative octaves", Detail{Octaves: -3, Falloff: 0.5}, DefaultDetail()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := New(0, tt.in).Detail(); got != tt.want {
				t.Errorf("Detail() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAlpha(t *testing.T) {
	f := New(5, Detail{Octaves: 3, Falloff: 0.5})
	for i := 0; i < 20; i++ {
		x, y := float64(i)*0.31, float64(i)*0.17
		want := uint8(f.Sample(x, y) * 255)
		if got := f.Alpha(x, y); got != want {
			t.Errorf("Alpha(%v, %v) = %d, want %d", x, y, got, want)
		}
	}
	if f.Seed() != 5 {
		t.Errorf("Seed() = %d, want 5", f.Seed())
	}
}

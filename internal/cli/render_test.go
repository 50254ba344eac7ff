package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/tonesketch/pkg/config"
	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/pipeline"
)

func TestApplyConfig(t *testing.T) {
	cfg := config.Config{
		Canvas:     config.Canvas{Width: 320, Height: 200},
		Output:     config.Output{Formats: []string{"json"}},
		Watercolor: config.Watercolor{NoiseScale: 0.01, Octaves: 4, Falloff: 0.25},
	}

	t.Run("fills zero values", func(t *testing.T) {
		var opts pipeline.Options
		applyConfig(&opts, cfg)
		if opts.Width != 320 || opts.Height != 200 {
			t.Errorf("size = %dx%d", opts.Width, opts.Height)
		}
		if len(opts.Formats) != 1 || opts.Formats[0] != "json" {
			t.Errorf("Formats = %v", opts.Formats)
		}
		if opts.NoiseScale != 0.01 || opts.Octaves != 4 || opts.Falloff != 0.25 {
			t.Errorf("watercolor = %v %v %v", opts.NoiseScale, opts.Octaves, opts.Falloff)
		}
	})

	t.Run("flags win", func(t *testing.T) {
		opts := pipeline.Options{Width: 64, Formats: []string{"png"}, Octaves: 2}
		applyConfig(&opts, cfg)
		if opts.Width != 64 || opts.Height != 200 {
			t.Errorf("size = %dx%d", opts.Width, opts.Height)
		}
		if opts.Formats[0] != "png" || opts.Octaves != 2 {
			t.Errorf("flag values overwritten: %+v", opts)
		}
	})
}

func TestParseHueFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 0, false},
		{"8", 8, false},
		{"Y", 8, false},
		{"nope", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			h, err := parseHueFlag(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHueFlag(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if int(h) != tt.want {
				t.Errorf("parseHueFlag(%q) = %d, want %d", tt.in, int(h), tt.want)
			}
		})
	}
}

func newTestCLI(t *testing.T) *CLI {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return New(io.Discard, LogInfo)
}

func TestRunRender(t *testing.T) {
	c := newTestCLI(t)
	out := filepath.Join(t.TempDir(), "frames", "wash.png")

	err := c.runRender(context.Background(), "watercolor", renderOpts{
		output:  out,
		formats: "png,json",
		width:   24,
		height:  16,
		seed:    5,
		count:   2,
		scale:   1,
	})
	if err != nil {
		t.Fatalf("runRender error: %v", err)
	}

	for _, name := range []string{"wash-5.png", "wash-5.json", "wash-6.png", "wash-6.json"} {
		if _, err := os.Stat(filepath.Join(filepath.Dir(out), name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestRunRenderErrors(t *testing.T) {
	c := newTestCLI(t)

	tests := []struct {
		name string
		opts renderOpts
		code errors.Code
	}{
		{"zero count", renderOpts{count: 0}, errors.ErrCodeInvalidInput},
		{"bad hue", renderOpts{count: 1, hue: "zz"}, errors.ErrCodeInvalidHue},
		{"bad format", renderOpts{count: 1, formats: "svg"}, errors.ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.runRender(context.Background(), "overlay", tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestRunRenderMissingConfig(t *testing.T) {
	c := newTestCLI(t)
	c.configPath = filepath.Join(t.TempDir(), "missing.toml")

	err := c.runRender(context.Background(), "overlay", renderOpts{count: 1})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

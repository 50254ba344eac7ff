package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/tonesketch/pkg/errors"
)

func TestParse(t *testing.T) {
	data := []byte(`
[canvas]
width = 1200
height = 800

[output]
dir = "renders"
formats = ["png", "json"]

[watercolor]
noise_scale = 0.004
octaves = 8
falloff = 0.4
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Canvas.Width != 1200 || cfg.Canvas.Height != 800 {
		t.Errorf("Canvas = %+v", cfg.Canvas)
	}
	if cfg.Output.Dir != "renders" || !slices.Equal(cfg.Output.Formats, []string{"png", "json"}) {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.Watercolor != (Watercolor{NoiseScale: 0.004, Octaves: 8, Falloff: 0.4}) {
		t.Errorf("Watercolor = %+v", cfg.Watercolor)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if cfg.Canvas.Width != 0 || cfg.Output.Dir != "" {
		t.Errorf("empty config should be zero, got %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[canvas\nwidth = 1"},
		{"unknown key", "[canvas]\ndepth = 3"},
		{"unknown section", "[server]\nport = 80"},
		{"negative width", "[canvas]\nwidth = -1"},
		{"huge height", "[canvas]\nheight = 100000"},
		{"falloff one", "[watercolor]\nfalloff = 1.0"},
		{"negative octaves", "[watercolor]\noctaves = -2"},
		{"negative scale", "[watercolor]\nnoise_scale = -0.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Parse error = %v, want %v", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoadExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[canvas]\nwidth = 32\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Canvas.Width != 32 {
		t.Errorf("Canvas.Width = %d, want 32", cfg.Canvas.Width)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("missing explicit file error = %v", err)
	}
}

func TestLoadDefaultLocation(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no default file error: %v", err)
	}
	if cfg.Canvas.Width != 0 {
		t.Errorf("expected zero config, got %+v", cfg)
	}

	path := filepath.Join(dir, appName, FileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[output]\ndir = \"out\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Output.Dir != "out" {
		t.Errorf("Output.Dir = %q, want out", cfg.Output.Dir)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join("/tmp/xdg", "tonesketch", "config.toml") {
		t.Errorf("DefaultPath() = %q", p)
	}
}

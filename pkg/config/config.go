// Package config loads tonesketch settings from a TOML file.
//
// The file is optional. Values that are absent or zero fall back to the
// pipeline defaults, and command-line flags override anything set here.
//
// Example config.toml:
//
//	[canvas]
//	width = 1200
//	height = 800
//
//	[output]
//	dir = "renders"
//	formats = ["png", "json"]
//
//	[watercolor]
//	noise_scale = 0.002
//	octaves = 16
//	falloff = 0.5
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/tonesketch/pkg/errors"
)

const appName = "tonesketch"

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config holds file-level settings.
type Config struct {
	Canvas     Canvas     `toml:"canvas"`
	Output     Output     `toml:"output"`
	Watercolor Watercolor `toml:"watercolor"`
}

// Canvas sets the frame size. Zero keeps the per-sketch default.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Output sets where and how frames are written.
type Output struct {
	Dir     string   `toml:"dir"`
	Formats []string `toml:"formats"`
}

// Watercolor tunes the noise wash.
type Watercolor struct {
	NoiseScale float64 `toml:"noise_scale"`
	Octaves    int     `toml:"octaves"`
	Falloff    float64 `toml:"falloff"`
}

// Parse decodes TOML data. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges. Zero values are allowed and mean "default".
func (c Config) Validate() error {
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size must not be negative")
	}
	if c.Canvas.Width > errors.MaxDimension || c.Canvas.Height > errors.MaxDimension {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size exceeds %d", errors.MaxDimension)
	}
	if c.Watercolor.NoiseScale < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "watercolor.noise_scale must not be negative")
	}
	if c.Watercolor.Octaves < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "watercolor.octaves must not be negative")
	}
	if c.Watercolor.Falloff < 0 || c.Watercolor.Falloff >= 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "watercolor.falloff must be in [0, 1)")
	}
	return nil
}

// Load reads the config at path. An empty path reads the default location,
// where a missing file is not an error. A missing explicit path is.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// DefaultPath returns the config location using the XDG standard
// (~/.config/tonesketch/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, FileName), nil
}

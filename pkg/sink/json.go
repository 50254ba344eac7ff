package sink

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tonesketch/pkg/buildinfo"
	"github.com/matzehuels/tonesketch/pkg/errors"
	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// JSONOption configures manifest rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id      string
	seed    uint64
	created time.Time
}

// WithJSONSeed records the seed that reproduces the frame.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONID sets the manifest ID. Without it a random UUID is used.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONCreated sets the creation timestamp. Without it the current time
// is used.
func WithJSONCreated(t time.Time) JSONOption { return func(r *jsonRenderer) { r.created = t } }

// Manifest describes a rendered frame.
type Manifest struct {
	ID        string     `json:"id"`
	Sketch    string     `json:"sketch"`
	Seed      uint64     `json:"seed"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Hue       string     `json:"hue"`
	Tones     []string   `json:"tones"`
	Palette   []string   `json:"palette"`
	Polygons  int        `json:"polygons,omitempty"`
	Washes    []jsonWash `json:"washes,omitempty"`
	Version   string     `json:"version"`
	CreatedAt time.Time  `json:"created_at"`
}

type jsonWash struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Tone      string `json:"tone"`
	Color     string `json:"color"`
	NoiseSeed int64  `json:"noise_seed"`
}

// NewManifest builds the manifest for f.
func NewManifest(f *sketch.Frame, opts ...JSONOption) Manifest {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.id == "" {
		r.id = uuid.NewString()
	}
	if r.created.IsZero() {
		r.created = time.Now().UTC()
	}

	m := Manifest{
		ID:        r.id,
		Sketch:    f.Sketch,
		Seed:      r.seed,
		Hue:       f.Palette.Hue.String(),
		Palette:   f.Palette.Hex(),
		Polygons:  f.Polygons,
		Version:   buildinfo.Version,
		CreatedAt: r.created,
	}
	if f.Image != nil {
		m.Width = f.Image.Bounds().Dx()
		m.Height = f.Image.Bounds().Dy()
	}
	for _, t := range f.Palette.Tones {
		m.Tones = append(m.Tones, t.String())
	}
	for _, w := range f.Washes {
		m.Washes = append(m.Washes, jsonWash{
			X:         w.Bounds.Min.X,
			Y:         w.Bounds.Min.Y,
			Width:     w.Bounds.Dx(),
			Height:    w.Bounds.Dy(),
			Tone:      w.Tone.String(),
			Color:     w.Color.Hex(),
			NoiseSeed: w.NoiseSeed,
		})
	}
	return m
}

// RenderJSON encodes the frame manifest as indented JSON.
func RenderJSON(f *sketch.Frame, opts ...JSONOption) ([]byte, error) {
	if f == nil {
		return nil, errors.New(errors.ErrCodeInternal, "nil frame")
	}
	data, err := json.MarshalIndent(NewManifest(f, opts...), "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	return append(data, '\n'), nil
}

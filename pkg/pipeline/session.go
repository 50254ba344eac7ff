package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/tonesketch/pkg/sketch"
)

// Session draws successive frames of one sketch instance, as the viewer
// does on every click. Each redraw uses the next frame seed. The watercolor
// noise counter is pinned to NoiseSeed(frame seed) before every draw, so a
// saved frame seed reproduces the frame through Runner.Execute.
//
// A Session is not safe for concurrent use.
type Session struct {
	runner *Runner
	opts   Options
	sketch sketch.Sketch

	next  uint64
	seed  uint64
	frame *sketch.Frame
}

// noiseSeeder is implemented by sketches whose noise seeds come from a
// counter rather than from the frame generator.
type noiseSeeder interface {
	SetNextSeed(seed int64)
}

// NewSession validates opts and builds the sketch. No frame is drawn until
// the first call to Redraw.
func NewSession(r *Runner, opts Options) (*Session, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	s, err := NewSketch(opts)
	if err != nil {
		return nil, err
	}
	return &Session{runner: r, opts: opts, sketch: s, next: opts.Seed}, nil
}

// Redraw draws the next frame and makes it current.
func (s *Session) Redraw(ctx context.Context) (*sketch.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seed := s.next
	if seed == 0 {
		seed = FreshSeed()
	}
	if ns, ok := s.sketch.(noiseSeeder); ok {
		ns.SetNextSeed(NoiseSeed(seed))
	}
	frame, _, err := s.runner.Draw(ctx, s.sketch, seed)
	if err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}
	s.seed, s.frame = seed, frame
	s.next = seed + 1
	return frame, nil
}

// Frame returns the current frame, or nil before the first Redraw.
func (s *Session) Frame() *sketch.Frame { return s.frame }

// Seed returns the seed of the current frame.
func (s *Session) Seed() uint64 { return s.seed }

// Options returns the validated options the session was built with.
func (s *Session) Options() Options { return s.opts }

// Encode renders the current frame in the session's formats.
func (s *Session) Encode(ctx context.Context) (map[string][]byte, error) {
	if s.frame == nil {
		return nil, fmt.Errorf("encode: no frame drawn")
	}
	opts := s.opts
	opts.Seed = s.seed
	return Encode(ctx, s.frame, opts)
}

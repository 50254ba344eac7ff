// Package viewer shows sketch frames in a desktop window.
//
// A left click draws a new frame, s saves the current one, and q or Esc
// closes the window. Frames are only redrawn on click; between clicks the
// window keeps presenting the last frame.
package viewer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/matzehuels/tonesketch/pkg/buildinfo"
	"github.com/matzehuels/tonesketch/pkg/pipeline"
)

// SaveFunc persists the current frame's encoded artifacts and returns the
// written paths.
type SaveFunc func(seed uint64, artifacts map[string][]byte) ([]string, error)

// Options configures the window.
type Options struct {
	// Scale multiplies the window size relative to the frame. Zero means 1.
	Scale int

	// Save is called when s is pressed. Nil disables saving.
	Save SaveFunc

	Logger *log.Logger
}

// Run opens a window for the session and blocks until it is closed or ctx
// is cancelled. The first frame is drawn before the window opens.
func Run(ctx context.Context, s *pipeline.Session, opts Options) error {
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if _, err := s.Redraw(ctx); err != nil {
		return err
	}

	g := &game{ctx: ctx, session: s, opts: opts, dirty: true}
	po := s.Options()
	ebiten.SetWindowTitle(fmt.Sprintf("tonesketch %s (%s)", po.Sketch, buildinfo.Short()))
	ebiten.SetWindowSize(po.Width*opts.Scale, po.Height*opts.Scale)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.err
}

type game struct {
	ctx     context.Context
	session *pipeline.Session
	opts    Options

	img   *ebiten.Image
	dirty bool

	// err records a failure that ended the loop.
	err error
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		g.err = err
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if _, err := g.session.Redraw(g.ctx); err != nil {
			g.err = err
			return ebiten.Termination
		}
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	return nil
}

// save encodes and persists the current frame. Failures are logged and the
// window stays open.
func (g *game) save() {
	if g.opts.Save == nil {
		return
	}
	artifacts, err := g.session.Encode(g.ctx)
	if err != nil {
		g.opts.Logger.Error("encode frame", "err", err)
		return
	}
	paths, err := g.opts.Save(g.session.Seed(), artifacts)
	if err != nil {
		g.opts.Logger.Error("save frame", "err", err)
		return
	}
	for _, p := range paths {
		g.opts.Logger.Info("saved frame", "path", p, "seed", g.session.Seed())
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	f := g.session.Frame()
	if f == nil {
		return
	}
	b := f.Image.Bounds()
	if g.img == nil || g.img.Bounds().Dx() != b.Dx() || g.img.Bounds().Dy() != b.Dy() {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
		g.dirty = true
	}
	if g.dirty {
		g.img.WritePixels(f.Image.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	po := g.session.Options()
	return po.Width, po.Height
}

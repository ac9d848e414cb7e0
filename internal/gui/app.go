//go:build ebiten

package gui

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	log "github.com/sirupsen/logrus"

	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/palette"
)

// Game adapts a colony to the ebiten.Game interface.
type Game struct {
	factory ColonyFactory
	colony  *langton.Colony
	palette palette.Palette
	opts    Options

	img    *ebiten.Image
	pixels []byte

	paused   bool
	tickOnce bool
	err      error
}

// New constructs a Game from a colony factory.
func New(factory ColonyFactory, p palette.Palette, opts Options) (*Game, error) {
	c, err := factory()
	if err != nil {
		return nil, err
	}
	if err := p.Check(c.Rules().Len()); err != nil {
		return nil, err
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	n := c.Size()
	return &Game{
		factory: factory,
		colony:  c,
		palette: p,
		opts:    opts,
		img:     ebiten.NewImage(n, n),
		pixels:  make([]byte, n*n*4),
	}, nil
}

func (g *Game) reset() {
	c, err := g.factory()
	if err != nil {
		g.err = err
		return
	}
	g.colony = c
	g.err = nil
	g.tickOnce = false
}

// Update handles input and advances the colony by one tick per frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}

	done := g.opts.MaxTicks > 0 && g.colony.Ticks() >= g.opts.MaxTicks
	if g.err == nil && !done && (!g.paused || g.tickOnce) {
		if err := g.colony.Step(); err != nil {
			g.err = err
			log.WithError(err).WithField("tick", g.colony.Ticks()).Error("colony step failed")
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the grid scaled to the window, with the tick count as title.
func (g *Game) Draw(screen *ebiten.Image) {
	fillPixels(g.pixels, g.colony.Grid(), g.palette, g.colony.Ants())
	g.img.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.opts.Scale), float64(g.opts.Scale))
	screen.DrawImage(g.img, op)

	msg := fmt.Sprintf("%d", g.colony.Ticks())
	if g.err != nil {
		msg += "  " + g.err.Error()
	}
	ebitenutil.DebugPrint(screen, msg)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.colony.Size() * g.opts.Scale
	return side, side
}

// Run opens a window and blocks until it is closed.
func Run(factory ColonyFactory, p palette.Palette, opts Options) error {
	game, err := New(factory, p, opts)
	if err != nil {
		return err
	}
	side := game.colony.Size() * game.opts.Scale

	ebiten.SetWindowTitle(opts.Title+" - "+ game.colony.Rules().String())
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}
	ebiten.SetWindowSize(side, side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

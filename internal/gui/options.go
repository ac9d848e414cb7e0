package gui

import (
	"errors"

	"github.com/san-kum/antsim/internal/langton"
)

// ErrNoGUI is returned by builds without the ebiten tag.
var ErrNoGUI = errors.New("gui: window renderer requires building with the 'ebiten' tag")

// ColonyFactory rebuilds the colony on reset.
type ColonyFactory func() (*langton.Colony, error)

// Options configures the window renderer.
type Options struct {
	Title    string
	Scale    int
	TPS      int
	MaxTicks int
}

func DefaultOptions() Options {
	return Options{Title: "antsim", Scale: 6, TPS: 60}
}

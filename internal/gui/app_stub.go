//go:build !ebiten

package gui

import "github.com/san-kum/antsim/internal/palette"

// Run reports that the window renderer was not compiled in.
func Run(ColonyFactory, palette.Palette, Options) error {
	return ErrNoGUI
}

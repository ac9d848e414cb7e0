package gui

import (
	"image/color"

	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/palette"
)

var antRGBA = color.RGBA{R: 0xff, G: 0x33, B: 0x55, A: 0xff}

// fillPixels writes one RGBA pixel per cell into buf, north up, and marks
// every ant on top.
func fillPixels(buf []byte, g *langton.Grid, p palette.Palette, ants []langton.Ant) {
	n := g.Size()
	lut := make([]color.RGBA, len(p))
	for i := range p {
		lut[i] = p.RGBA(i)
	}
	last := len(lut) - 1

	for r := 0; r < n; r++ {
		y := n - 1 - r
		for c := 0; c < n; c++ {
			s := g.At(r, c)
			if s > last {
				s = last
			}
			put(buf, (y*n+c)*4, lut[s])
		}
	}
	for _, a := range ants {
		put(buf, ((n-1-a.Row)*n+a.Col)*4, antRGBA)
	}
}

func put(buf []byte, base int, c color.RGBA) {
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

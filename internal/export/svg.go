package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/palette"
)

// GridToSVG draws the grid with one square per cell, coloured by state.
// Row 0 is drawn at the bottom so that north points up.
func GridToSVG(g *langton.Grid, p palette.Palette, scale int) string {
	if g == nil || len(p) == 0 {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	n := g.Size()
	side := n * scale
	hex := p.Hex()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
<rect width="100%%" height="100%%" fill="%s"/>
`, side, side, side, side, hex[0]))

	for r := 0; r < n; r++ {
		y := (n - 1 - r) * scale
		for c := 0; c < n; c++ {
			state := g.At(r, c)
			if state == 0 {
				continue
			}
			fill := hex[len(hex)-1]
			if state < len(hex) {
				fill = hex[state]
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, c*scale, y, scale, scale, fill))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// AntsToSVG overlays ant markers on an SVG produced by GridToSVG.
func AntsToSVG(svg string, ants []langton.Ant, n, scale int, fill string) string {
	if svg == "" || len(ants) == 0 {
		return svg
	}
	if scale <= 0 {
		scale = 1
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<g fill=\"%s\">\n", fill))
	half := float64(scale) / 2
	for _, a := range ants {
		cx := float64(a.Col*scale) + half
		cy := float64((n-1-a.Row)*scale) + half
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, half*0.8))
	}
	sb.WriteString("</g>\n")
	return strings.Replace(svg, "</svg>", sb.String()+"</svg>", 1)
}

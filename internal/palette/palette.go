// Package palette maps cell states to display colours.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidColor = errors.New("palette: invalid colour")
	ErrMismatch     = errors.New("palette: colour count must equal rule length")
)

// Palette holds one colour per cell state; index i colours state i.
type Palette []colorful.Color

// ParseColor accepts "#rrggbb" or three comma separated channels in [0, 1].
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		return c, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	var ch [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 || v > 1 {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		ch[i] = v
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func Parse(specs []string) (Palette, error) {
	p := make(Palette, len(specs))
	for i, s := range specs {
		c, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}

// Default returns white for state 0, black for the second state of a
// two-state rule, and an even ramp of greens otherwise.
func Default(states int) Palette {
	if states <= 0 {
		return nil
	}
	p := make(Palette, states)
	p[0] = colorful.Color{R: 1, G: 1, B: 1}
	if states == 2 {
		p[1] = colorful.Color{}
		return p
	}
	for i := 1; i < states; i++ {
		p[i] = colorful.Color{G: float64(i) / float64(states-1)}
	}
	return p
}

// Check verifies there is exactly one colour per state.
func (p Palette) Check(states int) error {
	if len(p) != states {
		return fmt.Errorf("%w: %d colours for %d states", ErrMismatch, len(p), states)
	}
	return nil
}

// Hex returns "#rrggbb" strings, for lipgloss and SVG output.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Clamped().Hex()
	}
	return out
}

// RGBA returns the opaque colour for state i, clamping i into range.
func (p Palette) RGBA(i int) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p) {
		i = len(p) - 1
	}
	r, g, b := p[i].Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

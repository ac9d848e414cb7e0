package export

import (
	"strings"
	"testing"

	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/palette"
)

func TestGridToSVG(t *testing.T) {
	c, _ := langton.New(11, "110")
	c.AddAnt(langton.WithHeading(langton.East), langton.WithPosition(5, 5))
	for i := 0; i < 4; i++ {
		c.Step()
	}

	p := palette.Default(3)
	svg := GridToSVG(c.Grid(), p, 4)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("not a complete svg document")
	}
	if !strings.Contains(svg, `width="44"`) {
		t.Error("expected 11*4 pixel side")
	}
	// Background plus one rect per painted cell.
	if got := strings.Count(svg, "<rect"); got != 1+c.Grid().Count() {
		t.Errorf("expected %d rects, got %d", 1+c.Grid().Count(), got)
	}
	// Cell (5,5) is drawn at y = (11-1-5)*4.
	if !strings.Contains(svg, `<rect x="20" y="20" width="4" height="4" fill="#008000"/>`) {
		t.Error("missing rect for the first painted cell")
	}
}

func TestGridToSVG_Empty(t *testing.T) {
	if GridToSVG(nil, palette.Default(2), 1) != "" {
		t.Error("nil grid should produce no svg")
	}
	c, _ := langton.New(3, "10")
	if GridToSVG(c.Grid(), nil, 1) != "" {
		t.Error("empty palette should produce no svg")
	}
}

func TestAntsToSVG(t *testing.T) {
	c, _ := langton.New(5, "10")
	c.AddAnt(langton.WithHeading(langton.North), langton.WithPosition(0, 0))
	c.AddAnt(langton.WithHeading(langton.South), langton.WithPosition(4, 4))

	svg := AntsToSVG(GridToSVG(c.Grid(), palette.Default(2), 2), c.Ants(), 5, 2, "#ff0000")
	if strings.Count(svg, "<circle") != 2 {
		t.Error("expected one marker per ant")
	}
	if !strings.HasSuffix(svg, "</g>\n</svg>\n") {
		t.Error("markers should close before the svg end tag")
	}
	if !strings.Contains(svg, `cx="1.0" cy="9.0"`) {
		t.Error("ant at row 0 should be drawn at the bottom")
	}
}

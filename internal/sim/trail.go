package sim

import "github.com/san-kum/antsim/internal/langton"

// Point is a position on the unwrapped plane.
type Point struct {
	Row, Col int
}

// Trail records the path of one ant with the torus unrolled, so crossing an
// edge continues the path instead of jumping to the far side.
type Trail struct {
	ant    int
	n      int
	last   langton.Ant
	points []Point
}

// NewTrail starts recording ant i of c from its current position.
func NewTrail(c *langton.Colony, i int) *Trail {
	a, _ := c.Ant(i)
	return &Trail{
		ant:    i,
		n:      c.Size(),
		last:   a,
		points: []Point{{a.Row, a.Col}},
	}
}

func (t *Trail) OnTick(c *langton.Colony) {
	a, ok := c.Ant(t.ant)
	if !ok {
		return
	}
	dr := unwrap(a.Row-t.last.Row, t.n)
	dc := unwrap(a.Col-t.last.Col, t.n)
	p := t.points[len(t.points)-1]
	t.points = append(t.points, Point{p.Row + dr, p.Col + dc})
	t.last = a
}

// Points returns the position after each tick; index 0 is the start.
func (t *Trail) Points() []Point { return t.points }

func unwrap(d, n int) int {
	switch {
	case d > 1:
		return d - n
	case d < -1:
		return d + n
	}
	return d
}

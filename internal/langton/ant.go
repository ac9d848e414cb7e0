package langton

import "fmt"

// Ant is a single agent. Its position is bounded only by the grid it walks.
type Ant struct {
	Heading Heading
	Row     int
	Col     int
}

// NewAnt returns an ant at (row, col) facing h.
func NewAnt(h Heading, row, col int) (*Ant, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeading, h)
	}
	return &Ant{Heading: h, Row: row, Col: col}, nil
}

// Turn rotates the ant by the rule bit of the cell it stands on.
func (a *Ant) Turn(g *Grid, r Rules) error {
	bit, err := r.Bit(g.At(a.Row, a.Col))
	if err != nil {
		return fmt.Errorf("ant at (%d,%d): %w", a.Row, a.Col, err)
	}
	a.Heading = a.Heading.Turn(bit)
	return nil
}

// Paint advances the state of the ant's cell, wrapping to zero at len(rules).
func (a *Ant) Paint(g *Grid, r Rules) {
	i := g.index(a.Row, a.Col)
	g.cells[i]++
	if g.cells[i] == r.Len() {
		g.cells[i] = 0
	}
}

// Move steps one cell forward on an n×n torus.
func (a *Ant) Move(n int) {
	axis, delta := a.Heading.Delta()
	p := &a.Col
	if axis == AxisRow {
		p = &a.Row
	}
	*p += delta
	if *p < 0 {
		*p = n - 1
	} else if *p == n {
		*p = 0
	}
}

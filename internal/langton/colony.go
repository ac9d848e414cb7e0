package langton

import (
	"fmt"
	"math/rand/v2"
)

// Colony owns the grid, the rule string and the ants, and advances them
// together one tick at a time.
type Colony struct {
	grid  *Grid
	rules Rules
	ants  []*Ant
	ticks int
	rng   *rand.Rand
}

// Option configures a Colony at construction.
type Option func(*Colony)

// WithSeed makes random ant placement reproducible.
func WithSeed(seed int64) Option {
	return func(c *Colony) { c.rng = rand.New(rand.NewPCG(uint64(seed), 0)) }
}

// WithRand injects the source used for random ant placement.
func WithRand(r *rand.Rand) Option {
	return func(c *Colony) {
		if r != nil {
			c.rng = r
		}
	}
}

// New creates an n×n all-zero colony governed by rules.
func New(n int, rules string, opts ...Option) (*Colony, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGridSize, n)
	}
	r, err := ParseRules(rules)
	if err != nil {
		return nil, err
	}
	c := &Colony{grid: newGrid(n), rules: r}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c, nil
}

// AntOption fixes one attribute of a new ant. Attributes left unset are
// drawn uniformly at random.
type AntOption func(*placement)

type placement struct {
	heading  *Heading
	row, col *int
}

// WithHeading fixes the initial heading.
func WithHeading(h Heading) AntOption {
	return func(s *placement) { s.heading = &h }
}

// WithRow fixes the initial row.
func WithRow(row int) AntOption {
	return func(s *placement) { s.row = &row }
}

// WithCol fixes the initial column.
func WithCol(col int) AntOption {
	return func(s *placement) { s.col = &col }
}

// WithPosition fixes both coordinates.
func WithPosition(row, col int) AntOption {
	return func(s *placement) {
		s.row = &row
		s.col = &col
	}
}

// AddAnt appends an ant to the update order and returns a copy of it.
func (c *Colony) AddAnt(opts ...AntOption) (Ant, error) {
	var p placement
	for _, opt := range opts {
		opt(&p)
	}

	n := c.grid.n
	// Draw order (row, col, heading) keeps seeded placements stable.
	var row, col int
	if p.row != nil {
		row = *p.row
	} else {
		row = c.rng.IntN(n)
	}
	if p.col != nil {
		col = *p.col
	} else {
		col = c.rng.IntN(n)
	}
	var h Heading
	if p.heading != nil {
		h = *p.heading
	} else {
		h = Heading(c.rng.IntN(numHeadings))
	}

	if row < 0 || row >= n || col < 0 || col >= n {
		return Ant{}, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrInvalidPosition, row, col, n, n)
	}
	a, err := NewAnt(h, row, col)
	if err != nil {
		return Ant{}, err
	}
	c.ants = append(c.ants, a)
	return *a, nil
}

// Step advances the colony by one tick: every ant turns, then every ant
// paints, then every ant moves, each pass in insertion order. The step is
// rejected before any mutation if an ant stands on a state the rules cannot
// index.
func (c *Colony) Step() error {
	for i, a := range c.ants {
		if _, err := c.rules.Bit(c.grid.At(a.Row, a.Col)); err != nil {
			return fmt.Errorf("ant %d at (%d,%d): %w", i, a.Row, a.Col, err)
		}
	}

	c.ticks++
	for _, a := range c.ants {
		// Validated above; the grid is unchanged until the paint pass.
		_ = a.Turn(c.grid, c.rules)
	}
	for _, a := range c.ants {
		a.Paint(c.grid, c.rules)
	}
	for _, a := range c.ants {
		a.Move(c.grid.n)
	}
	return nil
}

// Grid exposes the current board.
func (c *Colony) Grid() *Grid { return c.grid }

// Size returns the grid side length.
func (c *Colony) Size() int { return c.grid.n }

// Rules returns the rule string.
func (c *Colony) Rules() Rules { return c.rules }

// Ticks returns the number of completed steps.
func (c *Colony) Ticks() int { return c.ticks }

// Ants returns a snapshot of the ants in update order.
func (c *Colony) Ants() []Ant {
	out := make([]Ant, len(c.ants))
	for i, a := range c.ants {
		out[i] = *a
	}
	return out
}

// Ant returns a copy of the i-th ant in update order.
func (c *Colony) Ant(i int) (Ant, bool) {
	if i < 0 || i >= len(c.ants) {
		return Ant{}, false
	}
	return *c.ants[i], true
}

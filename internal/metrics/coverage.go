package metrics

import "github.com/san-kum/antsim/internal/langton"

// Coverage is the fraction of cells in a non-zero state at the last
// observation.
type Coverage struct {
	name  string
	value float64
}

func NewCoverage() *Coverage {
	return &Coverage{name: "coverage"}
}

func (m *Coverage) Name() string { return m.name }

func (m *Coverage) Observe(c *langton.Colony) {
	n := c.Size()
	m.value = float64(c.Grid().Count()) / float64(n*n)
}

func (m *Coverage) Value() float64 { return m.value }

func (m *Coverage) Reset() { m.value = 0 }

// Visited counts the distinct cells any ant has stood on.
type Visited struct {
	name string
	seen map[int]struct{}
}

func NewVisited() *Visited {
	return &Visited{name: "visited", seen: make(map[int]struct{})}
}

func (m *Visited) Name() string { return m.name }

func (m *Visited) Observe(c *langton.Colony) {
	n := c.Size()
	for _, a := range c.Ants() {
		m.seen[a.Row*n+a.Col] = struct{}{}
	}
}

func (m *Visited) Value() float64 { return float64(len(m.seen)) }

func (m *Visited) Reset() { m.seen = make(map[int]struct{}) }

package metrics

import "github.com/san-kum/antsim/internal/langton"

// RightTurns is the fraction of ticks in which one ant turned by a 1 bit
// (N→E, E→S, S→W, W→N).
type RightTurns struct {
	name    string
	ant     int
	prev    langton.Heading
	started bool
	right   int
	total   int
}

func NewRightTurns(ant int) *RightTurns {
	return &RightTurns{name: "right_turns", ant: ant}
}

func (m *RightTurns) Name() string { return m.name }

func (m *RightTurns) Observe(c *langton.Colony) {
	a, ok := c.Ant(m.ant)
	if !ok {
		return
	}
	if m.started {
		if a.Heading == m.prev.Turn(1) {
			m.right++
		}
		m.total++
	}
	m.prev = a.Heading
	m.started = true
}

func (m *RightTurns) Value() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.right) / float64(m.total)
}

func (m *RightTurns) Reset() {
	m.started = false
	m.right = 0
	m.total = 0
}

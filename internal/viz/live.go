package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/antsim/internal/langton"
	"github.com/san-kum/antsim/internal/palette"
)

const (
	historyCapacity = 600
	maxSpeed        = 1024
)

type TickMsg time.Time

// ColonyFactory rebuilds the colony on reset.
type ColonyFactory func() (*langton.Colony, error)

// Model drives a colony at a fixed frame rate and draws it.
type Model struct {
	factory  ColonyFactory
	colony   *langton.Colony
	palette  palette.Palette
	glyphs   [][]string
	fps      int
	speed    int
	maxTicks int
	running  bool
	coverage []float64
	err      error
}

// NewModel builds the first colony. maxTicks stops stepping once reached;
// zero runs until quit.
func NewModel(factory ColonyFactory, p palette.Palette, fps, maxTicks int) (Model, error) {
	c, err := factory()
	if err != nil {
		return Model{}, err
	}
	if err := p.Check(c.Rules().Len()); err != nil {
		return Model{}, err
	}
	if fps <= 0 {
		fps = 60
	}
	return Model{
		factory:  factory,
		colony:   c,
		palette:  p,
		glyphs:   glyphTable(p.Hex()),
		fps:      fps,
		speed:    1,
		maxTicks: maxTicks,
		running:  true,
		coverage: make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the colony on every frame.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.advance(1)
			}
		case "+", "=":
			if m.speed < maxSpeed {
				m.speed *= 2
			}
		case "-", "_":
			if m.speed > 1 {
				m.speed /= 2
			}
		case "r":
			m.reset()
		}
		return m, nil
	case TickMsg:
		if m.running {
			m.advance(m.speed)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) advance(ticks int) {
	if m.err != nil || m.done() {
		return
	}
	for i := 0; i < ticks && !m.done(); i++ {
		if err := m.colony.Step(); err != nil {
			m.err = err
			m.running = false
			break
		}
	}
	n := m.colony.Size()
	m.coverage = append(m.coverage, float64(m.colony.Grid().Count())/float64(n*n))
	if len(m.coverage) > historyCapacity {
		m.coverage = m.coverage[1:]
	}
}

func (m *Model) reset() {
	c, err := m.factory()
	if err != nil {
		m.err = err
		return
	}
	m.colony = c
	m.err = nil
	m.coverage = m.coverage[:0]
}

func (m Model) done() bool {
	return m.maxTicks > 0 && m.colony.Ticks() >= m.maxTicks
}

// Colony exposes the colony being drawn.
func (m Model) Colony() *langton.Colony { return m.colony }

func (m Model) View() string {
	header := titleStyle.Render(fmt.Sprintf("langton's ant  rules %s", m.colony.Rules())) +
		"   " + tickStyle.Render(fmt.Sprintf("%d", m.colony.Ticks()))

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderGrid(), m.renderStats())
	help := helpStyle.Render("space pause · n step · +/- speed · r reset · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

func (m Model) renderGrid() string {
	n := m.colony.Size()
	g := m.colony.Grid()
	states := len(m.palette)
	none := states + 1

	ants := make(map[int]struct{})
	for _, a := range m.colony.Ants() {
		ants[a.Row*n+a.Col] = struct{}{}
	}
	index := func(row, col int) int {
		if _, ok := ants[row*n+col]; ok {
			return states
		}
		s := g.At(row, col)
		if s >= states {
			s = states - 1
		}
		return s
	}

	var b strings.Builder
	for top := n - 1; top >= 0; top -= 2 {
		bottom := top - 1
		for col := 0; col < n; col++ {
			lo := none
			if bottom >= 0 {
				lo = index(bottom, col)
			}
			b.WriteString(m.glyphs[index(top, col)][lo])
		}
		if top > 1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) renderStats() string {
	status := runStyle.Render("running")
	switch {
	case m.err != nil:
		status = errorStyle.Render(m.err.Error())
	case m.done():
		status = pausedStyle.Render("done")
	case !m.running:
		status = pausedStyle.Render("paused")
	}

	n := m.colony.Size()
	rows := []string{
		row("status", status),
		row("tick", fmt.Sprintf("%d", m.colony.Ticks())),
		row("grid", fmt.Sprintf("%d×%d", n, n)),
		row("ants", fmt.Sprintf("%d", len(m.colony.Ants()))),
		row("painted", fmt.Sprintf("%d", m.colony.Grid().Count())),
		row("speed", fmt.Sprintf("%d/frame", m.speed)),
	}
	if len(m.coverage) >= 2 {
		graph := asciigraph.Plot(m.coverage,
			asciigraph.Height(8),
			asciigraph.Width(40),
			asciigraph.Precision(3),
			asciigraph.Caption("coverage"),
		)
		rows = append(rows, graphStyle.Render(graph))
	}
	return statsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value)
}

// Run starts an interactive program for m on the alternate screen.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

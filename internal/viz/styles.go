package viz

import "github.com/charmbracelet/lipgloss"

const antColor = lipgloss.Color("#ff3355")

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff"))
	tickStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3366ff"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).PaddingTop(1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
	runStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
)

const halfBlock = "▀"

// glyphTable pre-renders every (top, bottom) colour pair. Index len(hex) is
// the ant marker and len(hex)+1 is "no cell" below an odd last row.
func glyphTable(hex []string) [][]string {
	colors := make([]lipgloss.TerminalColor, 0, len(hex)+2)
	for _, h := range hex {
		colors = append(colors, lipgloss.Color(h))
	}
	colors = append(colors, antColor, lipgloss.NoColor{})

	table := make([][]string, len(colors))
	for top := range colors {
		table[top] = make([]string, len(colors))
		for bottom := range colors {
			table[top][bottom] = lipgloss.NewStyle().
				Foreground(colors[top]).
				Background(colors[bottom]).
				Render(halfBlock)
		}
	}
	return table
}

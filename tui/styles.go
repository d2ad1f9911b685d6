package tui

import "github.com/charmbracelet/lipgloss"

// Palette for the dashboard. Walls are dark grey, the closed set deep
// purple, the open set neon blue, the final path neon green.
var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00b4d8"))

	styleFree    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2d2d3a"))
	styleWall    = lipgloss.NewStyle().Foreground(lipgloss.Color("#2d2d3a")).Background(lipgloss.Color("#2d2d3a"))
	styleVisited = lipgloss.NewStyle().Foreground(lipgloss.Color("#240046")).Background(lipgloss.Color("#240046"))
	styleQueued  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00b4d8")).Background(lipgloss.Color("#00b4d8"))
	stylePath    = lipgloss.NewStyle().Foreground(lipgloss.Color("#39ff14")).Background(lipgloss.Color("#39ff14"))
	styleStart   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f12")).Background(lipgloss.Color("#ffffff"))
	styleGoal    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#ff006e"))

	styleBars  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7209b7"))
	styleStats = lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa"))
	styleHelp  = lipgloss.NewStyle().Faint(true)

	stylePane = lipgloss.NewStyle().Padding(0, 1)
)

// Package tui renders a live side-by-side comparison of Dijkstra and A*
// over one shared grid. It is a pure consumer of the engine's stepper: each
// animation tick advances every unfinished search by exactly one step and
// redraws the closed set, the open set, and a bar row of the frontier's
// priorities. After a search succeeds its path is replayed cell by cell.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdrpinto/gridpath"
)

// frontierBarLimit caps the bar row to the smallest entries, the part of
// the queue a reader can actually compare.
const frontierBarLimit = 50

// barGlyphs are the eighth-block glyphs used to scale priorities into a
// single terminal row.
var barGlyphs = []rune("▁▂▃▄▅▆▇█")

type tickMsg time.Time

// pane tracks one algorithm's run for display.
type pane struct {
	title    string
	search   *gridpath.Search
	visited  map[gridpath.Cell]bool
	queued   map[gridpath.Cell]bool
	frontier []gridpath.FrontierEntry
	path     []gridpath.Cell
	drawn    int // path cells revealed so far during replay
	done     bool
	failed   bool
}

// Model is the bubbletea model for the comparison dashboard.
type Model struct {
	grid     *gridpath.Grid
	start    gridpath.Cell
	goal     gridpath.Cell
	interval time.Duration
	panes    [2]*pane
}

// NewModel creates a dashboard over the given grid. Both searches share the
// grid read-only; each owns its state.
func NewModel(grid *gridpath.Grid, start, goal gridpath.Cell, interval time.Duration) (Model, error) {
	m := Model{grid: grid, start: start, goal: goal, interval: interval}
	titles := [2]string{"Dijkstra's Algorithm", "A* (A-Star) Algorithm"}
	for i, algorithm := range []gridpath.Algorithm{gridpath.Dijkstra, gridpath.AStar} {
		search, err := gridpath.New(grid, start, goal, algorithm,
			gridpath.WithSnapshotLimit(frontierBarLimit))
		if err != nil {
			return Model{}, err
		}
		m.panes[i] = &pane{
			title:   titles[i],
			search:  search,
			visited: make(map[gridpath.Cell]bool),
			queued:  make(map[gridpath.Cell]bool),
		}
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tickMsg:
		for _, p := range m.panes {
			p.advance()
		}
		if m.finished() {
			return m, nil
		}
		return m, m.tick()
	}
	return m, nil
}

// advance moves the pane one frame forward: one engine step while the
// search is live, then one revealed path cell per frame during replay.
func (p *pane) advance() {
	if !p.done {
		res := p.search.Step()
		if res.Status != gridpath.Failed {
			p.visited[res.Visited] = true
		}
		p.frontier = res.Frontier
		p.queued = make(map[gridpath.Cell]bool, len(res.Frontier))
		for _, entry := range res.Frontier {
			p.queued[entry.Cell] = true
		}
		switch res.Status {
		case gridpath.Succeeded:
			p.done = true
			p.path, _ = p.search.Path()
		case gridpath.Failed:
			p.done = true
			p.failed = true
		}
		return
	}
	if p.drawn < len(p.path) {
		p.drawn++
	}
}

func (p *pane) replayDone() bool {
	return p.done && p.drawn >= len(p.path)
}

func (m Model) finished() bool {
	for _, p := range m.panes {
		if !p.replayDone() {
			return false
		}
	}
	return true
}

func (m Model) View() string {
	var views []string
	for _, p := range m.panes {
		views = append(views, stylePane.Render(m.paneView(p)))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, views...)
	help := styleHelp.Render("q: quit")
	return body + "\n" + help + "\n"
}

func (m Model) paneView(p *pane) string {
	var b strings.Builder
	b.WriteString(styleTitle.Render(p.title))
	b.WriteByte('\n')
	b.WriteString(m.gridView(p))
	b.WriteByte('\n')
	b.WriteString(styleStats.Render(fmt.Sprintf("nodes explored: %d  %s",
		p.search.Expanded(), p.statusLine())))
	b.WriteByte('\n')
	b.WriteString(styleBars.Render(barRow(p.frontier, frontierBarLimit, barScale(m.grid))))
	return b.String()
}

func (p *pane) statusLine() string {
	switch {
	case p.failed:
		return "no path"
	case p.done && p.drawn >= len(p.path):
		return fmt.Sprintf("path cost %d", len(p.path)-1)
	case p.done:
		return "tracing path"
	default:
		return "searching"
	}
}

func (m Model) gridView(p *pane) string {
	onPath := make(map[gridpath.Cell]bool, p.drawn)
	for _, c := range p.path[:p.drawn] {
		onPath[c] = true
	}
	var b strings.Builder
	for row := 0; row < m.grid.Rows(); row++ {
		for col := 0; col < m.grid.Cols(); col++ {
			cell := gridpath.Cell{Row: row, Col: col}
			b.WriteString(renderCell(m, p, cell, onPath))
		}
		if row < m.grid.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderCell(m Model, p *pane, cell gridpath.Cell, onPath map[gridpath.Cell]bool) string {
	switch {
	case cell == m.start:
		return styleStart.Render("S ")
	case cell == m.goal:
		return styleGoal.Render("G ")
	case onPath[cell]:
		return stylePath.Render("  ")
	case m.grid.Blocked(cell):
		return styleWall.Render("  ")
	case p.visited[cell]:
		return styleVisited.Render("  ")
	case p.queued[cell]:
		return styleQueued.Render("  ")
	default:
		return styleFree.Render("· ")
	}
}

// barScale is the priority mapped to the tallest glyph, sized so typical
// frontier priorities stay within the row for any grid.
func barScale(g *gridpath.Grid) int {
	return (g.Rows() + g.Cols()) * 2
}

// barRow renders frontier priorities as one row of block glyphs, smallest
// priority first, padded to width so the row never jumps around.
func barRow(entries []gridpath.FrontierEntry, width, scale int) string {
	if scale < 1 {
		scale = 1
	}
	out := make([]rune, 0, width)
	for i := 0; i < len(entries) && i < width; i++ {
		level := entries[i].Priority * (len(barGlyphs) - 1) / scale
		if level >= len(barGlyphs) {
			level = len(barGlyphs) - 1
		}
		if level < 0 {
			level = 0
		}
		out = append(out, barGlyphs[level])
	}
	for len(out) < width {
		out = append(out, ' ')
	}
	return string(out)
}

package gridpath

import (
	"fmt"
	"strings"
)

// Cell identifies a grid position by row and column.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Expansion order is fixed: up, right, down, left. Neighbor order determines
// frontier insertion order and therefore tie-breaking, so it must not change.
var directions = [4]Cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a fixed-size 2-D field of free and blocked cells. It is immutable
// during a search and may be shared read-only across concurrent runs.
type Grid struct {
	rows, cols int
	blocked    []bool
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid dimensions %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	return &Grid{
		rows:    rows,
		cols:    cols,
		blocked: make([]bool, rows*cols),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether the cell lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Blocked reports whether the cell is a wall. Out-of-bounds cells are
// reported as blocked rather than failing, keeping the expansion hot path
// free of error handling.
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Row*g.cols+c.Col]
}

// SetBlocked marks a cell as wall or free. The blocked set must be fixed
// before a search over the grid begins. Out-of-bounds cells are ignored.
func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.InBounds(c) {
		return
	}
	g.blocked[c.Row*g.cols+c.Col] = blocked
}

// Neighbors returns the up/right/down/left cells that are in bounds and not
// blocked, in that fixed order. An out-of-bounds cell has no neighbors.
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	out := make([]Cell, 0, 4)
	for _, d := range directions {
		n := Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if g.InBounds(n) && !g.Blocked(n) {
			out = append(out, n)
		}
	}
	return out
}

// String renders the grid as one line per row, '#' for walls and '.' for
// free cells.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.blocked[r*g.cols+c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// ParseGrid builds a grid from a text map: '#' is a wall, '.' or ' ' free,
// 'S' the start and 'G' the goal. All rows must have equal width and both
// markers must be present.
func ParseGrid(lines []string) (*Grid, Cell, Cell, error) {
	var start, goal Cell
	if len(lines) == 0 {
		return nil, start, goal, fmt.Errorf("%w: empty map", ErrInvalidConfiguration)
	}
	g, err := NewGrid(len(lines), len(lines[0]))
	if err != nil {
		return nil, start, goal, err
	}
	haveStart, haveGoal := false, false
	for r, line := range lines {
		if len(line) != g.cols {
			return nil, start, goal, fmt.Errorf("%w: row %d has width %d, want %d",
				ErrInvalidConfiguration, r, len(line), g.cols)
		}
		for c := 0; c < len(line); c++ {
			cell := Cell{Row: r, Col: c}
			switch line[c] {
			case '#':
				g.SetBlocked(cell, true)
			case '.', ' ':
			case 'S':
				start, haveStart = cell, true
			case 'G':
				goal, haveGoal = cell, true
			default:
				return nil, start, goal, fmt.Errorf("%w: unknown map character %q at %v",
					ErrInvalidConfiguration, line[c], cell)
			}
		}
	}
	if !haveStart || !haveGoal {
		return nil, start, goal, fmt.Errorf("%w: map must contain both S and G", ErrInvalidConfiguration)
	}
	return g, start, goal, nil
}

// Package scenario defines reusable grid configurations: dimensions, start
// and goal, and walls given either explicitly or as a seeded random density.
// Scenarios are stored as YAML files and built into engine grids.
package scenario

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pdrpinto/gridpath"
)

// Position is a cell reference in scenario files.
type Position struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Cell converts the position to an engine cell.
func (p Position) Cell() gridpath.Cell {
	return gridpath.Cell{Row: p.Row, Col: p.Col}
}

// Scenario describes one grid configuration. When Walls is empty and
// Density is positive, walls are generated from Seed at build time, so the
// same file always produces the same grid.
type Scenario struct {
	Name    string     `yaml:"name,omitempty"`
	Rows    int        `yaml:"rows"`
	Cols    int        `yaml:"cols"`
	Start   Position   `yaml:"start"`
	Goal    Position   `yaml:"goal"`
	Walls   []Position `yaml:"walls,omitempty"`
	Density float64    `yaml:"density,omitempty"`
	Seed    int64      `yaml:"seed,omitempty"`
}

// Random describes a scenario with seeded random walls, start near the
// top-left corner and goal near the bottom-right.
func Random(rows, cols int, density float64, seed int64) *Scenario {
	return &Scenario{
		Name:    fmt.Sprintf("random-%dx%d", rows, cols),
		Rows:    rows,
		Cols:    cols,
		Start:   Position{Row: min(2, rows-1), Col: min(2, cols-1)},
		Goal:    Position{Row: rows - 1, Col: cols - 1},
		Density: density,
		Seed:    seed,
	}
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	return &s, nil
}

// Save writes the scenario as YAML.
func (s *Scenario) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write scenario: %w", err)
	}
	return nil
}

// Build materializes the scenario into a grid plus start and goal cells,
// validating through the engine's configuration rules. Start and goal are
// always left unblocked, whatever the wall list or density produced.
func (s *Scenario) Build() (*gridpath.Grid, gridpath.Cell, gridpath.Cell, error) {
	start, goal := s.Start.Cell(), s.Goal.Cell()
	grid, err := gridpath.NewGrid(s.Rows, s.Cols)
	if err != nil {
		return nil, start, goal, err
	}
	if s.Density < 0 || s.Density > 1 {
		return nil, start, goal, fmt.Errorf("%w: density %v outside [0,1]",
			gridpath.ErrInvalidConfiguration, s.Density)
	}

	for _, w := range s.Walls {
		if !grid.InBounds(w.Cell()) {
			return nil, start, goal, fmt.Errorf("%w: wall %v out of bounds",
				gridpath.ErrInvalidConfiguration, w.Cell())
		}
		grid.SetBlocked(w.Cell(), true)
	}
	if len(s.Walls) == 0 && s.Density > 0 {
		rng := rand.New(rand.NewSource(s.Seed))
		for row := 0; row < s.Rows; row++ {
			for col := 0; col < s.Cols; col++ {
				if rng.Float64() < s.Density {
					grid.SetBlocked(gridpath.Cell{Row: row, Col: col}, true)
				}
			}
		}
	}
	grid.SetBlocked(start, false)
	grid.SetBlocked(goal, false)

	// Run the engine's own validation so scenario files fail the same way
	// direct API use does.
	if _, err := gridpath.New(grid, start, goal, gridpath.Dijkstra); err != nil {
		return nil, start, goal, err
	}
	return grid, start, goal, nil
}

// Render returns the built grid as a text map with S and G markers.
func (s *Scenario) Render() (string, error) {
	grid, start, goal, err := s.Build()
	if err != nil {
		return "", err
	}
	lines := strings.Split(grid.String(), "\n")
	mark := func(c gridpath.Cell, r byte) {
		line := []byte(lines[c.Row])
		line[c.Col] = r
		lines[c.Row] = string(line)
	}
	mark(start, 'S')
	mark(goal, 'G')
	return strings.Join(lines, "\n"), nil
}

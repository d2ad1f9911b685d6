package gridpath

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// stepCost is the uniform cost of moving between adjacent cells.
const stepCost = 1

// Algorithm selects the priority function used by the engine.
type Algorithm int

const (
	// Dijkstra orders the frontier by exact cost from start (f = g).
	Dijkstra Algorithm = iota
	// AStar adds the Manhattan estimate to the goal (f = g + h).
	AStar
)

func (a Algorithm) String() string {
	switch a {
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Status of a search.
type Status int

const (
	// Continuing means the search can take further steps.
	Continuing Status = iota
	// Succeeded means the goal was popped from the frontier.
	Succeeded
	// Failed means the frontier was exhausted without reaching the goal.
	Failed
)

func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// StepResult reports the outcome of a single engine step.
type StepResult struct {
	Status   Status
	Visited  Cell // cell finalized by this step; zero value when the frontier was exhausted
	Expanded int  // total cells finalized so far
	Frontier []FrontierEntry
}

// Result contains the outcome of a completed search.
type Result struct {
	Path     []Cell
	Cost     int
	Expanded int
	Found    bool
}

// Options defines parameters for a search.
type Options struct {
	MaxExpansions int
	SnapshotLimit int
	Logger        *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithMaxExpansions bounds how many cells the engine may finalize before
// giving up. Zero means no limit.
func WithMaxExpansions(n int) Option {
	return func(o *Options) { o.MaxExpansions = n }
}

// WithSnapshotLimit caps frontier snapshots to the n smallest entries.
// Zero means the full queue.
func WithSnapshotLimit(n int) Option {
	return func(o *Options) { o.SnapshotLimit = n }
}

// WithLogger attaches a structured logger. The engine logs lifecycle
// transitions only, never per-step events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// Search holds the state of one run: the best-known costs, predecessor
// links, finalized set and frontier. Create it with New, drive it with Step
// or Run. A Search is single-threaded; the grid it reads may be shared.
type Search struct {
	grid      *Grid
	start     Cell
	goal      Cell
	algorithm Algorithm
	heuristic Heuristic
	opts      Options
	logger    *slog.Logger

	frontier *frontier
	gCost    map[Cell]int
	cameFrom map[Cell]Cell
	visited  map[Cell]bool
	expanded int
	status   Status
	path     []Cell
}

// New validates the configuration and creates a search in its initial
// state: gCost[start] = 0 and a single frontier entry for start.
func New(grid *Grid, start, goal Cell, algorithm Algorithm, options ...Option) (*Search, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidConfiguration)
	}
	if !grid.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v out of bounds", ErrInvalidConfiguration, start)
	}
	if !grid.InBounds(goal) {
		return nil, fmt.Errorf("%w: goal %v out of bounds", ErrInvalidConfiguration, goal)
	}
	if grid.Blocked(start) {
		return nil, fmt.Errorf("%w: start %v is blocked", ErrInvalidConfiguration, start)
	}
	if grid.Blocked(goal) {
		return nil, fmt.Errorf("%w: goal %v is blocked", ErrInvalidConfiguration, goal)
	}

	var heuristic Heuristic
	switch algorithm {
	case Dijkstra:
		heuristic = Zero
	case AStar:
		heuristic = Manhattan
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %d", ErrInvalidConfiguration, int(algorithm))
	}

	opts := Options{}
	for _, option := range options {
		option(&opts)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Search{
		grid:      grid,
		start:     start,
		goal:      goal,
		algorithm: algorithm,
		heuristic: heuristic,
		opts:      opts,
		logger:    logger,
		frontier:  newFrontier(),
		gCost:     map[Cell]int{start: 0},
		cameFrom:  make(map[Cell]Cell),
		visited:   make(map[Cell]bool),
		status:    Continuing,
	}
	s.frontier.push(heuristic(start, goal), start)

	logger.Debug("search initialized",
		"algorithm", algorithm.String(),
		"rows", grid.Rows(), "cols", grid.Cols(),
		"start", start.String(), "goal", goal.String())
	return s, nil
}

// Step performs exactly one state transition: it finalizes the next cell,
// relaxes its neighbors, and reports the new state together with an ordered
// frontier snapshot. Stale entries popped along the way are discarded
// without counting as a step. After a terminal state Step keeps returning
// that state without further mutation.
func (s *Search) Step() StepResult {
	if s.status != Continuing {
		return s.result(Cell{})
	}

	for {
		if s.frontier.empty() {
			s.status = Failed
			s.logger.Debug("search failed", "algorithm", s.algorithm.String(), "expanded", s.expanded)
			return s.result(Cell{})
		}
		entry, err := s.frontier.popMin()
		if err != nil {
			// Unreachable: emptiness is checked above.
			panic(err)
		}
		if s.visited[entry.Cell] {
			continue // superseded by a cheaper entry popped earlier
		}

		s.visited[entry.Cell] = true
		s.expanded++

		if entry.Cell == s.goal {
			s.status = Succeeded
			s.logger.Debug("search succeeded",
				"algorithm", s.algorithm.String(),
				"cost", s.gCost[s.goal], "expanded", s.expanded)
			return s.result(entry.Cell)
		}
		if s.opts.MaxExpansions > 0 && s.expanded >= s.opts.MaxExpansions {
			s.status = Failed
			s.logger.Warn("expansion limit reached",
				"algorithm", s.algorithm.String(), "limit", s.opts.MaxExpansions)
			return s.result(entry.Cell)
		}

		for _, neighbor := range s.grid.Neighbors(entry.Cell) {
			if s.visited[neighbor] {
				continue
			}
			tentative := s.gCost[entry.Cell] + stepCost
			if best, known := s.gCost[neighbor]; known && tentative >= best {
				continue
			}
			s.gCost[neighbor] = tentative
			s.cameFrom[neighbor] = entry.Cell
			s.frontier.push(tentative+s.heuristic(neighbor, s.goal), neighbor)
		}
		return s.result(entry.Cell)
	}
}

// Run drains the search to completion. The context is consulted between
// steps; each step is atomic, so cancellation leaves the state consistent.
// An exhausted frontier yields ErrNoPath with the expansion count populated.
func (s *Search) Run(ctx context.Context) (Result, error) {
	for s.status == Continuing {
		select {
		case <-ctx.Done():
			return Result{Expanded: s.expanded}, ctx.Err()
		default:
		}
		s.Step()
	}
	if s.status == Failed {
		return Result{Expanded: s.expanded}, fmt.Errorf("%w: %s after %d expansions",
			ErrNoPath, s.algorithm, s.expanded)
	}
	path, err := s.Path()
	if err != nil {
		return Result{Expanded: s.expanded}, err
	}
	return Result{
		Path:     path,
		Cost:     s.gCost[s.goal],
		Expanded: s.expanded,
		Found:    true,
	}, nil
}

// Path returns the start-to-goal route. It is valid only after the search
// has succeeded; callers get a fresh copy each time.
func (s *Search) Path() ([]Cell, error) {
	if s.status != Succeeded {
		return nil, ErrNotFinished
	}
	if s.path == nil {
		path, err := reconstructPath(s.cameFrom, s.start, s.goal)
		if err != nil {
			return nil, err
		}
		s.path = path
	}
	out := make([]Cell, len(s.path))
	copy(out, s.path)
	return out, nil
}

// Frontier returns an ordered snapshot of the current queue contents,
// stale entries included, capped by WithSnapshotLimit.
func (s *Search) Frontier() []FrontierEntry {
	return s.frontier.snapshot(s.opts.SnapshotLimit)
}

// Status returns the current terminal or non-terminal state.
func (s *Search) Status() Status { return s.status }

// Expanded returns how many cells have been finalized so far.
func (s *Search) Expanded() int { return s.expanded }

// Algorithm returns the algorithm this search was created with.
func (s *Search) Algorithm() Algorithm { return s.algorithm }

// Cost returns the best known exact cost from start to the cell, with ok
// false for undiscovered cells.
func (s *Search) Cost(c Cell) (int, bool) {
	cost, ok := s.gCost[c]
	return cost, ok
}

func (s *Search) result(visited Cell) StepResult {
	return StepResult{
		Status:   s.status,
		Visited:  visited,
		Expanded: s.expanded,
		Frontier: s.frontier.snapshot(s.opts.SnapshotLimit),
	}
}

// Find runs a search to completion in one call.
func Find(ctx context.Context, grid *Grid, start, goal Cell, algorithm Algorithm, options ...Option) (Result, error) {
	s, err := New(grid, start, goal, algorithm, options...)
	if err != nil {
		return Result{}, err
	}
	return s.Run(ctx)
}

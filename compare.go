package gridpath

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RunReport is the outcome of one algorithm within a comparison.
type RunReport struct {
	ID        string
	Algorithm Algorithm
	Result    Result
}

// Comparison holds the outcomes of running both algorithms over one grid.
type Comparison struct {
	Dijkstra RunReport
	AStar    RunReport
}

// Compare runs Dijkstra and A* to completion concurrently over the same
// grid. The grid is read-only during a run, so sharing it is safe; each run
// owns its search state. A no-path outcome is part of the comparison, not an
// error: both reports then carry Found == false.
func Compare(ctx context.Context, grid *Grid, start, goal Cell, options ...Option) (Comparison, error) {
	group, ctx := errgroup.WithContext(ctx)
	reports := make([]RunReport, 2)
	for i, algorithm := range []Algorithm{Dijkstra, AStar} {
		i, algorithm := i, algorithm
		group.Go(func() error {
			search, err := New(grid, start, goal, algorithm, options...)
			if err != nil {
				return err
			}
			result, err := search.Run(ctx)
			if err != nil && !errors.Is(err, ErrNoPath) {
				return err
			}
			reports[i] = RunReport{
				ID:        uuid.NewString()[:8],
				Algorithm: algorithm,
				Result:    result,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Comparison{}, err
	}
	return Comparison{Dijkstra: reports[0], AStar: reports[1]}, nil
}

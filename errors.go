package gridpath

import "errors"

var (
	// ErrInvalidConfiguration is returned by New when the grid, start or
	// goal cannot form a valid search.
	ErrInvalidConfiguration = errors.New("gridpath: invalid configuration")

	// ErrEmptyFrontier means the frontier was popped while empty. The
	// engine checks emptiness before every pop, so seeing this error is a
	// defect, not a search outcome.
	ErrEmptyFrontier = errors.New("gridpath: pop from empty frontier")

	// ErrNoPath is the expected outcome when the frontier is exhausted
	// before the goal is reached.
	ErrNoPath = errors.New("gridpath: no path found")

	// ErrUnreachable means path reconstruction found a gap in the
	// predecessor chain. It cannot occur from a Succeeded search.
	ErrUnreachable = errors.New("gridpath: broken predecessor chain")

	// ErrNotFinished is returned by Path before the search has succeeded.
	ErrNotFinished = errors.New("gridpath: search has not succeeded")
)

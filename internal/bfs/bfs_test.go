package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
	"github.com/pdrpinto/gridpath/internal/bfs"
)

func TestDistances(t *testing.T) {
	grid, start, goal, err := gridpath.ParseGrid([]string{
		"S#G",
		".#.",
		"...",
	})
	require.NoError(t, err)

	dist := bfs.Distances(grid, start)
	assert.Equal(t, 0, dist[start])
	assert.Equal(t, 1, dist[gridpath.Cell{Row: 1, Col: 0}])
	assert.Equal(t, 6, dist[goal]) // around the wall via row 2
	assert.Len(t, dist, 7)         // every cell except the two walls
}

func TestCostUnreachable(t *testing.T) {
	grid, start, goal, err := gridpath.ParseGrid([]string{
		"S#G",
		".#.",
		".#.",
	})
	require.NoError(t, err)
	assert.Equal(t, -1, bfs.Cost(grid, start, goal))
	assert.Equal(t, 0, bfs.Cost(grid, start, start))
}

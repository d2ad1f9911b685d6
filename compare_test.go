package gridpath_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestCompareRunsBothAlgorithms(t *testing.T) {
	grid, start, goal := mustParse(t,
		"S.#..",
		"..#..",
		".....",
		"..#..",
		"..#.G",
	)
	comparison, err := gridpath.Compare(context.Background(), grid, start, goal)
	require.NoError(t, err)

	assert.Equal(t, gridpath.Dijkstra, comparison.Dijkstra.Algorithm)
	assert.Equal(t, gridpath.AStar, comparison.AStar.Algorithm)
	assert.NotEmpty(t, comparison.Dijkstra.ID)
	assert.NotEmpty(t, comparison.AStar.ID)
	assert.NotEqual(t, comparison.Dijkstra.ID, comparison.AStar.ID)

	require.True(t, comparison.Dijkstra.Result.Found)
	require.True(t, comparison.AStar.Result.Found)
	assert.Equal(t, comparison.Dijkstra.Result.Cost, comparison.AStar.Result.Cost)
	assert.LessOrEqual(t, comparison.AStar.Result.Expanded, comparison.Dijkstra.Result.Expanded)
}

func TestCompareReportsNoPathAsOutcome(t *testing.T) {
	grid, start, goal := mustParse(t,
		"S#.",
		".#.",
		".#G",
	)
	comparison, err := gridpath.Compare(context.Background(), grid, start, goal)
	require.NoError(t, err)
	assert.False(t, comparison.Dijkstra.Result.Found)
	assert.False(t, comparison.AStar.Result.Found)
	assert.Positive(t, comparison.Dijkstra.Result.Expanded)
}

func TestCompareHonorsContext(t *testing.T) {
	grid, start, goal := mustParse(t,
		"S....",
		".....",
		".....",
		".....",
		"....G",
	)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := gridpath.Compare(ctx, grid, start, goal)
	assert.ErrorIs(t, err, context.Canceled)
}

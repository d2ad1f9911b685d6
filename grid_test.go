package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridValidatesDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		_, err := NewGrid(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidConfiguration, "dims %v", dims)
	}

	g, err := NewGrid(4, 7)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Rows())
	assert.Equal(t, 7, g.Cols())
}

func TestNeighborsOrder(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)

	// Up, right, down, left around the center.
	want := []Cell{{0, 1}, {1, 2}, {2, 1}, {1, 0}}
	assert.Equal(t, want, g.Neighbors(Cell{1, 1}))
}

func TestNeighborsFiltersBoundsAndWalls(t *testing.T) {
	g, err := NewGrid(3, 3)
	require.NoError(t, err)
	g.SetBlocked(Cell{0, 1}, true)

	// Top-left corner: up and left are out of bounds, up-right blocked.
	assert.Equal(t, []Cell{{1, 0}}, g.Neighbors(Cell{0, 0}))

	// Out-of-bounds cells have no neighbors.
	assert.Empty(t, g.Neighbors(Cell{-1, 0}))
	assert.Empty(t, g.Neighbors(Cell{3, 3}))
}

func TestBlockedOutOfBounds(t *testing.T) {
	g, err := NewGrid(2, 2)
	require.NoError(t, err)

	assert.True(t, g.Blocked(Cell{-1, 0}))
	assert.True(t, g.Blocked(Cell{0, 2}))
	assert.False(t, g.Blocked(Cell{1, 1}))

	// Out-of-bounds writes are ignored, not fatal.
	g.SetBlocked(Cell{5, 5}, true)
	assert.False(t, g.Blocked(Cell{1, 1}))
}

func TestParseGrid(t *testing.T) {
	g, start, goal, err := ParseGrid([]string{
		"S.#",
		"..#",
		"..G",
	})
	require.NoError(t, err)
	assert.Equal(t, Cell{0, 0}, start)
	assert.Equal(t, Cell{2, 2}, goal)
	assert.True(t, g.Blocked(Cell{0, 2}))
	assert.True(t, g.Blocked(Cell{1, 2}))
	assert.False(t, g.Blocked(Cell{2, 2}))
	assert.Equal(t, "..#\n..#\n...", g.String())
}

func TestParseGridRejectsBadMaps(t *testing.T) {
	cases := map[string][]string{
		"empty":       {},
		"ragged":      {"S..", "..", "..G"},
		"unknown":     {"S.x", "...", "..G"},
		"missingGoal": {"S..", "...", "..."},
	}
	for name, lines := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := ParseGrid(lines)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, Manhattan(Cell{2, 3}, Cell{2, 3}))
	assert.Equal(t, 8, Manhattan(Cell{0, 0}, Cell{4, 4}))
	assert.Equal(t, 7, Manhattan(Cell{4, 0}, Cell{0, 3}))
	assert.Equal(t, 0, Zero(Cell{0, 0}, Cell{9, 9}))
}

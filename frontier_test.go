package gridpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontierPopsByPriority(t *testing.T) {
	f := newFrontier()
	f.push(5, Cell{0, 0})
	f.push(1, Cell{1, 1})
	f.push(3, Cell{2, 2})

	var got []int
	for !f.empty() {
		entry, err := f.popMin()
		require.NoError(t, err)
		got = append(got, entry.Priority)
	}
	assert.Equal(t, []int{1, 3, 5}, got)
}

func TestFrontierBreaksTiesByInsertionOrder(t *testing.T) {
	f := newFrontier()
	cells := []Cell{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	for _, c := range cells {
		f.push(7, c)
	}

	for i, want := range cells {
		entry, err := f.popMin()
		require.NoError(t, err)
		assert.Equal(t, want, entry.Cell, "pop %d", i)
		assert.Equal(t, i, entry.Seq)
	}
}

func TestFrontierPopEmpty(t *testing.T) {
	f := newFrontier()
	_, err := f.popMin()
	assert.ErrorIs(t, err, ErrEmptyFrontier)

	f.push(1, Cell{0, 0})
	_, err = f.popMin()
	require.NoError(t, err)
	_, err = f.popMin()
	assert.ErrorIs(t, err, ErrEmptyFrontier)
}

func TestFrontierSnapshot(t *testing.T) {
	f := newFrontier()
	f.push(4, Cell{0, 0})
	f.push(2, Cell{1, 0})
	f.push(2, Cell{2, 0})
	f.push(9, Cell{3, 0})

	snap := f.snapshot(0)
	require.Len(t, snap, 4)
	assert.Equal(t, []Cell{{1, 0}, {2, 0}, {0, 0}, {3, 0}},
		[]Cell{snap[0].Cell, snap[1].Cell, snap[2].Cell, snap[3].Cell})

	// A limit keeps the smallest entries.
	capped := f.snapshot(2)
	require.Len(t, capped, 2)
	assert.Equal(t, 2, capped[0].Priority)
	assert.Equal(t, 2, capped[1].Priority)

	// Snapshots must not disturb heap order.
	entry, err := f.popMin()
	require.NoError(t, err)
	assert.Equal(t, Cell{1, 0}, entry.Cell)
	assert.Equal(t, 3, f.len())
}

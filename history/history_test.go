package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-life/model"
)

// numbered returns a 1xn snapshot whose live cell encodes i, so every i
// yields a distinct state.
func numbered(i int) model.Snapshot {
	g := model.NewGrid(1, 16)
	g.Set(0, i%16, true)
	if i >= 16 {
		g.Set(0, (i/16)%16, true)
	}
	return g.Snapshot()
}

func TestBoundedEvictsOldest(t *testing.T) {
	const capacity = 5
	h := New(capacity)

	for i := range capacity + 1 {
		h.Record(numbered(i))
	}

	assert.False(t, h.Contains(numbered(0)), "first entry must be evicted")
	for i := 1; i <= capacity; i++ {
		assert.True(t, h.Contains(numbered(i)), "entry %d", i)
	}
	assert.Equal(t, capacity, h.Len())
	assert.Equal(t, capacity, h.Cap())
}

func TestBoundedEntriesOrder(t *testing.T) {
	h := New(3)
	assert.Empty(t, h.Entries())

	h.Record(numbered(1))
	h.Record(numbered(2))
	entries := h.Entries()
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Equal(numbered(1)))

	h.Record(numbered(3))
	h.Record(numbered(4))
	entries = h.Entries()
	require.Len(t, entries, 3)
	for i, want := range []int{2, 3, 4} {
		assert.True(t, entries[i].Equal(numbered(want)), "position %d", i)
	}
}

func TestBoundedZeroCapacity(t *testing.T) {
	h := New(0)
	s := numbered(3)
	h.Record(s)

	assert.False(t, h.Contains(s))
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Entries())
}

func TestBoundedNegativeCapacityPanics(t *testing.T) {
	assert.Panics(t, func() { New(-1) })
}

func TestBoundedEntriesAreIndependent(t *testing.T) {
	h := New(2)
	g := model.NewGrid(3, 3)
	g.Set(1, 1, true)
	h.Record(g.Snapshot())

	g.Set(1, 1, false)
	assert.False(t, h.Contains(g.Snapshot()))

	g.Set(1, 1, true)
	assert.True(t, h.Contains(g.Snapshot()))
}

func TestBoundedDimensionMismatch(t *testing.T) {
	h := New(2)
	h.Record(model.NewGrid(2, 2).Snapshot())

	assert.False(t, h.Contains(model.NewGrid(2, 3).Snapshot()))
	assert.True(t, h.Contains(model.NewGrid(2, 2).Snapshot()))
}

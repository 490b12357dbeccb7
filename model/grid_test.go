package model

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGrid(t *testing.T, cells [][]bool) *Grid {
	t.Helper()
	g, err := GridFromCells(cells)
	require.NoError(t, err)
	return g
}

func TestGridFromCells(t *testing.T) {
	t.Run("copies the matrix", func(t *testing.T) {
		cells := [][]bool{{true, false}, {false, true}}
		g := mustGrid(t, cells)
		cells[0][0] = false

		assert.True(t, g.Get(0, 0))
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 2, g.Cols())
	})

	t.Run("rejects empty and ragged input", func(t *testing.T) {
		for _, cells := range [][][]bool{
			nil,
			{{}},
			{{true, false}, {true}},
		} {
			_, err := GridFromCells(cells)
			assert.True(t, errors.Is(err, ErrMalformedCells), "cells %v", cells)
		}
	})
}

func TestGridGetSetOutOfBounds(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(-1, 0, true)
	g.Set(0, 3, true)
	g.Set(1, 2, true)

	assert.False(t, g.Get(-1, 0))
	assert.False(t, g.Get(0, 3))
	assert.True(t, g.Get(1, 2))
	assert.Equal(t, 1, g.CountLivingCells())
}

func TestGridTotalOmitsOutOfBounds(t *testing.T) {
	all := [][]bool{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}
	g := mustGrid(t, all)

	assert.Equal(t, 4, g.Total(0, 0), "corner sees itself and three neighbors")
	assert.Equal(t, 6, g.Total(0, 1), "edge sees itself and five neighbors")
	assert.Equal(t, 9, g.Total(1, 1), "center sees the full neighborhood")
}

func TestNextGeneration(t *testing.T) {
	t.Run("lonely center dies", func(t *testing.T) {
		g := mustGrid(t, [][]bool{
			{false, false, false},
			{false, true, false},
			{false, false, false},
		})
		next := g.NextGeneration(nil)
		assert.Equal(t, 0, next.CountLivingCells())
	})

	t.Run("pure function of the current grid", func(t *testing.T) {
		g := NewGrid(12, 9)
		g.Randomize(rand.New(rand.NewPCG(7, 0)), 0.5)
		before := g.Snapshot()
		pool := NewGridPool()

		first := g.NextGeneration(pool).Snapshot()
		second := g.NextGeneration(pool).Snapshot()

		assert.True(t, first.Equal(second))
		assert.True(t, before.Equal(g.Snapshot()), "current grid must not be mutated")
	})

	t.Run("blinker flips", func(t *testing.T) {
		g := NewGrid(5, 5)
		g.Set(2, 1, true)
		g.Set(2, 2, true)
		g.Set(2, 3, true)

		next := g.NextGeneration(nil)
		want := NewGrid(5, 5)
		want.Set(1, 2, true)
		want.Set(2, 2, true)
		want.Set(3, 2, true)

		if diff := cmp.Diff(want.Snapshot().Matrix(), next.Snapshot().Matrix()); diff != "" {
			t.Fatalf("blinker mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestGridPoolReset(t *testing.T) {
	pool := NewGridPool()
	g := pool.Get(3, 3)
	g.Set(1, 1, true)
	GridToPool(g, pool)
	GridToPool(nil, pool)
	GridToPool(g, nil)

	reused := pool.Get(4, 2)
	assert.Equal(t, 4, reused.Rows())
	assert.Equal(t, 2, reused.Cols())
	assert.Equal(t, 0, reused.CountLivingCells())
}

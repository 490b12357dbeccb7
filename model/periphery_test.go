package model

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandPeriphery(t *testing.T) {
	tests := []struct {
		name           string
		live           [][2]int
		rowMax, colMax int
		wantRows       int
		wantCols       int
		want           Growth
	}{
		{"dead border", [][2]int{{1, 1}}, 100, 100, 3, 3, Growth{}},
		{"top edge", [][2]int{{0, 1}}, 100, 100, 4, 3, Growth{Top: true}},
		{"bottom edge", [][2]int{{2, 1}}, 100, 100, 4, 3, Growth{Bottom: true}},
		{"left edge", [][2]int{{1, 0}}, 100, 100, 3, 4, Growth{Left: true}},
		{"right edge", [][2]int{{1, 2}}, 100, 100, 3, 4, Growth{Right: true}},
		{"corner grows two sides", [][2]int{{0, 0}}, 100, 100, 4, 4, Growth{Top: true, Left: true}},
		{"all sides", [][2]int{{0, 0}, {2, 2}}, 100, 100, 5, 5, Growth{true, true, true, true}},
		{"row axis capped", [][2]int{{0, 1}, {2, 1}}, 3, 100, 3, 3, Growth{}},
		{"one row left before cap", [][2]int{{0, 1}, {2, 1}}, 4, 100, 4, 3, Growth{Top: true}},
		{"col axis capped", [][2]int{{1, 0}, {1, 2}}, 100, 3, 3, 3, Growth{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(3, 3)
			for _, p := range tt.live {
				g.Set(p[0], p[1], true)
			}
			before := g.CountLivingCells()

			got := ExpandPeriphery(g, tt.rowMax, tt.colMax)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Any(), got.Any())
			assert.Equal(t, tt.wantRows, g.Rows())
			assert.Equal(t, tt.wantCols, g.Cols())
			assert.Equal(t, before, g.CountLivingCells(), "growth adds only dead cells")
			for r := range g.Rows() {
				assert.Len(t, g.cells[r], g.Cols(), "row %d", r)
			}
		})
	}
}

func TestExpandPeripheryShiftsCoordinates(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 0, true)

	ExpandPeriphery(g, 10, 10)

	assert.False(t, g.Get(0, 0))
	assert.True(t, g.Get(1, 1))
}

func TestExpandPeripheryNeverShrinks(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	g := NewGrid(4, 4)
	g.Randomize(rng, 0.5)
	ExpandPeriphery(g, 20, 15)

	for range 200 {
		rows, cols := g.Rows(), g.Cols()

		g = g.NextGeneration(nil)
		rowEdgeLive := g.rowAlive(0) || g.rowAlive(rows-1)
		colEdgeLive := g.colAlive(0) || g.colAlive(cols-1)
		gr := ExpandPeriphery(g, 20, 15)

		assert.GreaterOrEqual(t, g.Rows(), rows)
		assert.GreaterOrEqual(t, g.Cols(), cols)
		assert.LessOrEqual(t, g.Rows(), 20)
		assert.LessOrEqual(t, g.Cols(), 15)
		if gr.Top || gr.Bottom {
			assert.True(t, rowEdgeLive)
		}
		if gr.Left || gr.Right {
			assert.True(t, colEdgeLive)
		}
	}
}

package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// ErrMalformedCells is returned when a cell matrix is empty or ragged
var ErrMalformedCells = errors.New("malformed cell matrix")

// Grid is the mutable working board of a simulation, indexed by (row, col)
type Grid struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) *Grid {
	cells := make([][]bool, rows)
	for i := range cells {
		cells[i] = make([]bool, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
	}
}

// GridFromCells deep copies a caller-supplied matrix into a new grid.
// The matrix must have at least one row, at least one column, and rows of equal length.
func GridFromCells(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrMalformedCells, "[GridFromCells] matrix has no cells")
	}
	g := NewGrid(len(cells), len(cells[0]))
	for r, row := range cells {
		if len(row) != g.cols {
			return nil, errors.Wrapf(ErrMalformedCells,
				"[GridFromCells] row %d has %d columns, want %d", r, len(row), g.cols)
		}
		copy(g.cells[r], row)
	}
	return g, nil
}

// Rows returns the number of rows of the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns of the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Reset resets the grid to new dimensions with every cell dead
func (g *Grid) Reset(rows, cols int) {
	g.rows = rows
	g.cols = cols

	// Resize cells if needed
	if len(g.cells) != rows {
		g.cells = make([][]bool, rows)
	}
	for i := range g.cells {
		if len(g.cells[i]) != cols {
			g.cells[i] = make([]bool, cols)
		} else {
			clear(g.cells[i])
		}
	}
}

// Clear kills every cell
func (g *Grid) Clear() {
	for r := range g.rows {
		clear(g.cells[r])
	}
}

// Set sets a cell to alive (true) or dead (false); out-of-bounds writes are ignored
func (g *Grid) Set(row, col int, alive bool) {
	if g.inBounds(row, col) {
		g.cells[row][col] = alive
	}
}

// Get returns the state of a cell; out-of-bounds cells read as dead
func (g *Grid) Get(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Total returns the state of the cell plus the number of living neighbors
// that fall inside the grid; offsets outside the grid are omitted.
func (g *Grid) Total(row, col int) int {
	total := 0

	minR := max(0, row-1)
	maxR := min(g.rows-1, row+1)
	minC := max(0, col-1)
	maxC := min(g.cols-1, col+1)

	for r := minR; r <= maxR; r++ {
		for c := minC; c <= maxC; c++ {
			if g.cells[r][c] {
				total++
			}
		}
	}

	return total
}

// NextGeneration computes the next generation into a buffer drawn from pool
// (or freshly allocated when pool is nil). The receiver is only read, so no
// cell observes another cell's next state.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.rows, g.cols)
	} else {
		next = NewGrid(g.rows, g.cols)
	}

	for r := range g.rows {
		for c := range g.cols {
			next.cells[r][c] = rules.ApplyConwayRules(g.Total(r, c))
		}
	}

	return next
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r][c] {
				count++
			}
		}
	}
	return
}

// Randomize sets every cell alive with the given probability
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for r := range g.rows {
		for c := range g.cols {
			g.cells[r][c] = rng.Float64() < density
		}
	}
}

// Snapshot captures an immutable copy of the grid
func (g *Grid) Snapshot() Snapshot {
	return newSnapshot(g.rows, g.cols, func(r, c int) bool { return g.cells[r][c] })
}

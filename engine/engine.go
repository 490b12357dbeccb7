// Package engine evolves a Game of Life grid whose border grows as living
// cells reach its edges, and reports extinction and recurrence.
package engine

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/history"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// Status summarizes whether a simulation is worth stepping further
type Status int

const (
	StatusRunning Status = iota
	StatusExtinct
	StatusRecurring
)

func (s Status) String() string {
	switch s {
	case StatusExtinct:
		return "extinct"
	case StatusRecurring:
		return "recurring"
	default:
		return "running"
	}
}

// LifeEngine owns the current grid and its bounded history.
// It is not safe for concurrent use.
type LifeEngine struct {
	cfg        Config
	grid       *model.Grid
	current    model.Snapshot
	history    *history.Bounded
	pool       *model.GridPool
	generation int
}

// New builds an engine over a random grid in which every cell is alive with
// probability one half. A nil rng is replaced by one seeded from cfg.Seed.
func New(cfg Config, rng *rand.Rand) (*LifeEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[engine.New] rejected config")
	}
	if rng == nil {
		rng = utils.NewRNG(cfg.Seed)
	}

	grid := model.NewGrid(cfg.Rows, cfg.Cols)
	grid.Randomize(rng, 0.5)
	return newEngine(cfg, grid), nil
}

// NewFromCells builds an engine over a copy of the supplied matrix. The
// configured Rows and Cols are replaced by the matrix dimensions.
func NewFromCells(cfg Config, cells [][]bool) (*LifeEngine, error) {
	grid, err := model.GridFromCells(cells)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "[engine.NewFromCells] %v", err)
	}
	cfg.Rows, cfg.Cols = grid.Rows(), grid.Cols()
	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "[engine.NewFromCells] rejected config")
	}
	return newEngine(cfg, grid), nil
}

func newEngine(cfg Config, grid *model.Grid) *LifeEngine {
	model.ExpandPeriphery(grid, cfg.RowMax, cfg.ColMax)
	return &LifeEngine{
		cfg:     cfg,
		grid:    grid,
		current: grid.Snapshot(),
		history: history.New(cfg.HistoryCapacity),
		pool:    model.NewGridPool(),
	}
}

// Step records the current grid, derives the next generation, grows its
// border and makes it current.
func (e *LifeEngine) Step() {
	e.history.Record(e.current)

	next := e.grid.NextGeneration(e.pool)
	model.ExpandPeriphery(next, e.cfg.RowMax, e.cfg.ColMax)

	// The previous buffer is private: callers only ever see snapshots.
	model.GridToPool(e.grid, e.pool)
	e.grid = next
	e.current = next.Snapshot()
	e.generation++
}

// IsAlive reports whether at least one cell is alive
func (e *LifeEngine) IsAlive() bool {
	return e.current.LiveCount() > 0
}

// IsRecurring reports whether the current grid equals one recorded within
// the history window.
func (e *LifeEngine) IsRecurring() bool {
	return e.history.Contains(e.current)
}

// Status reports extinction ahead of recurrence, since a dead grid also recurs
func (e *LifeEngine) Status() Status {
	switch {
	case !e.IsAlive():
		return StatusExtinct
	case e.IsRecurring():
		return StatusRecurring
	default:
		return StatusRunning
	}
}

// Grid returns a read-only view of the current generation
func (e *LifeEngine) Grid() model.Snapshot {
	return e.current
}

// Generation returns the number of completed steps
func (e *LifeEngine) Generation() int {
	return e.generation
}

// Population returns the number of living cells
func (e *LifeEngine) Population() int {
	return e.current.LiveCount()
}

// Config returns the configuration the engine was built with
func (e *LifeEngine) Config() Config {
	return e.cfg
}

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// defaultFrameRate matches the window front-end's redraw interval
const defaultFrameRate = 500 * time.Millisecond

// screen is what the watch loop draws on
type screen interface {
	Clear()
	Display(s model.Snapshot)
}

// initializeGame sets up the engine for the watch front-end
func initializeGame(config utils.Config) (*engine.LifeEngine, *utils.Stats, error) {
	preset := engine.WindowConfig()
	cfg := engineConfig(config, preset.Rows, preset.Cols)
	cfg.RowMax, cfg.ColMax = preset.RowMax, preset.ColMax

	e, err := engine.New(cfg, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to build engine")
	}
	return e, utils.NewStats(), nil
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, e *engine.LifeEngine, stats *utils.Stats) {
	grid := e.Grid()

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Size: %dx%d | Status: %s\n",
		e.Generation(), grid.LiveCount(), stats.Density, grid.Rows(), grid.Cols(), e.Status())
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Peak: %d | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.PeakPopulation, stats.Runtime().Seconds())
	fmt.Fprintln(out)
}

// runWatch polls the engine on a timer and redraws the terminal each tick
func runWatch(ctx context.Context, out io.Writer, config utils.Config) error {
	e, stats, err := initializeGame(config)
	if err != nil {
		return err
	}
	watch(ctx, out, &model.TerminalRenderer{Out: out}, e, stats, config.FrameRate, config.MaxGenerations)
	return nil
}

// watch steps the engine once per frame until it goes extinct, recurs,
// reaches maxGenerations (when positive) or ctx is done
func watch(
	ctx context.Context,
	out io.Writer,
	scr screen,
	e *engine.LifeEngine,
	stats *utils.Stats,
	frameRate time.Duration,
	maxGenerations int,
) engine.Status {
	if frameRate <= 0 {
		frameRate = defaultFrameRate
	}
	ticker := time.NewTicker(frameRate)
	defer ticker.Stop()

	lastFrameTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(out, "\nShutting down gracefully...")
			fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
				e.Generation(), stats.Runtime().Seconds())
			return e.Status()
		case <-ticker.C:
		}

		e.Step()
		grid := e.Grid()
		stats.Update(e.Generation(), grid.LiveCount(), grid.Rows()*grid.Cols(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		scr.Clear()
		displayGameStatus(out, e, stats)
		scr.Display(e.Grid())

		switch st := e.Status(); st {
		case engine.StatusExtinct:
			fmt.Fprintln(out, extinctMessage)
			return st
		case engine.StatusRecurring:
			fmt.Fprintln(out, recurringMessage)
			return st
		}

		if maxGenerations > 0 && e.Generation() >= maxGenerations {
			fmt.Fprintf(out, "\nReached maximum generations limit (%d)\n", maxGenerations)
			return e.Status()
		}
	}
}

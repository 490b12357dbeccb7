package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/survey"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	var flags utils.Flags
	flags.Bind(flag.CommandLine)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(flags.ConfigFile)
	if err != nil {
		slog.Warn("using default configuration", "file", flags.ConfigFile, "error", err)
		config = utils.DefaultConfig()
	}
	if flags.Seed != 0 {
		config.Seed = flags.Seed
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting", "mode", flags.Mode, "seed", config.Seed)
	if err = run(ctx, flags.Mode, config); err != nil {
		slog.Error("run failed", "mode", flags.Mode, "error", err)
		os.Exit(1)
	}
	slog.Info("finished", "mode", flags.Mode)
}

func run(ctx context.Context, mode string, config utils.Config) error {
	switch mode {
	case "console":
		return runConsole(os.Stdin, os.Stdout, config)
	case "watch":
		return runWatch(ctx, os.Stdout, config)
	case "survey":
		return runSurvey(ctx, os.Stdout, config)
	default:
		return errors.Errorf("[run] unknown mode %q", mode)
	}
}

// engineConfig maps the driver configuration onto an engine configuration
// with the given initial dimensions.
func engineConfig(config utils.Config, rows, cols int) engine.Config {
	return engine.Config{
		Rows:            rows,
		Cols:            cols,
		RowMax:          max(config.RowMax, rows),
		ColMax:          max(config.ColMax, cols),
		HistoryCapacity: config.HistoryCapacity,
		Seed:            config.Seed,
	}
}

func outputStyle(config utils.Config) model.Style {
	if config.Glyphs {
		return model.StyleGlyphs
	}
	return model.StyleDigits
}

// runSurvey runs the configured number of independent simulations and
// reports their outcomes
func runSurvey(ctx context.Context, out io.Writer, config utils.Config) error {
	opts := survey.Options{
		Engine:         engineConfig(config, config.Rows, config.Cols),
		Runs:           config.SurveyRuns,
		Workers:        config.SurveyWorkers,
		MaxGenerations: config.MaxGenerations,
	}

	results, err := survey.Run(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "[runSurvey] survey failed")
	}

	report := out
	if config.ReportFile != "" {
		f, err := os.Create(config.ReportFile)
		if err != nil {
			return errors.Wrapf(err, "[runSurvey] failed to create report: %+v", config.ReportFile)
		}
		defer f.Close()
		report = f
	}
	if err = survey.WriteCSV(report, results); err != nil {
		return err
	}

	s := survey.Summarize(results)
	fmt.Fprintf(out, "Runs: %d | Extinct: %d | Recurring: %d | Exhausted: %d\n",
		s.Runs, s.Outcomes[survey.OutcomeExtinct], s.Outcomes[survey.OutcomeRecurring],
		s.Outcomes[survey.OutcomeExhausted])
	fmt.Fprintf(out, "Generations: mean %.1f | stddev %.1f\n", s.MeanGenerations, s.StdGenerations)
	return nil
}

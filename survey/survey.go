// Package survey runs many independent random simulations concurrently and
// reports how each one ended.
package survey

import (
	"context"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/sheikhrachel/go-life/engine"
)

// Outcome is the reason a run stopped
type Outcome string

const (
	OutcomeExtinct   Outcome = "extinct"
	OutcomeRecurring Outcome = "recurring"
	// OutcomeExhausted means the generation limit was reached first
	OutcomeExhausted Outcome = "exhausted"
)

// Options describes a survey
type Options struct {
	Engine         engine.Config // Seed is the seed of the first run
	Runs           int
	Workers        int
	MaxGenerations int
}

// Result is one row of the survey report
type Result struct {
	RunID           string  `csv:"run_id"`
	Seed            int64   `csv:"seed"`
	Outcome         Outcome `csv:"outcome"`
	Generations     int     `csv:"generations"`
	FinalRows       int     `csv:"final_rows"`
	FinalCols       int     `csv:"final_cols"`
	FinalPopulation int     `csv:"final_population"`
}

// Summary aggregates a survey
type Summary struct {
	Runs            int
	Outcomes        map[Outcome]int
	MeanGenerations float64
	StdGenerations  float64
}

// Run simulates opts.Runs engines seeded Seed, Seed+1, ... with at most
// opts.Workers running at once. Results are ordered by seed. Cancelling ctx
// stops outstanding runs and returns the context error.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Runs <= 0 || opts.MaxGenerations <= 0 {
		return nil, errors.Errorf("[survey.Run] runs and max generations must be positive, got %d and %d",
			opts.Runs, opts.MaxGenerations)
	}
	if err := opts.Engine.Validate(); err != nil {
		return nil, errors.Wrap(err, "[survey.Run] rejected engine config")
	}

	results := make([]Result, opts.Runs)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, opts.Workers))

	for i := range opts.Runs {
		cfg := opts.Engine
		cfg.Seed = opts.Engine.Seed + int64(i)

		eg.Go(func() error {
			res, err := simulate(ctx, cfg, opts.MaxGenerations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func simulate(ctx context.Context, cfg engine.Config, maxGenerations int) (Result, error) {
	e, err := engine.New(cfg, nil)
	if err != nil {
		return Result{}, errors.Wrapf(err, "[survey.simulate] seed %d", cfg.Seed)
	}

	outcome := OutcomeExhausted
	for e.Generation() < maxGenerations {
		if err = ctx.Err(); err != nil {
			return Result{}, err
		}
		e.Step()
		if st := e.Status(); st != engine.StatusRunning {
			outcome = outcomeOf(st)
			break
		}
	}

	final := e.Grid()
	return Result{
		RunID:           uuid.NewString(),
		Seed:            cfg.Seed,
		Outcome:         outcome,
		Generations:     e.Generation(),
		FinalRows:       final.Rows(),
		FinalCols:       final.Cols(),
		FinalPopulation: final.LiveCount(),
	}, nil
}

func outcomeOf(st engine.Status) Outcome {
	if st == engine.StatusExtinct {
		return OutcomeExtinct
	}
	return OutcomeRecurring
}

// Summarize counts outcomes and computes generation statistics
func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results), Outcomes: map[Outcome]int{}}
	if len(results) == 0 {
		return s
	}

	gens := make([]float64, len(results))
	for i, r := range results {
		s.Outcomes[r.Outcome]++
		gens[i] = float64(r.Generations)
	}
	if len(gens) == 1 {
		s.MeanGenerations = gens[0]
		return s
	}
	s.MeanGenerations, s.StdGenerations = stat.MeanStdDev(gens, nil)
	return s
}

// WriteCSV writes the results with a header row
func WriteCSV(w io.Writer, results []Result) error {
	if err := gocsv.Marshal(results, w); err != nil {
		return errors.Wrap(err, "[survey.WriteCSV] failed to marshal results")
	}
	return nil
}

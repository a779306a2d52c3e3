// SPDX-License-Identifier: MIT

package ensemble

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ising/rng"
	"github.com/katalvlaran/ising/schedule"
	"github.com/katalvlaran/ising/system"
)

const methodRun = "Run"

// Run anneals opts.Replicas independent replicas of model along sched.
//
// Steps:
//  1. Validate inputs and resolve the worker limit.
//  2. Fan out through errgroup; replica i seeds its engine with
//     rng.DeriveSeed(opts.Seed, i) and runs schedule.Run.
//  3. Pick the best replica and summarise final energies.
//
// Errors: ErrNilModel, ErrInvalidReplicas, ErrInvalidWorkers,
// ErrInvalidSweepOrder, schedule and system errors,
// and ctx.Err() on cancellation.
func Run(ctx context.Context, model system.Model, sched schedule.Schedule, opts Options) (Result, error) {
	if model == nil {
		return Result{}, fmt.Errorf("%s: %w", methodRun, ErrNilModel)
	}
	if opts.Replicas < 1 {
		return Result{}, fmt.Errorf("%s: replicas=%d: %w", methodRun, opts.Replicas, ErrInvalidReplicas)
	}
	if opts.Workers < 0 {
		return Result{}, fmt.Errorf("%s: workers=%d: %w", methodRun, opts.Workers, ErrInvalidWorkers)
	}
	if opts.SweepOrder != system.SweepRandom && opts.SweepOrder != system.SweepPermutation {
		return Result{}, fmt.Errorf("%s: sweep order=%d: %w", methodRun, int(opts.SweepOrder), ErrInvalidSweepOrder)
	}
	if sched.Len() == 0 {
		return Result{}, fmt.Errorf("%s: %w", methodRun, schedule.ErrEmptySchedule)
	}
	// Resolve defaults: all CPUs, discard logger.
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	// One ID per Run ties every log record of the ensemble together.
	runID := uuid.New()
	logger = logger.With(slog.String("run_id", runID.String()))
	replicas := make([]Replica, opts.Replicas) // slot i written only by replica i

	// Fan out; the first error cancels gctx for the remaining replicas.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range replicas {
		g.Go(func() error {
			rep, err := runReplica(gctx, model, sched, opts, i)
			if err != nil {
				return err
			}
			replicas[i] = rep
			logger.LogAttrs(gctx, slog.LevelDebug, "replica done",
				slog.Int("replica", i),
				slog.Uint64("seed", rep.Seed),
				slog.Float64("energy", rep.Energy),
			)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	// Best replica: strict < keeps the lowest index on ties.
	res := Result{RunID: runID, Replicas: replicas}
	energies := make([]float64, len(replicas))
	for i, rep := range replicas {
		energies[i] = rep.Energy
		if rep.Energy < replicas[res.Best].Energy {
			res.Best = i
		}
	}
	summary, err := summarize(energies)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", methodRun, err)
	}
	res.Summary = summary

	logger.Info("ensemble done",
		slog.Int("replicas", len(replicas)),
		slog.Int("workers", workers),
		slog.Float64("best_energy", replicas[res.Best].Energy),
		slog.Float64("mean_energy", summary.Mean),
	)

	return res, nil
}

// runReplica builds and anneals replica i.
func runReplica(ctx context.Context, model system.Model, sched schedule.Schedule, opts Options, i int) (Replica, error) {
	// Seed depends on (base, index) only, never on scheduling.
	seed := rng.DeriveSeed(opts.Seed, uint64(i))
	engine, err := system.NewRandom(model, system.WithSeed(seed), system.WithSweepOrder(opts.SweepOrder))
	if err != nil {
		return Replica{}, fmt.Errorf("%s: replica %d: %w", methodRun, i, err)
	}

	// Each replica anneals its own engine; the model is shared read-only.
	out, err := schedule.Run(ctx, engine, sched, opts.Algorithm)
	if err != nil {
		return Replica{}, fmt.Errorf("%s: replica %d: %w", methodRun, i, err)
	}

	return Replica{
		Index:  i,
		Seed:   seed,
		Energy: out.FinalEnergy,
		Steps:  out.Steps,
		Spins:  engine.Spins(),
	}, nil
}

// summarize computes the energy summary; energies is non-empty.
func summarize(energies []float64) (Summary, error) {
	var (
		s   Summary
		err error
	)
	if s.Mean, err = stats.Mean(energies); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(energies); err != nil {
		return Summary{}, err
	}
	if s.Min, err = stats.Min(energies); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(energies); err != nil {
		return Summary{}, err
	}

	return s, nil
}

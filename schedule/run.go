// SPDX-License-Identifier: MIT

package schedule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ising/system"
)

// Run anneals target along sched with algo.
//
// Steps:
//  1. For each point in order, call target.Step(Beta, algo) Steps times,
//     checking ctx before every call.
//  2. After the last step of a point, evaluate the energy and append a Trace.
//
// On a Step error or cancellation Run stops and returns the partial Result
// with the error; the engine keeps whatever state it reached.
//
// Complexity: O(TotalSteps · cost(Step)).
func Run(ctx context.Context, target Annealer, sched Schedule, algo system.Algorithm, opts ...RunOption) (Result, error) {
	if target == nil {
		return Result{}, fmt.Errorf("%s: %w", methodRun, ErrNilTarget)
	}
	if sched.Len() == 0 {
		return Result{}, fmt.Errorf("%s: %w", methodRun, ErrEmptySchedule)
	}
	cfg := resolveRun(opts)

	// Start from the engine's current energy so an aborted run still
	// reports a meaningful FinalEnergy.
	res := Result{Trace: make([]Trace, 0, sched.Len())}
	var err error
	if res.FinalEnergy, err = target.Energy(); err != nil {
		return res, fmt.Errorf("%s: %w", methodRun, err)
	}

	for k, p := range sched.points {
		// 1) Steps at this point's beta, in order.
		for step := 0; step < p.Steps; step++ {
			// Cancellation is honoured between steps only.
			if err = ctx.Err(); err != nil {
				return res, err
			}
			v, serr := target.Step(p.Beta, algo)
			if serr != nil {
				return res, fmt.Errorf("%s: point %d step %d: %w", methodRun, k, step, serr)
			}
			res.Steps++ // counts completed steps only
			if cfg.observer != nil {
				cfg.observer(res.Steps, p.Beta, v)
			}
		}

		// 2) Record where this point left the engine.
		e, eerr := target.Energy()
		if eerr != nil {
			return res, fmt.Errorf("%s: point %d: %w", methodRun, k, eerr)
		}
		res.FinalEnergy = e
		res.Trace = append(res.Trace, Trace{Beta: p.Beta, Energy: e})
		cfg.logger.LogAttrs(ctx, slog.LevelDebug, "schedule point done",
			slog.Int("point", k),
			slog.Float64("beta", p.Beta),
			slog.Int("steps", p.Steps),
			slog.Float64("energy", e),
		)
	}

	return res, nil
}

// Anneal runs a geometric schedule of stepNum points from betaMin to betaMax,
// stepLength steps each.
func Anneal(ctx context.Context, target Annealer, betaMin, betaMax float64, stepLength, stepNum int, algo system.Algorithm, opts ...RunOption) (Result, error) {
	sched, err := Geometric(betaMin, betaMax, stepLength, stepNum)
	if err != nil {
		return Result{}, err
	}

	return Run(ctx, target, sched, algo, opts...)
}

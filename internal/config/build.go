// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ising/ensemble"
	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/rng"
	"github.com/katalvlaran/ising/schedule"
	"github.com/katalvlaran/ising/system"
)

// BuildModel constructs the interaction model described by c.Model.
func (c Config) BuildModel() (*graph.Dense, error) {
	m := c.Model
	var opts []graph.LatticeOption
	if m.Periodic {
		opts = append(opts, graph.WithPeriodic())
	}
	if m.Field != 0 {
		opts = append(opts, graph.WithUniformField(m.Field))
	}

	var (
		d   *graph.Dense
		err error
	)
	switch m.Kind {
	case ModelChain:
		d, err = graph.Chain(m.Size, m.Coupling, opts...)
	case ModelSquare:
		d, err = graph.Square(m.Rows, m.Cols, m.Coupling, opts...)
	case ModelComplete:
		d, err = graph.Complete(m.Size, m.Coupling, opts...)
	case ModelGlass:
		d, err = graph.RandomGlass(m.Size, m.Density, rng.New(m.Seed), opts...)
	case ModelBonds:
		fields := m.Fields
		if len(fields) == 0 {
			fields = nil
		}
		d, err = graph.FromBonds(m.Size, m.Bonds, fields)
	default:
		return nil, fmt.Errorf("config: model.kind=%q: %w", m.Kind, ErrUnknownModel)
	}
	if err != nil {
		return nil, fmt.Errorf("config: model: %w", err)
	}

	return d, nil
}

// BuildSchedule constructs the schedule described by c.Schedule.
func (c Config) BuildSchedule() (schedule.Schedule, error) {
	s := c.Schedule
	var (
		out schedule.Schedule
		err error
	)
	switch s.Kind {
	case ScheduleLinear:
		out, err = schedule.Linear(s.BetaMin, s.BetaMax, s.StepsPerPoint, s.NumPoints)
	case ScheduleGeometric:
		out, err = schedule.Geometric(s.BetaMin, s.BetaMax, s.StepsPerPoint, s.NumPoints)
	case SchedulePoints:
		out, err = schedule.New(s.Points...)
	default:
		return schedule.Schedule{}, fmt.Errorf("config: schedule.kind=%q: %w", s.Kind, ErrUnknownSchedule)
	}
	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("config: schedule: %w", err)
	}

	return out, nil
}

// EnsembleOptions converts the run fields into ensemble options.
func (c Config) EnsembleOptions(logger *slog.Logger) (ensemble.Options, error) {
	algo, err := system.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return ensemble.Options{}, fmt.Errorf("config: algorithm: %w", err)
	}
	order, err := c.SweepOrder()
	if err != nil {
		return ensemble.Options{}, err
	}

	return ensemble.Options{
		Replicas:   c.Replicas,
		Workers:    c.Workers,
		Seed:       c.Seed,
		Algorithm:  algo,
		SweepOrder: order,
		Logger:     logger,
	}, nil
}

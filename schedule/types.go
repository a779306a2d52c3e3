// SPDX-License-Identifier: MIT

package schedule

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/ising/system"
)

// Sentinel errors.
var (
	// ErrEmptySchedule indicates a schedule with no points.
	ErrEmptySchedule = errors.New("schedule: empty schedule")

	// ErrInvalidBeta indicates a negative, NaN or infinite beta, or a
	// non-positive endpoint for a geometric schedule.
	ErrInvalidBeta = errors.New("schedule: invalid beta")

	// ErrInvalidSteps indicates a non-positive step or point count.
	ErrInvalidSteps = errors.New("schedule: invalid step count")

	// ErrNilTarget indicates Run was given no engine.
	ErrNilTarget = errors.New("schedule: nil target")
)

const (
	methodNew       = "New"
	methodLinear    = "Linear"
	methodGeometric = "Geometric"
	methodRun       = "Run"
)

// Point is one stage of a schedule: Steps updates at inverse temperature Beta.
type Point struct {
	Beta  float64 `json:"beta" yaml:"beta"`
	Steps int     `json:"steps" yaml:"steps"`
}

// Schedule is an ordered, validated list of points.
type Schedule struct {
	points []Point
}

// Annealer is the engine surface Run needs. *system.ClassicalIsing satisfies it.
type Annealer interface {
	Step(beta float64, algo system.Algorithm) (float64, error)
	Energy() (float64, error)
}

var _ Annealer = (*system.ClassicalIsing)(nil)

// Trace records the state reached at the end of one point.
type Trace struct {
	Beta   float64 `json:"beta"`
	Energy float64 `json:"energy"`
}

// Result is the outcome of Run.
type Result struct {
	Trace       []Trace `json:"trace"`        // one entry per completed point
	Steps       int     `json:"steps"`        // Step calls actually made
	FinalEnergy float64 `json:"final_energy"` // energy after the last completed step
}

// StepObserver is called after every Step with the running step counter
// (1-based), the beta used and the value Step returned.
type StepObserver func(step int, beta, value float64)

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	observer StepObserver
	logger   *slog.Logger
}

// WithObserver installs a per-step hook. Panics on nil.
func WithObserver(fn StepObserver) RunOption {
	if fn == nil {
		panic("schedule: WithObserver(nil)")
	}

	return func(c *runConfig) { c.observer = fn }
}

// WithLogger routes per-point debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) RunOption {
	if l == nil {
		panic("schedule: WithLogger(nil)")
	}

	return func(c *runConfig) { c.logger = l }
}

func resolveRun(opts []RunOption) runConfig {
	c := runConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

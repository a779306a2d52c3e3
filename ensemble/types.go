// SPDX-License-Identifier: MIT

package ensemble

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/system"
)

// Sentinel errors.
var (
	// ErrNilModel indicates Run was given no model.
	ErrNilModel = errors.New("ensemble: nil model")

	// ErrInvalidReplicas indicates a replica count below one.
	ErrInvalidReplicas = errors.New("ensemble: replicas must be >= 1")

	// ErrInvalidWorkers indicates a negative worker limit.
	ErrInvalidWorkers = errors.New("ensemble: workers must be >= 0")

	// ErrInvalidSweepOrder indicates a sweep order outside the system package's set.
	ErrInvalidSweepOrder = errors.New("ensemble: invalid sweep order")
)

// Options configures Run.
type Options struct {
	// Replicas is the number of independent runs. Must be >= 1.
	Replicas int
	// Workers bounds concurrent replicas; 0 means GOMAXPROCS.
	Workers int
	// Seed is the base seed every replica seed is derived from.
	Seed uint64
	// Algorithm is the update rule passed to every Step.
	Algorithm system.Algorithm
	// SweepOrder is forwarded to each engine.
	SweepOrder system.SweepOrder
	// Logger receives per-replica debug records and one info summary.
	// Nil discards.
	Logger *slog.Logger
}

// DefaultOptions returns eight Metropolis replicas with seed 1.
func DefaultOptions() Options {
	return Options{
		Replicas:  8,
		Seed:      1,
		Algorithm: system.SingleSpinFlip,
	}
}

// Replica is the outcome of one replica.
type Replica struct {
	Index  int         `json:"index"`
	Seed   uint64      `json:"seed"`
	Energy float64     `json:"energy"`
	Steps  int         `json:"steps"`
	Spins  graph.Spins `json:"spins"`
}

// Summary describes the distribution of final energies.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"` // population standard deviation
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
}

// Result collects every replica plus the lowest-energy one.
type Result struct {
	RunID    uuid.UUID `json:"run_id"`
	Replicas []Replica `json:"replicas"`
	Best     int       `json:"best"` // index into Replicas; ties keep the lowest index
	Summary  Summary   `json:"summary"`
}

// BestReplica returns Replicas[Best].
func (r Result) BestReplica() Replica { return r.Replicas[r.Best] }

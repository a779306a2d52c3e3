// SPDX-License-Identifier: MIT

package system

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/rng"
)

// Method tags for wrapped errors.
const (
	methodNew      = "New"
	methodSetSpins = "SetSpins"
	methodStep     = "Step"
	methodEnergy   = "Energy"
)

// New builds an engine over model starting from a copy of spins.
// The length of spins is validated; its values are not (see graph.Spins.Validate).
// Without WithSeed or WithSource the random source is seeded from entropy.
//
// Errors: ErrNilModel, ErrEmptyModel, ErrDimensionMismatch.
//
// Complexity: O(N).
func New(model Model, spins graph.Spins, opts ...Option) (*ClassicalIsing, error) {
	c, err := newEngine(model, opts)
	if err != nil {
		return nil, err
	}
	if err = c.SetSpins(spins); err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}

	return c, nil
}

// NewRandom builds an engine whose initial configuration is drawn from the
// engine's own source, so WithSeed fixes both the start and the trajectory.
func NewRandom(model Model, opts ...Option) (*ClassicalIsing, error) {
	c, err := newEngine(model, opts)
	if err != nil {
		return nil, err
	}
	c.RandomizeSpins()

	return c, nil
}

// newEngine validates the model and resolves options.
func newEngine(model Model, opts []Option) (*ClassicalIsing, error) {
	if model == nil {
		return nil, fmt.Errorf("%s: %w", methodNew, ErrNilModel)
	}
	n := model.Size()
	if n < 1 {
		return nil, fmt.Errorf("%s: size=%d: %w", methodNew, n, ErrEmptyModel)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Source precedence: explicit source (reseeded if WithSeed is also
	// given), else a fresh seeded source, else entropy.
	src := o.src
	switch {
	case src == nil && o.seeded:
		src = rng.New(o.seed)
	case src == nil:
		src = rng.NewFromEntropy()
	case o.seeded:
		src.Reseed(o.seed)
	}

	return &ClassicalIsing{
		model:      model,
		spins:      make(graph.Spins, n),
		src:        src,
		order:      o.order,
		observer:   o.observer,
		perm:       make([]int, n),
		candidates: make(graph.Spins, n),
		sizes:      make([]int, n),
	}, nil
}

// Size returns the number of sites.
func (c *ClassicalIsing) Size() int { return len(c.spins) }

// Seed returns the seed of the engine's random source.
func (c *ClassicalIsing) Seed() uint64 { return c.src.Seed() }

// SetSpins overwrites the configuration with a copy of spins.
//
// Errors: ErrDimensionMismatch when len(spins) != Size().
func (c *ClassicalIsing) SetSpins(spins graph.Spins) error {
	if len(spins) != len(c.spins) {
		return fmt.Errorf("%s: len=%d, want %d: %w", methodSetSpins, len(spins), len(c.spins), ErrDimensionMismatch)
	}
	copy(c.spins, spins)

	return nil
}

// RandomizeSpins replaces the configuration with independent uniform spins
// drawn from the engine's source.
func (c *ClassicalIsing) RandomizeSpins() {
	copy(c.spins, graph.RandomSpins(len(c.spins), c.src))
}

// RandomizeSpinsWithSeed reseeds the engine's source with seed and then
// draws a fresh configuration. Subsequent steps continue on the reseeded stream.
func (c *ClassicalIsing) RandomizeSpinsWithSeed(seed uint64) {
	c.src.Reseed(seed)
	c.RandomizeSpins()
}

// Spins returns an independent copy of the current configuration.
func (c *ClassicalIsing) Spins() graph.Spins { return c.spins.Clone() }

// Energy evaluates the model energy of the current configuration.
func (c *ClassicalIsing) Energy() (float64, error) {
	e, err := c.model.Energy(c.spins)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodEnergy, err)
	}

	return e, nil
}

// LastClusterStats reports the clusters of the most recent Swendsen-Wang
// step. It is the zero value until one has run.
func (c *ClassicalIsing) LastClusterStats() ClusterStats { return c.lastClusters }

// Step performs one update at inverse temperature beta.
//
//   - SingleSpinFlip: N Metropolis trials; returns the sum of accepted ΔE.
//   - SwendsenWang:   one cluster pass; returns the new total energy.
//
// Errors:
//   - ErrInvalidBeta: beta is negative, NaN or infinite. No state changes.
//   - ErrUnknownAlgorithm: algo is outside the closed set. No state changes.
//
// Complexity: O(N·d) for Metropolis (d = mean degree); Swendsen-Wang adds
// the model's energy evaluation.
func (c *ClassicalIsing) Step(beta float64, algo Algorithm) (float64, error) {
	// Validate before dispatch so a rejected call consumes no draws.
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta < 0 {
		return 0, fmt.Errorf("%s: beta=%v: %w", methodStep, beta, ErrInvalidBeta)
	}

	switch algo {
	case SingleSpinFlip:
		return c.metropolis(beta), nil
	case SwendsenWang:
		return c.swendsenWang(beta)
	default:
		return 0, fmt.Errorf("%s: %s: %w", methodStep, algo, ErrUnknownAlgorithm)
	}
}

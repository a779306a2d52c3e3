// SPDX-License-Identifier: MIT

package system

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/rng"
	"github.com/katalvlaran/ising/unionfind"
)

// Sentinel errors.
var (
	// ErrNilModel indicates a nil interaction model.
	ErrNilModel = errors.New("system: nil model")

	// ErrEmptyModel indicates a model with no sites.
	ErrEmptyModel = errors.New("system: model has no sites")

	// ErrDimensionMismatch indicates a configuration whose length differs from
	// the model's site count.
	ErrDimensionMismatch = errors.New("system: configuration length mismatch")

	// ErrInvalidBeta indicates a negative, NaN or infinite inverse temperature.
	ErrInvalidBeta = errors.New("system: beta must be finite and non-negative")

	// ErrUnknownAlgorithm indicates an algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("system: unknown algorithm")
)

// Model is the read-only interaction model the engine relaxes.
// *graph.Dense satisfies it.
//
// Neighbors(i) must list i itself iff the site carries a local field; the
// engine reads Field(i) through that entry. Coupling must be symmetric.
type Model interface {
	Size() int
	Neighbors(i int) []int
	Coupling(i, j int) float64
	Field(i int) float64
	Energy(s graph.Spins) (float64, error)
}

var _ Model = (*graph.Dense)(nil)

// Algorithm selects the transition rule used by Step. It is a closed set.
type Algorithm int

const (
	// SingleSpinFlip is the Metropolis single-site rule. It is the zero value.
	SingleSpinFlip Algorithm = iota
	// SwendsenWang is the cluster rule.
	SwendsenWang
)

// Algorithm names accepted by ParseAlgorithm.
const (
	NameSingleSpinFlip = "single_spin_flip"
	NameSwendsenWang   = "swendsen_wang"
)

// ParseAlgorithm maps a name to an Algorithm. The empty name selects
// SingleSpinFlip; anything outside the known names is ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "", NameSingleSpinFlip:
		return SingleSpinFlip, nil
	case NameSwendsenWang:
		return SwendsenWang, nil
	default:
		return 0, fmt.Errorf("ParseAlgorithm: %q: %w", name, ErrUnknownAlgorithm)
	}
}

// String returns the canonical name.
func (a Algorithm) String() string {
	switch a {
	case SingleSpinFlip:
		return NameSingleSpinFlip
	case SwendsenWang:
		return NameSwendsenWang
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if a != SingleSpinFlip && a != SwendsenWang {
		return nil, fmt.Errorf("MarshalText: %d: %w", int(a), ErrUnknownAlgorithm)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// SweepOrder selects how a Metropolis step picks its N trial sites.
type SweepOrder int

const (
	// SweepRandom draws each trial site uniformly with replacement, so one
	// step may visit a site several times and skip others. Default.
	SweepRandom SweepOrder = iota
	// SweepPermutation visits every site exactly once, in a fresh random
	// order per step.
	SweepPermutation
)

// ClusterStats summarises the clusters formed by the last Swendsen-Wang step.
type ClusterStats struct {
	Clusters int // number of distinct clusters
	Largest  int // size of the largest cluster
}

// ClusterObserver receives the forest built by a Swendsen-Wang step together
// with a copy of the configuration after the assignment pass.
type ClusterObserver func(forest *unionfind.Forest, spins graph.Spins)

// Option configures a ClassicalIsing at construction time.
type Option func(*options)

type options struct {
	seed     uint64
	seeded   bool
	src      *rng.Source
	order    SweepOrder
	observer ClusterObserver
}

// WithSeed seeds the engine's random source deterministically.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSource hands the engine an existing source. The engine takes ownership:
// do not draw from src elsewhere. Panics on nil.
func WithSource(src *rng.Source) Option {
	if src == nil {
		panic("system: WithSource(nil)")
	}

	return func(o *options) { o.src = src }
}

// WithSweepOrder selects the Metropolis trial-site order. Panics on values
// outside SweepRandom/SweepPermutation.
func WithSweepOrder(order SweepOrder) Option {
	if order != SweepRandom && order != SweepPermutation {
		panic(fmt.Sprintf("system: WithSweepOrder(%d)", int(order)))
	}

	return func(o *options) { o.order = order }
}

// WithClusterObserver installs a hook called after every Swendsen-Wang step.
// Panics on nil.
func WithClusterObserver(fn ClusterObserver) Option {
	if fn == nil {
		panic("system: WithClusterObserver(nil)")
	}

	return func(o *options) { o.observer = fn }
}

// ClassicalIsing owns one spin configuration and one random source and
// updates them in place.
type ClassicalIsing struct {
	model Model
	spins graph.Spins
	src   *rng.Source

	order    SweepOrder
	observer ClusterObserver

	// Scratch buffers reused across steps.
	perm       []int
	candidates graph.Spins
	sizes      []int

	lastClusters ClusterStats
}

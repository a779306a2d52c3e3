// SPDX-License-Identifier: MIT

package graph

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors for model construction and evaluation.
var (
	// ErrTooFewSites indicates a size parameter below the constructor minimum.
	ErrTooFewSites = errors.New("graph: too few sites")

	// ErrIndexOutOfRange indicates a site index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("graph: site index out of range")

	// ErrSelfCoupling indicates an attempt to set J(i,i); use SetField instead.
	ErrSelfCoupling = errors.New("graph: self-coupling not allowed")

	// ErrNonFinite indicates a NaN or infinite coupling or field value.
	ErrNonFinite = errors.New("graph: non-finite value")

	// ErrDimensionMismatch indicates a configuration or slice whose length
	// differs from the model size.
	ErrDimensionMismatch = errors.New("graph: dimension mismatch")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("graph: probability out of range")

	// ErrNeedSource indicates a stochastic constructor was called without a
	// random source.
	ErrNeedSource = errors.New("graph: random source is required")

	// ErrTooLarge indicates exact enumeration was requested for too many sites.
	ErrTooLarge = errors.New("graph: too many sites for exact enumeration")

	// ErrInvalidBeta indicates a negative, NaN or infinite inverse temperature.
	ErrInvalidBeta = errors.New("graph: beta must be finite and non-negative")

	// ErrInvalidSpin indicates a spin value other than -1 or +1.
	ErrInvalidSpin = errors.New("graph: spin must be -1 or +1")
)

// Spin values.
const (
	Down int8 = -1
	Up   int8 = +1
)

// MaxExactSites caps BoltzmannDistribution: 2^20 configurations.
const MaxExactSites = 20

// Spins is a configuration: Spins[i] ∈ {-1,+1} is the spin of site i.
type Spins []int8

// Bond is one undirected coupling J(I,J) = Value.
type Bond struct {
	I     int     `yaml:"i" json:"i"`
	J     int     `yaml:"j" json:"j"`
	Value float64 `yaml:"value" json:"value"`
}

// Dense is an interaction model with dense symmetric coupling storage.
//
// Fields:
//
//	n  : number of sites.
//	j  : symmetric N×N coupling matrix; diagonal is always zero.
//	h  : local fields.
//	adj: adj[i] lists the neighbours of i ascending, including i itself iff h[i] != 0.
type Dense struct {
	n   int
	j   *mat.SymDense
	h   []float64
	adj [][]int
}

// LatticeOption configures the lattice constructors.
type LatticeOption func(*latticeConfig)

// latticeConfig is the resolved option set for a constructor call.
type latticeConfig struct {
	periodic bool    // wrap boundaries (Chain, Square)
	field    float64 // uniform local field applied to every site
}

// WithPeriodic wraps chain and lattice boundaries. It is ignored by
// constructors without a boundary (Complete, RandomGlass).
func WithPeriodic() LatticeOption {
	return func(c *latticeConfig) { c.periodic = true }
}

// WithUniformField sets h(i) = h on every site.
func WithUniformField(h float64) LatticeOption {
	return func(c *latticeConfig) { c.field = h }
}

// resolveLattice applies opts over the zero configuration.
func resolveLattice(opts []LatticeOption) latticeConfig {
	var cfg latticeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// SPDX-License-Identifier: MIT

// Package graph defines the interaction model of a classical Ising system:
// spin configurations, symmetric pairwise couplings and per-site local fields.
//
// What & Why
//
//   - An Ising model over N sites assigns every site a spin s_i ∈ {-1,+1}.
//     Its energy is
//
//     E(s) = Σ_{i<j} J(i,j)·s_i·s_j + Σ_i h(i)·s_i
//
//     so negative couplings favour aligned neighbours (ferromagnetic) and
//     positive couplings favour anti-aligned ones (antiferromagnetic).
//   - Many binary optimisation problems (max-cut, QUBO) map onto finding a
//     low-energy configuration of such a model.
//
// Model
//
//   - Dense stores couplings in a gonum mat.SymDense (zero diagonal) and fields
//     in a slice. Symmetry J(i,j) == J(j,i) holds by construction.
//   - Neighbors(i) lists every j != i with J(i,j) != 0, ascending. When
//     h(i) != 0 the list also contains i itself: this self entry is the
//     sentinel through which update rules pick up the field term.
//   - A Dense is read-only once built; it may be shared by any number of
//     engines running in parallel.
//
// Constructors
//
//	NewDense(n)                     : empty model, fill with SetCoupling/SetField
//	FromBonds(n, bonds, fields)     : model from an explicit bond list
//	Chain(n, J, opts...)            : 1D chain, optionally periodic
//	Square(rows, cols, J, opts...)  : 2D square lattice, row-major site ids
//	Complete(n, J, opts...)         : all-to-all couplings
//	RandomGlass(n, p, src, opts...) : ±1 couplings on a random support
//
// Exact enumeration
//
//	BoltzmannDistribution(β) returns the exact probability of every
//	configuration for N ≤ MaxExactSites, indexed by Spins.Index. It is the
//	reference distribution used to validate samplers.
//
// Errors
//
//	ErrTooFewSites, ErrIndexOutOfRange, ErrSelfCoupling, ErrNonFinite,
//	ErrDimensionMismatch, ErrInvalidProbability, ErrNeedSource, ErrTooLarge,
//	ErrInvalidSpin, ErrInvalidBeta. All are sentinels; use errors.Is.
package graph

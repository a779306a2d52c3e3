// SPDX-License-Identifier: MIT

// Package system implements the update engine of a classical Ising system:
// the spin state, its private random source and the two Monte Carlo
// transition rules that relax it at a given inverse temperature β.
//
// SingleSpinFlip (Metropolis)
//
//	One Step performs exactly N trials. Each trial draws a site uniformly
//	WITH replacement, computes ΔE = -2·s_i·(Σ_j J(i,j)·s_j + h(i)) and
//	accepts the flip iff exp(-β·ΔE) > u for a fresh u ∈ [0,1).
//
//	The test is not clamped with min(1,·): since u < 1 strictly, every
//	ΔE ≤ 0 flip is accepted, and at β = 0 every flip is accepted.
//
//	Returns the sum of accepted ΔE.
//
// SwendsenWang (cluster)
//
//	Draw one candidate spin per site. Then, for every site i and every
//	neighbour j with s_i·s_j > 0, draw u and unite i and j iff
//	u < 1 - exp(-2β). Each direction of a bond draws on its own, so an
//	aligned pair ends up bonded with probability 1 - exp(-4β). For a
//	uniform |J| = 1 ferromagnet without field the chain therefore samples
//	the Boltzmann distribution at 2β. Anti-aligned pairs are never bonded.
//
//	Every site then takes its cluster root's candidate, and the step
//	returns the total energy of the new configuration (full re-evaluation).
//
// Façade
//
//	New / NewRandom       : build an engine over a Model
//	SetSpins / Spins      : overwrite / copy out the configuration
//	RandomizeSpins(…)     : fresh uniform configuration, optionally reseeded
//	Step(β, algo)         : one update; unknown algo → ErrUnknownAlgorithm
//
// Errors
//
//	ErrNilModel, ErrEmptyModel, ErrDimensionMismatch, ErrInvalidBeta,
//	ErrUnknownAlgorithm. Contract violations fail fast with these sentinels.
//
// Concurrency
//
//	An engine is single-threaded: no operation suspends or locks. Distinct
//	engines share nothing mutable and may run in parallel provided each owns
//	its own random source (distinct seeds, see rng.DeriveSeed). A Model is
//	only read and may be shared.
package system

// SPDX-License-Identifier: MIT

// Package ising is a toolkit for stochastic relaxation of classical Ising
// spin systems under a temperature schedule, used to approximate ground
// states of pairwise-coupled ±1 optimisation problems.
//
// Energy convention
//
//	E(s) = Σ_{i<j} J(i,j)·s_i·s_j + Σ_i h(i)·s_i,   s_i ∈ {-1,+1}
//
// Negative couplings are ferromagnetic: aligned neighbours lower the energy.
//
// Packages, leaves first:
//
//	unionfind/        : disjoint-set forest (union by rank, no path compression)
//	rng/              : per-engine PCG source and SplitMix64 seed derivation
//	graph/            : Spins, dense interaction model, lattices, exact enumeration
//	system/           : update engine (Metropolis, Swendsen-Wang, façade)
//	schedule/         : linear, geometric and explicit schedules plus the driver
//	ensemble/         : independent replicas annealed in parallel
//	internal/config/  : YAML run file with ISING_* environment overlay
//	internal/logging/ : tint console loggers
//	cmd/ising-anneal/ : command-line front end printing JSON
//
// Quick start
//
//	model, _ := graph.Square(16, 16, -1, graph.WithPeriodic())
//	engine, _ := system.NewRandom(model, system.WithSeed(42))
//	res, _ := schedule.Anneal(ctx, engine, 0.1, 3, 100, 30, system.SwendsenWang)
//	fmt.Println(res.FinalEnergy)
//
// Every engine owns its spins and its random source, so one seed reproduces
// a run exactly and engines never need locks.
package ising

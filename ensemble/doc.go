// SPDX-License-Identifier: MIT

// Package ensemble anneals independent replicas of one model in parallel.
//
// Every replica owns an engine seeded with rng.DeriveSeed(Options.Seed, i),
// starts from its own random configuration and runs the same schedule.
// Replicas never exchange states. Results are indexed by replica, so the
// outcome for a given seed does not depend on Workers or on goroutine timing.
//
// The fan-out uses errgroup: the first failing replica cancels the others
// and its error is returned.
package ensemble

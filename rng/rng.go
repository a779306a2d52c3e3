// SPDX-License-Identifier: MIT

// Package rng provides the per-instance random source used by the update
// engine, schedule runners and graph constructors.
//
// Goals:
//   - Determinism: the same seed yields the same stream on every platform.
//   - Encapsulation: every engine owns its Source; there is no package-level
//     generator anywhere in this module.
//   - Independence: Derive/DeriveSeed split one base seed into decorrelated
//     streams for parallel replicas.
//
// Concurrency:
//   - A Source is NOT goroutine-safe. Do not share one across goroutines;
//     derive a child per worker instead.
package rng

import "math/rand/v2"

// Source is a seeded PCG generator exposing the two views the engine needs:
// uniform reals in [0,1) and uniform integers in [0,n).
type Source struct {
	pcg  *rand.PCG
	r    *rand.Rand
	seed uint64
}

// New returns a deterministic Source for seed.
//
// Complexity: O(1).
func New(seed uint64) *Source {
	pcg := rand.NewPCG(seed, 0)

	return &Source{pcg: pcg, r: rand.New(pcg), seed: seed}
}

// NewFromEntropy returns a Source seeded from runtime entropy.
// The chosen seed is still reported by Seed, so a run can be replayed.
func NewFromEntropy() *Source {
	// The top-level math/rand/v2 functions are seeded from OS entropy.
	return New(rand.Uint64())
}

// Seed returns the seed the current stream started from.
func (s *Source) Seed() uint64 { return s.seed }

// Reseed restarts the stream from seed, as if the Source had just been built
// with New(seed).
func (s *Source) Reseed(seed uint64) {
	s.pcg.Seed(seed, 0)
	s.seed = seed
}

// Float64 returns a uniform real in [0,1). The upper bound is never returned.
func (s *Source) Float64() float64 { return s.r.Float64() }

// IntN returns a uniform integer in [0,n). It panics if n <= 0, like
// math/rand/v2; callers guard n.
func (s *Source) IntN(n int) int { return s.r.IntN(n) }

// Shuffle permutes a in place (Fisher-Yates).
//
// Complexity: O(len(a)).
func (s *Source) Shuffle(a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := s.r.IntN(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Derive returns an independent child Source for the given stream id.
// The parent's state is not consumed, so derivation is a pure function of
// (Seed(), stream).
func (s *Source) Derive(stream uint64) *Source {
	return New(DeriveSeed(s.seed, stream))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// The SplitMix64 finalizer gives strong bit diffusion, so neighbouring stream
// ids produce unrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

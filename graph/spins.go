// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/katalvlaran/ising/rng"
)

// Clone returns an independent copy of s. A nil input yields nil.
func (s Spins) Clone() Spins {
	if s == nil {
		return nil
	}
	out := make(Spins, len(s))
	copy(out, s)

	return out
}

// Validate checks that every entry is -1 or +1.
//
// Complexity: O(N).
func (s Spins) Validate() error {
	for i, v := range s {
		if v != Up && v != Down {
			return fmt.Errorf("Validate: spin[%d]=%d: %w", i, v, ErrInvalidSpin)
		}
	}

	return nil
}

// Magnetization returns Σ s_i.
func (s Spins) Magnetization() int {
	var m int
	for _, v := range s {
		m += int(v)
	}

	return m
}

// Index encodes s as an integer: bit i is set iff s[i] == +1.
// Only meaningful for len(s) ≤ 63; BoltzmannDistribution uses it for N ≤ MaxExactSites.
func (s Spins) Index() int {
	var idx int
	for i, v := range s {
		if v == Up {
			idx |= 1 << i
		}
	}

	return idx
}

// SpinsFromIndex is the inverse of Spins.Index for n sites.
func SpinsFromIndex(n, idx int) Spins {
	s := make(Spins, n)
	for i := 0; i < n; i++ {
		if idx&(1<<i) != 0 {
			s[i] = Up
		} else {
			s[i] = Down
		}
	}

	return s
}

// RandomSpins draws n independent uniform spins from src: each site consumes
// one Float64 draw, in site order, and is -1 iff the draw is below 0.5.
func RandomSpins(n int, src *rng.Source) Spins {
	s := make(Spins, n)
	for i := range s {
		if src.Float64() < 0.5 {
			s[i] = Down
		} else {
			s[i] = Up
		}
	}

	return s
}

// SPDX-License-Identifier: MIT

package system

import "math"

// metropolis performs N single-site trials and returns the accepted ΔE sum.
//
// Per trial the draw order is fixed: site (SweepRandom only), then u.
// Trials are sequential; each sees every earlier flip of the same step.
//
// Complexity: O(N·d), d = mean neighbour count.
func (c *ClassicalIsing) metropolis(beta float64) float64 {
	n := len(c.spins)

	// Permutation sweep: fresh order per step, drawn before any trial.
	if c.order == SweepPermutation {
		for i := range c.perm {
			c.perm[i] = i
		}
		c.src.Shuffle(c.perm)
	}

	var total float64
	for t := 0; t < n; t++ {
		// 1) Pick the trial site.
		var i int
		if c.order == SweepPermutation {
			i = c.perm[t]
		} else {
			i = c.src.IntN(n) // with replacement
		}

		// 2) Local energy change of flipping s_i.
		dE := c.deltaE(i)

		// 3) Acceptance, unclamped.
		// exp may overflow to +Inf for dE < 0 at large beta; +Inf > u holds.
		if math.Exp(-beta*dE) > c.src.Float64() {
			// 4) Flip in place and book the change.
			c.spins[i] = -c.spins[i]
			total += dE
		}
	}

	return total
}

// deltaE is the energy change of flipping site i. The self entry in
// Neighbors(i) carries the local field.
func (c *ClassicalIsing) deltaE(i int) float64 {
	si := float64(c.spins[i])

	var dE float64
	for _, j := range c.model.Neighbors(i) {
		if j == i {
			// Field term: h_i·s_i → -h_i·s_i.
			dE += -2 * si * c.model.Field(i)
			continue
		}
		// Bond term: J_ij·s_i·s_j → -J_ij·s_i·s_j.
		dE += -2 * si * c.model.Coupling(i, j) * float64(c.spins[j])
	}

	return dE
}

// SPDX-License-Identifier: MIT

package system

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/unionfind"
)

const methodSwendsenWang = "SwendsenWang"

// swendsenWang performs one cluster pass and returns the new total energy.
//
// Steps:
//  1. Draw candidate[i] ∈ {-1,+1} per site, independent of the current spins.
//  2. Fresh forest over N sites.
//  3. For i ascending and each neighbour j != i: if s_i·s_j > 0, draw u and
//     unite(i,j) iff u < 1 - exp(-2β). Each direction of a bond draws on its
//     own, so an aligned pair is bonded with probability 1 - exp(-4β).
//     Anti-aligned pairs draw nothing.
//  4. s_i ← candidate[root(i)] for every site.
//  5. Full energy re-evaluation.
//
// Complexity: O(N·d·log N) for bonding and assignment plus the model's
// energy evaluation.
func (c *ClassicalIsing) swendsenWang(beta float64) (float64, error) {
	n := len(c.spins)

	// 1) Candidates: one draw per site, in site order.
	for i := 0; i < n; i++ {
		if c.src.Float64() < 0.5 {
			c.candidates[i] = graph.Down
		} else {
			c.candidates[i] = graph.Up
		}
	}

	// 2) Forest: every site starts as its own cluster.
	forest, err := unionfind.New(n)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", methodSwendsenWang, err)
	}

	// 3) Bond activation through aligned pairs only.
	uniteRate := 1 - math.Exp(-2*beta) // per direction; β = 0 gives 0
	for i := 0; i < n; i++ {
		for _, j := range c.model.Neighbors(i) {
			if j == i {
				continue // field sentinel, not a bond
			}
			if int(c.spins[i])*int(c.spins[j]) <= 0 {
				continue // anti-aligned: no draw, no bond
			}
			if c.src.Float64() >= uniteRate {
				continue // bond stays inactive in this direction
			}
			// Active bond: merge the two clusters (no-op if already merged).
			if err = forest.Unite(i, j); err != nil {
				return 0, fmt.Errorf("%s: %w", methodSwendsenWang, err)
			}
		}
	}

	// 4) Assignment: every site takes its root's candidate.
	// sizes[r] counts members seen so far under root r; reset per pass.
	for i := range c.sizes {
		c.sizes[i] = 0
	}
	var stats ClusterStats
	for i := 0; i < n; i++ {
		root, ferr := forest.FindRoot(i)
		if ferr != nil {
			return 0, fmt.Errorf("%s: %w", methodSwendsenWang, ferr)
		}
		c.spins[i] = c.candidates[root]

		// First member of a cluster: count the cluster.
		if c.sizes[root] == 0 {
			stats.Clusters++
		}
		c.sizes[root]++
		// Track the largest cluster while counting.
		if c.sizes[root] > stats.Largest {
			stats.Largest = c.sizes[root]
		}
	}
	c.lastClusters = stats

	// Observer sees a copy, so it cannot alias engine state.
	if c.observer != nil {
		c.observer(forest, c.spins.Clone())
	}

	// 5) Energy of the new configuration.
	return c.Energy()
}

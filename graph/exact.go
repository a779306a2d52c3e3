// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const methodBoltzmann = "BoltzmannDistribution"

// BoltzmannDistribution enumerates all 2^N configurations and returns
// P(s) ∝ exp(-β·E(s)), indexed by Spins.Index.
//
// Weights are shifted by the minimum energy before exponentiation so large β
// cannot overflow; the result always sums to 1.
//
// Errors:
//   - ErrInvalidBeta: beta is negative, NaN or infinite.
//   - ErrTooLarge: Size() > MaxExactSites.
//
// Complexity: O(2^N · N²).
func (d *Dense) BoltzmannDistribution(beta float64) ([]float64, error) {
	// +Inf turns ground-state weights into Inf·0 = NaN; negative β overflows.
	if math.IsNaN(beta) || math.IsInf(beta, 0) || beta < 0 {
		return nil, fmt.Errorf("%s: beta=%v: %w", methodBoltzmann, beta, ErrInvalidBeta)
	}
	if d.n > MaxExactSites {
		return nil, fmt.Errorf("%s: n=%d > max=%d: %w", methodBoltzmann, d.n, MaxExactSites, ErrTooLarge)
	}

	total := 1 << d.n
	energies := make([]float64, total)
	for idx := 0; idx < total; idx++ {
		e, err := d.Energy(SpinsFromIndex(d.n, idx))
		if err != nil {
			return nil, err
		}
		energies[idx] = e
	}

	eMin := floats.Min(energies)
	probs := make([]float64, total)
	for idx, e := range energies {
		probs[idx] = math.Exp(-beta * (e - eMin))
	}
	floats.Scale(1/floats.Sum(probs), probs)

	return probs, nil
}

// GroundStates returns the minimum energy and every configuration that
// attains it (within 1e-9), in ascending Index order.
//
// Errors: ErrTooLarge when Size() > MaxExactSites.
func (d *Dense) GroundStates() (float64, []Spins, error) {
	if d.n > MaxExactSites {
		return 0, nil, fmt.Errorf("GroundStates: n=%d > max=%d: %w", d.n, MaxExactSites, ErrTooLarge)
	}

	const tol = 1e-9
	best := math.Inf(1)
	var states []Spins
	for idx := 0; idx < 1<<d.n; idx++ {
		s := SpinsFromIndex(d.n, idx)
		e, err := d.Energy(s)
		if err != nil {
			return 0, nil, err
		}
		switch {
		case e < best-tol:
			best = e
			states = []Spins{s}
		case e <= best+tol:
			states = append(states, s)
		}
	}

	return best, states, nil
}

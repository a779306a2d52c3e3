// SPDX-License-Identifier: MIT
//
// lattice.go: deterministic topology constructors.
//
// Contract:
//   • Sites are numbered 0..N-1; Square uses row-major ids r*cols+c.
//   • Every bond gets the same coupling value J (RandomGlass draws ±1).
//   • WithUniformField(h) sets h on every site after the bonds are placed.
//   • WithPeriodic wraps a boundary only when the dimension exceeds 2, so no
//     bond is ever emitted twice.
//   • Returns only wrapped sentinels; never panics on parameters.

package graph

import (
	"fmt"

	"github.com/katalvlaran/ising/rng"
)

// Method tags and minima.
const (
	methodChain       = "Chain"
	methodSquare      = "Square"
	methodComplete    = "Complete"
	methodRandomGlass = "RandomGlass"

	minChainSites = 2
	minSquareDim  = 1
	minWrapDim    = 3
	probMin       = 0.0
	probMax       = 1.0
)

// Chain builds an n-site 1D chain with bonds (i, i+1) of strength coupling.
// With WithPeriodic and n ≥ 3 the bond (n-1, 0) closes the ring.
//
// Complexity: O(n²) memory (dense storage), O(n·N) time for neighbour refresh.
func Chain(n int, coupling float64, opts ...LatticeOption) (*Dense, error) {
	if n < minChainSites {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainSites, ErrTooFewSites)
	}
	cfg := resolveLattice(opts)

	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = d.SetCoupling(i, i+1, coupling); err != nil {
			return nil, fmt.Errorf("%s: %w", methodChain, err)
		}
	}
	if cfg.periodic && n >= minWrapDim {
		if err = d.SetCoupling(n-1, 0, coupling); err != nil {
			return nil, fmt.Errorf("%s: %w", methodChain, err)
		}
	}

	return applyField(methodChain, d, cfg)
}

// Square builds a rows×cols square lattice with 4-neighbourhood.
// For each cell the Right then Bottom bonds are emitted; WithPeriodic wraps
// each dimension of size ≥ 3.
func Square(rows, cols int, coupling float64, opts ...LatticeOption) (*Dense, error) {
	if rows < minSquareDim || cols < minSquareDim || rows*cols < minChainSites {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w", methodSquare, rows, cols, ErrTooFewSites)
	}
	cfg := resolveLattice(opts)

	d, err := NewDense(rows * cols)
	if err != nil {
		return nil, err
	}
	id := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := id(r, c)
			// Right neighbour.
			if c+1 < cols {
				err = d.SetCoupling(u, id(r, c+1), coupling)
			} else if cfg.periodic && cols >= minWrapDim {
				err = d.SetCoupling(u, id(r, 0), coupling)
			}
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodSquare, err)
			}
			// Bottom neighbour.
			if r+1 < rows {
				err = d.SetCoupling(u, id(r+1, c), coupling)
			} else if cfg.periodic && rows >= minWrapDim {
				err = d.SetCoupling(u, id(0, c), coupling)
			}
			if err != nil {
				return nil, fmt.Errorf("%s: %w", methodSquare, err)
			}
		}
	}

	return applyField(methodSquare, d, cfg)
}

// Complete builds the all-to-all model on n sites (every pair i<j coupled).
func Complete(n int, coupling float64, opts ...LatticeOption) (*Dense, error) {
	if n < minChainSites {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minChainSites, ErrTooFewSites)
	}
	cfg := resolveLattice(opts)

	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = d.SetCoupling(i, j, coupling); err != nil {
				return nil, fmt.Errorf("%s: %w", methodComplete, err)
			}
		}
	}

	return applyField(methodComplete, d, cfg)
}

// RandomGlass builds a ±J spin glass: each pair i<j is bonded with
// probability p, and each bond is -1 or +1 with equal probability.
// Trials run i ascending, j ascending, so a fixed seed fixes the model.
//
// Errors: ErrTooFewSites, ErrInvalidProbability, ErrNeedSource.
func RandomGlass(n int, p float64, src *rng.Source, opts ...LatticeOption) (*Dense, error) {
	if n < minChainSites {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomGlass, n, minChainSites, ErrTooFewSites)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomGlass, p, probMin, probMax, ErrInvalidProbability)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomGlass, ErrNeedSource)
	}
	cfg := resolveLattice(opts)

	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if src.Float64() >= p {
				continue
			}
			v := 1.0
			if src.Float64() < 0.5 {
				v = -1.0
			}
			if err = d.SetCoupling(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", methodRandomGlass, err)
			}
		}
	}

	return applyField(methodRandomGlass, d, cfg)
}

// applyField writes the configured uniform field, if any.
func applyField(method string, d *Dense, cfg latticeConfig) (*Dense, error) {
	if cfg.field == 0 {
		return d, nil
	}
	for i := 0; i < d.n; i++ {
		if err := d.SetField(i, cfg.field); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	return d, nil
}

// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ising/rng"
)

// Method tags for wrapped errors.
const (
	methodNewDense    = "NewDense"
	methodSetCoupling = "SetCoupling"
	methodSetField    = "SetField"
	methodEnergy      = "Energy"
	methodFromBonds   = "FromBonds"
)

// minSites is the smallest model NewDense accepts.
const minSites = 1

// NewDense returns an n-site model with all couplings and fields zero.
//
// Complexity: O(n²) memory for the coupling matrix.
func NewDense(n int) (*Dense, error) {
	if n < minSites {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodNewDense, n, minSites, ErrTooFewSites)
	}

	return &Dense{
		n:   n,
		j:   mat.NewSymDense(n, nil),
		h:   make([]float64, n),
		adj: make([][]int, n),
	}, nil
}

// FromBonds builds an n-site model from a bond list and optional fields.
// fields may be nil (all zero); otherwise len(fields) must equal n.
// A repeated bond overwrites the earlier value.
func FromBonds(n int, bonds []Bond, fields []float64) (*Dense, error) {
	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	if fields != nil && len(fields) != n {
		return nil, fmt.Errorf("%s: len(fields)=%d, n=%d: %w", methodFromBonds, len(fields), n, ErrDimensionMismatch)
	}

	for _, b := range bonds {
		if err = d.SetCoupling(b.I, b.J, b.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromBonds, err)
		}
	}
	for i, h := range fields {
		if err = d.SetField(i, h); err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromBonds, err)
		}
	}

	return d, nil
}

// Size returns the number of sites N.
func (d *Dense) Size() int { return d.n }

// SetCoupling sets J(i,j) = J(j,i) = v. Setting v = 0 removes the bond.
//
// Errors: ErrIndexOutOfRange, ErrSelfCoupling, ErrNonFinite.
//
// Complexity: O(N) to refresh the two affected neighbour lists.
func (d *Dense) SetCoupling(i, j int, v float64) error {
	if err := d.checkSite(methodSetCoupling, i); err != nil {
		return err
	}
	if err := d.checkSite(methodSetCoupling, j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("%s: i=j=%d: %w", methodSetCoupling, i, ErrSelfCoupling)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: (%d,%d)=%v: %w", methodSetCoupling, i, j, v, ErrNonFinite)
	}

	d.j.SetSym(i, j, v)
	d.refreshNeighbors(i)
	d.refreshNeighbors(j)

	return nil
}

// SetField sets the local field h(i) = v.
//
// Errors: ErrIndexOutOfRange, ErrNonFinite.
func (d *Dense) SetField(i int, v float64) error {
	if err := d.checkSite(methodSetField, i); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: h[%d]=%v: %w", methodSetField, i, v, ErrNonFinite)
	}

	d.h[i] = v
	d.refreshNeighbors(i)

	return nil
}

// Coupling returns J(i,j). Indices are a caller contract: out-of-range
// values panic inside gonum, exactly like slice indexing.
func (d *Dense) Coupling(i, j int) float64 { return d.j.At(i, j) }

// Field returns h(i). Out-of-range indices panic like slice indexing.
func (d *Dense) Field(i int) float64 { return d.h[i] }

// Neighbors returns the neighbour list of i, ascending, with i itself present
// iff h(i) != 0. The slice is shared; treat it as read-only.
func (d *Dense) Neighbors(i int) []int { return d.adj[i] }

// Bonds lists every non-zero coupling once, ordered by (I, J) with I < J.
//
// Complexity: O(N + E).
func (d *Dense) Bonds() []Bond {
	var out []Bond
	for i := 0; i < d.n; i++ {
		for _, k := range d.adj[i] {
			if k > i {
				out = append(out, Bond{I: i, J: k, Value: d.j.At(i, k)})
			}
		}
	}

	return out
}

// Fields returns a copy of the local field vector.
func (d *Dense) Fields() []float64 {
	out := make([]float64, d.n)
	copy(out, d.h)

	return out
}

// Energy evaluates E(s) = ½·sᵀJs + h·s.
// The diagonal of J is zero, so the quadratic form counts each bond twice.
//
// Errors: ErrDimensionMismatch when len(s) != Size().
//
// Complexity: O(N²).
func (d *Dense) Energy(s Spins) (float64, error) {
	if len(s) != d.n {
		return 0, fmt.Errorf("%s: len(spins)=%d, n=%d: %w", methodEnergy, len(s), d.n, ErrDimensionMismatch)
	}

	buf := make([]float64, d.n)
	for i, v := range s {
		buf[i] = float64(v)
	}
	v := mat.NewVecDense(d.n, buf)

	return 0.5*mat.Inner(v, d.j, v) + floats.Dot(d.h, buf), nil
}

// RandomSpins draws an independent uniform configuration from src.
func (d *Dense) RandomSpins(src *rng.Source) Spins { return RandomSpins(d.n, src) }

// refreshNeighbors rebuilds adj[i] from row i of J and h[i].
func (d *Dense) refreshNeighbors(i int) {
	row := make([]int, 0, len(d.adj[i])+1)
	for k := 0; k < d.n; k++ {
		if k == i {
			if d.h[i] != 0 {
				row = append(row, i) // field sentinel
			}
			continue
		}
		if d.j.At(i, k) != 0 {
			row = append(row, k)
		}
	}
	d.adj[i] = row
}

// checkSite validates i against [0, Size()).
func (d *Dense) checkSite(method string, i int) error {
	if i < 0 || i >= d.n {
		return fmt.Errorf("%s: site=%d, n=%d: %w", method, i, d.n, ErrIndexOutOfRange)
	}

	return nil
}

package system_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/system"
)

// Test knobs shared across files.
const (
	seedDet  = uint64(20240611) // fixed seed for deterministic runs
	epsTiny  = 1e-9             // energy bookkeeping tolerance
	betaHuge = 1e6              // effectively zero temperature
)

// emptyModel reports zero sites; used to exercise ErrEmptyModel.
type emptyModel struct{}

func (emptyModel) Size() int                           { return 0 }
func (emptyModel) Neighbors(int) []int                 { return nil }
func (emptyModel) Coupling(int, int) float64           { return 0 }
func (emptyModel) Field(int) float64                   { return 0 }
func (emptyModel) Energy(graph.Spins) (float64, error) { return 0, nil }

// pair builds a two-site model with J(0,1) = j and no field.
func pair(t *testing.T, j float64) *graph.Dense {
	t.Helper()
	d, err := graph.FromBonds(2, []graph.Bond{{I: 0, J: 1, Value: j}}, nil)
	require.NoError(t, err)

	return d
}

// frustratedTriangle has mixed couplings and one field so every ΔE branch is hit.
func frustratedTriangle(t *testing.T) *graph.Dense {
	t.Helper()
	d, err := graph.FromBonds(3, []graph.Bond{
		{I: 0, J: 1, Value: -1},
		{I: 1, J: 2, Value: 0.5},
		{I: 0, J: 2, Value: 0.25},
	}, []float64{0.3, 0, -0.2})
	require.NoError(t, err)

	return d
}

// mustEngine builds a seeded engine or aborts.
func mustEngine(t *testing.T, m system.Model, s graph.Spins, opts ...system.Option) *system.ClassicalIsing {
	t.Helper()
	c, err := system.New(m, s, opts...)
	require.NoError(t, err)

	return c
}

// mustEnergy evaluates the engine's current energy or aborts.
func mustEnergy(t *testing.T, c *system.ClassicalIsing) float64 {
	t.Helper()
	e, err := c.Energy()
	require.NoError(t, err)

	return e
}

// chiSquare returns Σ (obs-exp)²/exp over cells with exp > 0.
func chiSquare(counts []int, probs []float64, total int) float64 {
	var stat float64
	for k, p := range probs {
		expected := p * float64(total)
		if expected == 0 {
			continue
		}
		d := float64(counts[k]) - expected
		stat += d * d / expected
	}

	return stat
}

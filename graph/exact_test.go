package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ising/graph"
)

// TestBoltzmann_FerromagneticPair checks the closed form for two sites with
// J = -1: aligned states have E = -1, anti-aligned E = +1.
func TestBoltzmann_FerromagneticPair(t *testing.T) {
	d, err := graph.FromBonds(2, []graph.Bond{{I: 0, J: 1, Value: -1}}, nil)
	require.NoError(t, err)

	const beta = 0.7
	p, err := d.BoltzmannDistribution(beta)
	require.NoError(t, err)
	require.Len(t, p, 4)

	z := 2*math.Exp(beta) + 2*math.Exp(-beta)
	aligned := math.Exp(beta) / z
	anti := math.Exp(-beta) / z

	assert.InDelta(t, aligned, p[0b00], 1e-12) // (-1,-1)
	assert.InDelta(t, aligned, p[0b11], 1e-12) // (+1,+1)
	assert.InDelta(t, anti, p[0b01], 1e-12)
	assert.InDelta(t, anti, p[0b10], 1e-12)
}

// TestBoltzmann_LargeBeta stays finite where naive weights would overflow.
func TestBoltzmann_LargeBeta(t *testing.T) {
	d, _ := graph.Chain(3, -1)
	p, err := d.BoltzmannDistribution(1e4)
	require.NoError(t, err)

	var sum float64
	for _, v := range p {
		assert.False(t, math.IsNaN(v))
		sum += v
	}
	assert.InDelta(t, 1, sum, 1e-12)
	assert.InDelta(t, 0.5, p[0b000], 1e-12)
	assert.InDelta(t, 0.5, p[0b111], 1e-12)
}

// TestBoltzmann_InvalidBeta rejects every β without a finite distribution.
func TestBoltzmann_InvalidBeta(t *testing.T) {
	d, err := graph.FromBonds(2, []graph.Bond{{I: 0, J: 1, Value: -1}}, nil)
	require.NoError(t, err)

	for _, beta := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), -0.5, -1e6} {
		p, err := d.BoltzmannDistribution(beta)
		assert.ErrorIs(t, err, graph.ErrInvalidBeta, "beta=%v", beta)
		assert.Nil(t, p)
	}

	p, err := d.BoltzmannDistribution(0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.25, 0.25, 0.25}, p, 1e-12)
}

func TestGroundStates(t *testing.T) {
	d, _ := graph.Chain(3, 1) // antiferromagnetic chain
	e, states, err := d.GroundStates()
	require.NoError(t, err)
	assert.InDelta(t, -2, e, 1e-12)
	assert.Equal(t, []graph.Spins{{-1, 1, -1}, {1, -1, 1}}, states) // ascending Index
}

func TestExact_TooLarge(t *testing.T) {
	d, _ := graph.NewDense(graph.MaxExactSites + 1)
	_, err := d.BoltzmannDistribution(1)
	assert.ErrorIs(t, err, graph.ErrTooLarge)
	_, _, err = d.GroundStates()
	assert.ErrorIs(t, err, graph.ErrTooLarge)
}

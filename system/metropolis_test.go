package system_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/rng"
	"github.com/katalvlaran/ising/system"
)

// TestMetropolis_EnergyBookkeeping checks that the returned ΔE sum always
// equals the change in total energy.
func TestMetropolis_EnergyBookkeeping(t *testing.T) {
	g, err := graph.RandomGlass(30, 0.25, rng.New(11), graph.WithUniformField(-0.3))
	require.NoError(t, err)
	c, err := system.NewRandom(g, system.WithSeed(seedDet))
	require.NoError(t, err)

	for _, beta := range []float64{0, 0.2, 0.7, 1.5, 5} {
		for k := 0; k < 20; k++ {
			before := mustEnergy(t, c)
			dE, err := c.Step(beta, system.SingleSpinFlip)
			require.NoError(t, err)
			after := mustEnergy(t, c)
			assert.InDelta(t, after-before, dE, epsTiny, "beta=%v step=%d", beta, k)
		}
	}
}

// TestMetropolis_ZeroBetaAcceptsAll checks that at β = 0 every trial flips:
// with a permutation sweep every site flips exactly once per step.
func TestMetropolis_ZeroBetaAcceptsAll(t *testing.T) {
	g := frustratedTriangle(t)
	start := graph.Spins{1, -1, 1}
	c := mustEngine(t, g, start, system.WithSeed(seedDet), system.WithSweepOrder(system.SweepPermutation))

	_, err := c.Step(0, system.SingleSpinFlip)
	require.NoError(t, err)
	assert.Equal(t, graph.Spins{-1, 1, -1}, c.Spins())

	_, err = c.Step(0, system.SingleSpinFlip)
	require.NoError(t, err)
	assert.Equal(t, start, c.Spins())
}

// TestMetropolis_ZeroBetaRandomSweep checks the with-replacement default:
// after one β = 0 step, the parity of each site's visit count decides its
// spin, so the magnetisation parity is that of N trials.
func TestMetropolis_ZeroBetaRandomSweep(t *testing.T) {
	g, err := graph.Chain(5, -1)
	require.NoError(t, err)
	start := graph.Spins{1, 1, 1, 1, 1}
	c := mustEngine(t, g, start, system.WithSeed(seedDet))

	_, err = c.Step(0, system.SingleSpinFlip)
	require.NoError(t, err)

	// Exactly 5 flips happened; each flip changes magnetisation by ±2.
	flipped := 0
	for i, v := range c.Spins() {
		if v != start[i] {
			flipped++
		}
	}
	assert.Equal(t, 1, flipped%2) // odd number of net flips from 5 trials
}

// TestMetropolis_ZeroTemperatureMonotone checks that at huge β no step
// raises the energy and the reported ΔE sum is never positive.
func TestMetropolis_ZeroTemperatureMonotone(t *testing.T) {
	g, err := graph.RandomGlass(40, 0.2, rng.New(8), graph.WithUniformField(0.05))
	require.NoError(t, err)
	c, err := system.NewRandom(g, system.WithSeed(seedDet))
	require.NoError(t, err)

	prev := mustEnergy(t, c)
	for k := 0; k < 100; k++ {
		dE, err := c.Step(betaHuge, system.SingleSpinFlip)
		require.NoError(t, err)
		assert.LessOrEqual(t, dE, 0.0)

		cur := mustEnergy(t, c)
		assert.LessOrEqual(t, cur, prev+epsTiny, "step %d", k)
		prev = cur
	}
}

// TestMetropolis_OverflowHarmless uses a β large enough that exp(-β·ΔE)
// overflows to +Inf for downhill moves.
func TestMetropolis_OverflowHarmless(t *testing.T) {
	c := mustEngine(t, pair(t, -1), graph.Spins{1, -1}, system.WithSeed(seedDet))
	dE, err := c.Step(1e300, system.SingleSpinFlip)
	require.NoError(t, err)
	assert.Equal(t, -2.0, dE) // the first trial fixes the pair; reversal is impossible
	s := c.Spins()
	assert.Equal(t, s[0], s[1])
}

// TestMetropolis_FerromagneticPair: J = -1, start anti-aligned at β = 10.
// The pair aligns within the first step and stays aligned.
func TestMetropolis_FerromagneticPair(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		c := mustEngine(t, pair(t, -1), graph.Spins{1, -1}, system.WithSeed(seed))

		_, err := c.Step(10, system.SingleSpinFlip)
		require.NoError(t, err)
		s := c.Spins()
		assert.Equal(t, s[0], s[1], "seed %d after first step", seed)

		for k := 0; k < 100; k++ {
			_, err = c.Step(10, system.SingleSpinFlip)
			require.NoError(t, err)
		}
		s = c.Spins()
		assert.Equal(t, s[0], s[1], "seed %d after 100 steps", seed)
	}
}

// TestMetropolis_DetailedBalance compares the empirical distribution of a
// frustrated 3-site system against the exact Boltzmann distribution with a
// chi-squared test (7 degrees of freedom).
func TestMetropolis_DetailedBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	const (
		beta    = 0.5
		burnIn  = 500
		thin    = 10
		samples = 20_000
		alpha   = 1e-4
	)
	g := frustratedTriangle(t)
	want, err := g.BoltzmannDistribution(beta)
	require.NoError(t, err)

	c := mustEngine(t, g, graph.Spins{1, 1, 1}, system.WithSeed(seedDet))
	for k := 0; k < burnIn; k++ {
		_, err = c.Step(beta, system.SingleSpinFlip)
		require.NoError(t, err)
	}

	counts := make([]int, len(want))
	for s := 0; s < samples; s++ {
		for k := 0; k < thin; k++ {
			_, err = c.Step(beta, system.SingleSpinFlip)
			require.NoError(t, err)
		}
		counts[c.Spins().Index()]++
	}

	stat := chiSquare(counts, want, samples)
	p := distuv.ChiSquared{K: float64(len(want) - 1)}.Survival(stat)
	assert.Greater(t, p, alpha, "chi2=%.3f counts=%v", stat, counts)
}

// TestMetropolis_PermutationDetailedBalance repeats the check for the
// permutation sweep order.
func TestMetropolis_PermutationDetailedBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	const (
		beta    = 0.5
		thin    = 10
		samples = 20_000
		alpha   = 1e-4
	)
	g := frustratedTriangle(t)
	want, err := g.BoltzmannDistribution(beta)
	require.NoError(t, err)

	c := mustEngine(t, g, graph.Spins{1, 1, 1}, system.WithSeed(seedDet+1), system.WithSweepOrder(system.SweepPermutation))
	counts := make([]int, len(want))
	for s := 0; s < samples; s++ {
		for k := 0; k < thin; k++ {
			_, err = c.Step(beta, system.SingleSpinFlip)
			require.NoError(t, err)
		}
		counts[c.Spins().Index()]++
	}

	stat := chiSquare(counts, want, samples)
	p := distuv.ChiSquared{K: float64(len(want) - 1)}.Survival(stat)
	assert.Greater(t, p, alpha, "chi2=%.3f counts=%v", stat, counts)
}

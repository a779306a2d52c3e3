package ensemble_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ising/ensemble"
	"github.com/katalvlaran/ising/graph"
	"github.com/katalvlaran/ising/rng"
	"github.com/katalvlaran/ising/schedule"
	"github.com/katalvlaran/ising/system"
)

const seedDet = uint64(20240611)

func glass(t *testing.T) *graph.Dense {
	t.Helper()
	g, err := graph.RandomGlass(12, 0.5, rng.New(seedDet))
	require.NoError(t, err)

	return g
}

func shortSchedule(t *testing.T) schedule.Schedule {
	t.Helper()
	s, err := schedule.Geometric(0.1, 3, 5, 6)
	require.NoError(t, err)

	return s
}

// TestRun_IndependentOfWorkers checks that the worker limit never changes
// the per-replica outcome.
func TestRun_IndependentOfWorkers(t *testing.T) {
	g, s := glass(t), shortSchedule(t)
	opts := ensemble.Options{Replicas: 6, Seed: seedDet, Algorithm: system.SingleSpinFlip}

	opts.Workers = 1
	serial, err := ensemble.Run(context.Background(), g, s, opts)
	require.NoError(t, err)
	opts.Workers = 4
	parallel, err := ensemble.Run(context.Background(), g, s, opts)
	require.NoError(t, err)

	assert.Equal(t, serial.Replicas, parallel.Replicas)
	assert.Equal(t, serial.Best, parallel.Best)
	assert.Equal(t, serial.Summary, parallel.Summary)
	assert.NotEqual(t, serial.RunID, parallel.RunID)
	assert.NotEqual(t, uuid.Nil, serial.RunID)
}

// TestRun_ReplicaContract checks seeds, energies, best and summary bounds.
func TestRun_ReplicaContract(t *testing.T) {
	g, s := glass(t), shortSchedule(t)
	res, err := ensemble.Run(context.Background(), g, s, ensemble.Options{
		Replicas:  5,
		Seed:      7,
		Algorithm: system.SwendsenWang,
	})
	require.NoError(t, err)
	require.Len(t, res.Replicas, 5)

	seen := make(map[uint64]bool)
	for i, rep := range res.Replicas {
		assert.Equal(t, i, rep.Index)
		assert.Equal(t, rng.DeriveSeed(7, uint64(i)), rep.Seed)
		assert.False(t, seen[rep.Seed], "duplicate seed")
		seen[rep.Seed] = true
		assert.Equal(t, s.TotalSteps(), rep.Steps)

		e, err := g.Energy(rep.Spins)
		require.NoError(t, err)
		assert.InDelta(t, e, rep.Energy, 1e-9)
		assert.GreaterOrEqual(t, rep.Energy, res.BestReplica().Energy)
	}
	assert.Equal(t, res.BestReplica().Energy, res.Summary.Min)
	assert.LessOrEqual(t, res.Summary.Min, res.Summary.Mean)
	assert.GreaterOrEqual(t, res.Summary.StdDev, 0.0)
}

// TestRun_MatchesSingleEngine checks a replica against a hand-built engine.
func TestRun_MatchesSingleEngine(t *testing.T) {
	g, s := glass(t), shortSchedule(t)
	res, err := ensemble.Run(context.Background(), g, s, ensemble.Options{Replicas: 3, Seed: 99})
	require.NoError(t, err)

	c, err := system.NewRandom(g, system.WithSeed(rng.DeriveSeed(99, 2)))
	require.NoError(t, err)
	out, err := schedule.Run(context.Background(), c, s, system.SingleSpinFlip)
	require.NoError(t, err)

	assert.Equal(t, c.Spins(), res.Replicas[2].Spins)
	assert.Equal(t, out.FinalEnergy, res.Replicas[2].Energy)
}

// TestRun_Validation covers the rejection paths.
func TestRun_Validation(t *testing.T) {
	g, s := glass(t), shortSchedule(t)
	ctx := context.Background()

	_, err := ensemble.Run(ctx, nil, s, ensemble.DefaultOptions())
	assert.ErrorIs(t, err, ensemble.ErrNilModel)

	_, err = ensemble.Run(ctx, g, s, ensemble.Options{Replicas: 0})
	assert.ErrorIs(t, err, ensemble.ErrInvalidReplicas)

	_, err = ensemble.Run(ctx, g, s, ensemble.Options{Replicas: 1, Workers: -1})
	assert.ErrorIs(t, err, ensemble.ErrInvalidWorkers)

	_, err = ensemble.Run(ctx, g, s, ensemble.Options{Replicas: 1, SweepOrder: 5})
	assert.ErrorIs(t, err, ensemble.ErrInvalidSweepOrder)

	_, err = ensemble.Run(ctx, g, schedule.Schedule{}, ensemble.DefaultOptions())
	assert.ErrorIs(t, err, schedule.ErrEmptySchedule)

	_, err = ensemble.Run(ctx, g, s, ensemble.Options{Replicas: 2, Algorithm: system.Algorithm(7)})
	assert.ErrorIs(t, err, system.ErrUnknownAlgorithm)
}

// TestRun_Cancelled returns the context error.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ensemble.Run(ctx, glass(t), shortSchedule(t), ensemble.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

package search_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zobiamughal378-dev/PathFinder/grid"
	"github.com/zobiamughal378-dev/PathFinder/search"
)

// TestTrace_StreamInvariants checks the snapshot contract every
// strategy must honor: contiguous step indices, one frame per
// expansion, a single terminal frame mirroring the Result.
func TestTrace_StreamInvariants(t *testing.T) {
	for _, tc := range allAlgorithms {
		t.Run(tc.name, func(t *testing.T) {
			g := open5x5(t)
			rec := search.NewRecorder()
			res, err := search.Run(g, tc.algo, append(tc.opts, search.WithRecorder(rec))...)
			require.NoError(t, err)
			require.True(t, res.Success)

			steps := rec.Steps()
			require.NotEmpty(t, steps)
			require.Equal(t, res.Expanded+1, rec.Len(), "one frame per expansion plus the terminal frame")

			for i, snap := range steps[:len(steps)-1] {
				assert.Equal(t, i+1, snap.StepIndex)
				assert.False(t, snap.Done)
				assert.Contains(t, snap.Explored, snap.Current,
					"the expanded cell belongs to the explored set")
				// deepening restarts its explored set every round, so
				// monotonic growth holds only within a single pass
				if i > 0 && tc.algo != search.IDDFS {
					assert.GreaterOrEqual(t, len(snap.Explored), len(steps[i-1].Explored))
				}
			}

			last, ok := rec.Last()
			require.True(t, ok)
			assert.True(t, last.Done)
			assert.True(t, last.Found)
			assert.Equal(t, res.Path, last.Path)
			assert.Equal(t, res.Expanded, last.StepIndex, "terminal frame repeats the last step index")
		})
	}
}

// TestTrace_FailureTerminalFrame: an exhausted run still ends with a
// Done frame carrying the final frontier/explored state and no path.
func TestTrace_FailureTerminalFrame(t *testing.T) {
	rec := search.NewRecorder()
	res, err := search.Run(enclosed5x5(t), search.BFS, search.WithRecorder(rec))
	require.NoError(t, err)
	require.False(t, res.Success)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.True(t, last.Done)
	assert.False(t, last.Found)
	assert.Empty(t, last.Path)
	assert.Empty(t, last.Frontier, "exhaustion means the frontier drained")
	assert.Len(t, last.Explored, res.Expanded)
}

// TestTrace_ZeroProbabilityMatchesDisabled: enabling injection with
// probability 0 yields a bit-for-bit identical snapshot stream.
func TestTrace_ZeroProbabilityMatchesDisabled(t *testing.T) {
	plain := search.NewRecorder()
	_, err := search.Run(open5x5(t), search.BFS, search.WithRecorder(plain))
	require.NoError(t, err)

	inert := search.NewRecorder()
	_, err = search.Run(open5x5(t), search.BFS,
		search.WithRecorder(inert),
		search.WithDynamicObstacles(0))
	require.NoError(t, err)

	assert.Equal(t, plain.Steps(), inert.Steps())
}

// TestTrace_InjectionRespectsExclusions: with injection firing every
// step, no frame ever blocks the start, the target, or the cell being
// expanded, and a blocked cell is never expanded afterwards.
func TestTrace_InjectionRespectsExclusions(t *testing.T) {
	g, err := grid.New(8, 8, nil, grid.Cell{}, grid.Cell{Row: 7, Col: 7})
	require.NoError(t, err)

	rec := search.NewRecorder()
	res, err := search.Run(g, search.BFS,
		search.WithRecorder(rec),
		search.WithDynamicObstacles(1),
		search.WithRandSource(rand.New(rand.NewSource(42))))
	require.NoError(t, err)
	assert.Contains(t,
		[]search.TerminationReason{search.TerminatedFound, search.TerminatedFrontierExhausted},
		res.Reason)

	blocked := make(map[grid.Cell]bool)
	sawInjection := false
	for _, snap := range rec.Steps() {
		if snap.Done {
			continue
		}
		assert.False(t, blocked[snap.Current], "expanded a previously blocked cell")
		if snap.NewlyBlocked == nil {
			continue
		}
		sawInjection = true
		c := *snap.NewlyBlocked
		assert.NotEqual(t, g.Start(), c)
		assert.NotEqual(t, g.Target(), c)
		assert.NotEqual(t, snap.Current, c)
		assert.Equal(t, grid.DynamicObstacle, g.StatusAt(c))
		blocked[c] = true
	}
	assert.True(t, sawInjection, "probability 1 must inject while free cells remain")
}

// TestTrace_InjectionOncePerExpansion: the injector rolls only when a
// cell is actually expanded, so every obstacle placed in the grid is
// reported on exactly one expansion frame — dequeues skipped as
// blocked or already explored must not consume (or hide) a roll.
func TestTrace_InjectionOncePerExpansion(t *testing.T) {
	g, err := grid.New(8, 8, nil, grid.Cell{}, grid.Cell{Row: 7, Col: 7})
	require.NoError(t, err)

	rec := search.NewRecorder()
	res, err := search.Run(g, search.BFS,
		search.WithRecorder(rec),
		search.WithDynamicObstacles(1),
		search.WithRandSource(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	reported := 0
	for _, snap := range rec.Steps() {
		if !snap.Done && snap.NewlyBlocked != nil {
			reported++
		}
	}
	placed := 0
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.StatusAt(grid.Cell{Row: r, Col: c}) == grid.DynamicObstacle {
				placed++
			}
		}
	}
	assert.Equal(t, placed, reported, "every placed obstacle appears on a frame")
	assert.LessOrEqual(t, reported, res.Expanded, "at most one roll per expansion")
}

// TestTrace_DynamicRunsReproducible: the same seed replays the same
// obstacle sequence and therefore the same outcome.
func TestTrace_DynamicRunsReproducible(t *testing.T) {
	run := func() (search.Result, *search.Recorder) {
		g, err := grid.New(6, 6, nil, grid.Cell{}, grid.Cell{Row: 5, Col: 5})
		require.NoError(t, err)
		rec := search.NewRecorder()
		res, err := search.Run(g, search.BFS,
			search.WithRecorder(rec),
			search.WithDynamicObstacles(0.4),
			search.WithRandSource(rand.New(rand.NewSource(7))))
		require.NoError(t, err)
		return res, rec
	}

	firstRes, firstRec := run()
	secondRes, secondRec := run()
	assert.Equal(t, firstRes, secondRes)
	assert.Equal(t, firstRec.Steps(), secondRec.Steps())
}

// TestRecorder_Empty: Last on a fresh Recorder reports no snapshot.
func TestRecorder_Empty(t *testing.T) {
	rec := search.NewRecorder()
	assert.Zero(t, rec.Len())
	_, ok := rec.Last()
	assert.False(t, ok)
}

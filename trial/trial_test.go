package trial

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/alter"
	"github.com/evoengine/evo/engine"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/problems"
	"github.com/evoengine/evo/selector"
	"github.com/evoengine/evo/species"
)

func newMinSumEngine(t *testing.T, seed int64) *engine.Engine[[]int64] {
	opts := engine.Options[[]int64]{
		PopulationSize:   20,
		Objective:        problems.MinSumObjective(),
		Problem:          problems.MinSum(10, 100),
		Diversity:        species.HammingDistance{},
		RandomSeed:       seed,
		HasRandomSeed:    true,
		SurvivorSelector: selector.Tournament{K: 3},
		Alterers: alter.NewPipeline(
			alter.Step{Alterer: alter.NewUniformMutation(genome.Int), Rate: alter.Fixed(0.1)},
		),
	}
	require.NoError(t, opts.Validate())
	e, err := engine.New(opts)
	require.NoError(t, err)
	return e
}

func TestRunCollectsEveryGeneration(t *testing.T) {
	e := newMinSumEngine(t, 1)
	tr := Run(context.Background(), 0, e, engine.GenerationsLimit(5))

	assert.Equal(t, 0, tr.Index)
	assert.Len(t, tr.Generations, 5)
	assert.False(t, tr.Failed())
}

func TestTrialBestPicksObjectiveWinner(t *testing.T) {
	e := newMinSumEngine(t, 2)
	tr := Run(context.Background(), 0, e, engine.GenerationsLimit(5))

	best, ok := tr.Best(problems.MinSumObjective())
	require.True(t, ok)
	for _, g := range tr.Generations {
		if len(g.Score) > 0 {
			assert.True(t, g.Score[0] >= best.Score[0])
		}
	}
}

func TestTrialAvgEpochDurationNonNegative(t *testing.T) {
	e := newMinSumEngine(t, 3)
	tr := Run(context.Background(), 0, e, engine.GenerationsLimit(3))
	assert.GreaterOrEqual(t, tr.AvgEpochDuration(), time.Duration(0))
}

func TestTrialBestScoresLengthMatchesGenerations(t *testing.T) {
	e := newMinSumEngine(t, 4)
	tr := Run(context.Background(), 0, e, engine.GenerationsLimit(4))
	assert.Len(t, tr.BestScores(), 4)
}

func TestRunBatchCollectsAllTrials(t *testing.T) {
	n := 0
	batch, err := RunBatch(context.Background(), 3, func() (*engine.Engine[[]int64], error) {
		n++
		return newMinSumEngine(t, int64(n)), nil
	}, engine.GenerationsLimit(3))
	require.NoError(t, err)
	require.Len(t, batch.Trials, 3)

	best, idx, ok := batch.Best(problems.MinSumObjective())
	require.True(t, ok)
	assert.GreaterOrEqual(t, idx, 0)
	assert.NotNil(t, best.Score)
}

func TestBatchSolvedCountThreshold(t *testing.T) {
	batch, err := RunBatch(context.Background(), 2, func() (*engine.Engine[[]int64], error) {
		return newMinSumEngine(t, 7), nil
	}, engine.GenerationsLimit(3))
	require.NoError(t, err)

	// Every generation's MinSum score is >= 0, so a very negative
	// threshold is trivially "solved" by every trial.
	assert.Equal(t, 2, batch.SolvedCount(-1))
}

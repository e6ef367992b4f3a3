package eval

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/executor"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
	"github.com/evoengine/evo/problems"
)

func TestEvaluateScoresOnlyUnscoredMembers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	problem := problems.MinSum(4, 10)
	obj := problems.MinSumObjective()

	members := make([]*phenotype.Phenotype, 3)
	for i := range members {
		members[i] = phenotype.New(problem.Encode(rng), 0)
	}
	members[0].Score = objective.Score{5}
	pop := phenotype.NewPopulation(members)

	metrics, err := Evaluate[[]int64](pop, problem, obj, executor.Serial{})
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.Skipped)
	assert.Equal(t, 2, metrics.Evaluated)
	for _, m := range pop.Members {
		assert.True(t, m.HasScore())
	}
	assert.Equal(t, objective.Score{5}, members[0].Score) // untouched
}

func TestEvaluateRejectsWrongArityScore(t *testing.T) {
	problem := problemStub{}
	pop := phenotype.NewPopulation([]*phenotype.Phenotype{
		phenotype.New(genome.NewGenotype(genome.NewLinearChromosome(genome.Int, nil)), 0),
	})

	_, err := Evaluate[int](pop, problem, objective.Single(objective.Minimize), executor.Serial{})
	require.Error(t, err)
}

// problemStub returns a fixed, wrong-arity score so Evaluate's arity guard
// is exercised without a real codec.
type problemStub struct{}

func (problemStub) Encode(rng *rand.Rand) *genome.Genotype {
	return genome.NewGenotype(genome.NewLinearChromosome(genome.Int, nil))
}
func (problemStub) Decode(g *genome.Genotype) int { return 0 }
func (problemStub) Evaluate(g *genome.Genotype) objective.Score {
	return objective.Score{1, 2}
}

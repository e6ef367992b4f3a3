package replace

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/phenotype"
	"github.com/evoengine/evo/problems"
)

func TestRunReplacesOnlyAgedOrInvalidMembers(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	problem := problems.MinSum(4, 10)

	young := phenotype.New(problem.Encode(rng), 8)
	old := phenotype.New(problem.Encode(rng), 0)
	pop := phenotype.NewPopulation([]*phenotype.Phenotype{young, old})

	m := Run[[]int64](rng, pop, problem, EncodeReplace[[]int64]{}, 10, 3)

	assert.Equal(t, 1, m.ReplacedAge)
	assert.Equal(t, 0, m.ReplacedInvalid)
	assert.Same(t, young, pop.Members[0])
	assert.NotSame(t, old, pop.Members[1])
}

func TestPopulationSampleReplaceClonesAnExistingSurvivor(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	problem := problems.MinSum(4, 10)
	survivor := phenotype.New(problem.Encode(rng), 0)
	pop := phenotype.NewPopulation([]*phenotype.Phenotype{survivor})

	replacement := PopulationSampleReplace[[]int64]{}.Replace(rng, pop, problem, 5)
	require.NotNil(t, replacement)
	assert.True(t, replacement.Genotype.Equals(survivor.Genotype))
	assert.NotEqual(t, survivor.ID, replacement.ID)
	assert.False(t, replacement.HasScore())
}

func TestEliteReplacePicksFromPrecomputedOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	problem := problems.MinSum(4, 10)
	members := []*phenotype.Phenotype{
		phenotype.New(problem.Encode(rng), 0),
		phenotype.New(problem.Encode(rng), 0),
	}
	pop := phenotype.NewPopulation(members)

	strat := &EliteReplace[[]int64]{N: 1, Order: []int{1, 0}}
	replacement := strat.Replace(rng, pop, problem, 5)
	assert.True(t, replacement.Genotype.Equals(members[1].Genotype))
}

func TestEliteReplaceSetOrderRefreshesRanking(t *testing.T) {
	strat := &EliteReplace[[]int64]{N: 2}
	strat.SetOrder([]int{3, 1, 2})
	assert.Equal(t, []int{3, 1, 2}, strat.Order)
}

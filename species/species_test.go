package species

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
)

func intGenotype(values ...int64) *genome.Genotype {
	genes := make([]genome.Gene, len(values))
	for i, v := range values {
		genes[i] = &genome.IntGene{Allele: v, ValueRange: [2]int64{0, 100}, BoundRange: [2]int64{0, 100}}
	}
	return genome.NewGenotype(genome.NewLinearChromosome(genome.Int, genes))
}

func TestHammingDistanceCountsDifferingPositions(t *testing.T) {
	a := intGenotype(1, 2, 3)
	b := intGenotype(1, 9, 3)
	assert.Equal(t, 1.0, HammingDistance{}.Distance(a, b))

	c := intGenotype(1, 2, 3)
	assert.Equal(t, 0.0, HammingDistance{}.Distance(a, c))
}

func TestUpdatePartitionsByThresholdAndFoundsNewSpecies(t *testing.T) {
	members := []*phenotype.Phenotype{
		phenotype.New(intGenotype(1, 1, 1), 0),
		phenotype.New(intGenotype(1, 1, 1), 0),
		phenotype.New(intGenotype(9, 9, 9), 0),
	}
	pop := phenotype.NewPopulation(members)
	set := NewSet()

	obj := objective.Single(objective.Maximize)
	stagnant := set.Update(pop, HammingDistance{}, 0.5, obj, 20)

	assert.Empty(t, stagnant)
	require.Len(t, set.All(), 2)
}

func TestUpdateMarksStagnantSpeciesPastMaxAge(t *testing.T) {
	members := []*phenotype.Phenotype{phenotype.New(intGenotype(1, 1, 1), 0)}
	members[0].Score = objective.Score{1}
	pop := phenotype.NewPopulation(members)
	set := NewSet()
	obj := objective.Single(objective.Maximize)

	set.Update(pop, HammingDistance{}, 0.5, obj, 0)
	stagnant := set.Update(pop, HammingDistance{}, 0.5, obj, 0)

	assert.Equal(t, []int{0}, stagnant)
	assert.Empty(t, set.All())
}

func TestAdjustedFitnessDividesByClusterSize(t *testing.T) {
	members := []*phenotype.Phenotype{
		phenotype.New(intGenotype(1, 1), 0),
		phenotype.New(intGenotype(1, 1), 0),
	}
	members[0].Score = objective.Score{10}
	members[1].Score = objective.Score{20}
	pop := phenotype.NewPopulation(members)
	set := NewSet()
	set.Update(pop, HammingDistance{}, 0.5, objective.Single(objective.Maximize), 20)

	adjusted := set.AdjustedFitness(pop)
	assert.Equal(t, objective.Score{5}, adjusted[0])
	assert.Equal(t, objective.Score{10}, adjusted[1])
}

func TestRestoreRebuildsSetWithoutReplayingUpdate(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_ = rng
	mascot := phenotype.New(intGenotype(1, 2), 0)
	restored := Restore(5, []*Species{{ID: 3, Mascot: mascot, Members: []int{0}}})

	assert.Equal(t, 5, restored.NextID())
	require.Len(t, restored.All(), 1)
	assert.Equal(t, 3, restored.All()[0].ID)
}

package flat

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/front"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
	"github.com/evoengine/evo/species"
)

func floatGenotype(rng *rand.Rand) *genome.Genotype {
	genes := make([]genome.Gene, 3)
	for i := range genes {
		genes[i] = genome.NewFloatGene(rng, [2]float64{0, 1}, [2]float64{0, 1})
	}
	return genome.NewGenotype(genome.NewLinearChromosome(genome.Float, genes))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	members := []*phenotype.Phenotype{phenotype.New(floatGenotype(rng), 0)}
	members[0].Score = objective.Score{0.5}
	pop := phenotype.NewPopulation(members)

	var buf bytes.Buffer
	require.NoError(t, Save(&buf, 9, 4, pop, species.NewSet(), front.New(objective.Single(objective.Maximize), 1, 10), nil))

	prototype := floatGenotype(rand.New(rand.NewSource(22)))
	cp, err := Load(&buf, prototype)
	require.NoError(t, err)

	assert.Equal(t, int64(9), cp.Seed)
	assert.Equal(t, 4, cp.GenerationIndex)
	require.Equal(t, 1, cp.Population.Len())
	assert.True(t, cp.Population.Members[0].Genotype.Equals(members[0].Genotype))
	assert.Equal(t, objective.Score{0.5}, cp.Population.Members[0].Score)
}

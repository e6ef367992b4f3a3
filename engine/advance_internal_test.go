package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
)

func simplePhenotype(score float64) *phenotype.Phenotype {
	rng := rand.New(rand.NewSource(1))
	gene := genome.NewIntGene(rng, [2]int64{0, 1}, [2]int64{0, 1})
	gt := genome.NewGenotype(genome.NewLinearChromosome(genome.Int, []genome.Gene{gene}))
	ph := phenotype.New(gt, 0)
	ph.Score = objective.Score{score}
	return ph
}

func TestApplyAdjustedScoresOverwritesThenRestoresRawScores(t *testing.T) {
	pop := phenotype.NewPopulation([]*phenotype.Phenotype{simplePhenotype(10), simplePhenotype(20)})

	restore := applyAdjustedScores(pop, map[int]objective.Score{0: {5}, 1: {5}})
	assert.Equal(t, objective.Score{5}, pop.Members[0].Score)
	assert.Equal(t, objective.Score{5}, pop.Members[1].Score)

	restore()
	assert.Equal(t, objective.Score{10}, pop.Members[0].Score)
	assert.Equal(t, objective.Score{20}, pop.Members[1].Score)
}

func TestApplyAdjustedScoresNoOpOnEmptyMap(t *testing.T) {
	pop := phenotype.NewPopulation([]*phenotype.Phenotype{simplePhenotype(10)})
	restore := applyAdjustedScores(pop, nil)
	assert.Equal(t, objective.Score{10}, pop.Members[0].Score)
	restore()
	assert.Equal(t, objective.Score{10}, pop.Members[0].Score)
}

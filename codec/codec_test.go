package codec

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

type intVectorCodec struct{ length int }

func (c intVectorCodec) Encode(rng *rand.Rand) *genome.Genotype {
	genes := make([]genome.Gene, c.length)
	for i := range genes {
		genes[i] = genome.NewIntGene(rng, [2]int64{0, 9}, [2]int64{0, 9})
	}
	return genome.NewGenotype(genome.NewLinearChromosome(genome.Int, genes))
}

func (c intVectorCodec) Decode(g *genome.Genotype) []int64 {
	ch := g.Chromosomes[0]
	out := make([]int64, ch.Len())
	for i := range out {
		out[i] = ch.Gene(i).(*genome.IntGene).Allele
	}
	return out
}

func TestFromCodecEvaluateAppliesFitnessToDecodedValue(t *testing.T) {
	c := intVectorCodec{length: 3}
	problem := FromCodec[[]int64](c, func(v []int64) objective.Score {
		sum := int64(0)
		for _, x := range v {
			sum += x
		}
		return objective.Score{float64(sum)}
	})

	rng := rand.New(rand.NewSource(1))
	g := problem.Encode(rng)
	decoded := problem.Decode(g)

	var want int64
	for _, x := range decoded {
		want += x
	}
	assert.Equal(t, objective.Score{float64(want)}, problem.Evaluate(g))
}

func TestFromBatchCodecEvaluateBatchMatchesPerItemEvaluate(t *testing.T) {
	c := intVectorCodec{length: 2}
	problem := FromBatchCodec[[]int64](c, func(values [][]int64) []objective.Score {
		out := make([]objective.Score, len(values))
		for i, v := range values {
			out[i] = objective.Score{float64(v[0] + v[1])}
		}
		return out
	})

	rng := rand.New(rand.NewSource(2))
	g1 := problem.Encode(rng)
	g2 := problem.Encode(rng)

	batchScores := problem.EvaluateBatch([]*genome.Genotype{g1, g2})
	require.Len(t, batchScores, 2)
	assert.Equal(t, problem.Evaluate(g1), batchScores[0])
	assert.Equal(t, problem.Evaluate(g2), batchScores[1])
}

package problems

import (
	"math/rand"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

// MinSum builds the int-vector sum-minimization benchmark: length genes in
// [0, bound] inclusive, fitness is their sum, objective is minimize — the simplest
// possible sanity check that selection pressure actually pushes the
// population downhill.
func MinSum(length int, bound int64) codec.Problem[[]int64] {
	vc := vectorCodec[int64]{
		length:  length,
		variant: genome.Int,
		newGene: func(rng *rand.Rand) genome.Gene {
			return genome.NewIntGene(rng, [2]int64{0, bound}, [2]int64{0, bound})
		},
		element: func(g genome.Gene) int64 { return g.(*genome.IntGene).Allele },
	}
	return minSumCodec{vc}
}

type minSumCodec struct{ vectorCodec[int64] }

func (c minSumCodec) Evaluate(g *genome.Genotype) objective.Score {
	var sum int64
	ch := g.Chromosomes[0]
	for i := 0; i < ch.Len(); i++ {
		sum += ch.Gene(i).(*genome.IntGene).Allele
	}
	return objective.Score{float64(sum)}
}

// MinSumObjective is Single(Minimize).
func MinSumObjective() objective.Objective { return scalarObjective(false) }

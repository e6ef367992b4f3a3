package problems

import (
	"math/rand"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

// StringMatch builds a Problem whose Codec is a fixed-length CharGene
// vector and whose fitness is the count of positions matching target, the
// char-matching benchmark every GA tutorial opens with.
func StringMatch(target string) codec.Problem[string] {
	runes := []rune(target)
	vc := vectorCodec[rune]{
		length:  len(runes),
		variant: genome.Char,
		newGene: func(rng *rand.Rand) genome.Gene { return genome.NewCharGene(rng, nil) },
		element: func(g genome.Gene) rune { return g.(*genome.CharGene).Allele },
	}
	return stringMatchCodec{vectorCodec: vc, target: runes}
}

type stringMatchCodec struct {
	vectorCodec[rune]
	target []rune
}

func (c stringMatchCodec) Decode(g *genome.Genotype) string {
	return string(c.vectorCodec.Decode(g))
}

func (c stringMatchCodec) Evaluate(g *genome.Genotype) objective.Score {
	ch := g.Chromosomes[0]
	matches := 0
	for i := 0; i < ch.Len() && i < len(c.target); i++ {
		if ch.Gene(i).(*genome.CharGene).Allele == c.target[i] {
			matches++
		}
	}
	return objective.Score{float64(matches)}
}

// StringMatchObjective is Single(Maximize): more matching positions is
// better.
func StringMatchObjective() objective.Objective { return scalarObjective(true) }

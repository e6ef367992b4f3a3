// Package problems collects self-contained, single-file Problem
// implementations exercising every Gene variant and Objective shape the
// engine supports: string matching, numeric optimization, and a
// multi-objective benchmark.
package problems

import (
	"math/rand"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

// vectorCodec decodes a fixed-length LinearChromosome of a single variant
// into a caller-supplied slice type via an element accessor, shared by
// every scalar-vector Problem in this package.
type vectorCodec[T any] struct {
	length  int
	variant genome.Variant
	newGene func(rng *rand.Rand) genome.Gene
	element func(g genome.Gene) T
}

func (c vectorCodec[T]) Encode(rng *rand.Rand) *genome.Genotype {
	genes := make([]genome.Gene, c.length)
	for i := range genes {
		genes[i] = c.newGene(rng)
	}
	return genome.NewGenotype(genome.NewLinearChromosome(c.variant, genes))
}

func (c vectorCodec[T]) Decode(g *genome.Genotype) []T {
	ch := g.Chromosomes[0]
	out := make([]T, ch.Len())
	for i := range out {
		out[i] = c.element(ch.Gene(i))
	}
	return out
}

// scalarObjective is the Single(Maximize) or Single(Minimize) shorthand
// every scenario in this package but DTLZ2 needs.
func scalarObjective(maximize bool) objective.Objective {
	if maximize {
		return objective.Single(objective.Maximize)
	}
	return objective.Single(objective.Minimize)
}

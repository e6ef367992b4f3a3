package alter

import (
	"math/rand"

	"github.com/evoengine/evo/genome"
)

// GraphCrossover: structural crossover for graph chromosomes. The child
// inherits structure from the fitter parent; for every node, with
// probability parentRate, its allele is replaced by the corresponding-id
// node's allele from the less-fit parent, provided the arities match;
// otherwise the fitter parent's allele is kept.
type GraphCrossover struct {
	baseAlterer
	ParentRate float64
}

func NewGraphCrossover(parentRate float64) *GraphCrossover {
	return &GraphCrossover{baseAlterer{[]genome.Variant{genome.Node}}, parentRate}
}

// Cross satisfies the plain Crossover interface for configuration-time
// capability checks; fitness-blind callers get CrossFitnessAware with a
// treated as the fitter parent.
func (x *GraphCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	return x.CrossFitnessAware(rng, a, b, true, rate)
}

func (x *GraphCrossover) CrossFitnessAware(rng *rand.Rand, a, b genome.Chromosome, aFitter bool, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	ga, okA := a.(*genome.GraphChromosome)
	gb, okB := b.(*genome.GraphChromosome)
	if !okA || !okB || rng.Float64() >= rate {
		return a, b, false
	}
	fitter, lessFit := ga, gb
	if !aFitter {
		fitter, lessFit = gb, ga
	}
	child := fitter.Clone().(*genome.GraphChromosome)
	changed := false
	n := child.Len()
	if lessFit.Len() < n {
		n = lessFit.Len()
	}
	for i := 0; i < n; i++ {
		if rng.Float64() >= x.ParentRate {
			continue
		}
		fitterOp := child.Node(i).Gene.Op()
		lessOp := lessFit.Node(i).Gene.Op()
		if fitterOp.Arity != lessOp.Arity {
			continue
		}
		child.Node(i).Gene.OpIndex = lessFit.Node(i).Gene.OpIndex
		changed = true
	}
	if aFitter {
		return child, b, changed
	}
	return a, child, changed
}

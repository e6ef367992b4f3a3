package problems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

const rastriginA = 10.0

// Rastrigin builds the classic multimodal minimization benchmark over a
// FloatGene vector of the given dimension, range [-5.12, 5.12] per axis —
// a standard real-parameter continuous-optimization torture test with a
// single global minimum at the origin buried under many local ones.
func Rastrigin(dimensions int) codec.Problem[[]float64] {
	bounds := [2]float64{-5.12, 5.12}
	vc := vectorCodec[float64]{
		length:  dimensions,
		variant: genome.Float,
		newGene: func(rng *rand.Rand) genome.Gene { return genome.NewFloatGene(rng, bounds, bounds) },
		element: func(g genome.Gene) float64 { return g.(*genome.FloatGene).Allele },
	}
	return rastriginCodec{vc}
}

type rastriginCodec struct{ vectorCodec[float64] }

func (c rastriginCodec) Evaluate(g *genome.Genotype) objective.Score {
	return objective.Score{rastriginValue(c.vectorCodec.Decode(g))}
}

func rastriginValue(x []float64) float64 {
	terms := make([]float64, len(x))
	for i, xi := range x {
		terms[i] = xi*xi - rastriginA*math.Cos(2*math.Pi*xi)
	}
	return rastriginA*float64(len(x)) + floats.Sum(terms)
}

// RastriginObjective is Single(Minimize).
func RastriginObjective() objective.Objective { return scalarObjective(false) }

package problems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

// DTLZ2 builds the standard DTLZ2 multi-objective benchmark: variables
// FloatGenes in [0,1], objectives all minimize. Its Pareto-optimal front is
// the positive orthant of the unit sphere (every optimal point has
// sum-of-squared-objectives == 1), which makes front-quality a single
// arithmetic check instead of a geometry library.
func DTLZ2(variables, objectives int) codec.Problem[[]float64] {
	bounds := [2]float64{0, 1}
	vc := vectorCodec[float64]{
		length:  variables,
		variant: genome.Float,
		newGene: func(rng *rand.Rand) genome.Gene { return genome.NewFloatGene(rng, bounds, bounds) },
		element: func(g genome.Gene) float64 { return g.(*genome.FloatGene).Allele },
	}
	return dtlz2Codec{vectorCodec: vc, objectives: objectives}
}

type dtlz2Codec struct {
	vectorCodec[float64]
	objectives int
}

func (c dtlz2Codec) Evaluate(g *genome.Genotype) objective.Score {
	return dtlz2Value(c.vectorCodec.Decode(g), c.objectives)
}

func dtlz2Value(x []float64, m int) objective.Score {
	centered := make([]float64, len(x)-(m-1))
	for i, v := range x[m-1:] {
		centered[i] = v - 0.5
	}
	g := floats.Dot(centered, centered)
	f := make(objective.Score, m)
	for i := 0; i < m; i++ {
		v := 1 + g
		for j := 0; j < m-1-i; j++ {
			v *= math.Cos(x[j] * math.Pi / 2)
		}
		if i > 0 {
			v *= math.Sin(x[m-1-i] * math.Pi / 2)
		}
		f[i] = v
	}
	return f
}

// DTLZ2Objective returns an all-minimize Objective of the given arity.
func DTLZ2Objective(objectives int) objective.Objective {
	dirs := make([]objective.Direction, objectives)
	for i := range dirs {
		dirs[i] = objective.Minimize
	}
	return objective.Multi(dirs...)
}

// SphereRadiusSquared sums the squared components of a Score, the check
// S5 uses to confirm a front member lies on DTLZ2's unit-sphere Pareto
// front.
func SphereRadiusSquared(s objective.Score) float64 {
	return floats.Dot(s, s)
}

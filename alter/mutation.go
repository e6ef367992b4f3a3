package alter

import (
	"math"
	"math/rand"

	"github.com/evoengine/evo/genome"
)

// UniformMutation replaces the gene with a fresh random gene of the same
// shape, per gene, with probability rate.
type UniformMutation struct{ baseAlterer }

func NewUniformMutation(variants ...genome.Variant) *UniformMutation {
	return &UniformMutation{baseAlterer{variants}}
}

func (m *UniformMutation) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	n := c.Len()
	genes := make([]genome.Gene, n)
	changed := false
	for i := 0; i < n; i++ {
		g := c.Gene(i)
		if rng.Float64() < rate {
			g = g.NewInstance(rng)
			changed = true
		}
		genes[i] = g
	}
	if !changed {
		return c, false
	}
	return c.WithGenes(genes), true
}

// perGeneArith applies combine(allele) to each arithmetic gene with
// probability rate, clamping the result.
func perGeneArith(rng *rand.Rand, c genome.Chromosome, rate float64, combine func(rng *rand.Rand, v float64) float64) (genome.Chromosome, bool) {
	n := c.Len()
	genes := make([]genome.Gene, n)
	changed := false
	for i := 0; i < n; i++ {
		g := c.Gene(i)
		if rng.Float64() < rate {
			ag := g.(genome.ArithmeticGene)
			genes[i] = clampArith(g, combine(rng, ag.Float64()))
			changed = true
		} else {
			genes[i] = g
		}
	}
	if !changed {
		return c, false
	}
	return c.WithGenes(genes), true
}

// GaussianMutation: for float genes, add N(0, sigma^2); clamp.
type GaussianMutation struct {
	baseAlterer
	Sigma float64
}

func NewGaussianMutation(sigma float64, variants ...genome.Variant) *GaussianMutation {
	return &GaussianMutation{baseAlterer{variants}, sigma}
}

func (m *GaussianMutation) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	return perGeneArith(rng, c, rate, func(rng *rand.Rand, v float64) float64 {
		return v + rng.NormFloat64()*m.Sigma
	})
}

// JitterMutation: add U(-m, +m); clamp.
type JitterMutation struct {
	baseAlterer
	M float64
}

func NewJitterMutation(m float64, variants ...genome.Variant) *JitterMutation {
	return &JitterMutation{baseAlterer{variants}, m}
}

func (m *JitterMutation) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	return perGeneArith(rng, c, rate, func(rng *rand.Rand, v float64) float64 {
		return v + (rng.Float64()*2-1)*m.M
	})
}

// ArithmeticMutation: pick one of {+,-,x,/} uniformly; combine with a fresh
// random gene's allele; clamp.
type ArithmeticMutation struct{ baseAlterer }

func NewArithmeticMutation(variants ...genome.Variant) *ArithmeticMutation {
	return &ArithmeticMutation{baseAlterer{variants}}
}

func (m *ArithmeticMutation) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	n := c.Len()
	genes := make([]genome.Gene, n)
	changed := false
	for i := 0; i < n; i++ {
		g := c.Gene(i)
		if rng.Float64() < rate {
			ag := g.(genome.ArithmeticGene)
			fresh := g.NewInstance(rng).(genome.ArithmeticGene)
			v := ag.Float64()
			fv := fresh.Float64()
			var result float64
			switch rng.Intn(4) {
			case 0:
				result = v + fv
			case 1:
				result = v - fv
			case 2:
				result = v * fv
			default:
				if fv == 0 {
					result = v
				} else {
					result = v / fv
				}
			}
			genes[i] = clampArith(g, result)
			changed = true
		} else {
			genes[i] = g
		}
	}
	if !changed {
		return c, false
	}
	return c.WithGenes(genes), true
}

// SwapMutation: with probability rate per chromosome, swap two random
// positions (never the same index twice).
type SwapMutation struct{ baseAlterer }

func NewSwapMutation(variants ...genome.Variant) *SwapMutation {
	return &SwapMutation{baseAlterer{variants}}
}

func (m *SwapMutation) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	if rng.Float64() >= rate || c.Len() < 2 {
		return c, false
	}
	n := c.Len()
	genes := make([]genome.Gene, n)
	for i := 0; i < n; i++ {
		genes[i] = c.Gene(i)
	}
	i := rng.Intn(n)
	j := rng.Intn(n - 1)
	if j >= i {
		j++
	}
	genes[i], genes[j] = genes[j], genes[i]
	return c.WithGenes(genes), true
}

// ScrambleMutation: pick a contiguous segment, randomly permute it.
type ScrambleMutation struct{ baseAlterer }

func NewScrambleMutation(variants ...genome.Variant) *ScrambleMutation {
	return &ScrambleMutation{baseAlterer{variants}}
}

func (m *ScrambleMutation) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	if rng.Float64() >= rate || c.Len() < 2 {
		return c, false
	}
	n := c.Len()
	genes := make([]genome.Gene, n)
	for i := 0; i < n; i++ {
		genes[i] = c.Gene(i)
	}
	start, end := segment(rng, n)
	rng.Shuffle(end-start, func(i, j int) {
		genes[start+i], genes[start+j] = genes[start+j], genes[start+i]
	})
	return c.WithGenes(genes), true
}

// InvertMutation: pick a contiguous segment, reverse it.
type InvertMutation struct{ baseAlterer }

func NewInvertMutation(variants ...genome.Variant) *InvertMutation {
	return &InvertMutation{baseAlterer{variants}}
}

func (m *InvertMutation) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	if rng.Float64() >= rate || c.Len() < 2 {
		return c, false
	}
	n := c.Len()
	genes := make([]genome.Gene, n)
	for i := 0; i < n; i++ {
		genes[i] = c.Gene(i)
	}
	start, end := segment(rng, n)
	for i, j := start, end-1; i < j; i, j = i+1, j-1 {
		genes[i], genes[j] = genes[j], genes[i]
	}
	return c.WithGenes(genes), true
}

func segment(rng *rand.Rand, n int) (start, end int) {
	start = rng.Intn(n)
	length := 1 + rng.Intn(n-start)
	return start, start + length
}

// PolynomialMutation: bounded polynomial mutation with shape parameter eta.
type PolynomialMutation struct {
	baseAlterer
	Eta float64
}

func NewPolynomialMutation(eta float64, variants ...genome.Variant) *PolynomialMutation {
	return &PolynomialMutation{baseAlterer{variants}, eta}
}

func (m *PolynomialMutation) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	return perGeneArith(rng, c, rate, func(rng *rand.Rand, v float64) float64 {
		u := rng.Float64()
		exp := 1.0 / (m.Eta + 1.0)
		var delta float64
		if u < 0.5 {
			delta = math.Pow(2*u, exp) - 1
		} else {
			delta = 1 - math.Pow(2*(1-u), exp)
		}
		return v + delta
	})
}

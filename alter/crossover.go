package alter

import (
	"math"
	"math/rand"

	"github.com/evoengine/evo/genome"
)

func clampArith(g genome.Gene, v float64) genome.Gene {
	ag := g.(genome.ArithmeticGene)
	return ag.WithFloat64(v)
}

// UniformCrossover: per position, with probability rate, swap the two
// alleles.
type UniformCrossover struct{ baseAlterer }

func NewUniformCrossover(variants ...genome.Variant) *UniformCrossover {
	return &UniformCrossover{baseAlterer{variants}}
}

func (x *UniformCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	n := a.Len()
	ga := make([]genome.Gene, n)
	gb := make([]genome.Gene, n)
	changed := false
	for i := 0; i < n; i++ {
		ga[i], gb[i] = a.Gene(i), b.Gene(i)
		if rng.Float64() < rate {
			ga[i], gb[i] = gb[i], ga[i]
			changed = true
		}
	}
	if !changed {
		return a, b, false
	}
	return a.WithGenes(ga), b.WithGenes(gb), true
}

// MultiPointCrossover: with probability rate, pick N distinct cut points;
// segments alternate between parents.
type MultiPointCrossover struct {
	baseAlterer
	N int
}

func NewMultiPointCrossover(n int, variants ...genome.Variant) *MultiPointCrossover {
	return &MultiPointCrossover{baseAlterer{variants}, n}
}

func (x *MultiPointCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	if rng.Float64() >= rate {
		return a, b, false
	}
	n := a.Len()
	k := x.N
	if k >= n {
		k = n - 1
	}
	if k < 1 {
		return a, b, false
	}
	cuts := distinctSortedInts(rng, k, n)

	ga := make([]genome.Gene, n)
	gb := make([]genome.Gene, n)
	fromA := true
	cutIdx := 0
	for i := 0; i < n; i++ {
		if cutIdx < len(cuts) && i == cuts[cutIdx] {
			fromA = !fromA
			cutIdx++
		}
		if fromA {
			ga[i], gb[i] = a.Gene(i), b.Gene(i)
		} else {
			ga[i], gb[i] = b.Gene(i), a.Gene(i)
		}
	}
	return a.WithGenes(ga), b.WithGenes(gb), true
}

func distinctSortedInts(rng *rand.Rand, k, n int) []int {
	seen := map[int]bool{}
	out := make([]int, 0, k)
	for len(out) < k {
		v := 1 + rng.Intn(n-1)
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// PMXCrossover: partially-mapped crossover for Permutation chromosomes;
// with probability rate, pick two cut points, copy parent2's middle segment
// into the child, fill remaining positions via the position-map from the
// segment to avoid duplicates.
type PMXCrossover struct{ baseAlterer }

func NewPMXCrossover() *PMXCrossover {
	return &PMXCrossover{baseAlterer{[]genome.Variant{genome.Permutation}}}
}

func (x *PMXCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	if rng.Float64() >= rate {
		return a, b, false
	}
	n := a.Len()
	if n < 2 {
		return a, b, false
	}
	c1, c2 := rng.Intn(n), rng.Intn(n)
	if c1 > c2 {
		c1, c2 = c2, c1
	}
	child1 := pmxChild(a, b, c1, c2)
	child2 := pmxChild(b, a, c1, c2)
	return a.WithGenes(child1), b.WithGenes(child2), true
}

// pmxChild builds one child: primary's alleles outside [c1,c2], donor's
// alleles inside [c1,c2], remaining slots resolved via the donor-to-primary
// position map so every allele appears exactly once.
func pmxChild(primary, donor genome.Chromosome, c1, c2 int) []genome.Gene {
	n := primary.Len()
	child := make([]genome.Gene, n)
	present := map[int]bool{}
	for i := c1; i <= c2; i++ {
		child[i] = donor.Gene(i).Clone()
		present[child[i].(*genome.PermutationGene).Index] = true
	}
	// map from donor index value -> primary index value for segment positions
	valueAt := func(c genome.Chromosome, i int) int { return c.Gene(i).(*genome.PermutationGene).Index }
	for i := 0; i < n; i++ {
		if i >= c1 && i <= c2 {
			continue
		}
		v := valueAt(primary, i)
		for present[v] {
			// find position in donor segment holding v, then take primary's
			// value at that same position (the PMX position map)
			pos := -1
			for j := c1; j <= c2; j++ {
				if valueAt(donor, j) == v {
					pos = j
					break
				}
			}
			if pos == -1 {
				break
			}
			v = valueAt(primary, pos)
		}
		child[i] = &genome.PermutationGene{Index: v, Table: primary.Gene(i).(*genome.PermutationGene).Table}
		present[v] = true
	}
	return child
}

// arithmeticCross applies a per-position combiner under probability rate to
// every position of an arithmetic chromosome (Float/Int), used by
// Blend/Intermediate/Mean/SBX.
func arithmeticCross(rng *rand.Rand, a, b genome.Chromosome, rate float64, combine func(rng *rand.Rand, av, bv float64) (float64, float64)) (genome.Chromosome, genome.Chromosome, bool) {
	n := a.Len()
	ga := make([]genome.Gene, n)
	gb := make([]genome.Gene, n)
	changed := false
	for i := 0; i < n; i++ {
		ga[i], gb[i] = a.Gene(i), b.Gene(i)
		if rng.Float64() < rate {
			av := ga[i].(genome.ArithmeticGene).Float64()
			bv := gb[i].(genome.ArithmeticGene).Float64()
			nav, nbv := combine(rng, av, bv)
			ga[i] = clampArith(ga[i], nav)
			gb[i] = clampArith(gb[i], nbv)
			changed = true
		}
	}
	if !changed {
		return a, b, false
	}
	return a.WithGenes(ga), b.WithGenes(gb), true
}

// BlendCrossover (BLX-alpha): new allele sampled uniformly from an
// interval extended by alpha beyond [min(av,bv), max(av,bv)].
type BlendCrossover struct {
	baseAlterer
	Alpha float64
}

func NewBlendCrossover(alpha float64, variants ...genome.Variant) *BlendCrossover {
	return &BlendCrossover{baseAlterer{variants}, alpha}
}

func (x *BlendCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	return arithmeticCross(rng, a, b, rate, func(rng *rand.Rand, av, bv float64) (float64, float64) {
		lo, hi := av, bv
		if lo > hi {
			lo, hi = hi, lo
		}
		span := (hi - lo) * x.Alpha
		lo -= span
		hi += span
		return lo + rng.Float64()*(hi-lo), lo + rng.Float64()*(hi-lo)
	})
}

// IntermediateCrossover: child = av + alpha*(bv-av) for a random alpha per
// position.
type IntermediateCrossover struct {
	baseAlterer
	Alpha float64
}

func NewIntermediateCrossover(alpha float64, variants ...genome.Variant) *IntermediateCrossover {
	return &IntermediateCrossover{baseAlterer{variants}, alpha}
}

func (x *IntermediateCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	return arithmeticCross(rng, a, b, rate, func(rng *rand.Rand, av, bv float64) (float64, float64) {
		t := rng.Float64() * x.Alpha
		return av + t*(bv-av), bv + t*(av-bv)
	})
}

// MeanCrossover: child = (av+bv)/2.
type MeanCrossover struct{ baseAlterer }

func NewMeanCrossover(variants ...genome.Variant) *MeanCrossover {
	return &MeanCrossover{baseAlterer{variants}}
}

func (x *MeanCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	return arithmeticCross(rng, a, b, rate, func(rng *rand.Rand, av, bv float64) (float64, float64) {
		m := (av + bv) / 2
		return m, m
	})
}

// SBXCrossover: Simulated Binary Crossover with distribution index eta.
type SBXCrossover struct {
	baseAlterer
	Eta float64
}

func NewSBXCrossover(eta float64, variants ...genome.Variant) *SBXCrossover {
	return &SBXCrossover{baseAlterer{variants}, eta}
}

func (x *SBXCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	return arithmeticCross(rng, a, b, rate, func(rng *rand.Rand, av, bv float64) (float64, float64) {
		u := rng.Float64()
		var beta float64
		exp := 1.0 / (x.Eta + 1.0)
		if u <= 0.5 {
			beta = math.Pow(2*u, exp)
		} else {
			beta = math.Pow(1.0/(2*(1-u)), exp)
		}
		c1 := 0.5 * ((1+beta)*av + (1-beta)*bv)
		c2 := 0.5 * ((1-beta)*av + (1+beta)*bv)
		return c1, c2
	})
}

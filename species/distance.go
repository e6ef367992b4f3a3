// Package species implements speciation/diversity management: compatibility-distance
// clustering of a Population against an interchangeable DistanceMetric
// over arbitrary chromosome variants.
package species

import (
	"math"

	"github.com/evoengine/evo/genome"
)

// DistanceMetric measures compatibility distance between two genotypes of
// the same shape.
type DistanceMetric interface {
	Distance(a, b *genome.Genotype) float64
}

// HammingDistance counts differing discrete-gene positions across all
// chromosomes.
type HammingDistance struct{}

func (HammingDistance) Distance(a, b *genome.Genotype) float64 {
	diff := 0.0
	for ci := range a.Chromosomes {
		ca, cb := a.Chromosomes[ci], b.Chromosomes[ci]
		n := ca.Len()
		if cb.Len() < n {
			n = cb.Len()
		}
		for i := 0; i < n; i++ {
			if !ca.Gene(i).Equals(cb.Gene(i)) {
				diff++
			}
		}
	}
	return diff
}

// EuclideanDistance computes sqrt(sum((ai-bi)^2)) over arithmetic genes.
type EuclideanDistance struct{}

func (EuclideanDistance) Distance(a, b *genome.Genotype) float64 {
	sum := 0.0
	for ci := range a.Chromosomes {
		ca, cb := a.Chromosomes[ci], b.Chromosomes[ci]
		n := ca.Len()
		if cb.Len() < n {
			n = cb.Len()
		}
		for i := 0; i < n; i++ {
			ag, aok := ca.Gene(i).(genome.ArithmeticGene)
			bg, bok := cb.Gene(i).(genome.ArithmeticGene)
			if !aok || !bok {
				continue
			}
			d := ag.Float64() - bg.Float64()
			sum += d * d
		}
	}
	return math.Sqrt(sum)
}

// CosineDistance computes 1 - cosine_similarity over arithmetic genes
// flattened across chromosomes.
type CosineDistance struct{}

func (CosineDistance) Distance(a, b *genome.Genotype) float64 {
	var dot, na, nb float64
	for ci := range a.Chromosomes {
		ca, cb := a.Chromosomes[ci], b.Chromosomes[ci]
		n := ca.Len()
		if cb.Len() < n {
			n = cb.Len()
		}
		for i := 0; i < n; i++ {
			ag, aok := ca.Gene(i).(genome.ArithmeticGene)
			bg, bok := cb.Gene(i).(genome.ArithmeticGene)
			if !aok || !bok {
				continue
			}
			av, bv := ag.Float64(), bg.Float64()
			dot += av * bv
			na += av * av
			nb += bv * bv
		}
	}
	if na == 0 || nb == 0 {
		return 1
	}
	sim := dot / (math.Sqrt(na) * math.Sqrt(nb))
	return 1 - sim
}

// NeatDistance computes a NEAT-style structural-compatibility distance over
// the index-aligned representation of Graph chromosomes: the count of
// unmatched nodes (the length difference) weighted by DisjointCoeff, plus
// the average matching-node difference weighted by WeightDiffCoeff.
// Disjoint and excess nodes are not told apart, and ExcessCoeff does not
// contribute to the result.
type NeatDistance struct {
	DisjointCoeff, ExcessCoeff, WeightDiffCoeff float64
}

func (d NeatDistance) Distance(a, b *genome.Genotype) float64 {
	total := 0.0
	for ci := range a.Chromosomes {
		ga, okA := a.Chromosomes[ci].(*genome.GraphChromosome)
		gb, okB := b.Chromosomes[ci].(*genome.GraphChromosome)
		if !okA || !okB {
			continue
		}
		total += d.distanceGraphs(ga, gb)
	}
	return total
}

func (d NeatDistance) distanceGraphs(a, b *genome.GraphChromosome) float64 {
	na, nb := a.Len(), b.Len()
	minLen := na
	if nb < minLen {
		minLen = nb
	}
	maxLen := na
	if nb > maxLen {
		maxLen = nb
	}
	if maxLen == 0 {
		return 0
	}

	matching, weightDiff := 0, 0.0
	for i := 0; i < minLen; i++ {
		opA, opB := a.Node(i).Gene.Op(), b.Node(i).Gene.Op()
		matching++
		if opA.Const && opB.Const {
			weightDiff += math.Abs(opA.ConstValue - opB.ConstValue)
		} else if opA.Name != opB.Name {
			weightDiff += 1
		}
	}
	disjointOrExcess := float64(maxLen - minLen)
	avgWeightDiff := 0.0
	if matching > 0 {
		avgWeightDiff = weightDiff / float64(matching)
	}

	n := float64(maxLen)
	if n < 20 {
		n = 1 // small-genome normalization, per the classic NEAT formula
	}
	return d.DisjointCoeff*disjointOrExcess/n + d.ExcessCoeff*0 + d.WeightDiffCoeff*avgWeightDiff
}

// Package alter implements the Alterer contracts: Crossover
// (2 parents -> 1 or 2 children) and Mutation (1 parent -> 1 child) over
// chromosomes, applied in declared pipeline order across the sealed Gene
// variant set.
package alter

import (
	"math/rand"

	"github.com/evoengine/evo/genome"
)

// Rate is an interface rather than a bare float64 so future schedule-driven
// rates can be introduced without changing call sites. Only Fixed is
// implemented here; Adaptive is left as an extension point.
type Rate interface {
	At(generation int) float64
}

// Fixed is a constant-rate schedule.
type Fixed float64

func (f Fixed) At(int) float64 { return float64(f) }

// Alterer is the common capability every Crossover/Mutation exposes: which
// gene variants it applies to.
type Alterer interface {
	Variants() []genome.Variant
	Supports(v genome.Variant) bool
}

type baseAlterer struct{ variants []genome.Variant }

func (b baseAlterer) Variants() []genome.Variant { return b.variants }

func (b baseAlterer) Supports(v genome.Variant) bool {
	for _, want := range b.variants {
		if want == v {
			return true
		}
	}
	return false
}

// Crossover consumes two parent chromosomes and produces two (possibly
// unmodified) children, reporting whether either child differs from its
// parent.
type Crossover interface {
	Alterer
	Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (ca, cb genome.Chromosome, changed bool)
}

// Mutation consumes one chromosome and produces one (possibly unmodified)
// child, reporting whether it changed.
type Mutation interface {
	Alterer
	Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool)
}

// Step pairs an Alterer with its configured rate, preserving the pipeline's
// declared application order.
type Step struct {
	Alterer Alterer
	Rate    Rate
}

// Pipeline applies configured Crossover/Mutation steps, in declared order,
// to a selected offspring pair: every Crossover is considered for the pair;
// for every produced child chromosome, every Mutation is considered per
// gene.
type Pipeline struct {
	Steps []Step
}

func NewPipeline(steps ...Step) *Pipeline { return &Pipeline{Steps: steps} }

// FitnessAwareCrossover is an optional extension a Crossover implements
// when it needs to know which parent is fitter, e.g. Graph Crossover's
// child-inherits-structure-from-the-fitter-parent rule.
type FitnessAwareCrossover interface {
	Crossover
	CrossFitnessAware(rng *rand.Rand, a, b genome.Chromosome, aFitter bool, rate float64) (ca, cb genome.Chromosome, changed bool)
}

// Apply runs the pipeline over one pair of parent genotypes, returning two
// child genotypes. aFitter reports whether a's phenotype is objective-better
// than b's (used only by FitnessAwareCrossover implementations; pass either
// value when scores are unavailable, e.g. before the first evaluation).
// Score clearing of the owning Phenotype is the caller's responsibility
// (the engine loop wraps every child genotype in a new, unscored
// Phenotype, whether or not changed is true).
func (p *Pipeline) Apply(rng *rand.Rand, a, b *genome.Genotype, generation int, aFitter bool) (childA, childB *genome.Genotype, changed bool) {
	ca := a.Clone()
	cb := b.Clone()
	for _, step := range p.Steps {
		rate := step.Rate.At(generation)
		switch op := step.Alterer.(type) {
		case FitnessAwareCrossover:
			for ci := range ca.Chromosomes {
				if !op.Supports(ca.Chromosomes[ci].Variant()) {
					continue
				}
				na, nb, ch := op.CrossFitnessAware(rng, ca.Chromosomes[ci], cb.Chromosomes[ci], aFitter, rate)
				if ch {
					ca.Chromosomes[ci] = na
					cb.Chromosomes[ci] = nb
					changed = true
				}
			}
		case Crossover:
			for ci := range ca.Chromosomes {
				if !op.Supports(ca.Chromosomes[ci].Variant()) {
					continue
				}
				na, nb, ch := op.Cross(rng, ca.Chromosomes[ci], cb.Chromosomes[ci], rate)
				if ch {
					ca.Chromosomes[ci] = na
					cb.Chromosomes[ci] = nb
					changed = true
				}
			}
		case Mutation:
			for ci := range ca.Chromosomes {
				if op.Supports(ca.Chromosomes[ci].Variant()) {
					if nc, ch := op.Mutate(rng, ca.Chromosomes[ci], rate); ch {
						ca.Chromosomes[ci] = nc
						changed = true
					}
				}
			}
			for ci := range cb.Chromosomes {
				if op.Supports(cb.Chromosomes[ci].Variant()) {
					if nc, ch := op.Mutate(rng, cb.Chromosomes[ci], rate); ch {
						cb.Chromosomes[ci] = nc
						changed = true
					}
				}
			}
		}
	}
	return ca, cb, changed
}

// Package replace implements the Replacement strategies: substituting
// dead/invalid/over-aged individuals, defaulting to a fresh
// Codec-driven Encode-Replace.
package replace

import (
	"math/rand"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/phenotype"
)

// Metrics counts replacements performed in one epoch.
type Metrics struct {
	ReplacedAge     int
	ReplacedInvalid int
}

// Strategy substitutes a fresh phenotype for one that failed age or
// validity checks.
type Strategy[T any] interface {
	Replace(rng *rand.Rand, pop *phenotype.Population, problem codec.Problem[T], birthGen int) *phenotype.Phenotype
}

// EncodeReplace calls problem.Encode() to produce a brand-new random
// phenotype.
type EncodeReplace[T any] struct{}

func (EncodeReplace[T]) Replace(rng *rand.Rand, pop *phenotype.Population, problem codec.Problem[T], birthGen int) *phenotype.Phenotype {
	g := problem.Encode(rng)
	return phenotype.New(g, birthGen)
}

// PopulationSampleReplace clones a randomly chosen surviving phenotype.
type PopulationSampleReplace[T any] struct{}

func (PopulationSampleReplace[T]) Replace(rng *rand.Rand, pop *phenotype.Population, problem codec.Problem[T], birthGen int) *phenotype.Phenotype {
	idx := rng.Intn(pop.Len())
	return pop.Members[idx].CloneAsNew(birthGen)
}

// RankSetter is implemented by replacement strategies whose Replace reads a
// best-first member ranking that goes stale the moment the population it
// was computed against changes. The engine calls SetOrder with a fresh
// ranking before every Run/stagnant-species replacement pass when the
// configured Strategy implements this.
type RankSetter interface {
	SetOrder(order []int)
}

// EliteReplace clones one of the top N phenotypes. Order is a best-first
// member ranking (ties by lower id); use a pointer value as the configured
// Strategy so the engine's SetOrder calls reach it.
type EliteReplace[T any] struct {
	N     int
	Order []int // best-first member indices, refreshed each epoch via SetOrder
}

func (e *EliteReplace[T]) SetOrder(order []int) { e.Order = order }

func (e *EliteReplace[T]) Replace(rng *rand.Rand, pop *phenotype.Population, problem codec.Problem[T], birthGen int) *phenotype.Phenotype {
	n := e.N
	if n > len(e.Order) {
		n = len(e.Order)
	}
	if n < 1 {
		n = 1
	}
	idx := e.Order[rng.Intn(n)]
	return pop.Members[idx].CloneAsNew(birthGen)
}

// Run applies strategy to every phenotype in pop failing age > maxAge or
// !IsValid, at the given generation, returning replacement metrics.
func Run[T any](rng *rand.Rand, pop *phenotype.Population, problem codec.Problem[T], strategy Strategy[T], generation, maxAge int) Metrics {
	var m Metrics
	for i, ph := range pop.Members {
		ageExceeded := ph.Age(generation) > maxAge
		invalid := !ph.IsValid()
		if !ageExceeded && !invalid {
			continue
		}
		pop.Members[i] = strategy.Replace(rng, pop, problem, generation)
		if ageExceeded {
			m.ReplacedAge++
		}
		if invalid {
			m.ReplacedInvalid++
		}
	}
	return m
}

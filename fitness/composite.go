// Package fitness implements the Composite and Novelty Search fitness
// combinators: ways to build a Problem's scoring function out of smaller
// pieces (weighted terms, behavior-space diversity) instead of one
// monolithic fitness function.
package fitness

import "github.com/evoengine/evo/objective"

// Term is one named, weighted contributor to a Composite score.
type Term[T any] struct {
	Name   string
	Weight float64
	Fn     func(T) float64
}

// Composite scalarizes several single-valued fitness terms into one
// single-objective Score via weighted sum. Every Term.Fn is called once
// per Evaluate; order is the declared Terms order.
type Composite[T any] struct {
	Terms []Term[T]
}

// NewComposite builds a Composite from the given terms.
func NewComposite[T any](terms ...Term[T]) Composite[T] {
	return Composite[T]{Terms: terms}
}

// Evaluate satisfies codec.FitnessFunc[T]; pass c.Evaluate to
// codec.FromCodec to build a Problem.
func (c Composite[T]) Evaluate(v T) objective.Score {
	total := 0.0
	for _, term := range c.Terms {
		total += term.Weight * term.Fn(v)
	}
	return objective.Score{total}
}

// Breakdown returns the unweighted value of every term, in declared
// order, for diagnostics/logging.
func (c Composite[T]) Breakdown(v T) []float64 {
	out := make([]float64, len(c.Terms))
	for i, term := range c.Terms {
		out[i] = term.Fn(v)
	}
	return out
}

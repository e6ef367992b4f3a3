// Package codec defines the Codec/Problem boundary the engine interacts
// through: a random-genotype constructor plus a decode/evaluate pair over
// an arbitrary decoded type T.
package codec

import (
	"math/rand"

	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

// Codec produces valid random genotypes and decodes them into a
// problem-specific type T. Encode must be deterministic given the RNG
// state and must produce a genotype whose every gene is valid.
type Codec[T any] interface {
	Encode(rng *rand.Rand) *genome.Genotype
	Decode(g *genome.Genotype) T
}

// Problem additionally exposes direct fitness evaluation with the contract
// Evaluate(g) == fitness_fn(Decode(g)) semantically; implementations may
// bypass decoding for efficiency.
type Problem[T any] interface {
	Codec[T]
	Evaluate(g *genome.Genotype) objective.Score
}

// FitnessFunc scores a decoded value.
type FitnessFunc[T any] func(T) objective.Score

// FromCodec adapts a Codec plus a fitness function over the decoded type
// into a Problem.
func FromCodec[T any](c Codec[T], fitness FitnessFunc[T]) Problem[T] {
	return &codecProblem[T]{Codec: c, fitness: fitness}
}

type codecProblem[T any] struct {
	Codec[T]
	fitness FitnessFunc[T]
}

func (p *codecProblem[T]) Evaluate(g *genome.Genotype) objective.Score {
	return p.fitness(p.Decode(g))
}

// BatchFitnessFunc scores a slice of decoded values at once, enabling the
// evaluator's batch-mode dispatch path.
type BatchFitnessFunc[T any] func([]T) []objective.Score

// BatchProblem is implemented by Problems that want whole batches handed
// to their fitness function intact instead of one phenotype at a time.
type BatchProblem[T any] interface {
	Problem[T]
	EvaluateBatch(genotypes []*genome.Genotype) []objective.Score
}

// FromBatchCodec adapts a Codec plus a batch fitness function into a
// BatchProblem.
func FromBatchCodec[T any](c Codec[T], fitness BatchFitnessFunc[T]) BatchProblem[T] {
	return &batchCodecProblem[T]{Codec: c, fitness: fitness}
}

type batchCodecProblem[T any] struct {
	Codec[T]
	fitness BatchFitnessFunc[T]
}

func (p *batchCodecProblem[T]) Evaluate(g *genome.Genotype) objective.Score {
	return p.fitness([]T{p.Decode(g)})[0]
}

func (p *batchCodecProblem[T]) EvaluateBatch(genotypes []*genome.Genotype) []objective.Score {
	decoded := make([]T, len(genotypes))
	for i, g := range genotypes {
		decoded[i] = p.Decode(g)
	}
	return p.fitness(decoded)
}

// Package eval implements the batched, executor-dispatched, at-most-once
// Fitness Evaluator over an arbitrary Problem[T].
package eval

import (
	"errors"
	"time"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/evoerr"
	"github.com/evoengine/evo/executor"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
)

// Metrics reports the outcome of one Evaluate call.
type Metrics struct {
	Evaluated int
	Skipped   int
	Elapsed   time.Duration
}

// Evaluate ensures every phenotype whose Score is absent has a Score by the
// time it returns, exactly once per (phenotype, genotype-version), in
// parallel subject to the executor's worker budget.
//
// Batching contract: the set of unevaluated phenotypes is partitioned into
// at most executor.Workers() contiguous batches, one per executor task.
// Within a batch, order is unspecified; result order within a batch aligns
// with input order. If problem implements codec.BatchProblem, each batch is
// handed to EvaluateBatch intact; otherwise every phenotype is evaluated
// individually within its batch.
func Evaluate[T any](pop *phenotype.Population, problem codec.Problem[T], obj objective.Objective, ex executor.Executor) (Metrics, error) {
	start := time.Now()

	var pending []*phenotype.Phenotype
	skipped := 0
	for _, m := range pop.Members {
		if m.HasScore() && len(m.Score) == obj.Arity() {
			skipped++
			continue
		}
		pending = append(pending, m)
	}
	if len(pending) == 0 {
		return Metrics{Skipped: skipped, Elapsed: time.Since(start)}, nil
	}

	workers := ex.Workers()
	if workers < 1 {
		workers = 1
	}
	if workers > len(pending) {
		workers = len(pending)
	}
	batches := splitContiguous(pending, workers)

	batchProblem, isBatch := problem.(codec.BatchProblem[T])

	runErr := ex.ParallelFor(len(batches), func(bi int) error {
		batch := batches[bi]
		var scores []objective.Score
		if isBatch {
			genotypes := make([]*genome.Genotype, len(batch))
			for i, ph := range batch {
				genotypes[i] = ph.Genotype
			}
			scores = batchProblem.EvaluateBatch(genotypes)
			if len(scores) != len(batch) {
				return evoerr.Evaluation(batch[0].ID, "batch fitness returned %d scores for %d inputs", len(scores), len(batch))
			}
		} else {
			scores = make([]objective.Score, len(batch))
			for i, ph := range batch {
				s, err := evaluateOne(ph, problem)
				if err != nil {
					return err
				}
				scores[i] = s
			}
		}
		for i, ph := range batch {
			s := scores[i]
			if !s.Valid(obj) {
				return evoerr.Evaluation(ph.ID, "score arity/NaN violation: %v", s)
			}
			ph.Score = s
		}
		return nil
	})
	var panicErr *executor.PanicError
	if errors.As(runErr, &panicErr) {
		runErr = evoerr.Executor("%v", panicErr)
	}

	return Metrics{
		Evaluated: len(pending),
		Skipped:   skipped,
		Elapsed:   time.Since(start),
	}, runErr
}

func evaluateOne[T any](ph *phenotype.Phenotype, problem codec.Problem[T]) (score objective.Score, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = evoerr.Evaluation(ph.ID, "fitness function panicked: %v", r)
		}
	}()
	score = problem.Evaluate(ph.Genotype)
	return score, nil
}

// splitContiguous partitions items into at most n contiguous, roughly
// equal-sized batches.
func splitContiguous[T any](items []T, n int) [][]T {
	if n < 1 {
		n = 1
	}
	if n > len(items) {
		n = len(items)
	}
	batches := make([][]T, 0, n)
	base := len(items) / n
	rem := len(items) % n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		if size == 0 {
			continue
		}
		batches = append(batches, items[start:start+size])
		start += size
	}
	return batches
}

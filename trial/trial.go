// Package trial implements the Generation-aggregation layer around a
// single engine run and the Batch type that runs several such trials.
package trial

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/evoengine/evo/engine"
	"github.com/evoengine/evo/objective"
)

// Trial collects every Generation an engine run emitted, in order.
type Trial struct {
	Index       int
	StartedAt   time.Time
	Duration    time.Duration
	Generations []engine.Generation
}

// Run drives e to completion under predicate, collecting every emitted
// Generation into the returned Trial. index is the caller's label for
// this trial (its position within a Batch, typically).
func Run[T any](ctx context.Context, index int, e *engine.Engine[T], predicate engine.Predicate) Trial {
	start := time.Now()
	var gens []engine.Generation
	for g := range e.Generations(ctx, predicate) {
		gens = append(gens, g)
	}
	return Trial{Index: index, StartedAt: start, Duration: time.Since(start), Generations: gens}
}

// Failed reports whether the trial ended on a fatal engine error rather
// than the stopping predicate.
func (t Trial) Failed() bool {
	return len(t.Generations) > 0 && t.Generations[len(t.Generations)-1].Failed()
}

// Best returns the objective-best Generation across the whole trial
// (ties broken toward the earlier generation), and whether any
// generation had a score at all.
func (t Trial) Best(obj objective.Objective) (engine.Generation, bool) {
	best := -1
	for i, g := range t.Generations {
		if g.Score == nil {
			continue
		}
		if best == -1 || obj.Better(g.Score, t.Generations[best].Score) {
			best = i
		}
	}
	if best == -1 {
		return engine.Generation{}, false
	}
	return t.Generations[best], true
}

// AvgEpochDuration averages Generation.Elapsed across the trial.
func (t Trial) AvgEpochDuration() time.Duration {
	if len(t.Generations) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range t.Generations {
		total += g.Elapsed
	}
	return total / time.Duration(len(t.Generations))
}

// BestScores returns the single-objective best score of every generation,
// in order, for plotting/export; 0 where a generation carries none (e.g.
// multi-objective runs).
func (t Trial) BestScores() []float64 {
	out := make([]float64, len(t.Generations))
	for i, g := range t.Generations {
		if len(g.Score) > 0 {
			out[i] = g.Score[0]
		}
	}
	return out
}

func (t Trial) String() string {
	return fmt.Sprintf("trial #%d: %s generations, started %s, avg epoch %s",
		t.Index, humanize.Comma(int64(len(t.Generations))), humanize.Time(t.StartedAt), t.AvgEpochDuration())
}

// Batch runs n independent trials of the same engine configuration,
// built fresh for each trial via newEngine (so each gets its own seed
// unless opts pins one).
type Batch[T any] struct {
	Trials []Trial
}

// RunBatch runs n trials sequentially, each produced by newEngine and
// driven to completion under predicate.
func RunBatch[T any](ctx context.Context, n int, newEngine func() (*engine.Engine[T], error), predicate engine.Predicate) (Batch[T], error) {
	b := Batch[T]{Trials: make([]Trial, 0, n)}
	for i := 0; i < n; i++ {
		e, err := newEngine()
		if err != nil {
			return b, err
		}
		b.Trials = append(b.Trials, Run(ctx, i, e, predicate))
	}
	return b, nil
}

// Best returns the best Generation across every trial in the batch, and
// which trial produced it.
func (b Batch[T]) Best(obj objective.Objective) (engine.Generation, int, bool) {
	bestTrial := -1
	var best engine.Generation
	for i, t := range b.Trials {
		g, ok := t.Best(obj)
		if !ok {
			continue
		}
		if bestTrial == -1 || obj.Better(g.Score, best.Score) {
			best, bestTrial = g, i
		}
	}
	return best, bestTrial, bestTrial != -1
}

// SolvedCount reports how many trials reached threshold at any
// generation, for scenarios that define "solved" as a score cutoff.
func (b Batch[T]) SolvedCount(threshold float64) int {
	count := 0
	for _, t := range b.Trials {
		for _, g := range t.Generations {
			if len(g.Score) > 0 && g.Score[0] >= threshold {
				count++
				break
			}
		}
	}
	return count
}

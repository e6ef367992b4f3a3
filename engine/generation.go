package engine

import (
	"time"

	"github.com/evoengine/evo/metrics"
	"github.com/evoengine/evo/objective"
)

// Generation is the value the engine yields once per epoch: the pipeline's
// output snapshot plus the metrics accumulated while producing it.
type Generation struct {
	Index     int
	Ecosystem Ecosystem
	// BestValue holds the decoded member that Population.Best picks, and
	// Score that member's score; both stay nil when no member is scored.
	// For multi-objective runs the pick rests on dominance with ties broken
	// by lower id, so it is one of several incomparable members.
	BestValue interface{}
	Score     objective.Score
	Metrics   *metrics.MetricSet
	Objective objective.Objective
	Elapsed   time.Duration
	// Err carries a fatal engine error (EvaluationError, ExecutorError).
	// When non-nil this is the terminal Generation; the loop stops here.
	Err error
}

// Failed reports whether this Generation carries a fatal engine error.
func (g Generation) Failed() bool { return g.Err != nil }

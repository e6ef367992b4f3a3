package engine

import (
	"math"
	"time"
)

// Predicate decides, given the most recent Generation, whether Run should
// stop. It is evaluated once per epoch, after the Generation is emitted.
type Predicate func(g Generation) bool

// ScoreLimit stops once the single-objective best score reaches or exceeds
// threshold.
func ScoreLimit(threshold float64) Predicate {
	return func(g Generation) bool {
		if len(g.Score) == 0 {
			return false
		}
		return g.Score[0] >= threshold
	}
}

// GenerationsLimit stops once g.Index reaches n-1, i.e. after n generations.
func GenerationsLimit(n int) Predicate {
	return func(g Generation) bool { return g.Index >= n-1 }
}

// SecondsLimit stops once the cumulative elapsed wall time across all
// yielded generations reaches d. Each call accumulates g.Elapsed
// internally, so the returned Predicate is stateful and must not be shared
// across concurrent runs.
func SecondsLimit(d time.Duration) Predicate {
	var total time.Duration
	return func(g Generation) bool {
		total += g.Elapsed
		return total >= d
	}
}

// ConvergenceLimit stops once the best score has moved by less than
// epsilon over the trailing window generations. Stateful like
// SecondsLimit.
func ConvergenceLimit(window int, epsilon float64) Predicate {
	history := make([]float64, 0, window)
	return func(g Generation) bool {
		if len(g.Score) == 0 {
			return false
		}
		history = append(history, g.Score[0])
		if len(history) > window {
			history = history[len(history)-window:]
		}
		if len(history) < window {
			return false
		}
		minV, maxV := history[0], history[0]
		for _, v := range history {
			minV = math.Min(minV, v)
			maxV = math.Max(maxV, v)
		}
		return maxV-minV < epsilon
	}
}

// Or stops as soon as any of the given predicates would stop.
func Or(preds ...Predicate) Predicate {
	return func(g Generation) bool {
		for _, p := range preds {
			if p(g) {
				return true
			}
		}
		return false
	}
}

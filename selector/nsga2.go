package selector

import (
	"math/rand"
	"sort"

	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/pareto"
	"github.com/evoengine/evo/phenotype"
)

// NSGA2 computes non-dominated fronts by Pareto rank, crowding distance
// within each front, and picks fronts in order until adding the next would
// exceed count, then fills the remainder from that front in decreasing
// crowding-distance order.
type NSGA2 struct{}

func (NSGA2) Select(pop *phenotype.Population, obj objective.Objective, count int, rng *rand.Rand) []int {
	n := pop.Len()
	scores := make([]objective.Score, n)
	for i, m := range pop.Members {
		scores[i] = m.Score
	}
	fronts := pareto.FastNonDominatedSort(scores, obj)

	out := make([]int, 0, count)
	for _, front := range fronts {
		if len(out)+len(front) <= count {
			out = append(out, front...)
			if len(out) == count {
				return out
			}
			continue
		}
		remaining := count - len(out)
		dist := pareto.CrowdingDistance(front, scores, obj)
		ordered := append([]int{}, front...)
		sort.Slice(ordered, func(a, b int) bool { return dist[ordered[a]] > dist[ordered[b]] })
		out = append(out, ordered[:remaining]...)
		return out
	}
	// count exceeds population size: after every member, fill the rest
	// with uniformly random indices so the caller still receives `count`
	// indices.
	for len(out) < count {
		out = append(out, rng.Intn(n))
	}
	return out
}

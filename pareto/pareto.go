// Package pareto implements non-dominated sorting and crowding-distance
// computation shared by the NSGA-II selector and the Pareto Front archive.
package pareto

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/evoengine/evo/objective"
)

// FastNonDominatedSort partitions indices [0, len(scores)) into ranked
// fronts F1, F2, ... by Pareto rank.
func FastNonDominatedSort(scores []objective.Score, obj objective.Objective) [][]int {
	n := len(scores)
	dominatedBy := make([][]int, n)
	dominationCount := make([]int, n)
	fronts := [][]int{{}}

	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			if p == q {
				continue
			}
			if obj.Dominates(scores[p], scores[q]) {
				dominatedBy[p] = append(dominatedBy[p], q)
			} else if obj.Dominates(scores[q], scores[p]) {
				dominationCount[p]++
			}
		}
		if dominationCount[p] == 0 {
			fronts[0] = append(fronts[0], p)
		}
	}

	i := 0
	for len(fronts[i]) > 0 {
		var next []int
		for _, p := range fronts[i] {
			for _, q := range dominatedBy[p] {
				dominationCount[q]--
				if dominationCount[q] == 0 {
					next = append(next, q)
				}
			}
		}
		i++
		fronts = append(fronts, next)
	}
	if len(fronts[len(fronts)-1]) == 0 {
		fronts = fronts[:len(fronts)-1]
	}
	return fronts
}

// CrowdingDistance computes, for every index in front, the sum over
// objectives of normalized neighbor gaps; boundary points get +Inf. Returned map is keyed by the index values found in front.
func CrowdingDistance(front []int, scores []objective.Score, obj objective.Objective) map[int]float64 {
	dist := make(map[int]float64, len(front))
	for _, idx := range front {
		dist[idx] = 0
	}
	if len(front) <= 2 {
		for _, idx := range front {
			dist[idx] = math.Inf(1)
		}
		return dist
	}

	m := obj.Arity()
	ordered := append([]int{}, front...)
	column := make([]float64, len(front))
	for k := 0; k < m; k++ {
		for i, idx := range front {
			column[i] = scores[idx][k]
		}
		minV, maxV := floats.Min(column), floats.Max(column)

		sort.Slice(ordered, func(a, b int) bool {
			return scores[ordered[a]][k] < scores[ordered[b]][k]
		})
		dist[ordered[0]] = math.Inf(1)
		dist[ordered[len(ordered)-1]] = math.Inf(1)
		span := maxV - minV
		if span == 0 {
			continue
		}
		for i := 1; i < len(ordered)-1; i++ {
			if math.IsInf(dist[ordered[i]], 1) {
				continue
			}
			gap := scores[ordered[i+1]][k] - scores[ordered[i-1]][k]
			dist[ordered[i]] += gap / span
		}
	}
	return dist
}

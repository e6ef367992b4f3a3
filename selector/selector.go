// Package selector implements the Selector algorithmic contracts:
// Tournament, Roulette, Boltzmann, Rank, Elite, SUS, NSGA-II, all sharing
// a cumulative-weight sampling idiom over objective-aware Score
// comparison.
package selector

import (
	"math"
	"math/rand"
	"sort"

	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
)

// Selector picks count indices (repetition allowed) from pop without
// mutating it.
type Selector interface {
	Select(pop *phenotype.Population, obj objective.Objective, count int, rng *rand.Rand) []int
}

// Tournament repeats count times: draw K indices uniformly, return the
// best by objective-aware comparison; ties broken by lower id.
type Tournament struct{ K int }

func (t Tournament) Select(pop *phenotype.Population, obj objective.Objective, count int, rng *rand.Rand) []int {
	n := pop.Len()
	out := make([]int, count)
	k := t.K
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	for i := 0; i < count; i++ {
		best := -1
		for j := 0; j < k; j++ {
			cand := rng.Intn(n)
			if best == -1 || better(pop, obj, cand, best) {
				best = cand
			}
		}
		out[i] = best
	}
	return out
}

func better(pop *phenotype.Population, obj objective.Objective, a, b int) bool {
	sa, sb := pop.Members[a].Score, pop.Members[b].Score
	if sa == nil || sb == nil {
		return false
	}
	if obj.Better(sa, sb) {
		return true
	}
	if obj.Better(sb, sa) {
		return false
	}
	return pop.Members[a].ID < pop.Members[b].ID
}

// weights translates every member's score onto a maximize scale, then
// shifts so every weight is >= epsilon (subtract the minimum, add a small
// epsilon, so roulette sampling never sees a non-positive weight).
func weights(pop *phenotype.Population, obj objective.Objective) []float64 {
	n := pop.Len()
	raw := make([]float64, n)
	minV := 0.0
	for i, m := range pop.Members {
		if m.Score == nil {
			raw[i] = 0
			continue
		}
		if obj.IsMultiObjective() {
			raw[i] = 0 // multi-objective selectors should use NSGA-II instead
		} else {
			raw[i] = obj.Normalized(m.Score)
		}
		if i == 0 || raw[i] < minV {
			minV = raw[i]
		}
	}
	const epsilon = 1e-9
	out := make([]float64, n)
	for i, v := range raw {
		out[i] = v - minV + epsilon
	}
	return out
}

// Roulette samples proportional to shifted weights; falls back to uniform
// if total weight is 0 after shifting.
type Roulette struct{}

func (Roulette) Select(pop *phenotype.Population, obj objective.Objective, count int, rng *rand.Rand) []int {
	w := weights(pop, obj)
	return sampleCumulative(w, count, rng)
}

func sampleCumulative(w []float64, count int, rng *rand.Rand) []int {
	n := len(w)
	total := 0.0
	for _, v := range w {
		total += v
	}
	out := make([]int, count)
	if total <= 0 {
		for i := range out {
			out[i] = rng.Intn(n)
		}
		return out
	}
	for i := 0; i < count; i++ {
		throw := rng.Float64() * total
		acc := 0.0
		chosen := n - 1
		for j, v := range w {
			acc += v
			if throw <= acc {
				chosen = j
				break
			}
		}
		out[i] = chosen
	}
	return out
}

// Boltzmann weights proportional to exp(f/T) (maximize) or exp(-f/T)
// (minimize), numerically stabilized by subtracting the max before
// exponentiating.
type Boltzmann struct{ T float64 }

func (b Boltzmann) Select(pop *phenotype.Population, obj objective.Objective, count int, rng *rand.Rand) []int {
	raw := make([]float64, pop.Len())
	maxV := 0.0
	for i, m := range pop.Members {
		if m.Score == nil {
			continue
		}
		v := obj.Normalized(m.Score) / b.T
		raw[i] = v
		if i == 0 || v > maxV {
			maxV = v
		}
	}
	w := make([]float64, len(raw))
	for i, v := range raw {
		w[i] = math.Exp(v - maxV)
	}
	return sampleCumulative(w, count, rng)
}

// Rank sorts by objective-aware order; weight is a linear function of rank
// (best gets the highest weight), sampled proportionally.
type Rank struct{}

func (Rank) Select(pop *phenotype.Population, obj objective.Objective, count int, rng *rand.Rand) []int {
	n := pop.Len()
	order := rankOrder(pop, obj)
	w := make([]float64, n)
	for rank, idx := range order {
		// best (rank 0) gets weight n, worst gets weight 1.
		w[idx] = float64(n - rank)
	}
	return sampleCumulative(w, count, rng)
}

// rankOrder returns member indices sorted from best to worst.
func rankOrder(pop *phenotype.Population, obj objective.Objective) []int {
	n := pop.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return better(pop, obj, order[a], order[b])
	})
	return order
}

// Elite returns the top count indices by objective-aware order; ties
// broken by lower id.
type Elite struct{}

func (Elite) Select(pop *phenotype.Population, obj objective.Objective, count int, rng *rand.Rand) []int {
	order := rankOrder(pop, obj)
	if count > len(order) {
		count = len(order)
	}
	out := make([]int, count)
	copy(out, order[:count])
	return out
}

// StochasticUniversalSampling draws a single uniform offset u in
// [0, W/count) then picks indices at u + i*W/count along the cumulative
// weight wheel.
type StochasticUniversalSampling struct{}

func (StochasticUniversalSampling) Select(pop *phenotype.Population, obj objective.Objective, count int, rng *rand.Rand) []int {
	w := weights(pop, obj)
	total := 0.0
	for _, v := range w {
		total += v
	}
	out := make([]int, count)
	if total <= 0 || count == 0 {
		for i := range out {
			out[i] = rng.Intn(len(w))
		}
		return out
	}
	step := total / float64(count)
	u := rng.Float64() * step
	acc := 0.0
	j := 0
	for i := 0; i < count; i++ {
		pos := u + float64(i)*step
		for acc+w[j] < pos && j < len(w)-1 {
			acc += w[j]
			j++
		}
		out[i] = j
	}
	return out
}

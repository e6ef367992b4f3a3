// Package front implements the bounded Pareto Front archive: a
// multi-objective non-dominated set with crowding-distance eviction.
package front

import (
	"math"

	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/pareto"
	"github.com/evoengine/evo/phenotype"
)

// Front maintains a set of phenotypes such that no member is dominated by
// any other member, with at most MaxSize members. MinSize is stored (and
// checkpointed) but not enforced: the front may hold fewer members.
type Front struct {
	obj              objective.Objective
	MinSize, MaxSize int
	members          []*phenotype.Phenotype
}

func New(obj objective.Objective, minSize, maxSize int) *Front {
	return &Front{obj: obj, MinSize: minSize, MaxSize: maxSize}
}

// Restore rebuilds a Front from an already-validated member set, used by
// checkpoint.Load to avoid replaying every Offer call that built it.
func Restore(obj objective.Objective, minSize, maxSize int, members []*phenotype.Phenotype) *Front {
	return &Front{obj: obj, MinSize: minSize, MaxSize: maxSize, members: members}
}

func (f *Front) Members() []*phenotype.Phenotype { return f.members }
func (f *Front) Len() int                        { return len(f.members) }
func (f *Front) Objective() objective.Objective   { return f.obj }

// Offer applies the Pareto-front update contract: if ph is dominated by any
// member, reject; else remove every member it dominates, insert it; if
// |F| > MaxSize, evict the member with the smallest crowding distance.
func (f *Front) Offer(ph *phenotype.Phenotype) {
	if ph.Score == nil {
		return
	}
	for _, m := range f.members {
		if f.obj.Dominates(m.Score, ph.Score) {
			return // dominated by an existing member: reject
		}
	}
	kept := f.members[:0:0]
	for _, m := range f.members {
		if !f.obj.Dominates(ph.Score, m.Score) {
			kept = append(kept, m)
		}
	}
	kept = append(kept, ph)
	f.members = kept

	if len(f.members) > f.MaxSize {
		f.evictLeastCrowded()
	}
}

func (f *Front) evictLeastCrowded() {
	for len(f.members) > f.MaxSize {
		scores := make([]objective.Score, len(f.members))
		idx := make([]int, len(f.members))
		for i, m := range f.members {
			scores[i] = m.Score
			idx[i] = i
		}
		dist := pareto.CrowdingDistance(idx, scores, f.obj)
		worst, worstDist := 0, dist[0]
		for i := 1; i < len(f.members); i++ {
			if dist[i] < worstDist {
				worst, worstDist = i, dist[i]
			}
		}
		f.members = append(f.members[:worst], f.members[worst+1:]...)
	}
}

// Entropy computes a spread metric over the front's objective values: the
// Shannon entropy of each objective's score histogram, summed across
// objectives. The engine loop records it on every tenth generation.
func (f *Front) Entropy() float64 {
	if len(f.members) == 0 {
		return 0
	}
	const bins = 10
	total := 0.0
	m := f.obj.Arity()
	for k := 0; k < m; k++ {
		minV, maxV := f.members[0].Score[k], f.members[0].Score[k]
		for _, mem := range f.members {
			v := mem.Score[k]
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
		span := maxV - minV
		counts := make([]int, bins)
		for _, mem := range f.members {
			if span == 0 {
				counts[0]++
				continue
			}
			b := int((mem.Score[k] - minV) / span * float64(bins-1))
			counts[b]++
		}
		total += shannonEntropy(counts, len(f.members))
	}
	return total
}

func shannonEntropy(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	h := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(n)
		h -= p * math.Log2(p)
	}
	return h
}

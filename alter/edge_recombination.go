package alter

import (
	"math/rand"
	"sort"

	"github.com/evoengine/evo/genome"
)

// EdgeRecombinationCrossover builds an adjacency list of edges from both
// permutation parents, then constructs the child by chaining neighbors,
// preferring the candidate with fewer remaining neighbors.
type EdgeRecombinationCrossover struct{ baseAlterer }

func NewEdgeRecombinationCrossover() *EdgeRecombinationCrossover {
	return &EdgeRecombinationCrossover{baseAlterer{[]genome.Variant{genome.Permutation}}}
}

func (x *EdgeRecombinationCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	if rng.Float64() >= rate {
		return a, b, false
	}
	child := x.buildChild(rng, a, b)
	return a.WithGenes(child), b.WithGenes(child), true
}

func (x *EdgeRecombinationCrossover) buildChild(rng *rand.Rand, a, b genome.Chromosome) []genome.Gene {
	n := a.Len()
	valueAt := func(c genome.Chromosome, i int) int { return c.Gene(i).(*genome.PermutationGene).Index }

	neighbors := make(map[int]map[int]bool, n)
	addEdges := func(c genome.Chromosome) {
		for i := 0; i < n; i++ {
			v := valueAt(c, i)
			prev := valueAt(c, (i-1+n)%n)
			next := valueAt(c, (i+1)%n)
			if neighbors[v] == nil {
				neighbors[v] = map[int]bool{}
			}
			neighbors[v][prev] = true
			neighbors[v][next] = true
		}
	}
	addEdges(a)
	addEdges(b)

	remaining := map[int]bool{}
	for v := range neighbors {
		remaining[v] = true
	}

	current := valueAt(a, 0)
	order := make([]int, 0, n)
	order = append(order, current)
	delete(remaining, current)
	for len(order) < n {
		for _, nbrs := range neighbors {
			delete(nbrs, current)
		}
		var candidates []int
		for nb := range neighbors[current] {
			if remaining[nb] {
				candidates = append(candidates, nb)
			}
		}
		sort.Ints(candidates)
		var next int
		if len(candidates) == 0 {
			// exhausted: pick the lowest-valued remaining allele, a
			// deterministic tie-break independent of map iteration order.
			remVals := make([]int, 0, len(remaining))
			for v := range remaining {
				remVals = append(remVals, v)
			}
			sort.Ints(remVals)
			next = remVals[0]
		} else {
			best := candidates[0]
			bestCount := len(neighbors[best])
			for _, c := range candidates[1:] {
				if len(neighbors[c]) < bestCount {
					best = c
					bestCount = len(neighbors[c])
				}
			}
			next = best
		}
		order = append(order, next)
		delete(remaining, next)
		current = next
	}

	table := a.Gene(0).(*genome.PermutationGene).Table
	child := make([]genome.Gene, n)
	for i, v := range order {
		child[i] = &genome.PermutationGene{Index: v, Table: table}
	}
	return child
}

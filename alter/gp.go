package alter

import (
	"math/rand"

	"github.com/evoengine/evo/genome"
)

// TreeCrossover swaps two randomly chosen subtrees between parents. Because each chromosome owns a disjoint node arena, the
// swap is implemented as a structural copy rather than a pointer splice.
type TreeCrossover struct{ baseAlterer }

func NewTreeCrossover() *TreeCrossover {
	return &TreeCrossover{baseAlterer{[]genome.Variant{genome.Node}}}
}

func (x *TreeCrossover) Cross(rng *rand.Rand, a, b genome.Chromosome, rate float64) (genome.Chromosome, genome.Chromosome, bool) {
	ta, okA := a.(*genome.TreeChromosome)
	tb, okB := b.(*genome.TreeChromosome)
	if !okA || !okB || rng.Float64() >= rate {
		return a, b, false
	}
	idxA := rng.Intn(ta.Len())
	idxB := rng.Intn(tb.Len())
	childA := graftSubtree(ta, idxA, tb, idxB)
	childB := graftSubtree(tb, idxB, ta, idxA)
	return childA, childB, true
}

// treeBuilder accumulates a fresh node arena while copying a host tree and
// splicing in one donor subtree at a designated graft point.
type treeBuilder struct {
	store *genome.NodeStore
	nodes []genome.TreeNode
}

func (b *treeBuilder) append(gene *genome.NodeGene, parent int) int {
	idx := len(b.nodes)
	b.nodes = append(b.nodes, genome.TreeNode{Gene: gene, Parent: parent})
	return idx
}

// copyDonor deep-copies donor's subtree rooted at donorIdx into b, wiring
// the new subtree's root to parent.
func (b *treeBuilder) copyDonor(donor *genome.TreeChromosome, donorIdx, parent int) int {
	node := donor.Node(donorIdx)
	idx := b.append(node.Gene.Clone().(*genome.NodeGene), parent)
	children := make([]int, 0, len(node.Children))
	for _, c := range node.Children {
		children = append(children, b.copyDonor(donor, c, idx))
	}
	b.nodes[idx].Children = children
	return idx
}

// copyHostExceptGraft deep-copies host's subtree rooted at hostIdx into b,
// except that the node at graftPoint is replaced by a fresh copy of the
// donor subtree at donorIdx.
func (b *treeBuilder) copyHostExceptGraft(host *genome.TreeChromosome, hostIdx, parent, graftPoint int, donor *genome.TreeChromosome, donorIdx int) int {
	if hostIdx == graftPoint {
		return b.copyDonor(donor, donorIdx, parent)
	}
	node := host.Node(hostIdx)
	idx := b.append(node.Gene.Clone().(*genome.NodeGene), parent)
	children := make([]int, 0, len(node.Children))
	for _, c := range node.Children {
		children = append(children, b.copyHostExceptGraft(host, c, idx, graftPoint, donor, donorIdx))
	}
	b.nodes[idx].Children = children
	return idx
}

// graftSubtree returns a new TreeChromosome equal to host, except the
// subtree at hostIdx is replaced by a deep copy of donor's subtree at
// donorIdx.
func graftSubtree(host *genome.TreeChromosome, hostIdx int, donor *genome.TreeChromosome, donorIdx int) *genome.TreeChromosome {
	b := &treeBuilder{store: host.Store()}
	root := b.copyHostExceptGraft(host, host.Root(), -1, hostIdx, donor, donorIdx)
	return genome.NewTreeChromosome(b.store, b.nodes, root)
}

// HoistMutator lifts a randomly chosen subtree to become the new tree root;
// its former parent and siblings are discarded.
type HoistMutator struct{ baseAlterer }

func NewHoistMutator() *HoistMutator {
	return &HoistMutator{baseAlterer{[]genome.Variant{genome.Node}}}
}

func (m *HoistMutator) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	t, ok := c.(*genome.TreeChromosome)
	if !ok || rng.Float64() >= rate || t.Len() < 2 {
		return c, false
	}
	idx := 1 + rng.Intn(t.Len()-1) // avoid hoisting the existing root onto itself
	b := &treeBuilder{store: t.Store()}
	root := b.copyDonor(t, idx, -1)
	return genome.NewTreeChromosome(b.store, b.nodes, root), true
}

// OperationMutator: with probability rate per node, and then with nested
// probability replaceRate, swap the op for another same-arity op from the
// node store. Op constants are never modified: a NodeGene holds only an
// index into the shared NodeStore, so there is no per-gene constant. In a
// tree, nodes whose op has Const set are left unchanged; in a graph they are
// swapped like any other node.
type OperationMutator struct {
	baseAlterer
	ReplaceRate float64
}

func NewOperationMutator(replaceRate float64) *OperationMutator {
	return &OperationMutator{baseAlterer{[]genome.Variant{genome.Node}}, replaceRate}
}

func (m *OperationMutator) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	switch t := c.(type) {
	case *genome.TreeChromosome:
		return m.mutateTree(rng, t, rate)
	case *genome.GraphChromosome:
		return m.mutateGraph(rng, t, rate)
	default:
		return c, false
	}
}

func (m *OperationMutator) mutateTree(rng *rand.Rand, t *genome.TreeChromosome, rate float64) (genome.Chromosome, bool) {
	clone := t.Clone().(*genome.TreeChromosome)
	changed := false
	for i := 0; i < clone.Len(); i++ {
		if rng.Float64() >= rate {
			continue
		}
		g := clone.Node(i).Gene
		op := g.Op()
		if op.Const {
			continue
		}
		if rng.Float64() < m.ReplaceRate {
			sameArity := g.Store.SameArity(op.Arity, g.OpIndex)
			if len(sameArity) > 0 {
				g.OpIndex = sameArity[rng.Intn(len(sameArity))]
				changed = true
			}
		}
	}
	return clone, changed
}

func (m *OperationMutator) mutateGraph(rng *rand.Rand, gr *genome.GraphChromosome, rate float64) (genome.Chromosome, bool) {
	clone := gr.Clone().(*genome.GraphChromosome)
	changed := false
	for i := 0; i < clone.Len(); i++ {
		if rng.Float64() >= rate {
			continue
		}
		g := clone.Node(i).Gene
		if rng.Float64() < m.ReplaceRate {
			sameArity := g.Store.SameArity(g.Op().Arity, g.OpIndex)
			if len(sameArity) > 0 {
				g.OpIndex = sameArity[rng.Intn(len(sameArity))]
				changed = true
			}
		}
	}
	return clone, changed
}

// GraphMutator: with probability vertexRate add a vertex splitting an
// edge; with edgeRate add an edge between two compatible nodes. Runs as a
// transaction: rolls back on structural-rule violation.
type GraphMutator struct {
	baseAlterer
	VertexRate, EdgeRate float64
	AllowRecurrent       bool
}

func NewGraphMutator(vertexRate, edgeRate float64, allowRecurrent bool) *GraphMutator {
	return &GraphMutator{baseAlterer{[]genome.Variant{genome.Node}}, vertexRate, edgeRate, allowRecurrent}
}

func (m *GraphMutator) Mutate(rng *rand.Rand, c genome.Chromosome, rate float64) (genome.Chromosome, bool) {
	gr, ok := c.(*genome.GraphChromosome)
	if !ok {
		return c, false
	}
	clone := gr.Clone().(*genome.GraphChromosome)
	changed := false

	if rng.Float64() < m.VertexRate && clone.Len() >= 2 {
		from, to, ok := findEdgeEndpoints(clone, rng)
		if ok {
			snap := clone.Begin()
			clone.AddVertexSplittingEdge(rng, from, to)
			if clone.IsValid() {
				changed = true
			} else {
				clone.Rollback(snap)
			}
		}
	}
	if rng.Float64() < m.EdgeRate && clone.Len() >= 2 {
		from, to := rng.Intn(clone.Len()), rng.Intn(clone.Len())
		snap := clone.Begin()
		clone.AddEdge(rng, from, to)
		if clone.IsValid() {
			changed = true
		} else {
			clone.Rollback(snap)
		}
	}
	return clone, changed
}

func findEdgeEndpoints(g *genome.GraphChromosome, rng *rand.Rand) (from, to int, ok bool) {
	var candidates [][2]int
	for i := 0; i < g.Len(); i++ {
		for _, o := range g.Node(i).Outgoing {
			candidates = append(candidates, [2]int{i, o})
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}
	c := candidates[rng.Intn(len(candidates))]
	return c[0], c[1], true
}

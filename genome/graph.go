package genome

import "math/rand"

// NodeKind classifies a GraphNode's structural role.
type NodeKind int

const (
	KindInput NodeKind = iota
	KindOutput
	KindVertex
	KindEdge
)

// GraphNode is one arena slot of a GraphChromosome.
type GraphNode struct {
	Gene     *NodeGene
	Kind     NodeKind
	Incoming []int
	Outgoing []int
}

// GraphChromosome models a directed graph of operation nodes. Cycles are
// permitted iff AllowRecurrent.
type GraphChromosome struct {
	store          *NodeStore
	nodes          []GraphNode
	allowRecurrent bool
}

func NewGraphChromosome(store *NodeStore, nodes []GraphNode, allowRecurrent bool) *GraphChromosome {
	return &GraphChromosome{store: store, nodes: nodes, allowRecurrent: allowRecurrent}
}

func (g *GraphChromosome) Variant() Variant { return Node }
func (g *GraphChromosome) Len() int         { return len(g.nodes) }
func (g *GraphChromosome) Gene(i int) Gene  { return g.nodes[i].Gene }
func (g *GraphChromosome) AllowRecurrent() bool { return g.allowRecurrent }
func (g *GraphChromosome) Store() *NodeStore    { return g.store }
func (g *GraphChromosome) Node(i int) GraphNode { return g.nodes[i] }

func (g *GraphChromosome) WithGenes(genes []Gene) Chromosome {
	nodes := make([]GraphNode, len(g.nodes))
	copy(nodes, g.nodes)
	for i, gg := range genes {
		nodes[i].Gene = gg.(*NodeGene)
	}
	return &GraphChromosome{store: g.store, nodes: nodes, allowRecurrent: g.allowRecurrent}
}

// NewInstance returns a deep copy of g; unlike the other chromosome kinds,
// a graph is not re-randomized.
func (g *GraphChromosome) NewInstance(rng *rand.Rand) Chromosome {
	return g.Clone().(*GraphChromosome)
}

// IsValid checks the four per-kind structural rules (input, output,
// vertex, edge), edge symmetry, and, when !AllowRecurrent, acyclicity.
func (g *GraphChromosome) IsValid() bool {
	for i, n := range g.nodes {
		switch n.Kind {
		case KindInput:
			if len(n.Incoming) != 0 || len(n.Outgoing) < 1 {
				return false
			}
		case KindOutput:
			if len(n.Incoming) < 1 || len(n.Outgoing) != 0 {
				return false
			}
		case KindVertex:
			if len(n.Incoming) < 1 || len(n.Outgoing) < 1 {
				return false
			}
			if !n.Gene.Op().Arity.Accepts(len(n.Incoming)) {
				return false
			}
		case KindEdge:
			if len(n.Incoming) != 1 || len(n.Outgoing) != 1 {
				return false
			}
		default:
			return false
		}
		for _, o := range n.Outgoing {
			found := false
			for _, in := range g.nodes[o].Incoming {
				if in == i {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	if !g.allowRecurrent && g.hasCycle() {
		return false
	}
	return true
}

func (g *GraphChromosome) hasCycle() bool {
	const (
		white = 0
		gray  = 1
		black = 2
	)
	color := make([]int, len(g.nodes))
	var visit func(i int) bool
	visit = func(i int) bool {
		color[i] = gray
		for _, o := range g.nodes[i].Outgoing {
			if color[o] == gray {
				return true
			}
			if color[o] == white && visit(o) {
				return true
			}
		}
		color[i] = black
		return false
	}
	for i := range g.nodes {
		if color[i] == white {
			if visit(i) {
				return true
			}
		}
	}
	return false
}

func (g *GraphChromosome) Clone() Chromosome {
	nodes := make([]GraphNode, len(g.nodes))
	for i, n := range g.nodes {
		nodes[i] = GraphNode{
			Gene:     n.Gene.Clone().(*NodeGene),
			Kind:     n.Kind,
			Incoming: append([]int{}, n.Incoming...),
			Outgoing: append([]int{}, n.Outgoing...),
		}
	}
	return &GraphChromosome{store: g.store, nodes: nodes, allowRecurrent: g.allowRecurrent}
}

// Snapshot captures graph state for a mutation transaction: Begin copies
// every node's kind and linkage (sharing the genes), so rollback on a
// validation failure swaps that copy back in without recloning genes.
type Snapshot struct {
	nodes []GraphNode
}

// Begin starts a structural-mutation transaction.
func (g *GraphChromosome) Begin() Snapshot {
	nodes := make([]GraphNode, len(g.nodes))
	for i, n := range g.nodes {
		nodes[i] = GraphNode{
			Gene:     n.Gene,
			Kind:     n.Kind,
			Incoming: append([]int{}, n.Incoming...),
			Outgoing: append([]int{}, n.Outgoing...),
		}
	}
	return Snapshot{nodes: nodes}
}

// Rollback restores the graph to the state captured by Begin.
func (g *GraphChromosome) Rollback(s Snapshot) {
	g.nodes = s.nodes
}

// AddVertexSplittingEdge inserts a new Vertex node splitting edge (from,to),
// part of the Graph Mutator's vertex_rate path. Caller must
// validate the result and Rollback on failure.
func (g *GraphChromosome) AddVertexSplittingEdge(rng *rand.Rand, from, to int) int {
	newIdx := len(g.nodes)
	opIdx := g.store.Random(rng)
	g.nodes = append(g.nodes, GraphNode{
		Gene:     &NodeGene{OpIndex: opIdx, Store: g.store},
		Kind:     KindVertex,
		Incoming: []int{from},
		Outgoing: []int{to},
	})
	// rewire from->to into from->newIdx->to
	g.replaceOutgoing(from, to, newIdx)
	g.replaceIncoming(to, from, newIdx)
	return newIdx
}

// AddEdge connects from->to through a fresh Edge node, part of the Graph
// Mutator's edge_rate path.
func (g *GraphChromosome) AddEdge(rng *rand.Rand, from, to int) int {
	newIdx := len(g.nodes)
	opIdx := g.store.Random(rng)
	g.nodes = append(g.nodes, GraphNode{
		Gene:     &NodeGene{OpIndex: opIdx, Store: g.store},
		Kind:     KindEdge,
		Incoming: []int{from},
		Outgoing: []int{to},
	})
	g.nodes[from].Outgoing = append(g.nodes[from].Outgoing, newIdx)
	g.nodes[to].Incoming = append(g.nodes[to].Incoming, newIdx)
	return newIdx
}

func (g *GraphChromosome) replaceOutgoing(i, oldTarget, newTarget int) {
	for j, o := range g.nodes[i].Outgoing {
		if o == oldTarget {
			g.nodes[i].Outgoing[j] = newTarget
		}
	}
}

func (g *GraphChromosome) replaceIncoming(i, oldSource, newSource int) {
	for j, in := range g.nodes[i].Incoming {
		if in == oldSource {
			g.nodes[i].Incoming[j] = newSource
		}
	}
}

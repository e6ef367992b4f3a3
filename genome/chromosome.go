package genome

import "math/rand"

// Chromosome is an ordered sequence of genes of a single variant, plus
// variant-specific shape metadata. Implementations must preserve their
// per-kind invariants (fixed length, shared variant, table/arity
// constraints) across every Alterer.
type Chromosome interface {
	// Variant reports the gene variant every gene in this chromosome shares.
	Variant() Variant
	// Len reports the number of genes.
	Len() int
	// Gene returns the gene at position i.
	Gene(i int) Gene
	// WithGenes returns a new chromosome of the same shape metadata carrying
	// the given genes. Callers must supply a slice of the same length for
	// fixed-length kinds.
	WithGenes(genes []Gene) Chromosome
	// NewInstance produces a fresh, independently random chromosome of the
	// same shape.
	NewInstance(rng *rand.Rand) Chromosome
	// IsValid checks every invariant for this chromosome's variant.
	IsValid() bool
	// Clone returns a deep, independent copy.
	Clone() Chromosome
}

// LinearChromosome implements the Bit/Float/Int/Char fixed-length
// invariant: all genes share a variant, length is fixed for the lifetime of
// the chromosome.
type LinearChromosome struct {
	variant Variant
	genes   []Gene
}

func NewLinearChromosome(variant Variant, genes []Gene) *LinearChromosome {
	return &LinearChromosome{variant: variant, genes: genes}
}

func (c *LinearChromosome) Variant() Variant { return c.variant }
func (c *LinearChromosome) Len() int         { return len(c.genes) }
func (c *LinearChromosome) Gene(i int) Gene  { return c.genes[i] }

func (c *LinearChromosome) WithGenes(genes []Gene) Chromosome {
	return &LinearChromosome{variant: c.variant, genes: genes}
}

func (c *LinearChromosome) NewInstance(rng *rand.Rand) Chromosome {
	genes := make([]Gene, len(c.genes))
	for i, g := range c.genes {
		genes[i] = g.NewInstance(rng)
	}
	return &LinearChromosome{variant: c.variant, genes: genes}
}

func (c *LinearChromosome) IsValid() bool {
	for _, g := range c.genes {
		if g.Variant() != c.variant || !g.IsValid() {
			return false
		}
	}
	return true
}

func (c *LinearChromosome) Clone() Chromosome {
	genes := make([]Gene, len(c.genes))
	for i, g := range c.genes {
		genes[i] = g.Clone()
	}
	return &LinearChromosome{variant: c.variant, genes: genes}
}

// PermutationChromosome enforces that the multiset of alleles (indices)
// equals the full allele table exactly once each.
type PermutationChromosome struct {
	table *AlleleTable
	genes []*PermutationGene
}

func NewPermutationChromosome(genes []*PermutationGene, table *AlleleTable) *PermutationChromosome {
	return &PermutationChromosome{table: table, genes: genes}
}

// NewRandomPermutationChromosome builds a random permutation of the full
// allele table via Fisher-Yates, using rng.Shuffle so the result is
// deterministic given the RNG state.
func NewRandomPermutationChromosome(rng *rand.Rand, table *AlleleTable) *PermutationChromosome {
	n := table.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	rng.Shuffle(n, func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	genes := make([]*PermutationGene, n)
	for i, v := range idx {
		genes[i] = &PermutationGene{Index: v, Table: table}
	}
	return &PermutationChromosome{table: table, genes: genes}
}

func (c *PermutationChromosome) Variant() Variant    { return Permutation }
func (c *PermutationChromosome) Len() int            { return len(c.genes) }
func (c *PermutationChromosome) Gene(i int) Gene     { return c.genes[i] }
func (c *PermutationChromosome) Table() *AlleleTable { return c.table }

func (c *PermutationChromosome) WithGenes(genes []Gene) Chromosome {
	pg := make([]*PermutationGene, len(genes))
	for i, g := range genes {
		pg[i] = g.(*PermutationGene)
	}
	return &PermutationChromosome{table: c.table, genes: pg}
}

func (c *PermutationChromosome) NewInstance(rng *rand.Rand) Chromosome {
	return NewRandomPermutationChromosome(rng, c.table)
}

func (c *PermutationChromosome) IsValid() bool {
	seen := make([]bool, c.table.Len())
	if len(c.genes) != c.table.Len() {
		return false
	}
	for _, g := range c.genes {
		if g.Index < 0 || g.Index >= len(seen) || seen[g.Index] {
			return false
		}
		seen[g.Index] = true
	}
	return true
}

func (c *PermutationChromosome) Clone() Chromosome {
	genes := make([]*PermutationGene, len(c.genes))
	for i, g := range c.genes {
		genes[i] = &PermutationGene{Index: g.Index, Table: g.Table}
	}
	return &PermutationChromosome{table: c.table, genes: genes}
}

// Alleles returns the decoded allele sequence, resolving every gene's index
// against the shared table.
func (c *PermutationChromosome) Alleles() []interface{} {
	out := make([]interface{}, len(c.genes))
	for i, g := range c.genes {
		out[i] = g.Value()
	}
	return out
}

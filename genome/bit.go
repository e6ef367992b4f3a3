package genome

import "math/rand"

// BitGene carries a single boolean allele. There is no bound_range for bits;
// every value of the underlying type is valid.
type BitGene struct {
	Allele bool
}

func NewBitGene(rng *rand.Rand) *BitGene {
	return &BitGene{Allele: rng.Intn(2) == 1}
}

func (g *BitGene) Variant() Variant { return Bit }

func (g *BitGene) NewInstance(rng *rand.Rand) Gene { return NewBitGene(rng) }

func (g *BitGene) IsValid() bool { return true }

func (g *BitGene) Clone() Gene { return &BitGene{Allele: g.Allele} }

func (g *BitGene) Equals(other Gene) bool {
	o, ok := other.(*BitGene)
	return ok && o.Allele == g.Allele
}

package genome

import (
	"math"
	"math/rand"
)

// FloatGene carries a float64 allele with a sampling range (value_range)
// used when minting fresh random genes and a legality range (bound_range)
// that IsValid and clamping enforce.
type FloatGene struct {
	Allele     float64
	ValueRange [2]float64
	BoundRange [2]float64
}

func NewFloatGene(rng *rand.Rand, valueRange, boundRange [2]float64) *FloatGene {
	lo, hi := valueRange[0], valueRange[1]
	return &FloatGene{
		Allele:     lo + rng.Float64()*(hi-lo),
		ValueRange: valueRange,
		BoundRange: boundRange,
	}
}

func (g *FloatGene) Variant() Variant { return Float }

func (g *FloatGene) NewInstance(rng *rand.Rand) Gene {
	return NewFloatGene(rng, g.ValueRange, g.BoundRange)
}

func (g *FloatGene) IsValid() bool {
	return g.Allele >= g.BoundRange[0] && g.Allele <= g.BoundRange[1]
}

func (g *FloatGene) Clone() Gene {
	c := *g
	return &c
}

func (g *FloatGene) Equals(other Gene) bool {
	o, ok := other.(*FloatGene)
	return ok && o.Allele == g.Allele
}

func (g *FloatGene) Float64() float64 { return g.Allele }

func (g *FloatGene) WithFloat64(v float64) Gene {
	if v < g.BoundRange[0] {
		v = g.BoundRange[0]
	} else if v > g.BoundRange[1] {
		v = g.BoundRange[1]
	}
	return &FloatGene{Allele: v, ValueRange: g.ValueRange, BoundRange: g.BoundRange}
}

// IntGene is FloatGene's integer counterpart; the allele is stored as
// int64 but exposed to arithmetic alterers via Float64/WithFloat64, rounding
// on the way back in.
type IntGene struct {
	Allele     int64
	ValueRange [2]int64
	BoundRange [2]int64
}

func NewIntGene(rng *rand.Rand, valueRange, boundRange [2]int64) *IntGene {
	lo, hi := valueRange[0], valueRange[1]
	span := hi - lo
	var v int64
	if span <= 0 {
		v = lo
	} else {
		v = lo + rng.Int63n(span+1)
	}
	return &IntGene{Allele: v, ValueRange: valueRange, BoundRange: boundRange}
}

func (g *IntGene) Variant() Variant { return Int }

func (g *IntGene) NewInstance(rng *rand.Rand) Gene {
	return NewIntGene(rng, g.ValueRange, g.BoundRange)
}

func (g *IntGene) IsValid() bool {
	return g.Allele >= g.BoundRange[0] && g.Allele <= g.BoundRange[1]
}

func (g *IntGene) Clone() Gene {
	c := *g
	return &c
}

func (g *IntGene) Equals(other Gene) bool {
	o, ok := other.(*IntGene)
	return ok && o.Allele == g.Allele
}

func (g *IntGene) Float64() float64 { return float64(g.Allele) }

func (g *IntGene) WithFloat64(v float64) Gene {
	rounded := int64(math.Round(v))
	if rounded < g.BoundRange[0] {
		rounded = g.BoundRange[0]
	} else if rounded > g.BoundRange[1] {
		rounded = g.BoundRange[1]
	}
	return &IntGene{Allele: rounded, ValueRange: g.ValueRange, BoundRange: g.BoundRange}
}

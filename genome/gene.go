// Package genome implements the Allele -> Gene -> Chromosome -> Genotype
// data model and the invariants alteration and replacement must preserve.
// A sealed gene-variant set represents bit strings, integer/float
// vectors, permutations, and tree/graph node alphabets.
package genome

import "math/rand"

// Variant identifies which of the sealed Gene shapes a Gene/Chromosome is.
type Variant int

const (
	Bit Variant = iota
	Float
	Int
	Char
	Permutation
	Node
)

func (v Variant) String() string {
	switch v {
	case Bit:
		return "Bit"
	case Float:
		return "Float"
	case Int:
		return "Int"
	case Char:
		return "Char"
	case Permutation:
		return "Permutation"
	case Node:
		return "Node"
	default:
		return "Unknown"
	}
}

// Gene is the sealed interface implemented by every gene variant. An
// implementation wraps one allele plus its validity metadata.
//
// Arithmetic capability is a probe, not a method every Gene must support
// meaningfully: ArithmeticGene is the optional extension interface alterers
// type-assert for before attempting numeric combinators. No check rejects
// such an alterer for a non-numeric variant when it is configured; the
// type assertion runs on each altered gene and panics on a gene that does
// not implement it.
type Gene interface {
	// Variant reports which sealed shape this gene is.
	Variant() Variant
	// NewInstance produces a fresh, independently random gene of the same
	// shape (same bound_range / allele table / arity).
	NewInstance(rng *rand.Rand) Gene
	// IsValid reports whether the allele lies within bound_range (numeric,
	// char) or satisfies the arity/table constraint (node, permutation).
	IsValid() bool
	// Clone returns a deep, independent copy.
	Clone() Gene
	// Equals reports allele equality (not identity) against another gene of
	// the same variant.
	Equals(other Gene) bool
}

// ArithmeticGene is implemented by numeric gene variants (Float, Int) that
// support the arithmetic combinators required by Blend/Intermediate/Mean/
// SBX crossover and Gaussian/Jitter/Arithmetic/Polynomial mutation. Non-numeric genes (Bit, Char, Permutation, Node) do not implement
// it; alterers that need it type-assert each gene as they alter it, so a
// configured variant that lacks it fails at run time, not at configuration.
type ArithmeticGene interface {
	Gene
	// Float64 returns the allele as a float64 for combinator arithmetic.
	Float64() float64
	// WithFloat64 returns a new gene of the same shape carrying v as its
	// allele, clamped to bound_range if v falls outside it.
	WithFloat64(v float64) Gene
}

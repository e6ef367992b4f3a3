// Package phenotype implements the scored individual and the ordered
// population collection that the engine loop selects, alters, and
// replaces each generation.
package phenotype

import (
	"sync/atomic"

	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

// nextID is the process-wide monotonically increasing phenotype id counter.
var nextID int64

// NextID atomically reserves and returns the next phenotype id.
func NextID() int64 {
	return atomic.AddInt64(&nextID, 1)
}

// Phenotype pairs a Genotype with an optional Score plus bookkeeping.
type Phenotype struct {
	ID          int64
	Genotype    *genome.Genotype
	Score       objective.Score // nil when unevaluated since last mutation
	BirthGen    int
	valid       bool
}

// New creates a phenotype from a freshly encoded genotype at the given
// birth generation. Score starts nil.
func New(g *genome.Genotype, birthGen int) *Phenotype {
	return &Phenotype{
		ID:       NextID(),
		Genotype: g,
		BirthGen: birthGen,
		valid:    g.IsValid(),
	}
}

// Age returns currentGen - BirthGen.
func (p *Phenotype) Age(currentGen int) int { return currentGen - p.BirthGen }

// HasScore reports whether this phenotype has been evaluated since its
// last mutation.
func (p *Phenotype) HasScore() bool { return p.Score != nil }

// ClearScore drops the score, so the phenotype counts as unevaluated
// again. Alterers do not call it: they return new genotypes, which the
// engine wraps in new, unscored phenotypes.
func (p *Phenotype) ClearScore() { p.Score = nil }

// RefreshValidity recomputes the structural-validity flag from the current
// genotype, for callers that modify its genes in place (New already
// computes it for a fresh genotype).
func (p *Phenotype) RefreshValidity() { p.valid = p.Genotype.IsValid() }

// IsValid reports the structural-validity flag.
func (p *Phenotype) IsValid() bool { return p.valid }

// CloneAsNew clones the genotype but mints a fresh id and birth generation,
// since the clone becomes a distinct individual rather than a copy of this
// one (used by PopulationSample-Replace).
func (p *Phenotype) CloneAsNew(birthGen int) *Phenotype {
	return &Phenotype{
		ID:       NextID(),
		Genotype: p.Genotype.Clone(),
		BirthGen: birthGen,
		valid:    p.valid,
		Score:    nil, // a clone used for replacement always starts unscored
	}
}

// Restore reconstructs a phenotype with an id and score fixed by the
// caller instead of minting a fresh one, used by checkpoint.Load to
// rebuild exactly the individuals a run was snapshotted with. Validity is
// recomputed from g rather than carried over, since g itself round-trips
// exactly.
func Restore(id int64, g *genome.Genotype, score objective.Score, birthGen int) *Phenotype {
	return &Phenotype{ID: id, Genotype: g, Score: score, BirthGen: birthGen, valid: g.IsValid()}
}

// BumpNextID advances the process-wide id counter past id, if it hasn't
// already passed it, so phenotypes minted after a checkpoint.Load never
// collide with a restored id.
func BumpNextID(id int64) {
	for {
		cur := atomic.LoadInt64(&nextID)
		if cur >= id {
			return
		}
		if atomic.CompareAndSwapInt64(&nextID, cur, id) {
			return
		}
	}
}

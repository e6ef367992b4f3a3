package phenotype

import "github.com/evoengine/evo/objective"

// Population is an ordered sequence of Phenotypes, insertion order
// preserved, length fixed at population_size; no two phenotypes share an
// id.
type Population struct {
	Members []*Phenotype
}

func NewPopulation(members []*Phenotype) *Population {
	return &Population{Members: members}
}

func (p *Population) Len() int { return len(p.Members) }

// Best returns the index of the objective-best member; ties broken by
// lower id.
func (p *Population) Best(obj objective.Objective) int {
	best := -1
	for i, m := range p.Members {
		if m.Score == nil {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		bm := p.Members[best]
		if obj.Better(m.Score, bm.Score) || (!obj.Better(bm.Score, m.Score) && m.ID < bm.ID) {
			best = i
		}
	}
	return best
}

// Clone returns a deep, independent copy of the population, used for the
// ecosystem snapshot embedded in each emitted Generation.
func (p *Population) Clone() *Population {
	members := make([]*Phenotype, len(p.Members))
	for i, m := range p.Members {
		clone := &Phenotype{ID: m.ID, Genotype: m.Genotype.Clone(), BirthGen: m.BirthGen, valid: m.valid}
		if m.Score != nil {
			clone.Score = append(objective.Score{}, m.Score...)
		}
		members[i] = clone
	}
	return &Population{Members: members}
}

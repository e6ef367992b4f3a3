package species

import (
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
)

// Species is a cluster of phenotypes sharing a mascot.
type Species struct {
	ID                     int
	Mascot                 *phenotype.Phenotype
	Members                []int // indices into the population
	BestScoreEver          objective.Score
	Age                    int
	GenerationsNoImprove   int
}

// Set manages the population's partition into species across generations:
// mascot carry-forward, per-epoch re-clustering, and stagnation eviction.
type Set struct {
	nextID  int
	species []*Species
}

func NewSet() *Set { return &Set{} }

// Restore rebuilds a Set from its already-computed id counter and
// partition, used by checkpoint.Load to avoid replaying Update.
func Restore(nextID int, species []*Species) *Set {
	return &Set{nextID: nextID, species: species}
}

func (s *Set) All() []*Species { return s.species }

// NextID returns the id the next newly-founded species will receive.
func (s *Set) NextID() int { return s.nextID }

// Update repartitions pop into species for the current generation:
// 1. Each species' mascot carries forward from the previous generation.
// 2. Each phenotype joins the first species whose mascot is within
//    threshold distance; otherwise a new species is created with it as
//    mascot.
// 3. A species receiving no members this generation is deleted.
// 4. A species stagnant for more than maxAge generations is deleted, and
//    its members are returned for end-of-epoch replacement.
func (s *Set) Update(pop *phenotype.Population, dist DistanceMetric, threshold float64, obj objective.Objective, maxAge int) (stagnantMembers []int) {
	for i := range s.species {
		s.species[i].Members = nil
	}

	for memberIdx, ph := range pop.Members {
		assigned := false
		for _, sp := range s.species {
			if dist.Distance(ph.Genotype, sp.Mascot.Genotype) <= threshold {
				sp.Members = append(sp.Members, memberIdx)
				assigned = true
				break
			}
		}
		if !assigned {
			s.nextID++
			s.species = append(s.species, &Species{
				ID:     s.nextID,
				Mascot: ph,
				Members: []int{memberIdx},
			})
		}
	}

	var survivors []*Species
	for _, sp := range s.species {
		if len(sp.Members) == 0 {
			continue // rule 3: no members this generation -> deleted
		}
		sp.Age++
		improved := false
		for _, idx := range sp.Members {
			m := pop.Members[idx]
			if m.Score == nil {
				continue
			}
			if sp.BestScoreEver == nil || obj.Better(m.Score, sp.BestScoreEver) {
				sp.BestScoreEver = append(objective.Score{}, m.Score...)
				improved = true
			}
		}
		if improved {
			sp.GenerationsNoImprove = 0
		} else {
			sp.GenerationsNoImprove++
		}

		if sp.GenerationsNoImprove > maxAge {
			stagnantMembers = append(stagnantMembers, sp.Members...)
			continue // rule 4: stagnant -> deleted, members marked for replacement
		}

		// carry the mascot forward deterministically: the first living
		// member of the species becomes next generation's mascot.
		sp.Mascot = pop.Members[sp.Members[0]]
		survivors = append(survivors, sp)
	}
	s.species = survivors
	return stagnantMembers
}

// AdjustedFitness divides each member's score by its species size before
// it feeds into selection, so oversized species are penalized.
func (s *Set) AdjustedFitness(pop *phenotype.Population) map[int]objective.Score {
	out := make(map[int]objective.Score, pop.Len())
	for _, sp := range s.species {
		size := float64(len(sp.Members))
		if size == 0 {
			continue
		}
		for _, idx := range sp.Members {
			m := pop.Members[idx]
			if m.Score == nil {
				continue
			}
			adjusted := make(objective.Score, len(m.Score))
			for i, v := range m.Score {
				adjusted[i] = v / size
			}
			out[idx] = adjusted
		}
	}
	return out
}

// Package engine implements the epoch pipeline that drives a Population
// through repeated selection/alteration/evaluation/replacement cycles
// until a caller-supplied stopping Predicate fires.
package engine

import (
	"github.com/evoengine/evo/front"
	"github.com/evoengine/evo/phenotype"
	"github.com/evoengine/evo/species"
)

// Ecosystem bundles a Population with its optional Species partition and
// Pareto Front archive, the unit the engine snapshots into every
// Generation.
type Ecosystem struct {
	Population *phenotype.Population
	Species    *species.Set
	Front      *front.Front
}

// Clone returns the copy embedded in a Generation snapshot: the population
// is deep-copied; the species set and front are shared by reference with
// the engine, which keeps updating them in place on later Steps, so a past
// Generation's Species and Front reflect the engine's current state, not
// the state at the time it was emitted.
func (e Ecosystem) Clone() Ecosystem {
	return Ecosystem{
		Population: e.Population.Clone(),
		Species:    e.Species,
		Front:      e.Front,
	}
}

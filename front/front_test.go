package front

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
)

func scored(score ...float64) *phenotype.Phenotype {
	g := genome.NewGenotype(genome.NewLinearChromosome(genome.Int, nil))
	p := phenotype.New(g, 0)
	p.Score = objective.Score(score)
	return p
}

func TestOfferRejectsDominatedCandidate(t *testing.T) {
	obj := objective.Multi(objective.Minimize, objective.Minimize)
	f := New(obj, 1, 10)
	f.Offer(scored(0, 0))
	f.Offer(scored(1, 1)) // dominated by (0,0)
	require.Equal(t, 1, f.Len())
}

func TestOfferRemovesMembersItDominates(t *testing.T) {
	obj := objective.Multi(objective.Minimize, objective.Minimize)
	f := New(obj, 1, 10)
	f.Offer(scored(1, 1))
	f.Offer(scored(0, 0)) // dominates the previous member
	require.Equal(t, 1, f.Len())
	assert.Equal(t, objective.Score{0, 0}, f.Members()[0].Score)
}

func TestOfferEvictsLeastCrowdedWhenOverMaxSize(t *testing.T) {
	obj := objective.Multi(objective.Minimize, objective.Minimize)
	f := New(obj, 1, 3)
	f.Offer(scored(0, 3))
	f.Offer(scored(1, 2))
	f.Offer(scored(2, 1))
	f.Offer(scored(3, 0))
	assert.Equal(t, 3, f.Len())
}

func TestEntropyIsZeroForEmptyFront(t *testing.T) {
	f := New(objective.Single(objective.Maximize), 0, 10)
	assert.Equal(t, 0.0, f.Entropy())
}

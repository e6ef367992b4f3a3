package phenotype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
)

func simpleGenotype() *genome.Genotype {
	genes := []genome.Gene{&genome.IntGene{Allele: 1, ValueRange: [2]int64{0, 5}, BoundRange: [2]int64{0, 5}}}
	return genome.NewGenotype(genome.NewLinearChromosome(genome.Int, genes))
}

func TestNewAssignsMonotonicallyIncreasingIDs(t *testing.T) {
	a := New(simpleGenotype(), 0)
	b := New(simpleGenotype(), 0)
	assert.Less(t, a.ID, b.ID)
}

func TestClearScoreAndHasScore(t *testing.T) {
	p := New(simpleGenotype(), 0)
	assert.False(t, p.HasScore())
	p.Score = objective.Score{1}
	assert.True(t, p.HasScore())
	p.ClearScore()
	assert.False(t, p.HasScore())
}

func TestCloneAsNewMintsFreshIDAndDropsScore(t *testing.T) {
	p := New(simpleGenotype(), 0)
	p.Score = objective.Score{5}
	clone := p.CloneAsNew(3)

	assert.NotEqual(t, p.ID, clone.ID)
	assert.Equal(t, 3, clone.BirthGen)
	assert.False(t, clone.HasScore())
	assert.True(t, clone.Genotype.Equals(p.Genotype))
}

func TestBumpNextIDNeverMovesBackward(t *testing.T) {
	before := NextID()
	BumpNextID(before) // already past: no-op
	assert.Equal(t, before+1, NextID())
}

func TestPopulationBestBreaksTiesByLowerID(t *testing.T) {
	a := New(simpleGenotype(), 0)
	b := New(simpleGenotype(), 0)
	a.Score = objective.Score{5}
	b.Score = objective.Score{5}
	pop := NewPopulation([]*Phenotype{b, a}) // b has the lower slice index but higher ID

	best := pop.Best(objective.Single(objective.Maximize))
	require.GreaterOrEqual(t, best, 0)
	assert.Equal(t, a.ID, pop.Members[best].ID)
}

func TestPopulationCloneIsIndependentOfOriginal(t *testing.T) {
	p := New(simpleGenotype(), 0)
	p.Score = objective.Score{1}
	pop := NewPopulation([]*Phenotype{p})

	clone := pop.Clone()
	clone.Members[0].Score[0] = 99
	assert.Equal(t, 1.0, pop.Members[0].Score[0])
}

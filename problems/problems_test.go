package problems

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/genome"
)

func TestStringMatchEvaluateCountsMatches(t *testing.T) {
	p := StringMatch("Hello, Radiate!")
	rng := rand.New(rand.NewSource(1))
	g := p.Encode(rng)
	require.Equal(t, 15, g.Chromosomes[0].Len())

	target := []rune("Hello, Radiate!")
	for i, r := range target {
		g.Chromosomes[0].Gene(i).(*genome.CharGene).Allele = r
	}
	assert.Equal(t, float64(15), p.Evaluate(g)[0])
	assert.Equal(t, "Hello, Radiate!", p.Decode(g))
}

func TestMinSumEvaluateSumsAlleles(t *testing.T) {
	p := MinSum(10, 100)
	rng := rand.New(rand.NewSource(2))
	g := p.Encode(rng)
	var want int64
	for i := 0; i < g.Chromosomes[0].Len(); i++ {
		want += g.Chromosomes[0].Gene(i).(*genome.IntGene).Allele
	}
	assert.Equal(t, float64(want), p.Evaluate(g)[0])

	for i := 0; i < g.Chromosomes[0].Len(); i++ {
		g.Chromosomes[0].Gene(i).(*genome.IntGene).Allele = 0
	}
	assert.Equal(t, float64(0), p.Evaluate(g)[0])
}

func TestNQueensConflictsZeroForKnownSolution(t *testing.T) {
	// A known 8-queens solution (0-indexed rows per column).
	solution := []int64{0, 4, 7, 5, 2, 6, 1, 3}
	assert.Equal(t, 0, Conflicts(solution))

	conflicting := []int64{0, 0, 0, 0, 0, 0, 0, 0}
	assert.Greater(t, Conflicts(conflicting), 0)
}

func TestRastriginZeroAtOrigin(t *testing.T) {
	assert.InDelta(t, 0, rastriginValue([]float64{0, 0}), 1e-9)
	assert.Greater(t, rastriginValue([]float64{1, 1}), 0.0)
}

func TestDTLZ2UnitSphereAtOrigin(t *testing.T) {
	// g(x) == 0 when the distance variables sit at 0.5.
	f := dtlz2Value([]float64{0.3, 0.7, 0.5, 0.5}, 3)
	assert.InDelta(t, 1.0, SphereRadiusSquared(f), 1e-9)
}

func TestDTLZ2RadiusExceedsUnitSphereAwayFromDistanceOptimum(t *testing.T) {
	f := dtlz2Value([]float64{0.1, 0.9, 0.2, 0.8}, 3)
	radius := SphereRadiusSquared(f)
	assert.Greater(t, radius, 1.0)
}

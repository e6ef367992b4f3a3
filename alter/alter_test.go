package alter

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/genome"
)

func intChromosome(values ...int64) *genome.LinearChromosome {
	genes := make([]genome.Gene, len(values))
	for i, v := range values {
		genes[i] = &genome.IntGene{Allele: v, ValueRange: [2]int64{0, 100}, BoundRange: [2]int64{0, 100}}
	}
	return genome.NewLinearChromosome(genome.Int, genes)
}

func TestUniformCrossoverProducesValidChildren(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a := intChromosome(1, 2, 3, 4)
	b := intChromosome(10, 20, 30, 40)

	cx := NewUniformCrossover(genome.Int)
	ca, cb, _ := cx.Cross(rng, a, b, 1.0)

	require.Equal(t, a.Len(), ca.Len())
	require.Equal(t, b.Len(), cb.Len())
	assert.True(t, ca.IsValid())
	assert.True(t, cb.IsValid())
}

func TestSwapMutationPreservesMultiset(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	chr := intChromosome(1, 2, 3, 4, 5)

	mu := NewSwapMutation(genome.Int)
	mutated, _ := mu.Mutate(rng, chr, 1.0)

	before := map[int64]int{}
	after := map[int64]int{}
	for i := 0; i < chr.Len(); i++ {
		before[chr.Gene(i).(*genome.IntGene).Allele]++
		after[mutated.Gene(i).(*genome.IntGene).Allele]++
	}
	assert.Equal(t, before, after)
}

func TestGaussianMutationRespectsSupportsGate(t *testing.T) {
	mu := NewGaussianMutation(0.1, genome.Float)
	assert.True(t, mu.Supports(genome.Float))
	assert.False(t, mu.Supports(genome.Int))
}

func TestPipelineApplyReportsChangedAndReturnsFullGenotypes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := genome.NewGenotype(intChromosome(1, 2, 3))
	b := genome.NewGenotype(intChromosome(4, 5, 6))

	p := NewPipeline(
		Step{Alterer: NewUniformCrossover(genome.Int), Rate: Fixed(1.0)},
		Step{Alterer: NewUniformMutation(genome.Int), Rate: Fixed(1.0)},
	)

	childA, childB, changed := p.Apply(rng, a, b, 0, true)
	require.NotNil(t, childA)
	require.NotNil(t, childB)
	assert.Equal(t, a.Len(), childA.Len())
	assert.Equal(t, b.Len(), childB.Len())
	assert.True(t, changed) // rate 1.0 uniform crossover swaps every position
}

func TestPMXCrossoverPreservesPermutationInvariant(t *testing.T) {
	table := genome.NewAlleleTable([]interface{}{0, 1, 2, 3, 4})
	rng := rand.New(rand.NewSource(4))
	a := genome.NewRandomPermutationChromosome(rng, table)
	b := genome.NewRandomPermutationChromosome(rng, table)

	cx := NewPMXCrossover()
	ca, cb, _ := cx.Cross(rng, a, b, 1.0)

	assert.True(t, ca.IsValid())
	assert.True(t, cb.IsValid())
}

package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveAddRespectsCapacity(t *testing.T) {
	a := NewArchive(2)
	a.add([]float64{1})
	a.add([]float64{2})
	a.add([]float64{3})

	require.Equal(t, 2, a.Len())
	snap := a.snapshot()
	assert.Equal(t, []float64{2}, snap[0])
	assert.Equal(t, []float64{3}, snap[1])
}

func TestArchiveUnboundedWhenCapacityZero(t *testing.T) {
	a := NewArchive(0)
	for i := 0; i < 5; i++ {
		a.add([]float64{float64(i)})
	}
	assert.Equal(t, 5, a.Len())
}

func TestNoveltySearchMeanKNearestExcludesSelfMatch(t *testing.T) {
	n := NoveltySearch[int]{K: 2}
	neighbors := [][]float64{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	dist := n.meanKNearest([]float64{0, 0}, neighbors)
	// nearest two distinct neighbors are at distance 1 and 2.
	assert.InDelta(t, 1.5, dist, 1e-9)
}

func TestNoveltySearchEvaluateBatchArchivesNovelPoints(t *testing.T) {
	n := NoveltySearch[int]{
		Behavior:         func(v int) []float64 { return []float64{float64(v)} },
		K:                1,
		ArchiveThreshold: 5,
		Archive:          NewArchive(0),
	}

	scores := n.evaluateBatch([]int{0, 100})
	require.Len(t, scores, 2)
	// 0 and 100 are each other's only neighbor: both score 100 novelty.
	assert.Equal(t, 100.0, scores[0][0])
	assert.Equal(t, 100.0, scores[1][0])
	assert.Equal(t, 2, n.Archive.Len())
}

func TestNoveltySearchEvaluateBatchSkipsLowNoveltyArchiving(t *testing.T) {
	n := NoveltySearch[int]{
		Behavior:         func(v int) []float64 { return []float64{float64(v)} },
		K:                1,
		ArchiveThreshold: 1000,
		Archive:          NewArchive(0),
	}

	n.evaluateBatch([]int{0, 1})
	assert.Equal(t, 0, n.Archive.Len())
}

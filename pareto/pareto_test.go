package pareto

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evoengine/evo/objective"
)

func TestFastNonDominatedSortSeparatesRanks(t *testing.T) {
	obj := objective.Multi(objective.Minimize, objective.Minimize)
	scores := []objective.Score{
		{0, 1}, // rank 0
		{1, 0}, // rank 0
		{2, 2}, // rank 1 (dominated by both above)
	}
	fronts := FastNonDominatedSort(scores, obj)
	assert.ElementsMatch(t, []int{0, 1}, fronts[0])
	assert.ElementsMatch(t, []int{2}, fronts[1])
}

func TestCrowdingDistanceGivesBoundaryPointsInfinity(t *testing.T) {
	obj := objective.Multi(objective.Minimize, objective.Minimize)
	scores := []objective.Score{{0, 2}, {1, 1}, {2, 0}}
	dist := CrowdingDistance([]int{0, 1, 2}, scores, obj)
	assert.True(t, math.IsInf(dist[0], 1))
	assert.True(t, math.IsInf(dist[2], 1))
	assert.False(t, math.IsInf(dist[1], 1))
}

func TestCrowdingDistanceSmallFrontIsAllInfinity(t *testing.T) {
	obj := objective.Multi(objective.Minimize, objective.Minimize)
	scores := []objective.Score{{0, 0}, {1, 1}}
	dist := CrowdingDistance([]int{0, 1}, scores, obj)
	assert.True(t, math.IsInf(dist[0], 1))
	assert.True(t, math.IsInf(dist[1], 1))
}

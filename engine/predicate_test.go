package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/evoengine/evo/engine"
)

func gen(index int, score float64, elapsed time.Duration) engine.Generation {
	return engine.Generation{Index: index, Score: []float64{score}, Elapsed: elapsed}
}

func TestScoreLimitStopsOnceThresholdReached(t *testing.T) {
	p := engine.ScoreLimit(10)
	assert.False(t, p(gen(0, 9, 0)))
	assert.True(t, p(gen(1, 10, 0)))
	assert.True(t, p(gen(2, 11, 0)))
}

func TestGenerationsLimitStopsAfterNGenerations(t *testing.T) {
	p := engine.GenerationsLimit(5)
	assert.False(t, p(gen(3, 0, 0)))
	assert.True(t, p(gen(4, 0, 0)))
}

func TestSecondsLimitAccumulatesAcrossCalls(t *testing.T) {
	p := engine.SecondsLimit(300 * time.Millisecond)
	assert.False(t, p(gen(0, 0, 100*time.Millisecond)))
	assert.False(t, p(gen(1, 0, 100*time.Millisecond)))
	assert.True(t, p(gen(2, 0, 150*time.Millisecond)))
}

func TestConvergenceLimitStopsOnceWindowStabilizes(t *testing.T) {
	p := engine.ConvergenceLimit(3, 0.01)
	assert.False(t, p(gen(0, 1.0, 0)))
	assert.False(t, p(gen(1, 5.0, 0)))
	assert.False(t, p(gen(2, 5.0, 0)))
	assert.True(t, p(gen(3, 5.001, 0)))
}

func TestOrStopsAsSoonAsAnyPredicateFires(t *testing.T) {
	p := engine.Or(engine.ScoreLimit(100), engine.GenerationsLimit(2))
	assert.False(t, p(gen(0, 0, 0)))
	assert.True(t, p(gen(1, 0, 0)))
}

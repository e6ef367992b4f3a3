package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeEvaluateWeightedSum(t *testing.T) {
	c := NewComposite(
		Term[int]{Name: "speed", Weight: 2, Fn: func(v int) float64 { return float64(v) }},
		Term[int]{Name: "accuracy", Weight: 0.5, Fn: func(v int) float64 { return float64(v * v) }},
	)

	score := c.Evaluate(3)
	assert.Equal(t, 2*3.0+0.5*9.0, score[0])
}

func TestCompositeBreakdownOrder(t *testing.T) {
	c := NewComposite(
		Term[int]{Name: "a", Weight: 1, Fn: func(v int) float64 { return 1 }},
		Term[int]{Name: "b", Weight: 1, Fn: func(v int) float64 { return 2 }},
	)

	assert.Equal(t, []float64{1, 2}, c.Breakdown(0))
}

func TestCompositeNoTerms(t *testing.T) {
	c := NewComposite[int]()
	assert.Equal(t, 0.0, c.Evaluate(42)[0])
}

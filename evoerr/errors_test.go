package evoerr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestWrappedErrorsUnwrapToSentinels(t *testing.T) {
	assert.True(t, errors.Is(Configuration("bad %s", "population_size"), ErrConfiguration))
	assert.True(t, errors.Is(Structural("duplicate allele"), ErrStructural))
	assert.True(t, errors.Is(Evaluation(7, "panicked: %v", "boom"), ErrEvaluation))
	assert.True(t, errors.Is(Executor("batch %d failed", 2), ErrExecutor))
	assert.True(t, errors.Is(Checkpoint("shape mismatch"), ErrCheckpoint))
}

func TestEvaluationIncludesPhenotypeID(t *testing.T) {
	err := Evaluation(42, "bad score")
	assert.Contains(t, err.Error(), "#42")
}

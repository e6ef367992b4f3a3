package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoengine/evo/engine"
	"github.com/evoengine/evo/problems"
)

func TestValidateFillsDocumentedDefaults(t *testing.T) {
	opts := engine.Options[[]int64]{Problem: problems.MinSum(4, 10)}
	require.NoError(t, opts.Validate())

	assert.Equal(t, 100, opts.PopulationSize)
	assert.Equal(t, 20, opts.MaxAge)
	assert.Equal(t, 0.8, opts.OffspringFraction)
	assert.Equal(t, 800, opts.FrontMinSize)
	assert.Equal(t, 900, opts.FrontMaxSize)
	assert.NotNil(t, opts.SurvivorSelector)
	assert.NotNil(t, opts.OffspringSelector)
	assert.NotNil(t, opts.Alterers)
	assert.NotNil(t, opts.Replacement)
	assert.NotNil(t, opts.Executor)
}

func TestValidateRejectsMissingProblem(t *testing.T) {
	opts := engine.Options[[]int64]{}
	assert.Error(t, opts.Validate())
}

func TestValidateRejectsInvalidOffspringFraction(t *testing.T) {
	opts := engine.Options[[]int64]{
		Problem:           problems.MinSum(4, 10),
		OffspringFraction: 1.5,
	}
	assert.Error(t, opts.Validate())
}

func TestValidateRejectsNegativePopulationSize(t *testing.T) {
	opts := engine.Options[[]int64]{
		Problem:        problems.MinSum(4, 10),
		PopulationSize: -1,
	}
	assert.Error(t, opts.Validate())
}

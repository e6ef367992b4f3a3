package evolog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevelAcceptsKnownLevels(t *testing.T) {
	defer SetLevel(LevelError)

	SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, Current)

	SetLevel("bogus")
	assert.Equal(t, LevelError, Current)
}

func TestAcceptsGatesByConfiguredLevel(t *testing.T) {
	defer SetLevel(LevelError)

	SetLevel(LevelWarn)
	assert.False(t, accepts(LevelDebug))
	assert.False(t, accepts(LevelInfo))
	assert.True(t, accepts(LevelWarn))
	assert.True(t, accepts(LevelError))
}

func TestSprintfFormatsOnlyWhenArgsPresent(t *testing.T) {
	assert.Equal(t, "plain", sprintf("plain"))
	assert.Equal(t, "value: 3", sprintf("value: %d", 3))
}

package erand

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedProducesIdenticalSubStreams(t *testing.T) {
	a := New(7)
	b := New(7)

	ra := a.Sub(3)
	rb := b.Sub(3)
	for i := 0; i < 5; i++ {
		assert.Equal(t, ra.Int63(), rb.Int63())
	}
}

func TestDifferentBatchIndicesDeriveIndependentStreams(t *testing.T) {
	p := New(7)
	ra := p.Sub(1)
	rb := p.Sub(2)
	assert.NotEqual(t, ra.Int63(), rb.Int63())
}

func TestSeedReportsConstructionValue(t *testing.T) {
	p := New(123)
	assert.Equal(t, int64(123), p.Seed())
}

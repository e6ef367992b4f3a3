package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestStatisticAddComputesMeanMinMax(t *testing.T) {
	s := NewStatistic()
	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Add(v)
	}
	assert.Equal(t, int64(5), s.Count())
	assert.InDelta(t, 3.0, s.Mean(), 1e-9)
	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 5.0, s.Max())
	assert.InDelta(t, 2.0, s.Variance(), 1e-9)
}

func TestStatisticStateRoundTripsThroughRestore(t *testing.T) {
	s := NewStatistic()
	for _, v := range []float64{1, 2, 3} {
		s.Add(v)
	}

	restored := RestoreStatistic(s.State())
	restored.Add(4)
	s.Add(4)

	assert.Equal(t, s.Count(), restored.Count())
	assert.InDelta(t, s.Mean(), restored.Mean(), 1e-12)
	assert.InDelta(t, s.Variance(), restored.Variance(), 1e-12)
	assert.InDelta(t, s.Skewness(), restored.Skewness(), 1e-9)
}

func TestStatisticMatchesGonumBatchMoments(t *testing.T) {
	samples := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	s := NewStatistic()
	for _, v := range samples {
		s.Add(v)
	}

	wantMean, wantSampleVar := stat.MeanVariance(samples, nil)
	n := float64(len(samples))
	wantPopVar := wantSampleVar * (n - 1) / n // Statistic.Variance is the population moment, not gonum's unbiased sample one

	assert.InDelta(t, wantMean, s.Mean(), 1e-9)
	assert.InDelta(t, wantPopVar, s.Variance(), 1e-9)
}

func TestTimeStatisticTracksDurations(t *testing.T) {
	ts := NewTimeStatistic()
	ts.AddDuration(100 * time.Millisecond)
	ts.AddDuration(200 * time.Millisecond)
	assert.Equal(t, 150*time.Millisecond, ts.MeanDuration())
}

func TestMetricSetStatisticCreatesOnceAndReuses(t *testing.T) {
	set := NewMetricSet()
	a := set.Statistic("score", TagScore)
	b := set.Statistic("score", TagScore)
	assert.Same(t, a, b)
	assert.Equal(t, []string{"score"}, set.Names())
	assert.Equal(t, []string{"score"}, set.ByTag(TagScore))
}

func TestRestoreMetricSetPreservesAccumulatorState(t *testing.T) {
	set := NewMetricSet()
	set.Statistic("score", TagScore).Add(1)
	set.Statistic("score", TagScore).Add(2)
	set.TimeStatistic("epoch", TagTime).AddDuration(10 * time.Millisecond)

	restored := RestoreMetricSet(set.State())
	require.ElementsMatch(t, set.Names(), restored.Names())

	original, _ := set.Lookup("score")
	again, _ := restored.Lookup("score")
	assert.Equal(t, original.(*Statistic).Count(), again.(*Statistic).Count())
	assert.Equal(t, original.(*Statistic).Mean(), again.(*Statistic).Mean())

	restoredTime, ok := restored.Lookup("epoch")
	require.True(t, ok)
	assert.Equal(t, int64(1), restoredTime.(*TimeStatistic).Count())
}

func TestSummaryReflectsCurrentAccumulatorValues(t *testing.T) {
	set := NewMetricSet()
	set.Statistic("x", TagScore).Add(10)
	summary := set.Summary()
	require.Contains(t, summary, "x")
	assert.Equal(t, int64(1), summary["x"].Count)
	assert.Equal(t, 10.0, summary["x"].Mean)
	assert.False(t, math.IsInf(summary["x"].Min, 1))
}

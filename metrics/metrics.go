// Package metrics implements the numerically stable incremental statistics
// component: Welford+Kahan running mean/variance, and the
// tagged MetricSet. The package's tests cross-check the incremental
// accumulator against the batch-computed moments of
// gonum.org/v1/gonum/stat (which trial's NPZ export also uses).
package metrics

import (
	"math"
	"time"
)

// Tag is drawn from the closed tag vocabulary of the constants below.
type Tag string

const (
	TagSelector     Tag = "Selector"
	TagAlterer      Tag = "Alterer"
	TagMutator      Tag = "Mutator"
	TagCrossover    Tag = "Crossover"
	TagSpecies      Tag = "Species"
	TagFailure      Tag = "Failure"
	TagAge          Tag = "Age"
	TagFront        Tag = "Front"
	TagDerived      Tag = "Derived"
	TagOther        Tag = "Other"
	TagStatistic    Tag = "Statistic"
	TagTime         Tag = "Time"
	TagDistribution Tag = "Distribution"
	TagScore        Tag = "Score"
	TagRate         Tag = "Rate"
)

// Statistic is a Welford+Kahan running accumulator of mean/variance/min/
// max/count/skew/kurtosis; update is O(1) per sample, O(1) memory.
type Statistic struct {
	count            int64
	mean, m2, m3, m4 float64
	compensation     float64 // Kahan compensation term for the mean update
	min, max         float64
}

// NewStatistic returns a zero-valued accumulator ready for Add.
func NewStatistic() *Statistic {
	return &Statistic{min: math.Inf(1), max: math.Inf(-1)}
}

// Add folds one sample into the accumulator using Welford's online
// algorithm for variance/skew/kurtosis, with a Kahan-compensated mean
// update to bound floating-point drift over long runs.
func (s *Statistic) Add(x float64) {
	s.count++
	n := float64(s.count)

	y := (x-s.mean)/n - s.compensation
	t := s.mean + y
	s.compensation = (t - s.mean) - y
	delta := x - s.mean
	s.mean = t

	delta2 := x - s.mean
	s.m4 += delta*delta2*delta2*delta2*(n-1)*(n*n-3*n+3)/(n*n*n) +
		6*delta2*delta2*s.m2/(n*n) - 4*delta2*s.m3/n
	s.m3 += delta*delta2*delta2*(n-1)*(n-2)/(n*n) - 3*delta2*s.m2/n
	s.m2 += delta * delta2

	if x < s.min {
		s.min = x
	}
	if x > s.max {
		s.max = x
	}
}

func (s *Statistic) Count() int64 { return s.count }
func (s *Statistic) Mean() float64 { return s.mean }
func (s *Statistic) Min() float64  { return s.min }
func (s *Statistic) Max() float64  { return s.max }

// Variance returns the population variance (divide by n, not n-1), matching
// the common habit of reporting population moments over small
// generation-sized samples.
func (s *Statistic) Variance() float64 {
	if s.count < 2 {
		return 0
	}
	return s.m2 / float64(s.count)
}

func (s *Statistic) StdDev() float64 { return math.Sqrt(s.Variance()) }

func (s *Statistic) Skewness() float64 {
	if s.count < 2 || s.m2 == 0 {
		return 0
	}
	n := float64(s.count)
	return (math.Sqrt(n) * s.m3) / math.Pow(s.m2, 1.5)
}

func (s *Statistic) Kurtosis() float64 {
	if s.count < 2 || s.m2 == 0 {
		return 0
	}
	n := float64(s.count)
	return (n*s.m4)/(s.m2*s.m2) - 3
}

// TimeStatistic wraps Statistic for duration-valued metrics.
type TimeStatistic struct {
	Statistic
}

func NewTimeStatistic() *TimeStatistic { return &TimeStatistic{*NewStatistic()} }

func (t *TimeStatistic) AddDuration(d time.Duration) { t.Add(float64(d)) }

func (t *TimeStatistic) MeanDuration() time.Duration { return time.Duration(t.Mean()) }

// StatisticSummary is a plain-data snapshot of a Statistic's derived
// moments (mean/min/max/stddev/count), for display and for callers that
// only want the numbers, not a resumable accumulator. Use State/Restore
// instead when the accumulator itself must survive a checkpoint
// round-trip exactly, since skewness/kurtosis and the Kahan compensation
// term don't round-trip through this view.
type StatisticSummary struct {
	Count    int64
	Mean     float64
	Min, Max float64
	StdDev   float64
}

// Summary snapshots this accumulator's derived moments into a plain,
// display-oriented value.
func (s *Statistic) Summary() StatisticSummary {
	return StatisticSummary{Count: s.count, Mean: s.mean, Min: s.min, Max: s.max, StdDev: s.StdDev()}
}

// StatisticState is a fully exported mirror of every field State needs to
// resume an accumulator exactly where it left off — unlike
// StatisticSummary, this round-trips skewness/kurtosis and the Kahan
// compensation term too.
type StatisticState struct {
	Count            int64
	Mean, M2, M3, M4 float64
	Compensation     float64
	Min, Max         float64
}

// State snapshots every field Add touches, for exact resumption via
// RestoreStatistic.
func (s *Statistic) State() StatisticState {
	return StatisticState{
		Count: s.count, Mean: s.mean, M2: s.m2, M3: s.m3, M4: s.m4,
		Compensation: s.compensation, Min: s.min, Max: s.max,
	}
}

// RestoreStatistic rebuilds an accumulator from a previously captured
// State, ready to resume Add calls as if it had never stopped.
func RestoreStatistic(st StatisticState) *Statistic {
	return &Statistic{
		count: st.Count, mean: st.Mean, m2: st.M2, m3: st.M3, m4: st.M4,
		compensation: st.Compensation, min: st.Min, max: st.Max,
	}
}

// entry pairs a named metric with its tag set.
type entry struct {
	name string
	tags []Tag
	stat interface{} // *Statistic or *TimeStatistic
}

// MetricSet exposes lookup by name and iteration by tag.
type MetricSet struct {
	byName map[string]*entry
	order  []string
}

func NewMetricSet() *MetricSet {
	return &MetricSet{byName: map[string]*entry{}}
}

// Statistic returns (creating if absent) the named numeric statistic with
// the given tags.
func (s *MetricSet) Statistic(name string, tags ...Tag) *Statistic {
	e, ok := s.byName[name]
	if !ok {
		e = &entry{name: name, tags: tags, stat: NewStatistic()}
		s.byName[name] = e
		s.order = append(s.order, name)
	}
	return e.stat.(*Statistic)
}

// TimeStatistic returns (creating if absent) the named duration statistic.
func (s *MetricSet) TimeStatistic(name string, tags ...Tag) *TimeStatistic {
	e, ok := s.byName[name]
	if !ok {
		e = &entry{name: name, tags: append(tags, TagTime), stat: NewTimeStatistic()}
		s.byName[name] = e
		s.order = append(s.order, name)
	}
	return e.stat.(*TimeStatistic)
}

// Lookup returns the named metric's accumulator (either type) and whether
// it exists.
func (s *MetricSet) Lookup(name string) (interface{}, bool) {
	e, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return e.stat, true
}

// ByTag returns the names of every metric carrying tag, in insertion
// order.
func (s *MetricSet) ByTag(tag Tag) []string {
	var out []string
	for _, name := range s.order {
		e := s.byName[name]
		for _, t := range e.tags {
			if t == tag {
				out = append(out, name)
				break
			}
		}
	}
	return out
}

// Names returns every metric name in insertion order.
func (s *MetricSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Summary snapshots every metric's derived moments by name, for display
// and inspection. TimeStatistic entries summarize their embedded
// Statistic.
func (s *MetricSet) Summary() map[string]StatisticSummary {
	out := make(map[string]StatisticSummary, len(s.order))
	for _, name := range s.order {
		switch st := s.byName[name].stat.(type) {
		case *Statistic:
			out[name] = st.Summary()
		case *TimeStatistic:
			out[name] = st.Statistic.Summary()
		}
	}
	return out
}

// EntryState is a fully exported mirror of one named metric's tags, kind,
// and accumulator state, the unit SetState carries for a checkpoint to
// resume a MetricSet exactly.
type EntryState struct {
	Name   string
	Tags   []Tag
	IsTime bool
	Stat   StatisticState
}

// SetState is a fully exported, insertion-order-preserving mirror of a
// MetricSet, built only from State()/Names()/ByTag()-equivalent public
// data so it gob-encodes without reaching into byName/order directly.
type SetState struct {
	Entries []EntryState
}

// State snapshots every metric's full accumulator state and tags, in
// insertion order, for exact resumption via RestoreMetricSet.
func (s *MetricSet) State() SetState {
	out := SetState{Entries: make([]EntryState, 0, len(s.order))}
	for _, name := range s.order {
		e := s.byName[name]
		switch st := e.stat.(type) {
		case *Statistic:
			out.Entries = append(out.Entries, EntryState{Name: name, Tags: e.tags, Stat: st.State()})
		case *TimeStatistic:
			out.Entries = append(out.Entries, EntryState{Name: name, Tags: e.tags, IsTime: true, Stat: st.Statistic.State()})
		}
	}
	return out
}

// RestoreMetricSet rebuilds a MetricSet from a previously captured
// SetState, ready to resume Add/AddDuration calls exactly where the
// checkpointed set left off.
func RestoreMetricSet(st SetState) *MetricSet {
	s := NewMetricSet()
	for _, e := range st.Entries {
		var stat interface{}
		if e.IsTime {
			stat = &TimeStatistic{Statistic: *RestoreStatistic(e.Stat)}
		} else {
			stat = RestoreStatistic(e.Stat)
		}
		s.byName[e.Name] = &entry{name: e.Name, tags: e.Tags, stat: stat}
		s.order = append(s.order, e.Name)
	}
	return s
}

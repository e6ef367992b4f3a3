package engine

import (
	"context"
	"io"
	"math/rand"
	"time"

	"github.com/evoengine/evo/checkpoint"
	"github.com/evoengine/evo/eval"
	"github.com/evoengine/evo/evoerr"
	"github.com/evoengine/evo/evolog"
	"github.com/evoengine/evo/front"
	"github.com/evoengine/evo/metrics"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/phenotype"
	"github.com/evoengine/evo/replace"
	"github.com/evoengine/evo/selector"
	"github.com/evoengine/evo/species"

	"github.com/evoengine/evo/erand"
)

// Engine drives the epoch pipeline for a single run: survivor selection,
// offspring production, replacement, evaluation, speciation, and front
// maintenance, generation after generation, until a composable Predicate
// decides to stop.
type Engine[T any] struct {
	opts     Options[T]
	provider *erand.Provider
	control  *Control

	index     int
	ecosystem Ecosystem
	stats     *metrics.MetricSet
}

// New validates opts, fills in defaults, and builds the unevaluated
// generation-0 population.
func New[T any](opts Options[T]) (*Engine[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seed := opts.RandomSeed
	if !opts.HasRandomSeed {
		seed = time.Now().UnixNano()
	}
	provider := erand.New(seed)
	rng := provider.Rand()

	members := make([]*phenotype.Phenotype, opts.PopulationSize)
	switch {
	case len(opts.InitialPopulation) == 0:
		for i := range members {
			members[i] = phenotype.New(opts.Problem.Encode(rng), 0)
		}
	case len(opts.InitialPopulation) == opts.PopulationSize:
		for i, g := range opts.InitialPopulation {
			members[i] = phenotype.New(g, 0)
		}
	default:
		return nil, evoerr.Configuration(
			"initial population has %d members, want population_size %d",
			len(opts.InitialPopulation), opts.PopulationSize)
	}

	e := &Engine[T]{
		opts:    opts,
		provider: provider,
		control: newControl(),
		ecosystem: Ecosystem{
			Population: phenotype.NewPopulation(members),
			Species:    species.NewSet(),
			Front:      front.New(opts.Objective, opts.FrontMinSize, opts.FrontMaxSize),
		},
		stats: metrics.NewMetricSet(),
	}
	return e, nil
}

// Resume rebuilds an Engine from a previously checkpointed seed,
// generation index, Ecosystem snapshot, and running metrics, ready to
// continue from Step or Run. opts must describe the same run that
// produced the checkpoint; seed takes the place of opts.RandomSeed so this
// Engine's generation-keyed RNG sub-streams (see Step) line up with the
// run being resumed. stats may be nil, in which case the resumed Engine
// starts its MetricSet fresh; pass the checkpoint's restored accumulator
// to have the resumed run's statistics continue rather than restart.
func Resume[T any](opts Options[T], seed int64, generationIndex int, eco Ecosystem, stats *metrics.MetricSet) (*Engine[T], error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if stats == nil {
		stats = metrics.NewMetricSet()
	}
	return &Engine[T]{
		opts:      opts,
		provider:  erand.New(seed),
		control:   newControl(),
		index:     generationIndex,
		ecosystem: eco,
		stats:     stats,
	}, nil
}

// ResumeFromCheckpoint rebuilds an Engine from a checkpoint.Checkpoint
// decoded by checkpoint.Load or flat.Load. prototype must be passed to
// Load exactly as documented there; cp's Population/Species/Front are
// adopted as-is rather than cloned, since the checkpoint already owns an
// independent copy. cp.Metrics is adopted too, so the resumed run's
// running statistics pick up exactly where the checkpointed run left off.
func ResumeFromCheckpoint[T any](opts Options[T], cp checkpoint.Checkpoint) (*Engine[T], error) {
	return Resume(opts, cp.Seed, cp.GenerationIndex, Ecosystem{
		Population: cp.Population,
		Species:    cp.Species,
		Front:      cp.Front,
	}, cp.Metrics)
}

// Checkpoint snapshots this Engine's seed, next-generation index, and
// Ecosystem to w via checkpoint.Save, ready to be handed to
// ResumeFromCheckpoint later.
func (e *Engine[T]) Checkpoint(w io.Writer) error {
	snap := e.Snapshot()
	return checkpoint.Save(w, e.Seed(), e.index, snap.Population, snap.Species, snap.Front, e.stats)
}

// Control returns the handle for pausing, resuming, and stopping this run.
func (e *Engine[T]) Control() *Control { return e.control }

// Ecosystem returns the current generation's population, species
// partition, and front, reference-shared (not cloned) with the driver.
func (e *Engine[T]) Ecosystem() Ecosystem { return e.ecosystem }

// Seed returns the seed this Engine's RNG provider was constructed with,
// needed alongside Index and a Snapshot to checkpoint a run.
func (e *Engine[T]) Seed() int64 { return e.provider.Seed() }

// Snapshot returns a copy of the current Ecosystem whose population is
// deep-copied; its species set and front are the driver's live objects
// (see Ecosystem.Clone).
func (e *Engine[T]) Snapshot() Ecosystem { return e.ecosystem.Clone() }

// Metrics returns the engine's running MetricSet.
func (e *Engine[T]) Metrics() *metrics.MetricSet { return e.stats }

// Index returns the index of the most recently completed generation, or -1
// before the first Step.
func (e *Engine[T]) Index() int { return e.index - 1 }

// Step runs exactly one epoch of the pipeline and returns the resulting
// Generation. The first call evaluates the seed population (generation 0)
// without producing offspring; every later call advances to the next
// generation in full: survivor selection, offspring parent selection and
// alteration, replacement, evaluation, speciation, front maintenance, and
// metrics flush.
func (e *Engine[T]) Step() Generation {
	start := time.Now()
	o := &e.opts
	pop := e.ecosystem.Population
	generation := e.index

	// Every generation draws from its own sub-stream, derived solely from
	// (seed, generation) rather than carried-over RNG position. A resumed
	// Engine reproduces this exactly as long as it shares the seed and
	// starts counting generations where the checkpoint left off — no
	// mid-stream RNG position needs to survive a checkpoint round-trip.
	rng := e.provider.Sub(generation)

	var replaceMetrics replace.Metrics
	if generation == 0 {
		evolog.Infof("engine: evaluating seed population (size=%d)", pop.Len())
	} else {
		next := e.advance(rng, generation)
		pop = next
		e.ecosystem.Population = next

		refreshRankOrder[T](o.Replacement, pop, o.Objective, rng)
		rm := replace.Run[T](rng, pop, o.Problem, o.Replacement, generation, o.MaxAge)
		replaceMetrics.ReplacedAge += rm.ReplacedAge
		replaceMetrics.ReplacedInvalid += rm.ReplacedInvalid
	}

	evalMetrics, err := eval.Evaluate[T](pop, o.Problem, o.Objective, o.Executor)
	if err != nil {
		return e.emit(generation, start, err)
	}

	stagnant := e.ecosystem.Species.Update(pop, o.Diversity, o.SpeciesThreshold, o.Objective, o.MaxSpeciesAge)
	if len(stagnant) > 0 {
		refreshRankOrder[T](o.Replacement, pop, o.Objective, rng)
		for _, idx := range stagnant {
			pop.Members[idx] = o.Replacement.Replace(rng, pop, o.Problem, generation)
		}
		if _, err := eval.Evaluate[T](pop, o.Problem, o.Objective, o.Executor); err != nil {
			return e.emit(generation, start, err)
		}
	}

	for _, m := range pop.Members {
		e.ecosystem.Front.Offer(m)
	}

	e.flushMetrics(evalMetrics, replaceMetrics, len(stagnant))
	e.index = generation + 1
	return e.emit(generation, start, nil)
}

// refreshRankOrder recomputes and installs the best-first member ranking a
// RankSetter replacement strategy (EliteReplace) reads from, since that
// ranking goes stale the instant pop's membership or scores change.
func refreshRankOrder[T any](strategy replace.Strategy[T], pop *phenotype.Population, obj objective.Objective, rng *rand.Rand) {
	rs, ok := strategy.(replace.RankSetter)
	if !ok {
		return
	}
	rs.SetOrder(selector.Elite{}.Select(pop, obj, pop.Len(), rng))
}

// advance produces generation+1's population from the current one:
// opts.OffspringFraction of the slots are filled by altering selected
// parent pairs, the remainder carry forward unaltered survivors. Selection
// reads species-adjusted scores when diversity is enabled, restoring every
// member's raw score before this returns so replacement, evaluation, and
// front maintenance keep seeing true fitness.
func (e *Engine[T]) advance(rng *rand.Rand, generation int) *phenotype.Population {
	o := &e.opts
	pop := e.ecosystem.Population
	size := pop.Len()

	if o.Diversity != nil {
		restore := applyAdjustedScores(pop, e.ecosystem.Species.AdjustedFitness(pop))
		defer restore()
	}

	numOffspring := int(float64(size)*o.OffspringFraction + 0.5)
	if numOffspring > size {
		numOffspring = size
	}
	numSurvivors := size - numOffspring

	next := make([]*phenotype.Phenotype, 0, size)

	survivorIdx := o.SurvivorSelector.Select(pop, o.Objective, numSurvivors, rng)
	for _, idx := range survivorIdx {
		next = append(next, pop.Members[idx])
	}

	for len(next) < size {
		parents := o.OffspringSelector.Select(pop, o.Objective, 2, rng)
		pa, pb := pop.Members[parents[0]], pop.Members[parents[1]]
		aFitter := pa.Score != nil && pb.Score != nil && o.Objective.Better(pa.Score, pb.Score)

		// New phenotypes start unscored regardless of whether Apply changed
		// anything, so there is no separate score-clearing step here.
		ca, cb, _ := o.Alterers.Apply(rng, pa.Genotype, pb.Genotype, generation+1, aFitter)
		next = append(next, phenotype.New(ca, generation+1))
		if len(next) >= size {
			break
		}
		next = append(next, phenotype.New(cb, generation+1))
	}

	return phenotype.NewPopulation(next[:size])
}

// applyAdjustedScores overwrites pop's member scores in place with
// species-adjusted values, returning a closure that restores the original
// raw scores. This biases survivor/offspring-parent selection toward
// within-species fairness without leaking adjusted values into
// replacement, re-evaluation, or front maintenance.
func applyAdjustedScores(pop *phenotype.Population, adjusted map[int]objective.Score) func() {
	if len(adjusted) == 0 {
		return func() {}
	}
	raw := make(map[int]objective.Score, len(adjusted))
	for idx, score := range adjusted {
		raw[idx] = pop.Members[idx].Score
		pop.Members[idx].Score = score
	}
	return func() {
		for idx, score := range raw {
			pop.Members[idx].Score = score
		}
	}
}

func (e *Engine[T]) flushMetrics(em eval.Metrics, rm replace.Metrics, stagnantReplaced int) {
	o := &e.opts
	pop := e.ecosystem.Population

	if !o.Objective.IsMultiObjective() {
		scoreStat := e.stats.Statistic("score", metrics.TagScore, metrics.TagStatistic)
		for _, m := range pop.Members {
			if m.Score != nil {
				scoreStat.Add(m.Score[0])
			}
		}
	}

	e.stats.Statistic("species.count", metrics.TagSpecies, metrics.TagStatistic).Add(float64(len(e.ecosystem.Species.All())))
	e.stats.Statistic("front.size", metrics.TagFront, metrics.TagStatistic).Add(float64(e.ecosystem.Front.Len()))
	if e.index%10 == 0 {
		e.stats.Statistic("front.entropy", metrics.TagFront, metrics.TagDistribution).Add(e.ecosystem.Front.Entropy())
	}
	e.stats.Statistic("replaced.age", metrics.TagAge, metrics.TagStatistic).Add(float64(rm.ReplacedAge))
	e.stats.Statistic("replaced.invalid", metrics.TagFailure, metrics.TagStatistic).Add(float64(rm.ReplacedInvalid))
	e.stats.Statistic("replaced.stagnant", metrics.TagSpecies, metrics.TagStatistic).Add(float64(stagnantReplaced))
	e.stats.TimeStatistic("eval.elapsed", metrics.TagTime).AddDuration(em.Elapsed)
}

func (e *Engine[T]) emit(generation int, start time.Time, err error) Generation {
	g := Generation{
		Index:     generation,
		Ecosystem: e.ecosystem.Clone(),
		Objective: e.opts.Objective,
		Metrics:   e.stats,
		Elapsed:   time.Since(start),
		Err:       err,
	}
	if err != nil {
		evolog.Errorf("engine: generation %d failed: %v", generation, err)
		return g
	}
	if best := e.ecosystem.Population.Best(e.opts.Objective); best >= 0 {
		winner := e.ecosystem.Population.Members[best]
		g.Score = winner.Score
		g.BestValue = e.opts.Problem.Decode(winner.Genotype)
	}
	evolog.Debugf("engine: generation %d done in %s (front=%d, species=%d)",
		generation, g.Elapsed, e.ecosystem.Front.Len(), len(e.ecosystem.Species.All()))
	return g
}

// Run drives Step in a loop until predicate reports true for the just-
// emitted Generation, ctx is cancelled, or Control is Stopped, and returns
// the final Generation. The current step is always allowed to finish
// before a pause or cancellation takes effect.
func (e *Engine[T]) Run(ctx context.Context, predicate Predicate) Generation {
	e.control.toRunning()
	var last Generation
	for {
		select {
		case <-ctx.Done():
			last.Err = ctx.Err()
			return last
		default:
		}
		if e.control.isStopped() {
			return last
		}
		e.control.waitIfPaused()
		if e.control.isStopped() {
			return last
		}

		last = e.Step()
		if last.Failed() {
			e.control.Stop()
			return last
		}
		if predicate != nil && predicate(last) {
			e.control.Stop()
			return last
		}
	}
}

// Generations runs Run in a background goroutine, delivering every emitted
// Generation on the returned channel; the channel closes once Run returns.
// Grounded on the lazy-stream idiom for long-running producers: callers
// that stop reading simply leave the goroutine blocked on a full channel
// send, so they should drain it to completion or Stop the Control to free
// it.
func (e *Engine[T]) Generations(ctx context.Context, predicate Predicate) <-chan Generation {
	out := make(chan Generation)
	go func() {
		defer close(out)
		e.control.toRunning()
		for {
			select {
			case <-ctx.Done():
				return
			default:
			}
			if e.control.isStopped() {
				return
			}
			e.control.waitIfPaused()
			if e.control.isStopped() {
				return
			}

			g := e.Step()
			select {
			case out <- g:
			case <-ctx.Done():
				return
			}
			if g.Failed() {
				e.control.Stop()
				return
			}
			if predicate != nil && predicate(g) {
				e.control.Stop()
				return
			}
		}
	}()
	return out
}

package engine

import (
	"github.com/evoengine/evo/alter"
	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/evoerr"
	"github.com/evoengine/evo/executor"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/objective"
	"github.com/evoengine/evo/replace"
	"github.com/evoengine/evo/selector"
	"github.com/evoengine/evo/species"
)

// Options configures an Engine as a flat, mostly-YAML-serializable
// parameter bag. Fields left at their zero value are filled in by
// Validate from the documented defaults.
type Options[T any] struct {
	PopulationSize    int     `yaml:"population_size"`
	MaxAge            int     `yaml:"max_age"`
	OffspringFraction float64 `yaml:"offspring_fraction"`
	FrontMinSize      int     `yaml:"front_min_size"`
	FrontMaxSize      int     `yaml:"front_max_size"`
	SpeciesThreshold  float64 `yaml:"species_threshold"`
	MaxSpeciesAge     int     `yaml:"max_species_age"`
	RandomSeed        int64   `yaml:"random_seed"`
	HasRandomSeed     bool    `yaml:"-"`

	Objective         objective.Objective    `yaml:"-"`
	SurvivorSelector  selector.Selector      `yaml:"-"`
	OffspringSelector selector.Selector      `yaml:"-"`
	Alterers          *alter.Pipeline        `yaml:"-"`
	Replacement       replace.Strategy[T]    `yaml:"-"`
	Diversity         species.DistanceMetric `yaml:"-"`
	Executor          executor.Executor      `yaml:"-"`
	Problem           codec.Problem[T]       `yaml:"-"`

	// InitialPopulation optionally seeds generation 0 with pre-built
	// genotypes instead of Problem.Encode-generated ones. Its length must
	// equal PopulationSize when set.
	InitialPopulation []*genome.Genotype `yaml:"-"`
}

// Validate fills in documented defaults for zero-valued fields and rejects
// configurations the engine cannot run: reject, don't silently coerce,
// anything that would make the run meaningless.
func (o *Options[T]) Validate() error {
	if o.PopulationSize == 0 {
		o.PopulationSize = 100
	}
	if o.PopulationSize < 1 {
		return evoerr.Configuration("engine: population_size must be positive, got %d", o.PopulationSize)
	}
	if o.MaxAge == 0 {
		o.MaxAge = 20
	}
	if o.MaxAge < 1 {
		return evoerr.Configuration("engine: max_age must be positive, got %d", o.MaxAge)
	}
	if o.OffspringFraction == 0 {
		o.OffspringFraction = 0.8
	}
	if o.OffspringFraction < 0 || o.OffspringFraction > 1 {
		return evoerr.Configuration("engine: offspring_fraction must be in [0,1], got %f", o.OffspringFraction)
	}
	if o.FrontMinSize == 0 && o.FrontMaxSize == 0 {
		o.FrontMinSize, o.FrontMaxSize = 800, 900
	}
	if o.FrontMaxSize < o.FrontMinSize {
		return evoerr.Configuration("engine: front_max_size (%d) must be >= front_min_size (%d)", o.FrontMaxSize, o.FrontMinSize)
	}
	if o.Objective.Arity() == 0 {
		o.Objective = objective.Single(objective.Maximize)
	}
	if o.SurvivorSelector == nil {
		o.SurvivorSelector = selector.Tournament{K: 3}
	}
	if o.OffspringSelector == nil {
		o.OffspringSelector = selector.Roulette{}
	}
	if o.Alterers == nil {
		o.Alterers = alter.NewPipeline()
	}
	if o.Replacement == nil {
		o.Replacement = replace.EncodeReplace[T]{}
	}
	if o.SpeciesThreshold == 0 {
		o.SpeciesThreshold = 0.5
	}
	if o.MaxSpeciesAge == 0 {
		o.MaxSpeciesAge = 20
	}
	if o.Executor == nil {
		o.Executor = executor.Serial{}
	}
	if o.Problem == nil {
		return evoerr.Configuration("engine: a codec or problem is required")
	}
	return nil
}

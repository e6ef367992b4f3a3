// Command evo-run is the runner boilerplate around the engine and its
// built-in problems: a flag-driven switch over the built-in problems,
// each dispatching to flag-configured engine.Options.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/evoengine/evo/alter"
	"github.com/evoengine/evo/engine"
	"github.com/evoengine/evo/evolog"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/problems"
	"github.com/evoengine/evo/selector"
	"github.com/evoengine/evo/species"
	"github.com/evoengine/evo/trial"
)

func main() {
	problemName := flag.String("problem", "minsum", "Built-in problem to run. [stringmatch, minsum, nqueens, rastrigin, dtlz2]")
	population := flag.Int("population", 200, "Population size.")
	generations := flag.Int("generations", 500, "Maximum number of generations.")
	seed := flag.Int64("seed", 1, "Random seed.")
	logLevel := flag.String("log_level", "error", "Logger level. [debug, info, warn, error]")
	outPath := flag.String("out", "", "If set, write the best-score-per-generation NPZ archive here.")

	flag.Parse()
	evolog.SetLevel(evolog.Level(*logLevel))

	var err error
	switch *problemName {
	case "stringmatch":
		err = runStringMatch(*population, *generations, *seed, *outPath)
	case "minsum":
		err = runMinSum(*population, *generations, *seed, *outPath)
	case "nqueens":
		err = runNQueens(*population, *generations, *seed, *outPath)
	case "rastrigin":
		err = runRastrigin(*population, *generations, *seed, *outPath)
	case "dtlz2":
		err = runDTLZ2(*population, *generations, *seed, *outPath)
	default:
		log.Fatalf("evo-run: unknown problem %q", *problemName)
	}
	if err != nil {
		log.Fatalf("evo-run: %v", err)
	}
}

func writeNPZ[T any](outPath string, batch trial.Batch[T]) error {
	if outPath == "" {
		return nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return batch.WriteNPZ(f)
}

func runStringMatch(population, generations int, seed int64, outPath string) error {
	target := "Hello, Radiate!"
	opts := engine.Options[string]{
		PopulationSize:    population,
		Objective:         problems.StringMatchObjective(),
		Problem:           problems.StringMatch(target),
		Diversity:         species.HammingDistance{},
		RandomSeed:        seed,
		HasRandomSeed:     true,
		SurvivorSelector:  selector.Elite{},
		OffspringSelector: selector.Boltzmann{T: 4.0},
		Alterers: alter.NewPipeline(
			alter.Step{Alterer: alter.NewUniformCrossover(genome.Char), Rate: alter.Fixed(0.7)},
			alter.Step{Alterer: alter.NewUniformMutation(genome.Char), Rate: alter.Fixed(0.05)},
		),
	}
	e, err := engine.New(opts)
	if err != nil {
		return err
	}
	t := trial.Run(context.Background(), 0, e, engine.Or(
		engine.ScoreLimit(float64(len(target))),
		engine.GenerationsLimit(generations),
	))
	fmt.Println(t)
	if best, ok := t.Best(opts.Objective); ok {
		fmt.Printf("best: %q (score=%v)\n", best.BestValue, best.Score)
	}
	return writeNPZ(outPath, trial.Batch[string]{Trials: []trial.Trial{t}})
}

func runMinSum(population, generations int, seed int64, outPath string) error {
	opts := engine.Options[[]int64]{
		PopulationSize:   population,
		Objective:        problems.MinSumObjective(),
		Problem:          problems.MinSum(10, 100),
		Diversity:        species.HammingDistance{},
		RandomSeed:       seed,
		HasRandomSeed:    true,
		SurvivorSelector: selector.Tournament{K: 3},
		Alterers: alter.NewPipeline(
			alter.Step{Alterer: alter.NewUniformMutation(genome.Int), Rate: alter.Fixed(0.1)},
		),
	}
	e, err := engine.New(opts)
	if err != nil {
		return err
	}
	t := trial.Run(context.Background(), 0, e, engine.Or(
		engine.ScoreLimit(0),
		engine.GenerationsLimit(generations),
	))
	fmt.Println(t)
	if best, ok := t.Best(opts.Objective); ok {
		fmt.Printf("best: %v (score=%v)\n", best.BestValue, best.Score)
	}
	return writeNPZ(outPath, trial.Batch[[]int64]{Trials: []trial.Trial{t}})
}

func runNQueens(population, generations int, seed int64, outPath string) error {
	opts := engine.Options[[]int64]{
		PopulationSize:   population,
		Objective:        problems.NQueensObjective(),
		Problem:          problems.NQueens(32),
		Diversity:        species.HammingDistance{},
		RandomSeed:       seed,
		HasRandomSeed:    true,
		SurvivorSelector: selector.Tournament{K: 3},
		Alterers: alter.NewPipeline(
			alter.Step{Alterer: alter.NewUniformMutation(genome.Int), Rate: alter.Fixed(0.1)},
		),
	}
	e, err := engine.New(opts)
	if err != nil {
		return err
	}
	t := trial.Run(context.Background(), 0, e, engine.Or(
		engine.ScoreLimit(0),
		engine.GenerationsLimit(generations),
	))
	fmt.Println(t)
	if best, ok := t.Best(opts.Objective); ok {
		fmt.Printf("best: %v (conflicts=%v)\n", best.BestValue, best.Score)
	}
	return writeNPZ(outPath, trial.Batch[[]int64]{Trials: []trial.Trial{t}})
}

func runRastrigin(population, generations int, seed int64, outPath string) error {
	opts := engine.Options[[]float64]{
		PopulationSize:   population,
		Objective:        problems.RastriginObjective(),
		Problem:          problems.Rastrigin(2),
		Diversity:        species.HammingDistance{},
		RandomSeed:       seed,
		HasRandomSeed:    true,
		SurvivorSelector: selector.Tournament{K: 3},
		Alterers: alter.NewPipeline(
			alter.Step{Alterer: alter.NewBlendCrossover(0.5, genome.Float), Rate: alter.Fixed(0.7)},
			alter.Step{Alterer: alter.NewGaussianMutation(0.1, genome.Float), Rate: alter.Fixed(0.1)},
		),
	}
	e, err := engine.New(opts)
	if err != nil {
		return err
	}
	t := trial.Run(context.Background(), 0, e, engine.GenerationsLimit(generations))
	fmt.Println(t)
	if best, ok := t.Best(opts.Objective); ok {
		fmt.Printf("best: %v (score=%v)\n", best.BestValue, best.Score)
	}
	return writeNPZ(outPath, trial.Batch[[]float64]{Trials: []trial.Trial{t}})
}

func runDTLZ2(population, generations int, seed int64, outPath string) error {
	opts := engine.Options[[]float64]{
		PopulationSize:   population,
		Objective:        problems.DTLZ2Objective(3),
		Problem:          problems.DTLZ2(4, 3),
		Diversity:        species.HammingDistance{},
		RandomSeed:       seed,
		HasRandomSeed:    true,
		SurvivorSelector: selector.NSGA2{},
		Alterers: alter.NewPipeline(
			alter.Step{Alterer: alter.NewSBXCrossover(15, genome.Float), Rate: alter.Fixed(0.9)},
			alter.Step{Alterer: alter.NewPolynomialMutation(20, genome.Float), Rate: alter.Fixed(0.1)},
		),
	}
	e, err := engine.New(opts)
	if err != nil {
		return err
	}
	t := trial.Run(context.Background(), 0, e, engine.GenerationsLimit(generations))
	fmt.Println(t)
	last := t.Generations[len(t.Generations)-1]
	fmt.Printf("front size: %d\n", last.Ecosystem.Front.Len())
	return writeNPZ(outPath, trial.Batch[[]float64]{Trials: []trial.Trial{t}})
}

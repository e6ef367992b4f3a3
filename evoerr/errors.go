// Package evoerr defines the engine's error taxonomy.
package evoerr

import "github.com/pkg/errors"

// Sentinel errors identifying the taxonomy category. Use errors.Is against
// these after unwrapping a wrapped error returned by the engine.
var (
	// ErrConfiguration covers missing codec/fitness, invalid population_size,
	// max_age < 1, offspring_fraction out of range, and Score arity mismatch
	// detected at build time. The engine refuses to build.
	ErrConfiguration = errors.New("evo: configuration error")

	// ErrStructural covers a gene/chromosome/genotype invariant violation
	// discovered after alteration. Recovered locally via replacement; never
	// escapes the engine loop, but exported so replacement strategies and
	// tests can recognize it.
	ErrStructural = errors.New("evo: structural invariant violation")

	// ErrEvaluation covers a user fitness function panicking, returning the
	// wrong score arity, or returning NaN. Fatal.
	ErrEvaluation = errors.New("evo: evaluation error")

	// ErrExecutor covers a worker task failing to complete. Fatal; the
	// engine transitions to Stopped.
	ErrExecutor = errors.New("evo: executor error")

	// ErrCheckpoint covers a malformed checkpoint blob or a prototype
	// genotype shape that doesn't match the one the blob was saved
	// against.
	ErrCheckpoint = errors.New("evo: checkpoint error")
)

// Configuration wraps ErrConfiguration with context.
func Configuration(format string, args ...interface{}) error {
	return errors.Wrapf(ErrConfiguration, format, args...)
}

// Structural wraps ErrStructural with context.
func Structural(format string, args ...interface{}) error {
	return errors.Wrapf(ErrStructural, format, args...)
}

// Evaluation wraps ErrEvaluation with context, attaching the offending
// phenotype id.
func Evaluation(phenotypeID int64, format string, args ...interface{}) error {
	return errors.Wrapf(ErrEvaluation, "phenotype #%d: "+format, append([]interface{}{phenotypeID}, args...)...)
}

// Executor wraps ErrExecutor with context.
func Executor(format string, args ...interface{}) error {
	return errors.Wrapf(ErrExecutor, format, args...)
}

// Checkpoint wraps ErrCheckpoint with context.
func Checkpoint(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCheckpoint, format, args...)
}

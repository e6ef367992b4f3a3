// Package checkpoint serializes a run's seed, generation index, and
// Ecosystem snapshot to an opaque blob and restores them later, so a run
// can be stopped and resumed without replaying generation 0..N. The wire
// format is intentionally unspecified beyond "symmetric with this
// package's own Save/Load": callers never parse it by hand.
//
// Resume correctness does not depend on this package at all: the engine's
// generation-keyed RNG sub-streams (engine.Engine.Step) reproduce a run's
// draws from (seed, generation index) alone, so a checkpoint only needs
// to carry the Ecosystem state those sub-streams act on, never raw RNG
// position.
package checkpoint

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"encoding/gob"
	"io"

	"github.com/google/uuid"

	"github.com/evoengine/evo/evoerr"
	"github.com/evoengine/evo/front"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/metrics"
	"github.com/evoengine/evo/phenotype"
	"github.com/evoengine/evo/species"
)

// runNamespace roots every RunID derivation, keeping this package's uuids
// out of any other namespace a caller might mint uuid.NewSHA1 ids under.
var runNamespace = uuid.MustParse("a723caa9-3e37-4d1f-8a1e-0c2d2e8f5b6a")

// RunID deterministically derives a run identifier from seed alone: two
// checkpoints saved with the same seed always carry the same RunID, so
// Resume callers can assert they're continuing the run they think they
// are before trusting the rest of the blob.
func RunID(seed int64) uuid.UUID {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seed))
	return uuid.NewSHA1(runNamespace, buf[:])
}

// ecosystem mirrors engine.Ecosystem's three fields without importing the
// engine package, so this package's only dependency on the driver is
// structural.
type ecosystem struct {
	Population *phenotype.Population
	Species    *species.Set
	Front      *front.Front
}

type blob struct {
	GenerationIndex int
	Seed            int64
	RunID           uuid.UUID
	Ecosystem       ecosystemDTO
	Metrics         metrics.SetState
}

// Checkpoint is the decoded content of a Load: enough to call
// engine.Resume(opts, Seed, GenerationIndex, Ecosystem, Metrics) — or,
// more conveniently, engine.ResumeFromCheckpoint(opts, cp).
type Checkpoint struct {
	Seed            int64
	RunID           uuid.UUID
	GenerationIndex int
	Population      *phenotype.Population
	Species         *species.Set
	Front           *front.Front
	// Metrics is the live accumulator exactly as it stood when Save was
	// called, restored via metrics.RestoreMetricSet rather than a
	// display-only StatisticSummary, since S6-style resume correctness
	// requires the resumed run's running statistics to pick up where the
	// original left off, not restart from zero samples.
	Metrics *metrics.MetricSet
}

// Save gzip-compresses a gob encoding of seed, generationIndex, pop,
// speciesSet, and frontArchive to w, alongside the full accumulator state
// of stats so a resumed run's metrics continue rather than restart. stats
// may be nil.
func Save(w io.Writer, seed int64, generationIndex int, pop *phenotype.Population, speciesSet *species.Set, frontArchive *front.Front, stats *metrics.MetricSet) error {
	b := blob{
		GenerationIndex: generationIndex,
		Seed:            seed,
		RunID:           RunID(seed),
		Ecosystem: ecosystemToDTO(ecosystem{
			Population: pop,
			Species:    speciesSet,
			Front:      frontArchive,
		}),
	}
	if stats != nil {
		b.Metrics = stats.State()
	}

	gz := gzip.NewWriter(w)
	if err := gob.NewEncoder(gz).Encode(b); err != nil {
		return evoerr.Checkpoint("encode: %v", err)
	}
	return gz.Close()
}

// Load decodes a blob written by Save. prototype must be a genotype of
// the same shape the checkpoint was saved against — typically
// opts.Problem.Encode(rng) called against the same Problem/Codec the
// original run used — since permutation and tree/graph chromosomes
// relink to prototype's shared AlleleTable/NodeStore rather than
// serializing it themselves.
func Load(r io.Reader, prototype *genome.Genotype) (Checkpoint, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return Checkpoint{}, evoerr.Checkpoint("gzip: %v", err)
	}
	defer gz.Close()

	var b blob
	if err := gob.NewDecoder(gz).Decode(&b); err != nil {
		return Checkpoint{}, evoerr.Checkpoint("decode: %v", err)
	}

	eco, err := ecosystemFromDTO(b.Ecosystem, prototype)
	if err != nil {
		return Checkpoint{}, err
	}

	return Checkpoint{
		Seed:            b.Seed,
		RunID:           b.RunID,
		GenerationIndex: b.GenerationIndex,
		Population:      eco.Population,
		Species:         eco.Species,
		Front:           eco.Front,
		Metrics:         metrics.RestoreMetricSet(b.Metrics),
	}, nil
}

// Bytes is a convenience wrapper around Save writing to an in-memory
// buffer, handy for tests and for storage backends that want a []byte
// rather than a stream.
func Bytes(seed int64, generationIndex int, pop *phenotype.Population, speciesSet *species.Set, frontArchive *front.Front, stats *metrics.MetricSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := Save(&buf, seed, generationIndex, pop, speciesSet, frontArchive, stats); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Package flat is an alternate checkpoint serializer behind the same
// Save/Load surface as checkpoint, framing the payload with a
// flatbuffers header (checkpoint_generated.go) instead of a second gob
// value. Seed and GenerationIndex read without touching or copying the
// payload bytes, which matters for callers polling a checkpoint's header
// (e.g. a trial dashboard) without decoding its full Ecosystem.
//
// The Ecosystem payload itself is unchanged: it is still the gob+gzip
// blob checkpoint.Save/Load already implement, since the shared-pointer
// relinking that genotype round-tripping needs (AlleleTable/NodeStore)
// gains nothing from a flatbuffers encoding.
package flat

import (
	"bytes"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/evoengine/evo/checkpoint"
	"github.com/evoengine/evo/evoerr"
	"github.com/evoengine/evo/front"
	"github.com/evoengine/evo/genome"
	"github.com/evoengine/evo/metrics"
	"github.com/evoengine/evo/phenotype"
	"github.com/evoengine/evo/species"
)

// Save writes seed, generationIndex, and the Ecosystem described by pop,
// speciesSet, and frontArchive as a flatbuffers-framed checkpoint.
func Save(w io.Writer, seed int64, generationIndex int, pop *phenotype.Population, speciesSet *species.Set, frontArchive *front.Front, stats *metrics.MetricSet) error {
	payload, err := checkpoint.Bytes(seed, generationIndex, pop, speciesSet, frontArchive, stats)
	if err != nil {
		return err
	}

	b := flatbuffers.NewBuilder(64 + len(payload))
	payloadOff := b.CreateByteVector(payload)

	HeaderStart(b)
	HeaderAddSeed(b, seed)
	HeaderAddGenerationIndex(b, int64(generationIndex))
	HeaderAddPayload(b, payloadOff)
	header := HeaderEnd(b)
	b.Finish(header)

	_, err = w.Write(b.FinishedBytes())
	if err != nil {
		return evoerr.Checkpoint("write: %v", err)
	}
	return nil
}

// Load decodes a checkpoint written by Save. prototype has the same role
// as in checkpoint.Load.
func Load(r io.Reader, prototype *genome.Genotype) (checkpoint.Checkpoint, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return checkpoint.Checkpoint{}, evoerr.Checkpoint("read: %v", err)
	}

	h := GetRootAsHeader(buf, 0)
	cp, err := checkpoint.Load(bytes.NewReader(h.PayloadBytes()), prototype)
	if err != nil {
		return checkpoint.Checkpoint{}, err
	}

	// The header's own Seed/GenerationIndex are authoritative; they are
	// identical to the payload's by construction but read here without
	// re-touching the payload, matching what a header-only caller would see.
	cp.Seed = h.Seed()
	cp.GenerationIndex = int(h.GenerationIndex())
	return cp, nil
}

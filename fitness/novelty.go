package fitness

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/evoengine/evo/codec"
	"github.com/evoengine/evo/objective"
)

// BehaviorFunc maps a decoded value onto its behavior-space descriptor —
// the vector Novelty Search measures diversity over, instead of raw task
// fitness.
type BehaviorFunc[T any] func(T) []float64

// Archive accumulates behavior descriptors across generations; each
// NoveltySearch batch is scored against it. Protected by a single mutex.
// Appends happen at the end of each evaluation batch, on the executor
// goroutine that evaluated it, not on the driver thread; with several
// batches in flight they can contend, and the archive's order follows
// the order in which batches finish.
type Archive struct {
	mu       sync.Mutex
	points   [][]float64
	capacity int
}

// NewArchive returns an empty archive. capacity <= 0 means unbounded;
// otherwise the oldest points are evicted once capacity is exceeded.
func NewArchive(capacity int) *Archive {
	return &Archive{capacity: capacity}
}

func (a *Archive) snapshot() [][]float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([][]float64, len(a.points))
	copy(out, a.points)
	return out
}

func (a *Archive) add(p []float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.points = append(a.points, p)
	if a.capacity > 0 && len(a.points) > a.capacity {
		a.points = a.points[len(a.points)-a.capacity:]
	}
}

// Len reports the archive's current size.
func (a *Archive) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.points)
}

// NoveltySearch scores each individual by the mean Euclidean distance to
// its K nearest neighbors in behavior space — measured against the
// archive plus the rest of the current evaluation batch — then archives
// individuals novel enough to clear ArchiveThreshold.
type NoveltySearch[T any] struct {
	Behavior         BehaviorFunc[T]
	K                int
	ArchiveThreshold float64
	Archive          *Archive
}

// Wrap adapts c into a BatchProblem scored by novelty. Batching is
// required here: a point's novelty depends on its peers within the same
// evaluation round, not just the persistent archive.
func (n NoveltySearch[T]) Wrap(c codec.Codec[T]) codec.BatchProblem[T] {
	return codec.FromBatchCodec[T](c, n.evaluateBatch)
}

func (n NoveltySearch[T]) evaluateBatch(values []T) []objective.Score {
	behaviors := make([][]float64, len(values))
	for i, v := range values {
		behaviors[i] = n.Behavior(v)
	}

	neighbors := append(n.Archive.snapshot(), behaviors...)
	scores := make([]objective.Score, len(values))
	for i, b := range behaviors {
		scores[i] = objective.Score{n.meanKNearest(b, neighbors)}
	}

	for i, b := range behaviors {
		if scores[i][0] >= n.ArchiveThreshold {
			n.Archive.add(b)
		}
	}
	return scores
}

// meanKNearest returns the mean Euclidean distance from b to its K
// nearest points in neighbors, dropping zero-distance self-matches
// before ranking.
func (n NoveltySearch[T]) meanKNearest(b []float64, neighbors [][]float64) float64 {
	dists := make([]float64, 0, len(neighbors))
	for _, p := range neighbors {
		d := floats.Distance(b, p, 2)
		if d == 0 {
			continue
		}
		dists = append(dists, d)
	}
	if len(dists) == 0 {
		return 0
	}
	sort.Float64s(dists)

	k := n.K
	if k < 1 {
		k = 1
	}
	if k > len(dists) {
		k = len(dists)
	}
	sum := 0.0
	for _, d := range dists[:k] {
		sum += d
	}
	return sum / float64(k)
}

package trial

import (
	"fmt"
	"io"

	"github.com/sbinet/npyio/npz"
	"gonum.org/v1/gonum/stat"
)

// WriteNPZ dumps every trial's best-score series plus a per-trial
// mean/variance summary to an NPZ archive.
func (b Batch[T]) WriteNPZ(w io.Writer) error {
	means := make([]float64, len(b.Trials))
	vars := make([]float64, len(b.Trials))
	for i, t := range b.Trials {
		scores := t.BestScores()
		if len(scores) == 0 {
			continue
		}
		means[i], vars[i] = stat.MeanVariance(scores, nil)
	}

	out := npz.NewWriter(w)
	if err := out.Write("trials_best_score_mean", means); err != nil {
		return err
	}
	if err := out.Write("trials_best_score_variance", vars); err != nil {
		return err
	}
	for i, t := range b.Trials {
		if err := out.Write(fmt.Sprintf("trial_%d_best_scores", i), t.BestScores()); err != nil {
			return err
		}
	}
	return out.Close()
}

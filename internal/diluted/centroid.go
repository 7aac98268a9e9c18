package diluted

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteBatch reports a training batch with a missing point.
	// The batch is dropped wholesale; the caller may request it again.
	ErrIncompleteBatch = errors.New("incomplete batch")

	// ErrClassCount reports per-class tables whose lengths disagree.
	ErrClassCount = errors.New("per-class table sizes disagree")
)

// Accumulate folds a batch of labeled points into the per-class running-mean
// centroids. weights counts the points already folded into each class and is
// updated in place; the caller must share both tables across batches so the
// running mean is never reset.
//
// A batch containing a missing point is rejected before any point is folded
// in. Points labeled outside [0, len(centroids)) are skipped.
func Accumulate(batch []Point, centroids []Centroid, weights []int) error {
	if len(weights) != len(centroids) {
		return fmt.Errorf("%w: %d centroids, %d weights", ErrClassCount, len(centroids), len(weights))
	}
	for _, p := range batch {
		if p.Missing() {
			return ErrIncompleteBatch
		}
	}
	for _, p := range batch {
		if p.Class < 0 || p.Class >= len(centroids) {
			continue
		}
		c := &centroids[p.Class]
		if w := float64(weights[p.Class]); w == 0 {
			c.X, c.Y = p.X, p.Y
		} else {
			c.X = (w*c.X + p.X) / (w + 1)
			c.Y = (w*c.Y + p.Y) / (w + 1)
		}
		weights[p.Class]++
	}
	return nil
}

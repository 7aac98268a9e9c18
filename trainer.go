package dknn

import "github.com/dilutedml/dknn/internal/diluted"

// Batches chunks a training set into batches of the configured batch size.
// The returned batches are subslices of points; no copies are made.
func (m *Model) Batches(points []Point) [][]Point {
	var batches [][]Point
	for start := 0; start < len(points); start += m.batchSize {
		end := min(start+m.batchSize, len(points))
		batches = append(batches, points[start:end])
	}
	return batches
}

// Fit runs the given number of training passes over the batches. Each pass
// folds every batch into the centroids, then feeds the distance between each
// point and its own class centroid back into that class's dilution
// parameters, once per labeled sample.
//
// The epoch count is owned by the caller; the adaptation has no saturation,
// so repeated passes grow the overconfidence radius or the spread without
// bound. An incomplete batch aborts the pass with ErrIncompleteBatch before
// any of its points are folded in; earlier batches stay folded and the call
// may be retried with a completed batch.
func (m *Model) Fit(batches [][]Point, epochs int) error {
	for range epochs {
		for _, batch := range batches {
			if err := m.Accumulate(batch); err != nil {
				return err
			}
			for _, p := range batch {
				if p.Class < 0 || p.Class >= len(m.centroids) {
					continue
				}
				m.Adapt(p.Class, diluted.Distance(p, m.centroids[p.Class]))
			}
		}
	}
	return nil
}

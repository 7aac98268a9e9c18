package diluted

import "fmt"

// Classify scores the query point against every class and returns the index
// of the highest confidence together with the per-class scores. Overtaking
// requires a strictly greater confidence, so the first class reaching the
// maximum wins ties, with class 0 as the initial candidate.
//
// The class count is len(centroids); params must cover at least that many
// slots.
func Classify(p Point, params []Params, centroids []Centroid) (int, []float64, error) {
	if len(params) < len(centroids) {
		return 0, nil, fmt.Errorf("%w: %d centroids, %d parameter slots", ErrClassCount, len(centroids), len(params))
	}
	best := 0
	confidences := make([]float64, len(centroids))
	for class := range centroids {
		conf, err := Confidence(Distance(p, centroids[class]), params[class])
		if err != nil {
			return 0, nil, fmt.Errorf("class %d: %w", class, err)
		}
		confidences[class] = conf
		if conf > confidences[best] {
			best = class
		}
	}
	return best, confidences, nil
}

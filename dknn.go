// Package dknn implements diluted nearest-centroid classification: a single
// adaptive centroid and confidence function per class in place of a full
// neighbor search, trading classification fidelity for a compute and memory
// footprint small enough for microcontroller-class deployments.
//
// Each class carries a pair of dilution parameters. The overconfidence value
// is the radius of a certainty circle around the class centroid inside which
// any query scores 1.0; the spread controls how quickly confidence decays
// outside that circle. Classification computes the Euclidean distance from
// the query to every centroid, converts it into a bounded confidence and
// picks the arg-max class.
package dknn

import (
	"fmt"

	"github.com/dilutedml/dknn/internal/diluted"
)

type (
	// Point is a single 2-D observation. Class carries the ground-truth
	// label in training batches and is ignored on query points.
	Point = diluted.Point

	// Centroid is the running mean position of all training points
	// assigned to a class.
	Centroid = diluted.Centroid

	// Parameters is the adaptive (spread, overconfidence) pair of a class.
	Parameters = diluted.Params

	// AdaptSteps holds the fixed increments applied on each adaptation.
	AdaptSteps = diluted.AdaptSteps
)

var (
	// ErrIncompleteBatch reports a training batch with a missing point;
	// the batch is dropped wholesale and may be requested again.
	ErrIncompleteBatch = diluted.ErrIncompleteBatch

	// ErrInvalidParameters reports a zero or negative spread or a negative
	// overconfidence radius.
	ErrInvalidParameters = diluted.ErrInvalidParams

	// ErrClassCount reports per-class tables whose sizes disagree with the
	// class count.
	ErrClassCount = diluted.ErrClassCount
)

// Missing returns the sentinel marking an absent slot in a training batch.
func Missing() Point { return diluted.Missing() }

// Distance returns the Euclidean distance between a point and a centroid.
func Distance(p Point, c Centroid) float64 { return diluted.Distance(p, c) }

// Confidence converts a distance into a bounded score under the given
// parameters. See Model.Decide for the classification rule built on it.
func Confidence(distance float64, params Parameters) (float64, error) {
	return diluted.Confidence(distance, params)
}

// Classify scores point p against caller-owned parameter and centroid tables
// and returns the winning class index. The class count is len(centroids).
// This is a convenience wrapper for callers managing their own tables;
// Model bundles the tables with their lifecycle.
func Classify(p Point, params []Parameters, centroids []Centroid) (int, error) {
	best, _, err := diluted.Classify(p, params, centroids)
	return best, err
}

// Accumulate folds a batch of labeled points into caller-owned centroid and
// weight tables. The tables must be shared by reference across batches so
// the running mean is never reset.
func Accumulate(batch []Point, centroids []Centroid, weights []int) error {
	return diluted.Accumulate(batch, centroids, weights)
}

// Adapt feeds one observed distance back into a caller-owned parameter
// table. An out-of-range class is silently ignored.
func Adapt(params []Parameters, class int, distance float64, steps AdaptSteps) {
	diluted.Adapt(params, class, distance, steps)
}

// Model owns the per-class parameter, centroid and weight tables of one
// classifier instance. The tables are created once and mutated in place by
// training; accessors hand out the live slices so a training loop and the
// aggregation share the same state.
//
// A Model is not safe for concurrent use. Hosts with more than one logical
// thread must serialize every call touching the same instance.
type Model struct {
	params    []Parameters
	centroids []Centroid
	weights   []int
	steps     AdaptSteps
	batchSize int
}

// New initializes a classifier for a fixed number of classes. Every
// per-class table is sized to exactly classCount; the parameters start at
// the defaults unless overridden by options.
func New(classCount int, opts ...Option) (*Model, error) {
	if classCount < 1 {
		return nil, fmt.Errorf("%w: class count %d", ErrClassCount, classCount)
	}
	m := &Model{
		params:    make([]Parameters, classCount),
		centroids: make([]Centroid, classCount),
		weights:   make([]int, classCount),
		steps:     diluted.DefaultSteps(),
		batchSize: DefaultBatchSize,
	}
	diluted.InitParams(m.params)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Classes returns the number of class slots.
func (m *Model) Classes() int { return len(m.centroids) }

// Params returns the live per-class parameter table.
func (m *Model) Params() []Parameters { return m.params }

// Centroids returns the live per-class centroid table.
func (m *Model) Centroids() []Centroid { return m.centroids }

// Weights returns the live per-class counts of points folded into each
// centroid. Classification never consults these; they exist for the
// aggregation and for callers checking how much a class has been trained.
func (m *Model) Weights() []int { return m.weights }

// Trained reports whether at least one point has been folded into the class.
// Before that, the centroid is conventionally (0,0) and must not be trusted.
func (m *Model) Trained(class int) bool {
	return class >= 0 && class < len(m.weights) && m.weights[class] > 0
}

// Accumulate folds a batch of labeled points into the running-mean centroids.
// A batch containing a missing point is rejected with ErrIncompleteBatch and
// leaves the tables untouched.
func (m *Model) Accumulate(batch []Point) error {
	return diluted.Accumulate(batch, m.centroids, m.weights)
}

// Adapt feeds one observed distance back into the dilution parameters of the
// given ground-truth class. Callers drive this exactly once per labeled
// training sample. An out-of-range class is silently ignored.
func (m *Model) Adapt(class int, distance float64) {
	diluted.Adapt(m.params, class, distance, m.steps)
}

// Classify returns the arg-max class for the query point.
func (m *Model) Classify(p Point) (int, error) {
	best, _, err := diluted.Classify(p, m.params, m.centroids)
	return best, err
}

// Decide returns the winning class together with every per-class confidence,
// for callers that need the scores as well as the decision.
func (m *Model) Decide(p Point) (int, []float64, error) {
	return diluted.Classify(p, m.params, m.centroids)
}

// Confidences returns the per-class confidence scores for the query point.
func (m *Model) Confidences(p Point) ([]float64, error) {
	_, confidences, err := diluted.Classify(p, m.params, m.centroids)
	return confidences, err
}

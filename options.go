package dknn

import (
	"fmt"

	"github.com/dilutedml/dknn/internal/diluted"
)

// Defaults of the configuration surface. Spread is 1/ln(2); overconfidence
// is the initial certainty-circle radius. Epoch count belongs to the caller
// driving the training loop and is exported here only as the conventional
// starting value.
const (
	DefaultSpread         = diluted.DefaultSpread
	DefaultOverconfidence = diluted.DefaultOverconfidence
	DefaultSpreadStep     = diluted.DefaultSpreadStep
	DefaultRadiusStep     = diluted.DefaultRadiusStep
	DefaultBatchSize      = 50
	DefaultEpochs         = 1000
)

// Option configures a Model at initialization.
type Option func(*Model) error

// WithDefaults overrides the initial spread and overconfidence of every
// class slot. Spread must be positive, overconfidence non-negative.
func WithDefaults(spread, overconfidence float64) Option {
	return func(m *Model) error {
		if spread <= 0 || overconfidence < 0 {
			return fmt.Errorf("%w: spread=%v overconfidence=%v", ErrInvalidParameters, spread, overconfidence)
		}
		for i := range m.params {
			m.params[i] = Parameters{Spread: spread, Overconfidence: overconfidence}
		}
		return nil
	}
}

// WithAdaptSteps overrides the fixed increments the adaptation adds to the
// spread and the certainty radius.
func WithAdaptSteps(spread, radius float64) Option {
	return func(m *Model) error {
		if spread < 0 || radius < 0 {
			return fmt.Errorf("%w: adapt steps spread=%v radius=%v", ErrInvalidParameters, spread, radius)
		}
		m.steps = AdaptSteps{Spread: spread, Radius: radius}
		return nil
	}
}

// WithBatchSize sets the number of points per aggregation call used when the
// model chunks a training set into batches.
func WithBatchSize(n int) Option {
	return func(m *Model) error {
		if n < 1 {
			return fmt.Errorf("batch size must be positive, got %d", n)
		}
		m.batchSize = n
		return nil
	}
}

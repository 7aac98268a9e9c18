package dknn_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilutedml/dknn"
)

func TestNew(t *testing.T) {
	test := []struct {
		name    string
		classes int
		opts    []dknn.Option
		wantErr error
	}{
		{"defaults", 3, nil, nil},
		{"custom defaults", 4, []dknn.Option{dknn.WithDefaults(2.5, 1)}, nil},
		{"zero classes", 0, nil, dknn.ErrClassCount},
		{"negative classes", -2, nil, dknn.ErrClassCount},
		{"zero spread", 3, []dknn.Option{dknn.WithDefaults(0, 1)}, dknn.ErrInvalidParameters},
		{"negative radius", 3, []dknn.Option{dknn.WithDefaults(1, -1)}, dknn.ErrInvalidParameters},
		{"negative adapt step", 3, []dknn.Option{dknn.WithAdaptSteps(-0.01, 0.05)}, dknn.ErrInvalidParameters},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			m, err := dknn.New(tt.classes, tt.opts...)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "error should wrap expected")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.classes, m.Classes())
			assert.Len(t, m.Params(), tt.classes)
			assert.Len(t, m.Centroids(), tt.classes)
			assert.Len(t, m.Weights(), tt.classes)
		})
	}

	t.Run("configuration surface defaults", func(t *testing.T) {
		// The conventional values from the configuration surface: the
		// epoch count is owned by the caller driving Fit, the rest seed
		// fresh models.
		assert.Equal(t, 1.442, dknn.DefaultSpread)
		assert.Equal(t, 10.0, dknn.DefaultOverconfidence)
		assert.Equal(t, 0.01, dknn.DefaultSpreadStep)
		assert.Equal(t, 0.05, dknn.DefaultRadiusStep)
		assert.Equal(t, 50, dknn.DefaultBatchSize)
		assert.Equal(t, 1000, dknn.DefaultEpochs)
	})

	t.Run("options override every slot", func(t *testing.T) {
		m, err := dknn.New(3, dknn.WithDefaults(2, 0.5))
		require.NoError(t, err)
		for _, p := range m.Params() {
			assert.Equal(t, dknn.Parameters{Spread: 2, Overconfidence: 0.5}, p)
		}
	})
}

func TestModelAccumulateAndClassify(t *testing.T) {
	m, err := dknn.New(3)
	require.NoError(t, err)

	batch := []dknn.Point{
		{X: 0, Y: 0, Class: 0},
		{X: 10, Y: 10, Class: 1},
		{X: -10, Y: -10, Class: 2},
	}
	require.NoError(t, m.Accumulate(batch))

	for class := range 3 {
		assert.True(t, m.Trained(class), "class %d", class)
	}
	assert.False(t, m.Trained(3))
	assert.False(t, m.Trained(-1))

	class, err := m.Classify(dknn.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, class)

	best, confidences, err := m.Decide(dknn.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, best)
	assert.Equal(t, 1.0, confidences[0])

	scores, err := m.Confidences(dknn.Point{X: 0, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, confidences, scores)
	assert.Len(t, scores, 3)
}

func TestModelAdapt(t *testing.T) {
	m, err := dknn.New(2, dknn.WithAdaptSteps(0.1, 0.2))
	require.NoError(t, err)

	m.Adapt(0, dknn.DefaultOverconfidence+5)
	assert.InDelta(t, dknn.DefaultSpread+0.1, m.Params()[0].Spread, 1e-12)

	m.Adapt(1, 0.5)
	assert.InDelta(t, dknn.DefaultOverconfidence+0.2, m.Params()[1].Overconfidence, 1e-12)

	// Out-of-range classes are a no-op.
	before := append([]dknn.Parameters(nil), m.Params()...)
	m.Adapt(2, 100)
	m.Adapt(-1, 100)
	assert.Equal(t, before, m.Params())
}

func TestModelBatches(t *testing.T) {
	m, err := dknn.New(2, dknn.WithBatchSize(4))
	require.NoError(t, err)

	points := make([]dknn.Point, 10)
	batches := m.Batches(points)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 4)
	assert.Len(t, batches[1], 4)
	assert.Len(t, batches[2], 2)

	assert.Nil(t, m.Batches(nil))
}

func TestModelFit(t *testing.T) {
	t.Run("tight cluster grows the radius", func(t *testing.T) {
		m, err := dknn.New(1)
		require.NoError(t, err)

		batch := []dknn.Point{
			{X: 0, Y: 0, Class: 0},
			{X: 1, Y: 0, Class: 0},
			{X: 0, Y: 1, Class: 0},
		}
		require.NoError(t, m.Fit([][]dknn.Point{batch}, 5))

		// Every observed distance stays inside the default radius, so
		// only the radius moves: 5 epochs x 3 points x the default step.
		assert.InDelta(t, dknn.DefaultOverconfidence+15*dknn.DefaultRadiusStep, m.Params()[0].Overconfidence, 1e-9)
		assert.Equal(t, dknn.DefaultSpread, m.Params()[0].Spread)
		assert.Equal(t, 15, m.Weights()[0])
	})

	t.Run("incomplete batch aborts", func(t *testing.T) {
		m, err := dknn.New(1)
		require.NoError(t, err)

		err = m.Fit([][]dknn.Point{{{X: 1, Y: 1, Class: 0}, dknn.Missing()}}, 3)
		assert.True(t, errors.Is(err, dknn.ErrIncompleteBatch), "error should wrap ErrIncompleteBatch")
		assert.Equal(t, 0, m.Weights()[0], "nothing folded from the dropped batch")
	})
}

func TestCallerOwnedTables(t *testing.T) {
	// The package-level operations work over caller-owned tables shared by
	// reference between aggregation, adaptation and classification.
	params := []dknn.Parameters{
		{Spread: 1, Overconfidence: 1},
		{Spread: 1, Overconfidence: 1},
	}
	centroids := make([]dknn.Centroid, 2)
	weights := make([]int, 2)

	require.NoError(t, dknn.Accumulate([]dknn.Point{
		{X: 0, Y: 0, Class: 0},
		{X: 30, Y: 30, Class: 1},
	}, centroids, weights))
	assert.Equal(t, []int{1, 1}, weights)

	dknn.Adapt(params, 0, 0.25, dknn.AdaptSteps{Spread: 0.01, Radius: 0.05})
	assert.InDelta(t, 1.05, params[0].Overconfidence, 1e-12)

	class, err := dknn.Classify(dknn.Point{X: 29, Y: 30}, params, centroids)
	require.NoError(t, err)
	assert.Equal(t, 1, class)
}

package diluted

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulate(t *testing.T) {
	t.Run("first point becomes the centroid", func(t *testing.T) {
		centroids := make([]Centroid, 2)
		weights := make([]int, 2)
		err := Accumulate([]Point{{X: 3.5, Y: -2, Class: 1}}, centroids, weights)
		require.NoError(t, err)
		assert.Equal(t, Centroid{X: 3.5, Y: -2}, centroids[1])
		assert.Equal(t, []int{0, 1}, weights)
		assert.Equal(t, Centroid{}, centroids[0], "other class untouched")
	})

	t.Run("two points average exactly", func(t *testing.T) {
		centroids := make([]Centroid, 1)
		weights := make([]int, 1)
		batch := []Point{
			{X: 2, Y: 8, Class: 0},
			{X: 6, Y: -4, Class: 0},
		}
		require.NoError(t, Accumulate(batch, centroids, weights))
		assert.Equal(t, Centroid{X: 4, Y: 2}, centroids[0])
		assert.Equal(t, 2, weights[0])
	})

	t.Run("running mean survives batch boundaries", func(t *testing.T) {
		centroids := make([]Centroid, 1)
		weights := make([]int, 1)
		require.NoError(t, Accumulate([]Point{{X: 0, Y: 0}, {X: 2, Y: 2}}, centroids, weights))
		require.NoError(t, Accumulate([]Point{{X: 7, Y: 10}}, centroids, weights))
		assert.InDelta(t, 3, centroids[0].X, 1e-12)
		assert.InDelta(t, 4, centroids[0].Y, 1e-12)
		assert.Equal(t, 3, weights[0])
	})

	// N points of one class must leave a weight count of exactly N.
	t.Run("weight counts points", func(t *testing.T) {
		const n = 137
		centroids := make([]Centroid, 3)
		weights := make([]int, 3)
		for i := range n {
			err := Accumulate([]Point{{X: float64(i), Y: float64(-i), Class: 2}}, centroids, weights)
			require.NoError(t, err)
		}
		assert.Equal(t, []int{0, 0, n}, weights)
	})

	t.Run("incomplete batch dropped wholesale", func(t *testing.T) {
		centroids := []Centroid{{X: 1, Y: 1}}
		weights := []int{4}
		batch := []Point{
			{X: 5, Y: 5, Class: 0},
			Missing(),
			{X: 6, Y: 6, Class: 0},
		}
		err := Accumulate(batch, centroids, weights)
		assert.True(t, errors.Is(err, ErrIncompleteBatch), "error should wrap ErrIncompleteBatch")
		assert.Equal(t, []Centroid{{X: 1, Y: 1}}, centroids, "no partial fold")
		assert.Equal(t, []int{4}, weights)
	})

	t.Run("out-of-range class skipped", func(t *testing.T) {
		centroids := make([]Centroid, 2)
		weights := make([]int, 2)
		batch := []Point{
			{X: 1, Y: 1, Class: -1},
			{X: 2, Y: 2, Class: 5},
			{X: 3, Y: 3, Class: 0},
		}
		require.NoError(t, Accumulate(batch, centroids, weights))
		assert.Equal(t, []int{1, 0}, weights)
		assert.Equal(t, Centroid{X: 3, Y: 3}, centroids[0])
	})

	t.Run("mismatched tables", func(t *testing.T) {
		err := Accumulate(nil, make([]Centroid, 3), make([]int, 2))
		assert.True(t, errors.Is(err, ErrClassCount), "error should wrap ErrClassCount")
	})
}

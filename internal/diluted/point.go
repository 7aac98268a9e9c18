package diluted

import "math"

// Point is a single 2-D observation. Class carries the ground-truth label in
// training batches and is ignored on query points.
type Point struct {
	X, Y  float64
	Class int
}

// Missing returns the sentinel marking an absent slot in a training batch.
func Missing() Point {
	return Point{X: math.NaN(), Y: math.NaN(), Class: -1}
}

// Missing reports whether the point is the absent-slot sentinel.
func (p Point) Missing() bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y)
}

// Centroid is the running mean position of all training points assigned to a
// class. The zero value marks a class that has not seen any point yet and
// must not be trusted as a real centroid.
type Centroid struct {
	X, Y float64
}

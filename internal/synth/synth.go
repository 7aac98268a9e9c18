// Package synth generates labeled Gaussian point clusters for demos and
// end-to-end tests of the classifier.
package synth

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/dilutedml/dknn"
)

// ClusterSpec describes one Gaussian cluster of labeled points.
type ClusterSpec struct {
	X, Y  float64
	Sigma float64
	N     int
	Class int
}

// Clusters draws every cluster from a single deterministic source, so the
// same seed always yields the same point set.
func Clusters(seed uint64, specs []ClusterSpec) []dknn.Point {
	src := rand.NewPCG(seed, seed)
	var points []dknn.Point
	for _, cs := range specs {
		nx := distuv.Normal{Mu: cs.X, Sigma: cs.Sigma, Src: src}
		ny := distuv.Normal{Mu: cs.Y, Sigma: cs.Sigma, Src: src}
		for range cs.N {
			points = append(points, dknn.Point{X: nx.Rand(), Y: ny.Rand(), Class: cs.Class})
		}
	}
	return points
}

// Shuffle permutes the points deterministically, interleaving the classes so
// every batch sees a mix of labels.
func Shuffle(seed uint64, points []dknn.Point) {
	r := rand.New(rand.NewPCG(seed, seed))
	r.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
}

// Ring places n clusters of the given sigma evenly on a circle of the given
// radius around the origin, one cluster per class.
func Ring(n int, radius, sigma float64, pointsPerClass int) []ClusterSpec {
	specs := make([]ClusterSpec, n)
	for i := range specs {
		angle := 2 * math.Pi * float64(i) / float64(n)
		specs[i] = ClusterSpec{
			X:     radius * math.Cos(angle),
			Y:     radius * math.Sin(angle),
			Sigma: sigma,
			N:     pointsPerClass,
			Class: i,
		}
	}
	return specs
}

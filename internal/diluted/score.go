package diluted

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams reports dilution parameters the scoring function cannot
// use, such as a zero or negative spread.
var ErrInvalidParams = errors.New("invalid dilution parameters")

// Distance returns the Euclidean distance between a point and a centroid.
func Distance(p Point, c Centroid) float64 {
	return math.Hypot(p.X-c.X, p.Y-c.Y)
}

// Confidence converts a distance into a bounded score. Inside the certainty
// circle the score is exactly 1. Outside it the score decays exponentially,
// exp(-|distance-overconfidence|/spread), strictly between 0 and 1.
func Confidence(distance float64, p Params) (float64, error) {
	if p.Spread <= 0 || p.Overconfidence < 0 {
		return 0, fmt.Errorf("%w: spread=%v overconfidence=%v", ErrInvalidParams, p.Spread, p.Overconfidence)
	}
	if distance <= p.Overconfidence {
		return 1, nil
	}
	return math.Exp(-math.Abs(distance-p.Overconfidence) / p.Spread), nil
}

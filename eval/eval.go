// Package eval measures the classification quality of a trained model over
// a labeled point set.
package eval

import (
	"gonum.org/v1/gonum/stat"

	"github.com/dilutedml/dknn"
)

// ClassReport summarizes one class of a Report.
type ClassReport struct {
	Class    int
	Total    int
	Correct  int
	Accuracy float64
}

// Report aggregates classification results over a labeled point set.
// Confusion[actual][predicted] counts decisions; MeanConfidence averages the
// winning confidence over every classified point.
type Report struct {
	Total          int
	Correct        int
	Accuracy       float64
	MeanConfidence float64
	PerClass       []ClassReport
	Confusion      [][]int
}

// Run classifies every labeled point with the model and aggregates accuracy,
// per-class accuracy, the confusion counts and the mean winning confidence.
// Points labeled outside the model's class range are skipped.
func Run(m *dknn.Model, points []dknn.Point) (Report, error) {
	classes := m.Classes()
	r := Report{
		PerClass:  make([]ClassReport, classes),
		Confusion: make([][]int, classes),
	}
	for class := range classes {
		r.PerClass[class].Class = class
		r.Confusion[class] = make([]int, classes)
	}

	winning := make([]float64, 0, len(points))
	for _, p := range points {
		if p.Class < 0 || p.Class >= classes {
			continue
		}
		got, confidences, err := m.Decide(p)
		if err != nil {
			return Report{}, err
		}
		winning = append(winning, confidences[got])
		r.Total++
		r.PerClass[p.Class].Total++
		r.Confusion[p.Class][got]++
		if got == p.Class {
			r.Correct++
			r.PerClass[p.Class].Correct++
		}
	}

	if r.Total > 0 {
		r.Accuracy = float64(r.Correct) / float64(r.Total)
		r.MeanConfidence = stat.Mean(winning, nil)
	}
	for class := range r.PerClass {
		if c := &r.PerClass[class]; c.Total > 0 {
			c.Accuracy = float64(c.Correct) / float64(c.Total)
		}
	}
	return r, nil
}

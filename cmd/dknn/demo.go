package main

import (
	"fmt"
	"log"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dilutedml/dknn"
	"github.com/dilutedml/dknn/eval"
	"github.com/dilutedml/dknn/internal/synth"
)

var (
	demoConfig  string
	demoSeed    uint64
	demoQueries int
	demoRadius  float64
	demoSigma   float64
	demoPoints  int
)

func init() {
	demoCmd.Flags().StringVarP(&demoConfig, "config", "c", "", "path to a dknn.toml config")
	demoCmd.Flags().Uint64Var(&demoSeed, "seed", 1, "seed for the synthetic data source")
	demoCmd.Flags().IntVar(&demoQueries, "queries", 5, "number of random query points to classify")
	demoCmd.Flags().Float64Var(&demoRadius, "radius", 40, "distance of the synthetic cluster centers from the origin")
	demoCmd.Flags().Float64Var(&demoSigma, "sigma", 2, "standard deviation of each synthetic cluster")
	demoCmd.Flags().IntVar(&demoPoints, "points", 100, "training points per class")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Train on synthetic clusters and report classification quality",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(demoConfig)
		if err != nil {
			return err
		}
		return runDemo(cfg)
	},
}

func runDemo(cfg fileConfig) error {
	m, err := newModel(cfg)
	if err != nil {
		return err
	}

	specs := synth.Ring(cfg.Classes, demoRadius, demoSigma, demoPoints)
	points := synth.Clusters(demoSeed, specs)
	synth.Shuffle(demoSeed, points)

	log.Printf("training: %d classes, %d points, batch size %d, %d epoch(s)\n",
		cfg.Classes, len(points), cfg.BatchSize, cfg.Epochs)
	if err := m.Fit(m.Batches(points), cfg.Epochs); err != nil {
		return err
	}
	for class, c := range m.Centroids() {
		log.Printf("class %d centroid (%.3f, %.3f) weight %d spread %.3f radius %.3f\n",
			class, c.X, c.Y, m.Weights()[class], m.Params()[class].Spread, m.Params()[class].Overconfidence)
	}

	report, err := eval.Run(m, points)
	if err != nil {
		return err
	}
	printReport(report)

	queries := synth.Clusters(demoSeed+1, synth.Ring(cfg.Classes, demoRadius, demoSigma, 1))
	for _, q := range queries[:min(demoQueries, len(queries))] {
		best, confidences, err := m.Decide(q)
		if err != nil {
			return err
		}
		printDecision(q, confidences, best)
	}
	return nil
}

func printReport(r eval.Report) {
	bold := color.New(color.Bold)
	bold.Printf("training-set accuracy %.2f%% mean confidence %.4f (%d/%d)\n",
		r.Accuracy*100, r.MeanConfidence, r.Correct, r.Total)
	for _, c := range r.PerClass {
		fmt.Printf("  class %d accuracy %.2f%% (%d/%d)\n", c.Class, c.Accuracy*100, c.Correct, c.Total)
	}
}

func printDecision(q dknn.Point, confidences []float64, best int) {
	color.Cyan("results for query at [%.3f, %.3f]:", q.X, q.Y)
	for class, conf := range confidences {
		fmt.Printf("class %d has confidence value of %.6f\n", class, conf)
	}
	color.Green("query belongs to class %d\tconfidence: %.6f", best, confidences[best])
	fmt.Println()
}

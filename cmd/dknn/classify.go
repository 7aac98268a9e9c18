package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dilutedml/dknn"
)

var (
	classifyConfig string
	classifyData   string
)

func init() {
	classifyCmd.Flags().StringVarP(&classifyConfig, "config", "c", "", "path to a dknn.toml config")
	classifyCmd.Flags().StringVarP(&classifyData, "data", "d", "", "CSV file of labeled training points (x,y,class)")
	_ = classifyCmd.MarkFlagRequired("data")
}

var classifyCmd = &cobra.Command{
	Use:   "classify -d points.csv X Y",
	Short: "Train from a CSV of labeled points, then classify a query point",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad X %q: %w", args[0], err)
		}
		y, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("bad Y %q: %w", args[1], err)
		}

		cfg, err := loadConfig(classifyConfig)
		if err != nil {
			return err
		}
		m, err := newModel(cfg)
		if err != nil {
			return err
		}

		points, err := readPoints(classifyData)
		if err != nil {
			return err
		}
		log.Printf("training on %d points from %s (%d epoch(s))\n", len(points), classifyData, cfg.Epochs)
		if err := m.Fit(m.Batches(points), cfg.Epochs); err != nil {
			return err
		}
		for class := range m.Classes() {
			if !m.Trained(class) {
				log.Printf("warning: class %d received no training points; its centroid is not meaningful\n", class)
			}
		}

		best, confidences, err := m.Decide(dknn.Point{X: x, Y: y})
		if err != nil {
			return err
		}
		printDecision(dknn.Point{X: x, Y: y}, confidences, best)
		return nil
	},
}

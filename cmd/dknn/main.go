package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "dknn",
	Short:         "Diluted nearest-centroid classification tools",
	Long:          "Train and query a diluted nearest-centroid classifier: one adaptive\ncentroid and certainty circle per class instead of a neighbor search.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(demoCmd, classifyCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

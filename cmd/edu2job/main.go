// Package main provides the edu2job command line: training, prediction,
// corpus insights and the HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "edu2job",
	Short: "Career role prediction from academic profiles",
	Long: "edu2job trains a random forest on a corpus of graduate outcomes and recommends " +
		"job roles for an academic profile, combining curated branch rules with the learned model.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

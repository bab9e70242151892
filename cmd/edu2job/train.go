package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sowmyalt/edu2job/internal/config"
	"github.com/sowmyalt/edu2job/internal/corpus"
	"github.com/sowmyalt/edu2job/internal/engine"
	"github.com/sowmyalt/edu2job/internal/observability"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the model on the configured corpus and report its summary",
	RunE:  runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg, err := commandConfig(cmd, os.Getenv)
	if err != nil {
		return err
	}

	_, sum, err := trainEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	writeSummary(os.Stdout, sum, cfg.Verbose)
	return nil
}

// trainEngine opens the configured corpus and trains a new engine on it.
// The engine is returned even when training fails so callers can still
// answer from the rule table.
func trainEngine(ctx context.Context, cfg config.Config) (*engine.Engine, engine.Summary, error) {
	eng := newEngine(cfg)

	src, err := corpus.Open(ctx, corpusOptions(cfg))
	if err != nil {
		return eng, engine.Summary{}, fmt.Errorf("failed to open corpus: %w", err)
	}

	sum, err := eng.Train(ctx, src)
	if err != nil {
		return eng, sum, fmt.Errorf("failed to train: %w", err)
	}
	return eng, sum, nil
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func writeSummary(w io.Writer, sum engine.Summary, verbose bool) {
	if verbose {
		observability.NewPrinter(w).PrintSummary(sum)
		return
	}

	fmt.Fprintf(w, "Trained model %s on %d examples (%d roles, %d trees)\n",
		sum.ModelID, sum.Examples, sum.Classes, sum.Trees)
	cols := make([]string, 0, len(sum.Vocabulary))
	for col := range sum.Vocabulary {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		fmt.Fprintf(w, "  %s: %d labels\n", col, sum.Vocabulary[col])
	}
}

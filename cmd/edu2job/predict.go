package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sowmyalt/edu2job/internal/engine"
	"github.com/sowmyalt/edu2job/internal/observability"
	"github.com/sowmyalt/edu2job/internal/schemas"
	"github.com/sowmyalt/edu2job/internal/types"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Recommend job roles for one academic profile",
	Long: "Train on the configured corpus, then predict ranked roles for the profile JSON given with --profile " +
		"(\"-\" reads standard input). A prediction is always produced; the status field explains degraded answers.",
	RunE: runPredict,
}

var (
	predictProfilePath string
	predictOutPath     string
)

func init() {
	predictCmd.Flags().StringVarP(&predictProfilePath, "profile", "p", "", "Path to profile JSON, or - for stdin (required)")
	predictCmd.Flags().StringVarP(&predictOutPath, "out", "o", "", "Path to output JSON file (default stdout)")
	_ = predictCmd.MarkFlagRequired("profile")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cfg, err := commandConfig(cmd, os.Getenv)
	if err != nil {
		return err
	}

	profile, err := readProfile(predictProfilePath, os.Stdin)
	if err != nil {
		return err
	}

	eng, _, err := trainEngine(cmd.Context(), cfg)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %v; answering without a trained model\n", err)
	}

	return writePrediction(eng.Predict(profile), predictOutPath, cfg.Verbose, os.Stdout, os.Stderr)
}

func readProfile(path string, stdin io.Reader) (types.Profile, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return types.Profile{}, fmt.Errorf("failed to read profile: %w", err)
		}
		defer f.Close()
		r = f
	}

	profile, err := types.DecodeProfile(r)
	if err != nil {
		return types.Profile{}, err
	}
	if err := profile.Validate(); err != nil {
		return types.Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}

// writePrediction writes the JSON payload to outPath (stdout when empty) and
// checks it against the prediction schema. Schema problems only warn.
func writePrediction(res engine.Result, outPath string, verbose bool, stdout, stderr io.Writer) error {
	data, err := json.MarshalIndent(res.Response(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	// human output goes wherever the JSON is not
	info := stderr
	if outPath != "" {
		info = stdout
	}
	if verbose {
		p := observability.NewPrinter(info)
		p.PrintResolutions(res.Resolutions)
		p.PrintResult(res)
	}

	if outPath == "" {
		if _, err := fmt.Fprintln(stdout, string(data)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(stdout, "Top prediction: %s (status: %s)\n", res.Top(), res.Status)
		_, _ = fmt.Fprintf(stdout, "Output: %s\n", outPath)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.PredictionsSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				_, _ = fmt.Fprintf(stderr, "Warning: output does not validate against schema: %v\n", err)
			} else {
				_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema: %v\n", err)
			}
		}
	}
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sowmyalt/edu2job/internal/config"
	"github.com/sowmyalt/edu2job/internal/corpus"
	"github.com/sowmyalt/edu2job/internal/insights"
	"github.com/sowmyalt/edu2job/internal/knowledge"
	"github.com/sowmyalt/edu2job/internal/observability"
)

// Insight kinds accepted by --kind.
const (
	kindRoles           = "roles"
	kindDegrees         = "degrees"
	kindSpecializations = "specializations"
	kindPaths           = "paths"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show corpus statistics and curated career paths",
	Long: "Summarize the corpus: role distribution (--kind roles), top roles per degree (--kind degrees), " +
		"top roles for one specialization (--kind specializations), or the curated career paths for a " +
		"specialization (--kind paths, no corpus needed).",
	RunE: runInsights,
}

var (
	insightsKind   string
	insightsFilter string
	insightsLimit  int
)

func init() {
	insightsCmd.Flags().StringVar(&insightsKind, "kind", kindRoles, "roles, degrees, specializations or paths")
	insightsCmd.Flags().StringVar(&insightsFilter, "filter", "", "Degree or specialization to focus on")
	insightsCmd.Flags().IntVar(&insightsLimit, "limit", 0, "Number of roles for --kind roles (default 10)")

	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	cfg, err := commandConfig(cmd, os.Getenv)
	if err != nil {
		return err
	}
	return showInsights(cmd.Context(), cfg, insightsKind, insightsFilter, insightsLimit, os.Stdout)
}

func showInsights(ctx context.Context, cfg config.Config, kind, filter string, limit int, w io.Writer) error {
	if kind == kindPaths {
		paths := knowledge.DefaultPathTable().For(filter)
		if cfg.Verbose {
			observability.NewPrinter(w).PrintCareerPaths(paths)
			return nil
		}
		return writeJSON(w, paths)
	}

	switch kind {
	case kindRoles, kindDegrees, kindSpecializations:
	default:
		return fmt.Errorf("unknown insight kind %q (want %s, %s, %s or %s)",
			kind, kindRoles, kindDegrees, kindSpecializations, kindPaths)
	}

	src, err := corpus.Open(ctx, corpusOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	examples, err := src.Load(ctx)
	if err != nil {
		return err
	}
	snap := insights.Build(examples)
	p := observability.NewPrinter(w)

	switch kind {
	case kindDegrees:
		trends := snap.DegreeTrends(filter)
		if cfg.Verbose {
			p.PrintDegreeTrends(trends)
			return nil
		}
		return writeJSON(w, trends)
	case kindSpecializations:
		roles := snap.SpecializationInsights(filter)
		if cfg.Verbose {
			p.PrintNameValues("TOP ROLES: "+filter, roles)
			return nil
		}
		return writeJSON(w, roles)
	default:
		roles := snap.RoleDistribution(limit)
		if cfg.Verbose {
			p.PrintNameValues("ROLE DISTRIBUTION", roles)
			return nil
		}
		return writeJSON(w, roles)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

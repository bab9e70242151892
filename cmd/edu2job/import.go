package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sowmyalt/edu2job/internal/config"
	"github.com/sowmyalt/edu2job/internal/corpus"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a corpus CSV into a SQLite or PostgreSQL table",
	Long:  "Read a corpus CSV and replace the rows of the corpus table in the database selected by --to (--sqlite or --db-url).",
	RunE:  runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the configured corpus as CSV",
	RunE:  runExport,
}

var (
	importIn  string
	importTo  string
	exportOut string
)

func init() {
	importCmd.Flags().StringVarP(&importIn, "in", "i", "", "Corpus CSV to import (required)")
	importCmd.Flags().StringVar(&importTo, "to", corpus.KindSQLite, "Target database: sqlite or postgres")
	_ = importCmd.MarkFlagRequired("in")

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output CSV path (default stdout)")

	rootCmd.AddCommand(importCmd, exportCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := commandConfig(cmd, os.Getenv)
	if err != nil {
		return err
	}
	return importCorpus(cmd.Context(), cfg, importIn, importTo, os.Stdout)
}

func importCorpus(ctx context.Context, cfg config.Config, in, to string, w io.Writer) error {
	examples, err := corpus.FileSource{Path: in, Strict: cfg.StrictRows}.Load(ctx)
	if err != nil {
		return err
	}

	var n int64
	switch to {
	case corpus.KindSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("--sqlite is required when importing to sqlite")
		}
		count, err := corpus.ImportSQLite(ctx, cfg.SQLitePath, cfg.Table, examples)
		if err != nil {
			return fmt.Errorf("failed to import into sqlite: %w", err)
		}
		n = int64(count)
	case corpus.KindPostgres:
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--db-url or DATABASE_URL is required when importing to postgres")
		}
		n, err = corpus.ImportPostgres(ctx, cfg.DatabaseURL, cfg.Table, examples)
		if err != nil {
			return fmt.Errorf("failed to import into postgres: %w", err)
		}
	default:
		return fmt.Errorf("unknown import target %q (want sqlite or postgres)", to)
	}

	_, _ = fmt.Fprintf(w, "Imported %d rows into %s table %s\n", n, to, cfg.Table)
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := commandConfig(cmd, os.Getenv)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return exportCorpus(cmd.Context(), cfg, out)
}

func exportCorpus(ctx context.Context, cfg config.Config, w io.Writer) error {
	src, err := corpus.Open(ctx, corpusOptions(cfg))
	if err != nil {
		return fmt.Errorf("failed to open corpus: %w", err)
	}
	examples, err := src.Load(ctx)
	if err != nil {
		return err
	}
	if err := corpus.WriteCSV(w, examples); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

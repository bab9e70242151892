package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sowmyalt/edu2job/internal/classifier"
	"github.com/sowmyalt/edu2job/internal/config"
	"github.com/sowmyalt/edu2job/internal/corpus"
	"github.com/sowmyalt/edu2job/internal/engine"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	source      string
	corpusPath  string
	databaseURL string
	sqlitePath  string
	table       string
	strict      bool
	trees       int
	seed        int64
	topK        int
	verbose     bool
}

var flags globalFlags

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to a JSON config file")
	pf.StringVar(&flags.source, "source", "", "Corpus source: file, postgres, sqlite or s3")
	pf.StringVar(&flags.corpusPath, "corpus", "", "Corpus CSV path (file source)")
	pf.StringVar(&flags.databaseURL, "db-url", "", "PostgreSQL URL (postgres source; defaults to DATABASE_URL)")
	pf.StringVar(&flags.sqlitePath, "sqlite", "", "SQLite database path (sqlite source)")
	pf.StringVar(&flags.table, "table", "", "Corpus table for SQL sources")
	pf.BoolVar(&flags.strict, "strict", false, "Fail on the first malformed corpus row instead of skipping it")
	pf.IntVar(&flags.trees, "trees", 0, "Number of trees in the forest")
	pf.Int64Var(&flags.seed, "seed", 0, "Random seed for training")
	pf.IntVar(&flags.topK, "top-k", 0, "Classifier candidates per prediction")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Print detailed output")
}

// overlay copies the flags the user set onto cfg.
func (g globalFlags) overlay(cfg *config.Config, changed func(string) bool) {
	if changed("source") {
		cfg.Source = g.source
	}
	if changed("corpus") {
		cfg.CorpusPath = g.corpusPath
	}
	if changed("db-url") {
		cfg.DatabaseURL = g.databaseURL
	}
	if changed("sqlite") {
		cfg.SQLitePath = g.sqlitePath
	}
	if changed("table") {
		cfg.Table = g.table
	}
	if changed("strict") {
		cfg.StrictRows = g.strict
	}
	if changed("trees") {
		cfg.Trees = g.trees
	}
	if changed("seed") {
		cfg.Seed = g.seed
	}
	if changed("top-k") {
		cfg.TopK = g.topK
	}
	if changed("verbose") {
		cfg.Verbose = g.verbose
	}
}

// resolveConfig layers config file, environment and flags over the defaults.
func resolveConfig(g globalFlags, changed func(string) bool, getenv func(string) string) (config.Config, error) {
	cfg := &config.Config{}
	if g.configPath != "" {
		loaded, err := config.LoadConfig(g.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return config.Config{}, err
	}
	g.overlay(cfg, changed)

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// commandConfig resolves the configuration for a running command.
func commandConfig(cmd *cobra.Command, getenv func(string) string) (config.Config, error) {
	cfg, err := resolveConfig(flags, cmd.Flags().Changed, getenv)
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func corpusOptions(cfg config.Config) corpus.Options {
	return corpus.Options{
		Kind:        cfg.Source,
		Path:        cfg.CorpusPath,
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
		Table:       cfg.Table,
		Strict:      cfg.StrictRows,
		Bucket:      cfg.S3Bucket,
		Key:         cfg.S3Key,
		S3: corpus.S3Config{
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
		},
	}
}

func newEngine(cfg config.Config) *engine.Engine {
	return engine.New(engine.Options{
		Forest: classifier.Options{Trees: cfg.Trees, Seed: cfg.Seed},
		TopK:   cfg.TopK,
	})
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Corpus source kinds.
const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
	SourceSQLite   = "sqlite"
	SourceS3       = "s3"
)

// Default values applied by Defaults.
const (
	DefaultCorpusPath = "dataset/career_prediction_dataset.csv"
	DefaultTable      = "training_examples"
	DefaultTrees      = 100
	DefaultSeed       = 42
	DefaultTopK       = 5
	DefaultPort       = 8080
	DefaultQueue      = "model_retrain"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Corpus
	Source      string `json:"source,omitempty"`       // file | postgres | sqlite | s3
	CorpusPath  string `json:"corpus_path,omitempty"`  // CSV path for the file source
	StrictRows  bool   `json:"strict_rows,omitempty"`  // Fail on the first malformed corpus row
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	SQLitePath  string `json:"sqlite_path,omitempty"`  // SQLite database file
	Table       string `json:"table,omitempty"`        // Corpus table for SQL sources

	// S3 / S3-compatible storage
	S3Bucket    string `json:"s3_bucket,omitempty"`
	S3Key       string `json:"s3_key,omitempty"`
	S3Region    string `json:"s3_region,omitempty"`
	S3Endpoint  string `json:"s3_endpoint,omitempty"`
	S3AccessKey string `json:"s3_access_key,omitempty"`
	S3SecretKey string `json:"s3_secret_key,omitempty"`

	// Retrain triggers
	AMQPURL      string `json:"amqp_url,omitempty"`      // RabbitMQ URL; empty disables the consumer
	RetrainQueue string `json:"retrain_queue,omitempty"` // Queue carrying retrain triggers
	EventsExchg  string `json:"events_exchange,omitempty"`

	// Model
	Trees int   `json:"trees,omitempty"` // Forest size
	Seed  int64 `json:"seed,omitempty"`  // Random seed
	TopK  int   `json:"top_k,omitempty"` // Classifier candidates per prediction

	// Server
	Port        int      `json:"port,omitempty"`
	CORSOrigins []string `json:"cors_origins,omitempty"`

	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Source:       SourceFile,
		CorpusPath:   DefaultCorpusPath,
		Table:        DefaultTable,
		RetrainQueue: DefaultQueue,
		Trees:        DefaultTrees,
		Seed:         DefaultSeed,
		TopK:         DefaultTopK,
		Port:         DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays environment variables onto c. getenv is usually os.Getenv.
// Unparseable numeric variables are reported, not ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	setString := func(dst *string, keys ...string) {
		for _, k := range keys {
			if v := strings.TrimSpace(getenv(k)); v != "" {
				*dst = v
				return
			}
		}
	}
	setString(&c.Source, "EDU2JOB_SOURCE")
	setString(&c.CorpusPath, "EDU2JOB_CORPUS_PATH")
	setString(&c.DatabaseURL, "EDU2JOB_DATABASE_URL", "DATABASE_URL")
	setString(&c.SQLitePath, "EDU2JOB_SQLITE_PATH")
	setString(&c.Table, "EDU2JOB_TABLE")
	setString(&c.S3Bucket, "EDU2JOB_S3_BUCKET")
	setString(&c.S3Key, "EDU2JOB_S3_KEY")
	setString(&c.S3Region, "EDU2JOB_S3_REGION", "AWS_REGION")
	setString(&c.S3Endpoint, "EDU2JOB_S3_ENDPOINT")
	setString(&c.S3AccessKey, "EDU2JOB_S3_ACCESS_KEY")
	setString(&c.S3SecretKey, "EDU2JOB_S3_SECRET_KEY")
	setString(&c.AMQPURL, "EDU2JOB_AMQP_URL", "AMQP_URL")
	setString(&c.RetrainQueue, "EDU2JOB_RETRAIN_QUEUE")
	setString(&c.EventsExchg, "EDU2JOB_EVENTS_EXCHANGE")

	ints := []struct {
		key string
		dst *int
	}{
		{"EDU2JOB_TREES", &c.Trees},
		{"EDU2JOB_TOP_K", &c.TopK},
		{"EDU2JOB_PORT", &c.Port},
		{"PORT", &c.Port},
	}
	for _, it := range ints {
		v := strings.TrimSpace(getenv(it.key))
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be an integer: %w", it.key, err)
		}
		*it.dst = n
	}

	if v := strings.TrimSpace(getenv("EDU2JOB_SEED")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config error: EDU2JOB_SEED must be an integer: %w", err)
		}
		c.Seed = n
	}

	if v := strings.TrimSpace(getenv("EDU2JOB_CORS_ORIGINS")); v != "" {
		c.CORSOrigins = nil
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				c.CORSOrigins = append(c.CORSOrigins, o)
			}
		}
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.Source {
	case "", SourceFile:
		if c.CorpusPath == "" {
			return fmt.Errorf("config error: 'corpus_path' is required for the file source")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres source")
		}
	case SourceSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("config error: 'sqlite_path' is required for the sqlite source")
		}
	case SourceS3:
		if c.S3Bucket == "" || c.S3Key == "" {
			return fmt.Errorf("config error: 's3_bucket' and 's3_key' are required for the s3 source")
		}
	default:
		return fmt.Errorf("config error: unknown source %q (want file, postgres, sqlite or s3)", c.Source)
	}

	// Validate numeric ranges
	if c.Trees < 0 {
		return fmt.Errorf("config error: 'trees' must be non-negative")
	}
	if c.TopK < 0 {
		return fmt.Errorf("config error: 'top_k' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	str := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	str(&result.Source, defaults.Source)
	str(&result.CorpusPath, defaults.CorpusPath)
	str(&result.DatabaseURL, defaults.DatabaseURL)
	str(&result.SQLitePath, defaults.SQLitePath)
	str(&result.Table, defaults.Table)
	str(&result.S3Bucket, defaults.S3Bucket)
	str(&result.S3Key, defaults.S3Key)
	str(&result.S3Region, defaults.S3Region)
	str(&result.S3Endpoint, defaults.S3Endpoint)
	str(&result.S3AccessKey, defaults.S3AccessKey)
	str(&result.S3SecretKey, defaults.S3SecretKey)
	str(&result.AMQPURL, defaults.AMQPURL)
	str(&result.RetrainQueue, defaults.RetrainQueue)
	str(&result.EventsExchg, defaults.EventsExchg)

	// Numeric fields: use default if zero
	if result.Trees == 0 {
		result.Trees = defaults.Trees
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.TopK == 0 {
		result.TopK = defaults.TopK
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if len(result.CORSOrigins) == 0 {
		result.CORSOrigins = defaults.CORSOrigins
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

package corpus

import (
	"context"
	"fmt"
)

// Source kinds accepted by Open.
const (
	KindFile     = "file"
	KindPostgres = "postgres"
	KindSQLite   = "sqlite"
	KindS3       = "s3"
)

// Options selects and configures a Source.
type Options struct {
	Kind        string
	Path        string
	DatabaseURL string
	SQLitePath  string
	Table       string
	S3          S3Config
	Bucket      string
	Key         string
	Strict      bool
}

// Open builds the Source described by opts.
func Open(ctx context.Context, opts Options) (Source, error) {
	switch opts.Kind {
	case KindFile, "":
		if opts.Path == "" {
			return nil, fmt.Errorf("corpus path is required for %s source", KindFile)
		}
		return FileSource{Path: opts.Path, Strict: opts.Strict}, nil
	case KindPostgres:
		if opts.DatabaseURL == "" {
			return nil, fmt.Errorf("database url is required for %s source", KindPostgres)
		}
		return PostgresSource{URL: opts.DatabaseURL, Table: opts.Table, Strict: opts.Strict}, nil
	case KindSQLite:
		if opts.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite path is required for %s source", KindSQLite)
		}
		return SQLiteSource{Path: opts.SQLitePath, Table: opts.Table, Strict: opts.Strict}, nil
	case KindS3:
		if opts.Bucket == "" || opts.Key == "" {
			return nil, fmt.Errorf("bucket and key are required for %s source", KindS3)
		}
		client, err := NewS3Client(ctx, opts.S3)
		if err != nil {
			return nil, err
		}
		return S3Source{Client: client, Bucket: opts.Bucket, Key: opts.Key, Strict: opts.Strict}, nil
	default:
		return nil, fmt.Errorf("unknown corpus source %q", opts.Kind)
	}
}

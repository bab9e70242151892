package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// DefaultTrainingTable is the table holding corpus rows.
const DefaultTrainingTable = "training_examples"

// TrainingColumns are the corpus columns in storage order.
var TrainingColumns = []string{
	"degree",
	"specialization",
	"college_name",
	"cgpa",
	"certificates",
	"graduation_year",
	"job_role",
}

// tableIdent parses an optionally schema-qualified table name.
func tableIdent(table string) (pgx.Identifier, error) {
	if table == "" {
		table = DefaultTrainingTable
	}
	parts := strings.Split(table, ".")
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("invalid table name %q", table)
		}
	}
	return pgx.Identifier(parts), nil
}

// EnsureTrainingTable creates the corpus table if it does not exist.
// CGPA is text because the corpus stores both numbers and ranges.
func (db *DB) EnsureTrainingTable(ctx context.Context, table string) error {
	ident, err := tableIdent(table)
	if err != nil {
		return err
	}
	_, err = db.pool.Exec(ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			degree TEXT NOT NULL DEFAULT '',
			specialization TEXT NOT NULL DEFAULT '',
			college_name TEXT NOT NULL DEFAULT '',
			cgpa TEXT NOT NULL DEFAULT '',
			certificates INTEGER NOT NULL DEFAULT 0,
			graduation_year INTEGER NOT NULL DEFAULT 2024,
			job_role TEXT NOT NULL
		)`, ident.Sanitize()))
	if err != nil {
		return fmt.Errorf("failed to create training table: %w", err)
	}
	return nil
}

// TrainingRecords returns every corpus row as text, in TrainingColumns order.
// Rows are sorted on all columns so repeated reads train identically.
func (db *DB) TrainingRecords(ctx context.Context, table string) ([][]string, error) {
	ident, err := tableIdent(table)
	if err != nil {
		return nil, err
	}

	selects := make([]string, len(TrainingColumns))
	for i, c := range TrainingColumns {
		selects[i] = fmt.Sprintf("COALESCE(%s::text, '')", pgx.Identifier{c}.Sanitize())
	}
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		strings.Join(selects, ", "), ident.Sanitize(), strings.Join(TrainingColumns, ", "))

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query training rows: %w", err)
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		rec := make([]string, len(TrainingColumns))
		dest := make([]any, len(rec))
		for i := range rec {
			dest[i] = &rec[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan training row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate training rows: %w", err)
	}
	return records, nil
}

// TrainingRow is one corpus row ready for insertion.
type TrainingRow struct {
	Degree         string
	Specialization string
	CollegeName    string
	CGPA           string
	Certificates   int
	GraduationYear int
	JobRole        string
}

// ReplaceTrainingRows empties the table and bulk-loads rows in one transaction.
func (db *DB) ReplaceTrainingRows(ctx context.Context, table string, rows []TrainingRow) (int64, error) {
	ident, err := tableIdent(table)
	if err != nil {
		return 0, err
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, fmt.Sprintf("DELETE FROM %s", ident.Sanitize())); err != nil {
		return 0, fmt.Errorf("failed to clear training table: %w", err)
	}

	n, err := tx.CopyFrom(ctx, ident, TrainingColumns, pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
		r := rows[i]
		return []any{r.Degree, r.Specialization, r.CollegeName, r.CGPA, r.Certificates, r.GraduationYear, r.JobRole}, nil
	}))
	if err != nil {
		return 0, fmt.Errorf("failed to copy training rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit training rows: %w", err)
	}
	return n, nil
}

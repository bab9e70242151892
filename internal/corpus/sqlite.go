package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/sowmyalt/edu2job/internal/db"
	"github.com/sowmyalt/edu2job/internal/types"
)

// SQLiteSource reads the corpus from a table in a SQLite database file.
type SQLiteSource struct {
	Path   string
	Table  string
	Strict bool
}

func (s SQLiteSource) table() string {
	if s.Table == "" {
		return db.DefaultTrainingTable
	}
	return s.Table
}

// Load implements Source.
func (s SQLiteSource) Load(ctx context.Context) ([]types.TrainingExample, error) {
	name := fmt.Sprintf("sqlite:%s#%s", s.Path, s.table())

	conn, err := openSQLite(s.Path)
	if err != nil {
		return nil, &LoadError{Source: name, Message: "failed to open database", Cause: err}
	}
	defer conn.Close()

	selects := make([]string, len(db.TrainingColumns))
	for i, c := range db.TrainingColumns {
		selects[i] = fmt.Sprintf("COALESCE(CAST(%s AS TEXT), '')", quoteIdent(c))
	}
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid",
		strings.Join(selects, ", "), quoteIdent(s.table()))

	rows, err := conn.QueryContext(ctx, query)
	if err != nil {
		return nil, &LoadError{Source: name, Message: "failed to query rows", Cause: err}
	}
	defer rows.Close()

	var records [][]string
	for rows.Next() {
		rec := make([]string, len(db.TrainingColumns))
		dest := make([]any, len(rec))
		for i := range rec {
			dest[i] = &rec[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &LoadError{Source: name, Message: "failed to scan row", Cause: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: name, Message: "failed to iterate rows", Cause: err}
	}
	return fromRecords(name, records, s.Strict)
}

// ImportSQLite creates the table if needed and replaces its rows.
func ImportSQLite(ctx context.Context, path, table string, examples []types.TrainingExample) (int, error) {
	if table == "" {
		table = db.DefaultTrainingTable
	}
	conn, err := openSQLite(path)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ident := quoteIdent(table)
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		degree TEXT NOT NULL DEFAULT '',
		specialization TEXT NOT NULL DEFAULT '',
		college_name TEXT NOT NULL DEFAULT '',
		cgpa TEXT NOT NULL DEFAULT '',
		certificates INTEGER NOT NULL DEFAULT 0,
		graduation_year INTEGER NOT NULL DEFAULT 2024,
		job_role TEXT NOT NULL
	)`, ident)
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return 0, fmt.Errorf("create table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+ident); err != nil {
		return 0, fmt.Errorf("clear table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?)", ident, strings.Join(db.TrainingColumns, ", ")))
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ex := range examples {
		if _, err := stmt.ExecContext(ctx, ex.Degree, ex.Specialization, ex.CollegeName,
			ex.CGPA.String(), ex.Certificates, ex.GraduationYear, ex.JobRole); err != nil {
			return 0, fmt.Errorf("insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return len(examples), nil
}

func openSQLite(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	return conn, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

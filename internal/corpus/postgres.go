package corpus

import (
	"context"
	"fmt"

	"github.com/sowmyalt/edu2job/internal/db"
	"github.com/sowmyalt/edu2job/internal/types"
)

// PostgresSource reads the corpus from a PostgreSQL table. Each Load opens
// and closes its own pool so retrains always see the current table.
type PostgresSource struct {
	URL    string
	Table  string
	Strict bool
}

// Load implements Source.
func (s PostgresSource) Load(ctx context.Context) ([]types.TrainingExample, error) {
	name := s.name()
	conn, err := db.Connect(ctx, s.URL)
	if err != nil {
		return nil, &LoadError{Source: name, Message: "failed to connect", Cause: err}
	}
	defer conn.Close()

	records, err := conn.TrainingRecords(ctx, s.Table)
	if err != nil {
		return nil, &LoadError{Source: name, Message: "failed to read rows", Cause: err}
	}
	return fromRecords(name, records, s.Strict)
}

func (s PostgresSource) name() string {
	table := s.Table
	if table == "" {
		table = db.DefaultTrainingTable
	}
	return fmt.Sprintf("postgres:%s", table)
}

// ImportPostgres replaces the table contents with examples.
func ImportPostgres(ctx context.Context, url, table string, examples []types.TrainingExample) (int64, error) {
	conn, err := db.Connect(ctx, url)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	if err := conn.EnsureTrainingTable(ctx, table); err != nil {
		return 0, err
	}
	rows := make([]db.TrainingRow, len(examples))
	for i, ex := range examples {
		rows[i] = db.TrainingRow{
			Degree:         ex.Degree,
			Specialization: ex.Specialization,
			CollegeName:    ex.CollegeName,
			CGPA:           ex.CGPA.String(),
			Certificates:   ex.Certificates,
			GraduationYear: ex.GraduationYear,
			JobRole:        ex.JobRole,
		}
	}
	return conn.ReplaceTrainingRows(ctx, table, rows)
}

// fromRecords parses records already in Columns order. Line numbers are
// 1-based row positions.
func fromRecords(name string, records [][]string, strict bool) ([]types.TrainingExample, error) {
	h, err := newHeader(Columns)
	if err != nil {
		return nil, err
	}
	c := &collector{source: name, strict: strict}
	for i, rec := range records {
		if err := c.add(h, rec, i+1); err != nil {
			return nil, err
		}
	}
	return c.result()
}

// Package corpus loads training examples from tabular sources: CSV files,
// S3 objects, SQLite and PostgreSQL tables. Every source re-reads its data in
// full on each Load.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/sowmyalt/edu2job/internal/parsing"
	"github.com/sowmyalt/edu2job/internal/types"
)

// Source yields the full training corpus.
type Source interface {
	Load(ctx context.Context) ([]types.TrainingExample, error)
}

// Columns is the required corpus header, in canonical order.
var Columns = []string{
	types.ColumnDegree,
	types.ColumnSpecialization,
	types.ColumnCollegeName,
	types.ColumnCGPA,
	types.ColumnCertificates,
	types.ColumnGraduationYear,
	types.ColumnJobRole,
}

var errMissingRole = errors.New("job role is empty")

// header maps canonical column names to record positions.
type header map[string]int

// newHeader matches column names case-insensitively after trimming. Extra
// columns are ignored.
func newHeader(names []string) (header, error) {
	h := make(header, len(Columns))
	for i, n := range names {
		n = strings.TrimSpace(strings.TrimPrefix(n, "\ufeff"))
		for _, c := range Columns {
			if strings.EqualFold(n, c) {
				if _, dup := h[c]; !dup {
					h[c] = i
				}
			}
		}
	}
	var missing []string
	for _, c := range Columns {
		if _, ok := h[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}
	return h, nil
}

func (h header) field(record []string, column string) string {
	i := h[column]
	if i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

// parseRecord converts one record into a TrainingExample.
func (h header) parseRecord(record []string, line int) (types.TrainingExample, error) {
	certs, err := parsing.ParseCount(types.ColumnCertificates, h.field(record, types.ColumnCertificates))
	if err != nil {
		return types.TrainingExample{}, &RowError{Line: line, Column: types.ColumnCertificates, Cause: err}
	}
	year, err := parsing.ParseYear(types.ColumnGraduationYear, h.field(record, types.ColumnGraduationYear))
	if err != nil {
		return types.TrainingExample{}, &RowError{Line: line, Column: types.ColumnGraduationYear, Cause: err}
	}
	role := h.field(record, types.ColumnJobRole)
	if role == "" {
		return types.TrainingExample{}, &RowError{Line: line, Column: types.ColumnJobRole, Cause: errMissingRole}
	}

	return types.TrainingExample{
		Degree:         h.field(record, types.ColumnDegree),
		Specialization: h.field(record, types.ColumnSpecialization),
		CollegeName:    h.field(record, types.ColumnCollegeName),
		CGPA:           types.GPAFromString(h.field(record, types.ColumnCGPA)),
		Certificates:   certs,
		GraduationYear: year,
		JobRole:        role,
	}, nil
}

// collector accumulates parsed rows. In strict mode the first bad row is
// fatal; otherwise bad rows are logged and skipped.
type collector struct {
	source   string
	strict   bool
	examples []types.TrainingExample
	skipped  int
}

func (c *collector) add(h header, record []string, line int) error {
	ex, err := h.parseRecord(record, line)
	if err != nil {
		if c.strict {
			return &LoadError{Source: c.source, Message: "invalid row", Cause: err}
		}
		c.skipped++
		log.Printf("[corpus] %s: skipping %v", c.source, err)
		return nil
	}
	c.examples = append(c.examples, ex)
	return nil
}

func (c *collector) result() ([]types.TrainingExample, error) {
	if c.skipped > 0 {
		log.Printf("[corpus] %s: loaded %d rows, skipped %d", c.source, len(c.examples), c.skipped)
	}
	if len(c.examples) == 0 {
		return nil, &LoadError{Source: c.source, Message: "no usable rows"}
	}
	return c.examples, nil
}

// record is the inverse of parseRecord, in Columns order.
func record(ex types.TrainingExample) []string {
	return []string{
		ex.Degree,
		ex.Specialization,
		ex.CollegeName,
		ex.CGPA.String(),
		strconv.Itoa(ex.Certificates),
		strconv.Itoa(ex.GraduationYear),
		ex.JobRole,
	}
}

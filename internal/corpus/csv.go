package corpus

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"

	"github.com/sowmyalt/edu2job/internal/types"
)

// FileSource reads a CSV corpus from the local filesystem.
type FileSource struct {
	Path   string
	Strict bool
}

// Load implements Source.
func (s FileSource) Load(ctx context.Context) ([]types.TrainingExample, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, &LoadError{Source: s.Path, Message: "failed to open dataset", Cause: err}
	}
	defer f.Close()
	return ReadCSV(ctx, f, s.Path, s.Strict)
}

// ReadCSV parses a CSV corpus with a header row. name labels errors and logs.
func ReadCSV(ctx context.Context, r io.Reader, name string, strict bool) ([]types.TrainingExample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	names, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Source: name, Message: "dataset is empty"}
		}
		return nil, &LoadError{Source: name, Message: "failed to read header", Cause: err}
	}
	h, err := newHeader(names)
	if err != nil {
		return nil, &LoadError{Source: name, Message: "invalid header", Cause: err}
	}

	c := &collector{source: name, strict: strict}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Source: name, Message: "malformed csv", Cause: err}
		}
		line, _ := cr.FieldPos(0)
		if blank(record) {
			continue
		}
		if err := c.add(h, record, line); err != nil {
			return nil, err
		}
	}
	return c.result()
}

// WriteCSV writes examples with the canonical header.
func WriteCSV(w io.Writer, examples []types.TrainingExample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, ex := range examples {
		if err := cw.Write(record(ex)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func blank(record []string) bool {
	for _, f := range record {
		if f != "" {
			return false
		}
	}
	return true
}

package corpus

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteSource_ImportAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "corpus.db")

	examples, err := ReadCSV(ctx, strings.NewReader(sampleCSV), "sample.csv", true)
	require.NoError(t, err)

	n, err := ImportSQLite(ctx, path, "", examples)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	got, err := SQLiteSource{Path: path}.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, examples, got)

	// importing again replaces rather than appends
	_, err = ImportSQLite(ctx, path, "", examples[:1])
	require.NoError(t, err)
	got, err = SQLiteSource{Path: path}.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLiteSource_MissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	_, err := SQLiteSource{Path: path, Table: "nope"}.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite:")
}

func TestQuoteIdent(t *testing.T) {
	assert.Equal(t, `"training_examples"`, quoteIdent("training_examples"))
	assert.Equal(t, `"a""b"`, quoteIdent(`a"b`))
}

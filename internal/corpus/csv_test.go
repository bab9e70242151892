package corpus

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sowmyalt/edu2job/internal/types"
)

const sampleCSV = `Degree,Specialization,College_Name,College_Type,CGPA,Certificates,Graduation_Year,Job_Role
B.Tech,ECE,IIT Bombay,Government,8.0-8.9,2,2023,VLSI Engineer
B.Sc, Physics ,Anna University,Private,7.5,0,2022,Data Scientist
MCA,Computer Applications,Anna University,Private,Below 6,,,Web Developer
`

func TestReadCSV(t *testing.T) {
	got, err := ReadCSV(context.Background(), strings.NewReader(sampleCSV), "sample.csv", true)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, types.TrainingExample{
		Degree:         "B.Tech",
		Specialization: "ECE",
		CollegeName:    "IIT Bombay",
		CGPA:           types.GPAFromString("8.0-8.9"),
		Certificates:   2,
		GraduationYear: 2023,
		JobRole:        "VLSI Engineer",
	}, got[0])
	assert.Equal(t, "Physics", got[1].Specialization)
	assert.Equal(t, 0, got[2].Certificates)
	assert.Equal(t, 2024, got[2].GraduationYear)
}

func TestReadCSV_HeaderCaseAndBOM(t *testing.T) {
	in := "\ufeffdegree,SPECIALIZATION,college_name,cgpa,certificates,graduation_year,job_role\nB.Tech,CSE,NIT,9,1,2024,Software Developer\n"
	got, err := ReadCSV(context.Background(), strings.NewReader(in), "lower.csv", true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Software Developer", got[0].JobRole)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{name: "empty", in: "", wantMsg: "dataset is empty"},
		{name: "missing columns", in: "Degree,Specialization\nB.Tech,ECE\n", wantMsg: "missing columns"},
		{name: "header only", in: "Degree,Specialization,College_Name,CGPA,Certificates,Graduation_Year,Job_Role\n", wantMsg: "no usable rows"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(context.Background(), strings.NewReader(tt.in), tt.name, false)
			require.Error(t, err)
			var le *LoadError
			require.True(t, errors.As(err, &le))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadCSV_BadRows(t *testing.T) {
	in := sampleCSV + "B.Tech,ECE,IIT,Government,8,-1,2023,VLSI Engineer\nB.Tech,ECE,IIT,Government,8,1,2023,\n"

	lenient, err := ReadCSV(context.Background(), strings.NewReader(in), "bad.csv", false)
	require.NoError(t, err)
	assert.Len(t, lenient, 3)

	_, err = ReadCSV(context.Background(), strings.NewReader(in), "bad.csv", true)
	require.Error(t, err)
	var re *RowError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 5, re.Line)
	assert.Equal(t, types.ColumnCertificates, re.Column)
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corpus.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	got, err := FileSource{Path: path}.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)

	_, err = FileSource{Path: filepath.Join(dir, "missing.csv")}.Load(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteCSV_ReadBack(t *testing.T) {
	in, err := ReadCSV(context.Background(), strings.NewReader(sampleCSV), "sample.csv", true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in))

	out, err := ReadCSV(context.Background(), &buf, "written.csv", true)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	src, err := Open(ctx, Options{Kind: KindFile, Path: "data.csv"})
	require.NoError(t, err)
	assert.IsType(t, FileSource{}, src)

	src, err = Open(ctx, Options{Kind: KindSQLite, SQLitePath: "corpus.db", Table: "rows"})
	require.NoError(t, err)
	assert.Equal(t, SQLiteSource{Path: "corpus.db", Table: "rows"}, src)

	src, err = Open(ctx, Options{Kind: KindPostgres, DatabaseURL: "postgres://localhost/x"})
	require.NoError(t, err)
	assert.IsType(t, PostgresSource{}, src)

	for _, opts := range []Options{
		{Kind: KindFile},
		{Kind: KindPostgres},
		{Kind: KindSQLite},
		{Kind: KindS3, Bucket: "b"},
		{Kind: "ftp"},
	} {
		_, err := Open(ctx, opts)
		assert.Error(t, err, "kind %q", opts.Kind)
	}
}

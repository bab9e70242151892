package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sowmyalt/edu2job/internal/config"
	"github.com/sowmyalt/edu2job/internal/engine"
	"github.com/sowmyalt/edu2job/internal/types"
)

func TestTrainEngine(t *testing.T) {
	eng, sum, err := trainEngine(context.Background(), testConfig(writeCorpus(t)))
	require.NoError(t, err)
	assert.True(t, eng.Trained())
	assert.Equal(t, 20, sum.Examples)
	assert.Equal(t, 2, sum.Classes)

	var buf bytes.Buffer
	writeSummary(&buf, sum, false)
	assert.Contains(t, buf.String(), "on 20 examples (2 roles, 10 trees)")
	assert.Contains(t, buf.String(), "Job_Role: 2 labels")
}

func TestTrainEngine_MissingCorpus(t *testing.T) {
	eng, _, err := trainEngine(context.Background(), testConfig(filepath.Join(t.TempDir(), "missing.csv")))
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrTrainingUnavailable)
	require.NotNil(t, eng)
	assert.False(t, eng.Trained())
}

func TestReadProfile(t *testing.T) {
	path := writeFile(t, "profile.json", `{"degree": "B.Sc", "specialization": "Physics", "cgpa": "7.0-7.9", "certificates": 1}`)

	p, err := readProfile(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "Physics", p.Specialization)
	assert.Equal(t, 1, p.Certificates)

	p, err = readProfile("-", strings.NewReader(`{"specialization": "ECE"}`))
	require.NoError(t, err)
	assert.Equal(t, "ECE", p.Specialization)

	_, err = readProfile(writeFile(t, "bad.json", `{"certificates": -1}`), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")

	_, err = readProfile(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.Error(t, err)
}

func TestWritePrediction_Stdout(t *testing.T) {
	eng, _, err := trainEngine(context.Background(), testConfig(writeCorpus(t)))
	require.NoError(t, err)
	res := eng.Predict(types.Profile{Degree: "B.Sc", Specialization: "Physics", Institution: "Anna University", CGPA: types.GPAFromString("7.0-7.9"), GraduationYear: 2022})

	var stdout, stderr bytes.Buffer
	require.NoError(t, writePrediction(res, "", true, &stdout, &stderr))

	var resp types.PredictionResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "Data Scientist", resp.TopPrediction)
	assert.Equal(t, "ok", resp.Status)
	assert.Contains(t, stderr.String(), "ROLE PREDICTIONS")
	assert.NotContains(t, stderr.String(), "Warning")
}

func TestWritePrediction_File(t *testing.T) {
	eng := newEngine(testConfig(""))
	res := eng.Predict(types.Profile{Specialization: "Electronics"})
	out := filepath.Join(t.TempDir(), "prediction.json")

	var stdout, stderr bytes.Buffer
	require.NoError(t, writePrediction(res, out, false, &stdout, &stderr))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var resp types.PredictionResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	assert.Equal(t, "training_unavailable", resp.Status)
	assert.Equal(t, "Embedded Systems Engineer", resp.TopPrediction)
	assert.Contains(t, stdout.String(), "Output: "+out)
	assert.Empty(t, stderr.String())
}

func TestShowInsights(t *testing.T) {
	cfg := testConfig(writeCorpus(t))

	var buf bytes.Buffer
	require.NoError(t, showInsights(context.Background(), cfg, kindRoles, "", 0, &buf))
	var roles []types.NameValue
	require.NoError(t, json.Unmarshal(buf.Bytes(), &roles))
	assert.Equal(t, []types.NameValue{{Name: "Data Scientist", Value: 10}, {Name: "Software Developer", Value: 10}}, roles)

	buf.Reset()
	require.NoError(t, showInsights(context.Background(), cfg, kindDegrees, "b.sc", 0, &buf))
	var trends []types.DegreeTrend
	require.NoError(t, json.Unmarshal(buf.Bytes(), &trends))
	require.Len(t, trends, 1)
	assert.Equal(t, "B.Sc", trends[0].Degree)

	buf.Reset()
	require.NoError(t, showInsights(context.Background(), cfg, kindSpecializations, "CSE", 0, &buf))
	assert.Contains(t, buf.String(), "Software Developer")
	assert.NotContains(t, buf.String(), "Data Scientist")

	buf.Reset()
	cfg.Verbose = true
	require.NoError(t, showInsights(context.Background(), cfg, kindRoles, "", 1, &buf))
	assert.Contains(t, buf.String(), "ROLE DISTRIBUTION")
}

func TestShowInsights_PathsNeedNoCorpus(t *testing.T) {
	cfg := testConfig(filepath.Join(t.TempDir(), "missing.csv"))

	var buf bytes.Buffer
	require.NoError(t, showInsights(context.Background(), cfg, kindPaths, "Civil", 0, &buf))
	var paths types.CareerPaths
	require.NoError(t, json.Unmarshal(buf.Bytes(), &paths))
	assert.NotEmpty(t, paths.Paths)

	err := showInsights(context.Background(), cfg, "salaries", "", 0, &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown insight kind")
}

func TestImportExport_SQLite(t *testing.T) {
	cfg := testConfig(writeCorpus(t))
	cfg.SQLitePath = filepath.Join(t.TempDir(), "corpus.db")

	var out bytes.Buffer
	require.NoError(t, importCorpus(context.Background(), cfg, cfg.CorpusPath, "sqlite", &out))
	assert.Contains(t, out.String(), "Imported 20 rows")

	cfg.Source = config.SourceSQLite
	var csvOut bytes.Buffer
	require.NoError(t, exportCorpus(context.Background(), cfg, &csvOut))
	lines := strings.Split(strings.TrimSpace(csvOut.String()), "\n")
	assert.Len(t, lines, 21)
	assert.Equal(t, "Degree,Specialization,College_Name,CGPA,Certificates,Graduation_Year,Job_Role", lines[0])
}

func TestImportCorpus_Errors(t *testing.T) {
	cfg := testConfig(writeCorpus(t))

	err := importCorpus(context.Background(), cfg, cfg.CorpusPath, "sqlite", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--sqlite")

	err = importCorpus(context.Background(), cfg, cfg.CorpusPath, "mongo", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown import target")
}

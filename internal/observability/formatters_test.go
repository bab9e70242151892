package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sowmyalt/edu2job/internal/engine"
	"github.com/sowmyalt/edu2job/internal/reconcile"
	"github.com/sowmyalt/edu2job/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(engine.Result{
		Status:      engine.StatusOK,
		ModelID:     "model-1",
		RuleMatched: true,
		Predictions: []types.Prediction{
			{Role: "Embedded Systems Engineer", Confidence: 0.95, MatchScore: 98, MissingSkills: []string{"C", "RTOS"}},
			{Role: "VLSI Design Engineer", Confidence: 0.93, MatchScore: 97},
		},
	})
	output := buf.String()

	assert.Contains(t, output, "ROLE PREDICTIONS")
	assert.Contains(t, output, "Status:   ok")
	assert.Contains(t, output, "curated rules")
	assert.Contains(t, output, "#1  Embedded Systems Engineer")
	assert.Contains(t, output, "Confidence: 0.95  Match: 98")
	assert.Contains(t, output, "C, RTOS")
	assert.Contains(t, output, "#2  VLSI Design Engineer")
}

func TestPrintResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(engine.Result{})
	assert.Empty(t, buf.String())
}

func TestPrintResult_LimitsItems(t *testing.T) {
	var buf bytes.Buffer
	preds := make([]types.Prediction, 7)
	for i := range preds {
		preds[i] = types.Prediction{Role: "Role"}
	}

	NewPrinter(&buf).PrintResult(engine.Result{Status: engine.StatusOK, Predictions: preds})

	assert.Contains(t, buf.String(), "... and 2 more")
	assert.Contains(t, buf.String(), "classifier")
}

func TestPrintResolutions(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResolutions([]reconcile.Resolution{
		{Feature: "Degree", Raw: "B.Tech", Label: "B.Tech", Method: reconcile.MethodExact},
		{Feature: "Specialization", Raw: "Phisics", Label: "Physics", Method: reconcile.MethodApproximate, Score: 0.86},
		{Feature: "College_Name", Raw: "Nowhere", Label: "", Method: reconcile.MethodFallback},
	})
	output := buf.String()

	assert.Contains(t, output, "FEATURE RECONCILIATION")
	assert.Contains(t, output, "Specialization (approximate 0.86)")
	assert.Contains(t, output, "Degree (exact)")
	assert.Contains(t, output, "⚠ College_Name")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	NewPrinter(&buf).PrintSummary(engine.Summary{
		Trained:    true,
		ModelID:    "abc",
		TrainedAt:  &at,
		Examples:   120,
		Trees:      100,
		Classes:    4,
		Vocabulary: map[string]int{"Job_Role": 4, "Degree": 3},
	})
	output := buf.String()

	assert.Contains(t, output, "MODEL SUMMARY")
	assert.Contains(t, output, "2026-01-02 03:04:05")
	assert.Contains(t, output, "Examples: 120")
	assert.Less(t, strings.Index(output, "Degree"), strings.Index(output, "Job_Role"))
}

func TestPrintSummary_Untrained(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(engine.Summary{})
	assert.Contains(t, buf.String(), "NO MODEL TRAINED")
}

func TestPrintInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintNameValues("ROLE DISTRIBUTION", []types.NameValue{{Name: "Data Analyst", Value: 12}})
	p.PrintDegreeTrends([]types.DegreeTrend{{Degree: "B.Tech", TopRoles: []types.RoleCount{{Role: "Data Analyst", Count: 3}}}})
	p.PrintCareerPaths(types.CareerPaths{
		Paths:   []types.CareerPath{{Title: "Engineering", Roles: "Junior -> Senior", Growth: "High"}},
		Insight: "Strong demand.",
	})
	output := buf.String()

	assert.Contains(t, output, "Data Analyst")
	assert.Contains(t, output, "B.Tech")
	assert.Contains(t, output, "Data Analyst (3)")
	assert.Contains(t, output, "Engineering [High]")
	assert.Contains(t, output, "Strong demand.")
}

func TestPrintNameValues_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintNameValues("ROLE DISTRIBUTION", nil)
	assert.Contains(t, buf.String(), "(no data)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}

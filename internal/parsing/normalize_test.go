package parsing

import (
	"testing"

	"github.com/sowmyalt/edu2job/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseGPAText(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"8.5", 8.5},
		{" 9 ", 9.0},
		{"7.0-7.9", 7.45},
		{"6.0–6.9", 6.45},
		{"8.0 - 9.0", 8.5},
		{"8-abc", 8.0},
		{"9-", 9.0},
		{"Below 6.0", BelowBucketGPA},
		{"First Class", NeutralGPA},
		{"", NeutralGPA},
		{"-", NeutralGPA},
		{"abc-7", NeutralGPA},
		{"NaN", NeutralGPA},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseGPAText(tt.input), 1e-9)
		})
	}
}

func TestParseGPAText_RangeIsMean(t *testing.T) {
	ranges := map[string][2]float64{
		"5.0-5.9": {5.0, 5.9},
		"6.5-7.5": {6.5, 7.5},
		"9.0–10":  {9.0, 10},
		"1-2":     {1, 2},
	}
	for input, bounds := range ranges {
		assert.InDelta(t, (bounds[0]+bounds[1])/2, ParseGPAText(input), 1e-9, input)
	}
}

func TestNormalizeGPA(t *testing.T) {
	assert.Equal(t, 8.25, NormalizeGPA(types.GPAFromFloat(8.25)))
	assert.InDelta(t, 7.45, NormalizeGPA(types.GPAFromString("7.0-7.9")), 1e-9)
	assert.Equal(t, NeutralGPA, NormalizeGPA(types.GPA{}))
}

func TestApplyDefaults(t *testing.T) {
	p := ApplyDefaults(types.Profile{Specialization: "ECE", Certificates: -2})

	assert.Equal(t, DefaultCategory, p.Degree)
	assert.Equal(t, "ECE", p.Specialization)
	assert.Equal(t, DefaultCategory, p.Institution)
	assert.Equal(t, DefaultCGPA, p.CGPA.String())
	assert.Equal(t, 0, p.Certificates)
	assert.Equal(t, DefaultGraduationYear, p.GraduationYear)
}

func TestApplyDefaults_KeepsSuppliedValues(t *testing.T) {
	in := types.Profile{
		Degree:         "M.Tech",
		Specialization: "Civil",
		Institution:    "IIT",
		CGPA:           types.GPAFromFloat(9.1),
		Certificates:   4,
		GraduationYear: 2022,
	}
	assert.Equal(t, in, ApplyDefaults(in))
}

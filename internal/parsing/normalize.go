// Package parsing normalizes raw profile and corpus values into model-ready features.
package parsing

import (
	"math"
	"strconv"
	"strings"

	"github.com/sowmyalt/edu2job/internal/types"
)

// Defaults applied to missing or unreadable profile values.
const (
	NeutralGPA            = 7.5
	BelowBucketGPA        = 5.5
	DefaultCategory       = "Other"
	DefaultCGPA           = "7.0-7.9"
	DefaultGraduationYear = 2024
)

// NormalizeGPA converts any GPA representation into one comparable scalar.
// It never fails: unreadable input maps to NeutralGPA.
func NormalizeGPA(g types.GPA) float64 {
	if g.IsNumber {
		if math.IsNaN(g.Number) || math.IsInf(g.Number, 0) {
			return NeutralGPA
		}
		return g.Number
	}
	return ParseGPAText(g.Text)
}

// ParseGPAText parses a textual GPA.
//
//	"8.5"        -> 8.5
//	"7.0-7.9"    -> 7.45 (mean of the endpoints; en dash accepted)
//	"8-x"        -> 8    (first endpoint when the second is unreadable)
//	"Below 6.0"  -> BelowBucketGPA
//	anything else -> NeutralGPA
func ParseGPAText(raw string) float64 {
	val := strings.TrimSpace(raw)

	if strings.Contains(val, "–") || strings.Contains(val, "-") {
		parts := strings.Split(strings.ReplaceAll(val, "–", "-"), "-")
		low, ok := parseFinite(parts[0])
		if !ok {
			return NeutralGPA
		}
		if len(parts) < 2 {
			return low
		}
		high, ok := parseFinite(parts[1])
		if !ok {
			return low
		}
		return (low + high) / 2
	}

	if strings.Contains(val, "Below") {
		return BelowBucketGPA
	}

	if f, ok := parseFinite(val); ok {
		return f
	}
	return NeutralGPA
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ApplyDefaults fills missing profile fields the way the prediction core expects:
// categorical fields become "Other", a missing GPA becomes DefaultCGPA and a
// missing graduation year becomes DefaultGraduationYear.
func ApplyDefaults(p types.Profile) types.Profile {
	p.Degree = defaultCategory(p.Degree)
	p.Specialization = defaultCategory(p.Specialization)
	p.Institution = defaultCategory(p.Institution)
	if p.CGPA.IsZero() {
		p.CGPA = types.GPAFromString(DefaultCGPA)
	}
	if p.Certificates < 0 {
		p.Certificates = 0
	}
	if p.GraduationYear == 0 {
		p.GraduationYear = DefaultGraduationYear
	}
	return p
}

func defaultCategory(v string) string {
	if strings.TrimSpace(v) == "" {
		return DefaultCategory
	}
	return v
}

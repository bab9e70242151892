// Package insights computes corpus-level statistics: which roles students
// reach, and how that varies by degree and specialization.
package insights

import (
	"sort"
	"strings"

	"github.com/sowmyalt/edu2job/internal/types"
)

// Default result sizes.
const (
	DefaultRoleLimit          = 10
	TopRolesPerDegree         = 3
	TopRolesPerSpecialization = 5
)

// Snapshot is an immutable view over one corpus read.
type Snapshot struct {
	total   int
	roles   map[string]int
	degrees []string // first-appearance order
	byDeg   map[string]map[string]int
	bySpec  map[string]map[string]int
}

// Build computes a Snapshot. Labels are trimmed the same way training trims them.
func Build(examples []types.TrainingExample) *Snapshot {
	s := &Snapshot{
		total:  len(examples),
		roles:  make(map[string]int),
		byDeg:  make(map[string]map[string]int),
		bySpec: make(map[string]map[string]int),
	}
	for _, ex := range examples {
		role := strings.TrimSpace(ex.JobRole)
		deg := strings.TrimSpace(ex.Degree)
		specialization := strings.TrimSpace(ex.Specialization)

		s.roles[role]++

		if _, ok := s.byDeg[deg]; !ok {
			s.byDeg[deg] = make(map[string]int)
			s.degrees = append(s.degrees, deg)
		}
		s.byDeg[deg][role]++

		if _, ok := s.bySpec[specialization]; !ok {
			s.bySpec[specialization] = make(map[string]int)
		}
		s.bySpec[specialization][role]++
	}
	return s
}

// Total returns the number of corpus rows behind the snapshot.
func (s *Snapshot) Total() int {
	if s == nil {
		return 0
	}
	return s.total
}

// RoleDistribution returns the limit most frequent roles. A non-positive
// limit uses DefaultRoleLimit.
func (s *Snapshot) RoleDistribution(limit int) []types.NameValue {
	if s == nil {
		return []types.NameValue{}
	}
	if limit <= 0 {
		limit = DefaultRoleLimit
	}
	return toNameValues(topCounts(s.roles, limit))
}

// DegreeTrends returns the top roles for each degree. A filter keeps the
// degrees containing it case-insensitively; when nothing matches, every
// degree is returned.
func (s *Snapshot) DegreeTrends(filter string) []types.DegreeTrend {
	if s == nil {
		return []types.DegreeTrend{}
	}

	degrees := s.degrees
	if f := strings.ToLower(strings.TrimSpace(filter)); f != "" {
		var matched []string
		for _, d := range s.degrees {
			if strings.Contains(strings.ToLower(d), f) {
				matched = append(matched, d)
			}
		}
		if len(matched) > 0 {
			degrees = matched
		}
	}

	out := make([]types.DegreeTrend, 0, len(degrees))
	for _, d := range degrees {
		out = append(out, types.DegreeTrend{
			Degree:   d,
			TopRoles: topCounts(s.byDeg[d], TopRolesPerDegree),
		})
	}
	return out
}

// SpecializationInsights returns the most frequent roles for an exact
// specialization, or over the whole corpus when filter is empty.
func (s *Snapshot) SpecializationInsights(filter string) []types.NameValue {
	if s == nil {
		return []types.NameValue{}
	}
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return toNameValues(topCounts(s.roles, TopRolesPerSpecialization))
	}
	return toNameValues(topCounts(s.bySpec[filter], TopRolesPerSpecialization))
}

// topCounts orders by count descending, then role name ascending.
func topCounts(counts map[string]int, limit int) []types.RoleCount {
	out := make([]types.RoleCount, 0, len(counts))
	for role, n := range counts {
		out = append(out, types.RoleCount{Role: role, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Role < out[j].Role
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func toNameValues(rc []types.RoleCount) []types.NameValue {
	out := make([]types.NameValue, len(rc))
	for i, r := range rc {
		out[i] = types.NameValue{Name: r.Role, Value: r.Count}
	}
	return out
}

//nolint:revive // types is a standard Go package name pattern
package types

// NameValue is a label with a count, as used by chart-style insights.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// RoleCount is a role with the number of corpus rows that reached it.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// DegreeTrend lists the most common roles for one degree.
type DegreeTrend struct {
	Degree   string      `json:"degree"`
	TopRoles []RoleCount `json:"top_roles"`
}

// CareerPath is a curated progression for a domain.
type CareerPath struct {
	Title  string `json:"title"`
	Roles  string `json:"roles"`
	Growth string `json:"growth"`
}

// CareerPaths is the curated set of paths for a domain with a one-line insight.
type CareerPaths struct {
	Paths   []CareerPath `json:"paths"`
	Insight string       `json:"insight,omitempty"`
}

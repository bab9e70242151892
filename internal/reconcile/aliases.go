package reconcile

import "github.com/sowmyalt/edu2job/internal/types"

// Alias maps a lowercase keyword to a canonical vocabulary label. An alias
// matches when the lowercased input contains Keyword.
type Alias struct {
	Keyword   string
	Canonical string
}

// DefaultAliases returns the built-in alias tables per feature column. Order
// matters: the first alias whose keyword is contained in the input is used.
func DefaultAliases() map[string][]Alias {
	return map[string][]Alias{
		types.ColumnSpecialization: {
			{"electronics", "ECE"},
			{"ece", "ECE"},
			{"eee", "EEE"},
			{"electrical", "EEE"},
			{"cse", "Computer Science and Engineering (CSE)"},
			{"computer science", "Computer Science and Engineering (CSE)"},
			{"cs", "CS"},
			{"it", "Information Technology (IT)"},
			{"information technology", "Information Technology (IT)"},
			{"civil", "Civil Engineering"},
			{"mech", "Mechanical Engineering"},
			{"mechanical", "Mechanical Engineering"},
			{"bio", "Biotechnology"},
			{"ai", "Artificial Intelligence"},
			{"ml", "Artificial Intelligence"},
			{"data", "Data Science"},
		},
		types.ColumnDegree: {
			{"b.tech", "B.Tech"},
			{"btech", "B.Tech"},
			{"be", "B.E"},
			{"m.tech", "M.Tech"},
			{"mtech", "M.Tech"},
			{"bca", "BCA"},
			{"mca", "MCA"},
			{"bsc", "B.Sc"},
			{"msc", "M.Sc"},
		},
	}
}

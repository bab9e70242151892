package knowledge

import "github.com/sowmyalt/edu2job/internal/lookup"

// BoostTable associates branch keywords with roles that deserve a match-score
// boost when the classifier proposes them.
type BoostTable struct {
	table *lookup.Table[[]string]
}

// NewBoostTable wraps a keyword table. Keys are tried in declaration order.
func NewBoostTable(table *lookup.Table[[]string]) *BoostTable {
	return &BoostTable{table: table}
}

// DefaultBoostTable returns the built-in branch boost table.
func DefaultBoostTable() *BoostTable {
	return NewBoostTable(lookup.MustNew(defaultBoosts))
}

// Roles returns the boost roles of the first declared keyword contained in
// the specialization, or nil.
func (b *BoostTable) Roles(specialization string) []string {
	_, roles, ok := b.table.FirstContained(specialization)
	if !ok {
		return nil
	}
	return roles
}

// Contains reports whether role is boosted for specialization.
func (b *BoostTable) Contains(specialization, role string) bool {
	for _, r := range b.Roles(specialization) {
		if r == role {
			return true
		}
	}
	return false
}

var defaultBoosts = []lookup.Entry[[]string]{
	// Computer Science
	{Key: "CSE", Value: []string{"Software Developer", "Web Developer", "Data Scientist", "Machine Learning Engineer", "Cloud Engineer", "DevOps Engineer", "Cybersecurity Analyst", "App Developer"}},
	{Key: "Computer Science", Alias: "CSE"},
	{Key: "Information Technology", Value: []string{"Software Developer", "Web Developer", "Data Scientist", "Machine Learning Engineer", "Cloud Engineer"}},

	// Electronics
	{Key: "ECE", Value: []string{"Embedded Systems Engineer", "VLSI Engineer", "Communication Engineer", "IoT Engineer", "Robotics Engineer", "Network Engineer"}},
	{Key: "Electronics", Value: []string{"Embedded Systems Engineer", "VLSI Engineer", "Communication Engineer"}},

	// Electrical
	{Key: "EEE", Value: []string{"Power Systems Engineer", "Electrical Design Engineer", "Control Systems Engineer", "Renewable Energy Engineer"}},
	{Key: "Electrical", Value: []string{"Power Systems Engineer", "Electrical Design Engineer", "Control Systems Engineer"}},

	// Mechanical
	{Key: "Mechanical", Value: []string{"Mechanical Design Engineer", "Automobile Engineer", "HVAC Engineer", "Aerospace Engineer", "Manufacturing Engineer", "Robotics Engineer"}},
	{Key: "ME", Alias: "Mechanical"},

	// Civil
	{Key: "Civil", Value: []string{"Structural Engineer", "Site Engineer", "Construction Manager", "Surveyor", "Geotechnical Engineer"}},
	{Key: "CE", Alias: "Civil"},

	// Biotech
	{Key: "Biotech", Value: []string{"Biomedical Engineer", "Clinical Researcher", "Lab Scientist", "Pharma R&D"}},
	{Key: "Biomedical", Value: []string{"Biomedical Engineer", "Clinical Researcher", "Medical Imaging Specialist"}},

	// Chemical
	{Key: "Chemical", Value: []string{"Process Engineer", "Petroleum Engineer", "Materials Engineer", "Quality Control Engineer"}},

	// Others
	{Key: "Aerospace", Value: []string{"Aircraft Design Engineer", "Flight Testing Engineer", "Propulsion Engineer"}},
	{Key: "Automobile", Value: []string{"Vehicle Design Engineer", "EV Systems Engineer", "Automotive Testing Engineer"}},
}

package knowledge

import (
	"github.com/sowmyalt/edu2job/internal/lookup"
	"github.com/sowmyalt/edu2job/internal/types"
)

// PathTable maps domain keywords to curated career paths.
type PathTable struct {
	table    *lookup.Table[types.CareerPaths]
	fallback types.CareerPaths
}

// DefaultPathTable returns the built-in career path table.
func DefaultPathTable() *PathTable {
	return &PathTable{
		table: lookup.MustNew(defaultPaths),
		fallback: types.CareerPaths{Paths: []types.CareerPath{
			{Title: "Associate Trainee", Roles: "Entry Level → Operations", Growth: "Stable"},
			{Title: "Business Analyst", Roles: "Analyst → Consultant", Growth: "Rising"},
		}},
	}
}

// For returns the paths of the first declared keyword contained in the
// specialization. Unknown specializations get the generic fallback paths.
func (p *PathTable) For(specialization string) types.CareerPaths {
	if _, paths, ok := p.table.FirstContained(specialization); ok {
		return clonePaths(paths)
	}
	return clonePaths(p.fallback)
}

func clonePaths(in types.CareerPaths) types.CareerPaths {
	return types.CareerPaths{
		Paths:   append([]types.CareerPath(nil), in.Paths...),
		Insight: in.Insight,
	}
}

func path(title, roles, growth string) types.CareerPath {
	return types.CareerPath{Title: title, Roles: roles, Growth: growth}
}

var defaultPaths = []lookup.Entry[types.CareerPaths]{
	{Key: "cse", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Software Engineering Path", "Backend / Full-Stack / Systems Engineer", "High Growth"),
			path("Data & AI Path", "Data Analyst → Data Scientist → ML Engineer", "High Growth"),
			path("Cloud & DevOps Path", "Cloud Engineer → DevOps → SRE", "Rising"),
			path("Cybersecurity Path", "Security Analyst → Security Engineer", "Stable"),
			path("Product Leadership", "Senior Engineer → Tech Lead → PM", "Lucrative"),
		},
		Insight: "Most flexible branch, easiest to switch domains.",
	}},
	{Key: "it", Alias: "cse"},
	{Key: "software", Alias: "cse"},

	{Key: "ai", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Applied AI Engineer Path", "ML Engineer → AI Engineer", "High Growth"),
			path("Data Analytics Path", "Analyst → Senior Analyst → Decision Scientist", "Stable"),
			path("Research Path", "AI Researcher → PhD / R&D roles", "Niche"),
			path("AI Product Path", "AI Consultant → AI Product Manager", "Rising"),
		},
		Insight: "High demand but requires continuous upskilling.",
	}},
	{Key: "ml", Alias: "ai"},
	{Key: "data science", Alias: "ai"},

	{Key: "cyber", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Security Operations Path", "SOC Analyst → Threat Hunter", "High Growth"),
			path("Offensive Security Path", "Ethical Hacker → Red Team Engineer", "Niche"),
			path("Security Engineering", "Security Engineer → Cloud Security Architect", "Rising"),
			path("Governance & Risk Path", "GRC Analyst → Compliance Lead", "Stable"),
		},
		Insight: "Stable, recession-resistant career.",
	}},

	{Key: "ece", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Embedded Systems Path", "Embedded Engineer → Firmware Architect", "High Growth"),
			path("VLSI / Semiconductor", "Design Engineer → Physical Design / Verification", "Lucrative"),
			path("Telecom & Networking", "Network Engineer → 5G/6G Specialist", "Stable"),
			path("Software Transition", "Software Engineer / Data Engineer", "Flexible"),
		},
		Insight: "Hardware + software combo = strong career.",
	}},
	{Key: "communication", Alias: "ece"},

	{Key: "eee", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Power Systems Path", "Electrical Engineer → Grid / Power Analyst", "Stable"),
			path("Renewable Energy Path", "Solar / Wind Engineer → Energy Consultant", "Rising"),
			path("Automation & Control", "Control Engineer → Industrial Automation Lead", "High Growth"),
			path("IT / Analytics Path", "IT / Analytics roles", "Flexible"),
		},
		Insight: "Energy transition boosts demand.",
	}},
	{Key: "electrical", Alias: "eee"},

	{Key: "eie", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Instrumentation & Control", "Instrumentation Engineer → Control Specialist", "Stable"),
			path("Industrial Automation", "PLC/SCADA Engineer", "Rising"),
			path("Process Industry Path", "Process Control Engineer", "Stable"),
		},
		Insight: "Strong in manufacturing & process industries.",
	}},
	{Key: "instrumentation", Alias: "eie"},

	{Key: "mechanical", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Design & Manufacturing", "Design Engineer → Product Engineer", "Stable"),
			path("Automotive & EV Path", "Vehicle Engineer → EV Systems Engineer", "High Growth"),
			path("Industrial Operations", "Production → Plant Manager", "Stable"),
			path("Mech + Software Path", "Simulation / Robotics / Automation", "Rising"),
		},
		Insight: "EV + automation is the growth lever.",
	}},
	{Key: "mech", Alias: "mechanical"},

	{Key: "civil", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Construction Mgmt", "Site Engineer → Project Manager", "Stable"),
			path("Structural Engineering", "Structural Analyst → Design Consultant", "Stable"),
			path("Infrastructure Path", "PSU / Smart Cities roles", "Stable"),
			path("Sustainability Path", "Environmental / Transport Planner", "Rising"),
		},
		Insight: "Stable, long-term growth career.",
	}},

	{Key: "chemical", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Process Engineering", "Process Engineer → Plant Operations Lead", "Stable"),
			path("Energy & Materials", "Battery / Petrochemical Engineer", "Rising"),
			path("Pharma & Biotech Path", "Process Development Engineer", "Stable"),
			path("Safety & Compliance", "Safety Engineer → HSE Manager", "Stable"),
		},
		Insight: "Strong for higher studies & core industry.",
	}},

	{Key: "metallurg", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Materials Engineering", "Materials Scientist → R&D Engineer", "Niche"),
			path("Manufacturing Quality", "QA Engineer → Process Improvement Lead", "Stable"),
			path("Defense & Industry", "PSU / Research Labs", "Stable"),
		},
		Insight: "Niche but valuable in core sectors.",
	}},

	{Key: "aerospace", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Aircraft Design Path", "Design Engineer → Aerospace Scientist", "Niche"),
			path("Defense & Research", "DRDO / ISRO / PSU", "Stable"),
			path("Maint & Operations", "Aircraft Systems Engineer", "Stable"),
		},
		Insight: "Highly competitive, research-heavy.",
	}},

	{Key: "biotechnology", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("R&D Path", "Research Scientist → PhD", "Niche"),
			path("Bioprocess Industry", "Bioprocess Engineer", "Stable"),
			path("Health Data Path", "Bioinformatics Analyst", "Rising"),
		},
		Insight: "Research-oriented, niche growth.",
	}},
	{Key: "biotech", Alias: "biotechnology"},

	{Key: "biomedical", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Medical Devices Path", "Device Engineer → Product Specialist", "High Growth"),
			path("Healthcare Tech", "Clinical Engineer", "Stable"),
			path("Health Analytics", "Medical Data Analyst", "Rising"),
		},
		Insight: "Healthcare tech is expanding.",
	}},

	{Key: "robotics", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Robotics Engineering", "Robotics Engineer → Automation Architect", "High Growth"),
			path("Industrial Automation", "Controls & PLC Engineer", "Stable"),
			path("Robotics + AI Path", "Intelligent Systems Engineer", "High Growth"),
		},
		Insight: "Interdisciplinary & future-ready.",
	}},
	{Key: "mechatronics", Alias: "robotics"},

	{Key: "iot", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("IoT Systems Path", "IoT Engineer → Solutions Architect", "High Growth"),
			path("Embedded & Edge", "Embedded Systems Engineer", "Rising"),
			path("Smart Infrastructure", "Industrial IoT Engineer", "Rising"),
		},
		Insight: "IoT works best combined with another core skill.",
	}},

	{Key: "cloud", Value: types.CareerPaths{
		Paths: []types.CareerPath{
			path("Cloud Engineering", "Cloud Engineer → Cloud Architect", "High Growth"),
			path("DevOps Path", "DevOps Engineer → SRE", "High Growth"),
			path("Cloud Security", "Cloud Security Engineer", "Rising"),
		},
		Insight: "High demand across industries.",
	}},
}

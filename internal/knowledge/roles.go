// Package knowledge holds static reference data: role metadata, the domain
// boost table and curated career paths. None of it is derived from training.
package knowledge

import "fmt"

// GeneralSpecialist is the entry used for roles absent from the base.
const GeneralSpecialist = "General Specialist"

// Role is the metadata attached to a recommended role. Skills are ordered;
// the first entries are the core skills.
type Role struct {
	Name             string
	Description      string
	Skills           []string
	RecommendedCerts []string
	Domains          []string
}

// Base is a read-only role knowledge base.
type Base struct {
	roles map[string]Role
}

// NewBase builds a Base. It must contain a GeneralSpecialist entry.
func NewBase(roles []Role) (*Base, error) {
	b := &Base{roles: make(map[string]Role, len(roles))}
	for _, r := range roles {
		b.roles[r.Name] = r
	}
	if _, ok := b.roles[GeneralSpecialist]; !ok {
		return nil, fmt.Errorf("knowledge base has no %q entry", GeneralSpecialist)
	}
	return b, nil
}

// DefaultBase returns the built-in knowledge base.
func DefaultBase() *Base {
	b, err := NewBase(defaultRoles)
	if err != nil {
		panic(err)
	}
	return b
}

// Get returns the entry for role, if present.
func (b *Base) Get(role string) (Role, bool) {
	r, ok := b.roles[role]
	return r, ok
}

// Details returns the entry for role or the General Specialist entry.
func (b *Base) Details(role string) Role {
	if r, ok := b.roles[role]; ok {
		return r
	}
	return b.roles[GeneralSpecialist]
}

// Len returns the number of roles in the base.
func (b *Base) Len() int {
	return len(b.roles)
}

var defaultRoles = []Role{
	// CSE / IT
	{
		Name:             "Software Developer",
		Description:      "Designs, codes, and maintains software applications.",
		Skills:           []string{"Java", "Python", "C++", "DSA", "System Design", "Git"},
		RecommendedCerts: []string{"Oracle Certified Master", "AWS Certified Developer"},
		Domains:          []string{"CSE", "IT"},
	},
	{
		Name:             "Software Engineer",
		Description:      "Builds and operates production software systems end to end.",
		Skills:           []string{"DSA", "Git", "Java", "Python", "System Design", "Testing"},
		RecommendedCerts: []string{"AWS Certified Developer", "Oracle Certified Professional"},
		Domains:          []string{"CSE", "IT"},
	},
	{
		Name:             "Web Developer",
		Description:      "Builds and maintains websites and web applications.",
		Skills:           []string{"HTML/CSS", "JavaScript", "React", "Node.js", "DB Management"},
		RecommendedCerts: []string{"Meta Front-End Developer", "Full Stack Development"},
		Domains:          []string{"CSE", "IT"},
	},
	{
		Name:             "Data Scientist",
		Description:      "Analyzes complex data to help make business decisions.",
		Skills:           []string{"Python", "R", "Machine Learning", "Statistics", "SQL"},
		RecommendedCerts: []string{"Google Data Analytics", "IBM Data Science"},
		Domains:          []string{"CSE", "IT", "Data Science"},
	},
	{
		Name:             "Data Analyst",
		Description:      "Turns raw data into reports and insights for business teams.",
		Skills:           []string{"Excel", "SQL", "Python", "Power BI", "Statistics"},
		RecommendedCerts: []string{"Google Data Analytics", "Microsoft Power BI Data Analyst"},
		Domains:          []string{"CSE", "IT", "Data Science"},
	},
	{
		Name:             "Data Engineer",
		Description:      "Builds pipelines that move and shape data for analytics.",
		Skills:           []string{"SQL", "Python", "Spark", "Airflow", "Data Modeling"},
		RecommendedCerts: []string{"Google Professional Data Engineer", "Databricks Data Engineer"},
		Domains:          []string{"CSE", "IT", "Data Science"},
	},
	{
		Name:             "Machine Learning Engineer",
		Description:      "Designs and builds machine learning systems.",
		Skills:           []string{"Python", "TensorFlow", "PyTorch", "Deep Learning"},
		RecommendedCerts: []string{"AWS Certified Machine Learning", "DeepLearning.AI"},
		Domains:          []string{"CSE", "IT", "AI"},
	},
	{
		Name:             "Cloud Engineer",
		Description:      "Designs and manages cloud infrastructure.",
		Skills:           []string{"AWS", "Azure", "Docker", "Kubernetes", "Linux"},
		RecommendedCerts: []string{"AWS Solutions Architect", "Azure Administrator"},
		Domains:          []string{"CSE", "IT"},
	},
	{
		Name:             "DevOps Engineer",
		Description:      "Bridges gap between development and operations.",
		Skills:           []string{"CI/CD", "Jenkins", "Docker", "Kubernetes", "Scripting"},
		RecommendedCerts: []string{"Certified Kubernetes Administrator", "DevOps Engineer Expert"},
		Domains:          []string{"CSE", "IT"},
	},
	{
		Name:             "Cybersecurity Analyst",
		Description:      "Protects systems and networks from threats.",
		Skills:           []string{"Network Security", "Ethical Hacking", "Cryptography", "Linux"},
		RecommendedCerts: []string{"CompTIA Security+", "CEH"},
		Domains:          []string{"CSE", "IT"},
	},

	// ECE / EEE
	{
		Name:             "Embedded Systems Engineer",
		Description:      "Designs software for embedded devices.",
		Skills:           []string{"C/C++", "Microcontrollers", "RTOS", "Circuit Design"},
		RecommendedCerts: []string{"Arm Accredited Engineer", "Embedded Systems Design"},
		Domains:          []string{"ECE", "EEE"},
	},
	{
		Name:             "VLSI Engineer",
		Description:      "Designs integrated circuits.",
		Skills:           []string{"Verilog", "VHDL", "SystemVerilog", "Digital Logic"},
		RecommendedCerts: []string{"VLSI Design", "Physical Design"},
		Domains:          []string{"ECE"},
	},
	{
		Name:             "IoT Engineer",
		Description:      "Develops connected devices and systems.",
		Skills:           []string{"IoT Protocols", "Python", "C++", "Cloud Platforms"},
		RecommendedCerts: []string{"Azure IoT Developer", "AWS IoT"},
		Domains:          []string{"ECE", "CSE"},
	},
	{
		Name:             "Power Systems Engineer",
		Description:      "Plans and maintains generation, transmission and distribution systems.",
		Skills:           []string{"Power Systems", "MATLAB", "ETAP", "Protection Systems"},
		RecommendedCerts: []string{"Certified Energy Manager", "NEBOSH"},
		Domains:          []string{"EEE"},
	},
	{
		Name:             "Control Systems Engineer",
		Description:      "Designs controllers for industrial and embedded processes.",
		Skills:           []string{"Control Theory", "PLC/SCADA", "MATLAB/Simulink", "Instrumentation"},
		RecommendedCerts: []string{"Certified Automation Professional", "Siemens PLC"},
		Domains:          []string{"EEE", "EIE"},
	},

	// ME
	{
		Name:             "Mechanical Design Engineer",
		Description:      "Designs mechanical systems and products.",
		Skills:           []string{"CAD", "SolidWorks", "AutoCAD", "Thermodynamics"},
		RecommendedCerts: []string{"CSWP", "AutoCAD Certified"},
		Domains:          []string{"ME"},
	},
	{
		Name:             "Robotics Engineer",
		Description:      "Designs and builds robots.",
		Skills:           []string{"ROS", "C++", "Python", "Control Systems", "Kinematics"},
		RecommendedCerts: []string{"Robotics Software Engineer", "Control Systems"},
		Domains:          []string{"ME", "ECE", "CSE"},
	},

	// CE
	{
		Name:             "Structural Engineer",
		Description:      "Designs load-bearing structures.",
		Skills:           []string{"AutoCAD", "STAAD.Pro", "Structural Analysis", "Revit"},
		RecommendedCerts: []string{"Structural Engineering Verification", "Revit Structure"},
		Domains:          []string{"CE"},
	},
	{
		Name:             "Site Engineer",
		Description:      "Supervises construction work on site against drawings and schedules.",
		Skills:           []string{"AutoCAD", "Surveying", "Quantity Estimation", "Site Safety"},
		RecommendedCerts: []string{"PMP", "NEBOSH"},
		Domains:          []string{"CE"},
	},
	{
		Name:             "Construction Manager",
		Description:      "Oversees construction projects.",
		Skills:           []string{"Project Management", "Cost Estimation", "Safety Regulations"},
		RecommendedCerts: []string{"PMP", "CCM"},
		Domains:          []string{"CE"},
	},

	// Chemical
	{
		Name:             "Process Engineer",
		Description:      "Designs and optimizes industrial chemical processes.",
		Skills:           []string{"Process Design", "Aspen HYSYS", "Mass Transfer", "HAZOP"},
		RecommendedCerts: []string{"Six Sigma Green Belt", "Process Safety Management"},
		Domains:          []string{"Chemical"},
	},

	// General / Default
	{
		Name:             GeneralSpecialist,
		Description:      "A versatile role requiring broad knowledge.",
		Skills:           []string{"Communication", "Problem Solving", "Project Management"},
		RecommendedCerts: []string{"PMP", "Scrum Master"},
	},
}

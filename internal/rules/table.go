package rules

import "github.com/sowmyalt/edu2job/internal/lookup"

// defaultEntries is the curated branch-to-roles table. Aliases share the role
// list of the canonical branch they name.
var defaultEntries = []lookup.Entry[[]string]{
	{Key: "CSE", Value: []string{
		"Software Developer / Engineer",
		"Data Analyst / Data Scientist",
		"Machine Learning Engineer",
		"Full Stack / Backend Developer",
		"Cybersecurity Analyst",
	}},
	{Key: "Computer Science", Alias: "CSE"},
	{Key: "Information Technology", Value: []string{
		"Software Engineer",
		"Web Developer",
		"System Analyst",
		"Database Administrator",
		"IT Support / Network Engineer",
	}},
	{Key: "IT", Alias: "Information Technology"},
	{Key: "AI & ML", Value: []string{
		"Machine Learning Engineer",
		"AI Research Engineer",
		"Data Scientist",
		"Computer Vision Engineer",
		"NLP Engineer",
	}},
	{Key: "Artificial Intelligence", Alias: "AI & ML"},
	{Key: "Data Science", Value: []string{
		"Data Analyst",
		"Data Scientist",
		"Business Intelligence Engineer",
		"Data Engineer",
		"Analytics Consultant",
	}},
	{Key: "Cyber Security", Value: []string{
		"Cybersecurity Analyst",
		"Ethical Hacker",
		"Security Engineer",
		"SOC Analyst",
		"Digital Forensics Analyst",
	}},
	{Key: "Mechanical", Value: []string{
		"Mechanical Design Engineer",
		"Production / Manufacturing Engineer",
		"Automotive Engineer",
		"Maintenance Engineer",
		"Quality Control Engineer",
	}},
	{Key: "Electrical", Value: []string{
		"Electrical Design Engineer",
		"Power Systems Engineer",
		"Control Systems Engineer",
		"Electrical Maintenance Engineer",
		"Renewable Energy Engineer",
	}},
	{Key: "EEE", Alias: "Electrical"},
	{Key: "Electronics", Value: []string{
		"Embedded Systems Engineer",
		"VLSI Design Engineer",
		"Electronics Hardware Engineer",
		"Communication Engineer",
		"IoT Engineer",
	}},
	{Key: "ECE", Alias: "Electronics"},
	{Key: "Instrumentation", Value: []string{
		"Instrumentation Engineer",
		"Control Systems Engineer",
		"Automation Engineer",
		"Process Control Engineer",
		"Calibration Engineer",
	}},
	{Key: "EIE", Alias: "Instrumentation"},
	{Key: "Civil", Value: []string{
		"Site Engineer",
		"Structural Engineer",
		"Project Manager",
		"Construction Planner",
		"Quantity Surveyor",
	}},
	{Key: "Chemical", Value: []string{
		"Process Engineer",
		"Production Engineer",
		"Chemical Plant Operations Engineer",
		"Quality Control Engineer",
		"Safety Engineer",
	}},
	{Key: "Metallurgical", Value: []string{
		"Metallurgical Engineer",
		"Quality Assurance Engineer",
		"Materials Engineer",
		"Production Engineer",
		"Failure Analysis Engineer",
	}},
	{Key: "Aerospace", Value: []string{
		"Aerospace Design Engineer",
		"Aircraft Maintenance Engineer",
		"Avionics Engineer",
		"Flight Systems Engineer",
		"Defense Research Engineer",
	}},
	{Key: "Biotechnology", Value: []string{
		"Biotechnologist",
		"Research Scientist",
		"Clinical Data Analyst",
		"Bioprocess Engineer",
		"Quality Control Analyst",
	}},
	{Key: "Biomedical", Value: []string{
		"Biomedical Equipment Engineer",
		"Medical Device Engineer",
		"Clinical Engineer",
		"Healthcare Technology Analyst",
		"Imaging Systems Engineer",
	}},
	{Key: "Mechatronics", Value: []string{
		"Robotics Engineer",
		"Automation Engineer",
		"Control Systems Engineer",
		"Embedded Engineer",
		"Industrial Design Engineer",
	}},
	{Key: "Environmental", Value: []string{
		"Environmental Engineer",
		"Sustainability Analyst",
		"Water Resources Engineer",
		"Waste Management Engineer",
		"Environmental Consultant",
	}},
	{Key: "Agricultural", Value: []string{
		"Agricultural Engineer",
		"Farm Machinery Engineer",
		"Irrigation Engineer",
		"Agri-Tech Analyst",
		"Precision Agriculture Specialist",
	}},
	{Key: "Robotics", Value: []string{
		"Robotics Engineer",
		"Automation Engineer",
		"Embedded Systems Engineer",
		"AI Robotics Engineer",
		"Control Systems Engineer",
	}},
	{Key: "IoT", Value: []string{
		"IoT Developer",
		"Embedded Engineer",
		"Smart Systems Engineer",
		"Industrial IoT Engineer",
		"Sensor Network Engineer",
	}},
	{Key: "Internet of Things", Alias: "IoT"},
	{Key: "Cloud Computing", Value: []string{
		"Cloud Engineer",
		"DevOps Engineer",
		"Site Reliability Engineer (SRE)",
		"Cloud Security Engineer",
		"Solutions Architect",
	}},
	{Key: "Cloud", Alias: "Cloud Computing"},
}

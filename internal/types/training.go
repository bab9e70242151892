//nolint:revive // types is a standard Go package name pattern
package types

// TrainingExample is one corpus row: academic attributes and the role the student went on to.
type TrainingExample struct {
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
	CollegeName    string `json:"college_name"`
	CGPA           GPA    `json:"cgpa"`
	Certificates   int    `json:"certificates"`
	GraduationYear int    `json:"graduation_year"`
	JobRole        string `json:"job_role"`
}

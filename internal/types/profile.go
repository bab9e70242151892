// Package types provides type definitions for structured data used throughout the edu2job system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Corpus column names. The same names are accepted as profile keys.
const (
	ColumnDegree         = "Degree"
	ColumnSpecialization = "Specialization"
	ColumnCollegeName    = "College_Name"
	ColumnCGPA           = "CGPA"
	ColumnCertificates   = "Certificates"
	ColumnGraduationYear = "Graduation_Year"
	ColumnJobRole        = "Job_Role"
)

// GPA is a grade point average as supplied by a user or a corpus row.
// It is either a number or free text such as "7.0-7.9" or "Below 6.0".
type GPA struct {
	Number   float64
	Text     string
	IsNumber bool
}

// GPAFromFloat returns a numeric GPA.
func GPAFromFloat(v float64) GPA {
	return GPA{Number: v, IsNumber: true}
}

// GPAFromString returns a textual GPA.
func GPAFromString(s string) GPA {
	return GPA{Text: s}
}

// IsZero reports whether no GPA was supplied.
func (g GPA) IsZero() bool {
	return !g.IsNumber && strings.TrimSpace(g.Text) == ""
}

// String returns the GPA as the user wrote it.
func (g GPA) String() string {
	if g.IsNumber {
		return strconv.FormatFloat(g.Number, 'f', -1, 64)
	}
	return g.Text
}

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (g *GPA) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*g = GPA{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*g = GPAFromString(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("cgpa must be a number or a string: %w", err)
	}
	*g = GPAFromFloat(f)
	return nil
}

// MarshalJSON writes numbers as numbers and everything else as a string.
func (g GPA) MarshalJSON() ([]byte, error) {
	if g.IsNumber {
		return json.Marshal(g.Number)
	}
	return json.Marshal(g.Text)
}

// Profile is the academic profile a prediction is made for.
// Missing categorical fields are left empty; defaults are applied by the parsing package.
type Profile struct {
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
	Institution    string `json:"institution"`
	CGPA           GPA    `json:"cgpa"`
	Certificates   int    `json:"certificates" validate:"gte=0"`
	GraduationYear int    `json:"graduation_year" validate:"omitempty,gte=1000,lte=9999"`
}

// Validate validates the Profile using the validator.
func (p *Profile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// profileKeys lists accepted key spellings. When a bag carries several
// spellings of one field, the earliest listed spelling wins.
var profileKeys = []struct {
	key    string
	column string
}{
	{"degree", ColumnDegree},
	{"specialization", ColumnSpecialization},
	{"institution", ColumnCollegeName},
	{"college_name", ColumnCollegeName},
	{"cgpa", ColumnCGPA},
	{"gpa", ColumnCGPA},
	{"certificates", ColumnCertificates},
	{"graduation_year", ColumnGraduationYear},
	{"year", ColumnGraduationYear},
}

// ProfileFromFields builds a Profile from a key-value bag. Keys may use corpus
// column names ("College_Name") or API names ("institution"), in any case.
// The result does not depend on map iteration order.
func ProfileFromFields(fields map[string]any) (Profile, error) {
	bag := lowerKeys(fields)

	var p Profile
	set := make(map[string]bool, len(profileKeys))
	for _, k := range profileKeys {
		f, ok := bag[k.key]
		if !ok || set[k.column] {
			continue
		}
		set[k.column] = true

		switch k.column {
		case ColumnDegree:
			p.Degree = fmt.Sprint(f.value)
		case ColumnSpecialization:
			p.Specialization = fmt.Sprint(f.value)
		case ColumnCollegeName:
			p.Institution = fmt.Sprint(f.value)
		case ColumnCGPA:
			p.CGPA = gpaFromAny(f.value)
		case ColumnCertificates:
			n, err := intFromAny(f.value)
			if err != nil {
				return Profile{}, fmt.Errorf("invalid %s: %w", f.key, err)
			}
			p.Certificates = n
		case ColumnGraduationYear:
			n, err := intFromAny(f.value)
			if err != nil {
				return Profile{}, fmt.Errorf("invalid %s: %w", f.key, err)
			}
			p.GraduationYear = n
		}
	}
	return p, nil
}

type bagField struct {
	key   string
	value any
}

// lowerKeys indexes non-nil values by lowercased key. Keys that differ only in
// case resolve to the lexically smallest original spelling.
func lowerKeys(fields map[string]any) map[string]bagField {
	keys := make([]string, 0, len(fields))
	for k, v := range fields {
		if v != nil {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	out := make(map[string]bagField, len(keys))
	for _, k := range keys {
		lk := strings.ToLower(strings.TrimSpace(k))
		if _, dup := out[lk]; dup {
			continue
		}
		out[lk] = bagField{key: k, value: fields[k]}
	}
	return out
}

// DecodeProfile reads one JSON object and builds a Profile from its fields.
// Numbers keep their JSON spelling so integer fields are not rounded through float64.
func DecodeProfile(r io.Reader) (Profile, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return Profile{}, fmt.Errorf("invalid profile JSON: %w", err)
	}
	return ProfileFromFields(fields)
}

func gpaFromAny(raw any) GPA {
	switch v := raw.(type) {
	case float64:
		return GPAFromFloat(v)
	case float32:
		return GPAFromFloat(float64(v))
	case int:
		return GPAFromFloat(float64(v))
	case int64:
		return GPAFromFloat(float64(v))
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return GPAFromFloat(f)
		}
		return GPAFromString(v.String())
	default:
		return GPAFromString(fmt.Sprint(v))
	}
}

func intFromAny(raw any) (int, error) {
	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, err
		}
		return int(n), nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, err
		}
		return int(f), nil
	default:
		return 0, fmt.Errorf("unsupported value %v", raw)
	}
}

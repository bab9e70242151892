package parsing

import (
	"strconv"
	"strings"
)

// ParseCount parses a non-negative integer count such as a certificate total.
// Empty input is zero; "3.0" is accepted as 3.
func ParseCount(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0, &ValueError{Field: field, Value: raw, Cause: err}
		}
		n = int(f)
	}
	if n < 0 {
		return 0, &ValueError{Field: field, Value: raw}
	}
	return n, nil
}

// ParseYear parses a four digit year. Empty input returns DefaultGraduationYear.
func ParseYear(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return DefaultGraduationYear, nil
	}
	n, err := ParseCount(field, s)
	if err != nil {
		return 0, err
	}
	if n < 1000 || n > 9999 {
		return 0, &ValueError{Field: field, Value: raw}
	}
	return n, nil
}

package corpus

import "fmt"

// LoadError reports a corpus that could not be read at all.
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corpus %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("corpus %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// RowError reports one malformed corpus row.
type RowError struct {
	Line   int
	Column string
	Cause  error
}

func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("line %d: column %s: %v", e.Line, e.Column, e.Cause)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Cause)
}

func (e *RowError) Unwrap() error {
	return e.Cause
}

package parsing

import "fmt"

// ValueError reports a corpus value that cannot be turned into a feature.
type ValueError struct {
	Field string
	Value string
	Cause error
}

func (e *ValueError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Cause)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Cause
}

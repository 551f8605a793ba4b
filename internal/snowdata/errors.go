package snowdata

import "fmt"

// ErrInvalidSnapshot reports snapshot content that fails schema or
// consistency checks.
type ErrInvalidSnapshot struct {
	// Field is a JSON-pointer-like location, empty for whole-document errors.
	Field string
	Err   error
}

func (e *ErrInvalidSnapshot) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid snapshot: %v", e.Err)
	}
	return fmt.Sprintf("invalid snapshot at %s: %v", e.Field, e.Err)
}

func (e *ErrInvalidSnapshot) Unwrap() error { return e.Err }

func invalid(field string, format string, args ...any) error {
	return &ErrInvalidSnapshot{Field: field, Err: fmt.Errorf(format, args...)}
}

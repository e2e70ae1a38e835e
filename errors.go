package budget

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by errors.Is for every *ValidationError.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a raw input value that could not be normalized.
type ValidationError struct {
	Field  string // name of the offending field: "date", "type", "amount", "month"...
	Value  string // raw value as received
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// ParseError reports a stored record that could not be decoded.
type ParseError struct {
	Index int    // position of the record in the file
	Field string // empty when the record itself is malformed
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("record #%d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("record #%d: field %q: %v", e.Index, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

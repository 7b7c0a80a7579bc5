package seq

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when a field is not a valid base-10 integer.
	ErrFormat = errors.New("invalid integer format")
	// ErrOverflow is returned when a field is outside the range of int.
	ErrOverflow = errors.New("integer out of range")
)

// FieldError describes the field that failed to parse
type FieldError struct {
	Index int    // zero-based field position
	Field string // raw field text, untrimmed
	Err   error  // ErrFormat or ErrOverflow
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %d (%q): %v", e.Index, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

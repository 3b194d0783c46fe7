package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned when a line does not fit the expected
	// label + four value columns shape.
	ErrMalformedLine = errors.New("malformed statement line")

	// ErrDuplicateItem is returned when two input lines normalize to the
	// same canonical id. Fatal to building that statement.
	ErrDuplicateItem = errors.New("duplicate canonical id")

	// ErrHierarchyViolation is returned when a total row disagrees with the
	// sum of its item children beyond tolerance.
	ErrHierarchyViolation = errors.New("section total does not match summed items")

	// ErrStatementInvalid is returned when a comparison is requested
	// against a statement that failed validation.
	ErrStatementInvalid = errors.New("statement failed validation")
)

// ParseError ties one of the sentinel parse errors to its source location.
type ParseError struct {
	Line  int
	Label string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("line %d (%s): %v", e.Line, e.Label, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

package session

import (
	"errors"
	"fmt"
)

// ErrMalformedExport is returned when an export lacks a required field or a
// field has the wrong shape.
var ErrMalformedExport = errors.New("malformed export")

func malformed(field string, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedExport, field, fmt.Sprintf(format, args...))
}

func missing(field string) error {
	return malformed(field, "missing required field")
}

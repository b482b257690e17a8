package ingest

import "errors"

// ErrMissingPath is returned when a required directory does not exist.
var ErrMissingPath = errors.New("path not found")

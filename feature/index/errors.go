package index

import "errors"

// ErrIndexSchema is returned by Load when the persisted index does not match
// the expected schema.
var ErrIndexSchema = errors.New("index schema mismatch")

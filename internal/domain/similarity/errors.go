package similarity

import "errors"

// Sentinel kinds for query errors. Both are user errors recovered at the
// API boundary, never fatal.
var (
	ErrNotFound      = errors.New("player not found")
	ErrInvalidK      = errors.New("k out of range")
	ErrUnknownMetric = errors.New("unknown distance metric")
)

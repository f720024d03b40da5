package service

import "errors"

// Sentinel kinds for service-level validation.
var (
	ErrInvalidLimit = errors.New("invalid career limit")
)

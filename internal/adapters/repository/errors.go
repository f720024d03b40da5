package repository

import "errors"

// Sentinel kinds for index errors.
var (
	ErrNotFound = errors.New("player not found")
)

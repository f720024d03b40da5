package dataset

import "errors"

// Sentinel error kinds for dataset construction. These allow errors.Is
// from callers; all are fatal at load time.
var (
	// ErrEmptyDataset covers zero rows or fewer than two usable numeric
	// feature columns.
	ErrEmptyDataset = errors.New("empty dataset")

	// ErrMissingIDColumn means the configured identifier column is absent.
	ErrMissingIDColumn = errors.New("missing id column")
)

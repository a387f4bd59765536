package dataset

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrMissingColumn reports a required column absent from the header.
	// Fatal: the run aborts before any model is fit.
	ErrMissingColumn = errors.New("required column missing")

	// ErrEmptyFile reports a file with no header row.
	ErrEmptyFile = errors.New("dataset file is empty")
)

package evaluate

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrLengthMismatch = errors.New("prediction and label lengths differ")
	ErrUnknownLabel   = errors.New("label outside the play-type categories")
)

package estimator

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrNotFitted   = errors.New("estimator not fitted")
	ErrEmptyMatrix = errors.New("empty feature matrix")
	ErrLabelCount  = errors.New("label count does not match row count")
)

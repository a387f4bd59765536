package feature

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrOutOfDomain reports a value no bucket rule covers. Bucket coverage
	// is a coding invariant, so this is fatal rather than a dropped row.
	ErrOutOfDomain = errors.New("value outside bucket domain")

	// ErrUnknownLevel reports a category level the encoder was not built with.
	ErrUnknownLevel = errors.New("unknown category level")
)

package tx

import "errors"

// Sentinel errors returned by New. Builder failures wrap one of them, so
// callers test with errors.Is.
var (
	// ErrInvalidArgument is returned for an unknown transform type, a length
	// the engine cannot factor, or a flag combination the type does not support.
	ErrInvalidArgument = errors.New("tx: invalid argument")

	// ErrOutOfMemory is returned when a table or scratch allocation fails.
	// Nothing allocated before the failure is retained.
	ErrOutOfMemory = errors.New("tx: out of memory")
)

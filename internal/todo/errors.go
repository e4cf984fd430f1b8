package todo

import "errors"

// Sentinel errors returned by Store operations. Callers match them with
// errors.Is; returned errors carry the offending title or value.
var (
	// ErrNotFound is returned when no entry has the requested title.
	ErrNotFound = errors.New("todo not found")

	// ErrOutOfRange is returned when a priority or index falls outside the
	// store, or when the insertion counter is exhausted.
	ErrOutOfRange = errors.New("out of range")

	// ErrDuplicateTitle is returned when a title is already in the store.
	ErrDuplicateTitle = errors.New("duplicate title")

	// ErrEmptyTitle is returned for a title that is blank after trimming.
	ErrEmptyTitle = errors.New("empty title")
)

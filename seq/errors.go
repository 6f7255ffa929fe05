package seq

import "errors"

// Sentinel errors returned by Sequence operations.
var (
	// ErrEmptySequence is returned when an operation requires at least one
	// element to seed itself but the sequence is empty.
	ErrEmptySequence = errors.New("seq: operation on empty sequence")

	// ErrNoMatchingItems is returned by FindOrFail when no element
	// satisfies the predicate.
	ErrNoMatchingItems = errors.New("seq: no elements match the given condition")
)

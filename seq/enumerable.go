package seq

// Enumerable is the interface satisfied by [Sequence][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Sequence type.
//
// A minimal implementation only needs to provide these methods; the
// package-level helpers are built on top of this surface.
type Enumerable[T any] interface {
	// All returns a copy of every element as a plain Go slice.
	All() []T

	// Size returns the number of elements.
	Size() int

	// Each calls fn(item, index) for every element.
	Each(fn func(T, int))

	// Filter returns a new sequence containing only elements for which
	// pred returns true.
	Filter(pred func(T) bool) *Sequence[T]

	// Reject returns a new sequence with elements for which pred returns
	// true removed.
	Reject(pred func(T) bool) *Sequence[T]

	// Find returns the first element satisfying pred.
	// Returns the zero value and false when nothing matches.
	Find(pred func(T) bool) (T, bool)

	// IsEmpty reports whether the sequence contains no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the sequence contains at least one
	// element.
	IsNotEmpty() bool

	// ToSlice is an alias for All.
	ToSlice() []T
}

package seq

import "fmt"

// Sequence is a generic, immutable-by-default wrapper around an ordered,
// finite slice of T.
//
// Every method that transforms the sequence returns a *new* Sequence,
// leaving the original unchanged. This design is goroutine-safe for reads
// (multiple goroutines may read the same sequence concurrently) and avoids
// accidental aliasing bugs in pipelines.
//
// # Creating a sequence
//
//	c := seq.New(1, 2, 3, 4, 5)
//	c := seq.From([]string{"a", "b", "c"})
//	c := seq.Empty[int]()
//
// # Method chaining
//
//	result := seq.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Take(2)
//
// Operations that introduce a new element or key type (Map, GroupBy,
// SortBy, …) are package-level functions; see the package documentation.
type Sequence[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Sequence from a variadic list of elements (copied).
func New[T any](items ...T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// From creates a Sequence from a slice (the slice is copied).
func From[T any](items []T) *Sequence[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Sequence[T]{items: dst}
}

// Empty creates an empty Sequence of type T.
func Empty[T any]() *Sequence[T] {
	return &Sequence[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Sequence[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ToSlice is an alias for [Sequence.All].
func (c *Sequence[T]) ToSlice() []T { return c.All() }

// Size returns the number of elements, counted with a [Fold] pass.
func (c *Sequence[T]) Size() int {
	return Fold(c, func(n int, _ T) int { return n + 1 }, 0)
}

// IsEmpty reports whether the sequence contains no elements.
func (c *Sequence[T]) IsEmpty() bool { return len(c.items) == 0 }

// IsNotEmpty reports whether the sequence has at least one element.
func (c *Sequence[T]) IsNotEmpty() bool { return len(c.items) > 0 }

// Get returns the element at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (c *Sequence[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// First returns the first element, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no element
// satisfies the predicate.
func (c *Sequence[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		return c.Find(fns[0])
	}
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[0], true
}

// Last returns the last element, optionally matching fns[0].
// Returns the zero value and false when the sequence is empty or no element
// satisfies the predicate.
func (c *Sequence[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		var found T
		matched := false
		for _, item := range c.items {
			if fns[0](item) {
				found = item
				matched = true
			}
		}
		return found, matched
	}
	if len(c.items) == 0 {
		return zero, false
	}
	return c.items[len(c.items)-1], true
}

// String returns a human-readable representation of the elements.
// It implements [fmt.Stringer].
func (c *Sequence[T]) String() string {
	return fmt.Sprintf("%v", c.items)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every element, in order.
func (c *Sequence[T]) Each(fn func(T, int)) {
	for i, item := range c.items {
		fn(item, i)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering / slicing
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns a new sequence with elements in the opposite order,
// built in a single pass.
func (c *Sequence[T]) Reverse() *Sequence[T] {
	n := len(c.items)
	out := make([]T, n)
	for i, item := range c.items {
		out[n-1-i] = item
	}
	return &Sequence[T]{items: out}
}

// Take returns at most n elements from the start.
func (c *Sequence[T]) Take(n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	if n > len(c.items) {
		n = len(c.items)
	}
	return From(c.items[:n])
}

// Skip returns a new sequence without the first n elements.
func (c *Sequence[T]) Skip(n int) *Sequence[T] {
	if n < 0 {
		n = 0
	}
	if n >= len(c.items) {
		return Empty[T]()
	}
	return From(c.items[n:])
}

// Concat returns a new sequence with all elements of other appended.
func (c *Sequence[T]) Concat(other *Sequence[T]) *Sequence[T] {
	out := make([]T, len(c.items)+len(other.items))
	copy(out, c.items)
	copy(out[len(c.items):], other.items)
	return &Sequence[T]{items: out}
}

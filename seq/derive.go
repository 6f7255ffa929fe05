package seq

// This file contains the operations derived from [Fold]: transformation,
// filtering, searching and the boolean queries built on top of them.
// Operations that introduce a new element type (or need a comparable
// element) are package-level functions; type-preserving ones are methods.

// Identity returns its argument unchanged. It is the default key and
// predicate for operations documented as accepting one — for example
// c.Every(seq.Identity[bool]) tests a boolean sequence for all-true.
func Identity[T any](v T) T { return v }

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to every element and returns a new Sequence[U] in the
// original order. The output always has the same length as the input.
//
//	doubled := seq.Map(seq.New(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](c *Sequence[T], fn func(T) U) *Sequence[U] {
	out := Fold(c, func(acc []U, item T) []U {
		return append(acc, fn(item))
	}, make([]U, 0, len(c.items)))
	return &Sequence[U]{items: out}
}

// FlatMap applies fn to every element (producing a []U per element) and
// flattens the results into a single Sequence[U].
//
//	words := seq.FlatMap(seq.New("hello world", "foo bar"), strings.Fields)
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](c *Sequence[T], fn func(T) []U) *Sequence[U] {
	out := Fold(c, func(acc []U, item T) []U {
		return append(acc, fn(item)...)
	}, make([]U, 0, len(c.items)))
	return &Sequence[U]{items: out}
}

// Pluck extracts a single projection U from every element and returns a new
// Sequence[U].
//
//	names := seq.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Sequence[T], fn func(T) U) *Sequence[U] {
	return Map(c, fn)
}

// Filter returns a new sequence with only the elements for which pred
// returns true, in the original order.
func (c *Sequence[T]) Filter(pred func(T) bool) *Sequence[T] {
	out := Fold(c, func(acc []T, item T) []T {
		if pred(item) {
			return append(acc, item)
		}
		return acc
	}, make([]T, 0, len(c.items)))
	return &Sequence[T]{items: out}
}

// Reject returns a new sequence with elements for which pred returns true
// removed. It is the complement of [Sequence.Filter]: every element of c
// appears in exactly one of the two results.
func (c *Sequence[T]) Reject(pred func(T) bool) *Sequence[T] {
	return c.Filter(func(item T) bool { return !pred(item) })
}

// Unique returns a new sequence with duplicates removed, keeping the first
// occurrence of each key. fn extracts the comparison key.
func Unique[T any, K comparable](c *Sequence[T], fn func(T) K) *Sequence[T] {
	seen := make(map[K]struct{}, len(c.items))
	return c.Filter(func(item T) bool {
		k := fn(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
		return true
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & membership
// ─────────────────────────────────────────────────────────────────────────────

// Find returns the first element satisfying pred, stopping the traversal at
// the first match. Returns the zero value and false when nothing matches.
func (c *Sequence[T]) Find(pred func(T) bool) (T, bool) {
	var zero T
	for _, item := range c.items {
		if pred(item) {
			return item, true
		}
	}
	return zero, false
}

// FindOrFail returns the first element satisfying pred, or
// [ErrNoMatchingItems].
func (c *Sequence[T]) FindOrFail(pred func(T) bool) (T, error) {
	item, ok := c.Find(pred)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether some element equals value. It is a fold with a
// boolean accumulator that sticks at true once set.
func Contains[T comparable](c *Sequence[T], value T) bool {
	return Fold(c, func(found bool, item T) bool {
		return found || item == value
	}, false)
}

// ─────────────────────────────────────────────────────────────────────────────
// Boolean queries
// ─────────────────────────────────────────────────────────────────────────────

// Every reports whether no element fails pred, defined as the rejected
// subsequence being empty. An empty sequence is vacuously true.
func (c *Sequence[T]) Every(pred func(T) bool) bool {
	return c.Reject(pred).IsEmpty()
}

// Some reports whether [Sequence.Find] locates an element satisfying pred.
// An empty sequence is always false.
func (c *Sequence[T]) Some(pred func(T) bool) bool {
	_, ok := c.Find(pred)
	return ok
}

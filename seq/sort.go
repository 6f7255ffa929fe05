package seq

import "cmp"

// Sort returns a new sequence ordered by the given less function, using a
// stable insertion sort: each element is inserted into a sorted prefix
// immediately before the first element that must come after it, so elements
// comparing equal keep their original relative order.
//
// The sort is O(n²) comparisons and moves, uniform for every input shape
// (already-sorted and reverse-sorted inputs are not special-cased). Use it
// for the small sequences this package targets, not as a general-purpose
// sort.
func (c *Sequence[T]) Sort(less func(a, b T) bool) *Sequence[T] {
	sorted := make([]T, 0, len(c.items))
	for _, item := range c.items {
		// Walk past every prefix element that does not strictly follow
		// item; a strict test keeps duplicates in input order.
		pos := len(sorted)
		for i, existing := range sorted {
			if less(item, existing) {
				pos = i
				break
			}
		}
		sorted = append(sorted, item)
		copy(sorted[pos+1:], sorted[pos:])
		sorted[pos] = item
	}
	return &Sequence[T]{items: sorted}
}

// SortBy returns a new sequence ordered ascending by the key extracted by
// key. The sort is stable; see [Sequence.Sort].
//
//	byAge := seq.SortBy(users, func(u User) int { return u.Age })
func SortBy[T any, K cmp.Ordered](c *Sequence[T], key func(T) K) *Sequence[T] {
	return c.Sort(func(a, b T) bool { return key(a) < key(b) })
}

// SortByDesc returns a new sequence ordered descending by key.
// Ties keep input order, mirroring [SortBy].
func SortByDesc[T any, K cmp.Ordered](c *Sequence[T], key func(T) K) *Sequence[T] {
	return c.Sort(func(a, b T) bool { return key(a) > key(b) })
}

// Sort returns a new sequence of ordered elements sorted ascending by their
// natural order ([SortBy] with the identity key).
func Sort[T cmp.Ordered](c *Sequence[T]) *Sequence[T] {
	return SortBy(c, Identity[T])
}

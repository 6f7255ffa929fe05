package seq

import "cmp"

// MaxBy returns the element with the greatest key as extracted by key,
// seeding an unseeded fold with the first element. The comparison is
// strict, so when several elements share the greatest key the earliest one
// wins.
//
// Returns [ErrEmptySequence] when c is empty (no seed exists).
func MaxBy[T any, K cmp.Ordered](c *Sequence[T], key func(T) K) (T, error) {
	return FoldFirst(c, func(best, item T) T {
		if key(item) > key(best) {
			return item
		}
		return best
	})
}

// MinBy returns the element with the smallest key; ties keep the earliest
// element. Returns [ErrEmptySequence] when c is empty.
func MinBy[T any, K cmp.Ordered](c *Sequence[T], key func(T) K) (T, error) {
	return FoldFirst(c, func(best, item T) T {
		if key(item) < key(best) {
			return item
		}
		return best
	})
}

// Max returns the greatest element of an ordered sequence ([MaxBy] with the
// identity key).
func Max[T cmp.Ordered](c *Sequence[T]) (T, error) {
	return MaxBy(c, Identity[T])
}

// Min returns the smallest element of an ordered sequence ([MinBy] with the
// identity key).
func Min[T cmp.Ordered](c *Sequence[T]) (T, error) {
	return MinBy(c, Identity[T])
}

package seq

// Fold reduces c to a single value of type A, consuming elements exactly
// once, left to right. Folding an empty sequence returns initial unchanged.
//
// The traversal is a plain loop, so stack use stays constant regardless of
// sequence length. fn is assumed pure; purity is not enforced.
//
//	sum := seq.Fold(seq.New(1, 2, 3, 4),
//	    func(acc, n int) int { return acc + n }, 0) // → 10
func Fold[T, A any](c *Sequence[T], fn func(A, T) A, initial A) A {
	acc := initial
	for _, item := range c.items {
		acc = fn(acc, item)
	}
	return acc
}

// FoldFirst folds without an initial accumulator: the first element seeds
// the fold and the remaining elements are consumed in order. Because the
// seed comes from the sequence itself, the accumulator type is the element
// type.
//
// Returns [ErrEmptySequence] when c has no element to seed with.
func FoldFirst[T any](c *Sequence[T], fn func(acc, item T) T) (T, error) {
	var zero T
	if len(c.items) == 0 {
		return zero, ErrEmptySequence
	}
	acc := c.items[0]
	for _, item := range c.items[1:] {
		acc = fn(acc, item)
	}
	return acc, nil
}

// Fold reduces the sequence to a single value of the same element type T.
//
// For folds that change the accumulator type (T → A where A ≠ T), use the
// package-level [Fold] function.
func (c *Sequence[T]) Fold(fn func(acc, item T) T, initial T) T {
	return Fold(c, fn, initial)
}

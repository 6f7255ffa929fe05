package seq

// GroupBy groups elements by the classification key returned by classify.
// Each group preserves the input's relative order; a key's entry is created
// on first encounter. Built as a fold that appends every element to its
// key's group.
//
//	byParity := seq.GroupBy(seq.New(1, 2, 3, 4, 5), func(n int) string {
//	    if n%2 == 0 {
//	        return "even"
//	    }
//	    return "odd"
//	})
//	// → map["even": [2 4], "odd": [1 3 5]]
func GroupBy[T any, K comparable](c *Sequence[T], classify func(T) K) map[K]*Sequence[T] {
	return Fold(c, func(groups map[K]*Sequence[T], item T) map[K]*Sequence[T] {
		k := classify(item)
		if groups[k] == nil {
			groups[k] = Empty[T]()
		}
		groups[k].items = append(groups[k].items, item)
		return groups
	}, make(map[K]*Sequence[T]))
}

// IndexBy maps each classification key to the *last* element that produced
// it (last write wins on key collision), using a fold with plain key
// overwrite.
//
//	byID := seq.IndexBy(users, func(u User) int { return u.ID })
func IndexBy[T any, K comparable](c *Sequence[T], classify func(T) K) map[K]T {
	return Fold(c, func(index map[K]T, item T) map[K]T {
		index[classify(item)] = item
		return index
	}, make(map[K]T, len(c.items)))
}

// CountBy maps each classification key to the number of elements that
// classified to it, computed by running [GroupBy] and taking each group's
// size.
func CountBy[T any, K comparable](c *Sequence[T], classify func(T) K) map[K]int {
	groups := GroupBy(c, classify)
	counts := make(map[K]int, len(groups))
	for k, group := range groups {
		counts[k] = group.Size()
	}
	return counts
}

// Partition splits the sequence into exactly two: the first contains the
// elements for which pred returns true, the second the rest, both in the
// original order. It runs [GroupBy] with pred as the classifier; a side with
// no elements comes back as an empty sequence, so constantly-true and
// constantly-false predicates are safe.
func (c *Sequence[T]) Partition(pred func(T) bool) (*Sequence[T], *Sequence[T]) {
	groups := GroupBy(c, pred)
	pass, fail := groups[true], groups[false]
	if pass == nil {
		pass = Empty[T]()
	}
	if fail == nil {
		fail = Empty[T]()
	}
	return pass, fail
}

// Package seq provides a generic, immutable Sequence type and a small
// algebra of collection functions (map, filter, find, sort, grouping,
// partitioning) derived from a single fold primitive, inspired by
// underscore.js's collection surface.
//
// # Overview
//
// The central type is [Sequence][T], a generic wrapper around an ordered,
// finite slice of T:
//
//	evens := seq.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 })
//	sum := seq.Fold(evens, func(acc, n int) int { return acc + n }, 0) // → 12
//
// # Derivation from fold
//
// [Fold] consumes a sequence left to right with an explicit accumulator and
// is the primitive everything else is layered on: [Map], [Sequence.Filter],
// [Sequence.Reject], [Contains], [Sequence.Size], [GroupBy], [IndexBy] are
// all fold passes; [Sequence.Every], [Sequence.Some], [MaxBy], [MinBy],
// [CountBy] and [Sequence.Partition] compose those. The exceptions are
// [Sequence.Find], which short-circuits on the first match (a fold cannot
// stop early), and the sort family, which is an independent stable
// insertion sort.
//
// # Immutability
//
// All transformation methods return a *new* Sequence, leaving the original
// unchanged. Sequence values are therefore safe to share across goroutines
// without locking, and the same sequence may feed any number of pipelines
// simultaneously.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type (or need a comparable or ordered
// key) are exposed as package-level functions:
//
//	// Method-based (element type preserved):
//	c.Filter(func(n int) bool { return n > 2 })
//
//	// Package-level (element or key type introduced):
//	seq.Map(c, strconv.Itoa)
//	seq.GroupBy(c, func(n int) string { ... })
//	seq.SortBy(c, func(u User) int { return u.Age })
//
// Package-level functions: [Fold], [FoldFirst], [Map], [FlatMap], [Pluck],
// [Contains], [Unique], [GroupBy], [IndexBy], [CountBy], [Sort], [SortBy],
// [SortByDesc], [Min], [Max], [MinBy], [MaxBy], [Zip].
//
// # Failure contracts
//
// Operations that need at least one element to seed themselves
// ([FoldFirst], [Min], [Max], [MinBy], [MaxBy]) return [ErrEmptySequence]
// on empty input. Lookups report absence through a (value, ok) pair —
// [Sequence.Find], [Sequence.First], [Sequence.Last] — or through
// [ErrNoMatchingItems] in their OrFail forms. All failures are
// deterministic functions of the input.
package seq

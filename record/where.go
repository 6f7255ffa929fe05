package record

import (
	"github.com/spf13/cast"

	"github.com/hasbyte1/go-underscore-utils/seq"
)

// Where returns the elements whose properties are a superset of props,
// preserving input order. Matching is strict; see [Record.Matches].
//
//	circles := record.Where(shapes, record.Record{"shape": "circle"})
func Where(c *seq.Sequence[Record], props Record) *seq.Sequence[Record] {
	return c.Filter(func(r Record) bool { return r.Matches(props) })
}

// WhereLoose is [Where] with loose scalar comparison; see
// [Record.MatchesLoose].
func WhereLoose(c *seq.Sequence[Record], props Record) *seq.Sequence[Record] {
	return c.Filter(func(r Record) bool { return r.MatchesLoose(props) })
}

// FindWhere returns the first element whose properties are a superset of
// props. Returns nil and false when nothing matches.
func FindWhere(c *seq.Sequence[Record], props Record) (Record, bool) {
	return c.Find(func(r Record) bool { return r.Matches(props) })
}

// FindWhereOrFail returns the first element matching props, or
// [seq.ErrNoMatchingItems].
func FindWhereOrFail(c *seq.Sequence[Record], props Record) (Record, error) {
	return c.FindOrFail(func(r Record) bool { return r.Matches(props) })
}

// Pluck extracts the value at the dot-notation key from every element.
// Elements that do not resolve the key contribute a nil value, so the
// output length always equals the input length.
func Pluck(c *seq.Sequence[Record], key string) *seq.Sequence[any] {
	return seq.Map(c, func(r Record) any {
		v, _ := r.Get(key)
		return v
	})
}

// PluckString is [Pluck] with every value rendered to a string.
// Unresolvable keys and non-scalar values contribute "".
func PluckString(c *seq.Sequence[Record], key string) *seq.Sequence[string] {
	return seq.Map(c, func(r Record) string {
		v, _ := r.Get(key)
		s, err := cast.ToStringE(v)
		if err != nil {
			return ""
		}
		return s
	})
}

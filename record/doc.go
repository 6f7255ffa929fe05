// Package record models sequence elements as property maps and provides
// the property-matching helpers (Where, FindWhere, Pluck) over them,
// mirroring underscore.js's _.where family.
//
// # The Record type
//
// A [Record] is a mapping from field name to value:
//
//	people := seq.New(
//	    record.Record{"name": "moe", "age": 40},
//	    record.Record{"name": "larry", "age": 50},
//	)
//
// Nested records are addressed with dot-notation key paths:
//
//	r := record.Record{"user": record.Record{"address": record.Record{"city": "London"}}}
//	r.Get("user.address.city") // → "London", true
//
// # Matching
//
// A record matches a property specification when every key in the
// specification exists in the record with an equal value — the
// specification's entries form a subset of the record's entries:
//
//	circles := record.Where(shapes, record.Record{"shape": "circle"})
//
// [Record.Matches] compares values strictly. [Record.MatchesLoose] relaxes
// the comparison for scalars, so values that differ only in concrete
// numeric type (or between a number and its string form) still match.
package record

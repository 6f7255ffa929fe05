package record

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Record is an element modeled as a mapping from field name to value.
// Keys are unique; values may themselves be Records (or map[string]any),
// addressed through dot-notation key paths.
type Record map[string]any

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves a value using a dot-notation key path.
// Returns the value and true, or nil and false when the path does not
// resolve.
//
//	r.Get("user.address.city")
func (r Record) Get(key string) (any, bool) {
	segments := strings.Split(key, ".")
	current := r
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := asRecord(val)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Has reports whether the dot-notation key path resolves in r.
func (r Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Flatten returns a single-level copy of r with nested records collapsed
// into dot-notation keys.
//
//	Record{"a": Record{"b": 1}}.Flatten() // → Record{"a.b": 1}
func (r Record) Flatten() Record {
	out := make(Record)
	flattenInto("", r, out)
	return out
}

func flattenInto(prefix string, r Record, out Record) {
	for k, v := range r {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := asRecord(v); ok {
			flattenInto(key, nested, out)
			continue
		}
		out[key] = v
	}
}

func asRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, true
	case map[string]any:
		return Record(m), true
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Matching
// ─────────────────────────────────────────────────────────────────────────────

// Matches reports whether every key in props exists in r with an equal
// value — props' entries must be a subset of r's key/value pairs. Keys may
// be dot-notation paths into nested records. Values are compared with
// [reflect.DeepEqual]; see [Record.MatchesLoose] for loose scalar
// comparison.
//
// An empty props matches every record.
func (r Record) Matches(props Record) bool {
	for key, want := range props {
		got, ok := r.Get(key)
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// MatchesLoose is [Record.Matches] with loose scalar comparison: values
// that differ in concrete type but represent the same scalar (int 1 vs
// int64 1, 5 vs "5") still compare equal. Non-scalar values fall back to
// strict comparison.
func (r Record) MatchesLoose(props Record) bool {
	for key, want := range props {
		got, ok := r.Get(key)
		if !ok || !looseEqual(got, want) {
			return false
		}
	}
	return true
}

func looseEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	as, errA := cast.ToStringE(a)
	bs, errB := cast.ToStringE(b)
	if errA != nil || errB != nil {
		return false
	}
	return as == bs
}

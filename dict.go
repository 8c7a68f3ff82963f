package nested

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPath = errors.New("path must contain at least one key")
	ErrNilMap    = errors.New("cannot write into a nil map")
	ErrNotAMap   = errors.New("existing intermediate value is not a map")
)

// Map is a nested mapping: a string-keyed map whose values may
// themselves be Maps, to arbitrary depth. It is an alias, not a defined
// type, so the map[string]any trees returned by yaml and json decoders
// are Maps as-is.
type Map = map[string]any

// Path is an ordered sequence of keys locating a value inside a Map,
// one key per nesting level. Paths are opaque: keys are never split on
// separators, so a key may itself contain dots or slashes.
type Path []string

// Get resolves path against m, descending one level per key, and
// returns the addressed value. Any miss, whether a missing key or an
// intermediate value that is not a Map, yields nil rather than a panic.
// An empty path addresses the root and returns m itself. Get never
// mutates m.
//
// A nil result is ambiguous between "absent" and "nil was stored";
// use Lookup when that distinction matters.
func Get(m Map, path ...string) any {
	v, _ := Lookup(m, path...)
	return v
}

// Lookup is Get with an explicit absence marker: it reports whether the
// path fully resolved, keeping a stored nil distinguishable from a
// missing key. Lookup is total: for any inputs, including a nil m and
// intermediates of the wrong type, it returns (nil, false) instead of
// panicking.
//
// Lookup(m, "k") is the single-level lookup; longer variadic calls
// descend one level per key.
func Lookup(m Map, path ...string) (any, bool) {
	if len(path) == 0 {
		return m, true
	}
	cur := m
	for _, key := range path[:len(path)-1] {
		next, ok := cur[key].(Map)
		if !ok {
			return nil, false
		}
		cur = next
	}
	v, ok := cur[path[len(path)-1]]
	return v, ok
}

// Set assigns value at path inside m, creating an empty Map at every
// missing intermediate level. An intermediate key holding a nil Map is
// treated the same way: a fresh Map replaces it. Set mutates m in
// place; after a nil error, Get(m, path...) returns value.
//
// An empty path is rejected with ErrEmptyPath: the root cannot be
// replaced through an in-place mutation of a caller-owned map. A nil m
// is rejected with ErrNilMap. When an intermediate key already holds a
// non-Map value, Set returns an error wrapping ErrNotAMap instead of
// overwriting it.
func Set(m Map, path Path, value any) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if m == nil {
		return ErrNilMap
	}

	cur := m
	for _, key := range path[:len(path)-1] {
		existing, ok := cur[key]
		if !ok {
			next := Map{}
			cur[key] = next
			cur = next
			continue
		}
		next, ok := existing.(Map)
		if !ok {
			return fmt.Errorf("key %q holds %T: %w", key, existing, ErrNotAMap)
		}
		if next == nil {
			// a stored nil Map cannot be written into; treat it like a
			// missing key
			next = Map{}
			cur[key] = next
		}
		cur = next
	}

	cur[path[len(path)-1]] = value
	return nil
}

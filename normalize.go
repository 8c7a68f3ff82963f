package nested

import (
	"sort"
	"strings"
)

// SortKeys copies m into a new Doc with the keys at every mapping level
// ordered by case-insensitive comparison of the key, recursing into
// nested Maps. Non-map values, including slices and any maps inside
// them, pass through untouched. Keys equal after lower-casing fall back
// to byte order, so the result is deterministic for a given key/value
// content regardless of how the map was built. m is not mutated.
func SortKeys(m Map) Doc {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		li, lj := strings.ToLower(keys[i]), strings.ToLower(keys[j])
		if li != lj {
			return li < lj
		}
		return keys[i] < keys[j]
	})

	doc := make(Doc, 0, len(keys))
	for _, k := range keys {
		v := m[k]
		if child, ok := v.(Map); ok {
			doc = append(doc, Entry{Key: k, Value: SortKeys(child)})
		} else {
			doc = append(doc, Entry{Key: k, Value: v})
		}
	}
	return doc
}

// PruneNils removes, depth-first and in place, every key of m whose
// value is nil, recursing into nested Maps. A nested Map left empty by
// pruning is kept: only nil-valued keys go. Nils inside slices are left
// alone. PruneNils returns m for chaining and is idempotent.
func PruneNils(m Map) Map {
	for k, v := range m {
		switch child := v.(type) {
		case nil:
			delete(m, k)
		case Map:
			PruneNils(child)
		}
	}
	return m
}

// Normalize prunes m in place and returns it as a sorted Doc, ready
// for deterministic serialization. Equivalent to SortKeys(PruneNils(m)).
func Normalize(m Map) Doc {
	return SortKeys(PruneNils(m))
}

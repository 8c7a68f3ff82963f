// Package nested addresses, reads, writes, and normalizes values inside
// arbitrarily nested string-keyed maps, such as the map[string]any trees
// produced by YAML and JSON decoders.
//
// Key capabilities:
//   - Path-based reads with an explicit absence marker (Get, Lookup)
//   - In-place writes that create missing intermediate maps (Set)
//   - Deterministic case-insensitive key sorting into an ordered Doc (SortKeys)
//   - Recursive in-place removal of nil-valued keys (PruneNils)
//   - One-call normalization ahead of serialization (Normalize)
//
// Every function is a single-pass synchronous transformation over a
// caller-owned map; the package keeps no state between calls. Distinct
// maps may be used from multiple goroutines freely. Calls that mutate
// (Set, PruneNils, Normalize) are not synchronized internally, so a map
// shared across goroutines needs locking by the caller.
package nested

package dotmap

import "github.com/rengeln/polymorphic-collections/collections"

// Open exposes m as a lookup facade keyed by dot-notation paths.
//
// The accessor reads through to m, so entries added or removed after Open
// are observed. The pointer returned by Get addresses a value cached by
// the accessor, not storage inside m.
func Open(m map[string]any) *collections.Accessor[string, any] {
	return collections.AccessFunc(func(path string) (any, bool) {
		return Get(m, path)
	})
}

// Gather exposes m as an ingestion facade keyed by dot-notation paths:
// every Add becomes a [Set] on m.
func Gather(m map[string]any) *collections.Aggregator[string, any] {
	return collections.AggregateFunc(func(path string, value any) {
		Set(m, path, value)
	})
}

// Entries enumerates the flattened form of m as path/value pairs,
// snapshotted at call time.
func Entries(m map[string]any) *collections.Enumerator[collections.Pair[string, any]] {
	return collections.EnumerateMap(Flatten(m))
}

package collections

import "fmt"

// Pair holds one key/value entry. It is the element type produced by
// [EnumerateMap].
type Pair[K, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "(key, value)".
func (p Pair[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Key, p.Value)
}

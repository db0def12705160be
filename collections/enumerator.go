package collections

import (
	"iter"
	"unsafe"
)

// Enumerator is a forward, single-pass cursor over any enumerable source.
//
// The zero value is an unattached enumerator: Next reports exhaustion,
// which is indistinguishable from an attached enumerator that has run out
// of elements. Construct attached enumerators with [Enumerate],
// [EnumeratePtr], [EnumerateSeq], [EnumerateFunc] or [EnumerateMap].
//
// An Enumerator is move-only. Transfer ownership with [Enumerator.Move];
// copying is flagged by go vet.
type Enumerator[T any] struct {
	noCopy  noCopy
	adapter enumeratorAdapter[T]
	policy  Policy
}

// enumeratorAdapter is the handle through which the facade reaches the
// wrapped source. Exactly one adapter is owned per attached facade.
type enumeratorAdapter[T any] interface {
	next() (*T, bool)
}

// closer is implemented by adapters holding releasable resources.
type closer interface {
	close()
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Enumerate returns an enumerator over the elements of s, in order.
//
// The enumerator aliases the slice: Next returns pointers into its backing
// array, so mutations through them are visible to the caller, and the
// backing array stays alive for as long as the enumerator does. Enumerating
// a subslice (s[i:j]) traverses exactly that range.
func Enumerate[T any](s []T) *Enumerator[T] {
	return &Enumerator[T]{adapter: &sliceEnumerator[T]{items: s}}
}

// EnumeratePtr returns an enumerator over the n elements starting at p.
//
//	buf := (*C.int)(cBuffer)
//	e := collections.EnumeratePtr(buf, 16)
func EnumeratePtr[T any](p *T, n int) *Enumerator[T] {
	return Enumerate(unsafe.Slice(p, n))
}

// EnumerateSeq returns an enumerator over an [iter.Seq] sequence.
//
// The sequence is pulled lazily, one element per Next call. The element
// returned by Next is a copy held by the enumerator; it remains valid until
// the next call. Call Close to release the underlying pull iterator when
// abandoning the enumerator before exhaustion.
func EnumerateSeq[T any](seq iter.Seq[T]) *Enumerator[T] {
	pull, stop := iter.Pull(seq)
	return &Enumerator[T]{adapter: &seqEnumerator[T]{pull: pull, stop: stop}}
}

// EnumerateFunc returns an enumerator that produces elements by calling fn.
//
// fn reports the end of the sequence by returning false, after which the
// enumerator is exhausted permanently; fn is not called again. The element
// returned by Next is a copy held by the enumerator and remains valid until
// the next call.
func EnumerateFunc[T any](fn func() (T, bool)) *Enumerator[T] {
	return &Enumerator[T]{adapter: &funcEnumerator[T]{fn: fn}}
}

// EnumerateMap returns an enumerator over the entries of m as [Pair] values.
//
// The entries are snapshotted at construction time, in map order (which is
// unspecified); the enumerator owns the snapshot and later changes to m are
// not observed.
func EnumerateMap[K comparable, V any](m map[K]V) *Enumerator[Pair[K, V]] {
	pairs := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		pairs = append(pairs, Pair[K, V]{Key: k, Value: v})
	}
	return Enumerate(pairs)
}

// ─────────────────────────────────────────────────────────────────────────────
// Facade operations
// ─────────────────────────────────────────────────────────────────────────────

// Next returns a pointer to the next element and true, or (nil, false) once
// the source is exhausted. Exhaustion is a terminal state: every subsequent
// call keeps reporting it. An unattached enumerator is always exhausted.
//
// Under a nonblocking policy a declined acquisition also yields
// (nil, false); callers cannot and should not distinguish it from
// exhaustion.
func (e *Enumerator[T]) Next() (*T, bool) {
	if e.adapter == nil {
		return nil, false
	}
	if e.policy != nil {
		if !e.policy.Lock() {
			return nil, false
		}
		defer e.policy.Unlock()
	}
	return e.adapter.next()
}

// Move transfers the adapter and policy to a fresh enumerator and detaches
// e. The returned enumerator continues exactly where e left off; e itself
// reports exhaustion from now on.
func (e *Enumerator[T]) Move() *Enumerator[T] {
	moved := &Enumerator[T]{adapter: e.adapter, policy: e.policy}
	e.adapter = nil
	e.policy = nil
	return moved
}

// WithPolicy attaches a locking policy and returns e for chaining.
func (e *Enumerator[T]) WithPolicy(p Policy) *Enumerator[T] {
	e.policy = p
	return e
}

// Close releases any resources held by the adapter and detaches it.
// Only sequence-backed enumerators hold resources; for every other kind
// Close merely detaches. Safe to call multiple times.
func (e *Enumerator[T]) Close() error {
	if c, ok := e.adapter.(closer); ok {
		c.close()
	}
	e.adapter = nil
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Adapters
// ─────────────────────────────────────────────────────────────────────────────

// sliceEnumerator advances over a half-open range of a slice.
type sliceEnumerator[T any] struct {
	items []T
	pos   int
}

func (a *sliceEnumerator[T]) next() (*T, bool) {
	if a.pos >= len(a.items) {
		return nil, false
	}
	p := &a.items[a.pos]
	a.pos++
	return p, true
}

// seqEnumerator pulls from an iter.Seq. The pulled element is cached so the
// pointer handed out by next stays valid until the following call.
type seqEnumerator[T any] struct {
	pull func() (T, bool)
	stop func()
	cur  T
}

func (a *seqEnumerator[T]) next() (*T, bool) {
	v, ok := a.pull()
	if !ok {
		a.stop()
		return nil, false
	}
	a.cur = v
	return &a.cur, true
}

func (a *seqEnumerator[T]) close() {
	a.stop()
}

// funcEnumerator produces elements from a function. The done flag makes
// exhaustion terminal even if the function would start yielding again.
type funcEnumerator[T any] struct {
	fn   func() (T, bool)
	cur  T
	done bool
}

func (a *funcEnumerator[T]) next() (*T, bool) {
	if a.done {
		return nil, false
	}
	v, ok := a.fn()
	if !ok {
		a.done = true
		return nil, false
	}
	a.cur = v
	return &a.cur, true
}

// Package collections provides four generic facade types — [Enumerator],
// [Accumulator], [Aggregator] and [Accessor] — that present a single,
// non-generic-looking surface over many possible concrete sources: slices,
// maps, iterator sequences, raw pointer ranges and plain functions.
//
// The point of the package is that a function can accept "any sequence of T"
// or "any sink of T" without being generic over the source shape itself:
//
//	func sum(e *collections.Enumerator[int]) int {
//	    total := 0
//	    for v, ok := e.Next(); ok; v, ok = e.Next() {
//	        total += *v
//	    }
//	    return total
//	}
//
//	sum(collections.Enumerate([]int{1, 2, 3}))
//	sum(collections.EnumerateFunc(countdown))
//
// # The four facades
//
//   - [Enumerator][T]: forward, single-pass traversal. Next returns a pointer
//     to the current element together with a presence flag.
//   - [Accumulator][T]: value-appending sink. Add appends, overwrites in
//     place, or forwards to a function depending on the wrapped sink.
//   - [Aggregator][K, T]: key/value-ingesting sink over map-like targets.
//   - [Accessor][K, T]: key-based lookup over map-like sources.
//
// # Construction
//
// Each facade has one constructor per supported source shape; the compiler
// picks the wrapped adapter, so an unsupported source is a compile error,
// never a runtime fallback:
//
//	e := collections.Enumerate([]int{10, 20, 30})   // slice
//	e := collections.EnumerateSeq(tree.All())       // iter.Seq[T]
//	a := collections.Accumulate(&out)               // growable slice
//	a := collections.Fill(buf)                      // fixed-capacity buffer
//	g := collections.Aggregate(index)               // map[K]T
//	x := collections.AccessFinder(cache)            // any type with Find
//
// Capability interfaces ([Appender], [Inserter], [Finder]) let user-defined
// containers plug in without the package knowing their concrete type.
//
// # Move-only value semantics
//
// A facade owns its adapter exclusively. Facades must not be copied (go vet
// flags copies); ownership is transferred with Move, which leaves the source
// detached:
//
//	f := e.Move() // e is now unattached, f continues where e left off
//
// Operations on an unattached Enumerator or Accessor report ordinary
// emptiness; Add on an unattached Accumulator or Aggregator returns
// [ErrNotAttached], because appending into nothing is a programming mistake
// rather than a normal terminal state.
//
// # Locking policies
//
// An optional [Policy] wraps every primary operation in an acquire/release
// pair. [Atomic] serialises calls with a mutex; [AtomicNonblocking] tries the
// mutex and, when it is already held, yields the operation's empty or no-op
// result instead of blocking. The policy guards one call at a time only —
// it provides no atomicity across calls.
//
//	a := collections.Accumulate(&out).WithPolicy(&collections.Atomic{})
package collections

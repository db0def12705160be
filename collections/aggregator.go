package collections

// Inserter is the map-insert capability. Any container exposing Insert can
// be wrapped by [AggregateInserter].
type Inserter[K, T any] interface {
	Insert(K, T)
}

// Aggregator is a key/value-ingesting sink over any insert-capable target.
//
// The zero value is an unattached aggregator: Add returns
// [ErrNotAttached]. Construct attached aggregators with [Aggregate],
// [AggregateInserter] or [AggregateFunc].
//
// An Aggregator is move-only. Transfer ownership with [Aggregator.Move];
// copying is flagged by go vet.
type Aggregator[K, T any] struct {
	noCopy  noCopy
	adapter aggregatorAdapter[K, T]
	policy  Policy
}

type aggregatorAdapter[K, T any] interface {
	add(K, T) error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Aggregate returns an aggregator inserting into m.
//
// Insertion follows the wrapped map's own semantics: adding a key that is
// already present overwrites the existing value, as assignment to a Go map
// does. Wrap a container with first-wins or multi-value semantics through
// [AggregateInserter] to get different behaviour.
func Aggregate[K comparable, T any](m map[K]T) *Aggregator[K, T] {
	return &Aggregator[K, T]{adapter: &mapAggregator[K, T]{m: m}}
}

// AggregateInserter returns an aggregator forwarding to any container with
// an Insert method.
func AggregateInserter[K, T any](dst Inserter[K, T]) *Aggregator[K, T] {
	return &Aggregator[K, T]{adapter: &inserterAggregator[K, T]{dst: dst}}
}

// AggregateFunc returns an aggregator that hands every key/value pair to
// fn. Add has no failure mode beyond whatever fn itself panics with.
func AggregateFunc[K, T any](fn func(K, T)) *Aggregator[K, T] {
	return &Aggregator[K, T]{adapter: &funcAggregator[K, T]{fn: fn}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Facade operations
// ─────────────────────────────────────────────────────────────────────────────

// Add ingests the pair (key, value) into the wrapped target.
//
// It returns [ErrNotAttached] on an unattached aggregator; otherwise nil.
// Under a nonblocking policy a declined acquisition is a silent no-op and
// Add returns nil.
func (g *Aggregator[K, T]) Add(key K, value T) error {
	if g.adapter == nil {
		return ErrNotAttached
	}
	if g.policy != nil {
		if !g.policy.Lock() {
			return nil
		}
		defer g.policy.Unlock()
	}
	return g.adapter.add(key, value)
}

// Move transfers the adapter and policy to a fresh aggregator and detaches
// g, which returns [ErrNotAttached] from now on.
func (g *Aggregator[K, T]) Move() *Aggregator[K, T] {
	moved := &Aggregator[K, T]{adapter: g.adapter, policy: g.policy}
	g.adapter = nil
	g.policy = nil
	return moved
}

// WithPolicy attaches a locking policy and returns g for chaining.
func (g *Aggregator[K, T]) WithPolicy(p Policy) *Aggregator[K, T] {
	g.policy = p
	return g
}

// ─────────────────────────────────────────────────────────────────────────────
// Adapters
// ─────────────────────────────────────────────────────────────────────────────

type mapAggregator[K comparable, T any] struct {
	m map[K]T
}

func (a *mapAggregator[K, T]) add(key K, value T) error {
	a.m[key] = value
	return nil
}

type inserterAggregator[K, T any] struct {
	dst Inserter[K, T]
}

func (a *inserterAggregator[K, T]) add(key K, value T) error {
	a.dst.Insert(key, value)
	return nil
}

type funcAggregator[K, T any] struct {
	fn func(K, T)
}

func (a *funcAggregator[K, T]) add(key K, value T) error {
	a.fn(key, value)
	return nil
}

package collections

// Finder is the lookup capability. Any container that can resolve a key to
// a stable element pointer can be wrapped by [AccessFinder]; mutations
// through the returned pointer reach the container directly.
type Finder[K, T any] interface {
	Find(K) (*T, bool)
}

// Accessor is a key-based lookup surface over any find-capable source.
//
// The zero value is an unattached accessor: Get reports absence, which is
// indistinguishable from a lookup miss. Construct attached accessors with
// [AccessMap], [EmbedMap], [AccessFinder] or [AccessFunc].
//
// An Accessor is move-only. Transfer ownership with [Accessor.Move];
// copying is flagged by go vet.
type Accessor[K, T any] struct {
	noCopy  noCopy
	adapter accessorAdapter[K, T]
	policy  Policy
}

type accessorAdapter[K, T any] interface {
	get(K) (*T, bool)
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// AccessMap returns an accessor that looks keys up in m.
//
// Go map entries are not addressable, so Get returns a pointer to a copy
// held by the accessor; writing through it does not reach m, and the copy
// is overwritten by the following Get. Use [EmbedMap] or [AccessFinder]
// when mutable access to the stored values is needed.
func AccessMap[K comparable, T any](m map[K]T) *Accessor[K, T] {
	return &Accessor[K, T]{adapter: &mapAccessor[K, T]{m: m}}
}

// EmbedMap returns an accessor that owns a copy of m's entries.
//
// The values are boxed individually, so Get returns a stable pointer into
// the accessor's own storage: mutations through it are visible to every
// later Get of the same key, and the pointers survive a Move of the
// accessor. Changes to the original map after construction are not
// observed.
func EmbedMap[K comparable, T any](m map[K]T) *Accessor[K, T] {
	boxed := make(map[K]*T, len(m))
	for k, v := range m {
		boxed[k] = &v
	}
	return &Accessor[K, T]{adapter: &embedAccessor[K, T]{m: boxed}}
}

// AccessFinder returns an accessor forwarding to any container with a Find
// method. The pointer handed out by Get comes straight from the container.
func AccessFinder[K, T any](src Finder[K, T]) *Accessor[K, T] {
	return &Accessor[K, T]{adapter: &finderAccessor[K, T]{src: src}}
}

// AccessFunc returns an accessor that resolves keys by calling fn.
//
// The produced value is cached by the accessor and Get returns a pointer
// to the cache, valid until the following Get.
func AccessFunc[K, T any](fn func(K) (T, bool)) *Accessor[K, T] {
	return &Accessor[K, T]{adapter: &funcAccessor[K, T]{fn: fn}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Facade operations
// ─────────────────────────────────────────────────────────────────────────────

// Get returns a pointer to the value stored under key and true, or
// (nil, false) when the key is absent. An unattached accessor reports every
// key as absent; so does a declined acquisition under a nonblocking policy.
func (x *Accessor[K, T]) Get(key K) (*T, bool) {
	if x.adapter == nil {
		return nil, false
	}
	if x.policy != nil {
		if !x.policy.Lock() {
			return nil, false
		}
		defer x.policy.Unlock()
	}
	return x.adapter.get(key)
}

// Move transfers the adapter and policy to a fresh accessor and detaches
// x, which reports every key as absent from now on.
func (x *Accessor[K, T]) Move() *Accessor[K, T] {
	moved := &Accessor[K, T]{adapter: x.adapter, policy: x.policy}
	x.adapter = nil
	x.policy = nil
	return moved
}

// WithPolicy attaches a locking policy and returns x for chaining.
func (x *Accessor[K, T]) WithPolicy(p Policy) *Accessor[K, T] {
	x.policy = p
	return x
}

// ─────────────────────────────────────────────────────────────────────────────
// Adapters
// ─────────────────────────────────────────────────────────────────────────────

// mapAccessor caches the looked-up value so Get can hand out a pointer.
type mapAccessor[K comparable, T any] struct {
	m   map[K]T
	cur T
}

func (a *mapAccessor[K, T]) get(key K) (*T, bool) {
	v, ok := a.m[key]
	if !ok {
		return nil, false
	}
	a.cur = v
	return &a.cur, true
}

// embedAccessor owns boxed copies of the entries, giving out stable
// mutable pointers.
type embedAccessor[K comparable, T any] struct {
	m map[K]*T
}

func (a *embedAccessor[K, T]) get(key K) (*T, bool) {
	p, ok := a.m[key]
	if !ok {
		return nil, false
	}
	return p, true
}

type finderAccessor[K, T any] struct {
	src Finder[K, T]
}

func (a *finderAccessor[K, T]) get(key K) (*T, bool) {
	return a.src.Find(key)
}

// funcAccessor caches the produced value, like mapAccessor.
type funcAccessor[K, T any] struct {
	fn  func(K) (T, bool)
	cur T
}

func (a *funcAccessor[K, T]) get(key K) (*T, bool) {
	v, ok := a.fn(key)
	if !ok {
		return nil, false
	}
	a.cur = v
	return &a.cur, true
}

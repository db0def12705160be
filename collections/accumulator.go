package collections

import "unsafe"

// Appender is the push-back capability. Any container exposing Append can
// be wrapped by [AccumulateAppender] without this package knowing its
// concrete type.
type Appender[T any] interface {
	Append(T)
}

// Accumulator is a value-appending sink over any append-capable target.
//
// The zero value is an unattached accumulator: Add returns
// [ErrNotAttached], since appending into nothing indicates a programming
// mistake rather than a normal empty state. Construct attached accumulators
// with [Accumulate], [Fill], [FillPtr], [AccumulateAppender] or
// [AccumulateFunc].
//
// An Accumulator is move-only. Transfer ownership with
// [Accumulator.Move]; copying is flagged by go vet.
type Accumulator[T any] struct {
	noCopy  noCopy
	adapter accumulatorAdapter[T]
	policy  Policy
}

type accumulatorAdapter[T any] interface {
	add(T) error
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// Accumulate returns an accumulator that appends to the slice at dst,
// growing it as needed. Add never fails for capacity reasons.
func Accumulate[T any](dst *[]T) *Accumulator[T] {
	return &Accumulator[T]{adapter: &appendAccumulator[T]{dst: dst}}
}

// Fill returns an accumulator that overwrites the elements of dst in order.
//
// The length of dst is the capacity: once every position has been written,
// further Add calls return [ErrCapacityExceeded] and leave the already
// written elements untouched. Filling a subslice (dst[i:j]) writes exactly
// that range. This is the accumulator to use over arrays:
//
//	var buf [8]int
//	a := collections.Fill(buf[:])
func Fill[T any](dst []T) *Accumulator[T] {
	return &Accumulator[T]{adapter: &fillAccumulator[T]{dst: dst}}
}

// FillPtr returns a fixed-capacity accumulator over the n elements starting
// at p. See [Fill] for the capacity semantics.
func FillPtr[T any](p *T, n int) *Accumulator[T] {
	return Fill(unsafe.Slice(p, n))
}

// AccumulateAppender returns an accumulator forwarding to any container
// with an Append method.
func AccumulateAppender[T any](dst Appender[T]) *Accumulator[T] {
	return &Accumulator[T]{adapter: &appenderAccumulator[T]{dst: dst}}
}

// AccumulateFunc returns an accumulator that hands every added value to fn.
// Add has no failure mode beyond whatever fn itself panics with.
func AccumulateFunc[T any](fn func(T)) *Accumulator[T] {
	return &Accumulator[T]{adapter: &funcAccumulator[T]{fn: fn}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Facade operations
// ─────────────────────────────────────────────────────────────────────────────

// Add appends v to the wrapped sink.
//
// It returns [ErrNotAttached] on an unattached accumulator and
// [ErrCapacityExceeded] when a fixed-capacity sink is full; otherwise nil.
// Under a nonblocking policy a declined acquisition is a silent no-op and
// Add returns nil.
func (a *Accumulator[T]) Add(v T) error {
	if a.adapter == nil {
		return ErrNotAttached
	}
	if a.policy != nil {
		if !a.policy.Lock() {
			return nil
		}
		defer a.policy.Unlock()
	}
	return a.adapter.add(v)
}

// Move transfers the adapter and policy to a fresh accumulator and detaches
// a, which returns [ErrNotAttached] from now on.
func (a *Accumulator[T]) Move() *Accumulator[T] {
	moved := &Accumulator[T]{adapter: a.adapter, policy: a.policy}
	a.adapter = nil
	a.policy = nil
	return moved
}

// WithPolicy attaches a locking policy and returns a for chaining.
func (a *Accumulator[T]) WithPolicy(p Policy) *Accumulator[T] {
	a.policy = p
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Adapters
// ─────────────────────────────────────────────────────────────────────────────

// appendAccumulator grows the target slice through a pointer, so the
// caller observes every append.
type appendAccumulator[T any] struct {
	dst *[]T
}

func (a *appendAccumulator[T]) add(v T) error {
	*a.dst = append(*a.dst, v)
	return nil
}

// fillAccumulator overwrites a fixed range. The only adapter with a
// genuine runtime failure mode.
type fillAccumulator[T any] struct {
	dst []T
	pos int
}

func (a *fillAccumulator[T]) add(v T) error {
	if a.pos >= len(a.dst) {
		return ErrCapacityExceeded
	}
	a.dst[a.pos] = v
	a.pos++
	return nil
}

type appenderAccumulator[T any] struct {
	dst Appender[T]
}

func (a *appenderAccumulator[T]) add(v T) error {
	a.dst.Append(v)
	return nil
}

type funcAccumulator[T any] struct {
	fn func(T)
}

func (a *funcAccumulator[T]) add(v T) error {
	a.fn(v)
	return nil
}

package collections

// This file contains package-level algorithms that operate purely through
// the Enumerator surface, so they work identically over every source kind.
// Enumerators are single-pass: each algorithm consumes the elements it
// visits, and an algorithm that runs to the end leaves the enumerator
// exhausted.

import "iter"

// Each calls fn for every remaining element. Elements are passed by
// pointer, so fn may mutate them in place where the source permits.
func Each[T any](e *Enumerator[T], fn func(*T)) {
	for v, ok := e.Next(); ok; v, ok = e.Next() {
		fn(v)
	}
}

// Find advances e until it reaches an element equal to value, returning a
// pointer to it. It returns (nil, false) if the enumerator is exhausted
// first.
func Find[T comparable](e *Enumerator[T], value T) (*T, bool) {
	for v, ok := e.Next(); ok; v, ok = e.Next() {
		if *v == value {
			return v, true
		}
	}
	return nil, false
}

// FindFunc advances e until pred returns true for an element, returning a
// pointer to it. It returns (nil, false) if the enumerator is exhausted
// first.
func FindFunc[T any](e *Enumerator[T], pred func(T) bool) (*T, bool) {
	for v, ok := e.Next(); ok; v, ok = e.Next() {
		if pred(*v) {
			return v, true
		}
	}
	return nil, false
}

// Count consumes e and returns how many remaining elements equal value.
func Count[T comparable](e *Enumerator[T], value T) int {
	n := 0
	for v, ok := e.Next(); ok; v, ok = e.Next() {
		if *v == value {
			n++
		}
	}
	return n
}

// CountFunc consumes e and returns how many remaining elements satisfy
// pred.
func CountFunc[T any](e *Enumerator[T], pred func(T) bool) int {
	n := 0
	for v, ok := e.Next(); ok; v, ok = e.Next() {
		if pred(*v) {
			n++
		}
	}
	return n
}

// Equal consumes both enumerators and reports whether they yield equal
// elements in the same order and exhaust together.
func Equal[T comparable](a, b *Enumerator[T]) bool {
	for {
		av, aok := a.Next()
		bv, bok := b.Next()
		if aok != bok {
			return false
		}
		if !aok {
			return true
		}
		if *av != *bv {
			return false
		}
	}
}

// Collect consumes e and returns the remaining elements as a new slice.
func Collect[T any](e *Enumerator[T]) []T {
	var out []T
	for v, ok := e.Next(); ok; v, ok = e.Next() {
		out = append(out, *v)
	}
	return out
}

// Copy feeds the remaining elements of src into dst, stopping at the first
// Add failure. It returns the number of elements successfully added and
// the error that stopped it, if any.
func Copy[T any](dst *Accumulator[T], src *Enumerator[T]) (int, error) {
	n := 0
	for v, ok := src.Next(); ok; v, ok = src.Next() {
		if err := dst.Add(*v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Seq exposes the remaining elements of e as an [iter.Seq], so an
// enumerator can drive a range-over-func loop:
//
//	for v := range collections.Seq(e) {
//	    ...
//	}
//
// The sequence is single-use, like the enumerator behind it.
func Seq[T any](e *Enumerator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := e.Next(); ok; v, ok = e.Next() {
			if !yield(*v) {
				return
			}
		}
	}
}

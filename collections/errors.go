package collections

import "errors"

// Sentinel errors returned by the sink facades.
var (
	// ErrCapacityExceeded is returned by Add when a fixed-capacity sink
	// (see [Fill] and [FillPtr]) has no room left. Elements written before
	// the failing call remain intact.
	ErrCapacityExceeded = errors.New("collections: fixed-capacity sink is full")

	// ErrNotAttached is returned by Add on an Accumulator or Aggregator
	// that has no adapter attached, either because it is zero-valued or
	// because it was moved from.
	ErrNotAttached = errors.New("collections: facade has no adapter attached")
)

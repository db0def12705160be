package collections

import "sync"

// Policy is the locking strategy attached to a facade with WithPolicy.
//
// Lock is called before a primary operation touches the adapter and Unlock
// after it returns, including on the panic path. A Lock that returns false
// declines the operation: the facade yields its empty or no-op result
// without forwarding to the adapter, and Unlock is not called.
//
// The policy protects a single call only. "Check then call" sequences are
// not atomic under any policy.
type Policy interface {
	Lock() bool
	Unlock()
}

// NoLock is the no-op policy. It is equivalent to attaching no policy at
// all and exists so that callers can be explicit about it.
type NoLock struct{}

func (NoLock) Lock() bool { return true }
func (NoLock) Unlock()    {}

// Atomic serialises every primary operation with a mutex.
// The zero value is ready to use.
type Atomic struct {
	mu sync.Mutex
}

func (p *Atomic) Lock() bool {
	p.mu.Lock()
	return true
}

func (p *Atomic) Unlock() {
	p.mu.Unlock()
}

// AtomicNonblocking attempts the mutex without blocking. When the mutex is
// already held, the operation is declined: callers observe the same result
// as genuine emptiness and must not treat it as an error.
// The zero value is ready to use.
type AtomicNonblocking struct {
	mu sync.Mutex
}

func (p *AtomicNonblocking) Lock() bool {
	return p.mu.TryLock()
}

func (p *AtomicNonblocking) Unlock() {
	p.mu.Unlock()
}

// noCopy makes go vet's copylocks check flag facade copies.
// Facades are move-only; see the Move method on each facade.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

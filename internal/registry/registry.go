// Package registry provides a thread-safe handle registry that maps opaque
// int64 handles to natively-owned resource objects.
//
// Host runtimes on the far side of an FFI boundary (JVM, CPython, .NET, C
// callers of the c-shared bridge) cannot hold Go references directly. Instead,
// each exposed resource is registered here and the host receives an integer
// handle; every subsequent cross-boundary call resolves the handle back to the
// live object. The registry is the only synchronization point between host
// callback threads and Go worker goroutines, so all operations are safe for
// arbitrary concurrent use without external locking.
//
// Handles are issued from a monotonically increasing counter and are never
// reused for the lifetime of a Registry instance: a stale handle retained by
// the host can go invalid, but it can never silently resolve to a different,
// newer object.
package registry

import (
	"fmt"
	"math"
	"sync"
)

// DefaultFirstHandle is the first handle value issued by New. Handles below
// it are reserved for sentinel and error values in boundary protocols
// (0 conventionally means "invalid handle").
const DefaultFirstHandle int64 = 4

// Registry maps int64 handles to values of type T.
//
// Erase removes only the registry's reference; a value obtained from Lookup
// remains valid for as long as the caller holds it, because the Go runtime
// keeps it alive. "Erased from the registry" and "collected" are decoupled.
type Registry[T any] struct {
	mu   sync.RWMutex
	next int64
	m    map[int64]T
}

// New creates a registry that issues handles starting at DefaultFirstHandle.
func New[T any]() *Registry[T] {
	return NewAt[T](DefaultFirstHandle)
}

// NewAt creates a registry that issues handles starting at first.
// Values below first are never issued and can be used as sentinels.
func NewAt[T any](first int64) *Registry[T] {
	if first < 0 {
		panic("registry: negative first handle")
	}
	return &Registry[T]{
		next: first,
		m:    make(map[int64]T),
	}
}

// Insert stores v and returns a handle strictly greater than every handle
// previously issued by this instance. The handle is visible to concurrent
// Lookup calls as soon as Insert returns.
//
// Insert panics if the handle space is exhausted. With a 64-bit counter this
// is unreachable in practice, but wraparound would violate the no-reuse
// guarantee and must never happen silently.
func (r *Registry[T]) Insert(v T) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.next == math.MaxInt64 {
		panic(fmt.Sprintf("registry: handle space exhausted at %d", r.next))
	}
	h := r.next
	r.next++
	r.m[h] = v
	return h
}

// Lookup returns the value stored under h, or (zero, false) if h is not
// currently present. A missing handle is an expected outcome, typically
// meaning the host-side wrapper was already closed; it is never an error.
func (r *Registry[T]) Lookup(h int64) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.m[h]
	return v, ok
}

// Erase removes the entry for h, dropping the registry's reference to the
// stored value. Erasing an absent handle is a no-op, so defensive or
// double-invoked cleanup paths cannot fail.
func (r *Registry[T]) Erase(h int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.m, h)
}

// Take removes the entry for h and returns the value that was stored. Unlike
// Lookup followed by Erase, the removal is atomic: exactly one of several
// concurrent Take calls for the same handle receives the value.
func (r *Registry[T]) Take(h int64) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.m[h]
	if ok {
		delete(r.m, h)
	}
	return v, ok
}

// Clear removes every entry. Used at subsystem teardown to release anything
// the host leaked or failed to close. The counter keeps advancing: handles
// issued after Clear still never collide with pre-Clear handles.
func (r *Registry[T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.m)
}

// Drain atomically removes every entry and returns the removed values, in
// no particular order. Like Clear, but lets teardown code release each
// resource (close files, free native memory) after the registry has already
// forgotten it.
func (r *Registry[T]) Drain() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, 0, len(r.m))
	for _, v := range r.m {
		out = append(out, v)
	}
	clear(r.m)
	return out
}

// Len returns the number of live entries. Useful for leak checks in tests.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

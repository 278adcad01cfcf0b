package tween

import (
	"sync"
)

// Future is an exactly-once completion token for a tween started with Run.
// It resolves with the final value when the tween completes, or as canceled
// when the tween is stopped first. A Future that is never resolved is safe
// to drop. Reads are safe from any goroutine; resolution happens on the
// goroutine driving the tween.
type Future[T any] struct {
	mu       sync.Mutex
	done     chan struct{}
	value    T
	canceled bool
	resolved bool
}

// newFuture creates an unresolved future.
func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// NewPendingFuture creates an unresolved future together with its resolver.
// The resolver may be called at most once effectively; later calls are
// no-ops. Intended for components that complete a future from their own
// callbacks rather than through Run.
//
// Returns:
//   - *Future[T]: the unresolved future
//   - func(T, bool): resolver taking the final value and a canceled flag
func NewPendingFuture[T any]() (*Future[T], func(value T, canceled bool)) {
	f := newFuture[T]()
	return f, f.resolve
}

// NewResolvedFuture creates a future that is already resolved. Useful for
// degenerate cases such as zero-duration transitions.
//
// Parameters:
//   - value: the resolved value
//   - canceled: whether the future counts as canceled
//
// Returns:
//   - *Future[T]: the resolved future
func NewResolvedFuture[T any](value T, canceled bool) *Future[T] {
	f := newFuture[T]()
	f.resolve(value, canceled)
	return f
}

// resolve completes the future. Subsequent calls are no-ops, which keeps
// completion exactly-once even under cancel-then-complete races.
func (f *Future[T]) resolve(value T, canceled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resolved {
		return
	}
	f.resolved = true
	f.value = value
	f.canceled = canceled
	close(f.done)
}

// Done returns a channel closed when the future resolves.
//
// Returns:
//   - <-chan struct{}: closed on resolution (completion or cancellation)
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Resolved reports whether the future has resolved.
//
// Returns:
//   - bool: true once the tween completed or was canceled
func (f *Future[T]) Resolved() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resolved
}

// Canceled reports whether the future resolved by cancellation rather than
// completion.
//
// Returns:
//   - bool: true if the owning tween was stopped before finishing
func (f *Future[T]) Canceled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.canceled
}

// Value returns the resolved value. The zero value is returned while the
// future is unresolved; for a canceled future it is the last value the tween
// produced.
//
// Returns:
//   - T: the final (or last) tween value
func (f *Future[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

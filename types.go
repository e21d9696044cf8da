// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// Queue is the combined producer-consumer surface shared by every
// variant. All three implementations (Spin, Wait, Simple) satisfy it, so
// harnesses and benchmarks can drive them through one contract.
//
// The interface intentionally excludes a length accessor: an exact count
// would put a shared read-modify-write on the lock-free hot path. The
// lock-based [Simple] exposes Len as a concrete method where the mutex
// already pays for it.
type Queue[T any] interface {
	Producer[T]
	Consumer[T]

	// Close marks the queue closed and wakes any blocked producer or
	// consumer. Idempotent and irreversible.
	Close()

	// Closed reports whether Close has been called.
	Closed() bool

	// Done reports whether the queue is closed and empty — the point at
	// which a non-blocking consumer loop can stop without ever parking.
	Done() bool

	// Cap returns the configured capacity.
	Cap() int
}

// Producer is the enqueue half of the contract. Exactly one goroutine
// may use it per queue instance; a second producer is undefined
// behavior, not a detected error.
//
// Elements are passed by pointer to avoid copying large structs; the
// queue stores a copy of the pointed-to value, so the original may be
// reused after the call returns.
type Producer[T any] interface {
	// TryEnqueue adds an element without blocking.
	// Returns nil on success, ErrWouldBlock if the queue is full,
	// ErrClosed if it is closed. No side effect on failure.
	TryEnqueue(elem *T) error

	// Enqueue adds an element, blocking while the queue is full.
	// Returns nil on success, or ErrClosed once the queue is observed
	// closed; the element is never consumed on failure.
	Enqueue(elem *T) error
}

// Consumer is the dequeue half of the contract. Exactly one goroutine
// may use it per queue instance. Dequeued slots are zeroed so referenced
// objects become collectable.
type Consumer[T any] interface {
	// TryDequeue removes and returns an element without blocking.
	// Returns (zero, ErrWouldBlock) if the queue is empty — closed or
	// not; draining after Close goes through the same call.
	TryDequeue() (T, error)

	// Dequeue removes and returns an element, blocking while the queue
	// is empty. Returns (zero, ErrClosed) only once the queue is both
	// closed and fully drained.
	Dequeue() (T, error)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"sync"

	"github.com/eapache/queue"
)

// Simple is the lock-based SPSC queue: one mutex, two condition
// variables, deque storage. It exists as the correctness and performance
// baseline for the lock-free variants and carries the same observable
// contract, plus Len, which the lock already pays for.
//
// The SPSC restriction still applies. The mutex makes violations
// memory-safe but the FIFO and blocking contracts assume one producer
// and one consumer.
type Simple[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond // producer waits; signaled by dequeues and Close
	notEmpty *sync.Cond // consumer waits; signaled by enqueues and Close
	buf      *queue.Queue
	capacity int
	closed   bool
}

// NewSimple creates a lock-based SPSC queue with the given capacity.
// Panics with ErrInvalidCapacity if capacity <= 0.
func NewSimple[T any](capacity int) *Simple[T] {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	q := &Simple[T]{
		buf:      queue.New(),
		capacity: capacity,
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)
	return q
}

// TryEnqueue adds an element without blocking.
// Returns ErrClosed if the queue is closed, ErrWouldBlock if it is full.
func (q *Simple[T]) TryEnqueue(elem *T) error {
	q.mu.Lock()
	return q.lockedEnqueue(elem)
}

// Enqueue adds an element, waiting while the queue is full.
// Returns ErrClosed once the queue is closed; the element is not consumed.
func (q *Simple[T]) Enqueue(elem *T) error {
	q.mu.Lock()
	for !q.closed && q.buf.Length() >= q.capacity {
		q.notFull.Wait()
	}
	return q.lockedEnqueue(elem)
}

// lockedEnqueue completes an enqueue and releases q.mu.
func (q *Simple[T]) lockedEnqueue(elem *T) error {
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	if q.buf.Length() >= q.capacity {
		q.mu.Unlock()
		return ErrWouldBlock
	}
	q.buf.Add(*elem)
	q.mu.Unlock()
	q.notEmpty.Signal()
	return nil
}

// TryDequeue removes and returns an element without blocking.
// Returns (zero, ErrWouldBlock) if the queue is empty, closed or not.
func (q *Simple[T]) TryDequeue() (T, error) {
	q.mu.Lock()
	if q.buf.Length() == 0 {
		q.mu.Unlock()
		var zero T
		return zero, ErrWouldBlock
	}
	return q.lockedDequeue(), nil
}

// Dequeue removes and returns an element, waiting while the queue is
// empty. Buffered elements keep being returned after Close; (zero,
// ErrClosed) is returned only once the queue is closed and empty.
func (q *Simple[T]) Dequeue() (T, error) {
	q.mu.Lock()
	for !q.closed && q.buf.Length() == 0 {
		q.notEmpty.Wait()
	}
	if q.buf.Length() == 0 {
		q.mu.Unlock()
		var zero T
		return zero, ErrClosed
	}
	return q.lockedDequeue(), nil
}

// lockedDequeue removes the front element and releases q.mu.
func (q *Simple[T]) lockedDequeue() T {
	elem := q.buf.Remove().(T)
	q.mu.Unlock()
	q.notFull.Signal()
	return elem
}

// Close marks the queue closed and wakes any waiting producer or
// consumer. Idempotent. Subsequent enqueues fail, dequeues keep draining
// buffered elements.
func (q *Simple[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.notFull.Broadcast()
	q.notEmpty.Broadcast()
}

// Closed reports whether Close has been called.
func (q *Simple[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Done reports whether the queue is closed and empty.
func (q *Simple[T]) Done() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed && q.buf.Length() == 0
}

// Len returns the number of buffered elements. The lock-free variants do
// not offer Len; here the mutex already pays for an exact count.
func (q *Simple[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.Length()
}

// Cap returns the configured capacity.
func (q *Simple[T]) Cap() int {
	return q.capacity
}

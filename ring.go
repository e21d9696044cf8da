// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "code.hybscloud.com/atomix"

// gate is the wait/notify half of a queue variant.
//
// The ring engine owns the indices and the close protocol; a gate decides
// how a side that cannot make progress spends its time. The producer parks
// on the space gate (woken by dequeues), the consumer parks on the items
// gate (woken by enqueues). Close wakes both.
//
// Lost-wake freedom: callers sample the gate before re-checking the queue
// condition and pass the sampled token to park. A waker that publishes its
// cursor and then bumps the gate in between makes park return immediately.
type gate interface {
	// sample returns the current wake token. Must be read before the
	// caller re-checks the condition it is about to park on.
	sample() uint32

	// park blocks (or spins) until a wake posted after seen was sampled,
	// or spuriously. The caller re-checks its condition on return.
	park(seen uint32)

	// wake unparks one waiter, if any.
	wake()

	// wakeAll unparks every waiter. Used by Close.
	wakeAll()
}

// ring is the SPSC engine shared by the Spin and Wait variants.
//
// Fixed ring of capacity+1 slots. One slot is intentionally kept unused so
// that two indices disambiguate every state without a shared size counter:
//
//	empty : head == tail
//	full  : next(tail) == head
//
// Exactly one goroutine (the producer) mutates tail; exactly one (the
// consumer) mutates head. Either side may set closed, at most once in
// effect. Nothing else is shared.
//
// Memory orderings:
//   - An index is loaded relaxed only by the goroutine that stores it.
//   - An index is stored with release by its owner and loaded with acquire
//     by the other side, so the slot write is visible before the advanced
//     index is.
//   - closed is stored with release and loaded with acquire on both paths.
type ring[T any] struct {
	buffer []T
	size   uint64        // len(buffer) == capacity+1
	space  gate          // producer parks here when full
	items  gate          // consumer parks here when empty
	_      pad
	head   atomix.Uint64 // next slot to read; consumer writes, producer reads
	_      pad
	tail   atomix.Uint64 // next slot to write; producer writes, consumer reads
	_      pad
	closed atomix.Bool
	_      pad
}

func (q *ring[T]) init(capacity int, space, items gate) {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	q.buffer = make([]T, capacity+1)
	q.size = uint64(capacity + 1)
	q.space = space
	q.items = items
}

// next advances an index one slot, wrapping at the buffer end.
func (q *ring[T]) next(i uint64) uint64 {
	i++
	if i == q.size {
		return 0
	}
	return i
}

// TryEnqueue adds an element without blocking (producer only).
// Returns ErrClosed if the queue is closed, ErrWouldBlock if it is full.
// No side effect on failure.
func (q *ring[T]) TryEnqueue(elem *T) error {
	if q.closed.LoadAcquire() {
		return ErrClosed
	}
	tail := q.tail.LoadRelaxed()
	next := q.next(tail)
	if next == q.head.LoadAcquire() {
		return ErrWouldBlock
	}

	q.buffer[tail] = *elem
	q.tail.StoreRelease(next)
	q.items.wake()
	return nil
}

// Enqueue adds an element, parking while the queue is full (producer only).
// Returns ErrClosed once the queue is observed closed; the element is not
// consumed in that case.
func (q *ring[T]) Enqueue(elem *T) error {
	for {
		seen := q.space.sample()
		if q.closed.LoadAcquire() {
			return ErrClosed
		}

		tail := q.tail.LoadRelaxed()
		next := q.next(tail)
		if next != q.head.LoadAcquire() {
			q.buffer[tail] = *elem
			q.tail.StoreRelease(next)
			q.items.wake()
			return nil
		}

		q.space.park(seen)
	}
}

// TryDequeue removes and returns an element without blocking (consumer
// only). Returns (zero, ErrWouldBlock) if the queue is empty, whether or
// not it is closed: draining is independent of close.
func (q *ring[T]) TryDequeue() (T, error) {
	var zero T
	head := q.head.LoadRelaxed()
	if head == q.tail.LoadAcquire() {
		return zero, ErrWouldBlock
	}

	elem := q.buffer[head]
	q.buffer[head] = zero
	q.head.StoreRelease(q.next(head))
	q.space.wake()
	return elem, nil
}

// Dequeue removes and returns an element, parking while the queue is empty
// (consumer only). Buffered elements keep being returned after Close;
// (zero, ErrClosed) is returned only once the queue is closed and empty.
func (q *ring[T]) Dequeue() (T, error) {
	var zero T
	for {
		seen := q.items.sample()

		head := q.head.LoadRelaxed()
		if head != q.tail.LoadAcquire() {
			elem := q.buffer[head]
			q.buffer[head] = zero
			q.head.StoreRelease(q.next(head))
			q.space.wake()
			return elem, nil
		}

		if q.closed.LoadAcquire() {
			return zero, ErrClosed
		}

		q.items.park(seen)
	}
}

// Close marks the queue closed and wakes any parked producer or consumer.
// Idempotent; there is no way to reopen a queue. Subsequent enqueues fail,
// dequeues keep draining buffered elements.
func (q *ring[T]) Close() {
	q.closed.StoreRelease(true)
	q.space.wakeAll()
	q.items.wakeAll()
}

// Closed reports whether Close has been called.
func (q *ring[T]) Closed() bool {
	return q.closed.LoadAcquire()
}

// Done reports whether the queue is closed and empty. Non-blocking
// consumer loops use it to detect completion without parking.
func (q *ring[T]) Done() bool {
	return q.closed.LoadAcquire() && q.head.LoadAcquire() == q.tail.LoadAcquire()
}

// Cap returns the configured capacity.
func (q *ring[T]) Cap() int {
	return int(q.size) - 1
}

// cacheLineSize is the assumed destructive interference range.
const cacheLineSize = 64

// pad is cache line padding to prevent false sharing.
type pad [cacheLineSize]byte

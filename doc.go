// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spscq provides bounded single-producer single-consumer queues
// with pluggable wait strategies.
//
// Exactly one goroutine enqueues and exactly one goroutine dequeues per
// queue instance. Ownership of an element transfers at a well-defined
// point with no data race, and delivery is strict FIFO. The package
// offers one lock-free ring-buffer engine behind two behaviorally
// equivalent wait strategies, plus a lock-based baseline:
//
//   - Spin: bounded busy-waiting with periodic scheduler yields
//   - Wait: futex-style blocking on the ring indices
//   - Simple: mutex and two condition variables (baseline)
//
// # Quick Start
//
//	q := spscq.NewSpin[Event](1024)
//
//	// Producer goroutine
//	for ev := range source {
//	    if err := q.Enqueue(&ev); err != nil {
//	        break // queue closed
//	    }
//	}
//	q.Close()
//
//	// Consumer goroutine
//	for {
//	    ev, err := q.Dequeue()
//	    if err != nil {
//	        break // closed and drained
//	    }
//	    process(ev)
//	}
//
// Builder API for run-time strategy selection:
//
//	q := spscq.Build[Event](spscq.New(1024).NativeWait())
//
// # Ring Design
//
// All variants hold capacity+1 slots; one sentinel slot stays permanently
// unused so two indices disambiguate empty (head == tail) from full
// (next(tail) == head) without a shared size counter. That keeps every
// hot-path operation a plain load or store — no shared read-modify-write,
// which is the dominant cost difference against lock-based designs.
// Capacity is exact, not rounded: NewSpin[int](7) holds 7 elements and
// Cap reports 7. Minimum capacity is 1.
//
// # Choosing a Wait Strategy
//
// Spin notices progress on its own next poll, so it has the lowest wake
// latency and the highest throughput while producer and consumer are both
// runnable — and it burns CPU whenever one side stalls. Wait suspends the
// blocked side in the kernel and pays a scheduler-mediated wake instead.
// For small batches or heavy per-item work the wake-up cost, not
// throughput, tends to dominate; measure with your payload before
// committing.
//
// # Close Protocol
//
// Close is idempotent and irreversible; there is no reopened state. It
// wakes every blocked producer and consumer regardless of strategy.
// After Close:
//
//   - TryEnqueue and Enqueue fail with ErrClosed; a blocked Enqueue
//     returns promptly without consuming its element.
//   - TryDequeue keeps returning buffered elements; it reports
//     ErrWouldBlock on empty exactly as before.
//   - Dequeue keeps draining and returns ErrClosed only once the queue
//     is empty as well.
//   - Done reports closed-and-drained for non-blocking consumer loops.
//
// Either side may call Close; conventionally the producer does.
//
// # Error Handling
//
// Full, empty and closed are ordinary conditions reported as semantic
// error values, never as failures:
//
//	spscq.IsWouldBlock(err) // full/empty, retry later
//	spscq.IsClosed(err)     // shutdown signal
//	spscq.IsNonFailure(err) // nil or any of the above
//
// [ErrWouldBlock] is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency. The single construction-time precondition — capacity must
// be positive — panics with [ErrInvalidCapacity].
//
// # Memory Ordering
//
// Each index is loaded relaxed by its owning side, stored with release by
// its owner and loaded with acquire by the opposite side; the closed flag
// is release-stored and acquire-loaded by both paths. This is the minimum
// ordering that makes a slot's contents visible before the advanced index
// is, regardless of which side observes it first.
//
// # Thread Safety
//
// One producer goroutine and one consumer goroutine, never more. The
// single-writer rule per index is a threading discipline, not a type
// constraint: violating it (two producers, use after both sides stopped
// coordinating, and so on) is undefined behavior and is not detected at
// runtime. The queue does not track thread lifecycles — close it, then
// join both goroutines, before letting it go.
//
// There is no built-in timeout. Callers needing deadlines loop over the
// Try operations with their own clock, as the tests in this package do.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before established through
// atomic memory orderings on separate variables, so it reports false
// positives for the lock-free variants. Tests incompatible with race
// detection are gated on RaceEnabled.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomics with
// explicit memory ordering, [code.hybscloud.com/iox] for semantic
// errors, [code.hybscloud.com/spin] for CPU pause instructions,
// golang.org/x/sys/unix for the Linux futex, and
// [github.com/eapache/queue] for the baseline's deque storage.
package spscq

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import "sync/atomic"

// Wait is the native-wait variant of the SPSC queue.
//
// A producer that finds the queue full blocks on a futex word paired with
// head; the consumer bumps that word and wakes one waiter after every
// dequeue. Symmetrically, a consumer that finds the queue empty blocks on
// the word paired with tail, and the producer wakes it after every
// enqueue. Close bumps both words and wakes all waiters so a side blocked
// for either reason re-evaluates.
//
// Near-zero CPU while blocked, at the price of a scheduler-mediated wake.
// Preferable for bursty or low-rate workloads; Spin wins once both sides
// are saturated.
type Wait[T any] struct {
	ring[T]
	full  futexGate // producer waits here when full
	empty futexGate // consumer waits here when empty
}

// NewWait creates a native-wait SPSC queue with the given capacity.
// Panics with ErrInvalidCapacity if capacity <= 0.
func NewWait[T any](capacity int) *Wait[T] {
	q := &Wait[T]{}
	q.init(capacity, &q.full, &q.empty)
	return q
}

// futexGate is a 32-bit sequence word that waiters futex-wait on.
//
// The word only ever advances. A waiter samples it, re-checks its queue
// condition, then waits for the word to differ from the sample; a waker
// bumps the word after publishing its cursor, so a wake that lands
// between sample and wait turns into an immediate return rather than a
// lost wake. Spurious wakes are harmless, the engine re-checks.
//
// The word is a plain uint32 rather than an atomix type because the
// kernel futex interface needs its address.
type futexGate struct {
	_   pad
	seq uint32
}

func (g *futexGate) sample() uint32 {
	return atomic.LoadUint32(&g.seq)
}

func (g *futexGate) park(seen uint32) {
	futexWait(&g.seq, seen)
}

func (g *futexGate) wake() {
	atomic.AddUint32(&g.seq, 1)
	futexWake(&g.seq, 1)
}

func (g *futexGate) wakeAll() {
	atomic.AddUint32(&g.seq, 1)
	futexWake(&g.seq, allWaiters)
}

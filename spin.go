// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"runtime"

	"code.hybscloud.com/spin"
)

// yieldAfter is the number of unproductive polls before a parked side
// yields its scheduling quantum.
const yieldAfter = 1024

// Spin is the spin/yield variant of the SPSC queue.
//
// A side that cannot make progress re-polls the indices in a tight loop,
// executing a CPU pause per unproductive iteration and yielding to the
// scheduler every yieldAfter iterations. No side ever has to be woken by
// the other: the spinning side notices the state change on its own next
// poll.
//
// Lowest latency and highest throughput while both goroutines are
// runnable, at the price of CPU burn while waiting. Prefer Wait for
// bursty or low-rate workloads.
type Spin[T any] struct {
	ring[T]
	producer spinGate
	consumer spinGate
}

// NewSpin creates a spin/yield SPSC queue with the given capacity.
// Panics with ErrInvalidCapacity if capacity <= 0.
func NewSpin[T any](capacity int) *Spin[T] {
	q := &Spin[T]{}
	q.init(capacity, &q.producer, &q.consumer)
	return q
}

// spinGate parks by burning a poll iteration: CPU pause, then a scheduler
// yield once yieldAfter unproductive polls accumulate. Wakes are no-ops.
//
// Each gate is touched only by the side that parks on it, so the counter
// needs no synchronization.
type spinGate struct {
	sw spin.Wait
	n  uint32
}

func (g *spinGate) sample() uint32 { return 0 }

func (g *spinGate) park(uint32) {
	g.n++
	if g.n >= yieldAfter {
		g.n = 0
		g.sw.Reset()
		runtime.Gosched()
		return
	}
	g.sw.Once()
}

func (g *spinGate) wake()    {}
func (g *spinGate) wakeAll() {}

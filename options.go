// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

// Options configures queue creation and wait strategy selection.
type Options struct {
	strategy strategy
	capacity int
}

type strategy int

const (
	strategySpinYield strategy = iota
	strategyNativeWait
	strategyLocking
)

// Builder creates queues with fluent configuration.
//
// The builder exists for callers that pick the wait strategy at run time
// (configuration, benchmark matrices). Callers that know the strategy
// statically should use the direct constructors [NewSpin], [NewWait],
// [NewSimple] and keep the concrete type.
//
// Example:
//
//	q := spscq.Build[Event](spscq.New(1024).NativeWait())
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity. The default
// strategy is spin/yield.
//
// Panics with ErrInvalidCapacity if capacity <= 0.
func New(capacity int) *Builder {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SpinYield selects the spin/yield wait strategy: bounded busy-waiting
// with a periodic scheduler yield. Lowest latency, highest CPU while
// waiting. This is the default.
func (b *Builder) SpinYield() *Builder {
	b.opts.strategy = strategySpinYield
	return b
}

// NativeWait selects the blocking wait strategy: futex waits on the
// cursors. Near-zero CPU while blocked, scheduler-mediated wake latency.
func (b *Builder) NativeWait() *Builder {
	b.opts.strategy = strategyNativeWait
	return b
}

// Locking selects the mutex and condition variable baseline.
func (b *Builder) Locking() *Builder {
	b.opts.strategy = strategyLocking
	return b
}

// Build creates a Queue[T] with the configured strategy.
func Build[T any](b *Builder) Queue[T] {
	switch b.opts.strategy {
	case strategyNativeWait:
		return NewWait[T](b.opts.capacity)
	case strategyLocking:
		return NewSimple[T](b.opts.capacity)
	default:
		return NewSpin[T](b.opts.capacity)
	}
}

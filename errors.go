// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For TryEnqueue: the queue is full (backpressure)
// For TryDequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller
// should retry later rather than propagate the error. An empty queue
// reports ErrWouldBlock even after Close; use Done to distinguish
// "nothing yet" from "nothing ever again".
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrClosed indicates the queue has been closed.
//
// For the enqueue path: no further elements are accepted.
// For the dequeue path: the queue is closed and fully drained.
//
// Like ErrWouldBlock this is a termination signal, not a failure.
var ErrClosed = errors.New("spscq: queue closed")

// ErrInvalidCapacity is the panic value for construction with a
// non-positive capacity. The one unrecoverable precondition: the queue
// never comes into existence.
var ErrInvalidCapacity = errors.New("spscq: capacity must be > 0")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsClosed reports whether err indicates the queue was closed.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}

// IsSemantic reports whether err is a control flow signal (not a
// failure). True for ErrClosed and anything [iox.IsSemantic] accepts.
func IsSemantic(err error) bool {
	return errors.Is(err, ErrClosed) || iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, and ErrClosed.
func IsNonFailure(err error) bool {
	return errors.Is(err, ErrClosed) || iox.IsNonFailure(err)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package spscq

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// allWaiters is the wake count that releases every waiter on a word.
const allWaiters = 1<<31 - 1

// Futex operation codes with FUTEX_PRIVATE_FLAG (0x80) set; not exported
// by golang.org/x/sys/unix.
const (
	futexWaitPrivate = 0x0 | 0x80
	futexWakePrivate = 0x1 | 0x80
)

// futexWait blocks the caller while *addr == val.
//
// Returns on wake, on EAGAIN when the word already changed, or on EINTR;
// the engine re-checks its condition in all cases, so errors are
// deliberately dropped.
func futexWait(addr *uint32, val uint32) {
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWaitPrivate),
		uintptr(val), 0, 0, 0)
}

// futexWake wakes up to n waiters blocked on addr.
func futexWake(addr *uint32, n int) {
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWakePrivate),
		uintptr(n), 0, 0, 0)
}

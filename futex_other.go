// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package spscq

import (
	"sync"
	"sync/atomic"
	"unsafe"
)

// User-space stand-in for the Linux futex on platforms without one: a
// small fixed table of parking buckets hashed by word address. Distinct
// words may share a bucket, so wakes broadcast and waiters re-check the
// word under the bucket lock.

const allWaiters = 1<<31 - 1

type parkBucket struct {
	mu   sync.Mutex
	cond *sync.Cond
}

var parkTable [16]parkBucket

func init() {
	for i := range parkTable {
		parkTable[i].cond = sync.NewCond(&parkTable[i].mu)
	}
}

func bucketFor(addr *uint32) *parkBucket {
	h := uintptr(unsafe.Pointer(addr))
	return &parkTable[(h>>6)%uintptr(len(parkTable))]
}

func futexWait(addr *uint32, val uint32) {
	b := bucketFor(addr)
	b.mu.Lock()
	for atomic.LoadUint32(addr) == val {
		b.cond.Wait()
	}
	b.mu.Unlock()
}

func futexWake(addr *uint32, _ int) {
	b := bucketFor(addr)
	// The bump of *addr happens before this call; taking the lock orders
	// it against any waiter between its word check and cond.Wait.
	b.mu.Lock()
	b.cond.Broadcast()
	b.mu.Unlock()
}

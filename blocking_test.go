// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spscq_test

import (
	"testing"
	"time"

	"code.hybscloud.com/spscq"
)

const wakeTimeout = 5 * time.Second

// settle gives a goroutine a moment to reach its parking point. The
// tests never depend on it for correctness, only for making the blocked
// path likely.
func settle() {
	time.Sleep(20 * time.Millisecond)
}

type popResult struct {
	val int
	err error
}

// TestDequeueUnblocksOnTryEnqueue parks a consumer on an empty queue and
// verifies a non-blocking enqueue wakes it with the right value.
func TestDequeueUnblocksOnTryEnqueue(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			skipIfRaceSensitive(t, v.name)
			q := v.make(4)

			results := make(chan popResult, 1)
			go func() {
				val, err := q.Dequeue()
				results <- popResult{val, err}
			}()
			settle()

			x := 42
			if err := q.TryEnqueue(&x); err != nil {
				t.Fatalf("TryEnqueue: %v", err)
			}

			select {
			case r := <-results:
				if r.err != nil || r.val != 42 {
					t.Fatalf("Dequeue: got (%d, %v), want (42, nil)", r.val, r.err)
				}
			case <-time.After(wakeTimeout):
				t.Fatal("blocked Dequeue did not wake on TryEnqueue")
			}
		})
	}
}

// TestEnqueueUnblocksOnTryDequeue parks a producer on a full queue and
// verifies a non-blocking dequeue makes room and wakes it.
func TestEnqueueUnblocksOnTryDequeue(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			skipIfRaceSensitive(t, v.name)
			q := v.make(1)
			first := 1
			if err := q.TryEnqueue(&first); err != nil {
				t.Fatalf("TryEnqueue: %v", err)
			}

			errs := make(chan error, 1)
			go func() {
				second := 2
				errs <- q.Enqueue(&second)
			}()
			settle()

			got, err := q.TryDequeue()
			if err != nil || got != 1 {
				t.Fatalf("TryDequeue: got (%d, %v), want (1, nil)", got, err)
			}

			select {
			case err := <-errs:
				if err != nil {
					t.Fatalf("Enqueue after space freed: %v", err)
				}
			case <-time.After(wakeTimeout):
				t.Fatal("blocked Enqueue did not wake on TryDequeue")
			}

			got, err = q.Dequeue()
			if err != nil || got != 2 {
				t.Fatalf("Dequeue: got (%d, %v), want (2, nil)", got, err)
			}
		})
	}
}

// TestCloseUnblocksFullEnqueue verifies a producer blocked on a full
// queue returns ErrClosed promptly after Close and never consumes its
// element.
func TestCloseUnblocksFullEnqueue(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			skipIfRaceSensitive(t, v.name)
			q := v.make(1)
			first := 1
			if err := q.TryEnqueue(&first); err != nil {
				t.Fatalf("TryEnqueue: %v", err)
			}

			errs := make(chan error, 1)
			go func() {
				second := 2
				errs <- q.Enqueue(&second)
			}()
			settle()

			q.Close()

			select {
			case err := <-errs:
				if !spscq.IsClosed(err) {
					t.Fatalf("blocked Enqueue after close: got %v, want ErrClosed", err)
				}
			case <-time.After(wakeTimeout):
				t.Fatal("blocked Enqueue did not wake on Close")
			}

			// Only the first element made it in.
			got, err := q.TryDequeue()
			if err != nil || got != 1 {
				t.Fatalf("TryDequeue: got (%d, %v), want (1, nil)", got, err)
			}
			if _, err := q.TryDequeue(); !spscq.IsWouldBlock(err) {
				t.Fatalf("TryDequeue: got %v, want ErrWouldBlock", err)
			}
		})
	}
}

// TestCloseUnblocksEmptyDequeue verifies a consumer blocked on an empty
// queue returns ErrClosed promptly after Close.
func TestCloseUnblocksEmptyDequeue(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			skipIfRaceSensitive(t, v.name)
			q := v.make(2)

			results := make(chan popResult, 1)
			go func() {
				val, err := q.Dequeue()
				results <- popResult{val, err}
			}()
			settle()

			q.Close()

			select {
			case r := <-results:
				if !spscq.IsClosed(r.err) {
					t.Fatalf("blocked Dequeue after close: got (%d, %v), want ErrClosed", r.val, r.err)
				}
			case <-time.After(wakeTimeout):
				t.Fatal("blocked Dequeue did not wake on Close")
			}
		})
	}
}

// TestBlockingTransferFIFO runs a full producer/consumer session through
// the blocking operations and verifies exact FIFO delivery, with the
// queue deliberately smaller than the element count to force waits on
// both sides.
func TestBlockingTransferFIFO(t *testing.T) {
	const total = 10000
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			skipIfRaceSensitive(t, v.name)
			q := v.make(8)

			go func() {
				for i := range total {
					x := i
					if err := q.Enqueue(&x); err != nil {
						return
					}
				}
				q.Close()
			}()

			for i := range total {
				got, err := q.Dequeue()
				if err != nil {
					t.Fatalf("Dequeue(%d): %v", i, err)
				}
				if got != i {
					t.Fatalf("FIFO violation at %d: got %d", i, got)
				}
			}
			if _, err := q.Dequeue(); !spscq.IsClosed(err) {
				t.Fatalf("Dequeue after drain: got %v, want ErrClosed", err)
			}
		})
	}
}

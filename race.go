// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spscq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip cross-goroutine exercises of the lock-free
// variants, which trigger false positives: the detector cannot see the
// happens-before edges the index orderings establish.
const RaceEnabled = true

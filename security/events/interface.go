/*
 * MIT License
 *
 * Copyright (c) 2025 Salim ABOUARAM
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package events counts validation violations by failure type. The counter
// is wait-free: one atomic fetch-add per increment, no locks, no map growth
// after construction. A Prometheus collector view is provided for hosts
// exposing metrics.
package events

import (
	"sync"

	libsec "github.com/sabouaram/httpguard/security"
)

// FuncCounter is a function type returning a Counter, used for injection.
type FuncCounter func() Counter

// Counter is a thread-safe monotonic counter per failure type.
type Counter interface {
	// Increment adds one to the counter of the given failure type and
	// returns the new value. Unknown failure types are ignored and return 0.
	Increment(t libsec.FailureType) uint64
	// Count returns the current value for the given failure type.
	Count(t libsec.FailureType) uint64
	// Snapshot returns a copy of all non-zero counters.
	Snapshot() map[libsec.FailureType]uint64
	// Reset sets all counters back to zero.
	Reset()
}

var (
	dfl Counter
	dfo sync.Once
)

// New returns a fresh Counter with all values at zero.
func New() Counter {
	return &cnt{}
}

// Default returns the process-wide shared Counter, lazily created.
func Default() Counter {
	dfo.Do(func() {
		dfl = New()
	})

	return dfl
}

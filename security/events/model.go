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

package events

import (
	"sync/atomic"

	libsec "github.com/sabouaram/httpguard/security"
)

// cnt stores one atomic counter per failure type, indexed by
// FailureType.Index(). The array is sized once from the taxonomy.
type cnt struct {
	c [libsec.FailureTypeCount]atomic.Uint64
}

func (o *cnt) Increment(t libsec.FailureType) uint64 {
	if !t.IsValid() {
		return 0
	}

	return o.c[t.Index()].Add(1)
}

func (o *cnt) Count(t libsec.FailureType) uint64 {
	if !t.IsValid() {
		return 0
	}

	return o.c[t.Index()].Load()
}

func (o *cnt) Snapshot() map[libsec.FailureType]uint64 {
	var m = make(map[libsec.FailureType]uint64)

	for _, t := range libsec.FailureTypes() {
		if v := o.c[t.Index()].Load(); v > 0 {
			m[t] = v
		}
	}

	return m
}

func (o *cnt) Reset() {
	for _, t := range libsec.FailureTypes() {
		o.c[t.Index()].Store(0)
	}
}

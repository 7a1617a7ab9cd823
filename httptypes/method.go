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

package httptypes

import (
	"strings"
)

// Method is an HTTP request method with the RFC 7231 / RFC 5789 safety and
// idempotency classification.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods returns all known methods.
func Methods() []Method {
	return []Method{
		MethodGet,
		MethodPost,
		MethodPut,
		MethodDelete,
		MethodPatch,
		MethodHead,
		MethodOptions,
	}
}

// NewMethodFromString returns the Method matching the given string, case
// insensitively. Unknown strings return MethodGet and false.
func NewMethodFromString(s string) (Method, bool) {
	var m = Method(strings.ToUpper(strings.TrimSpace(s)))

	switch m {
	case MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch, MethodHead, MethodOptions:
		return m, true
	}

	return MethodGet, false
}

func (m Method) String() string {
	return string(m)
}

// IsSafe reports whether the method is safe per RFC 7231 §4.2.1.
func (m Method) IsSafe() bool {
	switch m {
	case MethodGet, MethodHead, MethodOptions:
		return true
	}

	return false
}

// IsIdempotent reports whether the method is idempotent per RFC 7231
// §4.2.2 and RFC 5789. Retry strategies must not replay non-idempotent
// methods without explicit opt-in.
func (m Method) IsIdempotent() bool {
	switch m {
	case MethodGet, MethodHead, MethodOptions, MethodPut, MethodDelete:
		return true
	}

	return false
}

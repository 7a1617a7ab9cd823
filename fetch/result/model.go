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

package result

import (
	"fmt"
)

// Result is the outcome of one fetch operation. The zero value is a
// NETWORK_ERROR failure with an empty message; use NewSuccess / NewFailure. Result is a plain
// value copied on assignment; content types with reference semantics are
// shared, so converters should produce owned values.
type Result[T any] struct {
	ok  bool
	cnt T
	hc  bool
	tag string
	sts int
	hs  bool

	msg string
	cse error
	cat Category
	fbk T
	hf  bool
}

// NewSuccess returns a success carrying content, the optional entity tag
// and the HTTP status code.
func NewSuccess[T any](content T, etag string, status int) Result[T] {
	return Result[T]{
		ok:  true,
		cnt: content,
		hc:  true,
		tag: etag,
		sts: status,
		hs:  true,
	}
}

// NewFailure returns a failure of the given category.
func NewFailure[T any](message string, cause error, cat Category) Result[T] {
	return Result[T]{
		msg: message,
		cse: cause,
		cat: cat,
	}
}

// NewFailureStatus returns a failure carrying the HTTP status code that
// produced it.
func NewFailureStatus[T any](message string, cause error, cat Category, status int) Result[T] {
	return Result[T]{
		msg: message,
		cse: cause,
		cat: cat,
		sts: status,
		hs:  status != 0,
	}
}

// NewFailureFallback returns a failure carrying stale content from the
// last successful fetch, for graceful degradation.
func NewFailureFallback[T any](message string, cause error, cat Category, fallback T, etag string, status int) Result[T] {
	return Result[T]{
		msg: message,
		cse: cause,
		cat: cat,
		fbk: fallback,
		hf:  true,
		tag: etag,
		sts: status,
		hs:  status != 0,
	}
}

// IsSuccess reports whether the result is the success variant.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsRetryable reports whether a retry strategy may re-run the operation:
// network and server failures are retryable, client and content failures
// are not, successes never are.
func (r Result[T]) IsRetryable() bool {
	return !r.ok && r.cat.IsRetryable()
}

// Content returns the success content. Only the success variant guarantees
// content presence.
func (r Result[T]) Content() (T, bool) {
	return r.cnt, r.hc
}

// Fallback returns the stale fallback content a failure may carry.
func (r Result[T]) Fallback() (T, bool) {
	return r.fbk, r.hf
}

// ETag returns the entity tag, if any.
func (r Result[T]) ETag() (string, bool) {
	return r.tag, len(r.tag) > 0
}

// Status returns the HTTP status code, if any.
func (r Result[T]) Status() (int, bool) {
	return r.sts, r.hs
}

// Category returns the failure category; successes report no category.
func (r Result[T]) Category() (Category, bool) {
	return r.cat, !r.ok
}

// Message returns the failure message.
func (r Result[T]) Message() string {
	return r.msg
}

// Cause returns the underlying error of a failure, if any.
func (r Result[T]) Cause() error {
	return r.cse
}

// Err renders a failure as an error; a success returns nil.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}

	if r.cse != nil {
		return fmt.Errorf("%s: %s: %w", r.cat.String(), r.msg, r.cse)
	}

	return fmt.Errorf("%s: %s", r.cat.String(), r.msg)
}

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

// Package retry runs fetch operations through an asynchronous exponential
// backoff loop with multiplicative jitter. Attempts of one execution run
// strictly sequentially on their own goroutine; between attempts the delay
// is a timer wait, never a parked OS thread doing work. Cancellation
// received between attempts aborts before the next delay is scheduled.
package retry

import (
	"context"

	liberr "github.com/nabbar/golib/errors"

	libres "github.com/sabouaram/httpguard/fetch/result"
)

// Context is the immutable per-invocation label handed to the operation
// and the metrics callbacks.
type Context struct {
	Operation string
	Attempt   int
}

// NewContext returns a retry context for the given operation name and
// 1-based attempt number.
func NewContext(operation string, attempt int) Context {
	return Context{
		Operation: operation,
		Attempt:   attempt,
	}
}

// Next returns the context of the following attempt.
func (c Context) Next() Context {
	return Context{
		Operation: c.Operation,
		Attempt:   c.Attempt + 1,
	}
}

// Operation is one attempt of the retried work.
type Operation[T any] func(ctx context.Context) libres.Result[T]

// Strategy executes an operation with retry. Execute returns immediately;
// the final result is delivered once on the returned channel. A given
// execution runs its attempts sequentially; independent executions are
// unrelated and may run concurrently.
type Strategy[T any] interface {
	// Execute runs the operation until success, a non-retryable failure,
	// attempt exhaustion or cancellation, and delivers the last result.
	Execute(ctx context.Context, op Operation[T], rc Context) <-chan libres.Result[T]
}

// New returns a Strategy applying the given backoff options, reporting to
// the given metrics. A nil metrics falls back to the no-op implementation.
func New[T any](opt Options, mtr Metrics) (Strategy[T], liberr.Error) {
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	if mtr == nil {
		mtr = NopMetrics()
	}

	return &str[T]{
		o: opt,
		m: mtr,
	}, nil
}

// None returns the strategy executing the operation exactly once, with no
// retry and no delay.
func None[T any]() Strategy[T] {
	var o = DefaultOptions()
	o.MaxAttempts = 1

	return &str[T]{
		o: o,
		m: NopMetrics(),
	}
}

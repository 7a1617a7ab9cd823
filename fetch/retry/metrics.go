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

package retry

import (
	"time"
)

// Metrics receives the lifecycle callbacks of one retried execution. All
// callbacks run on the execution goroutine; implementations must not block.
type Metrics interface {
	// OnStart is called once before the first attempt.
	OnStart(rc Context)
	// OnAttempt is called after each attempt with its 1-based number,
	// duration and outcome.
	OnAttempt(rc Context, attempt int, duration time.Duration, success bool)
	// OnDelay is called before waiting between attempts, with the planned
	// backoff and the actually scheduled wait; both are the delay after
	// jitter and clamping to [0, MaxDelay].
	OnDelay(attempt int, planned, actual time.Duration)
	// OnComplete is called once with the total duration, the final outcome
	// and the number of attempts consumed.
	OnComplete(total time.Duration, success bool, attempts int)
}

type nopMetrics struct{}

// NopMetrics returns the metrics implementation discarding every callback.
func NopMetrics() Metrics {
	return nopMetrics{}
}

func (nopMetrics) OnStart(_ Context) {}

func (nopMetrics) OnAttempt(_ Context, _ int, _ time.Duration, _ bool) {}

func (nopMetrics) OnDelay(_ int, _, _ time.Duration) {}

func (nopMetrics) OnComplete(_ time.Duration, _ bool, _ int) {}

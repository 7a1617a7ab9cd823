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
	"context"
	"time"

	libres "github.com/sabouaram/httpguard/fetch/result"
)

type str[T any] struct {
	o Options
	m Metrics
}

func (s *str[T]) Execute(ctx context.Context, op Operation[T], rc Context) <-chan libres.Result[T] {
	var ch = make(chan libres.Result[T], 1)

	go s.run(ctx, op, rc, ch)

	return ch
}

func (s *str[T]) run(ctx context.Context, op Operation[T], rc Context, ch chan<- libres.Result[T]) {
	var (
		beg  = time.Now()
		cur  = rc
		last libres.Result[T]
	)

	s.m.OnStart(rc)

	for {
		var att = time.Now()

		last = op(ctx)

		s.m.OnAttempt(cur, cur.Attempt, time.Since(att), last.IsSuccess())

		if last.IsSuccess() || cur.Attempt >= s.o.MaxAttempts || !last.IsRetryable() {
			break
		}

		// A cancellation observed between attempts aborts before the next
		// delay is scheduled.
		if ctx.Err() != nil {
			last = libres.NewFailure[T]("operation cancelled before retry", ctx.Err(), libres.CategoryNetwork)
			break
		}

		var (
			pln = s.o.delay(cur.Attempt)
			act = pln
			tmr = time.NewTimer(act)
		)

		s.m.OnDelay(cur.Attempt, pln, act)

		select {
		case <-ctx.Done():
			tmr.Stop()
			last = libres.NewFailure[T]("operation cancelled during backoff", ctx.Err(), libres.CategoryNetwork)
			s.m.OnComplete(time.Since(beg), false, cur.Attempt)
			ch <- last
			return
		case <-tmr.C:
		}

		cur = cur.Next()
	}

	s.m.OnComplete(time.Since(beg), last.IsSuccess(), cur.Attempt)
	ch <- last
}

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

package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	libatm "github.com/nabbar/golib/atomic"
	liblog "github.com/nabbar/golib/logger"
	loglvl "github.com/nabbar/golib/logger/level"

	libres "github.com/sabouaram/httpguard/fetch/result"
	libret "github.com/sabouaram/httpguard/fetch/retry"
	libtyp "github.com/sabouaram/httpguard/httptypes"
)

const hdrIfNoneMatch = "If-None-Match"

// entry is the cached outcome of the last successful fetch. It is written
// only by a 2xx response whose conversion succeeded, never expires
// implicitly, and is read for conditional requests and fallback content.
type entry[T any] struct {
	c T
	e string
	s int
}

type fch[T any] struct {
	m sync.Mutex
	o string
	h Handler
	r libret.Strategy[T]
	c Converter[T]
	e *entry[T]
	s libatm.Value[Status]
	l libatm.Value[liblog.FuncLog]
}

func (o *fch[T]) logger() liblog.Logger {
	if f := o.l.Load(); f == nil {
		return liblog.GetDefault()
	} else if l := f(); l == nil {
		return liblog.GetDefault()
	} else {
		return l
	}
}

func (o *fch[T]) RegisterLogger(l liblog.FuncLog) {
	o.l.Store(l)
}

func (o *fch[T]) Status() Status {
	return o.s.Load()
}

// Load serializes through the fetch mutex: the cached entry is only
// touched while the lock is held, which spans the whole retry execution.
func (o *fch[T]) Load(ctx context.Context) libres.Result[T] {
	o.m.Lock()
	defer o.m.Unlock()

	o.s.Store(StatusLoading)

	var res = <-o.r.Execute(ctx, o.fetchOnce, libret.NewContext(o.o, 1))

	if res.IsSuccess() {
		o.s.Store(StatusOK)
	} else {
		o.s.Store(StatusError)

		ent := o.logger().Entry(loglvl.WarnLevel, "fetch failed")
		ent.FieldAdd("operation", o.o)
		ent.ErrorAdd(true, res.Err())
		ent.Log()
	}

	return res
}

func (o *fch[T]) fetchOnce(ctx context.Context) libres.Result[T] {
	var hdr = make(http.Header)

	if ct := o.c.ContentType(); len(ct) > 0 {
		hdr.Set("Accept", ct)
	}

	if o.e != nil && len(o.e.e) > 0 {
		hdr.Set(hdrIfNoneMatch, o.e.e)
	}

	var rsp, err = o.h.Do(ctx, hdr)

	if err != nil {
		// Cooperative cancellation propagates immediately; the retry loop
		// observes the context and will not schedule another attempt.
		return o.failure("request failed", err, libres.CategoryNetwork, 0)
	}

	defer func() {
		if rsp.Body != nil {
			_ = rsp.Body.Close()
		}
	}()

	if rsp.StatusCode == http.StatusNotModified {
		return o.notModified()
	}

	switch libtyp.NewStatusFamily(rsp.StatusCode) {
	case libtyp.FamilySuccess:
		return o.success(rsp)
	case libtyp.FamilyClientError:
		return o.failure(fmt.Sprintf("client error status %d", rsp.StatusCode), nil, libres.CategoryClient, rsp.StatusCode)
	default:
		return o.failure(fmt.Sprintf("server error status %d", rsp.StatusCode), nil, libres.CategoryServer, rsp.StatusCode)
	}
}

// notModified answers a 304 from the cache; a 304 without cached content is
// a server contract violation.
func (o *fch[T]) notModified() libres.Result[T] {
	if o.e == nil {
		return libres.NewFailure[T]("304 Not Modified but no cached content", nil, libres.CategoryServer)
	}

	return libres.NewSuccess[T](o.e.c, o.e.e, http.StatusNotModified)
}

// success converts the body and replaces the cache; a failed conversion
// reports INVALID_CONTENT and leaves the cache untouched.
func (o *fch[T]) success(rsp *http.Response) libres.Result[T] {
	var raw []byte

	if rsp.Body != nil {
		var err error

		if raw, err = io.ReadAll(rsp.Body); err != nil {
			return o.failure("reading response body", err, libres.CategoryNetwork, rsp.StatusCode)
		}
	}

	var tag = rsp.Header.Get("ETag")

	if cnt, ok := o.c.Convert(raw); !ok {
		return o.failure("response body conversion failed", nil, libres.CategoryInvalidContent, rsp.StatusCode)
	} else {
		o.e = &entry[T]{
			c: cnt,
			e: tag,
			s: rsp.StatusCode,
		}

		return libres.NewSuccess[T](cnt, tag, rsp.StatusCode)
	}
}

// failure attaches the cached content as fallback when available.
func (o *fch[T]) failure(msg string, cause error, cat libres.Category, status int) libres.Result[T] {
	if o.e != nil {
		return libres.NewFailureFallback[T](msg, cause, cat, o.e.c, o.e.e, status)
	}

	if status > 0 {
		return libres.NewFailureStatus[T](msg, cause, cat, status)
	}

	return libres.NewFailure[T](msg, cause, cat)
}

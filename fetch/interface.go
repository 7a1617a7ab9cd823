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

// Package fetch implements the resilient single-URI fetch engine: ETag
// aware conditional requests, an in-memory cache of the last successful
// content used both for 304 answers and as fallback on failures, and a
// retry strategy applied to retryable failure categories. One fetcher
// serializes its Load calls through a mutex; the loader status is published
// atomically and may be read without the lock.
package fetch

import (
	"context"
	"net/http"
	"sync"

	libatm "github.com/nabbar/golib/atomic"
	liberr "github.com/nabbar/golib/errors"
	liblog "github.com/nabbar/golib/logger"

	libres "github.com/sabouaram/httpguard/fetch/result"
	libret "github.com/sabouaram/httpguard/fetch/retry"
)

// Handler performs one synchronous request to the fixed endpoint of the
// fetcher, adding the given headers. The fetcher assumes nothing about the
// underlying transport; any implementation returning a standard response
// works, the packaged httpcli client included.
type Handler interface {
	// Do sends the request with the given extra headers and returns the
	// raw response. The caller owns the response body.
	Do(ctx context.Context, hdr http.Header) (*http.Response, error)
}

// FuncHandler adapts a plain function to the Handler interface.
type FuncHandler func(ctx context.Context, hdr http.Header) (*http.Response, error)

// Do implements Handler.
func (f FuncHandler) Do(ctx context.Context, hdr http.Header) (*http.Response, error) {
	return f(ctx, hdr)
}

// Converter turns the raw response body into the typed content of the
// fetcher. A failed conversion marks the fetch INVALID_CONTENT and leaves
// the cache untouched.
type Converter[T any] interface {
	// ContentType returns the media type announced in the Accept header,
	// empty for no preference.
	ContentType() string
	// Convert parses the raw body; ok reports whether content was produced.
	Convert(raw []byte) (T, bool)
}

// Fetcher loads one URI with conditional requests, caching and retry.
type Fetcher[T any] interface {
	// Load performs the fetch, applying the retry strategy, and returns
	// the final result. Calls are serialized per fetcher.
	Load(ctx context.Context) libres.Result[T]
	// Status returns the loader lifecycle status, readable without the
	// fetch lock and eventually consistent with the completing Load.
	Status() Status
	// RegisterLogger sets the logger factory used by the fetcher.
	RegisterLogger(l liblog.FuncLog)
}

// New returns a Fetcher for the given operation name, transport handler,
// retry strategy and body converter. A nil strategy falls back to the
// single-attempt strategy.
func New[T any](operation string, h Handler, r libret.Strategy[T], c Converter[T]) (Fetcher[T], liberr.Error) {
	if h == nil || c == nil {
		return nil, ErrorParamEmpty.Error(nil)
	}

	if len(operation) == 0 {
		operation = "fetch"
	}

	if r == nil {
		r = libret.None[T]()
	}

	return &fch[T]{
		m: sync.Mutex{},
		o: operation,
		h: h,
		r: r,
		c: c,
		s: libatm.NewValue[Status](),
		l: libatm.NewValue[liblog.FuncLog](),
	}, nil
}

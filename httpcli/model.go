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

package httpcli

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	libtyp "github.com/sabouaram/httpguard/httptypes"
)

type cli struct {
	s sync.Mutex

	f FctHttpClient
	u *url.URL
	h http.Header
}

func (r *cli) _GetClient() *http.Client {
	if r.f != nil {
		if c := r.f(); c != nil {
			return c
		}
	}

	return &http.Client{}
}

func (r *cli) SetClient(fct FctHttpClient) {
	r.s.Lock()
	defer r.s.Unlock()
	r.f = fct
}

func (r *cli) Endpoint() *url.URL {
	r.s.Lock()
	defer r.s.Unlock()

	var u = *r.u
	return &u
}

func (r *cli) Header(key, value string) {
	r.s.Lock()
	defer r.s.Unlock()

	if len(r.h) < 1 {
		r.h = make(http.Header)
	}

	r.h.Set(key, value)
}

func (r *cli) Do(ctx context.Context, hdr http.Header) (*http.Response, error) {
	return r._Do(ctx, http.MethodGet, hdr)
}

func (r *cli) _Do(ctx context.Context, mtd string, hdr http.Header) (*http.Response, error) {
	r.s.Lock()
	defer r.s.Unlock()

	var req, err = http.NewRequestWithContext(ctx, mtd, r.u.String(), nil)

	if err != nil {
		return nil, err
	}

	for k := range r.h {
		req.Header.Set(k, r.h.Get(k))
	}

	for k := range hdr {
		req.Header.Set(k, hdr.Get(k))
	}

	return r._GetClient().Do(req)
}

func (r *cli) PingHead(ctx context.Context) libtyp.StatusFamily {
	return r._Ping(ctx, http.MethodHead)
}

func (r *cli) PingGet(ctx context.Context) libtyp.StatusFamily {
	return r._Ping(ctx, http.MethodGet)
}

func (r *cli) _Ping(ctx context.Context, mtd string) libtyp.StatusFamily {
	var rsp, err = r._Do(ctx, mtd, nil)

	if err != nil {
		return libtyp.FamilyUnknown
	}

	if rsp.Body != nil {
		_, _ = io.Copy(io.Discard, rsp.Body)
		_ = rsp.Body.Close()
	}

	return libtyp.NewStatusFamily(rsp.StatusCode)
}

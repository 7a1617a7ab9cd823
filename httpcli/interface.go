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

// Package httpcli is the HTTP handler facade consumed by the fetch engine:
// a client bound to one endpoint, built from a URL with connect and read
// timeouts and an optional TLS configuration, offering a synchronous send
// with extra headers plus HEAD/GET reachability pings classified by status
// family. The facade makes no assumption about the host application's
// transport beyond the standard library client.
package httpcli

import (
	"context"
	"net/http"
	"net/url"

	liberr "github.com/nabbar/golib/errors"

	libtyp "github.com/sabouaram/httpguard/httptypes"
)

// FctHttpClient is a function type that returns an HTTP client, used for
// dependency injection and testing.
type FctHttpClient func() *http.Client

// Client is a request facade bound to one endpoint.
type Client interface {
	// Endpoint returns a copy of the bound endpoint URL.
	Endpoint() *url.URL

	// Header adds a default header sent with every request.
	Header(key, value string)

	// Do sends one GET request with the given extra headers and returns
	// the raw response. The caller owns the response body.
	Do(ctx context.Context, hdr http.Header) (*http.Response, error)

	// PingHead sends a HEAD request and classifies the response status.
	PingHead(ctx context.Context) libtyp.StatusFamily
	// PingGet sends a GET request, discards the body and classifies the
	// response status.
	PingGet(ctx context.Context) libtyp.StatusFamily

	// SetClient overrides the underlying HTTP client factory.
	SetClient(fct FctHttpClient)
}

// New returns a Client for the given options.
func New(opt Options) (Client, liberr.Error) {
	return opt.New()
}

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
	"net"
	"net/http"
	"time"

	libtls "github.com/nabbar/golib/certificates"
)

const (
	// ClientTimeout5Sec is the default connect timeout.
	ClientTimeout5Sec = 5 * time.Second // nolint
)

// GetTransport returns a transport with the given dial timeout and sane
// pooling limits.
func GetTransport(connectTimeout time.Duration, http2Tr bool) *http.Transport {
	var dl = &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: 30 * time.Second,
	}

	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dl.DialContext,
		ForceAttemptHTTP2:     http2Tr,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   5,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   connectTimeout,
		ExpectContinueTimeout: time.Second,
	}
}

// SetTransportTLS applies the TLS configuration to the transport for the
// given server name.
func SetTransportTLS(tr *http.Transport, tls libtls.TLSConfig, servername string) {
	if tr == nil || tls == nil {
		return
	}

	tr.TLSClientConfig = tls.TlsConfig(servername)
}

// GetClient returns a client with the given TLS configuration, server
// name, connect timeout and global read timeout.
func GetClient(tls libtls.TLSConfig, servername string, http2Tr bool, connectTimeout, readTimeout time.Duration) *http.Client {
	var tr = GetTransport(connectTimeout, http2Tr)

	SetTransportTLS(tr, tls, servername)

	return &http.Client{
		Transport: tr,
		Timeout:   readTimeout,
	}
}

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
	libtls "github.com/nabbar/golib/certificates"
	tlsvrs "github.com/nabbar/golib/certificates/tlsversion"
	liberr "github.com/nabbar/golib/errors"
)

// SecureTlsConfig validates or replaces a TLS configuration so only TLS
// 1.2 and TLS 1.3 remain negotiable. A nil configuration yields a fresh
// one pinned to TLS 1.2 minimum. Construction fails hard when a secure
// configuration cannot be produced.
func SecureTlsConfig(c libtls.TLSConfig) (libtls.TLSConfig, liberr.Error) {
	if c == nil {
		c = libtls.New()
	}

	if v := c.GetVersionMin(); v == tlsvrs.VersionUnknown || v < tlsvrs.VersionTLS12 {
		c.SetVersionMin(tlsvrs.VersionTLS12)
	}

	if v := c.GetVersionMax(); v != tlsvrs.VersionUnknown && v < tlsvrs.VersionTLS12 {
		c.SetVersionMax(tlsvrs.VersionTLS13)
	}

	if c.GetVersionMin() < tlsvrs.VersionTLS12 {
		return nil, ErrorClientTLS.Error(nil)
	}

	if t := c.TlsConfig(""); t == nil {
		return nil, ErrorClientTLS.Error(nil)
	}

	return c, nil
}

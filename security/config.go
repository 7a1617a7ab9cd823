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

package security

import (
	"strings"
)

// Configuration is the immutable view of the validation limits, sets and
// feature flags consumed by stages and pipelines. It is built from a Config
// options struct; once built it never changes and is safe for concurrent use.
//
// Set membership honors the case sensitivity flag: when comparisons are case
// insensitive, lowercase copies of the sets are precomputed at build time so
// lookups stay O(1) without per-call allocation.
type Configuration interface {
	// MaxLength returns the maximum admissible length for the given
	// validation type.
	MaxLength(t ValidationType) int

	// MaxParameterCount returns the maximum number of parameters.
	MaxParameterCount() int
	// MaxHeaderCount returns the maximum number of headers.
	MaxHeaderCount() int
	// MaxCookieCount returns the maximum number of cookies.
	MaxCookieCount() int

	// HeaderNameAllowed reports whether the given header name passes the
	// allow and block sets. An empty allow set admits any name not blocked.
	HeaderNameAllowed(name string) bool
	// ContentTypeAllowed reports whether the given media type passes the
	// allow and block sets. Parameters after ';' are ignored.
	ContentTypeAllowed(ct string) bool

	AllowPathTraversal() bool
	AllowDoubleEncoding() bool
	AllowNullBytes() bool
	AllowControlCharacters() bool
	AllowExtendedAscii() bool
	NormalizeUnicode() bool
	CaseSensitiveComparison() bool
	FailOnSuspiciousPatterns() bool
	RequireSecureCookies() bool
	RequireHttpOnlyCookies() bool
}

type cfg struct {
	lnPath int
	lnPrmN int
	lnPrmV int
	lnHdrN int
	lnHdrV int
	lnCokN int
	lnCokV int
	lnBody int

	ctPrm int
	ctHdr int
	ctCok int

	hdrAllow map[string]struct{}
	hdrBlock map[string]struct{}
	cntAllow map[string]struct{}
	cntBlock map[string]struct{}

	fTrv bool
	fDbl bool
	fNul bool
	fCtl bool
	fExt bool
	fNrm bool
	fCse bool
	fPat bool
	fSec bool
	fHto bool
}

func newSet(l []string, lower bool) map[string]struct{} {
	if len(l) == 0 {
		return nil
	}

	var m = make(map[string]struct{}, len(l))

	for _, s := range l {
		if lower {
			s = strings.ToLower(s)
		}
		m[s] = struct{}{}
	}

	return m
}

func (c *cfg) MaxLength(t ValidationType) int {
	switch t {
	case TypeURLPath:
		return c.lnPath
	case TypeParameterName:
		return c.lnPrmN
	case TypeParameterValue:
		return c.lnPrmV
	case TypeHeaderName:
		return c.lnHdrN
	case TypeHeaderValue:
		return c.lnHdrV
	case TypeCookieName:
		return c.lnCokN
	case TypeCookieValue:
		return c.lnCokV
	case TypeBody:
		return c.lnBody
	}

	return c.lnBody
}

func (c *cfg) MaxParameterCount() int {
	return c.ctPrm
}

func (c *cfg) MaxHeaderCount() int {
	return c.ctHdr
}

func (c *cfg) MaxCookieCount() int {
	return c.ctCok
}

func (c *cfg) key(s string) string {
	if c.fCse {
		return s
	}

	return strings.ToLower(s)
}

func (c *cfg) HeaderNameAllowed(name string) bool {
	var k = c.key(name)

	if c.hdrBlock != nil {
		if _, b := c.hdrBlock[k]; b {
			return false
		}
	}

	if c.hdrAllow != nil {
		_, b := c.hdrAllow[k]
		return b
	}

	return true
}

func (c *cfg) ContentTypeAllowed(ct string) bool {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}

	var k = strings.TrimSpace(c.key(ct))

	if c.cntBlock != nil {
		if _, b := c.cntBlock[k]; b {
			return false
		}
	}

	if c.cntAllow != nil {
		_, b := c.cntAllow[k]
		return b
	}

	return true
}

func (c *cfg) AllowPathTraversal() bool {
	return c.fTrv
}

func (c *cfg) AllowDoubleEncoding() bool {
	return c.fDbl
}

func (c *cfg) AllowNullBytes() bool {
	return c.fNul
}

func (c *cfg) AllowControlCharacters() bool {
	return c.fCtl
}

func (c *cfg) AllowExtendedAscii() bool {
	return c.fExt
}

func (c *cfg) NormalizeUnicode() bool {
	return c.fNrm
}

func (c *cfg) CaseSensitiveComparison() bool {
	return c.fCse
}

func (c *cfg) FailOnSuspiciousPatterns() bool {
	return c.fPat
}

func (c *cfg) RequireSecureCookies() bool {
	return c.fSec
}

func (c *cfg) RequireHttpOnlyCookies() bool {
	return c.fHto
}

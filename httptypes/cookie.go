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

package httptypes

import (
	"strconv"
	"strings"
)

const (
	// PrefixHost is the RFC 6265bis __Host- cookie name prefix.
	PrefixHost = "__Host-"
	// PrefixSecure is the RFC 6265bis __Secure- cookie name prefix.
	PrefixSecure = "__Secure-"

	attrSecure   = "Secure"
	attrHttpOnly = "HttpOnly"
	attrDomain   = "Domain"
	attrPath     = "Path"
	attrMaxAge   = "Max-Age"
	attrSameSite = "SameSite"
)

// Cookie is an immutable cookie record: name, value, and the raw
// semicolon-separated attribute suffix of a Set-Cookie line.
type Cookie struct {
	Name       string
	Value      string
	Attributes string
}

// NewCookie returns a Cookie record.
func NewCookie(name, value, attributes string) Cookie {
	return Cookie{
		Name:       name,
		Value:      value,
		Attributes: attributes,
	}
}

// IsSecure reports the presence of the Secure flag, case insensitively.
func (c Cookie) IsSecure() bool {
	return HasAttribute(c.Attributes, attrSecure)
}

// IsHttpOnly reports the presence of the HttpOnly flag, case insensitively.
func (c Cookie) IsHttpOnly() bool {
	return HasAttribute(c.Attributes, attrHttpOnly)
}

// GetDomain returns the Domain attribute value, if present.
func (c Cookie) GetDomain() (string, bool) {
	return ExtractAttribute(c.Attributes, attrDomain)
}

// GetPath returns the Path attribute value, if present.
func (c Cookie) GetPath() (string, bool) {
	return ExtractAttribute(c.Attributes, attrPath)
}

// GetMaxAge returns the Max-Age attribute parsed as seconds, if present
// and numeric.
func (c Cookie) GetMaxAge() (int64, bool) {
	if v, ok := ExtractAttribute(c.Attributes, attrMaxAge); !ok {
		return 0, false
	} else if n, e := strconv.ParseInt(v, 10, 64); e != nil {
		return 0, false
	} else {
		return n, true
	}
}

// GetSameSite returns the SameSite attribute value, if present.
func (c Cookie) GetSameSite() (string, bool) {
	return ExtractAttribute(c.Attributes, attrSameSite)
}

// HasDomain reports the presence of any Domain attribute, valued or not.
func (c Cookie) HasDomain() bool {
	return HasAttribute(c.Attributes, attrDomain)
}

// HasSecurityPrefix reports whether the cookie name begins with __Host- or
// __Secure-. Matching is case sensitive and anchored at the start: a suffix
// occurrence is not a prefix.
func (c Cookie) HasSecurityPrefix() bool {
	return HasSecurityPrefix(c.Name)
}

// HasSecurityPrefix reports whether the given cookie name begins with
// __Host- or __Secure-, case sensitively.
func HasSecurityPrefix(name string) bool {
	return strings.HasPrefix(name, PrefixHost) || strings.HasPrefix(name, PrefixSecure)
}

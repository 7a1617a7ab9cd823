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

package stage

import (
	"strings"

	libtyp "github.com/sabouaram/httpguard/httptypes"
	libsec "github.com/sabouaram/httpguard/security"
)

// CookiePrefix validates the RFC 6265bis __Host- and __Secure- name prefix
// rules against a full Cookie record. Prefix matching is case sensitive and
// anchored; the attribute checks run in a fixed order (Secure, then Path,
// then Domain) so the reported detail is stable.
type CookiePrefix interface {
	// Name returns the stage identifier used in logs.
	Name() string
	// Validate checks the cookie prefix rules.
	Validate(c libtyp.Cookie) libsec.Error
}

type cookiePrefix struct{}

// NewCookiePrefix returns the cookie prefix validation stage.
func NewCookiePrefix() CookiePrefix {
	return &cookiePrefix{}
}

func (o *cookiePrefix) Name() string {
	return "cookie-prefix"
}

func (o *cookiePrefix) Validate(c libtyp.Cookie) libsec.Error {
	if len(c.Name) == 0 {
		return libsec.NewErrorDetail(libsec.FailureInvalidInput, libsec.TypeCookieName, c.Name, "cookie name is empty")
	}

	if strings.TrimSpace(c.Name) != c.Name {
		return libsec.NewErrorDetail(libsec.FailureInvalidCharacter, libsec.TypeCookieName, c.Name, "cookie name has leading or trailing whitespace")
	}

	if strings.HasPrefix(c.Name, libtyp.PrefixHost) {
		if !c.IsSecure() {
			return libsec.NewErrorDetail(libsec.FailureCookiePrefix, libsec.TypeCookieName, c.Name, "__Host- prefix requires Secure attribute")
		}

		if p, k := c.GetPath(); !k || p != "/" {
			return libsec.NewErrorDetail(libsec.FailureCookiePrefix, libsec.TypeCookieName, c.Name, "__Host- prefix requires Path=/ attribute")
		}

		if c.HasDomain() {
			return libsec.NewErrorDetail(libsec.FailureCookiePrefix, libsec.TypeCookieName, c.Name, "__Host- prefix must not set Domain attribute")
		}

		return nil
	}

	if strings.HasPrefix(c.Name, libtyp.PrefixSecure) {
		if !c.IsSecure() {
			return libsec.NewErrorDetail(libsec.FailureCookiePrefix, libsec.TypeCookieName, c.Name, "__Secure- prefix requires Secure attribute")
		}
	}

	return nil
}

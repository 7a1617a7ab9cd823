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
	"fmt"

	libsec "github.com/sabouaram/httpguard/security"
)

// Character class tables derived from RFC 3986 (URI), RFC 7230 (tchar) and
// RFC 6265 (cookie token / cookie-octet). Tables index ASCII bytes.
var (
	tblUnreserved [128]bool
	tblSubDelims  [128]bool
	tblTchar      [128]bool
	tblCookieOct  [128]bool
)

func init() {
	for b := byte('a'); b <= 'z'; b++ {
		tblUnreserved[b] = true
		tblTchar[b] = true
	}
	for b := byte('A'); b <= 'Z'; b++ {
		tblUnreserved[b] = true
		tblTchar[b] = true
	}
	for b := byte('0'); b <= '9'; b++ {
		tblUnreserved[b] = true
		tblTchar[b] = true
	}

	for _, b := range []byte("-._~") {
		tblUnreserved[b] = true
	}

	for _, b := range []byte("!$&'()*+,;=") {
		tblSubDelims[b] = true
	}

	for _, b := range []byte("!#$%&'*+-.^_`|~") {
		tblTchar[b] = true
	}

	// cookie-octet: %x21 / %x23-2B / %x2D-3A / %x3C-5B / %x5D-7E
	tblCookieOct[0x21] = true
	for b := byte(0x23); b <= 0x2B; b++ {
		tblCookieOct[b] = true
	}
	for b := byte(0x2D); b <= 0x3A; b++ {
		tblCookieOct[b] = true
	}
	for b := byte(0x3C); b <= 0x5B; b++ {
		tblCookieOct[b] = true
	}
	for b := byte(0x5D); b <= 0x7E; b++ {
		tblCookieOct[b] = true
	}
}

type character struct {
	t libsec.ValidationType
	c libsec.Configuration
}

// NewCharacter returns the stage enforcing the character whitelist of the
// given validation type.
func NewCharacter(t libsec.ValidationType, c libsec.Configuration) Stage {
	return &character{
		t: t,
		c: c,
	}
}

func (o *character) Name() string {
	return "character"
}

func (o *character) Type() libsec.ValidationType {
	return o.t
}

func (o *character) Validate(in string) (string, libsec.Error) {
	if err := checkNullByte(in, o.t, o.c); err != nil {
		return "", err
	}

	for i := 0; i < len(in); i++ {
		var b = in[i]

		if b >= 0x80 {
			if !o.c.AllowExtendedAscii() {
				return "", libsec.NewErrorDetail(libsec.FailureInvalidCharacter, o.t, in, fmt.Sprintf("non ascii byte at position %d", i))
			}
			continue
		}

		if b == '%' && o.percentAdmissible() {
			if i+2 >= len(in) || !isHexDigit(in[i+1]) || !isHexDigit(in[i+2]) {
				return "", libsec.NewErrorDetail(libsec.FailureInvalidEncoding, o.t, in, fmt.Sprintf("invalid percent sequence at position %d", i))
			}

			i += 2
			continue
		}

		if b < 0x20 || b == 0x7F {
			if o.controlAllowed(b) {
				continue
			}

			return "", libsec.NewErrorDetail(libsec.FailureControlCharacter, o.t, in, fmt.Sprintf("control character at position %d", i))
		}

		if !o.allowed(b) {
			return "", libsec.NewErrorDetail(libsec.FailureInvalidCharacter, o.t, in, fmt.Sprintf("invalid character %q at position %d", rune(b), i))
		}
	}

	return in, nil
}

// percentAdmissible reports whether percent escapes are meaningful for the
// validation type, making each '%' subject to two-hex-digit validation.
func (o *character) percentAdmissible() bool {
	switch o.t {
	case libsec.TypeURLPath, libsec.TypeParameterName, libsec.TypeParameterValue:
		return true
	}

	return false
}

// controlAllowed reports whether the given control byte is admissible for
// the validation type.
func (o *character) controlAllowed(b byte) bool {
	switch o.t {
	case libsec.TypeHeaderValue:
		return b == '\t'
	case libsec.TypeBody:
		if b == '\t' || b == '\r' || b == '\n' {
			return true
		}

		return o.c.AllowControlCharacters()
	}

	return false
}

// allowed applies the per-type whitelist to a printable ASCII byte.
func (o *character) allowed(b byte) bool {
	switch o.t {
	case libsec.TypeURLPath:
		return tblUnreserved[b] || tblSubDelims[b] || b == ':' || b == '@' || b == '/' || b == '%'
	case libsec.TypeParameterName, libsec.TypeParameterValue:
		return tblUnreserved[b] || tblSubDelims[b] || b == '%'
	case libsec.TypeHeaderName, libsec.TypeCookieName:
		return tblTchar[b]
	case libsec.TypeHeaderValue:
		return b >= 0x20 && b <= 0x7E
	case libsec.TypeCookieValue:
		return tblCookieOct[b]
	case libsec.TypeBody:
		return true
	}

	return false
}

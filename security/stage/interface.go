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

// Package stage implements the individual validation stages composed by the
// pipelines: length enforcement, single-round percent decoding with double
// encoding detection, per-type character whitelisting, canonical
// normalization, attack signature matching and cookie prefix rules.
//
// A stage is pure: no I/O, deterministic, and idempotent on its own output
// (decoding excepted, which decodes exactly one round). Stages hold only
// their immutable configuration and are safe for concurrent use.
package stage

import (
	"fmt"
	"strings"

	libsec "github.com/sabouaram/httpguard/security"
)

// Stage validates or transforms one string component of a request. The
// returned string is the stage output handed to the next stage; on
// violation the error carries the failure taxonomy and the stage's
// validation type.
type Stage interface {
	// Name returns the stage identifier used in logs.
	Name() string
	// Type returns the validation context the stage is bound to.
	Type() libsec.ValidationType
	// Validate checks the input and returns the possibly transformed
	// output, or a violation.
	Validate(in string) (string, libsec.Error)
}

// nullBytePosition returns the zero-based byte offset of the first literal
// NUL byte or, when there is none, of the first "%00" sequence, if any.
// Every stage runs this check so null
// byte injection cannot hide behind stage ordering.
func nullBytePosition(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0x00 {
			return i, true
		}
	}

	if i := strings.Index(s, "%00"); i >= 0 {
		return i, true
	}

	return -1, false
}

// checkNullByte returns a NULL_BYTE_INJECTION error when the input carries
// a literal NUL or %00 sequence and the configuration does not admit them.
func checkNullByte(in string, t libsec.ValidationType, c libsec.Configuration) libsec.Error {
	if c.AllowNullBytes() {
		return nil
	}

	if i, b := nullBytePosition(in); b {
		return libsec.NewErrorDetail(libsec.FailureNullByte, t, in, fmt.Sprintf("null byte at position %d", i))
	}

	return nil
}

// isHexDigit reports whether the byte is an ASCII hexadecimal digit.
func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// hexValue returns the numeric value of an ASCII hexadecimal digit.
func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

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

const (
	// maxLogLength bounds any user-supplied input rendered into a message.
	maxLogLength = 200
	logEllipsis  = "..."
)

// SanitizeForLog prepares untrusted input for rendering into error messages
// or log entries: control characters 0x00-0x1F and 0x7F are replaced with
// '?' and the result is clipped to 200 characters plus "...". This blocks
// log injection through validated input.
func SanitizeForLog(s string) string {
	if len(s) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	var n int

	for _, r := range s {
		if n >= maxLogLength {
			b.WriteString(logEllipsis)
			break
		}

		if r < 0x20 || r == 0x7F {
			b.WriteByte('?')
		} else {
			b.WriteRune(r)
		}

		n++
	}

	return b.String()
}

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
	"strings"
)

// ExtractAttribute returns the value of the named attribute inside a
// semicolon-separated attribute string, case insensitively. The name must
// match on an attribute boundary: "id" does not match inside "session_id".
// The value runs until the next ';' or the end of the string, trimmed.
func ExtractAttribute(attributes, name string) (string, bool) {
	if len(attributes) == 0 || len(name) == 0 {
		return "", false
	}

	for _, part := range strings.Split(attributes, ";") {
		part = strings.TrimSpace(part)

		var i = strings.IndexByte(part, '=')
		if i < 0 {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(part[:i]), name) {
			return strings.TrimSpace(part[i+1:]), true
		}
	}

	return "", false
}

// HasAttribute reports whether the named flag attribute is present, case
// insensitively, matching on attribute boundaries. Flag attributes carry no
// '=' sign; an attribute with a value also matches by its name.
func HasAttribute(attributes, name string) bool {
	if len(attributes) == 0 || len(name) == 0 {
		return false
	}

	for _, part := range strings.Split(attributes, ";") {
		part = strings.TrimSpace(part)

		if i := strings.IndexByte(part, '='); i >= 0 {
			part = strings.TrimSpace(part[:i])
		}

		if strings.EqualFold(part, name) {
			return true
		}
	}

	return false
}

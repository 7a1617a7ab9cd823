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

// Package security provides the shared model of the HTTP validation pipelines:
// the validation context taxonomy (ValidationType), the violation taxonomy
// (FailureType), the rich validation error value (Error), the immutable
// validation configuration (Configuration) built from an options struct
// (Config), and the log sanitization helper applied to any user-supplied
// input before it is rendered into messages or log entries.
//
// All types in this package are immutable after construction and safe for
// unsynchronized concurrent use.
package security

import (
	"strings"
)

// ValidationType identifies which component of an HTTP request a value
// belongs to. Each validation pipeline is bound to exactly one ValidationType
// and every Error reports the type of the pipeline that raised it.
type ValidationType uint8

const (
	// TypeURLPath is the decoded path component of a request URI.
	TypeURLPath ValidationType = iota
	// TypeParameterName is the name part of a query or form parameter.
	TypeParameterName
	// TypeParameterValue is the value part of a query or form parameter.
	TypeParameterValue
	// TypeHeaderName is an HTTP header field name.
	TypeHeaderName
	// TypeHeaderValue is an HTTP header field value.
	TypeHeaderValue
	// TypeCookieName is a cookie name.
	TypeCookieName
	// TypeCookieValue is a cookie value.
	TypeCookieValue
	// TypeBody is a request or response body rendered as a string.
	TypeBody
)

// IsHeader reports whether the type is a header name or header value.
func (t ValidationType) IsHeader() bool {
	return t == TypeHeaderName || t == TypeHeaderValue
}

// IsCookie reports whether the type is a cookie name or cookie value.
func (t ValidationType) IsCookie() bool {
	return t == TypeCookieName || t == TypeCookieValue
}

// IsPath reports whether the type is the URL path.
func (t ValidationType) IsPath() bool {
	return t == TypeURLPath
}

// IsParameter reports whether the type is a parameter name or value.
func (t ValidationType) IsParameter() bool {
	return t == TypeParameterName || t == TypeParameterValue
}

// IsBody reports whether the type is a body.
func (t ValidationType) IsBody() bool {
	return t == TypeBody
}

// IsName reports whether the type designates a name component, which
// restricts the admissible character set compared to value components.
func (t ValidationType) IsName() bool {
	return t == TypeParameterName || t == TypeHeaderName || t == TypeCookieName
}

func (t ValidationType) String() string {
	switch t {
	case TypeURLPath:
		return "URL_PATH"
	case TypeParameterName:
		return "PARAMETER_NAME"
	case TypeParameterValue:
		return "PARAMETER_VALUE"
	case TypeHeaderName:
		return "HEADER_NAME"
	case TypeHeaderValue:
		return "HEADER_VALUE"
	case TypeCookieName:
		return "COOKIE_NAME"
	case TypeCookieValue:
		return "COOKIE_VALUE"
	case TypeBody:
		return "BODY"
	}

	return "UNKNOWN"
}

// NewTypeFromString returns the ValidationType matching the given string,
// case insensitively. Unknown strings return TypeBody and false.
func NewTypeFromString(s string) (ValidationType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "URL_PATH":
		return TypeURLPath, true
	case "PARAMETER_NAME":
		return TypeParameterName, true
	case "PARAMETER_VALUE":
		return TypeParameterValue, true
	case "HEADER_NAME":
		return TypeHeaderName, true
	case "HEADER_VALUE":
		return TypeHeaderValue, true
	case "COOKIE_NAME":
		return TypeCookieName, true
	case "COOKIE_VALUE":
		return TypeCookieValue, true
	case "BODY":
		return TypeBody, true
	}

	return TypeBody, false
}

// MarshalText implements encoding.TextMarshaler.
func (t ValidationType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

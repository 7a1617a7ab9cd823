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

// StatusFamily classifies an integer HTTP status code by its hundreds
// digit. Codes outside 100..=599 classify as FamilyUnknown.
type StatusFamily uint8

const (
	FamilyUnknown StatusFamily = iota
	FamilyInformational
	FamilySuccess
	FamilyRedirection
	FamilyClientError
	FamilyServerError
)

// NewStatusFamily classifies the given status code.
func NewStatusFamily(code int) StatusFamily {
	switch {
	case code >= 100 && code < 200:
		return FamilyInformational
	case code >= 200 && code < 300:
		return FamilySuccess
	case code >= 300 && code < 400:
		return FamilyRedirection
	case code >= 400 && code < 500:
		return FamilyClientError
	case code >= 500 && code < 600:
		return FamilyServerError
	}

	return FamilyUnknown
}

// IsValidStatus reports whether the given code is a valid HTTP status code.
func IsValidStatus(code int) bool {
	return code >= 100 && code <= 599
}

func (f StatusFamily) String() string {
	switch f {
	case FamilyInformational:
		return "INFORMATIONAL"
	case FamilySuccess:
		return "SUCCESS"
	case FamilyRedirection:
		return "REDIRECTION"
	case FamilyClientError:
		return "CLIENT_ERROR"
	case FamilyServerError:
		return "SERVER_ERROR"
	}

	return "UNKNOWN"
}

// IsSuccess reports whether the family is 2xx.
func (f StatusFamily) IsSuccess() bool {
	return f == FamilySuccess
}

// IsError reports whether the family is 4xx or 5xx.
func (f StatusFamily) IsError() bool {
	return f == FamilyClientError || f == FamilyServerError
}

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

// Package result models the outcome of an HTTP fetch as a tagged sum type:
// either a Success carrying content, optional ETag and status code, or a
// Failure carrying a message, category, optional cause, optional stale
// fallback content and optional status. Consumers branch on the tag through
// IsSuccess; content is never modeled as a nilable field.
package result

import (
	"strings"
)

// Category classifies a fetch failure. Network and server categories are
// retryable; client and content categories are not.
type Category uint8

const (
	CategoryNetwork Category = iota
	CategoryClient
	CategoryServer
	CategoryInvalidContent
	CategoryConfiguration
)

func (c Category) String() string {
	switch c {
	case CategoryNetwork:
		return "NETWORK_ERROR"
	case CategoryClient:
		return "CLIENT_ERROR"
	case CategoryServer:
		return "SERVER_ERROR"
	case CategoryInvalidContent:
		return "INVALID_CONTENT"
	case CategoryConfiguration:
		return "CONFIGURATION_ERROR"
	}

	return "UNKNOWN"
}

// IsRetryable reports whether a failure of this category may succeed on a
// later attempt.
func (c Category) IsRetryable() bool {
	return c == CategoryNetwork || c == CategoryServer
}

// NewCategoryFromString returns the Category matching the given string,
// case insensitively. Unknown strings return CategoryConfiguration and false.
func NewCategoryFromString(s string) (Category, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NETWORK_ERROR":
		return CategoryNetwork, true
	case "CLIENT_ERROR":
		return CategoryClient, true
	case "SERVER_ERROR":
		return CategoryServer, true
	case "INVALID_CONTENT":
		return CategoryInvalidContent, true
	case "CONFIGURATION_ERROR":
		return CategoryConfiguration, true
	}

	return CategoryConfiguration, false
}

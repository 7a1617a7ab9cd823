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

// Parameter is an immutable URL parameter record.
type Parameter struct {
	Name  string
	Value string
}

// NewParameter returns a Parameter record.
func NewParameter(name, value string) Parameter {
	return Parameter{
		Name:  name,
		Value: value,
	}
}

// sensitiveNames are parameter names whose values must never be logged.
var sensitiveNames = map[string]struct{}{
	"password":      {},
	"passwd":        {},
	"pwd":           {},
	"secret":        {},
	"token":         {},
	"access_token":  {},
	"refresh_token": {},
	"id_token":      {},
	"api_key":       {},
	"apikey":        {},
	"auth":          {},
	"authorization": {},
	"session":       {},
	"sessionid":     {},
	"session_id":    {},
	"csrf":          {},
	"csrf_token":    {},
	"private_key":   {},
	"client_secret": {},
}

// IsSensitive reports whether the parameter name is a well-known secret
// carrier, case insensitively.
func (p Parameter) IsSensitive() bool {
	_, b := sensitiveNames[strings.ToLower(p.Name)]
	return b
}

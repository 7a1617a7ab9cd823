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

package fetch

import (
	"encoding/json"
)

// Void is the content type of a fetcher that discards bodies.
type Void struct{}

type voidConverter struct{}

// NewVoidConverter returns the converter discarding the body. Conversion
// always succeeds with empty content, so a 2xx response still refreshes the
// cached entity tag.
func NewVoidConverter() Converter[Void] {
	return voidConverter{}
}

func (voidConverter) ContentType() string {
	return ""
}

func (voidConverter) Convert(_ []byte) (Void, bool) {
	return Void{}, true
}

type stringConverter struct {
	ct string
}

// NewStringConverter returns the converter yielding the raw body as a
// string, announcing the given media type.
func NewStringConverter(contentType string) Converter[string] {
	return &stringConverter{
		ct: contentType,
	}
}

func (o *stringConverter) ContentType() string {
	return o.ct
}

func (o *stringConverter) Convert(raw []byte) (string, bool) {
	return string(raw), true
}

type bytesConverter struct {
	ct string
}

// NewBytesConverter returns the converter yielding the raw body bytes,
// announcing the given media type.
func NewBytesConverter(contentType string) Converter[[]byte] {
	return &bytesConverter{
		ct: contentType,
	}
}

func (o *bytesConverter) ContentType() string {
	return o.ct
}

func (o *bytesConverter) Convert(raw []byte) ([]byte, bool) {
	var cpy = make([]byte, len(raw))
	copy(cpy, raw)

	return cpy, true
}

type jsonConverter[T any] struct{}

// NewJsonConverter returns the converter unmarshalling the body into T.
// A body that does not parse yields no content.
func NewJsonConverter[T any]() Converter[T] {
	return jsonConverter[T]{}
}

func (jsonConverter[T]) ContentType() string {
	return "application/json"
}

func (jsonConverter[T]) Convert(raw []byte) (T, bool) {
	var v T

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false
	}

	return v, true
}

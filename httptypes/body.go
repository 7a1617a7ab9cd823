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

// Body is an immutable body record: raw content, declared media type and
// declared transfer encoding.
type Body struct {
	Content     string
	ContentType string
	Encoding    string
}

// NewBody returns a Body record.
func NewBody(content, contentType, encoding string) Body {
	return Body{
		Content:     content,
		ContentType: contentType,
		Encoding:    encoding,
	}
}

// mediaType returns the media type part of the declared content type,
// lowercased, without parameters.
func (b Body) mediaType() string {
	var ct = b.ContentType

	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}

	return strings.ToLower(strings.TrimSpace(ct))
}

// IsJson reports whether the declared media type is a JSON type.
func (b Body) IsJson() bool {
	var m = b.mediaType()
	return m == "application/json" || strings.HasSuffix(m, "+json")
}

// IsXml reports whether the declared media type is an XML type.
func (b Body) IsXml() bool {
	var m = b.mediaType()
	return m == "application/xml" || m == "text/xml" || strings.HasSuffix(m, "+xml")
}

// IsHtml reports whether the declared media type is HTML.
func (b Body) IsHtml() bool {
	return b.mediaType() == "text/html"
}

// IsForm reports whether the declared media type is a form encoding.
func (b Body) IsForm() bool {
	var m = b.mediaType()
	return m == "application/x-www-form-urlencoded" || m == "multipart/form-data"
}

// IsBinary reports whether the declared media type is an opaque binary
// type for which textual character validation does not apply.
func (b Body) IsBinary() bool {
	var m = b.mediaType()

	if m == "application/octet-stream" {
		return true
	}

	for _, p := range []string{"image/", "audio/", "video/", "font/"} {
		if strings.HasPrefix(m, p) {
			return true
		}
	}

	return false
}

// Charset returns the charset parameter of the declared content type, if
// present, lowercased and unquoted.
func (b Body) Charset() (string, bool) {
	var i = strings.IndexByte(b.ContentType, ';')
	if i < 0 {
		return "", false
	}

	for _, part := range strings.Split(b.ContentType[i+1:], ";") {
		part = strings.TrimSpace(part)

		var j = strings.IndexByte(part, '=')
		if j < 0 {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(part[:j]), "charset") {
			var v = strings.TrimSpace(part[j+1:])
			v = strings.Trim(v, `"`)

			if len(v) == 0 {
				return "", false
			}

			return strings.ToLower(v), true
		}
	}

	return "", false
}

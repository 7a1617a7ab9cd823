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

package httptypes_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	libtyp "github.com/sabouaram/httpguard/httptypes"
)

var _ = Describe("Body Record", func() {
	Describe("Media type predicates", func() {
		It("should classify json including suffixes", func() {
			Expect(libtyp.NewBody("", "application/json", "").IsJson()).To(BeTrue())
			Expect(libtyp.NewBody("", "application/problem+json", "").IsJson()).To(BeTrue())
			Expect(libtyp.NewBody("", "Application/JSON; charset=utf-8", "").IsJson()).To(BeTrue())
			Expect(libtyp.NewBody("", "text/html", "").IsJson()).To(BeFalse())
		})

		It("should classify xml including suffixes", func() {
			Expect(libtyp.NewBody("", "application/xml", "").IsXml()).To(BeTrue())
			Expect(libtyp.NewBody("", "text/xml", "").IsXml()).To(BeTrue())
			Expect(libtyp.NewBody("", "image/svg+xml", "").IsXml()).To(BeTrue())
		})

		It("should classify html", func() {
			Expect(libtyp.NewBody("", "text/html; charset=utf-8", "").IsHtml()).To(BeTrue())
			Expect(libtyp.NewBody("", "text/plain", "").IsHtml()).To(BeFalse())
		})

		It("should classify forms", func() {
			Expect(libtyp.NewBody("", "application/x-www-form-urlencoded", "").IsForm()).To(BeTrue())
			Expect(libtyp.NewBody("", "multipart/form-data; boundary=x", "").IsForm()).To(BeTrue())
		})

		It("should classify binary", func() {
			Expect(libtyp.NewBody("", "application/octet-stream", "").IsBinary()).To(BeTrue())
			Expect(libtyp.NewBody("", "image/png", "").IsBinary()).To(BeTrue())
			Expect(libtyp.NewBody("", "video/mp4", "").IsBinary()).To(BeTrue())
			Expect(libtyp.NewBody("", "application/json", "").IsBinary()).To(BeFalse())
		})
	})

	Describe("Charset extraction", func() {
		It("should extract and lowercase the charset", func() {
			c, ok := libtyp.NewBody("", "text/html; charset=UTF-8", "").Charset()
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal("utf-8"))
		})

		It("should unquote the charset", func() {
			c, ok := libtyp.NewBody("", `text/html; charset="ISO-8859-1"`, "").Charset()
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal("iso-8859-1"))
		})

		It("should find charset among several parameters", func() {
			c, ok := libtyp.NewBody("", "multipart/form-data; boundary=x; charset=utf-16", "").Charset()
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal("utf-16"))
		})

		It("should miss when absent", func() {
			_, ok := libtyp.NewBody("", "application/json", "").Charset()
			Expect(ok).To(BeFalse())

			_, ok = libtyp.NewBody("", "text/html; boundary=x", "").Charset()
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("Parameter Record", func() {
	It("should flag well-known sensitive names case insensitively", func() {
		Expect(libtyp.NewParameter("password", "x").IsSensitive()).To(BeTrue())
		Expect(libtyp.NewParameter("Access_Token", "x").IsSensitive()).To(BeTrue())
		Expect(libtyp.NewParameter("API_KEY", "x").IsSensitive()).To(BeTrue())
		Expect(libtyp.NewParameter("page", "2").IsSensitive()).To(BeFalse())
	})
})

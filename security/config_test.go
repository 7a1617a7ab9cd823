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

package security_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	libsec "github.com/sabouaram/httpguard/security"
)

var _ = Describe("Security Configuration", func() {
	Describe("Presets", func() {
		It("should validate all presets", func() {
			Expect(libsec.Defaults().Validate()).To(BeNil())
			Expect(libsec.Strict().Validate()).To(BeNil())
			Expect(libsec.Lenient().Validate()).To(BeNil())
		})

		It("should order preset limits strict < defaults < lenient", func() {
			var (
				s = libsec.Strict()
				d = libsec.Defaults()
				l = libsec.Lenient()
			)

			Expect(s.MaxPathLength).To(BeNumerically("<", d.MaxPathLength))
			Expect(d.MaxPathLength).To(BeNumerically("<", l.MaxPathLength))
			Expect(s.MaxBodyLength).To(BeNumerically("<", d.MaxBodyLength))
		})

		It("should harden cookies only in strict", func() {
			Expect(libsec.Strict().RequireSecureCookies).To(BeTrue())
			Expect(libsec.Strict().RequireHttpOnlyCookies).To(BeTrue())
			Expect(libsec.Defaults().RequireSecureCookies).To(BeFalse())
		})

		It("should keep traversal and null bytes rejected in lenient", func() {
			var l = libsec.Lenient()

			Expect(l.AllowPathTraversal).To(BeFalse())
			Expect(l.AllowNullBytes).To(BeFalse())
			Expect(l.FailOnSuspiciousPatterns).To(BeFalse())
		})
	})

	Describe("Validation", func() {
		It("should reject non-positive length limits", func() {
			var c = libsec.Defaults()
			c.MaxPathLength = 0

			Expect(c.Validate()).ToNot(BeNil())

			_, err := c.Build()
			Expect(err).ToNot(BeNil())
		})

		It("should accept zero counts", func() {
			var c = libsec.Defaults()
			c.MaxCookieCount = 0

			Expect(c.Validate()).To(BeNil())
		})

		It("should reject negative counts", func() {
			var c = libsec.Defaults()
			c.MaxHeaderCount = -1

			Expect(c.Validate()).ToNot(BeNil())
		})
	})

	Describe("Build", func() {
		It("should expose the per-type lengths", func() {
			var o = libsec.Defaults()

			c, err := o.Build()
			Expect(err).To(BeNil())

			Expect(c.MaxLength(libsec.TypeURLPath)).To(Equal(o.MaxPathLength))
			Expect(c.MaxLength(libsec.TypeParameterName)).To(Equal(o.MaxParameterNameLength))
			Expect(c.MaxLength(libsec.TypeHeaderValue)).To(Equal(o.MaxHeaderValueLength))
			Expect(c.MaxLength(libsec.TypeBody)).To(Equal(o.MaxBodyLength))
		})

		It("should match header names case insensitively by default", func() {
			var o = libsec.Defaults()
			o.BlockedHeaderNames = []string{"X-Forbidden"}

			c, err := o.Build()
			Expect(err).To(BeNil())

			Expect(c.HeaderNameAllowed("x-forbidden")).To(BeFalse())
			Expect(c.HeaderNameAllowed("X-FORBIDDEN")).To(BeFalse())
			Expect(c.HeaderNameAllowed("X-Other")).To(BeTrue())
		})

		It("should restrict to the allow set when given", func() {
			var o = libsec.Defaults()
			o.AllowedHeaderNames = []string{"Accept", "Content-Type"}

			c, err := o.Build()
			Expect(err).To(BeNil())

			Expect(c.HeaderNameAllowed("accept")).To(BeTrue())
			Expect(c.HeaderNameAllowed("X-Custom")).To(BeFalse())
		})

		It("should honor case sensitive comparison", func() {
			var o = libsec.Defaults()
			o.CaseSensitiveComparison = true
			o.BlockedHeaderNames = []string{"X-Forbidden"}

			c, err := o.Build()
			Expect(err).To(BeNil())

			Expect(c.HeaderNameAllowed("X-Forbidden")).To(BeFalse())
			Expect(c.HeaderNameAllowed("x-forbidden")).To(BeTrue())
		})

		It("should ignore media type parameters on content type lookup", func() {
			var o = libsec.Defaults()
			o.AllowedContentTypes = []string{"application/json"}

			c, err := o.Build()
			Expect(err).To(BeNil())

			Expect(c.ContentTypeAllowed("application/json; charset=utf-8")).To(BeTrue())
			Expect(c.ContentTypeAllowed("text/html")).To(BeFalse())
		})
	})

	Describe("Default config sample", func() {
		It("should emit valid json", func() {
			var m map[string]interface{}

			Expect(json.Unmarshal(libsec.DefaultConfig(""), &m)).ToNot(HaveOccurred())
			Expect(m).To(HaveKey("max_path_length"))
		})
	})
})

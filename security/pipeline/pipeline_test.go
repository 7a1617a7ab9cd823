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

package pipeline_test

import (
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	libsec "github.com/sabouaram/httpguard/security"
	secevt "github.com/sabouaram/httpguard/security/events"
	secpip "github.com/sabouaram/httpguard/security/pipeline"
)

var _ = Describe("Validation Pipeline", func() {
	Describe("URL path pipeline", func() {
		It("should detect path traversal and count it", func() {
			var (
				e = secevt.New()
				p = secpip.New(libsec.TypeURLPath, defaultCfg(), e)
			)

			_, err := p.Validate("/api/../../etc/passwd")
			Expect(err).ToNot(BeNil())
			Expect(err.FailureType()).To(Equal(libsec.FailurePathTraversal))
			Expect(err.ValidationType()).To(Equal(libsec.TypeURLPath))
			Expect(e.Count(libsec.FailurePathTraversal)).To(Equal(uint64(1)))
		})

		It("should detect double encoding", func() {
			var (
				e = secevt.New()
				p = secpip.New(libsec.TypeURLPath, defaultCfg(), e)
			)

			_, err := p.Validate("/api/%252e%252e/x")
			Expect(err).ToNot(BeNil())
			Expect(err.FailureType()).To(Equal(libsec.FailureDoubleEncoding))
			Expect(e.Count(libsec.FailureDoubleEncoding)).To(Equal(uint64(1)))
		})

		It("should detect null byte injection with the position", func() {
			var (
				e = secevt.New()
				p = secpip.New(libsec.TypeURLPath, defaultCfg(), e)
			)

			_, err := p.Validate("/ok%00evil")
			Expect(err).ToNot(BeNil())
			Expect(err.FailureType()).To(Equal(libsec.FailureNullByte))

			d, ok := err.Detail()
			Expect(ok).To(BeTrue())
			Expect(d).To(ContainSubstring("position 3"))
			Expect(e.Count(libsec.FailureNullByte)).To(Equal(uint64(1)))
		})

		It("should sanitize an encoded traversal before pattern matching", func() {
			var p = secpip.New(libsec.TypeURLPath, defaultCfg(), secevt.New())

			_, err := p.Validate("/a/%2e%2e/%2e%2e/etc")
			Expect(err).ToNot(BeNil())
			Expect(err.FailureType()).To(Equal(libsec.FailurePathTraversal))
		})

		It("should return the canonical form of a clean path", func() {
			var p = secpip.New(libsec.TypeURLPath, defaultCfg(), secevt.New())

			out, err := p.Validate("/a//b/%41x/./c")
			Expect(err).To(BeNil())
			Expect(out).To(Equal("/a/b/Ax/c"))
		})
	})

	Describe("Empty input", func() {
		It("should return empty without running stages", func() {
			var (
				e = secevt.New()
				p = secpip.New(libsec.TypeURLPath, defaultCfg(), e)
			)

			out, err := p.Validate("")
			Expect(err).To(BeNil())
			Expect(out).To(Equal(""))
			Expect(e.Snapshot()).To(BeEmpty())
		})
	})

	Describe("Error attribution", func() {
		It("should report the pipeline type on inner stage errors", func() {
			var p = secpip.New(libsec.TypeParameterValue, defaultCfg(), secevt.New())

			_, err := p.Validate("a;b")
			Expect(err).ToNot(BeNil())
			Expect(err.ValidationType()).To(Equal(libsec.TypeParameterValue))
		})
	})

	Describe("Length bound", func() {
		It("should never return output above the configured limit", func() {
			var (
				c = defaultCfg()
				p = secpip.New(libsec.TypeURLPath, c, secevt.New())
			)

			for _, in := range []string{
				"/" + strings.Repeat("a", 64),
				"/" + strings.Repeat("b", 5000),
				"/a/b/c",
			} {
				if out, err := p.Validate(in); err == nil {
					Expect(len(out)).To(BeNumerically("<=", c.MaxLength(libsec.TypeURLPath)))
				} else {
					Expect(err.ValidationType()).To(Equal(libsec.TypeURLPath))
				}
			}
		})
	})

	Describe("Header pipeline", func() {
		It("should not percent-decode header values", func() {
			var p = secpip.New(libsec.TypeHeaderValue, defaultCfg(), secevt.New())

			out, err := p.Validate("a%20b")
			Expect(err).To(BeNil())
			Expect(out).To(Equal("a%20b"))
		})

		It("should flag header injection", func() {
			var (
				e = secevt.New()
				p = secpip.New(libsec.TypeHeaderValue, defaultCfg(), e)
			)

			_, err := p.Validate("x\r\nSet-Cookie: hacked")
			Expect(err).ToNot(BeNil())
			Expect(err.ValidationType()).To(Equal(libsec.TypeHeaderValue))
		})
	})

	Describe("Concurrent use", func() {
		It("should be safe for unsynchronized callers", func() {
			var (
				e  = secevt.New()
				p  = secpip.New(libsec.TypeURLPath, defaultCfg(), e)
				wg sync.WaitGroup
			)

			for i := 0; i < 8; i++ {
				wg.Add(1)

				go func() {
					defer wg.Done()

					for j := 0; j < 200; j++ {
						_, _ = p.Validate("/api/../../etc/passwd")
						_, _ = p.Validate("/clean/path")
					}
				}()
			}

			wg.Wait()

			Expect(e.Count(libsec.FailurePathTraversal)).To(Equal(uint64(1600)))
		})
	})
})

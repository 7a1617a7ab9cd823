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

package result_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	libres "github.com/sabouaram/httpguard/fetch/result"
)

var _ = Describe("HTTP Result", func() {
	Describe("Success variant", func() {
		var r = libres.NewSuccess[string]("body", `W/"1"`, 200)

		It("should report success and carry content", func() {
			Expect(r.IsSuccess()).To(BeTrue())
			Expect(r.IsRetryable()).To(BeFalse())

			c, ok := r.Content()
			Expect(ok).To(BeTrue())
			Expect(c).To(Equal("body"))
		})

		It("should carry etag and status", func() {
			t, ok := r.ETag()
			Expect(ok).To(BeTrue())
			Expect(t).To(Equal(`W/"1"`))

			s, ok := r.Status()
			Expect(ok).To(BeTrue())
			Expect(s).To(Equal(200))
		})

		It("should report no category and no error", func() {
			_, isFailure := r.Category()
			Expect(isFailure).To(BeFalse())
			Expect(r.Err()).To(BeNil())
		})
	})

	Describe("Failure variant", func() {
		It("should map retryable categories", func() {
			Expect(libres.NewFailure[string]("x", nil, libres.CategoryNetwork).IsRetryable()).To(BeTrue())
			Expect(libres.NewFailure[string]("x", nil, libres.CategoryServer).IsRetryable()).To(BeTrue())
			Expect(libres.NewFailure[string]("x", nil, libres.CategoryClient).IsRetryable()).To(BeFalse())
			Expect(libres.NewFailure[string]("x", nil, libres.CategoryInvalidContent).IsRetryable()).To(BeFalse())
			Expect(libres.NewFailure[string]("x", nil, libres.CategoryConfiguration).IsRetryable()).To(BeFalse())
		})

		It("should carry message, cause and category", func() {
			var (
				cse = errors.New("conn refused")
				r   = libres.NewFailure[string]("request failed", cse, libres.CategoryNetwork)
			)

			Expect(r.IsSuccess()).To(BeFalse())
			Expect(r.Message()).To(Equal("request failed"))
			Expect(errors.Is(r.Err(), cse)).To(BeTrue())

			c, isFailure := r.Category()
			Expect(isFailure).To(BeTrue())
			Expect(c).To(Equal(libres.CategoryNetwork))

			_, hasContent := r.Content()
			Expect(hasContent).To(BeFalse())
		})

		It("should carry fallback content with etag and status", func() {
			var r = libres.NewFailureFallback[string]("stale", nil, libres.CategoryServer, "old", `W/"0"`, 503)

			f, ok := r.Fallback()
			Expect(ok).To(BeTrue())
			Expect(f).To(Equal("old"))

			s, ok := r.Status()
			Expect(ok).To(BeTrue())
			Expect(s).To(Equal(503))

			_, hasContent := r.Content()
			Expect(hasContent).To(BeFalse())
		})

		It("should carry a status without claiming fallback", func() {
			var r = libres.NewFailureStatus[string]("not found", nil, libres.CategoryClient, 404)

			_, hasFallback := r.Fallback()
			Expect(hasFallback).To(BeFalse())

			s, ok := r.Status()
			Expect(ok).To(BeTrue())
			Expect(s).To(Equal(404))
		})
	})

	Describe("Category labels", func() {
		It("should render and parse the documented labels", func() {
			for _, c := range []libres.Category{
				libres.CategoryNetwork,
				libres.CategoryClient,
				libres.CategoryServer,
				libres.CategoryInvalidContent,
				libres.CategoryConfiguration,
			} {
				p, ok := libres.NewCategoryFromString(c.String())
				Expect(ok).To(BeTrue())
				Expect(p).To(Equal(c))
			}
		})
	})
})

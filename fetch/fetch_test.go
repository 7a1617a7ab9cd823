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

package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"time"

	libdur "github.com/nabbar/golib/duration"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	libfch "github.com/sabouaram/httpguard/fetch"
	libres "github.com/sabouaram/httpguard/fetch/result"
	libret "github.com/sabouaram/httpguard/fetch/retry"
)

// countingConverter counts conversions to assert the cache short-circuit.
type countingConverter struct {
	n atomic.Int32
}

func (c *countingConverter) ContentType() string {
	return "text/plain"
}

func (c *countingConverter) Convert(raw []byte) (string, bool) {
	c.n.Add(1)
	return string(raw), true
}

var _ = Describe("Resilient Fetcher", func() {
	Describe("ETag conditional flow", func() {
		It("should answer a 304 from the cache without reconverting", func() {
			var (
				etg  = `W/"1"`
				hits atomic.Int32
			)

			var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if hits.Add(1) == 1 {
					Expect(r.Header.Get("If-None-Match")).To(BeEmpty())
					w.Header().Set("ETag", etg)
					_, _ = w.Write([]byte("v1"))
					return
				}

				Expect(r.Header.Get("If-None-Match")).To(Equal(etg))
				w.WriteHeader(http.StatusNotModified)
			}))
			defer srv.Close()

			var cnv = &countingConverter{}

			f, err := libfch.New[string]("res", clientHandler(srv.URL), libret.None[string](), cnv)
			Expect(err).To(BeNil())

			var first = f.Load(context.Background())
			Expect(first.IsSuccess()).To(BeTrue())

			c, _ := first.Content()
			Expect(c).To(Equal("v1"))

			s, _ := first.Status()
			Expect(s).To(Equal(200))

			var second = f.Load(context.Background())
			Expect(second.IsSuccess()).To(BeTrue())

			c, _ = second.Content()
			Expect(c).To(Equal("v1"))

			t, _ := second.ETag()
			Expect(t).To(Equal(etg))

			s, _ = second.Status()
			Expect(s).To(Equal(http.StatusNotModified))

			Expect(cnv.n.Load()).To(Equal(int32(1)))
			Expect(hits.Load()).To(Equal(int32(2)))
		})

		It("should fail on a 304 without cached content", func() {
			var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotModified)
			}))
			defer srv.Close()

			f, err := libfch.New[string]("res", clientHandler(srv.URL), libret.None[string](), libfch.NewStringConverter(""))
			Expect(err).To(BeNil())

			var res = f.Load(context.Background())
			Expect(res.IsSuccess()).To(BeFalse())
			Expect(res.Message()).To(ContainSubstring("304 Not Modified but no cached content"))

			cat, _ := res.Category()
			Expect(cat).To(Equal(libres.CategoryServer))
		})
	})

	Describe("Failure fallback", func() {
		It("should carry the cached content on a later server error", func() {
			var hits atomic.Int32

			var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if hits.Add(1) == 1 {
					w.Header().Set("ETag", `W/"1"`)
					_, _ = w.Write([]byte("good"))
					return
				}

				w.WriteHeader(http.StatusServiceUnavailable)
			}))
			defer srv.Close()

			f, err := libfch.New[string]("res", clientHandler(srv.URL), libret.None[string](), libfch.NewStringConverter(""))
			Expect(err).To(BeNil())

			Expect(f.Load(context.Background()).IsSuccess()).To(BeTrue())

			var res = f.Load(context.Background())
			Expect(res.IsSuccess()).To(BeFalse())

			fb, ok := res.Fallback()
			Expect(ok).To(BeTrue())
			Expect(fb).To(Equal("good"))

			cat, _ := res.Category()
			Expect(cat).To(Equal(libres.CategoryServer))
		})

		It("should classify 4xx as client error without retry", func() {
			var hits atomic.Int32

			var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				hits.Add(1)
				w.WriteHeader(http.StatusNotFound)
			}))
			defer srv.Close()

			var o = libret.DefaultOptions()
			o.InitialDelay = libdur.ParseDuration(time.Millisecond)
			o.JitterFactor = 0

			s, err := libret.New[string](o, nil)
			Expect(err).To(BeNil())

			f, err := libfch.New[string]("res", clientHandler(srv.URL), s, libfch.NewStringConverter(""))
			Expect(err).To(BeNil())

			var res = f.Load(context.Background())
			Expect(res.IsSuccess()).To(BeFalse())
			Expect(hits.Load()).To(Equal(int32(1)))

			cat, _ := res.Category()
			Expect(cat).To(Equal(libres.CategoryClient))
		})

		It("should keep the cache when conversion fails", func() {
			var hits atomic.Int32

			var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if hits.Add(1) == 1 {
					_, _ = w.Write([]byte(`{"a":1}`))
					return
				}

				_, _ = w.Write([]byte("not json"))
			}))
			defer srv.Close()

			f, err := libfch.New[map[string]int]("res", clientHandler(srv.URL), libret.None[map[string]int](), libfch.NewJsonConverter[map[string]int]())
			Expect(err).To(BeNil())

			Expect(f.Load(context.Background()).IsSuccess()).To(BeTrue())

			var res = f.Load(context.Background())
			Expect(res.IsSuccess()).To(BeFalse())

			cat, _ := res.Category()
			Expect(cat).To(Equal(libres.CategoryInvalidContent))

			fb, ok := res.Fallback()
			Expect(ok).To(BeTrue())
			Expect(fb).To(HaveKeyWithValue("a", 1))
		})

		It("should classify transport errors as network failures", func() {
			f, err := libfch.New[string]("res", clientHandler("http://127.0.0.1:1"), libret.None[string](), libfch.NewStringConverter(""))
			Expect(err).To(BeNil())

			var res = f.Load(context.Background())
			Expect(res.IsSuccess()).To(BeFalse())

			cat, _ := res.Category()
			Expect(cat).To(Equal(libres.CategoryNetwork))
		})
	})

	Describe("Retry integration", func() {
		It("should succeed after transient server errors", func() {
			var hits atomic.Int32

			var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if hits.Add(1) <= 2 {
					w.WriteHeader(http.StatusBadGateway)
					return
				}

				_, _ = w.Write([]byte("finally"))
			}))
			defer srv.Close()

			var o = libret.DefaultOptions()
			o.InitialDelay = libdur.ParseDuration(5 * time.Millisecond)
			o.JitterFactor = 0

			s, err := libret.New[string](o, nil)
			Expect(err).To(BeNil())

			f, err := libfch.New[string]("res", clientHandler(srv.URL), s, libfch.NewStringConverter(""))
			Expect(err).To(BeNil())

			var res = f.Load(context.Background())
			Expect(res.IsSuccess()).To(BeTrue())

			c, _ := res.Content()
			Expect(c).To(Equal("finally"))
			Expect(hits.Load()).To(Equal(int32(3)))
		})
	})

	Describe("Loader status", func() {
		It("should follow the lifecycle", func() {
			var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("ok"))
			}))
			defer srv.Close()

			f, err := libfch.New[string]("res", clientHandler(srv.URL), libret.None[string](), libfch.NewStringConverter(""))
			Expect(err).To(BeNil())

			Expect(f.Status()).To(Equal(libfch.StatusUndefined))
			Expect(f.Load(context.Background()).IsSuccess()).To(BeTrue())
			Expect(f.Status()).To(Equal(libfch.StatusOK))
		})

		It("should end in error state on failure", func() {
			f, err := libfch.New[string]("res", clientHandler("http://127.0.0.1:1"), libret.None[string](), libfch.NewStringConverter(""))
			Expect(err).To(BeNil())

			Expect(f.Load(context.Background()).IsSuccess()).To(BeFalse())
			Expect(f.Status()).To(Equal(libfch.StatusError))
		})
	})

	Describe("Void converter", func() {
		It("should discard the body and keep the etag flow", func() {
			var srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("ETag", `"v"`)
				_, _ = w.Write([]byte("ignored"))
			}))
			defer srv.Close()

			f, err := libfch.New[libfch.Void]("res", clientHandler(srv.URL), libret.None[libfch.Void](), libfch.NewVoidConverter())
			Expect(err).To(BeNil())

			var res = f.Load(context.Background())
			Expect(res.IsSuccess()).To(BeTrue())

			t, ok := res.ETag()
			Expect(ok).To(BeTrue())
			Expect(t).To(Equal(`"v"`))
		})
	})

	Describe("Construction", func() {
		It("should reject missing collaborators", func() {
			_, err := libfch.New[string]("res", nil, nil, libfch.NewStringConverter(""))
			Expect(err).ToNot(BeNil())

			_, err = libfch.New[string]("res", clientHandler("http://localhost"), nil, nil)
			Expect(err).ToNot(BeNil())
		})
	})
})

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

package events_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	libsec "github.com/sabouaram/httpguard/security"
	secevt "github.com/sabouaram/httpguard/security/events"
)

var _ = Describe("Event Counter", func() {
	Describe("Counting", func() {
		It("should start at zero for every failure type", func() {
			var c = secevt.New()

			for _, t := range libsec.FailureTypes() {
				Expect(c.Count(t)).To(Equal(uint64(0)))
			}

			Expect(c.Snapshot()).To(BeEmpty())
		})

		It("should increment monotonically per type", func() {
			var c = secevt.New()

			Expect(c.Increment(libsec.FailureNullByte)).To(Equal(uint64(1)))
			Expect(c.Increment(libsec.FailureNullByte)).To(Equal(uint64(2)))
			Expect(c.Increment(libsec.FailurePathTraversal)).To(Equal(uint64(1)))

			Expect(c.Count(libsec.FailureNullByte)).To(Equal(uint64(2)))
			Expect(c.Count(libsec.FailurePathTraversal)).To(Equal(uint64(1)))
			Expect(c.Count(libsec.FailureLengthExceeded)).To(Equal(uint64(0)))
		})

		It("should snapshot only non-zero counters", func() {
			var c = secevt.New()

			c.Increment(libsec.FailureDoubleEncoding)
			c.Increment(libsec.FailureDoubleEncoding)

			var s = c.Snapshot()
			Expect(s).To(HaveLen(1))
			Expect(s[libsec.FailureDoubleEncoding]).To(Equal(uint64(2)))
		})

		It("should reset all counters", func() {
			var c = secevt.New()

			c.Increment(libsec.FailureCountExceeded)
			c.Reset()

			Expect(c.Count(libsec.FailureCountExceeded)).To(Equal(uint64(0)))
		})

		It("should ignore values outside the taxonomy", func() {
			var c = secevt.New()

			Expect(c.Increment(libsec.FailureType(250))).To(Equal(uint64(0)))
			Expect(c.Count(libsec.FailureType(250))).To(Equal(uint64(0)))
		})
	})

	Describe("Concurrency", func() {
		It("should not lose increments under contention", func() {
			var (
				c  = secevt.New()
				wg sync.WaitGroup
			)

			for i := 0; i < 16; i++ {
				wg.Add(1)

				go func() {
					defer wg.Done()

					for j := 0; j < 1000; j++ {
						c.Increment(libsec.FailureInvalidCharacter)
					}
				}()
			}

			wg.Wait()

			Expect(c.Count(libsec.FailureInvalidCharacter)).To(Equal(uint64(16000)))
		})
	})

	Describe("Default instance", func() {
		It("should return the same counter", func() {
			Expect(secevt.Default()).To(BeIdenticalTo(secevt.Default()))
		})
	})

	Describe("Prometheus collector", func() {
		It("should expose counter values per failure label", func() {
			var (
				c   = secevt.New()
				col = secevt.NewCollector(c)
				reg = prometheus.NewPedanticRegistry()
			)

			Expect(reg.Register(col)).ToNot(HaveOccurred())

			c.Increment(libsec.FailureNullByte)
			c.Increment(libsec.FailureNullByte)

			Expect(testutil.CollectAndCount(col)).To(Equal(libsec.FailureTypeCount))
		})
	})
})

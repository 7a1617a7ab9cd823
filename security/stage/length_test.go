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

package stage_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	libsec "github.com/sabouaram/httpguard/security"
	secstg "github.com/sabouaram/httpguard/security/stage"
)

var _ = Describe("Length Stage", func() {
	It("should accept input at the limit", func() {
		var (
			c   = customCfg(libsec.Defaults())
			stg = secstg.NewLength(libsec.TypeParameterName, c)
			in  = strings.Repeat("a", c.MaxLength(libsec.TypeParameterName))
		)

		out, err := stg.Validate(in)
		Expect(err).To(BeNil())
		Expect(out).To(Equal(in))
	})

	It("should reject input over the limit with both values", func() {
		var (
			c   = customCfg(libsec.Defaults())
			stg = secstg.NewLength(libsec.TypeParameterName, c)
			in  = strings.Repeat("a", c.MaxLength(libsec.TypeParameterName)+1)
		)

		_, err := stg.Validate(in)
		Expect(err).ToNot(BeNil())
		Expect(err.FailureType()).To(Equal(libsec.FailureLengthExceeded))

		d, ok := err.Detail()
		Expect(ok).To(BeTrue())
		Expect(d).To(ContainSubstring("129"))
		Expect(d).To(ContainSubstring("128"))
	})

	It("should reject null bytes before measuring", func() {
		var stg = secstg.NewLength(libsec.TypeURLPath, defaultCfg())

		_, err := stg.Validate("/ok%00evil")
		Expect(err).ToNot(BeNil())
		Expect(err.FailureType()).To(Equal(libsec.FailureNullByte))

		d, _ := err.Detail()
		Expect(d).To(ContainSubstring("position 3"))
	})

	It("should accept empty input", func() {
		var stg = secstg.NewLength(libsec.TypeBody, defaultCfg())

		out, err := stg.Validate("")
		Expect(err).To(BeNil())
		Expect(out).To(Equal(""))
	})
})

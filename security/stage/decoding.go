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

package stage

import (
	"fmt"
	"strings"

	libsec "github.com/sabouaram/httpguard/security"
)

// encodingSignificant lists the characters whose percent form surviving one
// decoding round reveals a double encoded input: URI reserved characters,
// the escape lead itself, dot segments, separators and markup delimiters.
const encodingSignificant = `%./\:?#[]@!$&'()*+,;= <>"`

type decoding struct {
	t libsec.ValidationType
	c libsec.Configuration
}

// NewDecoding returns the stage performing exactly one round of percent
// decoding. Malformed percent sequences fail with INVALID_ENCODING; percent
// sequences still present in the decoded output and resolving to an
// encoding-significant character fail with DOUBLE_ENCODING unless the
// configuration admits double encoding.
func NewDecoding(t libsec.ValidationType, c libsec.Configuration) Stage {
	return &decoding{
		t: t,
		c: c,
	}
}

func (o *decoding) Name() string {
	return "decoding"
}

func (o *decoding) Type() libsec.ValidationType {
	return o.t
}

func (o *decoding) Validate(in string) (string, libsec.Error) {
	if err := checkNullByte(in, o.t, o.c); err != nil {
		return "", err
	}

	var (
		b   strings.Builder
		dec string
	)

	b.Grow(len(in))

	for i := 0; i < len(in); i++ {
		if in[i] != '%' {
			b.WriteByte(in[i])
			continue
		}

		if i+2 >= len(in) {
			return "", libsec.NewErrorDetail(libsec.FailureInvalidEncoding, o.t, in, fmt.Sprintf("truncated percent sequence at position %d", i))
		}

		if !isHexDigit(in[i+1]) || !isHexDigit(in[i+2]) {
			return "", libsec.NewErrorDetail(libsec.FailureInvalidEncoding, o.t, in, fmt.Sprintf("invalid percent sequence at position %d", i))
		}

		b.WriteByte(hexValue(in[i+1])<<4 | hexValue(in[i+2]))
		i += 2
	}

	dec = b.String()

	// The decoded output is re-checked: %2500 style inputs surface a NUL
	// sequence only after the first round.
	if err := checkNullByte(dec, o.t, o.c); err != nil {
		return "", err
	}

	if !o.c.AllowDoubleEncoding() {
		if p, k := o.findDoubleEncoding(dec); k {
			return "", libsec.NewErrorSanitized(libsec.FailureDoubleEncoding, o.t, in, dec, fmt.Sprintf("double encoded sequence at position %d", p))
		}
	}

	return dec, nil
}

// findDoubleEncoding scans the decoded output for valid percent sequences
// whose decoded character is encoding-significant.
func (o *decoding) findDoubleEncoding(dec string) (int, bool) {
	for i := 0; i+2 < len(dec); i++ {
		if dec[i] != '%' || !isHexDigit(dec[i+1]) || !isHexDigit(dec[i+2]) {
			continue
		}

		var v = hexValue(dec[i+1])<<4 | hexValue(dec[i+2])

		if v < 0x20 || strings.IndexByte(encodingSignificant, v) >= 0 {
			return i, true
		}
	}

	return -1, false
}

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

	libsec "github.com/sabouaram/httpguard/security"
)

type length struct {
	t libsec.ValidationType
	c libsec.Configuration
}

// NewLength returns the stage enforcing the maximum length configured for
// the given validation type.
func NewLength(t libsec.ValidationType, c libsec.Configuration) Stage {
	return &length{
		t: t,
		c: c,
	}
}

func (o *length) Name() string {
	return "length"
}

func (o *length) Type() libsec.ValidationType {
	return o.t
}

func (o *length) Validate(in string) (string, libsec.Error) {
	if err := checkNullByte(in, o.t, o.c); err != nil {
		return "", err
	}

	if m := o.c.MaxLength(o.t); len(in) > m {
		return "", libsec.NewErrorDetail(libsec.FailureLengthExceeded, o.t, in, fmt.Sprintf("length %d exceeds limit %d", len(in), m))
	}

	return in, nil
}

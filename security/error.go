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

package security

import (
	"errors"
	"strings"
)

// Error is the violation value raised by validation stages and pipelines.
// It carries the failure taxonomy, the validation context, the original
// input (stored sanitized for safe rendering), an optional sanitized or
// normalized form, an optional detail and an optional cause.
//
// An Error is immutable; WithValidationType returns a copy.
type Error interface {
	error

	// FailureType returns the violation classification.
	FailureType() FailureType
	// ValidationType returns the validation context the error was raised in.
	ValidationType() ValidationType
	// Input returns the original input, truncated and control-stripped.
	Input() string
	// Sanitized returns the sanitized or normalized form of the input when
	// the failing stage produced one.
	Sanitized() (string, bool)
	// Detail returns the stage specific detail message, like a byte offset.
	Detail() (string, bool)
	// Unwrap returns the cause, if any.
	Unwrap() error

	// WithValidationType returns a copy of the error attributed to the
	// given validation context, preserving input, detail and cause.
	WithValidationType(t ValidationType) Error
}

type ers struct {
	f FailureType
	v ValidationType
	o string
	s string
	k bool
	d string
	c error
}

// NewError returns an Error for the given failure and validation context.
// The input is sanitized for logging before being stored.
func NewError(f FailureType, v ValidationType, input string) Error {
	return &ers{
		f: f,
		v: v,
		o: SanitizeForLog(input),
	}
}

// NewErrorDetail returns an Error carrying a stage specific detail message.
func NewErrorDetail(f FailureType, v ValidationType, input, detail string) Error {
	return &ers{
		f: f,
		v: v,
		o: SanitizeForLog(input),
		d: detail,
	}
}

// NewErrorSanitized returns an Error carrying the sanitized or normalized
// form the failing stage produced before it detected the violation.
func NewErrorSanitized(f FailureType, v ValidationType, input, sanitized, detail string) Error {
	return &ers{
		f: f,
		v: v,
		o: SanitizeForLog(input),
		s: SanitizeForLog(sanitized),
		k: true,
		d: detail,
	}
}

// NewErrorCause returns an Error wrapping an underlying cause.
func NewErrorCause(f FailureType, v ValidationType, input, detail string, cause error) Error {
	return &ers{
		f: f,
		v: v,
		o: SanitizeForLog(input),
		d: detail,
		c: cause,
	}
}

// GetError returns the given error as an Error when it is one, directly or
// through its wrap chain, and nil otherwise.
func GetError(e error) Error {
	var err Error

	if e == nil {
		return nil
	} else if errors.As(e, &err) {
		return err
	}

	return nil
}

// IsFailure reports whether the given error is an Error carrying the given
// failure type.
func IsFailure(e error, f FailureType) bool {
	if err := GetError(e); err == nil {
		return false
	} else {
		return err.FailureType() == f
	}
}

func (e *ers) FailureType() FailureType {
	return e.f
}

func (e *ers) ValidationType() ValidationType {
	return e.v
}

func (e *ers) Input() string {
	return e.o
}

func (e *ers) Sanitized() (string, bool) {
	return e.s, e.k
}

func (e *ers) Detail() (string, bool) {
	return e.d, len(e.d) > 0
}

func (e *ers) Unwrap() error {
	return e.c
}

func (e *ers) WithValidationType(t ValidationType) Error {
	return &ers{
		f: e.f,
		v: t,
		o: e.o,
		s: e.s,
		k: e.k,
		d: e.d,
		c: e.c,
	}
}

func (e *ers) Error() string {
	var b strings.Builder

	b.WriteString(e.v.String())
	b.WriteString(": ")
	b.WriteString(e.f.String())

	if len(e.d) > 0 {
		b.WriteString(" (")
		b.WriteString(e.d)
		b.WriteString(")")
	}

	if len(e.o) > 0 {
		b.WriteString(": ")
		b.WriteString(e.o)
	}

	if e.c != nil {
		b.WriteString(": ")
		b.WriteString(e.c.Error())
	}

	return b.String()
}

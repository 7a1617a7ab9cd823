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

// Package pipeline composes validation stages into the per-component
// pipelines and exposes a request-level validator aggregating them. A
// pipeline is an ordered stage list bound to one validation type: the first
// violation stops the run, the error is re-attributed to the pipeline's
// type and the shared event counter is incremented by failure type.
//
// Pipelines are immutable after construction and safe for unsynchronized
// concurrent use; the event counter is the only shared mutable state.
package pipeline

import (
	liblog "github.com/nabbar/golib/logger"

	libtyp "github.com/sabouaram/httpguard/httptypes"
	libsec "github.com/sabouaram/httpguard/security"
	secevt "github.com/sabouaram/httpguard/security/events"
	secstg "github.com/sabouaram/httpguard/security/stage"
)

// Pipeline validates one component kind of an inbound request. Empty input
// is valid and returns empty without running any stage.
type Pipeline interface {
	// Type returns the validation type the pipeline is bound to.
	Type() libsec.ValidationType
	// Validate runs the stages in order and returns the sanitized form.
	Validate(in string) (string, libsec.Error)
	// Counter returns the event counter shared by the pipeline.
	Counter() secevt.Counter
	// RegisterLogger sets the logger factory used for violation entries.
	RegisterLogger(l liblog.FuncLog)
}

// New returns the standard pipeline for the given validation type:
//
//	URL path, parameters:  Length, Decoding, Character, Normalization, Pattern
//	Headers:               Length, Character, Normalization, Pattern
//	Cookies:               Length, Character, Pattern
//	Body:                  Length, Character, Pattern
//
// A nil counter falls back to the shared default counter.
func New(t libsec.ValidationType, c libsec.Configuration, e secevt.Counter) Pipeline {
	if e == nil {
		e = secevt.Default()
	}

	var s []secstg.Stage

	switch {
	case t.IsPath() || t.IsParameter():
		s = []secstg.Stage{
			secstg.NewLength(t, c),
			secstg.NewDecoding(t, c),
			secstg.NewCharacter(t, c),
			secstg.NewNormalize(t, c),
			secstg.NewPattern(t, c, e),
		}
	case t.IsHeader():
		s = []secstg.Stage{
			secstg.NewLength(t, c),
			secstg.NewCharacter(t, c),
			secstg.NewNormalize(t, c),
			secstg.NewPattern(t, c, e),
		}
	default:
		s = []secstg.Stage{
			secstg.NewLength(t, c),
			secstg.NewCharacter(t, c),
			secstg.NewPattern(t, c, e),
		}
	}

	return newPipeline(t, s, e)
}

// Validator aggregates the pipelines of every request component plus the
// cookie rules, enforcing the configured item counts.
type Validator interface {
	// ValidatePath validates and canonicalizes a URL path.
	ValidatePath(path string) (string, libsec.Error)
	// ValidateParameter validates one parameter record.
	ValidateParameter(p libtyp.Parameter) (libtyp.Parameter, libsec.Error)
	// ValidateParameters validates a parameter list and its count.
	ValidateParameters(l []libtyp.Parameter) ([]libtyp.Parameter, libsec.Error)
	// ValidateHeader validates one header name and value.
	ValidateHeader(name, value string) libsec.Error
	// ValidateHeaders validates a header map and its count.
	ValidateHeaders(h map[string][]string) libsec.Error
	// ValidateCookie validates one cookie record.
	ValidateCookie(c libtyp.Cookie) libsec.Error
	// ValidateCookies validates a cookie list and its count.
	ValidateCookies(l []libtyp.Cookie) libsec.Error
	// ValidateBody validates a body record against its declared type.
	ValidateBody(b libtyp.Body) libsec.Error

	// Counter returns the event counter shared by all pipelines.
	Counter() secevt.Counter
	// RegisterLogger sets the logger factory on every pipeline.
	RegisterLogger(l liblog.FuncLog)
}

// NewValidator returns a Validator using the standard pipelines for each
// component. A nil counter falls back to the shared default counter.
func NewValidator(c libsec.Configuration, e secevt.Counter) Validator {
	if e == nil {
		e = secevt.Default()
	}

	return &vld{
		c:   c,
		e:   e,
		pth: New(libsec.TypeURLPath, c, e),
		prn: New(libsec.TypeParameterName, c, e),
		prv: New(libsec.TypeParameterValue, c, e),
		hdn: New(libsec.TypeHeaderName, c, e),
		hdv: New(libsec.TypeHeaderValue, c, e),
		ckn: New(libsec.TypeCookieName, c, e),
		ckv: New(libsec.TypeCookieValue, c, e),
		bdy: New(libsec.TypeBody, c, e),
		pfx: secstg.NewCookiePrefix(),
	}
}

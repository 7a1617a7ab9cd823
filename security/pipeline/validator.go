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

package pipeline

import (
	"fmt"

	liblog "github.com/nabbar/golib/logger"

	libtyp "github.com/sabouaram/httpguard/httptypes"
	libsec "github.com/sabouaram/httpguard/security"
	secevt "github.com/sabouaram/httpguard/security/events"
	secstg "github.com/sabouaram/httpguard/security/stage"
)

type vld struct {
	c libsec.Configuration
	e secevt.Counter

	pth Pipeline
	prn Pipeline
	prv Pipeline
	hdn Pipeline
	hdv Pipeline
	ckn Pipeline
	ckv Pipeline
	bdy Pipeline
	pfx secstg.CookiePrefix
}

func (o *vld) Counter() secevt.Counter {
	return o.e
}

func (o *vld) RegisterLogger(l liblog.FuncLog) {
	for _, p := range []Pipeline{o.pth, o.prn, o.prv, o.hdn, o.hdv, o.ckn, o.ckv, o.bdy} {
		p.RegisterLogger(l)
	}
}

// countError raises COUNT_EXCEEDED attributed to the given type.
func (o *vld) countError(t libsec.ValidationType, n, max int) libsec.Error {
	var err = libsec.NewErrorDetail(libsec.FailureCountExceeded, t, "", fmt.Sprintf("count %d exceeds limit %d", n, max))
	o.e.Increment(err.FailureType())
	return err
}

func (o *vld) ValidatePath(path string) (string, libsec.Error) {
	return o.pth.Validate(path)
}

func (o *vld) ValidateParameter(p libtyp.Parameter) (libtyp.Parameter, libsec.Error) {
	var (
		n, v string
		err  libsec.Error
	)

	if n, err = o.prn.Validate(p.Name); err != nil {
		return libtyp.Parameter{}, err
	}

	if v, err = o.prv.Validate(p.Value); err != nil {
		return libtyp.Parameter{}, err
	}

	return libtyp.NewParameter(n, v), nil
}

func (o *vld) ValidateParameters(l []libtyp.Parameter) ([]libtyp.Parameter, libsec.Error) {
	if m := o.c.MaxParameterCount(); len(l) > m {
		return nil, o.countError(libsec.TypeParameterName, len(l), m)
	}

	var out = make([]libtyp.Parameter, 0, len(l))

	for _, p := range l {
		if s, err := o.ValidateParameter(p); err != nil {
			return nil, err
		} else {
			out = append(out, s)
		}
	}

	return out, nil
}

func (o *vld) ValidateHeader(name, value string) libsec.Error {
	if _, err := o.hdn.Validate(name); err != nil {
		return err
	}

	if !o.c.HeaderNameAllowed(name) {
		var err = libsec.NewErrorDetail(libsec.FailureInvalidInput, libsec.TypeHeaderName, name, "header name not allowed")
		o.e.Increment(err.FailureType())
		return err
	}

	if _, err := o.hdv.Validate(value); err != nil {
		return err
	}

	return nil
}

func (o *vld) ValidateHeaders(h map[string][]string) libsec.Error {
	if m := o.c.MaxHeaderCount(); len(h) > m {
		return o.countError(libsec.TypeHeaderName, len(h), m)
	}

	for k, l := range h {
		for _, v := range l {
			if err := o.ValidateHeader(k, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func (o *vld) ValidateCookie(c libtyp.Cookie) libsec.Error {
	if err := o.pfx.Validate(c); err != nil {
		o.e.Increment(err.FailureType())
		return err
	}

	if _, err := o.ckn.Validate(c.Name); err != nil {
		return err
	}

	if _, err := o.ckv.Validate(c.Value); err != nil {
		return err
	}

	if o.c.RequireSecureCookies() && !c.IsSecure() {
		var err = libsec.NewErrorDetail(libsec.FailureInvalidInput, libsec.TypeCookieName, c.Name, "cookie requires Secure attribute")
		o.e.Increment(err.FailureType())
		return err
	}

	if o.c.RequireHttpOnlyCookies() && !c.IsHttpOnly() {
		var err = libsec.NewErrorDetail(libsec.FailureInvalidInput, libsec.TypeCookieName, c.Name, "cookie requires HttpOnly attribute")
		o.e.Increment(err.FailureType())
		return err
	}

	return nil
}

func (o *vld) ValidateCookies(l []libtyp.Cookie) libsec.Error {
	if m := o.c.MaxCookieCount(); len(l) > m {
		return o.countError(libsec.TypeCookieName, len(l), m)
	}

	for _, c := range l {
		if err := o.ValidateCookie(c); err != nil {
			return err
		}
	}

	return nil
}

func (o *vld) ValidateBody(b libtyp.Body) libsec.Error {
	if len(b.ContentType) > 0 && !o.c.ContentTypeAllowed(b.ContentType) {
		var err = libsec.NewErrorDetail(libsec.FailureInvalidInput, libsec.TypeBody, b.ContentType, "content type not allowed")
		o.e.Increment(err.FailureType())
		return err
	}

	if b.IsBinary() {
		return nil
	}

	if _, err := o.bdy.Validate(b.Content); err != nil {
		return err
	}

	return nil
}

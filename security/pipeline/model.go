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
	libatm "github.com/nabbar/golib/atomic"
	liblog "github.com/nabbar/golib/logger"
	loglvl "github.com/nabbar/golib/logger/level"

	libsec "github.com/sabouaram/httpguard/security"
	secevt "github.com/sabouaram/httpguard/security/events"
	secstg "github.com/sabouaram/httpguard/security/stage"
)

type pip struct {
	t libsec.ValidationType
	s []secstg.Stage
	e secevt.Counter
	l libatm.Value[liblog.FuncLog]
}

func newPipeline(t libsec.ValidationType, s []secstg.Stage, e secevt.Counter) Pipeline {
	return &pip{
		t: t,
		s: s,
		e: e,
		l: libatm.NewValue[liblog.FuncLog](),
	}
}

func (o *pip) logger() liblog.Logger {
	if f := o.l.Load(); f == nil {
		return liblog.GetDefault()
	} else if l := f(); l == nil {
		return liblog.GetDefault()
	} else {
		return l
	}
}

func (o *pip) Type() libsec.ValidationType {
	return o.t
}

func (o *pip) Counter() secevt.Counter {
	return o.e
}

func (o *pip) RegisterLogger(l liblog.FuncLog) {
	o.l.Store(l)
}

func (o *pip) Validate(in string) (string, libsec.Error) {
	if len(in) == 0 {
		return "", nil
	}

	var cur = in

	for _, s := range o.s {
		var (
			out string
			err libsec.Error
		)

		if out, err = s.Validate(cur); err != nil {
			err = err.WithValidationType(o.t)
			o.e.Increment(err.FailureType())

			ent := o.logger().Entry(loglvl.WarnLevel, "input validation failed")
			ent.FieldAdd("type", o.t.String())
			ent.FieldAdd("stage", s.Name())
			ent.FieldAdd("failure", err.FailureType().String())
			ent.ErrorAdd(true, err)
			ent.Log()

			return "", err
		}

		cur = out
	}

	return cur, nil
}

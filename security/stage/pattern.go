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
	secevt "github.com/sabouaram/httpguard/security/events"
)

// signature is one attack family: failure classification, the literal
// needles scanned for, and a restriction on the validation contexts the
// family applies to (nil means all).
type signature struct {
	f libsec.FailureType
	n []string
	t func(libsec.ValidationType) bool
}

// signatures is scanned in order; the first matching needle wins. Needles
// are stored lowercase; matching lowercases the input unless the
// configuration requests case sensitive comparison.
var signatures = []signature{
	{
		f: libsec.FailureSuspiciousXSS,
		n: []string{"<script", "javascript:", "onerror=", "onload=", "onclick=", "<svg", "<iframe"},
	},
	{
		f: libsec.FailureSuspiciousSQL,
		n: []string{"' or '1'='1", "union select", "--", "/*", ";drop table", "xp_cmdshell"},
	},
	{
		f: libsec.FailureSuspiciousCommand,
		n: []string{";", "&&", "||", "`", "$("},
		t: func(t libsec.ValidationType) bool {
			return t.IsPath() || t.IsParameter()
		},
	},
	{
		f: libsec.FailureSuspiciousLDAP,
		n: []string{"*)(uid=*", "*)(cn=*"},
	},
	{
		f: libsec.FailureSuspiciousProtocol,
		n: []string{"javascript:", "data:", "vbscript:", "file:"},
	},
	{
		f: libsec.FailureSuspiciousTemplate,
		n: []string{"{{", "${", "<%", "#{"},
	},
}

// crlf needles apply to header contexts only, where any bare CR or LF is a
// header injection attempt.
var crlf = []string{"\r", "\n"}

type pattern struct {
	t libsec.ValidationType
	c libsec.Configuration
	e secevt.Counter
}

// NewPattern returns the attack signature scanning stage. When the
// configuration does not fail on suspicious patterns, findings are counted
// on the given counter and the input passes through; the counter may be nil.
func NewPattern(t libsec.ValidationType, c libsec.Configuration, e secevt.Counter) Stage {
	return &pattern{
		t: t,
		c: c,
		e: e,
	}
}

func (o *pattern) Name() string {
	return "pattern"
}

func (o *pattern) Type() libsec.ValidationType {
	return o.t
}

func (o *pattern) Validate(in string) (string, libsec.Error) {
	if err := checkNullByte(in, o.t, o.c); err != nil {
		return "", err
	}

	var s = in

	if !o.c.CaseSensitiveComparison() {
		s = strings.ToLower(s)
	}

	if o.t.IsHeader() {
		for _, n := range crlf {
			if strings.Contains(s, n) {
				if err := o.finding(libsec.FailureSuspiciousHeader, in, "crlf sequence"); err != nil {
					return "", err
				}

				break
			}
		}
	}

	for _, g := range signatures {
		if g.t != nil && !g.t(o.t) {
			continue
		}

		for _, n := range g.n {
			if strings.Contains(s, n) {
				if err := o.finding(g.f, in, fmt.Sprintf("matched %q", n)); err != nil {
					return "", err
				}

				// Count-only mode records the first needle of the family
				// and moves to the next one.
				break
			}
		}
	}

	return in, nil
}

// finding raises the violation, or only counts it when the configuration
// does not fail on suspicious patterns.
func (o *pattern) finding(f libsec.FailureType, in, detail string) libsec.Error {
	if o.c.FailOnSuspiciousPatterns() {
		return libsec.NewErrorDetail(f, o.t, in, detail)
	}

	if o.e != nil {
		o.e.Increment(f)
	}

	return nil
}

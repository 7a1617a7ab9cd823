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
	"strings"

	"golang.org/x/text/unicode/norm"

	libsec "github.com/sabouaram/httpguard/security"
)

type normalize struct {
	t libsec.ValidationType
	c libsec.Configuration
}

// NewNormalize returns the canonicalization stage: optional Unicode NFC,
// slash collapsing (path only) and dot segment resolution. Resolution
// escaping above the root fails with PATH_TRAVERSAL_DETECTED unless the
// configuration admits traversal. Downstream stages run on the canonical
// form so pattern matching cannot be evaded by encoded traversal.
func NewNormalize(t libsec.ValidationType, c libsec.Configuration) Stage {
	return &normalize{
		t: t,
		c: c,
	}
}

func (o *normalize) Name() string {
	return "normalization"
}

func (o *normalize) Type() libsec.ValidationType {
	return o.t
}

func (o *normalize) Validate(in string) (string, libsec.Error) {
	if err := checkNullByte(in, o.t, o.c); err != nil {
		return "", err
	}

	var s = in

	if o.c.NormalizeUnicode() {
		s = norm.NFC.String(s)
	}

	if o.t.IsPath() {
		s = collapseSlashes(s)
	}

	var res, ok = resolveDotSegments(s)

	if !ok && !o.c.AllowPathTraversal() {
		return "", libsec.NewErrorSanitized(libsec.FailurePathTraversal, o.t, in, s, "dot segment resolution escapes root")
	}

	if ok {
		s = res
	}

	return s, nil
}

// collapseSlashes reduces runs of consecutive '/' to a single one.
func collapseSlashes(s string) string {
	if !strings.Contains(s, "//") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	var last byte

	for i := 0; i < len(s); i++ {
		if s[i] == '/' && last == '/' {
			continue
		}

		b.WriteByte(s[i])
		last = s[i]
	}

	return b.String()
}

// resolveDotSegments removes "." segments and folds ".." segments into
// their parent. It returns false when a ".." would climb above the root.
// Absolute inputs keep their leading slash, and a trailing slash or
// trailing dot segment keeps the directory form.
func resolveDotSegments(s string) (string, bool) {
	if !strings.Contains(s, ".") {
		return s, true
	}

	var (
		abs = strings.HasPrefix(s, "/")
		dir = strings.HasSuffix(s, "/") || strings.HasSuffix(s, "/.") || strings.HasSuffix(s, "/..") || s == "." || s == ".."
		out = make([]string, 0, 8)
	)

	for _, seg := range strings.Split(strings.TrimPrefix(s, "/"), "/") {
		switch seg {
		case ".":
			continue
		case "..":
			if len(out) == 0 {
				return "", false
			}
			out = out[:len(out)-1]
		default:
			out = append(out, seg)
		}
	}

	var b strings.Builder

	if abs {
		b.WriteByte('/')
	}

	b.WriteString(strings.Join(out, "/"))

	var res = b.String()

	if dir && !strings.HasSuffix(res, "/") {
		res += "/"
	}

	return res, true
}

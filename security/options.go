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
	"bytes"
	"encoding/json"
	"fmt"

	libval "github.com/go-playground/validator/v10"
	liberr "github.com/nabbar/golib/errors"
)

// Config is the options struct from which an immutable Configuration is
// built. All length limits must be strictly positive; counts may be zero.
// Empty allow sets are not restrictive; block sets always apply.
type Config struct {
	MaxPathLength           int `json:"max_path_length" yaml:"max_path_length" toml:"max_path_length" mapstructure:"max_path_length" validate:"gt=0"`
	MaxParameterNameLength  int `json:"max_parameter_name_length" yaml:"max_parameter_name_length" toml:"max_parameter_name_length" mapstructure:"max_parameter_name_length" validate:"gt=0"`
	MaxParameterValueLength int `json:"max_parameter_value_length" yaml:"max_parameter_value_length" toml:"max_parameter_value_length" mapstructure:"max_parameter_value_length" validate:"gt=0"`
	MaxHeaderNameLength     int `json:"max_header_name_length" yaml:"max_header_name_length" toml:"max_header_name_length" mapstructure:"max_header_name_length" validate:"gt=0"`
	MaxHeaderValueLength    int `json:"max_header_value_length" yaml:"max_header_value_length" toml:"max_header_value_length" mapstructure:"max_header_value_length" validate:"gt=0"`
	MaxCookieNameLength     int `json:"max_cookie_name_length" yaml:"max_cookie_name_length" toml:"max_cookie_name_length" mapstructure:"max_cookie_name_length" validate:"gt=0"`
	MaxCookieValueLength    int `json:"max_cookie_value_length" yaml:"max_cookie_value_length" toml:"max_cookie_value_length" mapstructure:"max_cookie_value_length" validate:"gt=0"`
	MaxBodyLength           int `json:"max_body_length" yaml:"max_body_length" toml:"max_body_length" mapstructure:"max_body_length" validate:"gt=0"`

	MaxParameterCount int `json:"max_parameter_count" yaml:"max_parameter_count" toml:"max_parameter_count" mapstructure:"max_parameter_count" validate:"gte=0"`
	MaxHeaderCount    int `json:"max_header_count" yaml:"max_header_count" toml:"max_header_count" mapstructure:"max_header_count" validate:"gte=0"`
	MaxCookieCount    int `json:"max_cookie_count" yaml:"max_cookie_count" toml:"max_cookie_count" mapstructure:"max_cookie_count" validate:"gte=0"`

	AllowedHeaderNames  []string `json:"allowed_header_names,omitempty" yaml:"allowed_header_names,omitempty" toml:"allowed_header_names,omitempty" mapstructure:"allowed_header_names,omitempty"`
	BlockedHeaderNames  []string `json:"blocked_header_names,omitempty" yaml:"blocked_header_names,omitempty" toml:"blocked_header_names,omitempty" mapstructure:"blocked_header_names,omitempty"`
	AllowedContentTypes []string `json:"allowed_content_types,omitempty" yaml:"allowed_content_types,omitempty" toml:"allowed_content_types,omitempty" mapstructure:"allowed_content_types,omitempty"`
	BlockedContentTypes []string `json:"blocked_content_types,omitempty" yaml:"blocked_content_types,omitempty" toml:"blocked_content_types,omitempty" mapstructure:"blocked_content_types,omitempty"`

	AllowPathTraversal       bool `json:"allow_path_traversal" yaml:"allow_path_traversal" toml:"allow_path_traversal" mapstructure:"allow_path_traversal"`
	AllowDoubleEncoding      bool `json:"allow_double_encoding" yaml:"allow_double_encoding" toml:"allow_double_encoding" mapstructure:"allow_double_encoding"`
	AllowNullBytes           bool `json:"allow_null_bytes" yaml:"allow_null_bytes" toml:"allow_null_bytes" mapstructure:"allow_null_bytes"`
	AllowControlCharacters   bool `json:"allow_control_characters" yaml:"allow_control_characters" toml:"allow_control_characters" mapstructure:"allow_control_characters"`
	AllowExtendedAscii       bool `json:"allow_extended_ascii" yaml:"allow_extended_ascii" toml:"allow_extended_ascii" mapstructure:"allow_extended_ascii"`
	NormalizeUnicode         bool `json:"normalize_unicode" yaml:"normalize_unicode" toml:"normalize_unicode" mapstructure:"normalize_unicode"`
	CaseSensitiveComparison  bool `json:"case_sensitive_comparison" yaml:"case_sensitive_comparison" toml:"case_sensitive_comparison" mapstructure:"case_sensitive_comparison"`
	FailOnSuspiciousPatterns bool `json:"fail_on_suspicious_patterns" yaml:"fail_on_suspicious_patterns" toml:"fail_on_suspicious_patterns" mapstructure:"fail_on_suspicious_patterns"`
	RequireSecureCookies     bool `json:"require_secure_cookies" yaml:"require_secure_cookies" toml:"require_secure_cookies" mapstructure:"require_secure_cookies"`
	RequireHttpOnlyCookies   bool `json:"require_http_only_cookies" yaml:"require_http_only_cookies" toml:"require_http_only_cookies" mapstructure:"require_http_only_cookies"`
}

// Defaults returns the balanced preset.
func Defaults() Config {
	return Config{
		MaxPathLength:            4096,
		MaxParameterNameLength:   128,
		MaxParameterValueLength:  2048,
		MaxHeaderNameLength:      256,
		MaxHeaderValueLength:     8192,
		MaxCookieNameLength:      256,
		MaxCookieValueLength:     4096,
		MaxBodyLength:            10 << 20,
		MaxParameterCount:        256,
		MaxHeaderCount:           128,
		MaxCookieCount:           64,
		NormalizeUnicode:         true,
		FailOnSuspiciousPatterns: true,
	}
}

// Strict returns the hardened preset: tight limits, mandatory cookie
// security attributes.
func Strict() Config {
	var c = Defaults()

	c.MaxPathLength = 2048
	c.MaxParameterNameLength = 64
	c.MaxParameterValueLength = 1024
	c.MaxHeaderNameLength = 128
	c.MaxHeaderValueLength = 4096
	c.MaxCookieNameLength = 128
	c.MaxCookieValueLength = 2048
	c.MaxBodyLength = 1 << 20
	c.MaxParameterCount = 64
	c.MaxHeaderCount = 64
	c.MaxCookieCount = 32
	c.RequireSecureCookies = true
	c.RequireHttpOnlyCookies = true

	return c
}

// Lenient returns the permissive preset: wide limits, extended ASCII
// admitted, suspicious patterns counted but not fatal. Path traversal and
// null bytes stay rejected.
func Lenient() Config {
	var c = Defaults()

	c.MaxPathLength = 8192
	c.MaxParameterNameLength = 256
	c.MaxParameterValueLength = 8192
	c.MaxHeaderValueLength = 16384
	c.MaxCookieValueLength = 8192
	c.MaxBodyLength = 50 << 20
	c.MaxParameterCount = 1024
	c.MaxHeaderCount = 256
	c.MaxCookieCount = 128
	c.AllowExtendedAscii = true
	c.AllowDoubleEncoding = true
	c.FailOnSuspiciousPatterns = false

	return c
}

// DefaultConfig returns a JSON sample of the default options.
func DefaultConfig(indent string) []byte {
	var (
		res = bytes.NewBuffer(make([]byte, 0))
		def []byte
	)

	def, _ = json.Marshal(Defaults())

	if err := json.Indent(res, def, indent, "  "); err != nil {
		return def
	} else {
		return res.Bytes()
	}
}

// Validate checks the options against their constraints.
func (o Config) Validate() liberr.Error {
	var e = ErrorValidatorError.Error(nil)

	if err := libval.New().Struct(o); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.AddParent(er)
		}

		for _, er := range err.(libval.ValidationErrors) {
			//nolint #goerr113
			e.AddParent(fmt.Errorf("config field '%s' is not validated by constraint '%s'", er.Namespace(), er.ActualTag()))
		}
	}

	if !e.HasParent() {
		e = nil
	}

	return e
}

// Build validates the options and returns the immutable Configuration.
// When comparisons are case insensitive, lowercase copies of the sets are
// precomputed here.
func (o Config) Build() (Configuration, liberr.Error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &cfg{
		lnPath: o.MaxPathLength,
		lnPrmN: o.MaxParameterNameLength,
		lnPrmV: o.MaxParameterValueLength,
		lnHdrN: o.MaxHeaderNameLength,
		lnHdrV: o.MaxHeaderValueLength,
		lnCokN: o.MaxCookieNameLength,
		lnCokV: o.MaxCookieValueLength,
		lnBody: o.MaxBodyLength,

		ctPrm: o.MaxParameterCount,
		ctHdr: o.MaxHeaderCount,
		ctCok: o.MaxCookieCount,

		hdrAllow: newSet(o.AllowedHeaderNames, !o.CaseSensitiveComparison),
		hdrBlock: newSet(o.BlockedHeaderNames, !o.CaseSensitiveComparison),
		cntAllow: newSet(o.AllowedContentTypes, !o.CaseSensitiveComparison),
		cntBlock: newSet(o.BlockedContentTypes, !o.CaseSensitiveComparison),

		fTrv: o.AllowPathTraversal,
		fDbl: o.AllowDoubleEncoding,
		fNul: o.AllowNullBytes,
		fCtl: o.AllowControlCharacters,
		fExt: o.AllowExtendedAscii,
		fNrm: o.NormalizeUnicode,
		fCse: o.CaseSensitiveComparison,
		fPat: o.FailOnSuspiciousPatterns,
		fSec: o.RequireSecureCookies,
		fHto: o.RequireHttpOnlyCookies,
	}, nil
}

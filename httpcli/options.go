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

package httpcli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	libval "github.com/go-playground/validator/v10"
	libtls "github.com/nabbar/golib/certificates"
	libdur "github.com/nabbar/golib/duration"
	liberr "github.com/nabbar/golib/errors"
)

// OptionTLS enables a TLS configuration for the client transport. When
// disabled the secured default configuration applies to https endpoints.
type OptionTLS struct {
	Enable bool          `json:"enable" yaml:"enable" toml:"enable" mapstructure:"enable"`
	Config libtls.Config `json:"tls" yaml:"tls" toml:"tls" mapstructure:"tls"`
}

// Options configures a Client bound to one endpoint.
type Options struct {
	Endpoint       string          `json:"endpoint" yaml:"endpoint" toml:"endpoint" mapstructure:"endpoint" validate:"required,url"`
	ConnectTimeout libdur.Duration `json:"connect_timeout" yaml:"connect_timeout" toml:"connect_timeout" mapstructure:"connect_timeout" validate:"gte=0"`
	ReadTimeout    libdur.Duration `json:"read_timeout" yaml:"read_timeout" toml:"read_timeout" mapstructure:"read_timeout" validate:"gte=0"`
	Http2          bool            `json:"http2" yaml:"http2" toml:"http2" mapstructure:"http2"`
	TLS            OptionTLS       `json:"tls" yaml:"tls" toml:"tls" mapstructure:"tls"`
}

// DefaultConfig returns a JSON sample of the options.
func DefaultConfig(indent string) []byte {
	var (
		res = bytes.NewBuffer(make([]byte, 0))
		def = []byte(`{
       "endpoint":"https://example.com/resource",
       "connect_timeout":"5s",
       "read_timeout":"30s",
       "http2": true,
       "tls": {
         "enable": false,
         "tls": {}
       }
}`)
	)

	if err := json.Indent(res, def, indent, "  "); err != nil {
		return def
	} else {
		return res.Bytes()
	}
}

// Validate checks the options against their constraints.
func (o Options) Validate() liberr.Error {
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

// New validates the options and builds the Client. The TLS configuration is
// always passed through the secure context helper, so a client can never be
// built with a deprecated protocol version.
func (o Options) New() (Client, liberr.Error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	var (
		u   *url.URL
		e   error
		t   libtls.TLSConfig
		err liberr.Error
	)

	if u, e = url.Parse(o.Endpoint); e != nil {
		return nil, ErrorParamInvalid.ErrorParent(e)
	}

	var d libtls.TLSConfig

	if o.TLS.Enable {
		d = o.TLS.Config.New()
	}

	if t, err = SecureTlsConfig(d); err != nil {
		return nil, err
	}

	var (
		cnn = o.ConnectTimeout.Time()
		red = o.ReadTimeout.Time()
	)

	if cnn <= 0 {
		cnn = 5 * time.Second
	}

	if red <= 0 {
		red = 30 * time.Second
	}

	var c = &cli{
		s: sync.Mutex{},
		u: u,
		h: make(http.Header),
	}

	c.f = func() *http.Client {
		return GetClient(t, u.Hostname(), o.Http2, cnn, red)
	}

	return c, nil
}

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

package retry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"time"

	libval "github.com/go-playground/validator/v10"
	libdur "github.com/nabbar/golib/duration"
	liberr "github.com/nabbar/golib/errors"
)

// Options configures the backoff loop. Delay for attempt n (1-based) is
//
//	InitialDelay * BackoffMultiplier^(n-1) * (1 + U(-1,1)*JitterFactor)
//
// clamped to [0, MaxDelay]. With JitterFactor zero or MaxAttempts one the
// behavior is fully deterministic.
type Options struct {
	MaxAttempts       int             `json:"max_attempts" yaml:"max_attempts" toml:"max_attempts" mapstructure:"max_attempts" validate:"gte=1"`
	InitialDelay      libdur.Duration `json:"initial_delay" yaml:"initial_delay" toml:"initial_delay" mapstructure:"initial_delay" validate:"gte=0"`
	BackoffMultiplier float64         `json:"backoff_multiplier" yaml:"backoff_multiplier" toml:"backoff_multiplier" mapstructure:"backoff_multiplier" validate:"gte=1"`
	MaxDelay          libdur.Duration `json:"max_delay" yaml:"max_delay" toml:"max_delay" mapstructure:"max_delay" validate:"gte=0"`
	JitterFactor      float64         `json:"jitter_factor" yaml:"jitter_factor" toml:"jitter_factor" mapstructure:"jitter_factor" validate:"gte=0,lte=1"`
}

// DefaultOptions returns the default backoff: 5 attempts, 1s initial delay,
// multiplier 2.0, 60s delay cap, 10% jitter.
func DefaultOptions() Options {
	return Options{
		MaxAttempts:       5,
		InitialDelay:      libdur.ParseDuration(time.Second),
		BackoffMultiplier: 2.0,
		MaxDelay:          libdur.ParseDuration(60 * time.Second),
		JitterFactor:      0.1,
	}
}

// DefaultConfig returns a JSON sample of the default options.
func DefaultConfig(indent string) []byte {
	var (
		res = bytes.NewBuffer(make([]byte, 0))
		def []byte
	)

	def, _ = json.Marshal(DefaultOptions())

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

// delay computes the wait before attempt n+1, n being the 1-based number
// of the attempt that just failed.
func (o Options) delay(n int) time.Duration {
	var (
		base = float64(o.InitialDelay.Time()) * math.Pow(o.BackoffMultiplier, float64(n-1))
		jit  = 1.0
	)

	if o.JitterFactor > 0 {
		jit = 1.0 + (rand.Float64()*2-1)*o.JitterFactor
	}

	var d = time.Duration(math.Round(base * jit))

	if d < 0 {
		d = 0
	}

	if m := o.MaxDelay.Time(); m > 0 && d > m {
		d = m
	}

	return d
}

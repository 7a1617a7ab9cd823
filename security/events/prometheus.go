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

package events

import (
	"github.com/prometheus/client_golang/prometheus"

	libsec "github.com/sabouaram/httpguard/security"
)

const (
	metricName = "httpguard_security_events_total"
	metricHelp = "Number of validation violations by failure type."
	labelName  = "failure"
)

type collector struct {
	c Counter
	d *prometheus.Desc
}

// NewCollector returns a prometheus.Collector exposing the counter values
// as the httpguard_security_events_total counter vector, labelled by
// failure type. The collector reads the counter on each scrape and never
// mutates it.
func NewCollector(c Counter) prometheus.Collector {
	return &collector{
		c: c,
		d: prometheus.NewDesc(metricName, metricHelp, []string{labelName}, nil),
	}
}

func (o *collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- o.d
}

func (o *collector) Collect(ch chan<- prometheus.Metric) {
	for _, t := range libsec.FailureTypes() {
		ch <- prometheus.MustNewConstMetric(o.d, prometheus.CounterValue, float64(o.c.Count(t)), t.String())
	}
}

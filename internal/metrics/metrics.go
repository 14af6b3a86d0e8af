/*
Copyright 2025 The plantfinance Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics records evaluation metrics in Prometheus format.
//
// Metrics:
//
//	plantfinance_evaluations_total{result="success|configuration_error|error"}
//	plantfinance_warnings_total{kind}
//	plantfinance_lcoe_usd_per_kwh{plant}
//	plantfinance_evaluation_duration_seconds
//
// The tooling is short-lived, so metrics are written to a node-exporter
// textfile or dumped in text exposition format instead of being scraped.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/windplant/plantfinance/pkg/finance"
)

// Result label values
const (
	ResultSuccess            = "success"
	ResultConfigurationError = "configuration_error"
	ResultError              = "error"
)

const namespace = "plantfinance"

// Recorder holds the evaluation metrics. A nil *Recorder is valid and records nothing.
type Recorder struct {
	evaluations *prometheus.CounterVec
	warnings    *prometheus.CounterVec
	lcoe        *prometheus.GaugeVec
	duration    prometheus.Histogram
}

// NewRecorder creates the evaluation metrics and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "evaluations_total",
				Help:      "Number of LCOE evaluations by result",
			},
			[]string{"result"},
		),
		warnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "warnings_total",
				Help:      "Number of data-quality warnings by kind",
			},
			[]string{"kind"},
		),
		lcoe: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "lcoe_usd_per_kwh",
				Help:      "Levelized cost of energy of the last successful evaluation of a plant",
			},
			[]string{"plant"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "evaluation_duration_seconds",
				Help:      "Duration of LCOE evaluations",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
			},
		),
	}

	for _, c := range []prometheus.Collector{r.evaluations, r.warnings, r.lcoe, r.duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register metric: %w", err)
		}
	}
	return r, nil
}

// ObserveEvaluation records one evaluation of plant. res is ignored when err is set.
func (r *Recorder) ObserveEvaluation(plant string, res *finance.Result, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.duration.Observe(elapsed.Seconds())

	switch {
	case err == nil:
		r.evaluations.WithLabelValues(ResultSuccess).Inc()
	case finance.IsConfigurationError(err):
		r.evaluations.WithLabelValues(ResultConfigurationError).Inc()
		return
	default:
		r.evaluations.WithLabelValues(ResultError).Inc()
		return
	}
	if res == nil {
		return
	}
	for _, w := range res.Warnings {
		r.warnings.WithLabelValues(string(w.Kind)).Inc()
	}
	if plant != "" {
		r.lcoe.WithLabelValues(plant).Set(res.LCOE)
	}
}

// WriteTextfile writes everything gathered by g to path in the node-exporter
// textfile collector format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile %s: %w", path, err)
	}
	return nil
}

// Dump writes everything gathered by g to w in the text exposition format.
func Dump(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

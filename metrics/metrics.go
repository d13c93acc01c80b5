// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package metrics exposes the progress of a benchmark run as prometheus
// metrics on a private registry.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ElAdriano/parallel-solver/bench"
)

const namespace = "psbench"

// Recorder is a bench.Observer keeping prometheus metrics.
type Recorder struct {
	reg         *prometheus.Registry
	invocations *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	means       *prometheus.GaugeVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invocations_total",
			Help:      "Solver invocations by method and outcome.",
		}, []string{"method", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invocation_duration_seconds",
			Help:      "Wall clock duration of solver invocations.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 16),
		}, []string{"method"}),
		means: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "point_mean_milliseconds",
			Help:      "Mean time of a single solution per grid point.",
		}, []string{"method", "threads", "size"}),
	}
	r.reg.MustRegister(r.invocations, r.durations, r.means)
	return r
}

// Registry returns the registry holding the metrics of r.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

func (r *Recorder) Invoked(inv bench.Invocation, o bench.Outcome) {
	m := inv.Point.Method.String()
	r.invocations.WithLabelValues(m, Status(o.Err)).Inc()
	if o.Err == nil {
		r.durations.WithLabelValues(m).Observe(o.Elapsed.Seconds())
	}
}

func (r *Recorder) Recorded(rec bench.TimingRecord) {
	r.means.WithLabelValues(rec.Method.String(), strconv.Itoa(rec.Threads), strconv.Itoa(rec.Size)).Set(rec.ElapsedMs)
}

// WriteTextfile writes the metrics in the text exposition format to path,
// for the node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// Status gives the status label of an invocation error.
func Status(err error) string {
	switch bench.KindOf(err) {
	case bench.KindNone:
		return "ok"
	case bench.SolverNonZeroExit:
		return "nonzero_exit"
	case bench.SolverTimeout:
		return "timeout"
	case bench.GridExhaustionIncomplete:
		return "interrupted"
	default:
		return "launch_failure"
	}
}

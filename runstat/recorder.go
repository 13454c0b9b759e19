// SPDX-License-Identifier: MIT

package runstat

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "treach"

// Phase is one timed step of a run.
type Phase struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
}

// Recorder collects phase timings, sizes and query latencies. Metrics live
// on a private registry so several recorders can coexist in one process.
// A Recorder belongs to one run and is not safe for concurrent use; the
// registry itself may be gathered from any goroutine.
type Recorder struct {
	phases    []Phase
	latencies []time.Duration

	reg          *prometheus.Registry
	phaseSeconds *prometheus.GaugeVec
	graphGauge   *prometheus.GaugeVec
	indexBytes   *prometheus.GaugeVec
	queries      *prometheus.CounterVec
	queryLatency prometheus.Histogram
}

// NewRecorder returns a Recorder with its metrics registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		phaseSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall-clock duration of each run phase",
		}, []string{"phase"}),
		graphGauge: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "graph",
			Name:      "size",
			Help:      "Temporal graph dimensions (vertices, edges, tmax, last_time, bytes)",
		}, []string{"dim"}),
		indexBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "index",
			Name:      "bytes",
			Help:      "Bytes held by the index summaries",
		}, []string{"mode"}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "queries_total",
			Help:      "Answered queries by outcome",
		}, []string{"reachable"}),
		queryLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "query_duration_seconds",
			Help:      "Per-query answer time",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}),
	}
	r.reg.MustRegister(r.phaseSeconds, r.graphGauge, r.indexBytes, r.queries, r.queryLatency)
	return r
}

// Start begins a phase; the returned func ends it and reports its duration.
// Ending a phase twice records it twice.
func (r *Recorder) Start(name string) func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		d := time.Since(start)
		r.Record(name, d)
		return d
	}
}

// Record stores a finished phase.
func (r *Recorder) Record(name string, d time.Duration) {
	r.phases = append(r.phases, Phase{Name: name, Duration: d})
	r.phaseSeconds.WithLabelValues(name).Set(d.Seconds())
}

// Phases returns the recorded phases in completion order.
func (r *Recorder) Phases() []Phase {
	return append([]Phase(nil), r.phases...)
}

// SetGraph records the graph dimensions.
func (r *Recorder) SetGraph(stats GraphStats) {
	r.graphGauge.WithLabelValues("vertices").Set(float64(stats.Vertices))
	r.graphGauge.WithLabelValues("edges").Set(float64(stats.Edges))
	r.graphGauge.WithLabelValues("tmax").Set(float64(stats.TMax))
	r.graphGauge.WithLabelValues("last_time").Set(float64(stats.LastTime))
	r.graphGauge.WithLabelValues("bytes").Set(float64(stats.Bytes))
}

// SetIndexBytes records the index size of mode.
func (r *Recorder) SetIndexBytes(mode string, b int64) {
	r.indexBytes.WithLabelValues(mode).Set(float64(b))
}

// ObserveQuery records one answered query.
func (r *Recorder) ObserveQuery(reachable bool, took time.Duration) {
	r.latencies = append(r.latencies, took)
	r.queries.WithLabelValues(fmt.Sprint(reachable)).Inc()
	r.queryLatency.Observe(took.Seconds())
}

// Latency summarizes every observed query.
func (r *Recorder) Latency() Latency {
	return LatencyStats(r.latencies)
}

// Registry exposes the private registry for gathering.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// PhaseSeconds returns the gauge of a phase, for inspection.
func (r *Recorder) PhaseSeconds(name string) prometheus.Gauge {
	return r.phaseSeconds.WithLabelValues(name)
}

// WriteMetrics writes every metric in the text exposition format to path.
func (r *Recorder) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("runstat: write metrics: %w", err)
	}
	return nil
}

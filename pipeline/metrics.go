package pipeline

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/edgentropy/motif"
)

// Namespace for all metrics.
const metricsNamespace = "edgentropy"

// Entry point labels of RunsTotal.
const (
	entryRun         = "run"
	entryDense       = "dense"
	entryPartitioned = "partitioned"
	entryComponents  = "components"
)

// Status labels of RunsTotal.
const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics bundles the Prometheus collectors of a Runner.
//
// All operations are safe for concurrent use; a nil *Metrics records nothing.
type Metrics struct {
	// RunsTotal counts pipeline runs.
	// Labels: entry (run, dense, partitioned, components), status (success, error)
	RunsTotal *prometheus.CounterVec

	// PairsTotal counts node pairs classified by the motif counter.
	// Labels: mode (edges, exhaustive)
	PairsTotal *prometheus.CounterVec

	// PartsTotal counts partitions processed by partitioned runs.
	PartsTotal prometheus.Counter

	// StageDurationSeconds measures each pipeline stage.
	// Labels: stage (adjacency.build, motif.count, entropy.graph, entropy.assign, partition)
	StageDurationSeconds *prometheus.HistogramVec

	// GraphEntropyNats observes the total motif-category entropy of every graph.
	GraphEntropyNats prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
// Panics if they are already registered on reg (duplicate registration).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		RunsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "runs_total",
				Help:      "Total number of pipeline runs by entry point and status",
			},
			[]string{"entry", "status"},
		),
		PairsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "pairs_total",
				Help:      "Total number of node pairs classified by counting mode",
			},
			[]string{"mode"},
		),
		PartsTotal: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "parts_total",
				Help:      "Total number of graph partitions processed",
			},
		),
		StageDurationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "stage_duration_seconds",
				Help:      "Duration of pipeline stages in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
			},
			[]string{"stage"},
		),
		GraphEntropyNats: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "graph_entropy_nats",
				Help:      "Shannon entropy of the motif category distribution per graph",
				// the maximum is ln(NumCategories)
				Buckets: prometheus.LinearBuckets(0, math.Log(float64(motif.NumCategories))/8, 9),
			},
		),
	}
}

func (m *Metrics) observeRun(entry string, err error) {
	if m == nil {
		return
	}
	status := statusSuccess
	if err != nil {
		status = statusError
	}
	m.RunsTotal.WithLabelValues(entry, status).Inc()
}

func (m *Metrics) observeStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.StageDurationSeconds.WithLabelValues(stage).Observe(d.Seconds())
}

func (m *Metrics) observeTable(t *motif.Table) {
	if m == nil {
		return
	}
	m.PairsTotal.WithLabelValues(t.Mode().String()).Add(float64(t.Len()))
}

func (m *Metrics) observeEntropy(total float64) {
	if m == nil {
		return
	}
	m.GraphEntropyNats.Observe(total)
}

func (m *Metrics) observeParts(n int) {
	if m == nil {
		return
	}
	m.PartsTotal.Add(float64(n))
}

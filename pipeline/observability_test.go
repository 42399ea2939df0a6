package pipeline_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/edgentropy/adjacency"
	"github.com/katalvlaran/edgentropy/builder"
	"github.com/katalvlaran/edgentropy/motif"
	"github.com/katalvlaran/edgentropy/pipeline"
)

// TestMetrics_Run records runs, pairs, stages and entropy on an isolated registry.
func TestMetrics_Run(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	m := pipeline.NewMetrics(reg)
	r := pipeline.New(pipeline.WithLogger(quiet), pipeline.WithMetrics(m))
	g := fixture(t, nil, builder.TrianglePendant(), builder.Path(3))

	_, err := r.Run(context.Background(), g.Edges, g.N)
	require.NoError(t, err)
	_, err = r.RunPartitioned(context.Background(), g.Edges, g.GraphIDs)
	require.NoError(t, err)
	_, err = r.Run(context.Background(), []adjacency.Edge{{U: 0, V: 5}}, 2)
	require.Error(t, err)

	require.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("run", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("run", "error")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("partitioned", "success")))
	// 6 edges counted whole, then 4 + 2 per part
	require.Equal(t, 12.0, testutil.ToFloat64(m.PairsTotal.WithLabelValues(motif.ModeEdges.String())))
	require.Equal(t, 2.0, testutil.ToFloat64(m.PartsTotal))

	// three Graph calls: one whole run and two parts
	var h dto.Metric
	require.NoError(t, m.GraphEntropyNats.Write(&h))
	require.EqualValues(t, 3, h.GetHistogram().GetSampleCount())
	require.Equal(t, 5, testutil.CollectAndCount(m.StageDurationSeconds))
}

// TestMetrics_DuplicateRegistration panics like every promauto collector.
func TestMetrics_DuplicateRegistration(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	pipeline.NewMetrics(reg)
	require.Panics(t, func() { pipeline.NewMetrics(reg) })
}

// TestTracing_Spans checks the span tree of a run and the error status of a failure.
func TestTracing_Spans(t *testing.T) {
	t.Parallel()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	r := pipeline.New(pipeline.WithLogger(quiet), pipeline.WithTracerProvider(tp))

	_, err := r.Run(context.Background(), []adjacency.Edge{{U: 0, V: 1}, {U: 1, V: 2}}, 3)
	require.NoError(t, err)

	var names []string
	var root sdktrace.ReadOnlySpan
	for _, s := range rec.Ended() {
		names = append(names, s.Name())
		if s.Name() == "pipeline.Run" {
			root = s
		}
	}
	require.Equal(t, []string{"adjacency.build", "motif.count", "entropy.graph", "entropy.assign", "pipeline.Run"}, names)
	require.NotNil(t, root)
	require.Equal(t, codes.Ok, root.Status().Code)
	for _, s := range rec.Ended()[:4] {
		require.Equal(t, root.SpanContext().SpanID(), s.Parent().SpanID(), "stage %s", s.Name())
	}

	_, err = r.Run(context.Background(), []adjacency.Edge{{U: 0, V: 7}}, 3)
	require.Error(t, err)
	ended := rec.Ended()
	last := ended[len(ended)-1]
	require.Equal(t, "pipeline.Run", last.Name())
	require.Equal(t, codes.Error, last.Status().Code)
	require.Equal(t, codes.Error, ended[len(ended)-2].Status().Code) // adjacency.build
}

// TestLogging_Summary checks the structured summary record.
func TestLogging_Summary(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	r := pipeline.New(pipeline.WithLogger(logger.With(slog.String("run_id", "test"))))

	_, err := r.Run(context.Background(), []adjacency.Edge{{U: 0, V: 1}}, 2)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "exactly one Info record: %s", buf.String())
	require.Equal(t, "pipeline run completed", rec["msg"])
	require.Equal(t, "test", rec["run_id"])
	require.Equal(t, "run", rec["entry"])
	require.Equal(t, "edges", rec["mode"])
	require.EqualValues(t, 2, rec["nodes"])
	require.EqualValues(t, 1, rec["edges"])
}

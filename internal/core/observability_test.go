package core

import (
	"bytes"
	"context"
	"encoding/json"
	"expvar"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type metricsCall struct {
	op      string
	success bool
}

type captureMetrics struct{ calls []metricsCall }

func (c *captureMetrics) Observe(_ context.Context, op string, success bool, _ time.Duration) {
	c.calls = append(c.calls, metricsCall{op: op, success: success})
}

func (c *captureMetrics) has(op string, success bool) bool {
	for _, call := range c.calls {
		if call.op == op && call.success == success {
			return true
		}
	}
	return false
}

func TestPrometheusRecorderCountsDispatches(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := NewPrometheusMetricsRecorder(reg, "")
	if err != nil {
		t.Fatalf("NewPrometheusMetricsRecorder: %v", err)
	}
	store := newCounterStore(WithMetricsRecorder(rec))
	store.Dispatch(context.Background(), add{N: 1})
	store.Dispatch(context.Background(), add{N: 1})
	store.Dispatch(context.Background(), explode{})

	if got := promtestutil.ToFloat64(rec.Operations().WithLabelValues("dispatch_ADD", "success")); got != 2 {
		t.Fatalf("success count = %v", got)
	}
	if got := promtestutil.ToFloat64(rec.Operations().WithLabelValues("dispatch_EXPLODE", "error")); got != 1 {
		t.Fatalf("error count = %v", got)
	}
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	if !names["storefront_store_operations_total"] || !names["storefront_store_operation_duration_seconds"] {
		t.Fatalf("missing collectors: %v", names)
	}
	if _, err := NewPrometheusMetricsRecorder(reg, ""); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}

func TestExpvarRecorderSnapshot(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	if expvar.Get(rec.Name()) == nil {
		t.Fatalf("recorder not published")
	}
	rec.Observe(context.Background(), "dispatch_ADD", true, 2*time.Millisecond)
	rec.Observe(context.Background(), "dispatch_ADD", false, time.Millisecond)
	rec.Observe(context.Background(), "", true, time.Millisecond)

	snap := rec.Snapshot()
	if snap.Results["dispatch_ADD"]["success"] != 1 || snap.Results["dispatch_ADD"]["error"] != 1 {
		t.Fatalf("unexpected results %+v", snap.Results)
	}
	if snap.DurationsMS["dispatch_ADD"] != 3 {
		t.Fatalf("unexpected durations %+v", snap.DurationsMS)
	}
	if len(snap.Results) != 1 {
		t.Fatalf("empty operation was recorded")
	}
	snap.Results["dispatch_ADD"]["success"] = 99
	if rec.Snapshot().Results["dispatch_ADD"]["success"] != 1 {
		t.Fatalf("snapshot shares maps with the recorder")
	}
}

func TestMultiMetricsRecorderFansOut(t *testing.T) {
	a, b := &captureMetrics{}, &captureMetrics{}
	multi := MultiMetricsRecorder{a, nil, b}
	multi.Observe(context.Background(), "dispatch_ADD", true, 0)
	if len(a.calls) != 1 || len(b.calls) != 1 {
		t.Fatalf("fan out failed: %v %v", a.calls, b.calls)
	}
}

func TestJSONTracerWritesSpanPerDispatch(t *testing.T) {
	var buf bytes.Buffer
	tracer := NewJSONTracer(&buf)
	store := newCounterStore(WithTracer(tracer))
	store.Dispatch(context.Background(), add{N: 1})
	store.Dispatch(context.Background(), explode{})

	entries := tracer.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(entries))
	}
	if entries[0].Operation != "dispatch_ADD" || entries[0].Status != "success" || entries[0].Error != "" {
		t.Fatalf("unexpected first span %+v", entries[0])
	}
	if entries[1].Operation != "dispatch_EXPLODE" || entries[1].Status != "error" || !strings.Contains(entries[1].Error, "boom") {
		t.Fatalf("unexpected second span %+v", entries[1])
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 JSON lines, got %q", buf.String())
	}
	var decoded JSONTraceEntry
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil || decoded.Operation != "dispatch_ADD" {
		t.Fatalf("decode span line: %v %+v", err, decoded)
	}
	if len(NewJSONTracer(nil).Entries()) != 0 {
		t.Fatalf("fresh tracer should be empty")
	}
}

func TestZapLoggerAdapter(t *testing.T) {
	coreObserver, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(coreObserver))
	store := newCounterStore(WithLogger(logger))
	store.Dispatch(context.Background(), add{N: 1})
	store.Dispatch(context.Background(), explode{})
	logger.Info("ready", "component", "test")
	logger.Warn("careful")

	if logs.FilterMessage("state updated").Len() != 1 {
		t.Fatalf("expected debug line for the committed dispatch")
	}
	panics := logs.FilterLevelExact(zapcore.ErrorLevel).All()
	if len(panics) != 1 || panics[0].ContextMap()["action"] != "EXPLODE" {
		t.Fatalf("unexpected error logs %+v", panics)
	}
	if logs.FilterField(zap.String("component", "test")).Len() != 1 {
		t.Fatalf("key/value fields not forwarded")
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
		t.Fatalf("warn not forwarded")
	}

	nop := NewZapLogger(nil)
	nop.Debug("ignored")
	nop.Error("ignored")
}

package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	// Verify all metrics are initialized
	if r.SnapshotRebuildsTotal == nil {
		t.Error("SnapshotRebuildsTotal not initialized")
	}
	if r.NodesTotal == nil {
		t.Error("NodesTotal not initialized")
	}
	if r.PointerEventsTotal == nil {
		t.Error("PointerEventsTotal not initialized")
	}
	if r.registry == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	// Should return the same instance
	r1 := DefaultRegistry()
	r2 := DefaultRegistry()

	if r1 != r2 {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestNilRegistry(t *testing.T) {
	var r *Registry

	// None of these may panic
	r.RecordRebuild(1, 2, 3, 4, 5)
	r.RecordSnapshotLoad("success", time.Millisecond)
	r.RecordLayout(time.Millisecond)
	r.RecordSelectionDropped()
	r.RecordPointerEvent("down")
	r.RecordHitTest(true)
	r.SetZoom(2)
	r.RecordViewReset()
	r.RecordRefreshTick()
	r.SetTerminalSize(80, 24)
	r.UpdateSystemMetrics()
}

func TestRecordRebuild(t *testing.T) {
	r := NewRegistry()

	r.RecordRebuild(3, 7, 1, 0, 2)
	r.RecordRebuild(4, 6, 2, 1, 0)

	if got := counterValue(t, r.SnapshotRebuildsTotal); got != 2 {
		t.Errorf("SnapshotRebuildsTotal = %v, want 2", got)
	}
	if got := counterValue(t, r.DanglingParentsTotal); got != 3 {
		t.Errorf("DanglingParentsTotal = %v, want 3", got)
	}
	if got := counterValue(t, r.DuplicateNodesTotal); got != 1 {
		t.Errorf("DuplicateNodesTotal = %v, want 1", got)
	}
	if got := counterValue(t, r.SkippedClientsTotal); got != 2 {
		t.Errorf("SkippedClientsTotal = %v, want 2", got)
	}

	tests := []struct {
		kind     string
		expected float64
	}{
		{"device", 4},
		{"client", 6},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			gauge, err := r.NodesTotal.GetMetricWithLabelValues(tt.kind)
			if err != nil {
				t.Fatalf("Failed to get metric: %v", err)
			}
			if got := gaugeValue(t, gauge); got != tt.expected {
				t.Errorf("nodes{kind=%q} = %v, want %v", tt.kind, got, tt.expected)
			}
		})
	}
}

func TestRecordPointerEvent(t *testing.T) {
	r := NewRegistry()

	r.RecordPointerEvent("down")
	r.RecordPointerEvent("drag")
	r.RecordPointerEvent("drag")

	drag, err := r.PointerEventsTotal.GetMetricWithLabelValues("drag")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}
	if got := counterValue(t, drag); got != 2 {
		t.Errorf("drag counter = %v, want 2", got)
	}
}

func TestRecordHitTest(t *testing.T) {
	r := NewRegistry()

	r.RecordHitTest(true)
	r.RecordHitTest(false)
	r.RecordHitTest(false)

	hit, _ := r.HitTestsTotal.GetMetricWithLabelValues("hit")
	miss, _ := r.HitTestsTotal.GetMetricWithLabelValues("miss")

	if got := counterValue(t, hit); got != 1 {
		t.Errorf("hit counter = %v, want 1", got)
	}
	if got := counterValue(t, miss); got != 2 {
		t.Errorf("miss counter = %v, want 2", got)
	}
}

func TestGaugeMetrics(t *testing.T) {
	r := NewRegistry()

	r.SetZoom(1.44)
	r.UptimeSeconds.Set(3600)
	r.GoRoutines.Set(50)

	tests := []struct {
		name     string
		gauge    prometheus.Gauge
		expected float64
	}{
		{"Zoom", r.Zoom, 1.44},
		{"UptimeSeconds", r.UptimeSeconds, 3600},
		{"GoRoutines", r.GoRoutines, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gaugeValue(t, tt.gauge); got != tt.expected {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestUpdateSystemMetrics(t *testing.T) {
	r := NewRegistry()
	r.UpdateSystemMetrics()

	if got := gaugeValue(t, r.GoRoutines); got < 1 {
		t.Errorf("GoRoutines = %v, want >= 1", got)
	}
	if got := gaugeValue(t, r.MemorySysBytes); got <= 0 {
		t.Errorf("MemorySysBytes = %v, want > 0", got)
	}
}

func TestRecordRefreshTick(t *testing.T) {
	r := NewRegistry()
	r.RecordRefreshTick()
	r.RecordRefreshTick()

	if got := counterValue(t, r.RefreshTicksTotal); got != 2 {
		t.Errorf("RefreshTicksTotal = %v, want 2", got)
	}
	if got := gaugeValue(t, r.GoRoutines); got < 1 {
		t.Errorf("GoRoutines = %v, want >= 1 after a tick", got)
	}
}

func TestSetTerminalSize(t *testing.T) {
	r := NewRegistry()
	r.SetTerminalSize(120, 40)
	r.SetTerminalSize(100, 30)

	tests := []struct {
		dimension string
		expected  float64
	}{
		{"width", 100},
		{"height", 30},
	}
	for _, tt := range tests {
		if got := gaugeValue(t, r.TerminalCells.WithLabelValues(tt.dimension)); got != tt.expected {
			t.Errorf("TerminalCells{%s} = %v, want %v", tt.dimension, got, tt.expected)
		}
	}
}

func TestHistogramMetrics(t *testing.T) {
	r := NewRegistry()

	r.RecordLayout(100 * time.Microsecond)
	r.RecordLayout(200 * time.Microsecond)
	r.RecordLayout(150 * time.Microsecond)

	var metric dto.Metric
	if err := r.LayoutDuration.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}

	if metric.Histogram.GetSampleCount() != 3 {
		t.Errorf("Sample count = %v, want 3", metric.Histogram.GetSampleCount())
	}

	sum := metric.Histogram.GetSampleSum()
	if sum < 0.00044 || sum > 0.00046 {
		t.Errorf("Sample sum = %v, want ~0.00045", sum)
	}
}

func TestRecordSnapshotLoad(t *testing.T) {
	r := NewRegistry()

	r.RecordSnapshotLoad("success", 2*time.Millisecond)
	r.RecordSnapshotLoad("error", time.Millisecond)

	success, _ := r.SnapshotLoadsTotal.GetMetricWithLabelValues("success")
	if got := counterValue(t, success); got != 1 {
		t.Errorf("success loads = %v, want 1", got)
	}
}

func TestConcurrentMetricUpdates(t *testing.T) {
	r := NewRegistry()

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				r.RecordPointerEvent("drag")
			}
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	counter, err := r.PointerEventsTotal.GetMetricWithLabelValues("drag")
	if err != nil {
		t.Fatalf("Failed to get metric: %v", err)
	}

	// Should have 1000 total events (10 goroutines * 100 events)
	if got := counterValue(t, counter); got != 1000 {
		t.Errorf("Counter = %v, want 1000", got)
	}
}

func TestGetPrometheusRegistry(t *testing.T) {
	r := NewRegistry()
	r.RecordRebuild(1, 1, 0, 0, 0)
	promRegistry := r.GetPrometheusRegistry()

	if promRegistry == nil {
		t.Fatal("GetPrometheusRegistry() returned nil")
	}

	metrics, err := promRegistry.Gather()
	if err != nil {
		t.Fatalf("Failed to gather metrics: %v", err)
	}

	expectedMetrics := []string{
		"topoview_snapshot_rebuilds_total",
		"topoview_nodes",
		"topoview_zoom",
		"topoview_uptime_seconds",
	}

	metricNames := make(map[string]bool)
	for _, m := range metrics {
		metricNames[m.GetName()] = true
	}

	for _, expected := range expectedMetrics {
		if !metricNames[expected] {
			t.Errorf("Expected metric %s not found", expected)
		}
	}

	// Verify all metrics have the topoview_ prefix
	for _, m := range metrics {
		if !strings.HasPrefix(m.GetName(), "topoview_") {
			t.Errorf("Metric %s does not have topoview_ prefix", m.GetName())
		}
	}
}

func BenchmarkRecordPointerEvent(b *testing.B) {
	r := NewRegistry()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		r.RecordPointerEvent("drag")
	}
}

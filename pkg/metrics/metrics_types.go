package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Snapshot Metrics
	SnapshotRebuildsTotal prometheus.Counter
	SnapshotLoadsTotal    *prometheus.CounterVec
	SnapshotLoadDuration  prometheus.Histogram
	NodesTotal            *prometheus.GaugeVec
	DanglingParentsTotal  prometheus.Counter
	DuplicateNodesTotal   prometheus.Counter
	SkippedClientsTotal   prometheus.Counter
	SelectionDroppedTotal prometheus.Counter
	LayoutDuration        prometheus.Histogram

	// Interaction Metrics
	PointerEventsTotal *prometheus.CounterVec
	HitTestsTotal      *prometheus.CounterVec
	Zoom               prometheus.Gauge
	ViewResetsTotal    prometheus.Counter

	// Session Metrics
	RefreshTicksTotal prometheus.Counter
	TerminalCells     *prometheus.GaugeVec
	UptimeSeconds     prometheus.Gauge
	GoRoutines        prometheus.Gauge
	MemoryAllocBytes  prometheus.Gauge
	MemorySysBytes    prometheus.Gauge

	registry *prometheus.Registry
	started  time.Time
	mu       sync.Mutex
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		started:  time.Now(),
	}

	r.initSnapshotMetrics()
	r.initInteractionMetrics()
	r.initSessionMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

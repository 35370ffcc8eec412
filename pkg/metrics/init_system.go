package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// initSessionMetrics covers the running viewer: refresh ticks, terminal size
// and process samples taken on each tick.
func (r *Registry) initSessionMetrics() {
	factory := promauto.With(r.registry)

	r.RefreshTicksTotal = factory.NewCounter(prometheus.CounterOpts{
		Name: "topoview_refresh_ticks_total",
		Help: "Snapshot refresh ticks fired by the UI loop",
	})
	r.TerminalCells = factory.NewGaugeVec(prometheus.GaugeOpts{
		Name: "topoview_terminal_cells",
		Help: "Terminal size in cells, by dimension",
	}, []string{"dimension"})

	// Sampled on each refresh tick, not on scrape.
	r.UptimeSeconds = factory.NewGauge(prometheus.GaugeOpts{
		Name: "topoview_uptime_seconds",
		Help: "Seconds since the viewer started, as of the last tick",
	})
	r.GoRoutines = factory.NewGauge(prometheus.GaugeOpts{
		Name: "topoview_goroutines",
		Help: "Goroutines alive at the last tick",
	})
	r.MemoryAllocBytes = factory.NewGauge(prometheus.GaugeOpts{
		Name: "topoview_memory_alloc_bytes",
		Help: "Heap bytes in use at the last tick",
	})
	r.MemorySysBytes = factory.NewGauge(prometheus.GaugeOpts{
		Name: "topoview_memory_sys_bytes",
		Help: "Bytes obtained from the OS at the last tick",
	})
}

package metrics

import (
	"runtime"
	"time"
)

// Every recording method is a no-op on a nil Registry, so components can be
// built without metrics.

// RecordRebuild records one node set rebuild and the hazards found in it
func (r *Registry) RecordRebuild(devices, clients, dangling, duplicates, skipped int) {
	if r == nil {
		return
	}
	r.SnapshotRebuildsTotal.Inc()
	r.DanglingParentsTotal.Add(float64(dangling))
	r.DuplicateNodesTotal.Add(float64(duplicates))
	r.SkippedClientsTotal.Add(float64(skipped))

	// Concurrent rebuilds must not interleave device and client counts.
	r.mu.Lock()
	r.NodesTotal.WithLabelValues("device").Set(float64(devices))
	r.NodesTotal.WithLabelValues("client").Set(float64(clients))
	r.mu.Unlock()
}

// RecordSnapshotLoad records a snapshot file load with its duration
func (r *Registry) RecordSnapshotLoad(status string, duration time.Duration) {
	if r == nil {
		return
	}
	r.SnapshotLoadsTotal.WithLabelValues(status).Inc()
	r.SnapshotLoadDuration.Observe(duration.Seconds())
}

// RecordLayout records a tree layout pass
func (r *Registry) RecordLayout(duration time.Duration) {
	if r == nil {
		return
	}
	r.LayoutDuration.Observe(duration.Seconds())
}

// RecordSelectionDropped records a selection cleared by a rebuild
func (r *Registry) RecordSelectionDropped() {
	if r == nil {
		return
	}
	r.SelectionDroppedTotal.Inc()
}

// RecordPointerEvent records a pointer event of the given kind
func (r *Registry) RecordPointerEvent(kind string) {
	if r == nil {
		return
	}
	r.PointerEventsTotal.WithLabelValues(kind).Inc()
}

// RecordHitTest records whether a hit test found a node
func (r *Registry) RecordHitTest(hit bool) {
	if r == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	r.HitTestsTotal.WithLabelValues(result).Inc()
}

// SetZoom records the current zoom factor
func (r *Registry) SetZoom(zoom float64) {
	if r == nil {
		return
	}
	r.Zoom.Set(zoom)
}

// RecordViewReset records a view reset
func (r *Registry) RecordViewReset() {
	if r == nil {
		return
	}
	r.ViewResetsTotal.Inc()
}

// RecordRefreshTick counts a refresh tick and samples the process gauges.
func (r *Registry) RecordRefreshTick() {
	if r == nil {
		return
	}
	r.RefreshTicksTotal.Inc()
	r.UpdateSystemMetrics()
}

// SetTerminalSize records the terminal dimensions in cells.
func (r *Registry) SetTerminalSize(width, height int) {
	if r == nil {
		return
	}
	r.TerminalCells.WithLabelValues("width").Set(float64(width))
	r.TerminalCells.WithLabelValues("height").Set(float64(height))
}

// UpdateSystemMetrics samples uptime, goroutines and memory
func (r *Registry) UpdateSystemMetrics() {
	if r == nil {
		return
	}
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	r.UptimeSeconds.Set(time.Since(r.started).Seconds())
	r.GoRoutines.Set(float64(runtime.NumGoroutine()))
	r.MemoryAllocBytes.Set(float64(mem.Alloc))
	r.MemorySysBytes.Set(float64(mem.Sys))
}

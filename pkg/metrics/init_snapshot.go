package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSnapshotMetrics() {
	r.SnapshotRebuildsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topoview_snapshot_rebuilds_total",
			Help: "Total number of node set rebuilds from snapshots",
		},
	)

	r.SnapshotLoadsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topoview_snapshot_loads_total",
			Help: "Total number of snapshot file loads",
		},
		[]string{"status"}, // success, error
	)

	r.SnapshotLoadDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topoview_snapshot_load_duration_seconds",
			Help:    "Time to read and decode a snapshot file in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	r.NodesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "topoview_nodes",
			Help: "Number of nodes in the current node set",
		},
		[]string{"kind"}, // device, client
	)

	r.DanglingParentsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topoview_dangling_parents_total",
			Help: "Total number of uplink references to ids missing from their snapshot",
		},
	)

	r.DuplicateNodesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topoview_duplicate_nodes_total",
			Help: "Total number of records whose id was already present in their snapshot",
		},
	)

	r.SkippedClientsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topoview_skipped_clients_total",
			Help: "Total number of clients not represented as nodes",
		},
	)

	r.SelectionDroppedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topoview_selection_dropped_total",
			Help: "Total number of selections cleared because the node left the snapshot",
		},
	)

	r.LayoutDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "topoview_layout_duration_seconds",
			Help:    "Tree layout duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1},
		},
	)
}

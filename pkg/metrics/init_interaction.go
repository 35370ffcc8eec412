package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initInteractionMetrics() {
	r.PointerEventsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topoview_pointer_events_total",
			Help: "Total number of pointer events handled",
		},
		[]string{"kind"}, // down, drag, up
	)

	r.HitTestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "topoview_hit_tests_total",
			Help: "Total number of hit tests by outcome",
		},
		[]string{"result"}, // hit, miss
	)

	r.Zoom = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "topoview_zoom",
			Help: "Current viewport zoom factor",
		},
	)

	r.ViewResetsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "topoview_view_resets_total",
			Help: "Total number of view resets",
		},
	)
}

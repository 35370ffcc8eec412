package viewport

import (
	"time"

	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/logging"
	"github.com/dd0wney/topoview/pkg/metrics"
	"github.com/dd0wney/topoview/pkg/topology"
	"github.com/dd0wney/topoview/pkg/visualization"
)

// Controller owns zoom, pan, selection and drag state together with the
// node set whose positions it mutates. It is not safe for concurrent use;
// the host's event loop owns it.
type Controller struct {
	config  Config
	layout  visualization.Layout
	builder *topology.Builder
	logger  logging.Logger
	metrics *metrics.Registry

	nodes *topology.NodeSet
	zoom  float64
	pan   geometry.Position

	selected *topology.NodeID
	dragging *topology.NodeID

	lastPointer    geometry.Position
	hasLastPointer bool
}

// New creates a controller with an empty node set at zoom 1 and no pan.
// logger and registry may be nil.
func New(config Config, logger logging.Logger, registry *metrics.Registry) *Controller {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	config = config.withDefaults()

	c := &Controller{
		config:  config,
		layout:  visualization.NewTreeLayout(config.Layout),
		builder: topology.NewBuilder(logger),
		logger:  logger.With(logging.Component("viewport")),
		metrics: registry,
		nodes:   topology.NewNodeSet(),
		zoom:    1,
	}
	registry.SetZoom(c.zoom)
	return c
}

// Nodes returns the node set the controller owns. Callers must treat it as
// read-only.
func (c *Controller) Nodes() *topology.NodeSet {
	return c.nodes
}

// Zoom returns the current zoom factor.
func (c *Controller) Zoom() float64 {
	return c.zoom
}

// Pan returns the current pan offset in model units.
func (c *Controller) Pan() geometry.Position {
	return c.pan
}

// Transform returns the transform shared by rendering, hit-testing and
// pointer deltas.
func (c *Controller) Transform() geometry.Transform {
	return geometry.Transform{Zoom: c.zoom, Pan: c.pan, Canvas: c.config.Layout.Canvas}
}

// Update replaces the node set with one built from snap and laid out from
// scratch. Zoom and pan are kept; selection and drag survive only if their
// node is still present.
func (c *Controller) Update(snap topology.Snapshot) {
	set, stats := c.builder.Build(snap)
	c.relayout(set)
	c.nodes = set

	c.reconcile()

	c.metrics.RecordRebuild(stats.Devices, stats.Clients, stats.DanglingParents, stats.Duplicates, stats.SkippedClients)
	c.logger.Info("node set rebuilt",
		logging.Count(set.Len()),
		logging.Int("devices", stats.Devices),
		logging.Int("clients", stats.Clients),
		logging.Int("skipped", stats.SkippedClients))
}

// ResetView restores zoom 1, lays the tree out again and pans so the
// bounding box of all nodes is centered. Selection is untouched.
func (c *Controller) ResetView() {
	c.zoom = 1
	c.pan = geometry.Position{}
	c.relayout(c.nodes)

	canvas := c.config.Layout.Canvas.Safe()
	center := visualization.Center(c.nodes, canvas)
	c.pan = geometry.Position{X: center.X - canvas.Width/2, Y: center.Y - canvas.Height/2}

	c.metrics.SetZoom(c.zoom)
	c.metrics.RecordViewReset()
	c.logger.Info("view reset", logging.Pan(c.pan.X, c.pan.Y))
}

func (c *Controller) relayout(set *topology.NodeSet) {
	start := time.Now()
	c.layout.Apply(set)
	elapsed := time.Since(start)

	c.metrics.RecordLayout(elapsed)
	c.logger.Debug("layout applied", logging.Count(set.Len()), logging.Latency(elapsed))
}

// reconcile drops selection and drag references to nodes that are gone.
func (c *Controller) reconcile() {
	if c.dragging != nil && !c.nodes.Contains(*c.dragging) {
		c.logger.Debug("dragged node left the snapshot", logging.NodeID(*c.dragging))
		c.dragging = nil
	}
	if c.selected != nil && !c.nodes.Contains(*c.selected) {
		c.logger.Warn("selected node left the snapshot, clearing selection", logging.NodeID(*c.selected))
		c.selected = nil
		c.dragging = nil
		c.metrics.RecordSelectionDropped()
	}
}

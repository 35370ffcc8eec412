package viewport

import (
	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/logging"
)

// ZoomIn multiplies zoom by the zoom step, up to the maximum.
func (c *Controller) ZoomIn() {
	c.setZoom(c.zoom * c.config.ZoomStep)
}

// ZoomOut divides zoom by the zoom step, down to the minimum.
func (c *Controller) ZoomOut() {
	c.setZoom(c.zoom / c.config.ZoomStep)
}

func (c *Controller) setZoom(z float64) {
	c.zoom = geometry.Clamp(z, c.config.MinZoom, c.config.MaxZoom)
	c.metrics.SetZoom(c.zoom)
	c.logger.Debug("zoom changed", logging.Zoom(c.zoom))
}

// ScreenToModel maps a host pointer location inside area to model space.
func (c *Controller) ScreenToModel(px, py float64, area geometry.Area) geometry.Position {
	return c.Transform().ScreenToModel(px, py, area)
}

// HandlePointer dispatches ev to the matching pointer handler.
func (c *Controller) HandlePointer(ev PointerEvent, area geometry.Area) {
	switch ev.Kind {
	case PointerDown:
		c.OnPointerDown(ev.X, ev.Y, area)
	case PointerUp:
		c.OnPointerUp()
	case PointerDrag:
		c.OnPointerDrag(ev.X, ev.Y, area)
	}
}

// OnPointerDown selects and starts dragging the node under the pointer, or
// clears both when nothing is hit.
func (c *Controller) OnPointerDown(px, py float64, area geometry.Area) {
	c.metrics.RecordPointerEvent(PointerDown.String())

	at := c.ScreenToModel(px, py, area)
	if id, ok := c.FindNodeAt(at); ok {
		c.selected = &id
		dragging := id
		c.dragging = &dragging
		c.logger.Debug("node selected", logging.NodeID(id))
	} else {
		c.selected = nil
		c.dragging = nil
	}

	c.lastPointer = geometry.Position{X: px, Y: py}
	c.hasLastPointer = true
}

// OnPointerUp ends a drag. The selection stays.
func (c *Controller) OnPointerUp() {
	c.metrics.RecordPointerEvent(PointerUp.String())
	c.dragging = nil
}

// OnPointerDrag moves the dragged node by the pointer delta, or pans when no
// node is being dragged. Panning moves the content with the pointer.
func (c *Controller) OnPointerDrag(px, py float64, area geometry.Area) {
	c.metrics.RecordPointerEvent(PointerDrag.String())

	current := geometry.Position{X: px, Y: py}
	if !c.hasLastPointer {
		c.lastPointer = current
		c.hasLastPointer = true
		return
	}

	d := current.Sub(c.lastPointer)
	delta := c.Transform().ScreenDeltaToModel(d.X, d.Y, area)
	c.lastPointer = current

	if c.dragging != nil {
		if n, ok := c.nodes.Get(*c.dragging); ok {
			n.Position = n.Position.Add(delta).Clamped()
			return
		}
		c.dragging = nil
	}
	c.pan = c.pan.Sub(delta)
}

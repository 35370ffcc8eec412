package viewport

import (
	"github.com/dd0wney/topoview/pkg/logging"
	"github.com/dd0wney/topoview/pkg/topology"
)

// SelectByID selects id if it is in the current node set and reports
// whether it did. A drag of any other node ends.
func (c *Controller) SelectByID(id topology.NodeID) bool {
	if !c.nodes.Contains(id) {
		c.logger.Debug("select ignored, node not present", logging.NodeID(id))
		return false
	}
	c.selected = &id
	if c.dragging != nil && *c.dragging != id {
		c.dragging = nil
	}
	return true
}

// ClearSelection drops the selection and any drag.
func (c *Controller) ClearSelection() {
	c.selected = nil
	c.dragging = nil
}

// Selected returns a summary of the selected node.
func (c *Controller) Selected() (NodeSummary, bool) {
	n, ok := c.selectedNode()
	if !ok {
		return NodeSummary{}, false
	}
	return NodeSummary{ID: n.ID, Name: n.DisplayName(), Kind: n.Kind}, true
}

// SelectedID returns the id of the selected node.
func (c *Controller) SelectedID() (topology.NodeID, bool) {
	if c.selected == nil {
		return topology.NodeID{}, false
	}
	return *c.selected, true
}

// DraggingID returns the id of the node being dragged.
func (c *Controller) DraggingID() (topology.NodeID, bool) {
	if c.dragging == nil {
		return topology.NodeID{}, false
	}
	return *c.dragging, true
}

func (c *Controller) selectedNode() (*topology.NetworkNode, bool) {
	if c.selected == nil {
		return nil, false
	}
	return c.nodes.Get(*c.selected)
}

// StatusLine describes the selection for a status bar.
func (c *Controller) StatusLine() string {
	n, ok := c.selectedNode()
	if !ok {
		return "No node selected"
	}
	return "Selected: " + n.DisplayName() + " (" + n.Kind.String() + ")"
}

// Confirm turns the selection into a request for its detail view.
func (c *Controller) Confirm() (FocusRequest, bool) {
	n, ok := c.selectedNode()
	if !ok {
		return FocusRequest{}, false
	}

	req := FocusRequest{Target: FocusClient, ID: n.ID}
	if topology.IsDevice(n.Kind) {
		req.Target = FocusDevice
	}
	c.logger.Info("selection confirmed", logging.NodeID(n.ID), logging.String("target", req.Target.String()))
	return req, true
}

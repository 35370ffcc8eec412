package viewport

import (
	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/topology"
)

// HitRadius is the model-space distance within which a node counts as hit.
// It grows with zoom along with the drawn marker.
func (c *Controller) HitRadius() float64 {
	return c.config.HitRadius * c.zoom
}

// FindNodeAt returns the node closest to p within the hit radius. Equal
// distances resolve to the lowest id.
func (c *Controller) FindNodeAt(p geometry.Position) (topology.NodeID, bool) {
	radius := c.HitRadius()

	var (
		best     topology.NodeID
		bestDist float64
		found    bool
	)
	// Nodes come back in id order, so a strict comparison keeps the lowest id.
	for _, n := range c.nodes.Nodes() {
		d := n.Position.Distance(p)
		if d >= radius {
			continue
		}
		if !found || d < bestDist {
			best, bestDist, found = n.ID, d, true
		}
	}

	c.metrics.RecordHitTest(found)
	return best, found
}

package visualization

import (
	"math"

	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/topology"
)

// Bounds returns the bounding box of every node position. ok is false for an
// empty set.
func Bounds(nodes *topology.NodeSet) (minPos, maxPos geometry.Position, ok bool) {
	if nodes.Len() == 0 {
		return geometry.Position{}, geometry.Position{}, false
	}

	minX, maxX := math.MaxFloat64, -math.MaxFloat64
	minY, maxY := math.MaxFloat64, -math.MaxFloat64

	for _, n := range nodes.Nodes() {
		minX = math.Min(minX, n.Position.X)
		maxX = math.Max(maxX, n.Position.X)
		minY = math.Min(minY, n.Position.Y)
		maxY = math.Max(maxY, n.Position.Y)
	}

	return geometry.Position{X: minX, Y: minY}, geometry.Position{X: maxX, Y: maxY}, true
}

// Center returns the middle of the bounding box of every node position, or
// the middle of canvas when the set is empty.
func Center(nodes *topology.NodeSet, canvas geometry.Size) geometry.Position {
	lo, hi, ok := Bounds(nodes)
	if !ok {
		c := canvas.Safe()
		return geometry.Position{X: c.Width / 2, Y: c.Height / 2}
	}
	return geometry.Position{X: (lo.X + hi.X) / 2, Y: (lo.Y + hi.Y) / 2}
}

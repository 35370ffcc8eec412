package visualization

import (
	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/topology"
)

// TreeLayout arranges nodes in depth bands: roots along one row near the top,
// each child spread evenly under its parent one band lower.
type TreeLayout struct {
	config LayoutConfig
}

// NewTreeLayout creates a tree layout. Zero fields take their defaults.
func NewTreeLayout(config LayoutConfig) *TreeLayout {
	def := DefaultLayoutConfig()
	if config.RootBand <= 0 {
		config.RootBand = def.RootBand
	}
	if config.BandHeight <= 0 {
		config.BandHeight = def.BandHeight
	}
	return &TreeLayout{config: config}
}

// Apply overwrites the position of every node. It reads only parent/child
// structure, so two calls on the same set produce identical positions.
func (tl *TreeLayout) Apply(nodes *topology.NodeSet) {
	if nodes.Len() == 0 {
		return
	}

	canvas := tl.config.Canvas.Safe()
	p := &treePlacer{
		nodes:   nodes,
		width:   canvas.Width,
		top:     tl.config.RootBand * canvas.Height,
		band:    tl.config.BandHeight * canvas.Height,
		visited: make(map[topology.NodeID]bool, nodes.Len()),
	}

	roots := nodes.Roots()
	spacing := p.width / float64(len(roots)+1)
	for i, root := range roots {
		p.place(root, geometry.Position{X: spacing * float64(i+1), Y: p.top}, 0)
	}

	// Nodes on a parent cycle are never reached from a root; they go to
	// a trailing band below the deepest placed level.
	var unvisited []*topology.NetworkNode
	for _, n := range nodes.Nodes() {
		if !p.visited[n.ID] {
			unvisited = append(unvisited, n)
		}
	}
	if len(unvisited) == 0 {
		return
	}
	y := p.top + float64(p.maxDepth+1)*p.band
	spacing = p.width / float64(len(unvisited)+1)
	for i, n := range unvisited {
		p.visited[n.ID] = true
		n.Position = geometry.Position{X: spacing * float64(i+1), Y: y}.Clamped()
	}
}

type treePlacer struct {
	nodes    *topology.NodeSet
	width    float64
	top      float64
	band     float64
	visited  map[topology.NodeID]bool
	maxDepth int
}

func (p *treePlacer) place(n *topology.NetworkNode, pos geometry.Position, depth int) {
	p.visited[n.ID] = true
	n.Position = pos.Clamped()
	if depth > p.maxDepth {
		p.maxDepth = depth
	}

	if len(n.Children) == 0 {
		return
	}

	// Offsets are taken from the unclamped parent position so siblings keep
	// their spacing when a parent sits against the edge of the canvas.
	spacing := p.width / float64(len(n.Children)+1)
	y := p.top + float64(depth+1)*p.band
	for i, id := range n.Children {
		child, ok := p.nodes.Get(id)
		if !ok || p.visited[id] {
			continue
		}
		x := pos.X - p.width/2 + spacing*float64(i+1)
		p.place(child, geometry.Position{X: x, Y: y}, depth+1)
	}
}

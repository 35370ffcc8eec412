package visualization

import (
	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/topology"
)

// LayoutConfig configures layout parameters
type LayoutConfig struct {
	Canvas     geometry.Size // Canvas the layout spreads nodes across
	RootBand   float64       // Root row, as a fraction of canvas height
	BandHeight float64       // Vertical distance per depth level, as a fraction of canvas height
}

// DefaultLayoutConfig places roots at 20% of the canvas height and each
// further depth level another 20% below.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Canvas:     geometry.ModelSize,
		RootBand:   0.2,
		BandHeight: 0.2,
	}
}

// Layout assigns a model-space position to every node in a set.
type Layout interface {
	Apply(nodes *topology.NodeSet)
}

package render

import "github.com/dd0wney/topoview/pkg/topology"

// Marker sizing, in view units per unit of zoom.
const (
	nodeSize      = 2.0
	selectedSize  = 3.0
	highlightSize = 1.0

	// Approximate half-width of one label character.
	labelCharWidth = 0.4
)

// ShapeFor returns the marker shape for a node kind.
func ShapeFor(k topology.Kind) ShapeKind {
	switch k := k.(type) {
	case topology.DeviceKind:
		switch k.Type {
		case topology.AccessPoint:
			return ShapeRings
		case topology.Switch:
			return ShapeRectangle
		case topology.Gateway:
			return ShapeTriangle
		default:
			return ShapeRing
		}
	case topology.ClientKind:
		switch k.Type {
		case topology.Wireless:
			return ShapeDotRing
		case topology.Wired:
			return ShapeSquare
		default:
			return ShapeDiamond
		}
	default:
		return ShapeRing
	}
}

// NodeColor colors devices by state and clients by connection type.
func NodeColor(k topology.Kind) Color {
	switch k := k.(type) {
	case topology.DeviceKind:
		switch k.State {
		case topology.Online:
			return ColorGreen
		case topology.Offline:
			return ColorRed
		default:
			return ColorYellow
		}
	case topology.ClientKind:
		switch k.Type {
		case topology.Wireless:
			return ColorYellow
		case topology.Wired:
			return ColorBlue
		default:
			return ColorCyan
		}
	default:
		return ColorGray
	}
}

// EdgeColor tints an edge by the kind of its child end.
func EdgeColor(child topology.Kind) Color {
	if k, ok := child.(topology.ClientKind); ok {
		switch k.Type {
		case topology.Wireless:
			return ColorYellow
		case topology.Wired:
			return ColorBlue
		}
	}
	return ColorGray
}

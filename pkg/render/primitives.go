// Package render projects a node set through the current view transform
// into draw primitives. It never mutates what it reads.
package render

import (
	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/topology"
)

// Color is a palette entry; hosts map it to whatever their canvas supports.
type Color int

const (
	ColorGray Color = iota
	ColorGreen
	ColorRed
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
)

func (c Color) String() string {
	switch c {
	case ColorGreen:
		return "green"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return "gray"
	}
}

// ShapeKind selects the marker drawn for a node.
type ShapeKind int

const (
	ShapeRing      ShapeKind = iota // generic device
	ShapeRings                      // access point: three concentric rings
	ShapeRectangle                  // switch: twice as wide as tall
	ShapeTriangle                   // gateway
	ShapeDotRing                    // wireless client: dot inside an 8-point ring
	ShapeSquare                     // wired client
	ShapeDiamond                    // vpn client
)

func (s ShapeKind) String() string {
	switch s {
	case ShapeRings:
		return "rings"
	case ShapeRectangle:
		return "rectangle"
	case ShapeTriangle:
		return "triangle"
	case ShapeDotRing:
		return "dot-ring"
	case ShapeSquare:
		return "square"
	case ShapeDiamond:
		return "diamond"
	default:
		return "ring"
	}
}

// Primitive is one of Line, Shape, Marker or Label. Coordinates are in view
// space: canvas units after zoom and pan.
type Primitive interface {
	isPrimitive()
}

// Line is an edge from a child to its parent.
type Line struct {
	From, To geometry.Position
	Color    Color
}

// Shape is a node marker. Size is its radius in view units.
type Shape struct {
	Node   topology.NodeID
	Kind   ShapeKind
	Center geometry.Position
	Size   float64
	Color  Color
}

// Marker highlights the selected node.
type Marker struct {
	Node   topology.NodeID
	Center geometry.Position
	Size   float64
	Color  Color
}

// Label is text whose first character sits at At.
type Label struct {
	Node  topology.NodeID
	At    geometry.Position
	Text  string
	Color Color
}

func (Line) isPrimitive()   {}
func (Shape) isPrimitive()  {}
func (Marker) isPrimitive() {}
func (Label) isPrimitive()  {}

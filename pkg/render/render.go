package render

import (
	"unicode/utf8"

	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/topology"
)

// Source is the read-only view of interaction state a frame is drawn from.
type Source interface {
	Nodes() *topology.NodeSet
	Transform() geometry.Transform
	SelectedID() (topology.NodeID, bool)
}

// Render emits every edge, then for each node its shape, a highlight when
// selected, and its label. Both passes run in id order.
func Render(src Source) []Primitive {
	nodes := src.Nodes()
	t := src.Transform()
	selected, hasSelected := src.SelectedID()

	ordered := nodes.Nodes()
	out := make([]Primitive, 0, 3*len(ordered))

	for _, n := range ordered {
		parent, ok := nodes.Parent(n)
		if !ok {
			continue
		}
		out = append(out, Line{
			From:  t.ModelToView(n.Position),
			To:    t.ModelToView(parent.Position),
			Color: EdgeColor(n.Kind),
		})
	}

	for _, n := range ordered {
		center := t.ModelToView(n.Position)
		isSelected := hasSelected && n.ID == selected

		size := nodeSize * t.Zoom
		if isSelected {
			size = selectedSize * t.Zoom
		}

		out = append(out, Shape{
			Node:   n.ID,
			Kind:   ShapeFor(n.Kind),
			Center: center,
			Size:   size,
			Color:  NodeColor(n.Kind),
		})

		if isSelected {
			out = append(out, Marker{
				Node:   n.ID,
				Center: center,
				Size:   highlightSize * t.Zoom,
				Color:  ColorWhite,
			})
		}

		name := n.DisplayName()
		out = append(out, Label{
			Node: n.ID,
			At: geometry.Position{
				X: center.X - float64(utf8.RuneCountInString(name))*labelCharWidth*t.Zoom,
				Y: center.Y + 2*size,
			},
			Text:  name,
			Color: ColorWhite,
		})
	}

	return out
}

// Static is a fixed Source, for rendering a node set outside a controller.
type Static struct {
	Set       *topology.NodeSet
	View      geometry.Transform
	Selection *topology.NodeID
}

func (s Static) Nodes() *topology.NodeSet { return s.Set }

func (s Static) Transform() geometry.Transform { return s.View }

func (s Static) SelectedID() (topology.NodeID, bool) {
	if s.Selection == nil {
		return topology.NodeID{}, false
	}
	return *s.Selection, true
}

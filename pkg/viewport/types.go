package viewport

import (
	"github.com/dd0wney/topoview/pkg/topology"
	"github.com/dd0wney/topoview/pkg/visualization"
)

// Config tunes zoom limits, hit-testing and layout.
type Config struct {
	ZoomStep  float64
	MinZoom   float64
	MaxZoom   float64
	HitRadius float64 // base radius in model units at zoom 1
	Layout    visualization.LayoutConfig
}

// DefaultConfig returns the standard viewport settings.
func DefaultConfig() Config {
	return Config{
		ZoomStep:  1.2,
		MinZoom:   0.2,
		MaxZoom:   5.0,
		HitRadius: 4.0,
		Layout:    visualization.DefaultLayoutConfig(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.ZoomStep <= 1 {
		c.ZoomStep = def.ZoomStep
	}
	if c.MinZoom <= 0 {
		c.MinZoom = def.MinZoom
	}
	if c.MaxZoom < c.MinZoom {
		c.MaxZoom = def.MaxZoom
	}
	if c.HitRadius <= 0 {
		c.HitRadius = def.HitRadius
	}
	if c.Layout.Canvas.Width <= 0 || c.Layout.Canvas.Height <= 0 {
		c.Layout.Canvas = def.Layout.Canvas
	}
	return c
}

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerDrag
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer event in host screen units.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// NodeSummary describes the selected node to the host.
type NodeSummary struct {
	ID   topology.NodeID
	Name string
	Kind topology.Kind
}

// FocusTarget names the detail view a confirmed selection opens.
type FocusTarget int

const (
	FocusDevice FocusTarget = iota
	FocusClient
)

func (t FocusTarget) String() string {
	if t == FocusClient {
		return "client"
	}
	return "device"
}

// FocusRequest asks the host to open the detail view for a node.
type FocusRequest struct {
	Target FocusTarget
	ID     topology.NodeID
}

// Package geometry maps between the fixed 0-100 model space that node
// positions live in and the view and screen spaces they are drawn in.
//
// One affine transform is used everywhere: rendering, hit-testing, and
// converting pointer deltas during drag and pan.
//
//	view   = (model - pan) * zoom
//	model  = view / zoom + pan
//	screen = area.origin + view * area.size / canvas
package geometry

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	// ModelMin and ModelMax bound both axes of model space.
	ModelMin = 0.0
	ModelMax = 100.0

	// minDimension replaces zero or negative sizes in divisions.
	minDimension = 1.0
)

// Position is a point in model or view space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns p - q.
func (p Position) Sub(q Position) Position {
	return Position{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by s.
func (p Position) Scale(s float64) Position {
	return Position{X: p.X * s, Y: p.Y * s}
}

// Distance is the Euclidean distance between p and q.
func (p Position) Distance(q Position) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Clamped returns p with both coordinates forced into model space.
func (p Position) Clamped() Position {
	return Position{X: Clamp(p.X, ModelMin, ModelMax), Y: Clamp(p.Y, ModelMin, ModelMax)}
}

// InModelSpace reports whether p lies inside [0,100]x[0,100].
func (p Position) InModelSpace() bool {
	return p.X >= ModelMin && p.X <= ModelMax && p.Y >= ModelMin && p.Y <= ModelMax
}

// Size is a width/height pair in canvas units.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ModelSize is the canvas every layout and render targets by default.
var ModelSize = Size{Width: ModelMax - ModelMin, Height: ModelMax - ModelMin}

// Safe returns s with each dimension raised to at least 1.
func (s Size) Safe() Size {
	return Size{Width: atLeast(s.Width, minDimension), Height: atLeast(s.Height, minDimension)}
}

// Area is the rectangle of screen cells the graph is drawn into.
type Area struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the screen cell (px, py) falls inside a.
func (a Area) Contains(px, py int) bool {
	return px >= a.X && px < a.X+a.Width && py >= a.Y && py < a.Y+a.Height
}

// Inner shrinks a by a border of n cells on every side.
func (a Area) Inner(n int) Area {
	inner := Area{X: a.X + n, Y: a.Y + n, Width: a.Width - 2*n, Height: a.Height - 2*n}
	if inner.Width < 0 {
		inner.Width = 0
	}
	if inner.Height < 0 {
		inner.Height = 0
	}
	return inner
}

func (a Area) size() Size {
	return Size{Width: float64(a.Width), Height: float64(a.Height)}.Safe()
}

// Clamp forces v into [lo, hi].
func Clamp[T constraints.Float | constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func atLeast[T constraints.Float](v, floor T) T {
	if v < floor || math.IsNaN(float64(v)) {
		return floor
	}
	return v
}

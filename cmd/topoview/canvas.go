package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/topoview/pkg/geometry"
	"github.com/dd0wney/topoview/pkg/render"
)

var palette = map[render.Color]lipgloss.Style{
	render.ColorGray:   lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	render.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")),
	render.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")),
	render.ColorYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")),
	render.ColorBlue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5F87FF")),
	render.ColorCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("#00FFFF")),
	render.ColorWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
}

type cell struct {
	ch    rune
	color render.Color
}

// canvas rasterizes view-space primitives onto a grid of terminal cells.
type canvas struct {
	width, height int
	cells         []cell
	view          geometry.Transform
}

func newCanvas(width, height int, view geometry.Transform) *canvas {
	width, height = max(width, 0), max(height, 0)
	return &canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		view:   view,
	}
}

func (c *canvas) at(x, y int) (cell, bool) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return cell{}, false
	}
	return c.cells[y*c.width+x], true
}

func (c *canvas) set(x, y int, ch rune, color render.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{ch: ch, color: color}
}

// toCell maps a view-space point to the cell containing it.
func (c *canvas) toCell(p geometry.Position) (int, int) {
	sx, sy := c.view.ViewToScreen(p, geometry.Area{Width: c.width, Height: c.height})
	return int(math.Floor(sx)), int(math.Floor(sy))
}

// cellsX converts a view-space length along x to cells.
func (c *canvas) cellsX(d float64) float64 {
	return d * float64(c.width) / c.view.Canvas.Safe().Width
}

func (c *canvas) cellsY(d float64) float64 {
	return d * float64(c.height) / c.view.Canvas.Safe().Height
}

// line draws a Bresenham line between two cells, clipped to the grid.
func (c *canvas) line(x0, y0, x1, y1 int, ch rune, color render.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		c.set(x0, y0, ch, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (c *canvas) ring(center geometry.Position, radius float64, ch rune, color render.Color, points int) {
	rx, ry := c.cellsX(radius), c.cellsY(radius)
	cx, cy := c.view.ViewToScreen(center, geometry.Area{Width: c.width, Height: c.height})
	for i := 0; i < points; i++ {
		a := 2 * math.Pi * float64(i) / float64(points)
		c.set(int(math.Floor(cx+rx*math.Cos(a))), int(math.Floor(cy+ry*math.Sin(a))), ch, color)
	}
}

func (c *canvas) outline(corners []geometry.Position, ch rune, color render.Color) {
	for i := range corners {
		x0, y0 := c.toCell(corners[i])
		x1, y1 := c.toCell(corners[(i+1)%len(corners)])
		c.line(x0, y0, x1, y1, ch, color)
	}
}

func (c *canvas) shape(s render.Shape) {
	p, r := s.Center, s.Size
	switch s.Kind {
	case render.ShapeRings:
		for _, f := range []float64{1, 2.0 / 3, 1.0 / 3} {
			c.ring(p, r*f, '·', s.Color, 16)
		}
		c.glyph(p, '◎', s.Color)
	case render.ShapeRectangle:
		c.outline([]geometry.Position{
			{X: p.X - r, Y: p.Y - r/2}, {X: p.X + r, Y: p.Y - r/2},
			{X: p.X + r, Y: p.Y + r/2}, {X: p.X - r, Y: p.Y + r/2},
		}, '─', s.Color)
		c.glyph(p, '▣', s.Color)
	case render.ShapeTriangle:
		c.outline([]geometry.Position{
			{X: p.X, Y: p.Y - r}, {X: p.X + r, Y: p.Y + r}, {X: p.X - r, Y: p.Y + r},
		}, '·', s.Color)
		c.glyph(p, '▲', s.Color)
	case render.ShapeDotRing:
		c.ring(p, r, '·', s.Color, 8)
		c.glyph(p, '•', s.Color)
	case render.ShapeSquare:
		h := r / 2
		c.outline([]geometry.Position{
			{X: p.X - h, Y: p.Y - h}, {X: p.X + h, Y: p.Y - h},
			{X: p.X + h, Y: p.Y + h}, {X: p.X - h, Y: p.Y + h},
		}, '·', s.Color)
		c.glyph(p, '■', s.Color)
	case render.ShapeDiamond:
		c.outline([]geometry.Position{
			{X: p.X, Y: p.Y - r}, {X: p.X + r, Y: p.Y}, {X: p.X, Y: p.Y + r}, {X: p.X - r, Y: p.Y},
		}, '·', s.Color)
		c.glyph(p, '◆', s.Color)
	default:
		c.ring(p, r, '·', s.Color, 16)
		c.glyph(p, 'o', s.Color)
	}
}

func (c *canvas) glyph(p geometry.Position, ch rune, color render.Color) {
	x, y := c.toCell(p)
	c.set(x, y, ch, color)
}

func (c *canvas) text(p geometry.Position, s string, color render.Color) {
	x, y := c.toCell(p)
	for i, r := range []rune(s) {
		c.set(x+i, y, r, color)
	}
}

// draw paints prims in order, so later primitives cover earlier ones.
func (c *canvas) draw(prims []render.Primitive) {
	for _, prim := range prims {
		switch p := prim.(type) {
		case render.Line:
			x0, y0 := c.toCell(p.From)
			x1, y1 := c.toCell(p.To)
			c.line(x0, y0, x1, y1, '·', p.Color)
		case render.Shape:
			c.shape(p)
		case render.Marker:
			c.glyph(p.Center, '◉', p.Color)
		case render.Label:
			c.text(p.At, p.Text, p.Color)
		}
	}
}

// String renders the grid, one styled run per stretch of same-colored cells.
func (c *canvas) String() string {
	var b strings.Builder
	var run strings.Builder

	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		runColor := render.Color(-1)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor < 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(palette[runColor].Render(run.String()))
			}
			run.Reset()
		}

		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			color := cl.color
			ch := cl.ch
			if ch == 0 {
				ch, color = ' ', -1
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteRune(ch)
		}
		flush()
	}
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

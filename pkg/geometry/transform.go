package geometry

// Transform holds the zoom and pan that map model space to view space,
// plus the canvas size that view space spans inside a screen Area.
type Transform struct {
	Zoom   float64
	Pan    Position
	Canvas Size
}

// NewTransform returns the identity view over the default canvas.
func NewTransform() Transform {
	return Transform{Zoom: 1, Canvas: ModelSize}
}

func (t Transform) zoom() float64 {
	if t.Zoom <= 0 {
		return minDimension
	}
	return t.Zoom
}

// ModelToView applies zoom and pan.
func (t Transform) ModelToView(p Position) Position {
	return p.Sub(t.Pan).Scale(t.zoom())
}

// ViewToModel is the exact inverse of ModelToView.
func (t Transform) ViewToModel(v Position) Position {
	return v.Scale(1 / t.zoom()).Add(t.Pan)
}

// ScreenToView converts a screen cell inside area into canvas units.
func (t Transform) ScreenToView(px, py float64, area Area) Position {
	as, cs := area.size(), t.Canvas.Safe()
	return Position{
		X: (px - float64(area.X)) * cs.Width / as.Width,
		Y: (py - float64(area.Y)) * cs.Height / as.Height,
	}
}

// ViewToScreen converts canvas units into fractional screen cells.
func (t Transform) ViewToScreen(v Position, area Area) (float64, float64) {
	as, cs := area.size(), t.Canvas.Safe()
	return float64(area.X) + v.X*as.Width/cs.Width, float64(area.Y) + v.Y*as.Height/cs.Height
}

// ScreenToModel maps a pointer location to model space.
func (t Transform) ScreenToModel(px, py float64, area Area) Position {
	return t.ViewToModel(t.ScreenToView(px, py, area))
}

// ModelToScreen maps a model position to fractional screen cells.
func (t Transform) ModelToScreen(p Position, area Area) (float64, float64) {
	return t.ViewToScreen(t.ModelToView(p), area)
}

// ScreenDeltaToModel converts a pointer movement in cells to a model-space
// displacement: the linear part of ScreenToModel, with no translation.
func (t Transform) ScreenDeltaToModel(dx, dy float64, area Area) Position {
	as, cs := area.size(), t.Canvas.Safe()
	return Position{
		X: dx * cs.Width / as.Width / t.zoom(),
		Y: dy * cs.Height / as.Height / t.zoom(),
	}
}

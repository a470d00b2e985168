package render

import "winternight/internal/gamemap"

// Camera translates between map cells and screen coordinates.
// Cell X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on c.
func NewCamera(c gamemap.Cell, viewW, viewH int) *Camera {
	cam := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	cam.Center(c)
	return cam
}

// Center repositions the camera so that c is in the middle of the view.
func (cam *Camera) Center(c gamemap.Cell) {
	// ViewWidth is in columns; each cell is 2 columns wide.
	cam.OffsetX = c.X - (cam.ViewWidth/2)/2
	cam.OffsetY = c.Y - cam.ViewHeight/2
}

// WorldToScreen converts a cell to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (cam *Camera) WorldToScreen(c gamemap.Cell) (sx, sy int, visible bool) {
	sx = (c.X - cam.OffsetX) * 2
	sy = c.Y - cam.OffsetY
	visible = sx >= 0 && sx+1 < cam.ViewWidth && sy >= 0 && sy < cam.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to a cell.
func (cam *Camera) ScreenToWorld(sx, sy int) gamemap.Cell {
	return gamemap.Cell{X: sx/2 + cam.OffsetX, Y: sy + cam.OffsetY}
}

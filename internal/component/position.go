package component

import (
	"winternight/internal/gamemap"
	"winternight/internal/geom"
)

// Position pairs the logical grid cell with the continuous draw position.
// Cell is updated when a step starts; Draw catches up over MoveTime.
type Position struct {
	Cell gamemap.Cell
	Draw geom.Vec
}

// At returns a Position resting on c.
func At(c gamemap.Cell) Position {
	return Position{Cell: c, Draw: c.Pixel()}
}

// Snap moves the draw position onto the cell.
func (p *Position) Snap() { p.Draw = p.Cell.Pixel() }

// Settled reports whether the draw position rests exactly on the cell.
func (p Position) Settled() bool { return p.Draw == p.Cell.Pixel() }

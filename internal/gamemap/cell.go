package gamemap

import (
	"fmt"
	"winternight/internal/geom"
)

// TileSize is the edge length of one cell in pixel space.
const TileSize = 16

// Cell is a discrete grid coordinate (column, row).
type Cell struct {
	X, Y int
}

// NoCell never matches a cell inside any map.
var NoCell = Cell{X: -1, Y: -1}

// Add returns c offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Pixel returns the top-left pixel position of c.
func (c Cell) Pixel() geom.Vec {
	return geom.V(float64(c.X*TileSize), float64(c.Y*TileSize))
}

// Below is the cell one row down.
func (c Cell) Below() Cell { return c.Add(0, 1) }

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CellAt returns the cell nearest to pixel position p.
func CellAt(p geom.Vec) Cell {
	return Cell{
		X: int(p.X/TileSize + 0.5),
		Y: int(p.Y/TileSize + 0.5),
	}
}

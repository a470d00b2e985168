package component

import "winternight/internal/geom"

// Direction is the facing of an entity on the grid.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Name is the animation clip name used for this facing.
func (d Direction) Name() string {
	switch d {
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "left"
}

func (d Direction) String() string { return d.Name() }

// Vec returns the unit step for d. Up is negative y.
func (d Direction) Vec() geom.Vec {
	switch d {
	case Right:
		return geom.V(1, 0)
	case Up:
		return geom.V(0, -1)
	case Down:
		return geom.V(0, 1)
	}
	return geom.V(-1, 0)
}

// Delta returns the grid step for d.
func (d Direction) Delta() (int, int) {
	v := d.Vec()
	return int(v.X), int(v.Y)
}

// DirectionFromAxis resolves an input or movement vector to a facing.
//
// Single-axis vectors map directly and the zero vector maps to Left. For
// diagonals the axis that did not drive the previous facing wins: if last had
// a horizontal component the vertical one is taken, otherwise the horizontal
// one. Holding two keys therefore alternates instead of fighting.
func DirectionFromAxis(v, last geom.Vec) Direction {
	if v.X != 0 && v.Y != 0 {
		if last.X != 0 {
			return DirectionFromAxis(geom.V(0, v.Y), geom.Zero)
		}
		return DirectionFromAxis(geom.V(v.X, 0), geom.Zero)
	}
	switch {
	case v.X < 0:
		return Left
	case v.X > 0:
		return Right
	case v.Y < 0:
		return Up
	case v.Y > 0:
		return Down
	}
	return Left
}

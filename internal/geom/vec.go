// Package geom holds the continuous 2D vector used for draw positions.
package geom

import "math"

// Vec is a point or displacement in pixel space.
type Vec struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vec{}

func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }
func (v Vec) IsZero() bool { return v.X == 0 && v.Y == 0 }
func (v Vec) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Length returns the Euclidean length of v.
func (v Vec) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the Euclidean distance between v and o.
func (v Vec) Distance(o Vec) float64 { return o.Sub(v).Length() }

// DistanceSquared avoids the square root for radius checks.
func (v Vec) DistanceSquared(o Vec) float64 { return o.Sub(v).LengthSquared() }

// Normalize returns v scaled to unit length, or Zero for the zero vector.
func (v Vec) Normalize() Vec {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return Vec{v.X / l, v.Y / l}
}

// MoveTowards moves v toward target by at most maxDelta without overshooting.
func (v Vec) MoveTowards(target Vec, maxDelta float64) Vec {
	d := target.Sub(v)
	l := d.Length()
	if l <= maxDelta || l == 0 {
		return target
	}
	return v.Add(d.Scale(maxDelta / l))
}

// Package geom provides the 2D vector arithmetic shared by the scene graph,
// the widgets, and the layout algorithms.
//
// The coordinate system matches the animation frame: x grows rightward,
// y grows upward, and the origin sits at the frame center. Direction
// constants (Up, Down, Left, Right) are unit vectors in this system.
package geom

import "math"

// Vec is a 2D point or direction.
type Vec struct {
	X, Y float64
}

// Canonical directions.
var (
	Up    = Vec{0, 1}
	Down  = Vec{0, -1}
	Left  = Vec{-1, 0}
	Right = Vec{1, 0}
	Zero  = Vec{0, 0}
)

// Add returns v + w.
func (v Vec) Add(w Vec) Vec { return Vec{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec) Sub(w Vec) Vec { return Vec{v.X - w.X, v.Y - w.Y} }

// Scale returns v scaled by s.
func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

// Neg returns -v.
func (v Vec) Neg() Vec { return Vec{-v.X, -v.Y} }

// Dot returns the dot product of v and w.
func (v Vec) Dot(w Vec) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the z component of the 3D cross product of v and w.
func (v Vec) Cross(w Vec) float64 { return v.X*w.Y - v.Y*w.X }

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Unit returns v normalized to length 1. The zero vector is returned unchanged.
func (v Vec) Unit() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{v.X / l, v.Y / l}
}

// Orthogonal returns v rotated a quarter turn clockwise. For a unit edge
// direction this points to the right-hand side of the edge, which is where
// weight labels are placed.
func (v Vec) Orthogonal() Vec { return Vec{v.Y, -v.X} }

// Rotate returns v rotated counterclockwise by angle radians.
func (v Vec) Rotate(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Angle returns the angle of v in radians, in (-π, π].
func (v Vec) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Lerp returns the linear interpolation between v and w at t in [0, 1].
func (v Vec) Lerp(w Vec, t float64) Vec {
	return Vec{v.X + (w.X-v.X)*t, v.Y + (w.Y-v.Y)*t}
}

const parallelEps = 1e-9

// Parallel reports whether v and w are parallel or anti-parallel.
// Either being the zero vector counts as parallel; there is no direction
// to disambiguate against.
func (v Vec) Parallel(w Vec) bool {
	if v.Len() == 0 || w.Len() == 0 {
		return true
	}
	return math.Abs(v.Unit().Cross(w.Unit())) < parallelEps
}

// Eq reports whether v and w are equal within eps per component.
func (v Vec) Eq(w Vec, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

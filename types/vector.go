package types

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

const (
	// Surface offset used for shadow ray origins and the threshold below
	// which a ray is considered parallel to a plane.
	Epsilon = 1e-4

	// Tolerance for approximate float comparisons.
	floatCmpEpsilon = 1e-5
)

// A position in 3D space.
type Point f64.Vec3

// A direction in 3D space.
type Vector f64.Vec3

// Define a point.
func Pt(x, y, z float64) Point {
	return Point{x, y, z}
}

// Define a vector.
func Vec(x, y, z float64) Vector {
	return Vector{x, y, z}
}

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }
func (p Point) Z() float64 { return p[2] }

// Translate point by a vector.
func (p Point) Add(v Vector) Point {
	return Point{p[0] + v[0], p[1] + v[1], p[2] + v[2]}
}

// Get the vector pointing from p2 to p.
func (p Point) Sub(p2 Point) Vector {
	return Vector{p[0] - p2[0], p[1] - p2[1], p[2] - p2[2]}
}

// Translate point by the negated vector.
func (p Point) SubVec(v Vector) Point {
	return Point{p[0] - v[0], p[1] - v[1], p[2] - v[2]}
}

// Expand to homogeneous coordinates (w = 1).
func (p Point) Tuple() Tuple {
	return Tuple{p[0], p[1], p[2], 1}
}

// Compare two points using a fixed tolerance.
func (p Point) ApproxEqual(p2 Point) bool {
	return FloatEqual(p[0], p2[0]) && FloatEqual(p[1], p2[1]) && FloatEqual(p[2], p2[2])
}

func (p Point) String() string {
	return fmt.Sprintf("point(%g, %g, %g)", p[0], p[1], p[2])
}

func (v Vector) X() float64 { return v[0] }
func (v Vector) Y() float64 { return v[1] }
func (v Vector) Z() float64 { return v[2] }

// Add a vector.
func (v Vector) Add(v2 Vector) Vector {
	return Vector{v[0] + v2[0], v[1] + v2[1], v[2] + v2[2]}
}

// Subtract a vector.
func (v Vector) Sub(v2 Vector) Vector {
	return Vector{v[0] - v2[0], v[1] - v2[1], v[2] - v2[2]}
}

// Negate vector.
func (v Vector) Neg() Vector {
	return Vector{-v[0], -v[1], -v[2]}
}

// Multiply with a scalar.
func (v Vector) Mul(s float64) Vector {
	return Vector{v[0] * s, v[1] * s, v[2] * s}
}

// Divide by a scalar.
func (v Vector) Div(s float64) Vector {
	return Vector{v[0] / s, v[1] / s, v[2] / s}
}

// Get vector length.
func (v Vector) Len() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Normalize vector. The zero vector normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{v[0] / l, v[1] / l, v[2] / l}
}

// Calculate dot product of 2 vectors.
func (v Vector) Dot(v2 Vector) float64 {
	return v[0]*v2[0] + v[1]*v2[1] + v[2]*v2[2]
}

// Calculate cross product of 2 vectors.
func (v Vector) Cross(v2 Vector) Vector {
	return Vector{v[1]*v2[2] - v[2]*v2[1], v[2]*v2[0] - v[0]*v2[2], v[0]*v2[1] - v[1]*v2[0]}
}

// Reflect the vector about a normal.
func (v Vector) Reflect(normal Vector) Vector {
	return v.Sub(normal.Mul(2 * v.Dot(normal)))
}

// Expand to homogeneous coordinates (w = 0).
func (v Vector) Tuple() Tuple {
	return Tuple{v[0], v[1], v[2], 0}
}

// Compare two vectors using a fixed tolerance.
func (v Vector) ApproxEqual(v2 Vector) bool {
	return FloatEqual(v[0], v2[0]) && FloatEqual(v[1], v2[1]) && FloatEqual(v[2], v2[2])
}

func (v Vector) String() string {
	return fmt.Sprintf("vector(%g, %g, %g)", v[0], v[1], v[2])
}

// Compare two floats using a fixed tolerance.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < floatCmpEpsilon
}

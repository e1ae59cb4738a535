package types

import "math"

// A rotation quaternion. Used to build rotations about arbitrary axes.
type Quat struct {
	V Vector
	W float64
}

// Create identity quaternion.
func QuatIdent() Quat {
	return Quat{W: 1}
}

// Create a quaternion rotating by angle radians about axis. The axis is
// expected to be normalized.
func QuatFromAxisAngle(axis Vector, angle float64) Quat {
	sin, cos := math.Sincos(angle * 0.5)
	return Quat{
		V: axis.Mul(sin),
		W: cos,
	}
}

// Get quaternion norm.
func (q Quat) Len() float64 {
	return math.Sqrt(q.W*q.W + q.V.Dot(q.V))
}

// Normalize to a unit quaternion. A zero quaternion normalizes to identity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdent()
	}
	if math.Abs(1-l) < floatCmpEpsilon {
		return q
	}
	return Quat{V: q.V.Div(l), W: q.W / l}
}

// Get the homogeneous rotation matrix for this quaternion.
func (q Quat) Mat4() Mat4 {
	w, x, y, z := q.W, q.V[0], q.V[1], q.V[2]
	return Mat4{
		1 - 2*y*y - 2*z*z, 2*x*y - 2*w*z, 2*x*z + 2*w*y, 0,
		2*x*y + 2*w*z, 1 - 2*x*x - 2*z*z, 2*y*z - 2*w*x, 0,
		2*x*z - 2*w*y, 2*y*z + 2*w*x, 1 - 2*x*x - 2*y*y, 0,
		0, 0, 0, 1,
	}
}

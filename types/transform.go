package types

import "math"

// Create a translation matrix.
func Translation(x, y, z float64) Mat4 {
	return Mat4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// Create a scaling matrix.
func Scaling(x, y, z float64) Mat4 {
	return Mat4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// Create a rotation matrix about the x axis. Angle is in radians.
func RotationX(r float64) Mat4 {
	sin, cos := math.Sincos(r)
	return Mat4{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
}

// Create a rotation matrix about the y axis. Angle is in radians.
func RotationY(r float64) Mat4 {
	sin, cos := math.Sincos(r)
	return Mat4{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// Create a rotation matrix about the z axis. Angle is in radians.
func RotationZ(r float64) Mat4 {
	sin, cos := math.Sincos(r)
	return Mat4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Create a rotation matrix about an arbitrary axis. Angle is in radians.
func Rotation(axis Vector, r float64) Mat4 {
	return QuatFromAxisAngle(axis.Normalize(), r).Mat4()
}

// Create a shearing matrix; xy is the amount x moves in proportion to y
// and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Mat4 {
	return Mat4{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	}
}

// Create a view transformation matrix for an eye at from looking at to.
// The up vector does not need to be normalized or exactly perpendicular.
func ViewTransform(from, to Point, up Vector) Mat4 {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Mat4{
		left[0], left[1], left[2], 0,
		trueUp[0], trueUp[1], trueUp[2], 0,
		-forward[0], -forward[1], -forward[2], 0,
		0, 0, 0, 1,
	}
	return orientation.Mul4(Translation(-from[0], -from[1], -from[2]))
}

// Convert degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

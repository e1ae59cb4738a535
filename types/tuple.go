package types

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// A homogeneous coordinate. Points have w = 1 and vectors have w = 0; any
// w above 0.5 is treated as a point.
type Tuple f64.Vec4

// Define a 4 component tuple.
func XYZW(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

func (t Tuple) IsPoint() bool {
	return t[3] > 0.5
}

func (t Tuple) IsVector() bool {
	return !t.IsPoint()
}

// Add two tuples. Adding two points has no meaning and panics.
func (t Tuple) Add(t2 Tuple) Tuple {
	if t.IsPoint() && t2.IsPoint() {
		panic(fmt.Errorf("%w: cannot add two points", ErrDegenerateOperation))
	}
	return Tuple{t[0] + t2[0], t[1] + t2[1], t[2] + t2[2], t[3] + t2[3]}
}

// Subtract a tuple.
func (t Tuple) Sub(t2 Tuple) Tuple {
	return Tuple{t[0] - t2[0], t[1] - t2[1], t[2] - t2[2], t[3] - t2[3]}
}

// Negate tuple components; w is preserved.
func (t Tuple) Neg() Tuple {
	return Tuple{-t[0], -t[1], -t[2], t[3]}
}

// Multiply xyz components with a scalar; w is preserved.
func (t Tuple) Mul(s float64) Tuple {
	return Tuple{t[0] * s, t[1] * s, t[2] * s, t[3]}
}

// Reduce to a point. Panics if the tuple is a vector.
func (t Tuple) Point() Point {
	if !t.IsPoint() {
		panic(fmt.Errorf("%w: tuple %v is not a point", ErrDegenerateOperation, [4]float64(t)))
	}
	return Point{t[0], t[1], t[2]}
}

// Reduce to a vector. Panics if the tuple is a point.
func (t Tuple) Vector() Vector {
	if t.IsPoint() {
		panic(fmt.Errorf("%w: tuple %v is not a vector", ErrDegenerateOperation, [4]float64(t)))
	}
	return Vector{t[0], t[1], t[2]}
}

// Compare two tuples using a fixed tolerance.
func (t Tuple) ApproxEqual(t2 Tuple) bool {
	for i := range t {
		if !FloatEqual(t[i], t2[i]) {
			return false
		}
	}
	return true
}

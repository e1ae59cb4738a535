package types

import "fmt"

// A ray with an origin and a direction. The direction is not required to
// be unit length.
type Ray struct {
	Origin Point
	Dir    Vector
}

func NewRay(origin Point, dir Vector) Ray {
	return Ray{Origin: origin, Dir: dir}
}

// Get the point at distance t along the ray.
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Apply a transformation matrix to the ray.
func (r Ray) Transform(m Mat4) Ray {
	return Ray{
		Origin: m.MulPoint(r.Origin),
		Dir:    m.MulVec(r.Dir),
	}
}

func (r Ray) String() string {
	return fmt.Sprintf("ray(%v -> %v)", r.Origin, r.Dir)
}

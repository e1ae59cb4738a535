package scene

import (
	"math"

	"github.com/achilleasa/sunhouse/types"
)

// A unit sphere centered at the object-space origin.
type Sphere struct {
	shape
}

// Create a unit sphere with an identity transform and the default material.
func NewSphere() *Sphere {
	return &Sphere{shape: newShape()}
}

func (s *Sphere) Intersect(r types.Ray) Intersections {
	return s.intersect(s, r, s.localIntersect)
}

func (s *Sphere) NormalAt(p types.Point) types.Vector {
	return s.normalAt(p, s.localNormalAt)
}

// Solve |O + tD|^2 = 1. Both roots are returned, even if they are negative
// or equal.
func (s *Sphere) localIntersect(r types.Ray) []float64 {
	sphereToRay := r.Origin.Sub(types.Point{})

	a := r.Dir.Dot(r.Dir)
	b := 2 * r.Dir.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []float64{t1, t2}
}

func (s *Sphere) localNormalAt(p types.Point) types.Vector {
	return p.Sub(types.Point{})
}

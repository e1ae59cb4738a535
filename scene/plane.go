package scene

import (
	"math"

	"github.com/achilleasa/sunhouse/types"
)

// An infinite plane spanning the object-space xz axes with normal (0, 1, 0).
type Plane struct {
	shape
}

// Create a plane with an identity transform and the default material.
func NewPlane() *Plane {
	return &Plane{shape: newShape()}
}

func (pl *Plane) Intersect(r types.Ray) Intersections {
	return pl.intersect(pl, r, pl.localIntersect)
}

func (pl *Plane) NormalAt(p types.Point) types.Vector {
	return pl.normalAt(p, pl.localNormalAt)
}

func (pl *Plane) localIntersect(r types.Ray) []float64 {
	// Parallel or coplanar rays never hit.
	if math.Abs(r.Dir.Y()) < types.Epsilon {
		return nil
	}
	return []float64{-r.Origin.Y() / r.Dir.Y()}
}

func (pl *Plane) localNormalAt(types.Point) types.Vector {
	return types.Vec(0, 1, 0)
}

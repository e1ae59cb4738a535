package scene

import "github.com/achilleasa/sunhouse/types"

// Comps holds the precomputed state required for shading an intersection.
type Comps struct {
	T      float64
	Object Object

	// World-space hit point.
	Point types.Point

	// Unit vector pointing towards the eye.
	EyeV types.Vector

	// Surface normal, flipped to face the eye when the ray starts inside
	// the object.
	NormalV types.Vector

	Inside bool

	// The hit point nudged along the normal by types.Epsilon. Shadow rays
	// start here so they do not intersect the surface they leave.
	OverPoint types.Point
}

// Prepare shading computations for an intersection along ray r.
func PrepareComputations(hit Intersection, r types.Ray) Comps {
	c := Comps{
		T:      hit.T,
		Object: hit.Object,
		Point:  r.Position(hit.T),
		EyeV:   r.Dir.Neg().Normalize(),
	}

	c.NormalV = hit.Object.NormalAt(c.Point)
	if c.NormalV.Dot(c.EyeV) < 0 {
		c.Inside = true
		c.NormalV = c.NormalV.Neg()
	}
	c.OverPoint = c.Point.Add(c.NormalV.Mul(types.Epsilon))

	return c
}

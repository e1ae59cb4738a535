package scene

import "github.com/achilleasa/sunhouse/types"

// A World holds the objects and lights of a scene. Objects and lights are
// evaluated in insertion order.
type World struct {
	Objects []Object
	Lights  []PointLight
}

// Create an empty world.
func NewWorld() *World {
	return &World{
		Objects: make([]Object, 0),
		Lights:  make([]PointLight, 0),
	}
}

// Create a world with two concentric spheres lit by a white light at
// (-10, 10, -10). The outer sphere has unit radius and the inner one is
// scaled by 0.5.
func DefaultWorld() *World {
	w := NewWorld()

	outer := NewSphere()
	mat := DefaultMaterial()
	mat.Color = types.RGB(0.8, 1.0, 0.6)
	mat.Diffuse = 0.7
	mat.Specular = 0.2
	outer.SetMaterial(mat)

	inner := NewSphere()
	if err := inner.SetTransform(types.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}

	w.Objects = append(w.Objects, outer, inner)
	w.AddLight(NewPointLight(types.Pt(-10, 10, -10), types.White))
	return w
}

// Add an object to the world.
func (w *World) AddObject(obj Object) error {
	if obj == nil {
		return ErrNilObject
	}
	for _, o := range w.Objects {
		if o == obj {
			return ErrDuplicateObject
		}
	}
	w.Objects = append(w.Objects, obj)
	return nil
}

// Add a light to the world.
func (w *World) AddLight(light PointLight) {
	w.Lights = append(w.Lights, light)
}

// Intersect a ray with every object in the world. The returned list is
// sorted by ascending t.
func (w *World) Intersect(r types.Ray) Intersections {
	var xs Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(r)...)
	}
	xs.Sort()
	return xs
}

// Check whether any object lies between point and the light.
func (w *World) IsShadowedBy(point types.Point, light PointLight) bool {
	v := light.Position.Sub(point)
	distance := v.Len()

	hit, ok := w.Intersect(types.NewRay(point, v.Normalize())).Hit()
	return ok && hit.T < distance
}

// Check whether point is occluded from the first light. A world without
// lights casts no shadows.
func (w *World) IsShadowed(point types.Point) bool {
	if len(w.Lights) == 0 {
		return false
	}
	return w.IsShadowedBy(point, w.Lights[0])
}

// Shade a prepared intersection by summing the contribution of each light.
// Every light is tested for occlusion independently.
func (w *World) ShadeHit(c Comps) types.Color {
	mat := c.Object.Material()

	col := types.Black
	for _, light := range w.Lights {
		inShadow := w.IsShadowedBy(c.OverPoint, light)
		col = col.Add(mat.Lighting(light, c.Point, c.EyeV, c.NormalV, inShadow))
	}
	return col
}

// Get the color seen along a ray. Rays that hit nothing yield black.
func (w *World) ColorAt(r types.Ray) types.Color {
	hit, ok := w.Intersect(r).Hit()
	if !ok {
		return types.Black
	}
	return w.ShadeHit(PrepareComputations(hit, r))
}

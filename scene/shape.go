package scene

import "github.com/achilleasa/sunhouse/types"

// The Object interface is implemented by all shapes that can be placed in a
// World. Intersections and normals are computed in object space and mapped
// back to world space using the object transform.
type Object interface {
	// Intersect a world-space ray with the object.
	Intersect(r types.Ray) Intersections

	// Get the world-space surface normal at a world-space point.
	NormalAt(p types.Point) types.Vector

	// Get the object to world transformation.
	Transform() types.Mat4

	// Set the object to world transformation. Returns types.ErrSingularMatrix
	// if the matrix cannot be inverted; in that case the object is not
	// modified.
	SetTransform(m types.Mat4) error

	Material() Material
	SetMaterial(m Material)

	// The parent is a non-owning back-reference reserved for grouping.
	Parent() Object
	SetParent(parent Object)
}

// The shape type implements the transform, material and parent bookkeeping
// shared by all Object implementations.
type shape struct {
	transform    types.Mat4
	invTransform types.Mat4

	// Inverse transpose used for mapping normals to world space.
	normalMat types.Mat4

	material Material
	parent   Object
}

func newShape() shape {
	return shape{
		transform:    types.Ident4(),
		invTransform: types.Ident4(),
		normalMat:    types.Ident4(),
		material:     DefaultMaterial(),
	}
}

func (s *shape) Transform() types.Mat4 {
	return s.transform
}

func (s *shape) SetTransform(m types.Mat4) error {
	inv, err := m.Inv()
	if err != nil {
		return err
	}

	s.transform = m
	s.invTransform = inv
	s.normalMat = inv.Transpose()
	return nil
}

func (s *shape) Material() Material {
	return s.material
}

func (s *shape) SetMaterial(m Material) {
	s.material = m
}

func (s *shape) Parent() Object {
	return s.parent
}

func (s *shape) SetParent(parent Object) {
	s.parent = parent
}

// Map a world-space ray into object space, run the local intersection
// test and wrap the resulting distances into intersections with obj.
func (s *shape) intersect(obj Object, r types.Ray, localIntersect func(types.Ray) []float64) Intersections {
	ts := localIntersect(r.Transform(s.invTransform))
	if len(ts) == 0 {
		return nil
	}

	xs := make(Intersections, len(ts))
	for idx, t := range ts {
		xs[idx] = Intersection{T: t, Object: obj}
	}
	return xs
}

// Map a world-space point into object space, evaluate the local normal and
// map it back using the inverse transpose of the object transform.
func (s *shape) normalAt(p types.Point, localNormalAt func(types.Point) types.Vector) types.Vector {
	localNormal := localNormalAt(s.invTransform.MulPoint(p))

	// MulVec drops w so translation components of the inverse transpose
	// do not leak into the normal.
	return s.normalMat.MulVec(localNormal).Normalize()
}

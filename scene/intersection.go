package scene

import (
	"fmt"
	"sort"
)

// An Intersection records the distance along a ray at which it crosses the
// surface of an object.
type Intersection struct {
	T      float64
	Object Object
}

func (i Intersection) String() string {
	return fmt.Sprintf("intersection(t: %g, object: %T)", i.T, i.Object)
}

// A list of intersections.
type Intersections []Intersection

// Build an intersection list sorted by ascending t.
func NewIntersections(xs ...Intersection) Intersections {
	out := make(Intersections, len(xs))
	copy(out, xs)
	out.Sort()
	return out
}

// Sort intersections by ascending t. Intersections with equal t keep their
// relative order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Get the intersection with the smallest non-negative t. The list does not
// need to be sorted. Returns false if no such intersection exists.
func (xs Intersections) Hit() (Intersection, bool) {
	var (
		hit   Intersection
		found bool
	)
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

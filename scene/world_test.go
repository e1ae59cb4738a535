package scene

import (
	"testing"

	"github.com/achilleasa/sunhouse/types"
)

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()
	if len(w.Objects) != 2 {
		t.Fatalf("expected default world to contain 2 objects; got %d", len(w.Objects))
	}
	if len(w.Lights) != 1 {
		t.Fatalf("expected default world to contain 1 light; got %d", len(w.Lights))
	}
	if exp := NewPointLight(types.Pt(-10, 10, -10), types.White); w.Lights[0] != exp {
		t.Fatalf("expected light %v; got %v", exp, w.Lights[0])
	}
	if exp := types.RGB(0.8, 1.0, 0.6); w.Objects[0].Material().Color != exp {
		t.Fatalf("expected outer sphere color %v; got %v", exp, w.Objects[0].Material().Color)
	}
	if exp := types.Scaling(0.5, 0.5, 0.5); w.Objects[1].Transform() != exp {
		t.Fatalf("expected inner sphere transform\n%s; got\n%s", exp, w.Objects[1].Transform())
	}
}

func TestAddObject(t *testing.T) {
	w := NewWorld()
	s := NewSphere()
	if err := w.AddObject(s); err != nil {
		t.Fatal(err)
	}
	if err := w.AddObject(s); err != ErrDuplicateObject {
		t.Fatalf("expected to get ErrDuplicateObject; got %v", err)
	}
	if err := w.AddObject(nil); err != ErrNilObject {
		t.Fatalf("expected to get ErrNilObject; got %v", err)
	}
	if len(w.Objects) != 1 {
		t.Fatalf("expected world to contain 1 object; got %d", len(w.Objects))
	}
}

func TestWorldIntersect(t *testing.T) {
	w := DefaultWorld()
	xs := w.Intersect(types.NewRay(types.Pt(0, 0, -5), types.Vec(0, 0, 1)))

	exp := []float64{4, 4.5, 5.5, 6}
	if len(xs) != len(exp) {
		t.Fatalf("expected %d intersections; got %d", len(exp), len(xs))
	}
	for idx, x := range xs {
		if !types.FloatEqual(x.T, exp[idx]) {
			t.Fatalf("expected intersection %d at t=%f; got %f", idx, exp[idx], x.T)
		}
	}
}

func TestShadeHit(t *testing.T) {
	w := DefaultWorld()

	// Outside
	r := types.NewRay(types.Pt(0, 0, -5), types.Vec(0, 0, 1))
	c := PrepareComputations(Intersection{T: 4, Object: w.Objects[0]}, r)
	if got, exp := w.ShadeHit(c), types.RGB(0.38066, 0.47583, 0.2855); !got.ApproxEqual(exp) {
		t.Fatalf("expected color %v; got %v", exp, got)
	}

	// Inside
	w.Lights[0] = NewPointLight(types.Pt(0, 0.25, 0), types.White)
	r = types.NewRay(types.Pt(0, 0, 0), types.Vec(0, 0, 1))
	c = PrepareComputations(Intersection{T: 0.5, Object: w.Objects[1]}, r)
	if got, exp := w.ShadeHit(c), types.RGB(0.90498, 0.90498, 0.90498); !got.ApproxEqual(exp) {
		t.Fatalf("expected color %v; got %v", exp, got)
	}
}

func TestShadeHitInShadow(t *testing.T) {
	w := NewWorld()
	w.AddLight(NewPointLight(types.Pt(0, 0, -10), types.White))

	s1 := NewSphere()
	s2 := NewSphere()
	if err := s2.SetTransform(types.Translation(0, 0, 10)); err != nil {
		t.Fatal(err)
	}
	for _, s := range []Object{s1, s2} {
		if err := w.AddObject(s); err != nil {
			t.Fatal(err)
		}
	}

	r := types.NewRay(types.Pt(0, 0, 5), types.Vec(0, 0, 1))
	c := PrepareComputations(Intersection{T: 4, Object: s2}, r)
	if got, exp := w.ShadeHit(c), types.RGB(0.1, 0.1, 0.1); !got.ApproxEqual(exp) {
		t.Fatalf("expected color %v; got %v", exp, got)
	}
}

func TestShadeHitMultipleLights(t *testing.T) {
	w := DefaultWorld()
	r := types.NewRay(types.Pt(0, 0, -5), types.Vec(0, 0, 1))
	c := PrepareComputations(Intersection{T: 4, Object: w.Objects[0]}, r)
	single := w.ShadeHit(c)

	// A second identical light doubles the contribution
	w.AddLight(w.Lights[0])
	if got, exp := w.ShadeHit(c), single.Mul(2); !got.ApproxEqual(exp) {
		t.Fatalf("expected color %v; got %v", exp, got)
	}

	// A light occluded by the outer sphere only adds ambient
	w = DefaultWorld()
	w.AddLight(NewPointLight(types.Pt(0, 0, 10), types.White))
	ambient := w.Objects[0].Material().Color.Mul(0.1)
	if got, exp := w.ShadeHit(c), single.Add(ambient); !got.ApproxEqual(exp) {
		t.Fatalf("expected color %v; got %v", exp, got)
	}
}

func TestColorAt(t *testing.T) {
	w := DefaultWorld()

	// Miss
	if got := w.ColorAt(types.NewRay(types.Pt(0, 0, -5), types.Vec(0, 1, 0))); got != types.Black {
		t.Fatalf("expected black; got %v", got)
	}

	// Hit
	got := w.ColorAt(types.NewRay(types.Pt(0, 0, -5), types.Vec(0, 0, 1)))
	if exp := types.RGB(0.38066, 0.47583, 0.2855); !got.ApproxEqual(exp) {
		t.Fatalf("expected color %v; got %v", exp, got)
	}

	// The color does not depend on the length of the ray direction
	if scaled := w.ColorAt(types.NewRay(types.Pt(0, 0, -5), types.Vec(0, 0, 2))); !scaled.ApproxEqual(got) {
		t.Fatalf("expected scaled ray direction to yield %v; got %v", got, scaled)
	}

	// Intersection behind the ray
	outer, inner := w.Objects[0], w.Objects[1]
	for _, obj := range []Object{outer, inner} {
		m := obj.Material()
		m.Ambient = 1
		obj.SetMaterial(m)
	}
	got = w.ColorAt(types.NewRay(types.Pt(0, 0, 0.75), types.Vec(0, 0, -1)))
	if exp := inner.Material().Color; !got.ApproxEqual(exp) {
		t.Fatalf("expected inner sphere color %v; got %v", exp, got)
	}
}

func TestIsShadowed(t *testing.T) {
	type spec struct {
		point types.Point
		exp   bool
	}
	specs := []spec{
		// Nothing collinear with point and light
		{types.Pt(0, 10, 0), false},
		// Object between point and light
		{types.Pt(10, -10, 10), true},
		// Object behind the light
		{types.Pt(-20, 20, -20), false},
		// Object behind the point
		{types.Pt(-2, 2, -2), false},
	}

	w := DefaultWorld()
	for idx, s := range specs {
		if got := w.IsShadowed(s.point); got != s.exp {
			t.Fatalf("[spec %d] expected IsShadowed(%v) to be %t; got %t", idx, s.point, s.exp, got)
		}
		if got := w.IsShadowedBy(s.point, w.Lights[0]); got != s.exp {
			t.Fatalf("[spec %d] expected IsShadowedBy(%v) to be %t; got %t", idx, s.point, s.exp, got)
		}
	}

	if NewWorld().IsShadowed(types.Pt(0, 0, 0)) {
		t.Fatal("expected a world without lights to cast no shadows")
	}
}

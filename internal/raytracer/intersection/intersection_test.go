package intersection

import (
	"math"
	"testing"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/material"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// stubObject is a minimal Hittable for intersection-package tests, standing
// in for object.Object without pulling in that package (which itself
// depends on intersection).
type stubObject struct {
	material material.Material
	shadow   bool
	normal   vecmath.Tuple
}

func (s *stubObject) NormalAt(vecmath.Tuple, float64, float64) vecmath.Tuple { return s.normal }
func (s *stubObject) Material() material.Material                           { return s.material }
func (s *stubObject) CastsShadow() bool                                     { return s.shadow }

func sphereAt(refIndex float64) *stubObject {
	m := material.Default()
	m.RefractiveIndex = refIndex
	return &stubObject{material: m, shadow: true, normal: vecmath.Vector(0, 0, -1)}
}

func TestSortAndHit(t *testing.T) {
	a, b, c, d := sphereAt(1), sphereAt(1), sphereAt(1), sphereAt(1)
	xs := Intersections{
		{T: 5, Object: a}, {T: 7, Object: b}, {T: -3, Object: c}, {T: 2, Object: d},
	}.Sort()

	if xs[0].T != -3 || xs[1].T != 2 || xs[2].T != 5 || xs[3].T != 7 {
		t.Fatalf("not sorted ascending: %v", xs)
	}
	hit, ok := xs.Hit(StandardHit)
	if !ok || hit.T != 2 {
		t.Fatalf("expected hit at t=2, got %v ok=%v", hit, ok)
	}
}

func TestHitAllNegative(t *testing.T) {
	a, b := sphereAt(1), sphereAt(1)
	xs := Intersections{{T: -2, Object: a}, {T: -1, Object: b}}
	if _, ok := xs.Hit(StandardHit); ok {
		t.Error("expected no hit when every t is negative")
	}
}

func TestRefractiveIndexStack(t *testing.T) {
	a := sphereAt(1.5)
	b := sphereAt(2.0)
	c := sphereAt(2.5)

	xs := Intersections{
		{T: 2, Object: a}, {T: 2.75, Object: b}, {T: 3.25, Object: c},
		{T: 4.75, Object: b}, {T: 5.25, Object: c}, {T: 6, Object: a},
	}

	cases := []struct {
		index  int
		n1, n2 float64
	}{
		{0, 1.0, 1.5},
		{1, 1.5, 2.0},
		{2, 2.0, 2.5},
		{3, 2.5, 2.5},
		{4, 2.5, 1.5},
		{5, 1.5, 1.0},
	}
	for _, c := range cases {
		n1, n2 := refractiveIndices(xs, c.index)
		if math.Abs(n1-c.n1) > 1e-9 || math.Abs(n2-c.n2) > 1e-9 {
			t.Errorf("index %d: n1=%v n2=%v, want n1=%v n2=%v", c.index, n1, n2, c.n1, c.n2)
		}
	}
}

func TestPrepareComputationsOverUnderPoint(t *testing.T) {
	o := &stubObject{material: material.Default(), shadow: true, normal: vecmath.Vector(0, 0, -1)}
	r := ray.New(vecmath.Point(0, 0, -5), vecmath.Vector(0, 0, 1))
	xs := Intersections{{T: 5, Object: o}}

	info := PrepareComputations(xs, 0, r)
	if !(info.OverPoint.Z < -vecmath.Epsilon/2) {
		t.Errorf("over point should be above the surface (toward -z): %v", info.OverPoint)
	}
	if !(info.UnderPoint.Z > info.Point.Z) {
		t.Errorf("under point should be below the surface (toward +z): %v", info.UnderPoint)
	}
}

func TestSchlickPerpendicular(t *testing.T) {
	info := Info{Eyev: vecmath.Vector(0, 1, 0), Normalv: vecmath.Vector(0, 1, 0), N1: 1, N2: 1.5}
	got := Schlick(info)
	if math.Abs(got-0.04) > 1e-2 {
		t.Errorf("schlick at perpendicular incidence = %v, want ~0.04", got)
	}
}

func TestSchlickTotalInternalReflection(t *testing.T) {
	// Grazing incidence (eyev orthogonal to normalv) with n1 > n2 drives
	// sin2t past 1, the total-internal-reflection boundary case.
	info := Info{Eyev: vecmath.Vector(1, 0, 0), Normalv: vecmath.Vector(0, 1, 0), N1: 1.5, N2: 1.0}
	if got := Schlick(info); got != 1.0 {
		t.Errorf("schlick under TIR = %v, want 1.0", got)
	}
}

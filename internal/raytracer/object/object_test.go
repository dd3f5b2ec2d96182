package object

import (
	"math"
	"testing"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/material"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/pattern"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/shape"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// TestS5PatternInObjectAndPatternSpace is spec.md S5: a sphere scaled by 2
// with a Test pattern additionally translated by (0.5,1,1.5), queried at a
// world point, exercises both stages of the object->pattern space mapping.
func TestS5PatternInObjectAndPatternSpace(t *testing.T) {
	o := New(shape.NewSphere())
	o.SetTransform(vecmath.NewTransform().Scale(2, 2, 2))
	m := material.Default()
	p := pattern.NewPatternObject(pattern.Test())
	p.Transform = vecmath.NewTransform().Translate(0.5, 1, 1.5)
	m.Pattern = p
	o.SetMaterial(m)

	got := o.ColorAt(vecmath.Point(2.5, 3, 3.5))
	want := [3]float64{0.75, 0.5, 0.25}
	if math.Abs(got.R-want[0]) > 1e-9 || math.Abs(got.G-want[1]) > 1e-9 || math.Abs(got.B-want[2]) > 1e-9 {
		t.Errorf("S5 color = %v, want %v", got, want)
	}
}

func TestSphereIntersectThroughTransform(t *testing.T) {
	o := New(shape.NewSphere())
	o.SetTransform(vecmath.NewTransform().Scale(2, 2, 2))

	r := ray.New(vecmath.Point(0, 0, -5), vecmath.Vector(0, 0, 1))
	xs := o.Intersect(r)
	if len(xs) != 2 || math.Abs(xs[0].T-3) > 1e-9 || math.Abs(xs[1].T-7) > 1e-9 {
		t.Fatalf("scaled sphere intersect = %v, want [3,7]", xs)
	}
}

func TestNormalAtOnTranslatedSphere(t *testing.T) {
	o := New(shape.NewSphere())
	o.SetTransform(vecmath.NewTransform().Translate(0, 1, 0))

	n := o.NormalAt(vecmath.Point(0, 1.70711, -0.70711), 0, 0)
	want := vecmath.Vector(0, 0.70711, -0.70711)
	if !n.Equal(want) {
		t.Errorf("normal = %v, want %v", n, want)
	}
}

func TestGroupBoundsUnion(t *testing.T) {
	root := NewGroup()
	s1 := New(shape.NewSphere())
	s1.SetTransform(vecmath.NewTransform().Translate(2, 5, -3))
	s2 := New(shape.NewSphere())
	s2.SetTransform(vecmath.NewTransform().Translate(-4, -1, 4).Scale(2, 2, 2))
	root.AddChild(s1)
	root.AddChild(s2)

	box := root.WorldBounds()
	if !box.Min.Equal(vecmath.Point(-10, -4, -4)) || !box.Max.Equal(vecmath.Point(3, 6, 10)) {
		t.Errorf("unexpected group bounds: %+v", box)
	}
}

func TestGroupIntersectSkipsMissedBox(t *testing.T) {
	root := NewGroup()
	s := New(shape.NewSphere())
	root.AddChild(s)

	r := ray.New(vecmath.Point(0, 0, -5), vecmath.Vector(0, 1, 0))
	if xs := root.Intersect(r); xs != nil {
		t.Errorf("ray missing the group's box should yield no intersections, got %v", xs)
	}

	hit := ray.New(vecmath.Point(0, 0, -5), vecmath.Vector(0, 0, 1))
	if xs := root.Intersect(hit); len(xs) != 2 {
		t.Errorf("ray through the sphere should yield two intersections, got %v", xs)
	}
}

func TestDivideBucketsByLongestAxis(t *testing.T) {
	root := NewGroup()
	left := New(shape.NewSphere())
	left.SetTransform(vecmath.NewTransform().Translate(-2, 0, 0))
	right := New(shape.NewSphere())
	right.SetTransform(vecmath.NewTransform().Translate(2, 0, 0))
	middle := New(shape.NewSphere())

	root.AddChild(left)
	root.AddChild(right)
	root.AddChild(middle)

	Divide(root, 1)

	g := root.Group()
	if len(g.Children) != 3 {
		t.Fatalf("expected the straddling sphere plus two sub-groups, got %d children", len(g.Children))
	}

	foundSubgroups := 0
	for _, c := range g.Children {
		if c.IsGroup() {
			foundSubgroups++
			if len(c.Group().Children) != 1 {
				t.Errorf("expected each split sub-group to hold exactly one sphere, got %d", len(c.Group().Children))
			}
		}
	}
	if foundSubgroups != 2 {
		t.Errorf("expected 2 sub-groups from the split, got %d", foundSubgroups)
	}
}

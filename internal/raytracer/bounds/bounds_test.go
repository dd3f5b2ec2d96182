package bounds

import (
	"testing"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

func TestEmptyBoxAddPoint(t *testing.T) {
	b := Empty().AddPoint(vecmath.Point(-5, 2, 0)).AddPoint(vecmath.Point(7, 0, -3))
	if !b.Min.Equal(vecmath.Point(-5, 0, -3)) || !b.Max.Equal(vecmath.Point(7, 2, 0)) {
		t.Errorf("unexpected box: %+v", b)
	}
}

func TestMerge(t *testing.T) {
	a := New(vecmath.Point(-5, -2, 0), vecmath.Point(7, 4, 4))
	b := New(vecmath.Point(8, -7, -2), vecmath.Point(14, 2, 8))
	m := a.Merge(b)
	if !m.Min.Equal(vecmath.Point(-5, -7, -2)) || !m.Max.Equal(vecmath.Point(14, 4, 8)) {
		t.Errorf("unexpected merge: %+v", m)
	}
}

func TestContainsPoint(t *testing.T) {
	b := New(vecmath.Point(5, -2, 0), vecmath.Point(11, 4, 7))
	inside := vecmath.Point(5, -2, 0)
	outside := vecmath.Point(11.1, 4, 7)
	if !b.ContainsPoint(inside) {
		t.Error("boundary point should be contained")
	}
	if b.ContainsPoint(outside) {
		t.Error("point outside box should not be contained")
	}
}

func TestContainsBox(t *testing.T) {
	outer := New(vecmath.Point(5, -2, 0), vecmath.Point(11, 4, 7))
	inner := New(vecmath.Point(6, -1, 1), vecmath.Point(10, 3, 6))
	if !outer.ContainsBox(inner) {
		t.Error("inner box should be contained")
	}
	disjoint := New(vecmath.Point(3, -1, 1), vecmath.Point(4, 3, 6))
	if outer.ContainsBox(disjoint) {
		t.Error("disjoint box should not be contained")
	}
}

func TestIntersectsRay(t *testing.T) {
	b := New(vecmath.Point(-1, -1, -1), vecmath.Point(1, 1, 1))
	cases := []struct {
		origin, direction vecmath.Tuple
		want              bool
	}{
		{vecmath.Point(5, 0.5, 0), vecmath.Vector(-1, 0, 0), true},
		{vecmath.Point(-5, 0.5, 0), vecmath.Vector(1, 0, 0), true},
		{vecmath.Point(0.5, 5, 0), vecmath.Vector(0, -1, 0), true},
		{vecmath.Point(1.5, 0, 0), vecmath.Vector(-1, 0, 0), true},
		{vecmath.Point(-2, 0, 0), vecmath.Vector(2, 4, 6), false},
		{vecmath.Point(0, -2, 0), vecmath.Vector(6, 2, 4), false},
	}
	for _, c := range cases {
		r := ray.New(c.origin, c.direction.Normalize())
		if got := b.Intersects(r); got != c.want {
			t.Errorf("Intersects(origin=%v dir=%v) = %v, want %v", c.origin, c.direction, got, c.want)
		}
	}
}

func TestSplitLongestAxis(t *testing.T) {
	b := New(vecmath.Point(-1, -4, -5), vecmath.Point(9, 6, 5))
	left, right := b.Split()
	if !left.Min.Equal(vecmath.Point(-1, -4, -5)) || !left.Max.Equal(vecmath.Point(4, 6, 5)) {
		t.Errorf("unexpected left half: %+v", left)
	}
	if !right.Min.Equal(vecmath.Point(4, -4, -5)) || !right.Max.Equal(vecmath.Point(9, 6, 5)) {
		t.Errorf("unexpected right half: %+v", right)
	}
}

package ray

import (
	"testing"

	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

func TestAt(t *testing.T) {
	r := New(vecmath.Point(2, 3, 4), vecmath.Vector(1, 0, 0))
	cases := []struct {
		t    float64
		want vecmath.Tuple
	}{
		{0, vecmath.Point(2, 3, 4)},
		{1, vecmath.Point(3, 3, 4)},
		{-1, vecmath.Point(1, 3, 4)},
		{2.5, vecmath.Point(4.5, 3, 4)},
	}
	for _, c := range cases {
		if got := r.At(c.t); !got.Equal(c.want) {
			t.Errorf("At(%v) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestTranslate(t *testing.T) {
	r := New(vecmath.Point(1, 2, 3), vecmath.Vector(0, 1, 0))
	m := vecmath.Translation(3, 4, 5)
	r2 := r.Transform(m)
	if !r2.Origin.Equal(vecmath.Point(4, 6, 8)) {
		t.Error("origin should translate as a point")
	}
	if !r2.Direction.Equal(vecmath.Vector(0, 1, 0)) {
		t.Error("direction should be unaffected by translation")
	}
}

func TestScale(t *testing.T) {
	r := New(vecmath.Point(1, 2, 3), vecmath.Vector(0, 1, 0))
	m := vecmath.ScalingXYZ(2, 3, 4)
	r2 := r.Transform(m)
	if !r2.Origin.Equal(vecmath.Point(2, 6, 12)) {
		t.Error("origin should scale as a point")
	}
	if !r2.Direction.Equal(vecmath.Vector(0, 3, 0)) {
		t.Error("direction should scale as a vector")
	}
}

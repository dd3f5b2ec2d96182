package light

import (
	"testing"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

type neverOccluded struct{}

func (neverOccluded) IsShadowed(from, to vecmath.Tuple) bool { return false }

type alwaysOccluded struct{}

func (alwaysOccluded) IsShadowed(from, to vecmath.Tuple) bool { return true }

func TestPointLightIntensity(t *testing.T) {
	l := NewPointLight(vecmath.Point(0, 0, -10), color.White())
	if got := l.IntensityAt(vecmath.Point(0, 0, 0), neverOccluded{}); got != 1.0 {
		t.Errorf("unobstructed point light should be fully lit, got %v", got)
	}
	if got := l.IntensityAt(vecmath.Point(0, 0, 0), alwaysOccluded{}); got != 0.0 {
		t.Errorf("occluded point light should be dark, got %v", got)
	}
}

func TestAreaLightCreatesCellCenters(t *testing.T) {
	a := NewAreaLight(vecmath.Point(0, 0, 0), vecmath.Vector(2, 0, 0), vecmath.Vector(0, 0, 1), 4, 2, color.White())
	if a.samples != 8 {
		t.Fatalf("expected 8 samples, got %d", a.samples)
	}
	want := []vecmath.Tuple{
		vecmath.Point(0.25, 0, 0.25),
		vecmath.Point(0.75, 0, 0.25),
		vecmath.Point(1.25, 0, 0.25),
		vecmath.Point(1.75, 0, 0.25),
		vecmath.Point(0.25, 0, 0.75),
		vecmath.Point(0.75, 0, 0.75),
		vecmath.Point(1.25, 0, 0.75),
		vecmath.Point(1.75, 0, 0.75),
	}
	for i, w := range want {
		if !a.cellCenters[i].Equal(w) {
			t.Errorf("cell %d = %v, want %v", i, a.cellCenters[i], w)
		}
	}
}

func TestAreaLightFullyLitWhenUnobstructed(t *testing.T) {
	a := NewAreaLight(vecmath.Point(-0.5, -0.5, -5), vecmath.Vector(1, 0, 0), vecmath.Vector(0, 1, 0), 2, 2, color.White())
	if got := a.IntensityAt(vecmath.Point(0, 0, 2), neverOccluded{}); got != 1.0 {
		t.Errorf("unobstructed area light should be fully lit, got %v", got)
	}
	if got := a.IntensityAt(vecmath.Point(0, 0, 2), alwaysOccluded{}); got != 0.0 {
		t.Errorf("fully occluded area light should be dark, got %v", got)
	}
}

func TestAreaLightPositionIsCenter(t *testing.T) {
	a := NewAreaLight(vecmath.Point(-0.5, -0.5, -5), vecmath.Vector(1, 0, 0), vecmath.Vector(0, 1, 0), 2, 2, color.White())
	if !a.Position().Equal(vecmath.Point(0, 0, -5)) {
		t.Errorf("area light center = %v, want (0,0,-5)", a.Position())
	}
}

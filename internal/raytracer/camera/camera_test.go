package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/light"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

func TestPixelSizeHorizontalCanvas(t *testing.T) {
	c := New(200, 125, math.Pi/2)
	require.InDelta(t, 0.01, c.pixelSize, 1e-5)
}

func TestPixelSizeVerticalCanvas(t *testing.T) {
	c := New(125, 200, math.Pi/2)
	require.InDelta(t, 0.01, c.pixelSize, 1e-5)
}

func TestRayThroughCenterOfCanvas(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	r := c.RayForPixel(100, 50, 0.5, 0.5)
	if !r.Origin.Equal(vecmath.Point(0, 0, 0)) || !r.Direction.Equal(vecmath.Vector(0, 0, -1)) {
		t.Errorf("ray = %+v", r)
	}
}

func TestRayThroughCornerOfCanvas(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	r := c.RayForPixel(0, 0, 0.5, 0.5)
	want := vecmath.Vector(0.66519, 0.33259, -0.66851)
	if !r.Origin.Equal(vecmath.Point(0, 0, 0)) || !r.Direction.Equal(want) {
		t.Errorf("ray = %+v, want dir %v", r, want)
	}
}

func TestRayWithTransformedCamera(t *testing.T) {
	c := New(201, 101, math.Pi/2)
	c.SetTransform(vecmath.NewTransform().Translate(0, -2, 5).RotateY(math.Pi / 4))
	r := c.RayForPixel(100, 50, 0.5, 0.5)
	want := vecmath.Vector(math.Sqrt2/2, 0, -math.Sqrt2/2)
	if !r.Origin.Equal(vecmath.Point(0, 2, -5)) || !r.Direction.Equal(want) {
		t.Errorf("ray = %+v, want dir %v", r, want)
	}
}

func TestRenderProducesExpectedCenterPixel(t *testing.T) {
	c := New(11, 11, math.Pi/2)
	from := vecmath.Point(0, 0, -5)
	to := vecmath.Point(0, 0, 0)
	up := vecmath.Vector(0, 1, 0)
	c.SetTransform(vecmath.TransformFromMatrix(vecmath.View(from, to, up)))

	colorAt := func(r ray.Ray, remaining int) (color.Color, bool) {
		return color.New(1, 0.5, 0), true
	}

	img := c.Render(colorAt, 1, 5, 2)
	got := img.At(5, 5)
	want := color.New(1, 0.5, 0)
	if !got.Equal(want) {
		t.Errorf("center pixel = %v, want %v", got, want)
	}
}

// TestRenderPixelConsumesJitterPerSample exercises spec.md §4.11's
// stratified-jittered sampler directly: renderPixel must draw its (dx,dy)
// offsets from the supplied light.Jitter rather than always sampling the
// cell center, so two different jitter values for the same single-sample
// pixel produce two different rays.
func TestRenderPixelConsumesJitterPerSample(t *testing.T) {
	c := New(11, 11, math.Pi/2)

	var rays []ray.Ray
	colorAt := func(r ray.Ray, remaining int) (color.Color, bool) {
		rays = append(rays, r)
		return color.Black(), true
	}

	c.renderPixel(5, 5, colorAt, 1, 5, light.NewConstantSequence(0.5))
	require.Len(t, rays, 1)
	centerRay := rays[0]

	rays = nil
	c.renderPixel(5, 5, colorAt, 1, 5, light.NewConstantSequence(0.9))
	require.Len(t, rays, 1)

	require.False(t, rays[0].Direction.Equal(centerRay.Direction),
		"a different jitter value should move the sampled ray off the cell center")
}

func TestRenderFallsBackToBackgroundOnMiss(t *testing.T) {
	c := New(4, 4, math.Pi/2)
	c.Background = color.New(0.1, 0.1, 0.1)

	colorAt := func(r ray.Ray, remaining int) (color.Color, bool) {
		return color.Black(), false
	}

	img := c.Render(colorAt, 2, 5, 2)
	got := img.At(0, 0)
	if !got.Equal(c.Background) {
		t.Errorf("miss pixel = %v, want background %v", got, c.Background)
	}
}

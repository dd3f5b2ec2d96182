// Package camera implements spec.md §3/§4.11/§4.12: the pixel-to-ray
// generator with jittered supersampling and the parallel render loop.
// Dispatch is row-granular over an alitto/pond/v2 worker pool, grounded on
// the teacher's internal/loader/voxel_core.go pond.NewPool(numWorkers)
// usage (that file's voxel-meshing algorithm itself is dropped; its
// worker-dispatch pattern is reused here per DESIGN.md).
package camera

import (
	"math"

	"github.com/alitto/pond/v2"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/canvas"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/light"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

type Camera struct {
	HSize, VSize int
	FieldOfView  float64
	Transform    vecmath.Transform
	Background   color.Color
	// Seed drives the per-row stratified-jitter sequence (see renderPixel):
	// the same Seed reproduces the same render. Row y draws from its own
	// light.RandomSequence rather than one shared across the render, since
	// Render dispatches rows onto the pond pool concurrently and
	// math/rand.Rand isn't safe for concurrent use.
	Seed       int64
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

func New(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fov,
		Transform:   vecmath.NewTransform(),
		Background:  color.Black(),
		Seed:        1,
	}
	c.computeDerived()
	return c
}

// computeDerived implements spec.md §4.11's half_view/half_width/
// half_height/pixel_size precomputation.
func (c *Camera) computeDerived() {
	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(c.HSize) / float64(c.VSize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(c.HSize)
}

func (c *Camera) SetTransform(t vecmath.Transform) { c.Transform = t }

// RayForPixel implements spec.md §4.11 for pixel (x,y) and a sub-pixel
// sample offset (dx,dy) in [0,1)^2.
func (c *Camera) RayForPixel(x, y int, dx, dy float64) ray.Ray {
	worldX := c.halfWidth - (float64(x)+dx)*c.pixelSize
	worldY := c.halfHeight - (float64(y)+dy)*c.pixelSize

	inv := c.Transform.Inverse()
	pixel := inv.MulTuple(vecmath.Point(worldX, worldY, -1))
	origin := inv.MulTuple(vecmath.Point(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return ray.New(origin, direction)
}

// ColorAtFunc is the world's recursive color_at — camera depends on it
// through a function type rather than importing the world package
// directly, since world imports object/light/material which already sit
// above camera in the dependency graph; this keeps camera a pure leaf
// consumer and leaves world free to stay ignorant of rendering dispatch.
type ColorAtFunc func(r ray.Ray, remaining int) (color.Color, bool)

// Render implements spec.md §4.11/§5: one pond task per image row,
// averaging a stratified-jittered aa x aa sample grid per pixel and
// falling back to the camera's background color when a ray escapes. Each
// row seeds its own light.RandomSequence off c.Seed so jittering stays
// both reproducible and safe across the pool's concurrent row workers.
func (c *Camera) Render(colorAt ColorAtFunc, aa, maxDepth, workers int) *canvas.Canvas {
	img := canvas.New(c.HSize, c.VSize)
	pool := pond.NewPool(workers)

	for y := 0; y < c.VSize; y++ {
		y := y
		pool.Submit(func() {
			jitter := light.NewRandomSequence(c.Seed + int64(y))
			row := make([]color.Color, c.HSize)
			for x := 0; x < c.HSize; x++ {
				row[x] = c.renderPixel(x, y, colorAt, aa, maxDepth, jitter)
			}
			img.SetRow(y, row)
		})
	}

	pool.StopAndWait()
	return img
}

// renderPixel implements spec.md §4.11's stratified-jittered supersampling:
// cell (i,j) of the aa x aa grid is sampled at ((i+jitter)/aa, (j+jitter)/aa)
// rather than its exact center, so each cell's sample point varies from
// frame to frame (or row to row) while staying confined to its own cell.
func (c *Camera) renderPixel(x, y int, colorAt ColorAtFunc, aa, maxDepth int, jitter light.Jitter) color.Color {
	if aa < 1 {
		aa = 1
	}

	sum := color.Black()
	samples := 0
	for i := 0; i < aa; i++ {
		for j := 0; j < aa; j++ {
			dx := (float64(i) + jitter.Next()) / float64(aa)
			dy := (float64(j) + jitter.Next()) / float64(aa)
			r := c.RayForPixel(x, y, dx, dy)
			if shaded, ok := colorAt(r, maxDepth); ok {
				sum = sum.Add(shaded)
			} else {
				sum = sum.Add(c.Background)
			}
			samples++
		}
	}
	return sum.Scale(1.0 / float64(samples))
}

// Package bounds implements the axis-aligned BoundingBox of spec.md
// §3/§4.2, grounded on other_examples' geometry.BVH/AABB3D slab test
// shape and on _examples/original_source/src/bounds.rs for the exact
// split/divide algorithm spec.md §4.5 transcribes.
package bounds

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

type BoundingBox struct {
	Min, Max vecmath.Tuple
}

// Empty returns the identity box for Merge/AddPoint: min=+Inf, max=-Inf on
// every axis, so that adding any point yields a valid box.
func Empty() BoundingBox {
	inf := math.Inf(1)
	return BoundingBox{
		Min: vecmath.Point(inf, inf, inf),
		Max: vecmath.Point(-inf, -inf, -inf),
	}
}

func New(min, max vecmath.Tuple) BoundingBox { return BoundingBox{Min: min, Max: max} }

func (b BoundingBox) AddPoint(p vecmath.Tuple) BoundingBox {
	return BoundingBox{
		Min: vecmath.Point(math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)),
		Max: vecmath.Point(math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)),
	}
}

func (b BoundingBox) Merge(o BoundingBox) BoundingBox {
	return b.AddPoint(o.Min).AddPoint(o.Max)
}

func (b BoundingBox) ContainsPoint(p vecmath.Tuple) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

func (b BoundingBox) ContainsBox(o BoundingBox) bool {
	return b.ContainsPoint(o.Min) && b.ContainsPoint(o.Max)
}

// TransformBy wraps all 8 corners through m and returns their bounding box.
func (b BoundingBox) TransformBy(m vecmath.Matrix) BoundingBox {
	corners := [8]vecmath.Tuple{
		vecmath.Point(b.Min.X, b.Min.Y, b.Min.Z),
		vecmath.Point(b.Min.X, b.Min.Y, b.Max.Z),
		vecmath.Point(b.Min.X, b.Max.Y, b.Min.Z),
		vecmath.Point(b.Min.X, b.Max.Y, b.Max.Z),
		vecmath.Point(b.Max.X, b.Min.Y, b.Min.Z),
		vecmath.Point(b.Max.X, b.Min.Y, b.Max.Z),
		vecmath.Point(b.Max.X, b.Max.Y, b.Min.Z),
		vecmath.Point(b.Max.X, b.Max.Y, b.Max.Z),
	}
	out := Empty()
	for _, c := range corners {
		out = out.AddPoint(m.MulTuple(c))
	}
	return out
}

// axisRange computes the entry/exit t for one axis pair, using signed
// infinity when the direction component is effectively zero so parallel
// rays either always miss or always traverse (spec.md §4.2).
func axisRange(origin, direction, min, max float64) (float64, float64) {
	var tminNumerator, tmaxNumerator = min - origin, max - origin
	var tmin, tmax float64
	if math.Abs(direction) >= vecmath.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

func (b BoundingBox) Intersects(r ray.Ray) bool {
	xtmin, xtmax := axisRange(r.Origin.X, r.Direction.X, b.Min.X, b.Max.X)
	ytmin, ytmax := axisRange(r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y)
	ztmin, ztmax := axisRange(r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	return tmin < tmax
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (b BoundingBox) LongestAxis() Axis {
	dx := math.Abs(b.Max.X - b.Min.X)
	dy := math.Abs(b.Max.Y - b.Min.Y)
	dz := math.Abs(b.Max.Z - b.Min.Z)
	switch {
	case dx >= dy && dx >= dz:
		return AxisX
	case dy >= dz:
		return AxisY
	default:
		return AxisZ
	}
}

// Split halves the box along its longest axis, used by BVH construction
// (spec.md §4.5 step 1).
func (b BoundingBox) Split() (BoundingBox, BoundingBox) {
	dx := b.Max.X - b.Min.X
	dy := b.Max.Y - b.Min.Y
	dz := b.Max.Z - b.Min.Z

	x0, y0, z0 := b.Min.X, b.Min.Y, b.Min.Z
	x1, y1, z1 := b.Max.X, b.Max.Y, b.Max.Z

	switch b.LongestAxis() {
	case AxisX:
		x0 += dx / 2
		x1 = x0
	case AxisY:
		y0 += dy / 2
		y1 = y0
	default:
		z0 += dz / 2
		z1 = z0
	}

	midMin := vecmath.Point(x0, y0, z0)
	midMax := vecmath.Point(x1, y1, z1)

	left := BoundingBox{Min: b.Min, Max: midMax}
	right := BoundingBox{Min: midMin, Max: b.Max}
	return left, right
}

// Package ray implements the Ray type of spec.md §3/§4.1, grounded on the
// teacher's internal/renderer/raycasting.go Ray struct (Origin, Direction)
// generalized from mgl32.Vec3 to a homogeneous vecmath.Tuple pair and from
// a closed-form Vec3 to a matrix-transformable ray.
package ray

import "github.com/nicolasmd87/gophertrace/internal/vecmath"

type Ray struct {
	Origin    vecmath.Tuple
	Direction vecmath.Tuple
}

func New(origin, direction vecmath.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func (r Ray) At(t float64) vecmath.Tuple {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform applies m to the ray: the origin as a point, the direction as
// a vector. The direction is not renormalized so t stays a parameter of
// the original, untransformed ray (spec.md §4.1).
func (r Ray) Transform(m vecmath.Matrix) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}

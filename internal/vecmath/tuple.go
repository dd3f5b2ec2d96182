// Package vecmath provides the point/vector/matrix primitives the render
// core is built on, on top of github.com/go-gl/mathgl's double-precision
// mgl64 types. A ray tracer needs w=0/w=1 homogeneous tuples (points
// translate, vectors don't) in a way mgl64.Vec3 alone doesn't express, so
// this package wraps mgl64.Vec4 with Point/Vector constructors and plain
// Vec3-shaped arithmetic for the common case.
package vecmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const Epsilon = 1e-5

// Tuple is a homogeneous 3-D coordinate: W=1 for a point, W=0 for a vector.
type Tuple struct {
	X, Y, Z, W float64
}

func Point(x, y, z float64) Tuple  { return Tuple{x, y, z, 1} }
func Vector(x, y, z float64) Tuple { return Tuple{x, y, z, 0} }

func (t Tuple) IsPoint() bool  { return t.W == 1 }
func (t Tuple) IsVector() bool { return t.W == 0 }

func (t Tuple) Add(o Tuple) Tuple { return Tuple{t.X + o.X, t.Y + o.Y, t.Z + o.Z, t.W + o.W} }
func (t Tuple) Sub(o Tuple) Tuple { return Tuple{t.X - o.X, t.Y - o.Y, t.Z - o.Z, t.W - o.W} }
func (t Tuple) Neg() Tuple        { return Tuple{-t.X, -t.Y, -t.Z, -t.W} }
func (t Tuple) Mul(s float64) Tuple {
	return Tuple{t.X * s, t.Y * s, t.Z * s, t.W * s}
}
func (t Tuple) Div(s float64) Tuple { return t.Mul(1 / s) }

func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

func (t Tuple) Cross(o Tuple) Tuple {
	return Vector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	)
}

func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	if m == 0 {
		return t
	}
	return t.Div(m)
}

// Reflect returns t reflected about normal n.
func (t Tuple) Reflect(n Tuple) Tuple {
	return t.Sub(n.Mul(2 * t.Dot(n)))
}

func (t Tuple) Equal(o Tuple) bool {
	return math.Abs(t.X-o.X) < Epsilon &&
		math.Abs(t.Y-o.Y) < Epsilon &&
		math.Abs(t.Z-o.Z) < Epsilon &&
		math.Abs(t.W-o.W) < Epsilon
}

func (t Tuple) vec4() mgl64.Vec4 { return mgl64.Vec4{t.X, t.Y, t.Z, t.W} }

func fromVec4(v mgl64.Vec4) Tuple { return Tuple{v[0], v[1], v[2], v[3]} }

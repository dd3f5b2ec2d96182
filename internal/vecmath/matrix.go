package vecmath

import "github.com/go-gl/mathgl/mgl64"

// Matrix is a 4x4 homogeneous transform, built on mgl64.Mat4 (column-major,
// mirroring the teacher's use of mgl32.Mat4 for view/projection math but at
// double precision for geometric accuracy across deep recursive rays).
type Matrix struct {
	m mgl64.Mat4
}

func Identity() Matrix { return Matrix{mgl64.Ident4()} }

func (m Matrix) Mul(o Matrix) Matrix { return Matrix{m.m.Mul4(o.m)} }

func (m Matrix) MulTuple(t Tuple) Tuple { return fromVec4(m.m.Mul4x1(t.vec4())) }

func (m Matrix) Transpose() Matrix { return Matrix{m.m.Transpose()} }

func (m Matrix) Inverse() Matrix { return Matrix{m.m.Inv()} }

func (m Matrix) Raw() mgl64.Mat4 { return m.m }

func Translation(x, y, z float64) Matrix {
	return Matrix{mgl64.Translate3D(x, y, z)}
}

func ScalingXYZ(x, y, z float64) Matrix {
	return Matrix{mgl64.Scale3D(x, y, z)}
}

func Scaling(s float64) Matrix { return ScalingXYZ(s, s, s) }

func RotationX(r float64) Matrix { return Matrix{mgl64.HomogRotate3DX(r)} }
func RotationY(r float64) Matrix { return Matrix{mgl64.HomogRotate3DY(r)} }
func RotationZ(r float64) Matrix { return Matrix{mgl64.HomogRotate3DZ(r)} }

// Shearing builds the shear matrix with the six book-standard proportionality
// coefficients (x in terms of y/z, y in terms of x/z, z in terms of x/y).
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	// mgl64.Mat4 is column-major: each group of four below is one column.
	return Matrix{mgl64.Mat4{
		1, yx, zx, 0,
		xy, 1, zy, 0,
		xz, yz, 1, 0,
		0, 0, 0, 1,
	}}
}

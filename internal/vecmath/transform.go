package vecmath

// Transform is the cached (matrix, inverse, inverse-transpose) triple
// spec.md §3 requires: built from identity and refined by chained
// scale/translate/rotate calls, each pre-multiplied onto the running
// matrix, with both inverses recomputed after every mutation so the three
// stay consistent.
type Transform struct {
	matrix           Matrix
	inverse          Matrix
	inverseTranspose Matrix
}

func NewTransform() Transform {
	return Transform{Identity(), Identity(), Identity()}
}

func TransformFromMatrix(m Matrix) Transform {
	t := Transform{matrix: m}
	t.recompute()
	return t
}

func (t Transform) Matrix() Matrix           { return t.matrix }
func (t Transform) Inverse() Matrix          { return t.inverse }
func (t Transform) InverseTranspose() Matrix { return t.inverseTranspose }

func (t Transform) recompute() Transform {
	t.inverse = t.matrix.Inverse()
	t.inverseTranspose = t.inverse.Transpose()
	return t
}

// chain pre-multiplies op onto the running matrix: the new operation is
// applied last, after every operation already chained, to any tuple the
// resulting matrix acts on.
func (t Transform) chain(op Matrix) Transform {
	t.matrix = op.Mul(t.matrix)
	return t.recompute()
}

func (t Transform) Translate(x, y, z float64) Transform { return t.chain(Translation(x, y, z)) }
func (t Transform) Scale(x, y, z float64) Transform     { return t.chain(ScalingXYZ(x, y, z)) }
func (t Transform) RotateX(r float64) Transform         { return t.chain(RotationX(r)) }
func (t Transform) RotateY(r float64) Transform         { return t.chain(RotationY(r)) }
func (t Transform) RotateZ(r float64) Transform         { return t.chain(RotationZ(r)) }
func (t Transform) Shear(xy, xz, yx, yz, zx, zy float64) Transform {
	return t.chain(Shearing(xy, xz, yx, yz, zx, zy))
}

// View produces the camera-placement matrix of spec.md §4.12: place the
// camera at from, looking toward to, with up re-orthogonalized.
func View(from, to, up Tuple) Matrix {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	raw := Identity().Raw()
	raw[0], raw[4], raw[8] = left.X, left.Y, left.Z
	raw[1], raw[5], raw[9] = trueUp.X, trueUp.Y, trueUp.Z
	raw[2], raw[6], raw[10] = -forward.X, -forward.Y, -forward.Z
	o := Matrix{raw}
	return o.Mul(Translation(-from.X, -from.Y, -from.Z))
}
